package gridgraph

import (
	"container/list"
)

// Breach finds a route from start to end that passes through as few wall
// cells as possible. It returns the route (both endpoints included), in
// start→end order, and the number of wall cells on it. A zero cost means
// end is already reachable.
//
// Behavior:
//  1. Validate both coordinates.
//  2. 0-1 BFS from start:
//     • Moving into an open cell → cost 0
//     • Moving into a wall cell  → cost 1
//  3. Stop when end is popped from the deque.
//  4. Reconstruct the route via the predecessor arena.
//
// Neighbours are relaxed in the fixed order, so among equal-cost routes
// the result is deterministic.
//
// Complexity: O(H·W) time and memory.
func (g *Grid) Breach(start, end Coord) (route []Coord, cost int, err error) {
	if !g.InBounds(start) {
		return nil, 0, g.outOfBounds(start)
	}
	if !g.InBounds(end) {
		return nil, 0, g.outOfBounds(end)
	}

	n := g.Size()
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	src, dst := g.Index(start), g.Index(end)
	dist[src] = g.stepCost(src)

	// 0-1 BFS: cost-0 moves go to the front, cost-1 moves to the back
	dq := list.New()
	dq.PushBack(src)

	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		ui := e.Value.(int)
		if ui == dst {
			break
		}
		u := g.Coordinate(ui)
		for _, d := range neighborOffsets {
			v := u.Add(d)
			if !g.InBounds(v) {
				continue
			}
			vi := g.Index(v)
			step := g.stepCost(vi)
			if nd := dist[ui] + step; nd < dist[vi] {
				dist[vi] = nd
				prev[vi] = ui
				if step == 0 {
					dq.PushFront(vi)
				} else {
					dq.PushBack(vi)
				}
			}
		}
	}

	// every cell is reachable once walls may be crossed
	for at := dst; at >= 0; at = prev[at] {
		route = append(route, g.Coordinate(at))
	}
	for i, j := 0, len(route)-1; i < j; i, j = i+1, j-1 {
		route[i], route[j] = route[j], route[i]
	}
	return route, dist[dst], nil
}

func (g *Grid) stepCost(i int) int {
	if g.walls[i] {
		return 1
	}
	return 0
}
