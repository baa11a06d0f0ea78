// Package layout reads and writes grid scenarios: a layout plus its start
// and end cells, stored as YAML (gopkg.in/yaml.v3) or JSON.
//
// Two equivalent forms are accepted, never both in one document.
//
// Rows form, one string per grid row:
//
//	name: corridor
//	rows:
//	  - "S..#"
//	  - ".#.."
//	  - "...E"
//
// Glyphs: '.' open, '#' wall, 'S' start, 'E' end. Exactly one S and one E.
//
// Explicit form, coordinates as [row, col]:
//
//	name: corridor
//	height: 3
//	width: 4
//	walls: [[0, 3], [1, 1]]
//	start: [0, 0]
//	end: [2, 3]
//
// Random builds a scenario with clustered random-walk walls that never
// cover the start or end cell.
package layout
