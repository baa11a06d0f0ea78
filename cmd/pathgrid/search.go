package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathgrid/explorer"
	"github.com/katalvlaran/pathgrid/gridgraph"
	"github.com/katalvlaran/pathgrid/layout"
	"github.com/katalvlaran/pathgrid/render"
)

type searchFlags struct {
	file    string
	animate bool
	delay   time.Duration
	noColor bool
	json    bool
	breach  bool
}

// searchOutput is the --json document.
type searchOutput struct {
	*explorer.Report
	Steps  int            `json:"steps"`
	Breach *breachSummary `json:"breach,omitempty"`
}

type breachSummary struct {
	Walls int               `json:"walls"`
	Route []gridgraph.Coord `json:"route"`
}

func newSearchCmd(a *app) *cobra.Command {
	var f searchFlags
	cmd := &cobra.Command{
		Use:   "search [ROW...]",
		Short: "Search a grid from S to E",
		Long: `Search reads a grid either from a scenario file (--file) or from rows
given as arguments, using '.' for open cells, '#' for walls, 'S' for the
start and 'E' for the end.`,
		Example: `  pathgrid search "S.#." "..#." "...E"
  pathgrid search --file maze.yaml --animate`,
		RunE: func(cmd *cobra.Command, args []string) error {
			scenario, err := loadScenario(f.file, args)
			if err != nil {
				return err
			}
			board, err := scenario.Board()
			if err != nil {
				return err
			}
			rep, err := board.Explore()
			if err != nil {
				return err
			}
			a.logger.Debug("search finished",
				"name", scenario.Name,
				"reached", rep.Reached,
				"visited", len(rep.Visited),
			)

			var breach *breachSummary
			if f.breach && !rep.Reached {
				route, walls, err := board.Grid().Breach(rep.Start, rep.End)
				if err != nil {
					return err
				}
				breach = &breachSummary{Walls: walls, Route: route}
			}

			out := cmd.OutOrStdout()
			if f.json {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(searchOutput{Report: rep, Steps: rep.Steps(), Breach: breach})
			}

			var opts []render.Option
			if f.noColor {
				opts = append(opts, render.WithNoColor())
			}
			r := render.New(out, opts...)
			if f.animate {
				err = r.Animate(cmd.Context(), board, rep, f.delay)
			} else {
				err = r.Board(board, rep)
			}
			if err != nil {
				return err
			}
			if breach != nil {
				fmt.Fprintf(out, "walls to remove: %d via %v\n", breach.Walls, breach.Route)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&f.file, "file", "f", "", "Scenario file (YAML)")
	cmd.Flags().BoolVar(&f.animate, "animate", false, "Replay the search frame by frame")
	cmd.Flags().DurationVar(&f.delay, "delay", 30*time.Millisecond, "Delay between frames with --animate")
	cmd.Flags().BoolVar(&f.noColor, "no-color", false, "Disable coloured output")
	cmd.Flags().BoolVar(&f.json, "json", false, "Print the report as JSON")
	cmd.Flags().BoolVar(&f.breach, "breach", false, "When unreachable, report the fewest walls to remove")
	cmd.MarkFlagsMutuallyExclusive("json", "animate")
	return cmd
}

func loadScenario(file string, rows []string) (*layout.Scenario, error) {
	switch {
	case file != "" && len(rows) > 0:
		return nil, errors.New("give either --file or rows, not both")
	case file != "":
		return layout.Load(file)
	case len(rows) > 0:
		return &layout.Scenario{Rows: rows}, nil
	default:
		return nil, errors.New("nothing to search: give --file or rows")
	}
}
