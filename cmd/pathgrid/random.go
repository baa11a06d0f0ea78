package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathgrid/layout"
)

func newRandomCmd(a *app) *cobra.Command {
	var opts layout.RandomOptions
	cmd := &cobra.Command{
		Use:   "random",
		Short: "Generate a random scenario as YAML",
		Long: `Random lays clustered walls with seeded random walks. The start is the
top-left cell and the end the bottom-right one. Without --seed the current
time is used.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("seed") {
				opts.Seed = time.Now().UnixNano()
			}
			s, err := layout.Random(opts)
			if err != nil {
				return err
			}
			a.logger.Debug("random scenario", "seed", opts.Seed, "height", opts.Height, "width", opts.Width)
			return layout.Encode(cmd.OutOrStdout(), s)
		},
	}

	cmd.Flags().StringVar(&opts.Name, "name", "", "Scenario name")
	cmd.Flags().IntVar(&opts.Height, "height", 12, "Number of rows")
	cmd.Flags().IntVar(&opts.Width, "width", 24, "Number of columns")
	cmd.Flags().IntVar(&opts.Clusters, "clusters", 0, "Number of wall clusters (0 picks one per 40 cells)")
	cmd.Flags().IntVar(&opts.Steps, "steps", 0, "Cells walked per cluster (0 picks 20)")
	cmd.Flags().Float64Var(&opts.Density, "density", 0, "Chance a walked cell becomes a wall (0 picks 0.6)")
	cmd.Flags().Int64Var(&opts.Seed, "seed", 0, "Random seed")
	return cmd
}
