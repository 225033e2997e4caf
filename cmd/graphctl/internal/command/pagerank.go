package command

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/codegraph/csrengine/algo"
)

func newPageRankCmd(logger zerolog.Logger) *cobra.Command {
	opts := algo.DefaultPageRankOptions()

	cmd := &cobra.Command{
		Use:   "pagerank",
		Short: "Run PageRank power iteration",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadEdgeList(edgeListPath)
			if err != nil {
				return err
			}
			opts.Logger = logger

			res, err := algo.PageRank(g, opts)
			if err != nil {
				return err
			}

			for v, score := range res.Scores {
				fmt.Printf("%d\t%.6f\n", v, score)
			}
			if !res.Converged {
				logger.Warn().Int("iterations", res.Iterations).Msg("pagerank did not converge within max-iterations")
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&opts.MaxIterations, "max-iterations", opts.MaxIterations, "power-iteration cap")
	cmd.Flags().Float64Var(&opts.Tolerance, "tolerance", opts.Tolerance, "L1-delta convergence threshold")
	cmd.Flags().Float64Var(&opts.Damping, "damping", opts.Damping, "damping factor")
	return cmd
}
