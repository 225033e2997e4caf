package command

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/codegraph/csrengine/algo"
)

func newLouvainCmd(logger zerolog.Logger) *cobra.Command {
	opts := algo.DefaultLouvainOptions()

	cmd := &cobra.Command{
		Use:   "louvain",
		Short: "Run greedy modularity-maximizing community detection",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadEdgeList(edgeListPath)
			if err != nil {
				return err
			}
			opts.Logger = logger

			res, err := algo.Louvain(g, opts)
			if err != nil {
				return err
			}

			for v, community := range res.Community {
				fmt.Printf("%d\t%d\n", v, community)
			}
			fmt.Printf("# modularity=%.6f passes=%d\n", res.Modularity, res.Passes)
			return nil
		},
	}
	cmd.Flags().BoolVar(&opts.Weighted, "weighted", opts.Weighted, "use stored edge weights instead of treating every edge as 1.0")
	cmd.Flags().IntVar(&opts.MaxPasses, "max-passes", opts.MaxPasses, "cap on full node sweeps (0 = run to fixpoint)")
	return cmd
}
