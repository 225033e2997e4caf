package command

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/codegraph/csrengine/algo"
	"github.com/codegraph/csrengine/csr"
)

func newBFSCmd(logger zerolog.Logger) *cobra.Command {
	var source uint32
	var maxDepth uint32
	var reverse bool

	cmd := &cobra.Command{
		Use:   "bfs",
		Short: "Run breadth-first search (or find_callers with --reverse) from a source node",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadEdgeList(edgeListPath)
			if err != nil {
				return err
			}

			var res *algo.BFSResult
			opt := algo.WithLogger(logger)
			if reverse {
				res, err = algo.FindCallers(g, csr.NodeID(source), maxDepth, opt)
			} else {
				res, err = algo.BFS(g, csr.NodeID(source), maxDepth, opt)
			}
			if err != nil {
				return err
			}

			for v, dist := range res.Dist {
				if dist == algo.Infinite {
					fmt.Printf("%d\tunreachable\n", v)
					continue
				}
				fmt.Printf("%d\t%d\n", v, dist)
			}
			return nil
		},
	}
	cmd.Flags().Uint32Var(&source, "source", 0, "source node ID")
	cmd.Flags().Uint32Var(&maxDepth, "max-depth", 0, "stop after this many hops (0 = unlimited)")
	cmd.Flags().BoolVar(&reverse, "reverse", false, "walk reverse adjacency (find_callers)")
	return cmd
}
