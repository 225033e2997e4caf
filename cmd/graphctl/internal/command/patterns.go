package command

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/codegraph/csrengine/algo"
)

func newPatternsCmd(logger zerolog.Logger) *cobra.Command {
	var godClassThreshold uint32
	var cycleMaxLen uint32
	var churnFactor float64

	cmd := &cobra.Command{
		Use:   "patterns",
		Short: "Run all four anti-pattern matchers (God Class, Dead Code, Circular Dependency, Unstable Hub)",
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadEdgeList(edgeListPath)
			if err != nil {
				return err
			}

			godClass, err := algo.GodClass(g, godClassThreshold)
			if err != nil {
				return err
			}
			deadCode, err := algo.DeadCode(g)
			if err != nil {
				return err
			}
			cycles, err := algo.CircularDependency(g, cycleMaxLen)
			if err != nil {
				return err
			}
			hubs, err := algo.UnstableHub(g, algo.UnstableHubOptions{ChurnFactor: churnFactor})
			if err != nil {
				return err
			}

			for _, m := range concatMatches(godClass, deadCode, cycles, hubs) {
				printMatch(m)
			}
			logger.Debug().
				Int("god_class", len(godClass)).
				Int("dead_code", len(deadCode)).
				Int("circular_dependency", len(cycles)).
				Int("unstable_hub", len(hubs)).
				Msg("pattern matching complete")
			return nil
		},
	}
	cmd.Flags().Uint32Var(&godClassThreshold, "god-class-threshold", 10, "out-degree threshold for God Class")
	cmd.Flags().Uint32Var(&cycleMaxLen, "cycle-max-len", 0, "max cycle length for Circular Dependency (0 = unlimited)")
	cmd.Flags().Float64Var(&churnFactor, "unstable-hub-churn-factor", algo.DefaultUnstableHubOptions().ChurnFactor, "multiple of mean in-degree flagged as Unstable Hub")
	return cmd
}

func concatMatches(groups ...[]algo.Match) []algo.Match {
	var all []algo.Match
	for _, g := range groups {
		all = append(all, g...)
	}
	return all
}

func printMatch(m algo.Match) {
	nodes := make([]string, len(m.Nodes))
	for i, n := range m.Nodes {
		nodes[i] = fmt.Sprint(n)
	}
	fmt.Printf("%s\t[%s]\t%s\n", m.Kind, strings.Join(nodes, ","), m.Severity)
}
