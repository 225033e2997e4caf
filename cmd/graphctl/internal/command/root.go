// Package command implements graphctl's cobra command tree.
package command

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var edgeListPath string

// Root builds the top-level graphctl command, passing logger to every
// subcommand's constructor.
func Root(logger zerolog.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:   "graphctl",
		Short: "Inspect and analyze CSR-backed dependency graphs",
	}
	root.PersistentFlags().StringVar(&edgeListPath, "edges", "", "path to a newline-delimited \"source target weight\" edge list")
	_ = root.MarkPersistentFlagRequired("edges")

	root.AddCommand(
		newBFSCmd(logger),
		newPageRankCmd(logger),
		newLouvainCmd(logger),
		newPatternsCmd(logger),
	)
	return root
}
