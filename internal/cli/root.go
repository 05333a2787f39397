// Package cli implements the tripod command line interface.
package cli

import (
	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
}

// NewRootCommand creates the root command for the tripod CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "tripod",
		Short: "Triple pattern matching with tabular export",
		Long: `Tripod loads a graph of (subject, predicate, object) triples, runs
pattern selections and equi-joins against it, and writes the tabular
result as CSV, SPARQL-results JSON, or a markdown table.`,
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(NewQueryCommand(opts))

	return cmd
}
