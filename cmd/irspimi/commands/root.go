// Package commands implements the irspimi CLI (spec.md §6), a Cobra
// command tree grounded on the teacher's cmd/sdl/commands/root.go
// pattern: one rootCmd, subcommands registered via AddCommand from
// their own files' init().
package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "irspimi",
	Short: "irspimi builds and searches a positional inverted index over the Reuters-21578 corpus",
	Long: `irspimi is an information retrieval system for the Reuters-21578 corpus.
It builds a positional inverted index with the SPIMI algorithm and answers
Boolean and BM25-ranked queries against it.`,
}

// Execute runs the root command. Called once from main.main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// AddCommand registers a subcommand from another file's init().
func AddCommand(cmd *cobra.Command) {
	rootCmd.AddCommand(cmd)
}
