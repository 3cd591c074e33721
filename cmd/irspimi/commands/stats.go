package commands

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/corpusdex/irspimi/index"
	"github.com/corpusdex/irspimi/postings"
)

var statsSrcDir string

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Reports term, postings, and positional-postings counts for a built index",
	Long: `stats scans a built index's inverted_index.ii file and reports the total
number of terms, non-positional postings, and positional postings it
contains — additive operational tooling grounded on the original
system's dict_analysis.py.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := filepath.Join(statsSrcDir, index.IndexFilename)
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("stats: opening %s: %w", path, err)
		}
		defer f.Close()

		var termCount, postingsCount, positionalPostingsCount int
		scanner := bufio.NewScanner(f)
		for scanner.Scan() {
			line := scanner.Text()
			if line == "" {
				continue
			}
			tp, err := postings.Parse(line)
			if err != nil {
				return fmt.Errorf("stats: %w", err)
			}
			termCount++
			postingsCount += len(tp.Postings)
			for _, p := range tp.Postings {
				positionalPostingsCount += len(p.Positions)
			}
		}
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("stats: reading %s: %w", path, err)
		}

		fmt.Printf("terms: %d\n", termCount)
		fmt.Printf("postings: %d\n", postingsCount)
		fmt.Printf("positional postings: %d\n", positionalPostingsCount)
		return nil
	},
}

func init() {
	statsCmd.Flags().StringVar(&statsSrcDir, "src-dir", ".", "directory of the inverted index")
	AddCommand(statsCmd)
}
