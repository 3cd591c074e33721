package commands

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/corpusdex/irspimi/analysis"
	"github.com/corpusdex/irspimi/corpus"
)

var (
	stopwordsTop int
	stopwordsOut string
)

var stopwordsCmd = &cobra.Command{
	Use:   "stopwords <corpus-file...>",
	Short: "Regenerates a frequency-ranked stop-word file from a corpus",
	Long: `stopwords tokenizes, casefolds, and counts every token across the given
corpus files, then writes the top-N most frequent tokens, one per line,
descending by frequency — the same algorithm the original system's
stopwords.py used to build its 200-word stop list.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		stream := corpus.NewStream(args, nil)
		counts := make(map[string]int)
		for {
			tok, ok, err := stream.Next()
			if err != nil {
				return err
			}
			if !ok {
				break
			}
			folded, _ := analysis.CaseFolding{}.Apply(tok.Term)
			counts[folded]++
		}

		type freq struct {
			term  string
			count int
		}
		ranked := make([]freq, 0, len(counts))
		for term, count := range counts {
			ranked = append(ranked, freq{term, count})
		}
		sort.Slice(ranked, func(i, j int) bool {
			if ranked[i].count != ranked[j].count {
				return ranked[i].count > ranked[j].count
			}
			return ranked[i].term < ranked[j].term
		})
		if stopwordsTop > 0 && len(ranked) > stopwordsTop {
			ranked = ranked[:stopwordsTop]
		}

		out := os.Stdout
		if stopwordsOut != "" {
			f, err := os.Create(stopwordsOut)
			if err != nil {
				return fmt.Errorf("stopwords: creating %s: %w", stopwordsOut, err)
			}
			defer f.Close()
			out = f
		}
		for _, f := range ranked {
			fmt.Fprintln(out, f.term)
		}
		return nil
	},
}

func init() {
	stopwordsCmd.Flags().IntVar(&stopwordsTop, "top", 200, "number of most frequent tokens to keep")
	stopwordsCmd.Flags().StringVar(&stopwordsOut, "out", "", "output file (default stdout)")
	AddCommand(stopwordsCmd)
}
