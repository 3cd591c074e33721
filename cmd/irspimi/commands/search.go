package commands

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/corpusdex/irspimi/corpus/reuters"
	"github.com/corpusdex/irspimi/index"
	"github.com/corpusdex/irspimi/query"
	"github.com/corpusdex/irspimi/rank"
)

var (
	searchSrcDir string
	searchTitle  bool
	searchRanked bool
	searchK1     float64
	searchB      float64
	searchLimit  int
)

var searchCmd = &cobra.Command{
	Use:   "search <corpus-dir>",
	Short: "Interactively search a previously built inverted index",
	Long: `search loads an inverted index built by "irspimi build" and prompts for
Boolean or BM25-ranked queries, printing ranked results and optionally
the matched document's title and full body.`,
	Args: cobra.ExactArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	corpusDir := args[0]

	reader, err := index.Open(searchSrcDir)
	if err != nil {
		return err
	}
	defer reader.Close()

	fetcher := reuters.NewFetcher(corpusDir)
	evaluator := query.NewEvaluator(reader)

	in := bufio.NewReader(os.Stdin)
	for {
		fmt.Print("What do you want to search for? (Type q to exit) ")
		expr, err := in.ReadString('\n')
		if err != nil {
			return nil
		}
		expr = strings.TrimSpace(expr)
		if expr == "q" {
			fmt.Println("Goodbye!")
			return nil
		}
		if expr == "" {
			continue
		}

		result, err := evaluateQuery(reader, evaluator, expr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "query error: %v\n", err)
			continue
		}
		for _, term := range result.FilteredTerms {
			fmt.Printf("(note: term %q was filtered by the compression recipe and ignored)\n", term)
		}

		if searchTitle {
			if err := result.Enrich(fetcher); err != nil {
				fmt.Fprintf(os.Stderr, "enrichment error: %v\n", err)
			}
		}
		printResults(result)

		if len(result.Docs) > 0 {
			docRetrievalLoop(in, fetcher, result)
		}
	}
}

func evaluateQuery(reader *index.Reader, evaluator *query.Evaluator, expr string) (*query.Result, error) {
	if !searchRanked {
		return evaluator.Evaluate(expr)
	}
	opts := rank.Options{K1: searchK1, B: searchB, Limit: searchLimit}
	scores, termPostings, err := rank.Rank(reader, expr, opts)
	if err != nil {
		return nil, err
	}
	result := &query.Result{}
	result.FinalizeRanked(toQueryScores(scores), termPostings)
	return result, nil
}

func toQueryScores(scores []rank.ScoredDoc) []query.ScoredDoc {
	out := make([]query.ScoredDoc, len(scores))
	for i, s := range scores {
		out[i] = query.ScoredDoc{DocID: s.DocID, Score: s.Score}
	}
	return out
}

func printResults(result *query.Result) {
	for i, doc := range result.Docs {
		rankNum := i + 1
		if searchTitle {
			fmt.Printf("#%d: %s - DocId %d\n", rankNum, doc.Title, doc.DocID)
		} else {
			fmt.Printf("#%d: DocId %d\n", rankNum, doc.DocID)
		}
		if result.Ranked {
			fmt.Printf("\tScore: %.4f, Terms: %s\n\n", doc.Weight, strings.Join(doc.Terms, ", "))
		} else {
			fmt.Printf("\tCount: %d, Terms: %s\n\n", len(doc.Positions), strings.Join(doc.Terms, ", "))
		}
	}
	fmt.Printf("Retrieved %d results.\n", len(result.Docs))
}

// docRetrievalLoop implements the original's doc_retrieval_mode: a
// sub-prompt that prints a chosen result document's body by id.
func docRetrievalLoop(in *bufio.Reader, fetcher *reuters.Fetcher, result *query.Result) {
	shown := make(map[int]bool, len(result.Docs))
	for _, d := range result.Docs {
		shown[d.DocID] = true
	}
	for {
		fmt.Print("Enter a document id to retrieve it, q to search again ")
		resp, err := in.ReadString('\n')
		if err != nil {
			return
		}
		resp = strings.TrimSpace(resp)
		if resp == "q" {
			return
		}
		docID, err := strconv.Atoi(resp)
		if err != nil || !shown[docID] {
			fmt.Println("Invalid docid")
			continue
		}
		doc, err := fetcher.Fetch(docID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "retrieval error: %v\n", err)
			continue
		}
		fmt.Println(doc.Body)
	}
}

func init() {
	searchCmd.Flags().StringVarP(&searchSrcDir, "src-dir", "d", ".", "directory of the inverted index, descriptor and dictionary")
	searchCmd.Flags().BoolVarP(&searchTitle, "title", "t", false, "show titles in results (slower)")
	searchCmd.Flags().BoolVarP(&searchRanked, "ranked", "r", false, "rank results with BM25 instead of Boolean evaluation")
	searchCmd.Flags().Float64Var(&searchK1, "k1", 1.2, "BM25 k1 tunable")
	searchCmd.Flags().Float64Var(&searchB, "b", 0.75, "BM25 b tunable")
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "l", 0, "top-k cutoff for ranked results (0 means no limit)")
	AddCommand(searchCmd)
}
