package query

import (
	"sort"

	"github.com/corpusdex/irspimi/corpus"
	"github.com/corpusdex/irspimi/postings"
)

// DocResult is one document's entry in a Result: which query terms
// matched it, its merged match positions (Boolean queries only), and
// its BM25 weight (ranked queries only). Title/Body are populated only
// after Enrich is called for this doc.
type DocResult struct {
	DocID     int
	Terms     []string
	Positions []int
	Weight    float64
	Title     string
	Body      string
}

// Result is the per-query evaluation result (C12): docId → term
// attribution plus either Boolean or ranked ordering.
type Result struct {
	Ranked        bool
	Docs          []DocResult
	FilteredTerms []string

	termPostings map[string]postings.List
}

func newResult() *Result {
	return &Result{termPostings: make(map[string]postings.List)}
}

func (r *Result) recordTerm(term string, list postings.List) {
	r.termPostings[term] = list
}

func (r *Result) recordFiltered(term string) {
	r.FilteredTerms = append(r.FilteredTerms, term)
}

// finalizeBoolean builds the display-ordered Docs list for a Boolean
// evaluation: descending by (|terms|, |positions|), per spec.md §4.12.
func (r *Result) finalizeBoolean(list postings.List) {
	r.Ranked = false
	docs := make([]DocResult, 0, len(list))
	for _, p := range list {
		docs = append(docs, DocResult{
			DocID:     p.DocID,
			Terms:     r.matchingTerms(p.DocID),
			Positions: p.Positions,
		})
	}
	sort.SliceStable(docs, func(i, j int) bool {
		if len(docs[i].Terms) != len(docs[j].Terms) {
			return len(docs[i].Terms) > len(docs[j].Terms)
		}
		if len(docs[i].Positions) != len(docs[j].Positions) {
			return len(docs[i].Positions) > len(docs[j].Positions)
		}
		return docs[i].DocID < docs[j].DocID
	})
	r.Docs = docs
}

// ScoredDoc is one BM25-ranked accumulator result (rank.Rank's output).
type ScoredDoc struct {
	DocID int
	Score float64
}

// FinalizeRanked builds the Docs list from a BM25 ranking plus the
// per-term postings the ranker retrieved, in the order rank.Rank
// already produced (descending score, ties ascending docId).
func (r *Result) FinalizeRanked(scores []ScoredDoc, termPostings map[string]postings.List) {
	r.Ranked = true
	r.termPostings = termPostings
	docs := make([]DocResult, 0, len(scores))
	for _, s := range scores {
		docs = append(docs, DocResult{
			DocID:  s.DocID,
			Terms:  r.matchingTerms(s.DocID),
			Weight: s.Score,
		})
	}
	r.Docs = docs
}

func (r *Result) matchingTerms(docID int) []string {
	var terms []string
	for term, list := range r.termPostings {
		if containsDocID(list, docID) {
			terms = append(terms, term)
		}
	}
	sort.Strings(terms)
	return terms
}

func containsDocID(list postings.List, docID int) bool {
	i := sort.Search(len(list), func(i int) bool { return list[i].DocID >= docID })
	return i < len(list) && list[i].DocID == docID
}

// Enrich fetches title and body for the given docIds (or all displayed
// docs, if none given) via fetcher, the lazy "enrich with title / full
// document" operation spec.md §4.12 describes. Grounded on
// original_source/irspimi/eval_result.py's update_details.
func (r *Result) Enrich(fetcher corpus.DocFetcher, docIDs ...int) error {
	want := make(map[int]bool, len(docIDs))
	for _, id := range docIDs {
		want[id] = true
	}
	for i := range r.Docs {
		if len(docIDs) > 0 && !want[r.Docs[i].DocID] {
			continue
		}
		doc, err := fetcher.Fetch(r.Docs[i].DocID)
		if err != nil {
			return err
		}
		r.Docs[i].Title = doc.Title
		r.Docs[i].Body = doc.Body
	}
	return nil
}
