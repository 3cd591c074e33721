// Package rank implements the BM25 ranked query engine (C11):
// term-at-a-time accumulation over postings retrieved from an index
// reader. Grounded on original_source/irspimi/rank_bm25_eval.py, not on
// the teacher's own smoothed-IDF variant (see DESIGN.md).
package rank

import (
	"fmt"
	"math"
	"sort"

	"github.com/RoaringBitmap/roaring"

	"github.com/corpusdex/irspimi/analysis"
	"github.com/corpusdex/irspimi/index"
	"github.com/corpusdex/irspimi/postings"
)

// Source is the index-reading surface the ranker needs; index.Reader
// satisfies it.
type Source interface {
	GetPostings(term string) (index.Lookup, error)
	DocLength(docID int) int
	AvgDocLength() float64
	DocCount() int
}

// Options tunes the ranker. DefaultOptions sets K1 to 1.2 and B to 0.75
// (spec.md §4.11); Rank uses K1 and B as given, so a zero field scores
// with 0. Limit <= 0 means no truncation.
type Options struct {
	K1    float64
	B     float64
	Limit int
}

// DefaultOptions returns the spec's default tunables.
func DefaultOptions() Options {
	return Options{K1: 1.2, B: 0.75}
}

// ScoredDoc is one ranked accumulator result.
type ScoredDoc struct {
	DocID int
	Score float64
}

// Rank scores query against source using Okapi BM25, term-at-a-time.
// Returns the ranked docs (descending score, ties ascending docId,
// truncated to opts.Limit if set) and the per-term postings retrieved,
// for C12's term-attribution display.
func Rank(source Source, query string, opts Options) ([]ScoredDoc, map[string]postings.List, error) {
	terms := analysis.Tokenize(query)
	termPostings := make(map[string]postings.List)
	var lists []postings.List

	n := source.DocCount()
	davg := source.AvgDocLength()
	if davg == 0 {
		return nil, nil, fmt.Errorf("rank: cannot score against an empty index (avgDocLength is 0)")
	}

	// Phase 1: retrieve every query term's postings and narrow scoring to
	// the candidate set (the roaring-bitmap union of docIds any term
	// could possibly match) before the per-posting accumulation loop runs.
	for _, term := range terms {
		lookup, err := source.GetPostings(term)
		if err != nil {
			return nil, nil, err
		}
		if lookup.Filtered {
			continue
		}
		list := lookup.TermPostings.Postings
		if len(list) == 0 {
			continue
		}
		termPostings[lookup.TermPostings.Term] = list
		lists = append(lists, list)
	}

	candidates := candidateSet(lists)
	if candidates.IsEmpty() {
		return nil, termPostings, nil
	}

	// Phase 2: per-posting BM25 accumulation, restricted to the candidate
	// set computed above.
	accum := make(map[int]float64, candidates.GetCardinality())
	for _, list := range lists {
		df := len(list)
		idf := 0.0
		if df > 0 {
			idf = math.Log2(float64(n) / float64(df))
		}

		for _, p := range list {
			if !candidates.Contains(uint32(p.DocID)) {
				continue
			}
			tf := float64(len(p.Positions))
			dl := float64(source.DocLength(p.DocID))
			denom := opts.K1*((1-opts.B)+opts.B*dl/davg) + tf
			score := idf * ((opts.K1 + 1) * tf) / denom
			accum[p.DocID] += score
		}
	}

	scores := make([]ScoredDoc, 0, len(accum))
	for docID, score := range accum {
		scores = append(scores, ScoredDoc{DocID: docID, Score: score})
	}
	sort.Slice(scores, func(i, j int) bool {
		if scores[i].Score != scores[j].Score {
			return scores[i].Score > scores[j].Score
		}
		return scores[i].DocID < scores[j].DocID
	})
	if opts.Limit > 0 && len(scores) > opts.Limit {
		scores = scores[:opts.Limit]
	}
	return scores, termPostings, nil
}

// candidateSet returns the roaring-bitmap union of every docId appearing
// in any of the given term postings lists: the phase 1 candidate filter
// that narrows BM25 accumulation to documents that can possibly score,
// adapted from the teacher's query.go bitmap-union idiom (OpOr's
// bitmap.Or) applied here to rank's own per-term postings instead of
// dictionary bitmaps.
func candidateSet(lists []postings.List) *roaring.Bitmap {
	bm := roaring.New()
	for _, list := range lists {
		for _, p := range list {
			bm.Add(uint32(p.DocID))
		}
	}
	return bm
}
