// Package postings defines the on-disk positional posting model and the
// textual codec used to serialize it, plus the sorted-merge algebra
// (intersect/union/subtract) the Boolean query engine runs on.
package postings

import "fmt"

// Posting records one document's occurrences of a term: a docId and the
// strictly ascending, duplicate-free 1-based positions within that
// document where the term (post-compression) occurred.
type Posting struct {
	DocID     int
	Positions []int
}

// Clone returns a deep copy so callers can mutate the result of an
// algebra operation without aliasing the inputs.
func (p Posting) Clone() Posting {
	positions := make([]int, len(p.Positions))
	copy(positions, p.Positions)
	return Posting{DocID: p.DocID, Positions: positions}
}

// List is an ordered sequence of Postings, strictly ascending by DocID,
// with no duplicate DocIDs.
type List []Posting

// DocIDs returns the ordered document ids covered by the list.
func (l List) DocIDs() []int {
	ids := make([]int, len(l))
	for i, p := range l {
		ids[i] = p.DocID
	}
	return ids
}

// TermPostings pairs a term with its postings list.
type TermPostings struct {
	Term     string
	Postings List
}

func (tp TermPostings) String() string {
	return fmt.Sprintf("%s : %d docs", tp.Term, len(tp.Postings))
}
