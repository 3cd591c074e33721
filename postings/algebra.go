package postings

// Intersect returns the sorted-merge intersection of a and b: a Posting
// for docId d is present iff both sides have one, with its Positions set
// to the sorted union of both sides' positions (spec's AND semantics —
// positions are kept for result display, not just membership).
func Intersect(a, b List) List {
	var out List
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i].DocID < b[j].DocID:
			i++
		case a[i].DocID > b[j].DocID:
			j++
		default:
			out = append(out, Posting{
				DocID:     a[i].DocID,
				Positions: mergePositions(a[i].Positions, b[j].Positions),
			})
			i++
			j++
		}
	}
	return out
}

// Union returns the sorted-merge union of a and b: every docId present in
// either side appears once, with merged positions where both sides cover
// the same document.
func Union(a, b List) List {
	var out List
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i].DocID < b[j].DocID:
			out = append(out, a[i].Clone())
			i++
		case a[i].DocID > b[j].DocID:
			out = append(out, b[j].Clone())
			j++
		default:
			out = append(out, Posting{
				DocID:     a[i].DocID,
				Positions: mergePositions(a[i].Positions, b[j].Positions),
			})
			i++
			j++
		}
	}
	for ; i < len(a); i++ {
		out = append(out, a[i].Clone())
	}
	for ; j < len(b); j++ {
		out = append(out, b[j].Clone())
	}
	return out
}

// Subtract returns a minus b: the Postings of a whose docId does not
// appear in b, positions untouched.
func Subtract(a, b List) List {
	var out List
	i, j := 0, 0
	for i < len(a) {
		for j < len(b) && b[j].DocID < a[i].DocID {
			j++
		}
		if j < len(b) && b[j].DocID == a[i].DocID {
			i++
			continue
		}
		out = append(out, a[i].Clone())
		i++
	}
	return out
}

// Negate returns universe \ x: every docId in universe (ascending) that
// does not appear in x's postings, with no positions (NOT discards
// positions per spec — a complement has no meaningful occurrence offsets).
func Negate(universe []int, x List) List {
	var out List
	j := 0
	for _, docID := range universe {
		for j < len(x) && x[j].DocID < docID {
			j++
		}
		if j < len(x) && x[j].DocID == docID {
			continue
		}
		out = append(out, Posting{DocID: docID})
	}
	return out
}

// mergePositions merges two strictly ascending, duplicate-free position
// slices into one strictly ascending, duplicate-free slice. Mirrors the
// merge-by-comparison recursive structure the block/merge algorithm uses
// for postings, applied one level down to positions.
func mergePositions(a, b []int) []int {
	out := make([]int, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		case a[i] > b[j]:
			out = append(out, b[j])
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}

// MergePostingsList merges two sorted, duplicate-free PostingsLists per
// the merge rule of §4.5: ascending by docId, with positions merged on
// docId equality. This is the same algebra as Union but kept as a
// distinct name since the k-way merger uses it on *block* postings
// (disjoint docId ranges per block, but a term can still straddle two
// blocks at their boundary after a SPIMI spill).
func MergePostingsList(a, b List) List {
	return Union(a, b)
}
