package merge

// heapEntry is one live (term, fileIndex) pair: the current buffer-head
// term of input file fileIndex. The heap invariant (spec.md §4.5) holds
// exactly one entry per non-exhausted input.
type heapEntry struct {
	term    string
	fileIdx int
}

// termHeap is a container/heap min-heap ordered by term.
type termHeap []heapEntry

func (h termHeap) Len() int            { return len(h) }
func (h termHeap) Less(i, j int) bool  { return h[i].term < h[j].term }
func (h termHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *termHeap) Push(x interface{}) { *h = append(*h, x.(heapEntry)) }
func (h *termHeap) Pop() interface{} {
	old := *h
	n := len(old)
	e := old[n-1]
	*h = old[:n-1]
	return e
}
