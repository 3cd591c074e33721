package index

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/RoaringBitmap/roaring"
	"github.com/corpusdex/irspimi/analysis"
	"github.com/corpusdex/irspimi/postings"
)

// IndexFilename, DictionarySuffix, DescriptorSuffix name the three
// persisted files under the index directory (spec.md §6).
const (
	IndexFilename    = "inverted_index.ii"
	DictionarySuffix = ".dictionary"
	DescriptorSuffix = ".desc"
)

// Lookup is the result of a GetPostings call: either Filtered is true
// (the compression recipe dropped the term — distinct from a miss) or
// TermPostings holds the result, empty when the term was not found in
// the dictionary.
type Lookup struct {
	Filtered     bool
	TermPostings postings.TermPostings
}

// Reader holds an open handle on the index file, the term→offset
// dictionary loaded in full, and the descriptor, answering random-access
// postings lookups with the build-time compression recipe re-applied
// symmetrically to every query term (spec.md §4.1, §4.8).
type Reader struct {
	file       *os.File
	dict       Dictionary
	descriptor *Descriptor
	recipe     analysis.Chain

	universe     *roaring.Bitmap
	avgDocLength float64
}

// Open loads the index, dictionary, and descriptor rooted at dir (the
// three files IndexFilename/+DictionarySuffix/+DescriptorSuffix name).
func Open(dir string) (*Reader, error) {
	indexPath := dir + string(os.PathSeparator) + IndexFilename
	f, err := os.Open(indexPath)
	if err != nil {
		return nil, fmt.Errorf("index: opening %s: %w", indexPath, err)
	}

	dict, err := LoadDictionary(indexPath + DictionarySuffix)
	if err != nil {
		f.Close()
		return nil, err
	}

	desc, err := LoadDescriptor(indexPath + DescriptorSuffix)
	if err != nil {
		f.Close()
		return nil, err
	}

	recipe, err := analysis.ParseRecipe(desc.CompressionRecipe)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%w: %v", ErrDescriptor, err)
	}

	universe := roaring.New()
	var totalLen int64
	for _, docID := range desc.DocIDList {
		universe.Add(uint32(docID))
		totalLen += int64(desc.DocLengths[docID])
	}
	avg := 0.0
	if len(desc.DocIDList) > 0 {
		avg = float64(totalLen) / float64(len(desc.DocIDList))
	}

	return &Reader{
		file:         f,
		dict:         dict,
		descriptor:   desc,
		recipe:       recipe,
		universe:     universe,
		avgDocLength: avg,
	}, nil
}

// Close releases the open index file handle.
func (r *Reader) Close() error { return r.file.Close() }

// GetPostings implements spec.md §4.8's contract: apply the compression
// recipe to term; if dropped, Lookup.Filtered is true. Otherwise seek to
// the dictionary offset (if any) and parse the line, or return an empty
// TermPostings (present, no hits) on a dictionary miss.
func (r *Reader) GetPostings(term string) (Lookup, error) {
	compressed, keep := r.recipe.Apply(term)
	if !keep {
		return Lookup{Filtered: true}, nil
	}

	offset, ok := r.dict[compressed]
	if !ok {
		return Lookup{TermPostings: postings.TermPostings{Term: compressed}}, nil
	}

	if _, err := r.file.Seek(offset, io.SeekStart); err != nil {
		return Lookup{}, fmt.Errorf("index: seeking to offset %d for %q: %w", offset, compressed, err)
	}
	line, err := bufio.NewReader(r.file).ReadString('\n')
	if err != nil && line == "" {
		return Lookup{}, fmt.Errorf("%w: reading line at offset %d for %q: %v", postings.ErrCodec, offset, compressed, err)
	}
	tp, err := postings.Parse(line)
	if err != nil {
		return Lookup{}, fmt.Errorf("%w: at offset %d for %q: %v", postings.ErrCodec, offset, compressed, err)
	}
	if tp.Term != compressed {
		return Lookup{}, fmt.Errorf("%w: dictionary offset %d for %q yielded term %q", postings.ErrCodec, offset, compressed, tp.Term)
	}
	return Lookup{TermPostings: tp}, nil
}

// Universe returns the ordered docIdList recorded at build time.
func (r *Reader) Universe() []int {
	out := make([]int, len(r.descriptor.DocIDList))
	copy(out, r.descriptor.DocIDList)
	return out
}

// UniverseBitmap returns the roaring-bitmap form of the universe, used
// by the Boolean evaluator's NOT for O(1)-amortized membership tests
// instead of a linear scan of the ordered docIdList.
func (r *Reader) UniverseBitmap() *roaring.Bitmap { return r.universe }

// DocLength returns the emitted-token count recorded for docID.
func (r *Reader) DocLength(docID int) int { return r.descriptor.DocLengths[docID] }

// AvgDocLength returns the corpus-wide average document length.
func (r *Reader) AvgDocLength() float64 { return r.avgDocLength }

// DocCount returns the number of documents in the universe.
func (r *Reader) DocCount() int { return len(r.descriptor.DocIDList) }

// CompressionRecipe returns the textual recipe this reader applies to
// every query term.
func (r *Reader) CompressionRecipe() string { return r.descriptor.CompressionRecipe }
