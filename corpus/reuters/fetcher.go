package reuters

import (
	"container/list"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// docCacheSize mirrors the Python original's SOUP_CACHE_SIZE=5: an LRU
// of parsed files, so repeated per-doc title/body lookups during result
// enrichment don't reparse the same 1000-document file over and over.
const docCacheSize = 5

// Fetcher resolves a docId to its parsed Document by locating and
// parsing the source file it lives in, with a small LRU cache over
// whole parsed files (grounded on reuters.py's retrieve_doc + the
// OrderedDict-backed soup cache).
type Fetcher struct {
	dir string

	mu      sync.Mutex
	order   *list.List
	entries map[string]*list.Element
}

type cacheEntry struct {
	filename string
	docs     map[int]Document
}

// NewFetcher builds a Fetcher over all "reut2-*.sgm" files in dir.
func NewFetcher(dir string) *Fetcher {
	return &Fetcher{
		dir:     dir,
		order:   list.New(),
		entries: make(map[string]*list.Element),
	}
}

// Fetch returns the Document for docID, parsing (and caching) its
// source file on demand.
func (f *Fetcher) Fetch(docID int) (Document, error) {
	filename := docidLocationFilename(docID)

	f.mu.Lock()
	if elem, ok := f.entries[filename]; ok {
		f.order.MoveToFront(elem)
		entry := elem.Value.(*cacheEntry)
		doc, ok := entry.docs[docID]
		f.mu.Unlock()
		if !ok {
			return Document{}, fmt.Errorf("reuters: docId %d not found in %s", docID, filename)
		}
		return doc, nil
	}
	f.mu.Unlock()

	path := filepath.Join(f.dir, filename)
	file, err := os.Open(path)
	if err != nil {
		return Document{}, fmt.Errorf("reuters: opening %s: %w", path, err)
	}
	defer file.Close()

	parsed, err := ParseAll(file, nil)
	if err != nil {
		return Document{}, fmt.Errorf("reuters: parsing %s: %w", path, err)
	}
	byID := make(map[int]Document, len(parsed))
	for _, d := range parsed {
		byID[d.DocID] = d
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	elem := f.order.PushFront(&cacheEntry{filename: filename, docs: byID})
	f.entries[filename] = elem
	if f.order.Len() > docCacheSize {
		oldest := f.order.Back()
		f.order.Remove(oldest)
		delete(f.entries, oldest.Value.(*cacheEntry).filename)
	}

	doc, ok := byID[docID]
	if !ok {
		return Document{}, fmt.Errorf("reuters: docId %d not found in %s", docID, filename)
	}
	return doc, nil
}

// docidLocationFilename reproduces reuters.py's _docid_location_filename:
// 1000 documents per file, file index = (docId-1)/1000.
func docidLocationFilename(docID int) string {
	fileIndex := (docID - 1) / 1000
	return fmt.Sprintf("reut2-%03d.sgm", fileIndex)
}
