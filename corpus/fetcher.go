package corpus

import "github.com/corpusdex/irspimi/corpus/reuters"

// DocFetcher resolves a docId to its title/body, the external document
// parser spec.md's C12 "lazy enrich" operation calls into. reuters.Fetcher
// is the concrete implementation this module ships.
type DocFetcher interface {
	Fetch(docID int) (reuters.Document, error)
}
