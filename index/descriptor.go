// Package index implements the descriptor/dictionary sidecar (C7) and
// the random-access index reader (C8). Grounded on
// original_source/irspimi/inverted_index.py's InvertedIndexDescriptor
// and InvertedIndex.
package index

import (
	"encoding/json"
	"fmt"
	"os"
)

// Descriptor is the small structured sidecar document persisted next to
// the index file: the ordered universe of docIds, each doc's
// emitted-token length, and the textual compression recipe used at
// build time (so the reader re-applies the identical chain to query
// terms). Unlike the Python original's descriptor, which round-trips
// its compression field through repr()/eval(), CompressionRecipe here
// is the closed grammar analysis.ParseRecipe understands (see
// DESIGN.md) — encoding/json is used for the envelope itself since
// there is no ecosystem serialization library in the teacher's stack
// this concern would otherwise claim.
type Descriptor struct {
	DocIDList         []int       `json:"docIdList"`
	DocLengths        map[int]int `json:"docLengths"`
	CompressionRecipe string      `json:"compressionRecipe"`
}

// Save writes the descriptor as JSON to path.
func (d *Descriptor) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("index: creating descriptor %s: %w", path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("index: encoding descriptor %s: %w", path, err)
	}
	return nil
}

// LoadDescriptor reads a descriptor previously written by Save. A
// missing or malformed descriptor is fatal at session start (spec.md §7
// kind 7, DescriptorError).
func LoadDescriptor(path string) (*Descriptor, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s: %v", ErrDescriptor, path, err)
	}
	defer f.Close()

	var d Descriptor
	if err := json.NewDecoder(f).Decode(&d); err != nil {
		return nil, fmt.Errorf("%w: parsing %s: %v", ErrDescriptor, path, err)
	}
	return &d, nil
}
