// Package spimi implements the Single-Pass In-Memory Indexer (C4):
// drain a token stream into sorted block files under a bounded memory
// budget. Grounded on original_source/irspimi/spimi.py's SPIMI class.
package spimi

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/corpusdex/irspimi/corpus"
	"github.com/corpusdex/irspimi/postings"
	"github.com/oklog/ulid/v2"
)

// blockNamePrefix mirrors spimi.py's BLOCK_NAME_PREFIX.
const blockNamePrefix = "SPIMIBLOCK"

// DefaultBudget mirrors spimi.py's DEFAULT_BLOCK_SIZE, reinterpreted as
// a term-entry count per spec.md's Design Notes ("an implementation may
// approximate this as N entries").
const DefaultBudget = 65536

// ErrSpill is the sentinel for spec.md §7 kind 2 (SpillError): fatal,
// abort build.
var ErrSpill = errors.New("spimi: cannot open block file for writing")

// TokenSource is the minimal pull interface the inverter drains;
// corpus.Stream satisfies it.
type TokenSource interface {
	Next() (corpus.Token, bool, error)
}

// Inverter repeatedly drains a TokenSource into sorted block files.
type Inverter struct {
	source   TokenSource
	budget   int
	spillDir string
	logger   *slog.Logger
}

// NewInverter builds an Inverter over source, spilling block files under
// spillDir once the in-memory term count reaches budget entries.
func NewInverter(source TokenSource, budget int, spillDir string) *Inverter {
	if budget <= 0 {
		budget = DefaultBudget
	}
	return &Inverter{
		source:   source,
		budget:   budget,
		spillDir: spillDir,
		logger:   slog.Default(),
	}
}

// Invert drains the source until the budget is reached or the stream is
// exhausted, then spills a sorted block file and returns its path.
// exhausted=true with an empty path signals there is nothing left to
// invert (spec.md §4.4 step 3).
func (inv *Inverter) Invert() (path string, exhausted bool, err error) {
	dict := make(map[string]map[int]*postings.Posting)

	for len(dict) < inv.budget {
		tok, ok, nerr := inv.source.Next()
		if nerr != nil {
			return "", false, nerr
		}
		if !ok {
			break
		}
		termMap, exists := dict[tok.Term]
		if !exists {
			termMap = make(map[int]*postings.Posting)
			dict[tok.Term] = termMap
		}
		p, exists := termMap[tok.DocID]
		if !exists {
			p = &postings.Posting{DocID: tok.DocID}
			termMap[tok.DocID] = p
		}
		p.Positions = append(p.Positions, tok.Position)
	}

	if len(dict) == 0 {
		return "", true, nil
	}

	blockPath, err := inv.writeBlock(dict)
	if err != nil {
		return "", false, err
	}
	return blockPath, false, nil
}

func (inv *Inverter) writeBlock(dict map[string]map[int]*postings.Posting) (string, error) {
	terms := make([]string, 0, len(dict))
	for t := range dict {
		terms = append(terms, t)
	}
	sort.Strings(terms)

	suffix := ulid.Make().String()
	name := fmt.Sprintf("%s_%s.blk", blockNamePrefix, suffix)
	path := filepath.Join(inv.spillDir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrSpill, path, err)
	}
	defer f.Close()

	for _, term := range terms {
		docIDs := make([]int, 0, len(dict[term]))
		for docID := range dict[term] {
			docIDs = append(docIDs, docID)
		}
		sort.Ints(docIDs)

		list := make(postings.List, 0, len(docIDs))
		for _, docID := range docIDs {
			p := dict[term][docID]
			sort.Ints(p.Positions)
			list = append(list, *p)
		}

		line := postings.Emit(postings.TermPostings{Term: term, Postings: list})
		if _, err := fmt.Fprintln(f, line); err != nil {
			return "", fmt.Errorf("%w: writing %s: %v", ErrSpill, path, err)
		}
	}

	inv.logger.Info("spimi: spilled block", "path", path, "terms", len(terms))
	return path, nil
}
