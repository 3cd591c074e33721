// Package corpus implements the streaming tokenizer (C2): it yields
// positional (term, docId, position) triples from an ordered list of
// source files without materializing the whole corpus in memory, and
// tracks the docId list and per-doc emitted-token counts the descriptor
// needs. Grounded on original_source/irspimi/reuters.py's
// ReutersCorpusStream.
package corpus

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/corpusdex/irspimi/analysis"
	"github.com/corpusdex/irspimi/corpus/reuters"
)

// Token is one emitted (term, docId, position) triple.
type Token struct {
	Term     string
	DocID    int
	Position int
}

// Compressor is the subset of analysis.Filter the stream needs.
type Compressor interface {
	Apply(token string) (string, bool)
}

// Stream drains an ordered list of files, document by document, emitting
// tokens in reading order. Compression is applied per spec.md §4.2:
// dropped tokens never advance the running position counter.
type Stream struct {
	files      []string
	compressor Compressor
	logger     *slog.Logger

	docIDList  []int
	docLengths map[int]int

	pending []Token
	fileIdx int
}

// NewStream builds a Stream over files, applying compressor (nil means
// no compression) to every tokenized word.
func NewStream(files []string, compressor Compressor) *Stream {
	return &Stream{
		files:      files,
		compressor: compressor,
		logger:     slog.Default(),
		docLengths: make(map[int]int),
	}
}

// Next returns the next token, or ok=false once every file is exhausted.
// A file that cannot be opened is skipped with a warning (InputMissing,
// spec.md §7 kind 1) and processing continues with the next file.
func (s *Stream) Next() (Token, bool, error) {
	for len(s.pending) == 0 {
		if s.fileIdx >= len(s.files) {
			return Token{}, false, nil
		}
		if err := s.loadNextFile(); err != nil {
			return Token{}, false, err
		}
	}
	tok := s.pending[0]
	s.pending = s.pending[1:]
	return tok, true, nil
}

func (s *Stream) loadNextFile() error {
	path := s.files[s.fileIdx]
	s.fileIdx++

	file, err := os.Open(path)
	if err != nil {
		s.logger.Warn("corpus: skipping unreadable source file", "path", path, "error", err)
		return nil
	}
	defer file.Close()

	docs, err := reuters.ParseAll(file, func(e error) {
		s.logger.Warn("corpus: document parse warning", "path", path, "error", e)
	})
	if err != nil {
		return fmt.Errorf("corpus: parsing %s: %w", path, err)
	}

	for _, doc := range docs {
		s.docIDList = append(s.docIDList, doc.DocID)
		position := 0
		for _, word := range analysis.Tokenize(doc.Title + " " + doc.Body) {
			term := word
			keep := true
			if s.compressor != nil {
				term, keep = s.compressor.Apply(word)
			}
			if !keep {
				continue
			}
			position++
			s.pending = append(s.pending, Token{Term: term, DocID: doc.DocID, Position: position})
		}
		s.docLengths[doc.DocID] = position
	}
	return nil
}

// DocIDList returns the docIds seen so far, in the order first
// encountered (the ordering the descriptor's universe uses).
func (s *Stream) DocIDList() []int {
	out := make([]int, len(s.docIDList))
	copy(out, s.docIDList)
	return out
}

// DocLengths returns the emitted-token count recorded for each docId
// seen so far.
func (s *Stream) DocLengths() map[int]int {
	out := make(map[int]int, len(s.docLengths))
	for k, v := range s.docLengths {
		out[k] = v
	}
	return out
}
