package spimi

import (
	"bufio"
	"os"
	"testing"

	"github.com/corpusdex/irspimi/corpus"
	"github.com/corpusdex/irspimi/postings"
)

type sliceSource struct {
	toks []corpus.Token
	i    int
}

func (s *sliceSource) Next() (corpus.Token, bool, error) {
	if s.i >= len(s.toks) {
		return corpus.Token{}, false, nil
	}
	tok := s.toks[s.i]
	s.i++
	return tok, true, nil
}

func TestInvertProducesSortedBlock(t *testing.T) {
	dir := t.TempDir()
	src := &sliceSource{toks: []corpus.Token{
		{Term: "sat", DocID: 1, Position: 1},
		{Term: "cat", DocID: 1, Position: 2},
		{Term: "sat", DocID: 2, Position: 1},
	}}
	inv := NewInverter(src, DefaultBudget, dir)

	path, exhausted, err := inv.Invert()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if exhausted {
		t.Fatal("expected a block to be produced, got exhausted")
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open block: %v", err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if len(lines) != 2 {
		t.Fatalf("expected 2 term lines, got %d: %v", len(lines), lines)
	}
	if lines[0][:3] != "cat" {
		t.Errorf("expected terms sorted ascending, first line was %q", lines[0])
	}

	tp, err := postings.Parse(lines[1])
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if tp.Term != "sat" || len(tp.Postings) != 2 {
		t.Errorf("unexpected sat postings: %+v", tp)
	}
}

func TestInvertExhaustedOnEmptyStream(t *testing.T) {
	dir := t.TempDir()
	src := &sliceSource{}
	inv := NewInverter(src, DefaultBudget, dir)

	path, exhausted, err := inv.Invert()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !exhausted || path != "" {
		t.Errorf("expected exhausted with empty path, got exhausted=%v path=%q", exhausted, path)
	}
}

func TestInvertRespectsBudget(t *testing.T) {
	dir := t.TempDir()
	src := &sliceSource{toks: []corpus.Token{
		{Term: "a", DocID: 1, Position: 1},
		{Term: "b", DocID: 1, Position: 2},
		{Term: "c", DocID: 1, Position: 3},
	}}
	inv := NewInverter(src, 2, dir)

	path, exhausted, err := inv.Invert()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if exhausted {
		t.Fatal("did not expect exhausted on first call")
	}

	f, _ := os.Open(path)
	defer f.Close()
	var count int
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		count++
	}
	if count != 2 {
		t.Errorf("expected exactly budget (2) terms in first block, got %d", count)
	}

	path2, exhausted2, err := inv.Invert()
	if err != nil {
		t.Fatalf("unexpected error on second call: %v", err)
	}
	if exhausted2 {
		t.Fatal("expected remaining token to produce a second block")
	}
	if path2 == path {
		t.Error("expected a distinct block file on the second call")
	}
}
