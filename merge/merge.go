// Package merge implements the k-way external merger (C5) and the
// multi-pass driver that bounds its fan-in (C6). Grounded on
// original_source/irspimi/merge.py (MergeSPIMI) and irsystem.py
// (MultiPassMergeSPIMI).
package merge

import (
	"container/heap"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/corpusdex/irspimi/postings"
)

// ErrMergeIO is the sentinel for spec.md §7 kind 3 (MergeIOError):
// fatal, abort build; partial outputs may be left on disk.
var ErrMergeIO = errors.New("merge: I/O failure during merge")

// dictionaryFileSuffix mirrors merge.py's DICTIONARY_FILE_SUFFIX.
const dictionaryFileSuffix = ".dictionary"

// DictionaryPath returns the sidecar dictionary path for a given merge
// output path.
func DictionaryPath(outPath string) string { return outPath + dictionaryFileSuffix }

// Merge runs one k-way merge pass: inputs (fan-in ≤ k, enforced by the
// caller) are merged into outPath, strictly ascending by term, with at
// most inputBufLen buffered lines per input and outputBufLen buffered
// output lines before a flush. When emitDictionary is true, a parallel
// "term : byte-offset" dictionary file is written alongside outPath.
func Merge(inputs []string, outPath string, inputBufLen, outputBufLen int, emitDictionary bool) error {
	if inputBufLen <= 0 {
		inputBufLen = 10
	}
	if outputBufLen <= 0 {
		outputBufLen = 10
	}

	buffers := make([]*inputBuffer, 0, len(inputs))
	defer func() {
		for _, ib := range buffers {
			ib.close()
		}
	}()
	for _, path := range inputs {
		ib, err := newInputBuffer(path, inputBufLen)
		if err != nil {
			return err
		}
		buffers = append(buffers, ib)
	}

	h := &termHeap{}
	heap.Init(h)
	for i, ib := range buffers {
		if !ib.empty() {
			heap.Push(h, heapEntry{term: ib.head().Term, fileIdx: i})
		}
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("%w: creating %s: %v", ErrMergeIO, outPath, err)
	}
	defer out.Close()

	var dict *os.File
	if emitDictionary {
		dict, err = os.Create(DictionaryPath(outPath))
		if err != nil {
			return fmt.Errorf("%w: creating dictionary for %s: %v", ErrMergeIO, outPath, err)
		}
		defer dict.Close()
	}

	var outBuf []postings.TermPostings
	var bytePos int64

	flush := func() error {
		for _, tp := range outBuf {
			if dict != nil {
				if _, err := fmt.Fprintf(dict, "%s : %d\n", tp.Term, bytePos); err != nil {
					return fmt.Errorf("%w: writing dictionary entry for %q: %v", ErrMergeIO, tp.Term, err)
				}
			}
			line := postings.Emit(tp) + "\n"
			n, err := out.WriteString(line)
			if err != nil {
				return fmt.Errorf("%w: writing %s: %v", ErrMergeIO, outPath, err)
			}
			bytePos += int64(n)
		}
		outBuf = outBuf[:0]
		return nil
	}

	for h.Len() > 0 {
		term := (*h)[0].term
		var merged postings.List
		for h.Len() > 0 && (*h)[0].term == term {
			entry := heap.Pop(h).(heapEntry)
			ib := buffers[entry.fileIdx]
			merged = postings.MergePostingsList(merged, ib.head().Postings)
			if err := ib.advance(); err != nil {
				return err
			}
			if !ib.empty() {
				heap.Push(h, heapEntry{term: ib.head().Term, fileIdx: entry.fileIdx})
			}
		}
		outBuf = append(outBuf, postings.TermPostings{Term: term, Postings: merged})
		if len(outBuf) >= outputBufLen {
			if err := flush(); err != nil {
				return err
			}
		}
	}
	if err := flush(); err != nil {
		return err
	}

	slog.Default().Info("merge: pass complete", "output", outPath, "inputs", len(inputs), "dictionary", emitDictionary)
	return nil
}
