package merge

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/corpusdex/irspimi/postings"
)

// inputBuffer holds up to bufLen parsed TermPostings lines from one
// input file, refilling from disk once drained. Grounded on
// original_source/irspimi/merge.py's _refill_buffer.
type inputBuffer struct {
	file    *os.File
	scanner *bufio.Scanner
	bufLen  int
	buf     []postings.TermPostings
	path    string
}

func newInputBuffer(path string, bufLen int) (*inputBuffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: opening %s: %v", ErrMergeIO, path, err)
	}
	ib := &inputBuffer{file: f, scanner: bufio.NewScanner(f), bufLen: bufLen, path: path}
	if err := ib.refill(); err != nil {
		f.Close()
		return nil, err
	}
	return ib, nil
}

func (ib *inputBuffer) refill() error {
	for len(ib.buf) < ib.bufLen && ib.scanner.Scan() {
		line := strings.TrimRight(ib.scanner.Text(), "\n")
		if line == "" {
			continue
		}
		tp, err := postings.Parse(line)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", postings.ErrCodec, ib.path, err)
		}
		ib.buf = append(ib.buf, tp)
	}
	if err := ib.scanner.Err(); err != nil {
		return fmt.Errorf("%w: reading %s: %v", ErrMergeIO, ib.path, err)
	}
	return nil
}

func (ib *inputBuffer) empty() bool { return len(ib.buf) == 0 }

func (ib *inputBuffer) head() postings.TermPostings { return ib.buf[0] }

// advance drops the consumed head and refills if the buffer emptied.
func (ib *inputBuffer) advance() error {
	ib.buf = ib.buf[1:]
	if len(ib.buf) == 0 {
		return ib.refill()
	}
	return nil
}

func (ib *inputBuffer) close() error { return ib.file.Close() }
