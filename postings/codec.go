package postings

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrCodec is the sentinel wrapped by every codec parse failure; callers
// compare with errors.Is and add file/offset context via fmt.Errorf's
// %w wrapping at the call site (the merge and index readers do this).
var ErrCodec = errors.New("postings: malformed codec line")

// Emit renders a TermPostings in the external line format:
//
//	<term> : <docId1>[<p1>|<p2>|...],<docId2>[...],...
//
// with no trailing newline; callers append "\n" when writing to a file.
func Emit(tp TermPostings) string {
	var b strings.Builder
	b.WriteString(tp.Term)
	b.WriteString(" : ")
	for i, p := range tp.Postings {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(p.DocID))
		b.WriteByte('[')
		for j, pos := range p.Positions {
			if j > 0 {
				b.WriteByte('|')
			}
			b.WriteString(strconv.Itoa(pos))
		}
		b.WriteByte(']')
	}
	return b.String()
}

// Parse is the exact inverse of Emit: parse(emit(tp)) == tp for every
// TermPostings (the codec round-trip law).
func Parse(line string) (TermPostings, error) {
	line = strings.TrimRight(line, "\n")
	sep := strings.Index(line, " : ")
	if sep < 0 {
		return TermPostings{}, fmt.Errorf("%w: missing ' : ' separator in %q", ErrCodec, line)
	}
	term := line[:sep]
	rest := line[sep+len(" : "):]

	tp := TermPostings{Term: term}
	if rest == "" {
		return tp, nil
	}

	for _, chunk := range strings.Split(rest, ",") {
		open := strings.IndexByte(chunk, '[')
		if open < 0 || !strings.HasSuffix(chunk, "]") {
			return TermPostings{}, fmt.Errorf("%w: malformed posting chunk %q in line %q", ErrCodec, chunk, line)
		}
		docIDStr := chunk[:open]
		docID, err := strconv.Atoi(docIDStr)
		if err != nil {
			return TermPostings{}, fmt.Errorf("%w: bad docId %q: %v", ErrCodec, docIDStr, err)
		}
		posStr := chunk[open+1 : len(chunk)-1]
		var positions []int
		if posStr != "" {
			for _, ps := range strings.Split(posStr, "|") {
				pos, err := strconv.Atoi(ps)
				if err != nil {
					return TermPostings{}, fmt.Errorf("%w: bad position %q: %v", ErrCodec, ps, err)
				}
				positions = append(positions, pos)
			}
		}
		tp.Postings = append(tp.Postings, Posting{DocID: docID, Positions: positions})
	}
	return tp, nil
}
