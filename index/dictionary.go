package index

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Dictionary is the in-memory term→byte-offset map loaded in full from
// the "term : offset" sidecar file C5 produces on its final pass.
type Dictionary map[string]int64

// LoadDictionary reads a dictionary file into memory.
func LoadDictionary(path string) (Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("index: opening dictionary %s: %w", path, err)
	}
	defer f.Close()

	dict := make(Dictionary)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		sep := strings.LastIndex(line, " : ")
		if sep < 0 {
			return nil, fmt.Errorf("index: malformed dictionary line %q in %s", line, path)
		}
		term := line[:sep]
		offset, err := strconv.ParseInt(line[sep+len(" : "):], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("index: malformed dictionary offset in %q: %w", line, err)
		}
		dict[term] = offset
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("index: reading dictionary %s: %w", path, err)
	}
	return dict, nil
}
