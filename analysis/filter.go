package analysis

import (
	"bufio"
	"os"
	"regexp"
	"strconv"
	"strings"

	snowballeng "github.com/kljensen/snowball/english"
)

// Filter is the compression pipeline's single operation: compress a
// token, or drop it. A drop is signalled by the second return value.
type Filter interface {
	Apply(token string) (string, bool)
	// Recipe returns this filter's textual name, the form persisted in
	// the descriptor and re-parsed at query time (ParseRecipe).
	Recipe() string
}

var numberPattern = regexp.MustCompile(`^-?[0-9]+(\.[0-9]+)?$`)
var punctuationStrip = regexp.MustCompile(`[[:punct:]]`)

// NoNumbers drops a token that, after stripping ASCII punctuation,
// matches an integer or decimal literal.
type NoNumbers struct{}

func (NoNumbers) Apply(token string) (string, bool) {
	stripped := punctuationStrip.ReplaceAllString(token, "")
	if numberPattern.MatchString(stripped) {
		return "", false
	}
	return token, true
}

func (NoNumbers) Recipe() string { return "nonum" }

// CaseFolding lowercases the token with strings.ToLower (Unicode simple
// lowercase mapping). Full case folding, such as "ß" to "ss", is not
// applied.
type CaseFolding struct{}

func (CaseFolding) Apply(token string) (string, bool) {
	return strings.ToLower(token), true
}

func (CaseFolding) Recipe() string { return "casefold" }

// NoStopWords drops any token appearing among the first N non-blank
// lines of a stop-word list. When Path is empty the embedded canonical
// list (Stopwords) is used instead of reading a file, which is what the
// CLI's stopw30/stopw150 recipe names resolve to (SPEC_FULL.md §5/§6);
// an explicit Path supports the general NoStopWords(k, path) contract of
// spec.md §4.1 for callers that bring their own list.
type NoStopWords struct {
	N    int
	Path string

	words map[string]struct{}
}

// NewNoStopWords builds the filter, loading and memoizing the word set.
func NewNoStopWords(n int, path string) (*NoStopWords, error) {
	f := &NoStopWords{N: n, Path: path}
	var lines []string
	if path == "" {
		lines = Stopwords(n)
	} else {
		var err error
		lines, err = readFirstNNonBlankLines(path, n)
		if err != nil {
			return nil, err
		}
	}
	f.words = make(map[string]struct{}, len(lines))
	for _, w := range lines {
		f.words[w] = struct{}{}
	}
	return f, nil
}

func readFirstNNonBlankLines(path string, n int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() && len(lines) < n {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, scanner.Err()
}

func (f *NoStopWords) Apply(token string) (string, bool) {
	if _, drop := f.words[token]; drop {
		return "", false
	}
	return token, true
}

func (f *NoStopWords) Recipe() string {
	if f.N == 30 {
		return "stopw30"
	}
	if f.N == 150 {
		return "stopw150"
	}
	return "stopw" + strconv.Itoa(f.N)
}

// PorterStemmer reduces a token to its Porter/Snowball stem, imported
// from github.com/kljensen/snowball/english rather than reimplemented
// (spec.md §1 treats the stemming algorithm itself as out of scope).
type PorterStemmer struct{}

func (PorterStemmer) Apply(token string) (string, bool) {
	return snowballeng.Stem(token, false), true
}

func (PorterStemmer) Recipe() string { return "portstem" }

// Chain applies filters in order; a drop by any filter short-circuits
// the remaining filters and drops the token.
type Chain struct {
	Filters []Filter
}

func (c Chain) Apply(token string) (string, bool) {
	cur := token
	for _, f := range c.Filters {
		var keep bool
		cur, keep = f.Apply(cur)
		if !keep {
			return "", false
		}
	}
	return cur, true
}

func (c Chain) Recipe() string {
	names := make([]string, len(c.Filters))
	for i, f := range c.Filters {
		names[i] = f.Recipe()
	}
	return strings.Join(names, ",")
}
