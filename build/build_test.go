package build

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/corpusdex/irspimi/analysis"
)

// tinyCorpusFixture writes the spec.md §8 scenario 1 fixture: doc 1 =
// "The cat sat", doc 2 = "The dog sat", one document per <REUTERS> tag.
func tinyCorpusFixture(t *testing.T) string {
	t.Helper()
	const sgml = `<!DOCTYPE lewis SYSTEM "lewis.dtd">
<REUTERS NEWID="1">
<TEXT>
<BODY>The cat sat</BODY>
</TEXT>
</REUTERS>
<REUTERS NEWID="2">
<TEXT>
<BODY>The dog sat</BODY>
</TEXT>
</REUTERS>
`
	path := filepath.Join(t.TempDir(), "reut2-000.sgm")
	if err := os.WriteFile(path, []byte(sgml), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

// TestBuildTinyCorpusLiteralScenario exercises the full C2->C4->C6/C5->C7
// pipeline end to end and asserts the produced inverted_index.ii matches
// spec.md §8 scenario 1 byte-for-byte: "cat : 1[2]", "dog : 2[2]",
// "sat : 1[3],2[3]", "the : 1[1],2[1]", sorted ascending by term.
func TestBuildTinyCorpusLiteralScenario(t *testing.T) {
	src := tinyCorpusFixture(t)
	destDir := t.TempDir()

	opts := Options{
		Files:       []string{src},
		DestDir:     destDir,
		Recipe:      analysis.Chain{Filters: []analysis.Filter{analysis.CaseFolding{}}},
		SpimiBudget: 1000,
		FanIn:       8,
		InputBufLen: 16,
		OutputBuf:   16,
	}

	dir, err := Run(opts)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if dir != destDir {
		t.Fatalf("expected dest dir %q, got %q", destDir, dir)
	}

	indexPath := filepath.Join(destDir, "inverted_index.ii")
	got, err := os.ReadFile(indexPath)
	if err != nil {
		t.Fatalf("reading %s: %v", indexPath, err)
	}

	want := "cat : 1[2]\ndog : 2[2]\nsat : 1[3],2[3]\nthe : 1[1],2[1]\n"
	if string(got) != want {
		t.Errorf("index content mismatch:\ngot:\n%q\nwant:\n%q", string(got), want)
	}
}

// TestBuildDocLengthsMatchEmittedTokenCount checks P4: docLengths[d]
// equals the number of tokens emitted for d after compression.
func TestBuildDocLengthsMatchEmittedTokenCount(t *testing.T) {
	src := tinyCorpusFixture(t)
	destDir := t.TempDir()

	opts := Options{
		Files:       []string{src},
		DestDir:     destDir,
		Recipe:      analysis.Chain{Filters: []analysis.Filter{analysis.CaseFolding{}}},
		SpimiBudget: 1000,
		FanIn:       8,
		InputBufLen: 16,
		OutputBuf:   16,
	}
	if _, err := Run(opts); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	descPath := filepath.Join(destDir, "inverted_index.ii.desc")
	data, err := os.ReadFile(descPath)
	if err != nil {
		t.Fatalf("reading descriptor: %v", err)
	}
	// Both documents tokenize to exactly 3 words ("the cat sat" / "the
	// dog sat"); the descriptor's JSON docLengths map must say so.
	for _, want := range []string{`"1":3`, `"2":3`} {
		if !containsCompact(data, want) {
			t.Errorf("expected descriptor to record %s, got:\n%s", want, data)
		}
	}
}

// containsCompact checks for want's digits adjacent regardless of the
// JSON encoder's exact key-quoting/whitespace, by stripping spaces.
func containsCompact(data []byte, want string) bool {
	compact := make([]byte, 0, len(data))
	for _, b := range data {
		if b == ' ' || b == '\n' || b == '\t' {
			continue
		}
		compact = append(compact, b)
	}
	return strings.Contains(string(compact), want)
}
