package commands

import (
	"testing"

	"github.com/corpusdex/irspimi/rank"
)

func TestToQueryScoresPreservesOrderAndValues(t *testing.T) {
	in := []rank.ScoredDoc{{DocID: 1, Score: 1.0}, {DocID: 2, Score: 0.5}}
	out := toQueryScores(in)
	if len(out) != 2 || out[0].DocID != 1 || out[0].Score != 1.0 || out[1].DocID != 2 || out[1].Score != 0.5 {
		t.Fatalf("unexpected conversion: %+v", out)
	}
}
