package postings

import (
	"reflect"
	"testing"
)

func TestEmitParseRoundTrip(t *testing.T) {
	cases := []TermPostings{
		{Term: "cat", Postings: List{{DocID: 1, Positions: []int{2}}}},
		{
			Term: "sat",
			Postings: List{
				{DocID: 1, Positions: []int{3}},
				{DocID: 2, Positions: []int{3, 7}},
			},
		},
		{Term: "empty", Postings: nil},
	}

	for _, tp := range cases {
		line := Emit(tp)
		got, err := Parse(line)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", line, err)
		}
		if got.Term != tp.Term {
			t.Errorf("term mismatch: got %q want %q", got.Term, tp.Term)
		}
		if len(got.Postings) == 0 && len(tp.Postings) == 0 {
			continue
		}
		if !reflect.DeepEqual(got.Postings, tp.Postings) {
			t.Errorf("round-trip mismatch: got %+v want %+v", got.Postings, tp.Postings)
		}
	}
}

func TestParseExactFormat(t *testing.T) {
	tp, err := Parse("cat : 1[2],2[1|5]")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := TermPostings{
		Term: "cat",
		Postings: List{
			{DocID: 1, Positions: []int{2}},
			{DocID: 2, Positions: []int{1, 5}},
		},
	}
	if !reflect.DeepEqual(tp, want) {
		t.Errorf("got %+v want %+v", tp, want)
	}
}

func TestParseMalformed(t *testing.T) {
	cases := []string{
		"cat 1[2]",
		"cat : 1[2",
		"cat : x[2]",
		"cat : 1[x]",
	}
	for _, line := range cases {
		if _, err := Parse(line); err == nil {
			t.Errorf("Parse(%q) expected error, got nil", line)
		}
	}
}
