package query

import "testing"

func TestBuilderExpressionAndEvaluate(t *testing.T) {
	b := NewBuilder().Term("cat").And().Term("sat")
	if b.Expression() != "cat AND sat" {
		t.Fatalf("unexpected expression: %q", b.Expression())
	}

	src := tinyCorpusSource()
	e := NewEvaluator(src)
	result, err := b.Evaluate(e)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Docs) != 1 || result.Docs[0].DocID != 1 {
		t.Fatalf("expected {1}, got %+v", result.Docs)
	}
}

func TestBuilderGroup(t *testing.T) {
	inner := NewBuilder().Term("cat").Or().Term("dog")
	b := NewBuilder().Group(inner).And().Term("sat")
	if b.Expression() != "(cat OR dog) AND sat" {
		t.Fatalf("unexpected expression: %q", b.Expression())
	}
}
