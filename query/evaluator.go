package query

import (
	"fmt"

	"github.com/RoaringBitmap/roaring"

	"github.com/corpusdex/irspimi/index"
	"github.com/corpusdex/irspimi/postings"
)

// Source is the index-reading surface the evaluator needs; index.Reader
// satisfies it. Universe returns the canonical ordered docIdList (what
// the spec's universe() operation returns); UniverseBitmap backs NOT
// evaluation below.
type Source interface {
	GetPostings(term string) (index.Lookup, error)
	Universe() []int
	UniverseBitmap() *roaring.Bitmap
}

// Evaluator walks a parsed Boolean expression against a Source,
// producing a Result. A fresh Result is built per Evaluate call.
type Evaluator struct {
	source Source
}

// NewEvaluator builds an Evaluator reading from source.
func NewEvaluator(source Source) *Evaluator {
	return &Evaluator{source: source}
}

// Evaluate parses and evaluates expr, returning the unranked Result.
func (e *Evaluator) Evaluate(expr string) (*Result, error) {
	tree, err := NewParser(expr).Parse()
	if err != nil {
		return nil, err
	}
	result := newResult()
	list, err := e.visit(tree, result)
	if err != nil {
		return nil, err
	}
	var final postings.List
	if list != nil {
		final = *list
	}
	result.finalizeBoolean(final)
	return result, nil
}

// visit returns nil to mean "filtered" (the term-identity sentinel of
// spec.md §4.9's filtered-term rule), and a non-nil (possibly empty)
// *postings.List otherwise.
func (e *Evaluator) visit(node Node, result *Result) (*postings.List, error) {
	switch n := node.(type) {
	case BinOp:
		return e.visitBinOp(n, result)
	case UnaryOp:
		return e.visitUnaryOp(n, result)
	case TermNode:
		return e.visitTerm(n, result)
	default:
		return nil, fmt.Errorf("query: unknown AST node type %T", node)
	}
}

func (e *Evaluator) visitBinOp(n BinOp, result *Result) (*postings.List, error) {
	left, err := e.visit(n.Left, result)
	if err != nil {
		return nil, err
	}
	right, err := e.visit(n.Right, result)
	if err != nil {
		return nil, err
	}

	switch n.Op {
	case AND:
		// Filtered-term rule: a filtered side is identity for AND.
		if left == nil && right == nil {
			return nil, nil
		}
		if left == nil {
			return right, nil
		}
		if right == nil {
			return left, nil
		}
		merged := postings.Intersect(*left, *right)
		return &merged, nil
	case OR:
		// Filtered-term rule: a filtered side is empty for OR.
		var l, r postings.List
		if left != nil {
			l = *left
		}
		if right != nil {
			r = *right
		}
		merged := postings.Union(l, r)
		return &merged, nil
	default:
		return nil, fmt.Errorf("query: unknown binary operator %v", n.Op)
	}
}

func (e *Evaluator) visitUnaryOp(n UnaryOp, result *Result) (*postings.List, error) {
	child, err := e.visit(n.Child, result)
	if err != nil {
		return nil, err
	}
	// Filtered-term rule: NOT filtered = universe (empty bitmap input).
	var childList postings.List
	if child != nil {
		childList = *child
	}
	negated := negateBitmap(e.source.UniverseBitmap(), childList)
	return &negated, nil
}

// negateBitmap computes universe \ x via roaring.AndNot, adapted from the
// teacher's query.go QueryBuilder.negateBitmap (built on an AllOf-style
// full-universe bitmap instead of linearly scanning an ordered docIdList),
// then converts the resulting bitmap back to an ascending postings.List
// with no positions — a NOT complement has no meaningful occurrence
// offsets.
func negateBitmap(universe *roaring.Bitmap, x postings.List) postings.List {
	xBitmap := roaring.New()
	for _, p := range x {
		xBitmap.Add(uint32(p.DocID))
	}
	complement := roaring.AndNot(universe, xBitmap)
	out := make(postings.List, 0, complement.GetCardinality())
	it := complement.Iterator()
	for it.HasNext() {
		out = append(out, postings.Posting{DocID: int(it.Next())})
	}
	return out
}

func (e *Evaluator) visitTerm(n TermNode, result *Result) (*postings.List, error) {
	lookup, err := e.source.GetPostings(n.Text)
	if err != nil {
		return nil, err
	}
	if lookup.Filtered {
		result.recordFiltered(n.Text)
		return nil, nil
	}
	list := lookup.TermPostings.Postings
	result.recordTerm(n.Text, list)
	return &list, nil
}
