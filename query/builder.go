package query

import "strings"

// Builder is a fluent expression builder adapted from the teacher's
// QueryBuilder (query.go's Term/And/Or/Not/Group/Execute chain), kept
// as a convenience layer over the real parser/evaluator rather than a
// bitmap-only API: it assembles a Boolean expression string and hands
// it to an Evaluator, so callers who prefer method chaining over
// hand-written query strings still go through the one evaluation path.
type Builder struct {
	parts []string
}

// NewBuilder starts an empty expression.
func NewBuilder() *Builder { return &Builder{} }

// Term appends a bare query term.
func (b *Builder) Term(term string) *Builder {
	b.parts = append(b.parts, term)
	return b
}

// And appends the AND operator.
func (b *Builder) And() *Builder {
	b.parts = append(b.parts, "AND")
	return b
}

// Or appends the OR operator.
func (b *Builder) Or() *Builder {
	b.parts = append(b.parts, "OR")
	return b
}

// Not appends the NOT operator, applying to the next atom.
func (b *Builder) Not() *Builder {
	b.parts = append(b.parts, "NOT")
	return b
}

// Group appends a parenthesized sub-expression built by inner.
func (b *Builder) Group(inner *Builder) *Builder {
	b.parts = append(b.parts, "("+inner.Expression()+")")
	return b
}

// Expression renders the built expression string.
func (b *Builder) Expression() string {
	return strings.Join(b.parts, " ")
}

// Evaluate renders and evaluates the built expression against e.
func (b *Builder) Evaluate(e *Evaluator) (*Result, error) {
	return e.Evaluate(b.Expression())
}
