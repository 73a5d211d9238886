// Package ast is a thin, read-only view over the AST produced by the Sway
// parser. The parser itself is an external collaborator; this package only
// models the shapes the analysis core needs to walk and inspect.
package ast

// Span is a byte-offset range identifying a node's source text. Span
// equality is the canonical handle detectors use to key per-block state;
// spans are compared by value, never by pointer identity.
type Span struct {
	Start int
	End   int
}

// Ident is a single identifier occurrence with its own span, distinct from
// the span of any surrounding expression.
type Ident struct {
	Name string
	Span Span
}

func (i Ident) String() string { return i.Name }
