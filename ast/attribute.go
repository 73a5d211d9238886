package ast

// AttributeArg is a single named argument inside an attribute, e.g. the
// `write` in `#[storage(write)]`.
type AttributeArg struct {
	Name string
	Span Span
}

// AttributeDecl models one `#[name(args...)]` annotation attached to an
// item, impl, or function.
type AttributeDecl struct {
	Name string
	Args []AttributeArg
	Span Span
}
