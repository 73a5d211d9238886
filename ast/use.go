package ast

// UseTreeKind distinguishes the small closed set of use-tree grammar
// productions.
type UseTreeKind int

const (
	// UseTreePath is a non-terminal segment, e.g. the `asset` in
	// `std::asset::transfer`, carrying the remainder in Prefix.
	UseTreePath UseTreeKind = iota
	// UseTreeName is a terminal leaf, e.g. `transfer`.
	UseTreeName
	// UseTreeRename is `transfer as xfer`.
	UseTreeRename
	// UseTreeGroup is a brace-delimited set, e.g. `{a, b, Rename as R}`.
	UseTreeGroup
	// UseTreeGlob is a trailing `*`.
	UseTreeGlob
)

// UseTree is one node of the parsed right-hand side of a `use` item.
// Exactly the fields relevant to Kind are meaningful.
type UseTree struct {
	Kind     UseTreeKind
	Name     string    // UseTreeName / UseTreeRename: the original name
	Alias    string    // UseTreeRename: the local alias
	Prefix   *UseTree  // UseTreePath: the remainder of the path
	Children []UseTree // UseTreeGroup: the grouped subtrees
	Span     Span
}
