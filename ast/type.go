package ast

// Type is a simplified representation of a Sway type expression: a name
// (possibly path-qualified, e.g. "std::identity::Identity") plus any generic
// arguments written at the use site ("Vec<u64>" -> Name: "Vec", Args: [u64]).
type Type struct {
	Name string
	Args []Type
	Span Span
}

// StorageKeyType synthesizes the built-in wrapper the type inferencer
// produces for a `storage.<field>` projection: StorageKey<Inner>.
func StorageKeyType(inner Type) Type {
	return Type{Name: "StorageKey", Args: []Type{inner}}
}

// Unresolved is returned by the type environment when no rule applies.
var Unresolved = Type{Name: ""}

// IsUnresolved reports whether t carries no usable type information.
func (t Type) IsUnresolved() bool { return t.Name == "" && len(t.Args) == 0 }

// Unit is the empty-tuple type `()`.
var Unit = Type{Name: "()"}
