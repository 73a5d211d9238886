// Package scope maintains the nested variable/function/storage
// environment a detector consults to resolve identifiers to declared
// types, and implements type_of(expr) inference over that environment.
package scope

import swayast "github.com/ourovoros-io/sway-analyzer-go/ast"

// Kind classifies a binding by where it was declared.
type Kind int

const (
	Local Kind = iota
	Parameter
	Constant
	Configurable
	Storage
)

// Binding is one declared name visible in a scope.
type Binding struct {
	Kind Kind
	Name string
	Type swayast.Type
}

// Scope is one lexical region: a parent pointer plus its own ordered
// variable/function declarations. Lookup walks from the innermost scope
// toward the root, and within one scope considers the most recently
// appended matching binding first so inner shadowing wins.
type Scope struct {
	parent    *Scope
	bindings  []Binding
	functions map[string]*swayast.FnSignature

	// storageFields lives only on the root (module) scope: storage
	// variables occupy a namespace distinct from locals/parameters, so a
	// `storage.x` projection never resolves as a plain identifier lookup.
	storageFields map[string]swayast.Type
}

// NewRoot creates the file/module-level scope. Storage field types are
// registered here once per module and are visible from every descendant
// scope regardless of nesting.
func NewRoot() *Scope {
	return &Scope{
		functions:     make(map[string]*swayast.FnSignature),
		storageFields: make(map[string]swayast.Type),
	}
}

// NewChild creates a scope nested directly inside parent, e.g. a function
// body or a nested block.
func NewChild(parent *Scope) *Scope {
	return &Scope{parent: parent, functions: make(map[string]*swayast.FnSignature)}
}

// Declare appends a new binding to s. Re-declaring a name in the same
// scope (shadowing within one block) is allowed; Lookup always returns
// the most recent one.
func (s *Scope) Declare(kind Kind, name string, typ swayast.Type) {
	s.bindings = append(s.bindings, Binding{Kind: kind, Name: name, Type: typ})
}

// DeclareStorageField registers a storage field's declared type on the
// module root scope.
func (s *Scope) DeclareStorageField(name string, typ swayast.Type) {
	root := s
	for root.parent != nil {
		root = root.parent
	}
	if root.storageFields == nil {
		root.storageFields = make(map[string]swayast.Type)
	}
	root.storageFields[name] = typ
}

// DeclareFunction registers a function signature visible from this scope
// downward (used for call-site type inference, if ever needed, and for
// function-name recognition by detectors).
func (s *Scope) DeclareFunction(sig *swayast.FnSignature) {
	s.functions[sig.Name.Name] = sig
}

// Lookup finds the nearest-enclosing, most-recently-declared binding for
// name.
func (s *Scope) Lookup(name string) (Binding, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		for i := len(cur.bindings) - 1; i >= 0; i-- {
			if cur.bindings[i].Name == name {
				return cur.bindings[i], true
			}
		}
	}
	return Binding{}, false
}

// LookupFunction finds a function declared visible from s.
func (s *Scope) LookupFunction(name string) (*swayast.FnSignature, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		if fn, ok := cur.functions[name]; ok {
			return fn, true
		}
	}
	return nil, false
}

// LookupStorageField resolves a storage field's declared type.
func (s *Scope) LookupStorageField(name string) (swayast.Type, bool) {
	root := s
	for root.parent != nil {
		root = root.parent
	}
	typ, ok := root.storageFields[name]
	return typ, ok
}
