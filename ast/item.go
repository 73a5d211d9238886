package ast

// Item is any top-level module declaration. The set of concrete kinds is
// closed: ItemUse, ItemStruct, ItemEnum, ItemFn, ItemTrait, ItemImpl,
// ItemAbi, ItemConst, ItemStorage, ItemConfigurable, ItemTypeAlias,
// ItemSubmodule.
type Item interface {
	Span() Span
	ItemKind() string
}

// Module is a single parsed source file: an ordered sequence of items.
type Module struct {
	Items    []Item
	ItemSpan Span
}

func (m *Module) Span() Span { return m.ItemSpan }

// ItemUse is a top-level `use <tree>;` declaration.
type ItemUse struct {
	Tree       UseTree
	Attributes []AttributeDecl
	NodeSpan   Span
}

func (i *ItemUse) Span() Span     { return i.NodeSpan }
func (i *ItemUse) ItemKind() string { return "use" }

// ItemSubmodule is a `mod <name>;` declaration.
type ItemSubmodule struct {
	Name       Ident
	Attributes []AttributeDecl
	NodeSpan   Span
}

func (i *ItemSubmodule) Span() Span     { return i.NodeSpan }
func (i *ItemSubmodule) ItemKind() string { return "submodule" }

// TypeField is a named, typed field used by structs, enums, storage and
// configurable blocks alike.
type TypeField struct {
	Attributes []AttributeDecl
	Name       Ident
	Type       Type
	Span       Span
}

// ItemStruct is a `struct Name { fields... }` declaration.
type ItemStruct struct {
	Name       Ident
	Generics   []string
	Fields     []TypeField
	Attributes []AttributeDecl
	NodeSpan   Span
}

func (i *ItemStruct) Span() Span     { return i.NodeSpan }
func (i *ItemStruct) ItemKind() string { return "struct" }

// ItemEnum is an `enum Name { variants... }` declaration.
type ItemEnum struct {
	Name       Ident
	Generics   []string
	Fields     []TypeField
	Attributes []AttributeDecl
	NodeSpan   Span
}

func (i *ItemEnum) Span() Span     { return i.NodeSpan }
func (i *ItemEnum) ItemKind() string { return "enum" }

// Param is a function parameter.
type Param struct {
	Name Ident
	Type Type
	Span Span
}

// FnSignature is the name/parameters/return-type/attributes header of a
// function, used by detectors that key state by the signature's span
// rather than the whole `fn` item (so the key stays stable whether or not
// the function has a body, as with ABI/trait declarations).
type FnSignature struct {
	Name       Ident
	Params     []Param
	ReturnType Type
	Generics   []string
	NodeSpan   Span
}

func (s *FnSignature) Span() Span { return s.NodeSpan }

// ItemFn is a `fn name(...) -> T { body }` declaration, whether free,
// trait-default, or impl-bound.
type ItemFn struct {
	Signature  FnSignature
	Body       *Block
	Attributes []AttributeDecl
	NodeSpan   Span
}

func (i *ItemFn) Span() Span     { return i.NodeSpan }
func (i *ItemFn) ItemKind() string { return "fn" }

// ItemTrait is a `trait Name { fn ...; }` declaration.
type ItemTrait struct {
	Name       Ident
	Methods    []*ItemFn
	Attributes []AttributeDecl
	NodeSpan   Span
}

func (i *ItemTrait) Span() Span     { return i.NodeSpan }
func (i *ItemTrait) ItemKind() string { return "trait" }

// ItemImpl is an `impl [Trait for] Type { fns... }` block.
type ItemImpl struct {
	TraitName  string // empty for an inherent impl
	Type       Type
	Functions  []*ItemFn
	Attributes []AttributeDecl
	NodeSpan   Span
}

func (i *ItemImpl) Span() Span     { return i.NodeSpan }
func (i *ItemImpl) ItemKind() string { return "impl" }

// ItemAbi is an `abi Name { fns... }` contract interface declaration.
type ItemAbi struct {
	Name       Ident
	Methods    []*ItemFn
	Attributes []AttributeDecl
	NodeSpan   Span
}

func (i *ItemAbi) Span() Span     { return i.NodeSpan }
func (i *ItemAbi) ItemKind() string { return "abi" }

// ItemConst is a module-level `const NAME: T = expr;` declaration.
type ItemConst struct {
	Name       Ident
	Type       Type
	Expr       Expr
	Attributes []AttributeDecl
	NodeSpan   Span
}

func (i *ItemConst) Span() Span     { return i.NodeSpan }
func (i *ItemConst) ItemKind() string { return "const" }

// ItemStorage is the single `storage { fields... }` block of a contract.
type ItemStorage struct {
	Fields     []TypeField
	Attributes []AttributeDecl
	NodeSpan   Span
}

func (i *ItemStorage) Span() Span     { return i.NodeSpan }
func (i *ItemStorage) ItemKind() string { return "storage" }

// ItemConfigurable is the single `configurable { fields... }` block.
type ItemConfigurable struct {
	Fields     []TypeField
	Attributes []AttributeDecl
	NodeSpan   Span
}

func (i *ItemConfigurable) Span() Span     { return i.NodeSpan }
func (i *ItemConfigurable) ItemKind() string { return "configurable" }

// ItemTypeAlias is a `type Name = T;` declaration.
type ItemTypeAlias struct {
	Name       Ident
	Type       Type
	Attributes []AttributeDecl
	NodeSpan   Span
}

func (i *ItemTypeAlias) Span() Span     { return i.NodeSpan }
func (i *ItemTypeAlias) ItemKind() string { return "type_alias" }
