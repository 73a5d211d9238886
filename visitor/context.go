// Package visitor implements the generic AST walker: a recursive
// descent over a parsed module that threads an immutable context
// snapshot to every pre/post hook and dispatches to every registered
// detector in registration order.
package visitor

import (
	swayast "github.com/ourovoros-io/sway-analyzer-go/ast"
	"github.com/ourovoros-io/sway-analyzer-go/scope"
)

// Base carries the fields common to every context in the chain: the file
// being walked, its module, the nearest enclosing top-level item, and
// (when inside one) the enclosing impl/fn and their attributes.
type Base struct {
	Path   string
	Module *swayast.Module

	Item swayast.Item

	ImplAttrs []swayast.AttributeDecl
	Impl      *swayast.ItemImpl

	FnAttrs []swayast.AttributeDecl
	Fn      *swayast.ItemFn
}

// Blocks is embedded by every context produced while descending inside a
// function body: the ordered vector of enclosing block spans, from the
// function body block down to the current block.
type Blocks struct {
	BlockSpans []swayast.Span
}

// ModuleContext is delivered to visit_module/leave_module. Scope is the
// module's root scope (§4.H/§2): storage fields, constants,
// configurables and every function signature are registered on it
// before any item is walked, so a detector can resolve a call target or
// a storage field's declared type from the very first hook.
type ModuleContext struct {
	Path   string
	Module *swayast.Module
	Scope  *scope.Scope
}

// ItemContext is delivered to visit_module_item/leave_module_item, once
// per top-level item before its specific-kind hook fires.
type ItemContext struct {
	Path   string
	Module *swayast.Module
	Item   swayast.Item
	Scope  *scope.Scope

	ImplAttrs []swayast.AttributeDecl
	Impl      *swayast.ItemImpl
	FnAttrs   []swayast.AttributeDecl
	Fn        *swayast.ItemFn

	Blocks    []swayast.Span
	Statement *swayast.Statement
}

// SubmoduleContext is delivered to visit_submodule/leave_submodule.
type SubmoduleContext struct {
	Path       string
	Module     *swayast.Module
	Item       swayast.Item
	Scope      *scope.Scope
	Attributes []swayast.AttributeDecl
	Submodule  *swayast.ItemSubmodule
}

// UseContext is delivered to visit_use/leave_use.
type UseContext struct {
	Path       string
	Module     *swayast.Module
	Item       swayast.Item
	Scope      *scope.Scope
	Attributes []swayast.AttributeDecl
	ItemUse    *swayast.ItemUse
}

// StructContext is delivered to visit_struct/leave_struct.
type StructContext struct {
	Path             string
	Module           *swayast.Module
	Item             swayast.Item
	Scope            *scope.Scope
	StructAttributes []swayast.AttributeDecl
	ItemStruct       *swayast.ItemStruct
}

// StructFieldContext is delivered per struct field.
type StructFieldContext struct {
	Path             string
	Module           *swayast.Module
	Item             swayast.Item
	Scope            *scope.Scope
	StructAttributes []swayast.AttributeDecl
	ItemStruct       *swayast.ItemStruct
	FieldAttributes  []swayast.AttributeDecl
	Field            *swayast.TypeField
}

// EnumContext is delivered to visit_enum/leave_enum.
type EnumContext struct {
	Path       string
	Module     *swayast.Module
	Item       swayast.Item
	Scope      *scope.Scope
	Attributes []swayast.AttributeDecl
	ItemEnum   *swayast.ItemEnum
}

// EnumFieldContext is delivered per enum variant.
type EnumFieldContext struct {
	Path            string
	Module          *swayast.Module
	Item            swayast.Item
	Scope           *scope.Scope
	EnumAttributes  []swayast.AttributeDecl
	ItemEnum        *swayast.ItemEnum
	FieldAttributes []swayast.AttributeDecl
	Field           *swayast.TypeField
}

// FnContext is delivered to visit_fn/leave_fn. Scope is a fresh child of
// the enclosing scope (the module root for a free function, or that same
// root for a method — Sway has no nested-impl lexical capture) with each
// parameter declared as a Parameter binding.
type FnContext struct {
	Path      string
	Module    *swayast.Module
	Item      swayast.Item
	Scope     *scope.Scope
	ImplAttrs []swayast.AttributeDecl
	Impl      *swayast.ItemImpl
	FnAttrs   []swayast.AttributeDecl
	ItemFn    *swayast.ItemFn
}

// StatementContext is delivered to visit_statement/leave_statement.
type StatementContext struct {
	Path      string
	Module    *swayast.Module
	Item      swayast.Item
	Scope     *scope.Scope
	ImplAttrs []swayast.AttributeDecl
	Impl      *swayast.ItemImpl
	FnAttrs   []swayast.AttributeDecl
	ItemFn    *swayast.ItemFn
	Blocks    []swayast.Span
	Statement *swayast.Statement
}

// StatementLetContext is delivered to visit_statement_let/leave_statement_let,
// in addition to (not instead of) StatementContext. Scope is the
// enclosing block's scope as of visit time: the let-bound name(s) are
// not yet declared in it (so the initializer cannot observe its own
// binding); LeaveStatementLet's Scope has them declared.
type StatementLetContext struct {
	Path         string
	Module       *swayast.Module
	Item         swayast.Item
	Scope        *scope.Scope
	ImplAttrs    []swayast.AttributeDecl
	Impl         *swayast.ItemImpl
	FnAttrs      []swayast.AttributeDecl
	ItemFn       *swayast.ItemFn
	Blocks       []swayast.Span
	Statement    *swayast.Statement
	StatementLet *swayast.StatementLet
}

// ExprContext is delivered to visit_expr/leave_expr for every expression
// node descended, including an expression-statement's own value and a
// let-statement's initializer.
type ExprContext struct {
	Path      string
	Module    *swayast.Module
	Item      swayast.Item
	Scope     *scope.Scope
	ImplAttrs []swayast.AttributeDecl
	Impl      *swayast.ItemImpl
	FnAttrs   []swayast.AttributeDecl
	Fn        *swayast.ItemFn
	Blocks    []swayast.Span
	Statement *swayast.Statement
	Expr      swayast.Expr
}

// BlockContext is delivered to visit_block/leave_block. Scope is a fresh
// child of the enclosing scope; locals declared by this block's own
// let-statements accumulate into it as the block is walked.
type BlockContext struct {
	Path      string
	Module    *swayast.Module
	Item      swayast.Item
	Scope     *scope.Scope
	ImplAttrs []swayast.AttributeDecl
	Impl      *swayast.ItemImpl
	FnAttrs   []swayast.AttributeDecl
	ItemFn    *swayast.ItemFn
	Expr      swayast.Expr // the enclosing expression the block is part of, if any
	Blocks    []swayast.Span
	Statement *swayast.Statement
	Block     *swayast.Block
}

// AsmBlockContext is delivered to visit_asm_block/leave_asm_block.
type AsmBlockContext struct {
	Path      string
	Module    *swayast.Module
	Item      swayast.Item
	Scope     *scope.Scope
	ImplAttrs []swayast.AttributeDecl
	Impl      *swayast.ItemImpl
	FnAttrs   []swayast.AttributeDecl
	Fn        *swayast.ItemFn
	Blocks    []swayast.Span
	Statement *swayast.Statement
	Asm       *swayast.AsmExpr
}

// AsmInstructionContext is delivered per instruction line inside an asm
// block.
type AsmInstructionContext struct {
	Path        string
	Module      *swayast.Module
	Item        swayast.Item
	Scope       *scope.Scope
	ImplAttrs   []swayast.AttributeDecl
	Impl        *swayast.ItemImpl
	FnAttrs     []swayast.AttributeDecl
	Fn          *swayast.ItemFn
	Blocks      []swayast.Span
	Statement   *swayast.Statement
	Asm         *swayast.AsmExpr
	Instruction *swayast.AsmInstruction
}

// AsmFinalExprContext is delivered for an asm block's trailing register
// expression, if present.
type AsmFinalExprContext struct {
	Path      string
	Module    *swayast.Module
	Item      swayast.Item
	Scope     *scope.Scope
	ImplAttrs []swayast.AttributeDecl
	Impl      *swayast.ItemImpl
	FnAttrs   []swayast.AttributeDecl
	Fn        *swayast.ItemFn
	Blocks    []swayast.Span
	Statement *swayast.Statement
	Asm       *swayast.AsmExpr
	Final     *swayast.AsmFinalExpr
}

// IfExprContext is delivered to visit_if_expr/leave_if_expr.
type IfExprContext struct {
	Path      string
	Module    *swayast.Module
	Item      swayast.Item
	Scope     *scope.Scope
	ImplAttrs []swayast.AttributeDecl
	Impl      *swayast.ItemImpl
	FnAttrs   []swayast.AttributeDecl
	Fn        *swayast.ItemFn
	Blocks    []swayast.Span
	Statement *swayast.Statement
	If        *swayast.IfExpr
}

// MatchExprContext is delivered to visit_match_expr/leave_match_expr.
type MatchExprContext struct {
	Path      string
	Module    *swayast.Module
	Item      swayast.Item
	Scope     *scope.Scope
	ImplAttrs []swayast.AttributeDecl
	Impl      *swayast.ItemImpl
	FnAttrs   []swayast.AttributeDecl
	Fn        *swayast.ItemFn
	Blocks    []swayast.Span
	Statement *swayast.Statement
	Match     *swayast.MatchExpr
}

// MatchBranchContext is delivered per match arm.
type MatchBranchContext struct {
	Path      string
	Module    *swayast.Module
	Item      swayast.Item
	Scope     *scope.Scope
	ImplAttrs []swayast.AttributeDecl
	Impl      *swayast.ItemImpl
	FnAttrs   []swayast.AttributeDecl
	Fn        *swayast.ItemFn
	Blocks    []swayast.Span
	Statement *swayast.Statement
	Match     *swayast.MatchExpr
	Branch    *swayast.MatchBranch
}

// WhileExprContext is delivered to visit_while_expr/leave_while_expr.
// Blocks is the enclosing block chain and does not include the body's
// span; the body's span is available as While.Body.Span() when
// visit_while_expr fires, so a detector can tag it as a loop before
// descent enters the body.
type WhileExprContext struct {
	Path      string
	Module    *swayast.Module
	Item      swayast.Item
	Scope     *scope.Scope
	ImplAttrs []swayast.AttributeDecl
	Impl      *swayast.ItemImpl
	FnAttrs   []swayast.AttributeDecl
	Fn        *swayast.ItemFn
	Blocks    []swayast.Span
	Statement *swayast.Statement
	While     *swayast.WhileExpr
}

// TraitContext is delivered to visit_trait/leave_trait.
type TraitContext struct {
	Path       string
	Module     *swayast.Module
	Item       swayast.Item
	Scope      *scope.Scope
	Attributes []swayast.AttributeDecl
	ItemTrait  *swayast.ItemTrait
}

// ImplContext is delivered to visit_impl/leave_impl.
type ImplContext struct {
	Path       string
	Module     *swayast.Module
	Item       swayast.Item
	Scope      *scope.Scope
	Attributes []swayast.AttributeDecl
	ItemImpl   *swayast.ItemImpl
}

// AbiContext is delivered to visit_abi/leave_abi.
type AbiContext struct {
	Path       string
	Module     *swayast.Module
	Item       swayast.Item
	Scope      *scope.Scope
	Attributes []swayast.AttributeDecl
	ItemAbi    *swayast.ItemAbi
}

// ConstContext is delivered to visit_const/leave_const.
type ConstContext struct {
	Path       string
	Module     *swayast.Module
	Item       swayast.Item
	Scope      *scope.Scope
	Attributes []swayast.AttributeDecl
	ItemConst  *swayast.ItemConst
}

// StorageContext is delivered to visit_storage/leave_storage.
type StorageContext struct {
	Path        string
	Module      *swayast.Module
	Item        swayast.Item
	Scope       *scope.Scope
	Attributes  []swayast.AttributeDecl
	ItemStorage *swayast.ItemStorage
}

// StorageFieldContext is delivered per storage field.
type StorageFieldContext struct {
	Path              string
	Module            *swayast.Module
	Item              swayast.Item
	Scope             *scope.Scope
	StorageAttributes []swayast.AttributeDecl
	ItemStorage       *swayast.ItemStorage
	FieldAttributes   []swayast.AttributeDecl
	Field             *swayast.TypeField
}

// ConfigurableContext is delivered to visit_configurable/leave_configurable.
type ConfigurableContext struct {
	Path             string
	Module           *swayast.Module
	Item             swayast.Item
	Scope            *scope.Scope
	Attributes       []swayast.AttributeDecl
	ItemConfigurable *swayast.ItemConfigurable
}

// ConfigurableFieldContext is delivered per configurable field.
type ConfigurableFieldContext struct {
	Path                   string
	Module                 *swayast.Module
	Item                   swayast.Item
	Scope                  *scope.Scope
	ConfigurableAttributes []swayast.AttributeDecl
	ItemConfigurable       *swayast.ItemConfigurable
	FieldAttributes        []swayast.AttributeDecl
	Field                  *swayast.TypeField
}

// TypeAliasContext is delivered to visit_type_alias/leave_type_alias.
type TypeAliasContext struct {
	Path          string
	Module        *swayast.Module
	Item          swayast.Item
	Scope         *scope.Scope
	Attributes    []swayast.AttributeDecl
	ItemTypeAlias *swayast.ItemTypeAlias
}
