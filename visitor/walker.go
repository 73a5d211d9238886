package visitor

import (
	swayast "github.com/ourovoros-io/sway-analyzer-go/ast"
	"github.com/ourovoros-io/sway-analyzer-go/scope"
)

// Walker drives a single recursive descent over one module, dispatching
// every visit_X/leave_X pair to each registered Hooks implementation in
// registration order before descending into X's children.
type Walker struct {
	hooks []Hooks
}

// New builds a Walker that fans every hook out to each of hooks, in the
// order given. Detector registration order is preserved end to end: two
// detectors never observe a given node in different relative orders.
func New(hooks ...Hooks) *Walker {
	return &Walker{hooks: hooks}
}

func (w *Walker) visitModule(ctx *ModuleContext) error {
	for _, h := range w.hooks {
		if err := h.VisitModule(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (w *Walker) leaveModule(ctx *ModuleContext) error {
	for _, h := range w.hooks {
		if err := h.LeaveModule(ctx); err != nil {
			return err
		}
	}
	return nil
}

// buildRootScope constructs the module-level scope (§4.H, §2's "for each
// file it builds a scope"): storage fields, constants, configurables and
// every function signature (free functions, impl methods, abi methods)
// are registered on it before any item is walked, so a detector consulted
// from inside any function body can resolve a call target's signature or
// a storage field's declared type with a single Lookup.
func buildRootScope(mod *swayast.Module) *scope.Scope {
	root := scope.NewRoot()
	for _, item := range mod.Items {
		switch it := item.(type) {
		case *swayast.ItemStorage:
			for _, f := range it.Fields {
				root.DeclareStorageField(f.Name.Name, f.Type)
			}
		case *swayast.ItemConst:
			root.Declare(scope.Constant, it.Name.Name, it.Type)
		case *swayast.ItemConfigurable:
			for _, f := range it.Fields {
				root.Declare(scope.Configurable, f.Name.Name, f.Type)
			}
		case *swayast.ItemFn:
			sig := it.Signature
			root.DeclareFunction(&sig)
		case *swayast.ItemImpl:
			for _, fn := range it.Functions {
				sig := fn.Signature
				root.DeclareFunction(&sig)
			}
		case *swayast.ItemAbi:
			for _, fn := range it.Methods {
				sig := fn.Signature
				root.DeclareFunction(&sig)
			}
		}
	}
	return root
}

// declareLet adds the binding(s) a let-statement introduces to s, inferring
// each one's type via scope.TypeOf when the statement carries no explicit
// type annotation. A tuple-destructuring pattern draws each binding's type
// from the matching position of the initializer's inferred tuple type,
// falling back to Unresolved where that isn't decidable.
func declareLet(s *scope.Scope, let *swayast.StatementLet) {
	ids := let.Pattern.FoldIdents()
	if len(ids) == 0 {
		return
	}
	if len(ids) == 1 {
		typ := swayast.Unresolved
		switch {
		case let.Type != nil:
			typ = *let.Type
		default:
			typ = scope.TypeOf(let.Expr, s)
		}
		s.Declare(scope.Local, ids[0].Name, typ)
		return
	}
	exprType := scope.TypeOf(let.Expr, s)
	for i, id := range ids {
		typ := swayast.Unresolved
		if exprType.Name == "tuple" && i < len(exprType.Args) {
			typ = exprType.Args[i]
		}
		s.Declare(scope.Local, id.Name, typ)
	}
}

// Walk descends the full module rooted at path, firing every hook along
// the way. The first error returned by any hook aborts the walk and is
// returned to the caller unchanged.
func (w *Walker) Walk(path string, mod *swayast.Module) error {
	root := buildRootScope(mod)
	mctx := &ModuleContext{Path: path, Module: mod, Scope: root}
	if err := w.visitModule(mctx); err != nil {
		return err
	}
	for _, item := range mod.Items {
		if err := w.walkItem(path, mod, item, root); err != nil {
			return err
		}
	}
	return w.leaveModule(mctx)
}

func (w *Walker) walkItem(path string, mod *swayast.Module, item swayast.Item, s *scope.Scope) error {
	ictx := &ItemContext{Path: path, Module: mod, Item: item, Scope: s}
	for _, h := range w.hooks {
		if err := h.VisitModuleItem(ictx); err != nil {
			return err
		}
	}

	var err error
	switch it := item.(type) {
	case *swayast.ItemSubmodule:
		err = w.walkSubmodule(path, mod, item, s, it)
	case *swayast.ItemUse:
		err = w.walkUse(path, mod, item, s, it)
	case *swayast.ItemStruct:
		err = w.walkStruct(path, mod, item, s, it)
	case *swayast.ItemEnum:
		err = w.walkEnum(path, mod, item, s, it)
	case *swayast.ItemFn:
		err = w.walkFn(path, mod, item, nil, nil, it, s)
	case *swayast.ItemTrait:
		err = w.walkTrait(path, mod, item, s, it)
	case *swayast.ItemImpl:
		err = w.walkImpl(path, mod, item, s, it)
	case *swayast.ItemAbi:
		err = w.walkAbi(path, mod, item, s, it)
	case *swayast.ItemConst:
		err = w.walkConst(path, mod, item, s, it)
	case *swayast.ItemStorage:
		err = w.walkStorage(path, mod, item, s, it)
	case *swayast.ItemConfigurable:
		err = w.walkConfigurable(path, mod, item, s, it)
	case *swayast.ItemTypeAlias:
		err = w.walkTypeAlias(path, mod, item, s, it)
	}
	if err != nil {
		return err
	}

	for _, h := range w.hooks {
		if err := h.LeaveModuleItem(ictx); err != nil {
			return err
		}
	}
	return nil
}

func (w *Walker) walkSubmodule(path string, mod *swayast.Module, item swayast.Item, s *scope.Scope, sub *swayast.ItemSubmodule) error {
	ctx := &SubmoduleContext{Path: path, Module: mod, Item: item, Scope: s, Attributes: sub.Attributes, Submodule: sub}
	for _, h := range w.hooks {
		if err := h.VisitSubmodule(ctx); err != nil {
			return err
		}
	}
	for _, h := range w.hooks {
		if err := h.LeaveSubmodule(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (w *Walker) walkUse(path string, mod *swayast.Module, item swayast.Item, s *scope.Scope, u *swayast.ItemUse) error {
	ctx := &UseContext{Path: path, Module: mod, Item: item, Scope: s, Attributes: u.Attributes, ItemUse: u}
	for _, h := range w.hooks {
		if err := h.VisitUse(ctx); err != nil {
			return err
		}
	}
	for _, h := range w.hooks {
		if err := h.LeaveUse(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (w *Walker) walkStruct(path string, mod *swayast.Module, item swayast.Item, s *scope.Scope, st *swayast.ItemStruct) error {
	ctx := &StructContext{Path: path, Module: mod, Item: item, Scope: s, StructAttributes: st.Attributes, ItemStruct: st}
	for _, h := range w.hooks {
		if err := h.VisitStruct(ctx); err != nil {
			return err
		}
	}
	for i := range st.Fields {
		fctx := &StructFieldContext{
			Path: path, Module: mod, Item: item, Scope: s,
			StructAttributes: st.Attributes, ItemStruct: st,
			FieldAttributes: st.Fields[i].Attributes, Field: &st.Fields[i],
		}
		for _, h := range w.hooks {
			if err := h.VisitStructField(fctx); err != nil {
				return err
			}
		}
		for _, h := range w.hooks {
			if err := h.LeaveStructField(fctx); err != nil {
				return err
			}
		}
	}
	for _, h := range w.hooks {
		if err := h.LeaveStruct(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (w *Walker) walkEnum(path string, mod *swayast.Module, item swayast.Item, s *scope.Scope, e *swayast.ItemEnum) error {
	ctx := &EnumContext{Path: path, Module: mod, Item: item, Scope: s, Attributes: e.Attributes, ItemEnum: e}
	for _, h := range w.hooks {
		if err := h.VisitEnum(ctx); err != nil {
			return err
		}
	}
	for i := range e.Fields {
		fctx := &EnumFieldContext{
			Path: path, Module: mod, Item: item, Scope: s,
			EnumAttributes: e.Attributes, ItemEnum: e,
			FieldAttributes: e.Fields[i].Attributes, Field: &e.Fields[i],
		}
		for _, h := range w.hooks {
			if err := h.VisitEnumField(fctx); err != nil {
				return err
			}
		}
		for _, h := range w.hooks {
			if err := h.LeaveEnumField(fctx); err != nil {
				return err
			}
		}
	}
	for _, h := range w.hooks {
		if err := h.LeaveEnum(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (w *Walker) walkTrait(path string, mod *swayast.Module, item swayast.Item, s *scope.Scope, t *swayast.ItemTrait) error {
	ctx := &TraitContext{Path: path, Module: mod, Item: item, Scope: s, Attributes: t.Attributes, ItemTrait: t}
	for _, h := range w.hooks {
		if err := h.VisitTrait(ctx); err != nil {
			return err
		}
	}
	for _, fn := range t.Methods {
		if err := w.walkFn(path, mod, item, nil, nil, fn, s); err != nil {
			return err
		}
	}
	for _, h := range w.hooks {
		if err := h.LeaveTrait(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (w *Walker) walkImpl(path string, mod *swayast.Module, item swayast.Item, s *scope.Scope, impl *swayast.ItemImpl) error {
	ctx := &ImplContext{Path: path, Module: mod, Item: item, Scope: s, Attributes: impl.Attributes, ItemImpl: impl}
	for _, h := range w.hooks {
		if err := h.VisitImpl(ctx); err != nil {
			return err
		}
	}
	for _, fn := range impl.Functions {
		if err := w.walkFn(path, mod, item, impl.Attributes, impl, fn, s); err != nil {
			return err
		}
	}
	for _, h := range w.hooks {
		if err := h.LeaveImpl(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (w *Walker) walkAbi(path string, mod *swayast.Module, item swayast.Item, s *scope.Scope, a *swayast.ItemAbi) error {
	ctx := &AbiContext{Path: path, Module: mod, Item: item, Scope: s, Attributes: a.Attributes, ItemAbi: a}
	for _, h := range w.hooks {
		if err := h.VisitAbi(ctx); err != nil {
			return err
		}
	}
	for _, fn := range a.Methods {
		if err := w.walkFn(path, mod, item, nil, nil, fn, s); err != nil {
			return err
		}
	}
	for _, h := range w.hooks {
		if err := h.LeaveAbi(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (w *Walker) walkConst(path string, mod *swayast.Module, item swayast.Item, s *scope.Scope, c *swayast.ItemConst) error {
	ctx := &ConstContext{Path: path, Module: mod, Item: item, Scope: s, Attributes: c.Attributes, ItemConst: c}
	for _, h := range w.hooks {
		if err := h.VisitConst(ctx); err != nil {
			return err
		}
	}
	if c.Expr != nil {
		if err := w.walkExpr(path, mod, item, nil, nil, nil, nil, nil, nil, c.Expr, s); err != nil {
			return err
		}
	}
	for _, h := range w.hooks {
		if err := h.LeaveConst(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (w *Walker) walkStorage(path string, mod *swayast.Module, item swayast.Item, s *scope.Scope, st *swayast.ItemStorage) error {
	ctx := &StorageContext{Path: path, Module: mod, Item: item, Scope: s, Attributes: st.Attributes, ItemStorage: st}
	for _, h := range w.hooks {
		if err := h.VisitStorage(ctx); err != nil {
			return err
		}
	}
	for i := range st.Fields {
		fctx := &StorageFieldContext{
			Path: path, Module: mod, Item: item, Scope: s,
			StorageAttributes: st.Attributes, ItemStorage: st,
			FieldAttributes: st.Fields[i].Attributes, Field: &st.Fields[i],
		}
		for _, h := range w.hooks {
			if err := h.VisitStorageField(fctx); err != nil {
				return err
			}
		}
		for _, h := range w.hooks {
			if err := h.LeaveStorageField(fctx); err != nil {
				return err
			}
		}
	}
	for _, h := range w.hooks {
		if err := h.LeaveStorage(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (w *Walker) walkConfigurable(path string, mod *swayast.Module, item swayast.Item, s *scope.Scope, c *swayast.ItemConfigurable) error {
	ctx := &ConfigurableContext{Path: path, Module: mod, Item: item, Scope: s, Attributes: c.Attributes, ItemConfigurable: c}
	for _, h := range w.hooks {
		if err := h.VisitConfigurable(ctx); err != nil {
			return err
		}
	}
	for i := range c.Fields {
		fctx := &ConfigurableFieldContext{
			Path: path, Module: mod, Item: item, Scope: s,
			ConfigurableAttributes: c.Attributes, ItemConfigurable: c,
			FieldAttributes: c.Fields[i].Attributes, Field: &c.Fields[i],
		}
		for _, h := range w.hooks {
			if err := h.VisitConfigurableField(fctx); err != nil {
				return err
			}
		}
		for _, h := range w.hooks {
			if err := h.LeaveConfigurableField(fctx); err != nil {
				return err
			}
		}
	}
	for _, h := range w.hooks {
		if err := h.LeaveConfigurable(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (w *Walker) walkTypeAlias(path string, mod *swayast.Module, item swayast.Item, s *scope.Scope, t *swayast.ItemTypeAlias) error {
	ctx := &TypeAliasContext{Path: path, Module: mod, Item: item, Scope: s, Attributes: t.Attributes, ItemTypeAlias: t}
	for _, h := range w.hooks {
		if err := h.VisitTypeAlias(ctx); err != nil {
			return err
		}
	}
	for _, h := range w.hooks {
		if err := h.LeaveTypeAlias(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (w *Walker) walkFn(path string, mod *swayast.Module, item swayast.Item, implAttrs []swayast.AttributeDecl, impl *swayast.ItemImpl, fn *swayast.ItemFn, s *scope.Scope) error {
	fnScope := scope.NewChild(s)
	for _, p := range fn.Signature.Params {
		fnScope.Declare(scope.Parameter, p.Name.Name, p.Type)
	}

	ctx := &FnContext{
		Path: path, Module: mod, Item: item, Scope: fnScope,
		ImplAttrs: implAttrs, Impl: impl,
		FnAttrs: fn.Attributes, ItemFn: fn,
	}
	for _, h := range w.hooks {
		if err := h.VisitFn(ctx); err != nil {
			return err
		}
	}
	if fn.Body != nil {
		if err := w.walkBlock(path, mod, item, implAttrs, impl, fn.Attributes, fn, nil, nil, fn.Body, fnScope); err != nil {
			return err
		}
	}
	for _, h := range w.hooks {
		if err := h.LeaveFn(ctx); err != nil {
			return err
		}
	}
	return nil
}

// walkBlock descends a block's statements in order, pushing the block's
// own span onto the enclosing block-span chain before descending and
// popping it on the way out. enclosingExpr, when non-nil, is the
// expression the block is the body of (an if/while/match arm, or a bare
// block expression); it is nil for a function body. s is the scope
// enclosing the block; the block gets its own child scope that its own
// let-statements populate as they are walked.
func (w *Walker) walkBlock(
	path string, mod *swayast.Module, item swayast.Item,
	implAttrs []swayast.AttributeDecl, impl *swayast.ItemImpl,
	fnAttrs []swayast.AttributeDecl, fn *swayast.ItemFn,
	blocks []swayast.Span, enclosingExpr swayast.Expr,
	block *swayast.Block, s *scope.Scope,
) error {
	childBlocks := append(append([]swayast.Span{}, blocks...), block.Span())
	blockScope := scope.NewChild(s)

	ctx := &BlockContext{
		Path: path, Module: mod, Item: item, Scope: blockScope,
		ImplAttrs: implAttrs, Impl: impl, FnAttrs: fnAttrs, ItemFn: fn,
		Expr: enclosingExpr, Blocks: childBlocks, Block: block,
	}
	for _, h := range w.hooks {
		if err := h.VisitBlock(ctx); err != nil {
			return err
		}
	}

	for i := range block.Statements {
		if err := w.walkStatement(path, mod, item, implAttrs, impl, fnAttrs, fn, childBlocks, &block.Statements[i], blockScope); err != nil {
			return err
		}
	}
	if block.Final != nil {
		if err := w.walkExpr(path, mod, item, implAttrs, impl, fnAttrs, fn, childBlocks, nil, block.Final, blockScope); err != nil {
			return err
		}
	}

	for _, h := range w.hooks {
		if err := h.LeaveBlock(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (w *Walker) walkStatement(
	path string, mod *swayast.Module, item swayast.Item,
	implAttrs []swayast.AttributeDecl, impl *swayast.ItemImpl,
	fnAttrs []swayast.AttributeDecl, fn *swayast.ItemFn,
	blocks []swayast.Span, stmt *swayast.Statement, s *scope.Scope,
) error {
	ctx := &StatementContext{
		Path: path, Module: mod, Item: item, Scope: s,
		ImplAttrs: implAttrs, Impl: impl, FnAttrs: fnAttrs, ItemFn: fn,
		Blocks: blocks, Statement: stmt,
	}
	for _, h := range w.hooks {
		if err := h.VisitStatement(ctx); err != nil {
			return err
		}
	}

	switch stmt.Kind {
	case swayast.StatementLetKind:
		lctx := &StatementLetContext{
			Path: path, Module: mod, Item: item, Scope: s,
			ImplAttrs: implAttrs, Impl: impl, FnAttrs: fnAttrs, ItemFn: fn,
			Blocks: blocks, Statement: stmt, StatementLet: stmt.Let,
		}
		for _, h := range w.hooks {
			if err := h.VisitStatementLet(lctx); err != nil {
				return err
			}
		}
		if stmt.Let.Expr != nil {
			if err := w.walkExpr(path, mod, item, implAttrs, impl, fnAttrs, fn, blocks, stmt, stmt.Let.Expr, s); err != nil {
				return err
			}
		}
		declareLet(s, stmt.Let)
		for _, h := range w.hooks {
			if err := h.LeaveStatementLet(lctx); err != nil {
				return err
			}
		}

	case swayast.StatementExprKind:
		if err := w.walkExpr(path, mod, item, implAttrs, impl, fnAttrs, fn, blocks, stmt, stmt.Expr, s); err != nil {
			return err
		}

	case swayast.StatementItemKind:
		if err := w.walkItem(path, mod, stmt.Item, s); err != nil {
			return err
		}
	}

	for _, h := range w.hooks {
		if err := h.LeaveStatement(ctx); err != nil {
			return err
		}
	}
	return nil
}

// walkExpr is the exhaustive expression recursion: every expression kind
// fires VisitExpr/LeaveExpr around itself, then descends its own
// sub-expressions (and, for control-flow forms, fires the node-specific
// hooks too) before returning.
func (w *Walker) walkExpr(
	path string, mod *swayast.Module, item swayast.Item,
	implAttrs []swayast.AttributeDecl, impl *swayast.ItemImpl,
	fnAttrs []swayast.AttributeDecl, fn *swayast.ItemFn,
	blocks []swayast.Span, stmt *swayast.Statement, expr swayast.Expr, s *scope.Scope,
) error {
	if expr == nil {
		return nil
	}

	ctx := &ExprContext{
		Path: path, Module: mod, Item: item, Scope: s,
		ImplAttrs: implAttrs, Impl: impl, FnAttrs: fnAttrs, Fn: fn,
		Blocks: blocks, Statement: stmt, Expr: expr,
	}
	for _, h := range w.hooks {
		if err := h.VisitExpr(ctx); err != nil {
			return err
		}
	}

	descend := func(e swayast.Expr) error {
		return w.walkExpr(path, mod, item, implAttrs, impl, fnAttrs, fn, blocks, stmt, e, s)
	}

	var err error
	switch e := expr.(type) {
	case *swayast.Literal, *swayast.PathExpr, *swayast.BreakExpr, *swayast.ContinueExpr:
		// leaves: no descendants.

	case *swayast.UnaryExpr:
		err = descend(e.Operand)

	case *swayast.BinaryExpr:
		if err = descend(e.LHS); err == nil {
			err = descend(e.RHS)
		}

	case *swayast.FieldProjectionExpr:
		err = descend(e.Target)

	case *swayast.TupleFieldProjectionExpr:
		err = descend(e.Target)

	case *swayast.IndexExpr:
		if err = descend(e.Target); err == nil {
			err = descend(e.Arg)
		}

	case *swayast.FuncAppExpr:
		if err = descend(e.Func); err == nil {
			for _, a := range e.Args {
				if err = descend(a); err != nil {
					break
				}
			}
		}

	case *swayast.MethodCallExpr:
		if err = descend(e.Target); err == nil {
			for _, o := range e.Options {
				if err = descend(o.Expr); err != nil {
					break
				}
			}
		}
		if err == nil {
			for _, a := range e.Args {
				if err = descend(a); err != nil {
					break
				}
			}
		}

	case *swayast.StructExpr:
		for _, f := range e.Fields {
			if f.Expr == nil {
				continue
			}
			if err = descend(f.Expr); err != nil {
				break
			}
		}

	case *swayast.TupleExpr:
		for _, el := range e.Elements {
			if err = descend(el); err != nil {
				break
			}
		}

	case *swayast.ArrayExpr:
		if e.IsRepeat() {
			if err = descend(e.RepeatValue); err == nil {
				err = descend(e.RepeatLen)
			}
		} else {
			for _, el := range e.Elements {
				if err = descend(el); err != nil {
					break
				}
			}
		}

	case *swayast.ParensExpr:
		err = descend(e.Inner)

	case *swayast.BlockExpr:
		err = w.walkBlock(path, mod, item, implAttrs, impl, fnAttrs, fn, blocks, expr, e.Block, s)

	case *swayast.AsmExpr:
		err = w.walkAsm(path, mod, item, implAttrs, impl, fnAttrs, fn, blocks, stmt, e, s)

	case *swayast.IfExpr:
		err = w.walkIf(path, mod, item, implAttrs, impl, fnAttrs, fn, blocks, stmt, e, s)

	case *swayast.MatchExpr:
		err = w.walkMatch(path, mod, item, implAttrs, impl, fnAttrs, fn, blocks, stmt, e, s)

	case *swayast.WhileExpr:
		err = w.walkWhile(path, mod, item, implAttrs, impl, fnAttrs, fn, blocks, stmt, e, s)

	case *swayast.ReturnExpr:
		if e.Value != nil {
			err = descend(e.Value)
		}

	case *swayast.ReassignmentExpr:
		err = descend(e.Value)

	case *swayast.AbiCastExpr:
		err = descend(e.Address)
	}
	if err != nil {
		return err
	}

	for _, h := range w.hooks {
		if err := h.LeaveExpr(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (w *Walker) walkIf(
	path string, mod *swayast.Module, item swayast.Item,
	implAttrs []swayast.AttributeDecl, impl *swayast.ItemImpl,
	fnAttrs []swayast.AttributeDecl, fn *swayast.ItemFn,
	blocks []swayast.Span, stmt *swayast.Statement, ifExpr *swayast.IfExpr, s *scope.Scope,
) error {
	ctx := &IfExprContext{
		Path: path, Module: mod, Item: item, Scope: s,
		ImplAttrs: implAttrs, Impl: impl, FnAttrs: fnAttrs, Fn: fn,
		Blocks: blocks, Statement: stmt, If: ifExpr,
	}
	for _, h := range w.hooks {
		if err := h.VisitIfExpr(ctx); err != nil {
			return err
		}
	}

	if ifExpr.Condition.Expr != nil {
		if err := w.walkExpr(path, mod, item, implAttrs, impl, fnAttrs, fn, blocks, stmt, ifExpr.Condition.Expr, s); err != nil {
			return err
		}
	}
	if err := w.walkBlock(path, mod, item, implAttrs, impl, fnAttrs, fn, blocks, ifExpr, ifExpr.Then, s); err != nil {
		return err
	}
	if ifExpr.Else != nil {
		if err := w.walkExpr(path, mod, item, implAttrs, impl, fnAttrs, fn, blocks, stmt, ifExpr.Else, s); err != nil {
			return err
		}
	}

	for _, h := range w.hooks {
		if err := h.LeaveIfExpr(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (w *Walker) walkMatch(
	path string, mod *swayast.Module, item swayast.Item,
	implAttrs []swayast.AttributeDecl, impl *swayast.ItemImpl,
	fnAttrs []swayast.AttributeDecl, fn *swayast.ItemFn,
	blocks []swayast.Span, stmt *swayast.Statement, matchExpr *swayast.MatchExpr, s *scope.Scope,
) error {
	ctx := &MatchExprContext{
		Path: path, Module: mod, Item: item, Scope: s,
		ImplAttrs: implAttrs, Impl: impl, FnAttrs: fnAttrs, Fn: fn,
		Blocks: blocks, Statement: stmt, Match: matchExpr,
	}
	for _, h := range w.hooks {
		if err := h.VisitMatchExpr(ctx); err != nil {
			return err
		}
	}

	if err := w.walkExpr(path, mod, item, implAttrs, impl, fnAttrs, fn, blocks, stmt, matchExpr.Scrutinee, s); err != nil {
		return err
	}

	for i := range matchExpr.Branches {
		branch := &matchExpr.Branches[i]
		bctx := &MatchBranchContext{
			Path: path, Module: mod, Item: item, Scope: s,
			ImplAttrs: implAttrs, Impl: impl, FnAttrs: fnAttrs, Fn: fn,
			Blocks: blocks, Statement: stmt, Match: matchExpr, Branch: branch,
		}
		for _, h := range w.hooks {
			if err := h.VisitMatchBranch(bctx); err != nil {
				return err
			}
		}
		if branch.IsBlock {
			if err := w.walkBlock(path, mod, item, implAttrs, impl, fnAttrs, fn, blocks, matchExpr, branch.Block, s); err != nil {
				return err
			}
		} else if branch.Expr != nil {
			if err := w.walkExpr(path, mod, item, implAttrs, impl, fnAttrs, fn, blocks, stmt, branch.Expr, s); err != nil {
				return err
			}
		}
		for _, h := range w.hooks {
			if err := h.LeaveMatchBranch(bctx); err != nil {
				return err
			}
		}
	}

	for _, h := range w.hooks {
		if err := h.LeaveMatchExpr(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (w *Walker) walkWhile(
	path string, mod *swayast.Module, item swayast.Item,
	implAttrs []swayast.AttributeDecl, impl *swayast.ItemImpl,
	fnAttrs []swayast.AttributeDecl, fn *swayast.ItemFn,
	blocks []swayast.Span, stmt *swayast.Statement, whileExpr *swayast.WhileExpr, s *scope.Scope,
) error {
	ctx := &WhileExprContext{
		Path: path, Module: mod, Item: item, Scope: s,
		ImplAttrs: implAttrs, Impl: impl, FnAttrs: fnAttrs, Fn: fn,
		Blocks: blocks, Statement: stmt, While: whileExpr,
	}
	for _, h := range w.hooks {
		if err := h.VisitWhileExpr(ctx); err != nil {
			return err
		}
	}

	if err := w.walkExpr(path, mod, item, implAttrs, impl, fnAttrs, fn, blocks, stmt, whileExpr.Condition, s); err != nil {
		return err
	}
	if err := w.walkBlock(path, mod, item, implAttrs, impl, fnAttrs, fn, blocks, whileExpr, whileExpr.Body, s); err != nil {
		return err
	}

	for _, h := range w.hooks {
		if err := h.LeaveWhileExpr(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (w *Walker) walkAsm(
	path string, mod *swayast.Module, item swayast.Item,
	implAttrs []swayast.AttributeDecl, impl *swayast.ItemImpl,
	fnAttrs []swayast.AttributeDecl, fn *swayast.ItemFn,
	blocks []swayast.Span, stmt *swayast.Statement, asm *swayast.AsmExpr, s *scope.Scope,
) error {
	ctx := &AsmBlockContext{
		Path: path, Module: mod, Item: item, Scope: s,
		ImplAttrs: implAttrs, Impl: impl, FnAttrs: fnAttrs, Fn: fn,
		Blocks: blocks, Statement: stmt, Asm: asm,
	}
	for _, h := range w.hooks {
		if err := h.VisitAsmBlock(ctx); err != nil {
			return err
		}
	}

	for _, reg := range asm.Registers {
		if reg.Init != nil {
			if err := w.walkExpr(path, mod, item, implAttrs, impl, fnAttrs, fn, blocks, stmt, reg.Init, s); err != nil {
				return err
			}
		}
	}

	for i := range asm.Instructions {
		ictx := &AsmInstructionContext{
			Path: path, Module: mod, Item: item, Scope: s,
			ImplAttrs: implAttrs, Impl: impl, FnAttrs: fnAttrs, Fn: fn,
			Blocks: blocks, Statement: stmt, Asm: asm, Instruction: &asm.Instructions[i],
		}
		for _, h := range w.hooks {
			if err := h.VisitAsmInstruction(ictx); err != nil {
				return err
			}
		}
		for _, h := range w.hooks {
			if err := h.LeaveAsmInstruction(ictx); err != nil {
				return err
			}
		}
	}

	if asm.FinalExpr != nil {
		fctx := &AsmFinalExprContext{
			Path: path, Module: mod, Item: item, Scope: s,
			ImplAttrs: implAttrs, Impl: impl, FnAttrs: fnAttrs, Fn: fn,
			Blocks: blocks, Statement: stmt, Asm: asm, Final: asm.FinalExpr,
		}
		for _, h := range w.hooks {
			if err := h.VisitAsmFinalExpr(fctx); err != nil {
				return err
			}
		}
		for _, h := range w.hooks {
			if err := h.LeaveAsmFinalExpr(fctx); err != nil {
				return err
			}
		}
	}

	for _, h := range w.hooks {
		if err := h.LeaveAsmBlock(ctx); err != nil {
			return err
		}
	}
	return nil
}
