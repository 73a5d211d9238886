package detectors

import (
	swayast "github.com/ourovoros-io/sway-analyzer-go/ast"
	"github.com/ourovoros-io/sway-analyzer-go/detect"
	"github.com/ourovoros-io/sway-analyzer-go/exprutil"
	"github.com/ourovoros-io/sway-analyzer-go/report"
	"github.com/ourovoros-io/sway-analyzer-go/visitor"
)

type unprotectedFnInfo struct {
	span    swayast.Span
	isInit  bool
	guarded bool
	calls   map[string]bool
}

// UnprotectedInitialization flags a function that writes an owner/admin or
// "initialized" storage flag with no guard against being invoked more than
// once, and propagates the finding across the local call graph: a function
// that unconditionally calls an unprotected initializer is unprotected too.
//
// This is the one detector whose analysis is not confined to a single
// function body: per-function facts are gathered during the walk and the
// call graph is solved to a fixpoint at module exit.
type UnprotectedInitialization struct {
	visitor.BaseHooks
	r     detect.Reporter
	path  string
	fns   map[string]*unprotectedFnInfo
	order []string
}

func NewUnprotectedInitialization(r detect.Reporter) detect.Detector {
	return &UnprotectedInitialization{r: r}
}

func (d *UnprotectedInitialization) Name() string { return "unprotected-initialization" }

func (d *UnprotectedInitialization) VisitModule(ctx *visitor.ModuleContext) error {
	d.path = ctx.Path
	d.fns = make(map[string]*unprotectedFnInfo)
	d.order = nil
	return nil
}

var initFlagNames = map[string]bool{"owner": true, "admin": true, "initialized": true}

func (d *UnprotectedInitialization) VisitFn(ctx *visitor.FnContext) error {
	info := &unprotectedFnInfo{span: ctx.ItemFn.Signature.Span(), calls: make(map[string]bool)}
	if ctx.ItemFn.Body != nil {
		scanFnBody(ctx.ItemFn.Body, info)
	}
	d.fns[ctx.ItemFn.Signature.Name.Name] = info
	d.order = append(d.order, ctx.ItemFn.Signature.Name.Name)
	return nil
}

func scanFnBody(block *swayast.Block, info *unprotectedFnInfo) {
	var scanExpr func(e swayast.Expr)
	scanExpr = func(e swayast.Expr) {
		switch v := e.(type) {
		case *swayast.MethodCallExpr:
			if v.Method.Name == "write" || v.Method.Name == "insert" {
				if fp, ok := v.Target.(*swayast.FieldProjectionExpr); ok {
					if p, ok := fp.Target.(*swayast.PathExpr); ok && p.Full() == "storage" && initFlagNames[fp.Field.Name] {
						info.isInit = true
					}
				}
			}
		case *swayast.FuncAppExpr:
			if p, ok := v.Func.(*swayast.PathExpr); ok && len(p.Segments) == 1 {
				info.calls[p.Full()] = true
			}
		}
	}
	var walkStmtExpr func(e swayast.Expr)
	walkStmtExpr = func(e swayast.Expr) {
		if e == nil {
			return
		}
		scanExpr(e)
		// Presence of a require/if-revert guards the function regardless
		// of what its condition inspects; what it checks is irrelevant.
		if args, ok := exprutil.RequireArgs(e); ok && len(args) > 0 {
			info.guarded = true
		}
		if _, ok := exprutil.IfRevertCondition(e); ok {
			info.guarded = true
		}
		switch v := e.(type) {
		case *swayast.BinaryExpr:
			walkStmtExpr(v.LHS)
			walkStmtExpr(v.RHS)
		case *swayast.MethodCallExpr:
			walkStmtExpr(v.Target)
			for _, a := range v.Args {
				walkStmtExpr(a)
			}
		case *swayast.FuncAppExpr:
			for _, a := range v.Args {
				walkStmtExpr(a)
			}
		}
	}
	for _, stmt := range block.Statements {
		switch stmt.Kind {
		case swayast.StatementExprKind:
			walkStmtExpr(stmt.Expr)
		case swayast.StatementLetKind:
			walkStmtExpr(stmt.Let.Expr)
		}
	}
	if block.Final != nil {
		walkStmtExpr(block.Final)
	}
}

func (d *UnprotectedInitialization) LeaveModule(ctx *visitor.ModuleContext) error {
	unprotected := make(map[string]bool)
	for name, info := range d.fns {
		if info.isInit && !info.guarded {
			unprotected[name] = true
		}
	}
	for changed := true; changed; {
		changed = false
		for name, info := range d.fns {
			if unprotected[name] || info.guarded {
				continue
			}
			for callee := range info.calls {
				if unprotected[callee] {
					unprotected[name] = true
					changed = true
					break
				}
			}
		}
	}
	for _, name := range d.order {
		if !unprotected[name] {
			continue
		}
		info := d.fns[name]
		if err := reportSpan(d.r, d.path, info.span, report.High,
			"unprotected initialization: function sets an owner/admin/initialized flag in storage with no re-entry guard"); err != nil {
			return err
		}
	}
	return nil
}
