package detectors

import (
	"fmt"

	swayast "github.com/ourovoros-io/sway-analyzer-go/ast"
	"github.com/ourovoros-io/sway-analyzer-go/detect"
	"github.com/ourovoros-io/sway-analyzer-go/exprutil"
	"github.com/ourovoros-io/sway-analyzer-go/report"
	"github.com/ourovoros-io/sway-analyzer-go/resolve"
	"github.com/ourovoros-io/sway-analyzer-go/visitor"
)

var transferFunctionPaths = []string{
	"std::asset::transfer",
	"std::asset::force_transfer_to_contract",
	"transfer",
	"force_transfer_to_contract",
}

type arbitraryAssetTransferModuleState struct {
	transferNames map[string]string
}

// ArbitraryAssetTransfer flags a transfer-family call whose recipient
// argument is a bare function parameter that no top-level
// `require`/if-revert guard in the enclosing function body mentions; the
// guard's position relative to the call is not considered.
type ArbitraryAssetTransfer struct {
	visitor.BaseHooks
	r       detect.Reporter
	modules map[string]*arbitraryAssetTransferModuleState
	guarded map[string]bool // identifiers guarded in the current function
}

func NewArbitraryAssetTransfer(r detect.Reporter) detect.Detector {
	return &ArbitraryAssetTransfer{r: r, modules: make(map[string]*arbitraryAssetTransferModuleState)}
}

func (d *ArbitraryAssetTransfer) Name() string { return "arbitrary-asset-transfer" }

func (d *ArbitraryAssetTransfer) VisitModule(ctx *visitor.ModuleContext) error {
	d.modules[ctx.Path] = &arbitraryAssetTransferModuleState{
		transferNames: fileImports(ctx.Module, transferFunctionPaths...),
	}
	return nil
}

func (d *ArbitraryAssetTransfer) VisitFn(ctx *visitor.FnContext) error {
	d.guarded = collectGuardedIdents(ctx.ItemFn.Body)
	return nil
}

func (d *ArbitraryAssetTransfer) VisitExpr(ctx *visitor.ExprContext) error {
	state := d.modules[ctx.Path]
	if state == nil {
		return nil
	}

	var callee swayast.Expr
	var args []swayast.Expr
	switch e := ctx.Expr.(type) {
	case *swayast.FuncAppExpr:
		callee, args = e.Func, e.Args
	case *swayast.MethodCallExpr:
		callee, args = nil, e.Args
		if p, ok := e.Target.(*swayast.PathExpr); ok && p.Full() == "std::asset" {
			callee = &swayast.PathExpr{Segments: []string{"std", "asset", e.Method.Name}}
		}
	default:
		return nil
	}

	name := ""
	if path, ok := callee.(*swayast.PathExpr); ok {
		name = path.Full()
	}
	if _, recognized := state.transferNames[name]; !recognized || len(args) == 0 {
		return nil
	}

	recipient, ok := args[0].(*swayast.PathExpr)
	if !ok || len(recipient.Segments) != 1 {
		return nil
	}
	isParam := false
	if ctx.Fn != nil {
		for _, p := range ctx.Fn.Signature.Params {
			if p.Name.Name == recipient.Full() {
				isParam = true
			}
		}
	}
	if !isParam || d.guarded[recipient.Full()] {
		return nil
	}

	return reportSpan(d.r, ctx.Path, ctx.Expr.Span(), report.High,
		fmt.Sprintf("arbitrary asset transfer: recipient %q is not validated before %s", recipient.Full(), name))
}

// collectGuardedIdents scans block's top-level statements for
// `require(...)` calls and `if C { revert(...) }` forms, returning the
// set of identifiers that appear in any such guard condition.
func collectGuardedIdents(block *swayast.Block) map[string]bool {
	guarded := make(map[string]bool)
	if block == nil {
		return guarded
	}
	mark := func(cond swayast.Expr) {
		for _, id := range resolve.ExprIdents(cond) {
			guarded[id.Name] = true
		}
	}
	scan := func(e swayast.Expr) {
		if args, ok := exprutil.RequireArgs(e); ok && len(args) > 0 {
			mark(args[0])
		}
		if cond, ok := exprutil.IfRevertCondition(e); ok {
			mark(cond)
		}
	}
	for _, stmt := range block.Statements {
		if stmt.Kind == swayast.StatementExprKind {
			scan(stmt.Expr)
		}
	}
	if block.Final != nil {
		scan(block.Final)
	}
	return guarded
}
