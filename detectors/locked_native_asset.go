package detectors

import (
	swayast "github.com/ourovoros-io/sway-analyzer-go/ast"
	"github.com/ourovoros-io/sway-analyzer-go/detect"
	"github.com/ourovoros-io/sway-analyzer-go/report"
	"github.com/ourovoros-io/sway-analyzer-go/resolve"
	"github.com/ourovoros-io/sway-analyzer-go/visitor"
)

// LockedNativeAsset flags a module that declares a `#[payable]` function
// (able to receive the native base asset) but never transfers it back
// out anywhere in the module, via a transfer-family call or a raw asm
// `call` instruction.
type LockedNativeAsset struct {
	visitor.BaseHooks
	r            detect.Reporter
	transferName map[string]string
	payableFns   []swayast.Span
	hasEgress    bool
}

func NewLockedNativeAsset(r detect.Reporter) detect.Detector {
	return &LockedNativeAsset{r: r}
}

func (d *LockedNativeAsset) Name() string { return "locked-native-asset" }

func (d *LockedNativeAsset) VisitModule(ctx *visitor.ModuleContext) error {
	d.transferName = fileImports(ctx.Module, transferFunctionPaths...)
	d.payableFns = nil
	d.hasEgress = false
	return nil
}

func (d *LockedNativeAsset) VisitFn(ctx *visitor.FnContext) error {
	if resolve.HasAttribute(ctx.ItemFn.Attributes, "payable", nil) {
		d.payableFns = append(d.payableFns, ctx.ItemFn.Signature.Span())
	}
	return nil
}

func (d *LockedNativeAsset) VisitExpr(ctx *visitor.ExprContext) error {
	var name string
	switch e := ctx.Expr.(type) {
	case *swayast.FuncAppExpr:
		if p, ok := e.Func.(*swayast.PathExpr); ok {
			name = p.Full()
		}
	case *swayast.MethodCallExpr:
		name = e.Method.Name
	}
	if _, ok := d.transferName[name]; ok {
		d.hasEgress = true
	}
	return nil
}

func (d *LockedNativeAsset) VisitAsmInstruction(ctx *visitor.AsmInstructionContext) error {
	if ctx.Instruction.Op == "call" {
		d.hasEgress = true
	}
	return nil
}

func (d *LockedNativeAsset) LeaveModule(ctx *visitor.ModuleContext) error {
	if d.hasEgress {
		return nil
	}
	for _, span := range d.payableFns {
		if err := reportSpan(d.r, ctx.Path, span, report.Medium,
			"locked native asset: payable function accepts the base asset but the module never transfers it back out"); err != nil {
			return err
		}
	}
	return nil
}
