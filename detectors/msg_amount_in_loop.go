package detectors

import (
	swayast "github.com/ourovoros-io/sway-analyzer-go/ast"
	"github.com/ourovoros-io/sway-analyzer-go/detect"
	"github.com/ourovoros-io/sway-analyzer-go/report"
	"github.com/ourovoros-io/sway-analyzer-go/visitor"
)

// MsgAmountInLoop flags a call to `msg_amount()` (or a balance-querying
// alias) made from inside a `while` loop, in its condition or its body —
// each iteration observes
// the same forwarded amount, so looping over it is almost always a bug.
type MsgAmountInLoop struct {
	visitor.BaseHooks
	r          detect.Reporter
	amountName map[string]string
	loopDepth  int
}

func NewMsgAmountInLoop(r detect.Reporter) detect.Detector {
	return &MsgAmountInLoop{r: r}
}

func (d *MsgAmountInLoop) Name() string { return "msg-amount-in-loop" }

func (d *MsgAmountInLoop) VisitModule(ctx *visitor.ModuleContext) error {
	d.amountName = fileImports(ctx.Module, "std::context::msg_amount", "msg_amount", "std::context::this_balance", "this_balance")
	return nil
}

func (d *MsgAmountInLoop) VisitWhileExpr(ctx *visitor.WhileExprContext) error {
	d.loopDepth++
	return nil
}

func (d *MsgAmountInLoop) LeaveWhileExpr(ctx *visitor.WhileExprContext) error {
	d.loopDepth--
	return nil
}

func (d *MsgAmountInLoop) VisitExpr(ctx *visitor.ExprContext) error {
	if d.loopDepth == 0 {
		return nil
	}
	app, ok := ctx.Expr.(*swayast.FuncAppExpr)
	if !ok {
		return nil
	}
	p, ok := app.Func.(*swayast.PathExpr)
	if !ok {
		return nil
	}
	if _, tracked := d.amountName[p.Full()]; !tracked {
		return nil
	}
	return reportSpan(d.r, ctx.Path, ctx.Expr.Span(), report.Medium,
		"msg amount in loop: the forwarded amount is re-read on every iteration")
}
