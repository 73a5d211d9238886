package detectors

import (
	"fmt"

	swayast "github.com/ourovoros-io/sway-analyzer-go/ast"
	"github.com/ourovoros-io/sway-analyzer-go/detect"
	"github.com/ourovoros-io/sway-analyzer-go/report"
	"github.com/ourovoros-io/sway-analyzer-go/visitor"
)

// ExternalCallInLoop flags a method call on an abi-cast-bound variable
// (an external contract handle) made from inside a `while` loop, in its
// condition or its body.
type ExternalCallInLoop struct {
	visitor.BaseHooks
	r         detect.Reporter
	abiVars   map[string]bool
	loopDepth int
}

func NewExternalCallInLoop(r detect.Reporter) detect.Detector {
	return &ExternalCallInLoop{r: r}
}

func (d *ExternalCallInLoop) Name() string { return "external-call-in-loop" }

func (d *ExternalCallInLoop) VisitFn(ctx *visitor.FnContext) error {
	d.abiVars = make(map[string]bool)
	d.loopDepth = 0
	return nil
}

func (d *ExternalCallInLoop) VisitStatementLet(ctx *visitor.StatementLetContext) error {
	if _, ok := ctx.StatementLet.Expr.(*swayast.AbiCastExpr); !ok {
		return nil
	}
	for _, id := range ctx.StatementLet.Pattern.FoldIdents() {
		d.abiVars[id.Name] = true
	}
	return nil
}

func (d *ExternalCallInLoop) VisitWhileExpr(ctx *visitor.WhileExprContext) error {
	d.loopDepth++
	return nil
}

func (d *ExternalCallInLoop) LeaveWhileExpr(ctx *visitor.WhileExprContext) error {
	d.loopDepth--
	return nil
}

func (d *ExternalCallInLoop) VisitExpr(ctx *visitor.ExprContext) error {
	if d.loopDepth == 0 {
		return nil
	}
	mc, ok := ctx.Expr.(*swayast.MethodCallExpr)
	if !ok {
		return nil
	}
	target, ok := mc.Target.(*swayast.PathExpr)
	if !ok || len(target.Segments) != 1 || !d.abiVars[target.Full()] {
		return nil
	}
	return reportSpan(d.r, ctx.Path, ctx.Expr.Span(), report.Medium,
		fmt.Sprintf("external call in loop: %q.%s is called from inside a loop", target.Full(), mc.Method.Name))
}
