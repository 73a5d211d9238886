package detectors

import (
	"fmt"

	swayast "github.com/ourovoros-io/sway-analyzer-go/ast"
	"github.com/ourovoros-io/sway-analyzer-go/detect"
	"github.com/ourovoros-io/sway-analyzer-go/report"
	"github.com/ourovoros-io/sway-analyzer-go/visitor"
)

// BooleanComparison flags `x == true`, `x == false`, `x != true`, etc.: a
// direct boolean comparison that should be written as `x` or `!x`.
type BooleanComparison struct {
	visitor.BaseHooks
	r detect.Reporter
}

func NewBooleanComparison(r detect.Reporter) detect.Detector {
	return &BooleanComparison{r: r}
}

func (d *BooleanComparison) Name() string { return "boolean-comparison" }

func (d *BooleanComparison) VisitExpr(ctx *visitor.ExprContext) error {
	bin, ok := ctx.Expr.(*swayast.BinaryExpr)
	if !ok || (bin.Op != swayast.OpEqual && bin.Op != swayast.OpNotEqual) {
		return nil
	}
	other, boolLit, ok := splitBooleanOperand(bin.LHS, bin.RHS)
	if !ok {
		return nil
	}
	return reportSpan(d.r, ctx.Path, ctx.Expr.Span(), report.Low,
		fmt.Sprintf("boolean comparison: %s against literal `%s` can be written without the comparison", exprLabel(other), boolLit))
}

// splitBooleanOperand reports whether exactly one of a, b is a boolean
// literal, returning the other operand and the literal's rendered text.
func splitBooleanOperand(a, b swayast.Expr) (other swayast.Expr, text string, ok bool) {
	aLit, aOK := a.(*swayast.Literal)
	bLit, bOK := b.(*swayast.Literal)
	aBool := aOK && aLit.Kind == swayast.LiteralBool
	bBool := bOK && bLit.Kind == swayast.LiteralBool
	switch {
	case aBool && !bBool:
		return b, boolText(aLit), true
	case bBool && !aBool:
		return a, boolText(bLit), true
	default:
		return nil, "", false
	}
}

func boolText(lit *swayast.Literal) string {
	if lit.BoolVal {
		return "true"
	}
	return "false"
}

// exprLabel renders a short human-readable label for an operand used only
// in finding messages; it is never used for recognition logic.
func exprLabel(e swayast.Expr) string {
	switch v := e.(type) {
	case *swayast.PathExpr:
		return fmt.Sprintf("%q", v.Full())
	case *swayast.FieldProjectionExpr:
		return fmt.Sprintf("%q", v.Field.Name)
	case *swayast.MethodCallExpr:
		return fmt.Sprintf("%q", v.Method.Name)
	default:
		return "the expression"
	}
}
