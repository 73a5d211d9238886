package detectors

import (
	swayast "github.com/ourovoros-io/sway-analyzer-go/ast"
	"github.com/ourovoros-io/sway-analyzer-go/detect"
	"github.com/ourovoros-io/sway-analyzer-go/report"
	"github.com/ourovoros-io/sway-analyzer-go/visitor"
)

// StrictEquality flags a direct `==`/`!=` comparison of a variable against
// a hard-coded tuple of literal values used as a magic state check, e.g.
// `state == (true, false, 1)`. It is distinct from BooleanComparison,
// which only triggers on a single boolean literal operand.
type StrictEquality struct {
	visitor.BaseHooks
	r detect.Reporter
}

func NewStrictEquality(r detect.Reporter) detect.Detector {
	return &StrictEquality{r: r}
}

func (d *StrictEquality) Name() string { return "strict-equality" }

func (d *StrictEquality) VisitExpr(ctx *visitor.ExprContext) error {
	bin, ok := ctx.Expr.(*swayast.BinaryExpr)
	if !ok || (bin.Op != swayast.OpEqual && bin.Op != swayast.OpNotEqual) {
		return nil
	}
	if !isLiteralTuple(bin.LHS) && !isLiteralTuple(bin.RHS) {
		return nil
	}
	return reportSpan(d.r, ctx.Path, ctx.Expr.Span(), report.Low,
		"strict equality: comparison against a hard-coded literal tuple is a fragile state check")
}

// isLiteralTuple reports whether expr is a tuple constructor whose every
// element is a boolean or integer literal.
func isLiteralTuple(expr swayast.Expr) bool {
	t, ok := expr.(*swayast.TupleExpr)
	if !ok || len(t.Elements) == 0 {
		return false
	}
	for _, el := range t.Elements {
		lit, ok := el.(*swayast.Literal)
		if !ok || (lit.Kind != swayast.LiteralBool && lit.Kind != swayast.LiteralInt) {
			return false
		}
	}
	return true
}
