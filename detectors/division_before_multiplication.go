package detectors

import (
	"fmt"

	swayast "github.com/ourovoros-io/sway-analyzer-go/ast"
	"github.com/ourovoros-io/sway-analyzer-go/detect"
	"github.com/ourovoros-io/sway-analyzer-go/report"
	"github.com/ourovoros-io/sway-analyzer-go/visitor"
)

// DivisionBeforeMultiplication flags `let x = a / b;` whose result is
// later used as an operand of a multiplication, a common source of
// needless integer-division precision loss.
type DivisionBeforeMultiplication struct {
	visitor.BaseHooks
	r         detect.Reporter
	divisions map[string]swayast.Span
}

func NewDivisionBeforeMultiplication(r detect.Reporter) detect.Detector {
	return &DivisionBeforeMultiplication{r: r}
}

func (d *DivisionBeforeMultiplication) Name() string { return "division-before-multiplication" }

func (d *DivisionBeforeMultiplication) VisitFn(ctx *visitor.FnContext) error {
	d.divisions = make(map[string]swayast.Span)
	return nil
}

func (d *DivisionBeforeMultiplication) VisitStatementLet(ctx *visitor.StatementLetContext) error {
	bin, ok := ctx.StatementLet.Expr.(*swayast.BinaryExpr)
	if !ok || bin.Op != swayast.OpDiv {
		return nil
	}
	idents := ctx.StatementLet.Pattern.FoldIdents()
	if len(idents) != 1 {
		return nil
	}
	d.divisions[idents[0].Name] = ctx.StatementLet.Span
	return nil
}

func (d *DivisionBeforeMultiplication) VisitExpr(ctx *visitor.ExprContext) error {
	bin, ok := ctx.Expr.(*swayast.BinaryExpr)
	if !ok || bin.Op != swayast.OpMul {
		return nil
	}
	for _, operand := range []swayast.Expr{bin.LHS, bin.RHS} {
		p, ok := operand.(*swayast.PathExpr)
		if !ok || len(p.Segments) != 1 {
			continue
		}
		if divSpan, tracked := d.divisions[p.Full()]; tracked {
			delete(d.divisions, p.Full())
			return reportSpan(d.r, ctx.Path, bin.Span(), report.Medium,
				fmt.Sprintf("division before multiplication: %q (divided at byte %d) is multiplied here, losing precision", p.Full(), divSpan.Start))
		}
	}
	return nil
}
