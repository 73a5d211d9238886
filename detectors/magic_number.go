package detectors

import (
	"fmt"

	swayast "github.com/ourovoros-io/sway-analyzer-go/ast"
	"github.com/ourovoros-io/sway-analyzer-go/detect"
	"github.com/ourovoros-io/sway-analyzer-go/report"
	"github.com/ourovoros-io/sway-analyzer-go/visitor"
)

// MagicNumber flags an integer literal other than 0 or 1 used as a
// binary-expression operand, at most once per enclosing statement.
type MagicNumber struct {
	visitor.BaseHooks
	r        detect.Reporter
	reported map[swayast.Span]bool
}

func NewMagicNumber(r detect.Reporter) detect.Detector {
	return &MagicNumber{r: r, reported: make(map[swayast.Span]bool)}
}

func (d *MagicNumber) Name() string { return "magic-number" }

func (d *MagicNumber) VisitExpr(ctx *visitor.ExprContext) error {
	bin, ok := ctx.Expr.(*swayast.BinaryExpr)
	if !ok || ctx.Statement == nil {
		return nil
	}
	stmtSpan := ctx.Statement.Span()
	if d.reported[stmtSpan] {
		return nil
	}

	for _, operand := range []swayast.Expr{bin.LHS, bin.RHS} {
		lit, ok := operand.(*swayast.Literal)
		if !ok || lit.Kind != swayast.LiteralInt {
			continue
		}
		if lit.Raw == "0" || lit.Raw == "1" {
			continue
		}
		d.reported[stmtSpan] = true
		return reportSpan(d.r, ctx.Path, stmtSpan, report.Low,
			fmt.Sprintf("magic number: literal %s should be a named constant", lit.Raw))
	}
	return nil
}
