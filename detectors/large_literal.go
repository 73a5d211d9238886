package detectors

import (
	"fmt"
	"strings"

	swayast "github.com/ourovoros-io/sway-analyzer-go/ast"
	"github.com/ourovoros-io/sway-analyzer-go/detect"
	"github.com/ourovoros-io/sway-analyzer-go/report"
	"github.com/ourovoros-io/sway-analyzer-go/visitor"
)

// LargeLiteral flags an integer literal whose decimal digit count exceeds
// six and that carries none of the exemptions the original tool grants:
// hexadecimal literals and underscore-separated literals are assumed to
// already be deliberately written out, so neither is reported.
type LargeLiteral struct {
	visitor.BaseHooks
	r        detect.Reporter
	reported map[swayast.Span]bool
}

func NewLargeLiteral(r detect.Reporter) detect.Detector {
	return &LargeLiteral{r: r, reported: make(map[swayast.Span]bool)}
}

func (d *LargeLiteral) Name() string { return "large-literal" }

func (d *LargeLiteral) VisitExpr(ctx *visitor.ExprContext) error {
	lit, ok := ctx.Expr.(*swayast.Literal)
	if !ok || lit.Kind != swayast.LiteralInt {
		return nil
	}
	if !isLargeLiteral(lit.Raw) {
		return nil
	}
	span := lit.Span()
	if d.reported[span] {
		return nil
	}
	d.reported[span] = true
	return reportSpan(d.r, ctx.Path, span, report.Low,
		fmt.Sprintf("large literal: %s should be a named constant", lit.Raw))
}

func isLargeLiteral(raw string) bool {
	if strings.HasPrefix(raw, "0x") || strings.HasPrefix(raw, "0X") {
		return false
	}
	if strings.Contains(raw, "_") {
		return false
	}
	return len(raw) > 6
}
