package detectors

import (
	"fmt"

	swayast "github.com/ourovoros-io/sway-analyzer-go/ast"
	"github.com/ourovoros-io/sway-analyzer-go/detect"
	"github.com/ourovoros-io/sway-analyzer-go/report"
	"github.com/ourovoros-io/sway-analyzer-go/visitor"
)

// WeakPrng flags a value derived from the block timestamp (or height) and
// later reduced with `%`: block metadata is known to miners/validators
// ahead of inclusion and makes a poor source of on-chain randomness.
type WeakPrng struct {
	visitor.BaseHooks
	r             detect.Reporter
	timestampName map[string]string
	tracked       map[string]swayast.Span
}

func NewWeakPrng(r detect.Reporter) detect.Detector {
	return &WeakPrng{r: r}
}

func (d *WeakPrng) Name() string { return "weak-prng" }

func (d *WeakPrng) VisitModule(ctx *visitor.ModuleContext) error {
	d.timestampName = fileImports(ctx.Module,
		"std::block::timestamp", "timestamp",
		"std::block::height", "height")
	return nil
}

func (d *WeakPrng) VisitFn(ctx *visitor.FnContext) error {
	d.tracked = make(map[string]swayast.Span)
	return nil
}

func (d *WeakPrng) isTimestampCall(expr swayast.Expr) bool {
	app, ok := expr.(*swayast.FuncAppExpr)
	if !ok {
		return false
	}
	p, ok := app.Func.(*swayast.PathExpr)
	if !ok {
		return false
	}
	_, found := d.timestampName[p.Full()]
	return found
}

func (d *WeakPrng) VisitStatementLet(ctx *visitor.StatementLetContext) error {
	if !d.isTimestampCall(ctx.StatementLet.Expr) {
		return nil
	}
	ids := ctx.StatementLet.Pattern.FoldIdents()
	if len(ids) == 1 {
		d.tracked[ids[0].Name] = ctx.StatementLet.Span
	}
	return nil
}

func (d *WeakPrng) LeaveExpr(ctx *visitor.ExprContext) error {
	re, ok := ctx.Expr.(*swayast.ReassignmentExpr)
	if !ok || re.Assignable.Kind != swayast.AssignableVar {
		return nil
	}
	if d.isTimestampCall(re.Value) {
		d.tracked[re.Assignable.Name.Name] = re.Span()
	} else {
		delete(d.tracked, re.Assignable.Name.Name)
	}
	return nil
}

func (d *WeakPrng) VisitExpr(ctx *visitor.ExprContext) error {
	bin, ok := ctx.Expr.(*swayast.BinaryExpr)
	if !ok || bin.Op != swayast.OpModulo {
		return nil
	}
	for _, operand := range []swayast.Expr{bin.LHS, bin.RHS} {
		p, ok := operand.(*swayast.PathExpr)
		if !ok || len(p.Segments) != 1 {
			continue
		}
		if _, tracked := d.tracked[p.Full()]; tracked {
			return reportSpan(d.r, ctx.Path, ctx.Expr.Span(), report.High,
				fmt.Sprintf("weak prng: %q is derived from block metadata and reduced with `%%`", p.Full()))
		}
	}
	return nil
}
