package detectors

import (
	swayast "github.com/ourovoros-io/sway-analyzer-go/ast"
	"github.com/ourovoros-io/sway-analyzer-go/detect"
	"github.com/ourovoros-io/sway-analyzer-go/report"
	"github.com/ourovoros-io/sway-analyzer-go/visitor"
)

// RedundantComparison flags a comparison whose operands are both known
// literal constants, either written directly or through a variable bound
// to a literal by a `let` statement earlier in the same function: the
// outcome is fixed regardless of any runtime state.
type RedundantComparison struct {
	visitor.BaseHooks
	r        detect.Reporter
	literals map[string]*swayast.Literal // var name -> its bound literal value
}

func NewRedundantComparison(r detect.Reporter) detect.Detector {
	return &RedundantComparison{r: r}
}

func (d *RedundantComparison) Name() string { return "redundant-comparison" }

func (d *RedundantComparison) VisitFn(ctx *visitor.FnContext) error {
	d.literals = make(map[string]*swayast.Literal)
	return nil
}

// VisitStatementLet records `let x = <literal>;` bindings so a later
// comparison against `x` can be resolved as if `x` were substituted with
// its bound value. Any other initializer, or re-declaring the name,
// invalidates a prior binding rather than risk a stale literal surviving
// a shadowing or reassignment it can't see.
func (d *RedundantComparison) VisitStatementLet(ctx *visitor.StatementLetContext) error {
	ids := ctx.StatementLet.Pattern.FoldIdents()
	if len(ids) != 1 {
		for _, id := range ids {
			delete(d.literals, id.Name)
		}
		return nil
	}
	name := ids[0].Name
	if lit, ok := ctx.StatementLet.Expr.(*swayast.Literal); ok {
		d.literals[name] = lit
		return nil
	}
	delete(d.literals, name)
	return nil
}

// LeaveExpr also invalidates a literal binding on any reassignment of its
// variable, so a comparison after `x = some_call();` isn't still treated
// as comparing against the original literal.
func (d *RedundantComparison) LeaveExpr(ctx *visitor.ExprContext) error {
	re, ok := ctx.Expr.(*swayast.ReassignmentExpr)
	if !ok || re.Assignable.Kind != swayast.AssignableVar {
		return nil
	}
	delete(d.literals, re.Assignable.Name.Name)
	return nil
}

func (d *RedundantComparison) resolveLiteral(expr swayast.Expr) (*swayast.Literal, bool) {
	if lit, ok := expr.(*swayast.Literal); ok {
		return lit, true
	}
	if p, ok := expr.(*swayast.PathExpr); ok && len(p.Segments) == 1 {
		if lit, ok := d.literals[p.Full()]; ok {
			return lit, true
		}
	}
	return nil, false
}

func (d *RedundantComparison) VisitExpr(ctx *visitor.ExprContext) error {
	bin, ok := ctx.Expr.(*swayast.BinaryExpr)
	if !ok || !bin.Op.IsComparison() {
		return nil
	}
	_, lhsOK := d.resolveLiteral(bin.LHS)
	_, rhsOK := d.resolveLiteral(bin.RHS)
	if !lhsOK || !rhsOK {
		return nil
	}
	return reportSpan(d.r, ctx.Path, ctx.Expr.Span(), report.Low,
		"redundant comparison: both operands are literal constants")
}
