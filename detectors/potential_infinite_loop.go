package detectors

import (
	swayast "github.com/ourovoros-io/sway-analyzer-go/ast"
	"github.com/ourovoros-io/sway-analyzer-go/detect"
	"github.com/ourovoros-io/sway-analyzer-go/report"
	"github.com/ourovoros-io/sway-analyzer-go/visitor"
)

// PotentialInfiniteLoop flags a `while true { ... }` loop whose body
// contains no `break`: absent any other exit (the analysis makes no
// attempt at interprocedural reasoning about `revert`/`return` deep
// inside nested expressions), the loop cannot terminate.
type PotentialInfiniteLoop struct {
	visitor.BaseHooks
	r detect.Reporter
}

func NewPotentialInfiniteLoop(r detect.Reporter) detect.Detector {
	return &PotentialInfiniteLoop{r: r}
}

func (d *PotentialInfiniteLoop) Name() string { return "potential-infinite-loop" }

func (d *PotentialInfiniteLoop) VisitWhileExpr(ctx *visitor.WhileExprContext) error {
	lit, ok := ctx.While.Condition.(*swayast.Literal)
	if !ok || lit.Kind != swayast.LiteralBool || !lit.BoolVal {
		return nil
	}
	if blockHasBreak(ctx.While.Body) {
		return nil
	}
	return reportSpan(d.r, ctx.Path, ctx.While.Span(), report.Medium,
		"potential infinite loop: `while true` with no `break` in its body")
}

// blockHasBreak reports whether a break expression occurs anywhere within
// block, recursing into nested blocks and if/match/while bodies. A break inside a nested loop still counts: the
// analysis makes no attempt to distinguish which loop a break targets.
func blockHasBreak(block *swayast.Block) bool {
	if block == nil {
		return false
	}
	for _, stmt := range block.Statements {
		switch stmt.Kind {
		case swayast.StatementExprKind:
			if exprHasBreak(stmt.Expr) {
				return true
			}
		case swayast.StatementLetKind:
			if stmt.Let != nil && exprHasBreak(stmt.Let.Expr) {
				return true
			}
		}
	}
	return exprHasBreak(block.Final)
}

func exprHasBreak(expr swayast.Expr) bool {
	switch e := expr.(type) {
	case nil:
		return false
	case *swayast.BreakExpr:
		return true
	case *swayast.BlockExpr:
		return blockHasBreak(e.Block)
	case *swayast.ParensExpr:
		return exprHasBreak(e.Inner)
	case *swayast.UnaryExpr:
		return exprHasBreak(e.Operand)
	case *swayast.BinaryExpr:
		return exprHasBreak(e.LHS) || exprHasBreak(e.RHS)
	case *swayast.IfExpr:
		if exprHasBreak(e.Condition.Expr) || blockHasBreak(e.Then) {
			return true
		}
		return exprHasBreak(e.Else)
	case *swayast.MatchExpr:
		if exprHasBreak(e.Scrutinee) {
			return true
		}
		for _, br := range e.Branches {
			if br.IsBlock {
				if blockHasBreak(br.Block) {
					return true
				}
			} else if exprHasBreak(br.Expr) {
				return true
			}
		}
		return false
	case *swayast.WhileExpr:
		return exprHasBreak(e.Condition) || blockHasBreak(e.Body)
	case *swayast.FuncAppExpr:
		if exprHasBreak(e.Func) {
			return true
		}
		for _, a := range e.Args {
			if exprHasBreak(a) {
				return true
			}
		}
		return false
	case *swayast.MethodCallExpr:
		if exprHasBreak(e.Target) {
			return true
		}
		for _, a := range e.Args {
			if exprHasBreak(a) {
				return true
			}
		}
		return false
	case *swayast.TupleExpr:
		for _, el := range e.Elements {
			if exprHasBreak(el) {
				return true
			}
		}
		return false
	case *swayast.StructExpr:
		for _, f := range e.Fields {
			if f.Expr != nil && exprHasBreak(f.Expr) {
				return true
			}
		}
		return false
	case *swayast.ArrayExpr:
		if e.IsRepeat() {
			return exprHasBreak(e.RepeatValue)
		}
		for _, el := range e.Elements {
			if exprHasBreak(el) {
				return true
			}
		}
		return false
	case *swayast.ReassignmentExpr:
		return exprHasBreak(e.Value)
	case *swayast.ReturnExpr:
		return exprHasBreak(e.Value)
	case *swayast.FieldProjectionExpr:
		return exprHasBreak(e.Target)
	case *swayast.TupleFieldProjectionExpr:
		return exprHasBreak(e.Target)
	case *swayast.IndexExpr:
		return exprHasBreak(e.Target) || exprHasBreak(e.Arg)
	default:
		return false
	}
}
