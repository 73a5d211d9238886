package detectors

import (
	swayast "github.com/ourovoros-io/sway-analyzer-go/ast"
	"github.com/ourovoros-io/sway-analyzer-go/detect"
	"github.com/ourovoros-io/sway-analyzer-go/exprutil"
	"github.com/ourovoros-io/sway-analyzer-go/report"
	"github.com/ourovoros-io/sway-analyzer-go/visitor"
)

// ArbitraryCodeExecution flags an inline-asm `ldc` (load-code) instruction
// in a function whose body contains no `msg_sender()`-referencing
// require/if-revert guard anywhere at top level.
type ArbitraryCodeExecution struct {
	visitor.BaseHooks
	r         detect.Reporter
	fnGuarded bool
}

func NewArbitraryCodeExecution(r detect.Reporter) detect.Detector {
	return &ArbitraryCodeExecution{r: r}
}

func (d *ArbitraryCodeExecution) Name() string { return "arbitrary-code-execution" }

func (d *ArbitraryCodeExecution) VisitFn(ctx *visitor.FnContext) error {
	d.fnGuarded = false
	if ctx.ItemFn.Body == nil {
		return nil
	}
	check := func(cond swayast.Expr) bool {
		lhs, rhs, ok := exprutil.BinaryOperands(cond)
		if !ok {
			return false
		}
		return isMsgSenderCall(lhs) || isMsgSenderCall(rhs)
	}
	scan := func(e swayast.Expr) bool {
		if args, ok := exprutil.RequireArgs(e); ok && len(args) > 0 && check(args[0]) {
			return true
		}
		if cond, ok := exprutil.IfRevertCondition(e); ok && check(cond) {
			return true
		}
		return false
	}
	for _, stmt := range ctx.ItemFn.Body.Statements {
		if stmt.Kind == swayast.StatementExprKind && scan(stmt.Expr) {
			d.fnGuarded = true
			return nil
		}
	}
	if ctx.ItemFn.Body.Final != nil && scan(ctx.ItemFn.Body.Final) {
		d.fnGuarded = true
	}
	return nil
}

func isMsgSenderCall(e swayast.Expr) bool {
	app, ok := e.(*swayast.FuncAppExpr)
	if !ok {
		return false
	}
	path, ok := app.Func.(*swayast.PathExpr)
	return ok && (path.Full() == "msg_sender" || path.Full() == "std::auth::msg_sender")
}

func (d *ArbitraryCodeExecution) VisitAsmInstruction(ctx *visitor.AsmInstructionContext) error {
	if ctx.Instruction.Op != "ldc" || d.fnGuarded {
		return nil
	}
	return reportSpan(d.r, ctx.Path, ctx.Instruction.Span(), report.High,
		"arbitrary code execution: `ldc` executed without a preceding msg_sender guard")
}
