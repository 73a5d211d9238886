package visitor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	swayast "github.com/ourovoros-io/sway-analyzer-go/ast"
	"github.com/ourovoros-io/sway-analyzer-go/visitor"
)

// recorder appends one tag per hook invocation, so a test can assert on
// the exact visit/leave ordering a walk produces.
type recorder struct {
	visitor.BaseHooks
	events *[]string
}

func (r recorder) VisitFn(ctx *visitor.FnContext) error {
	*r.events = append(*r.events, "visit_fn:"+ctx.ItemFn.Signature.Name.Name)
	return nil
}
func (r recorder) LeaveFn(ctx *visitor.FnContext) error {
	*r.events = append(*r.events, "leave_fn:"+ctx.ItemFn.Signature.Name.Name)
	return nil
}
func (r recorder) VisitIfExpr(ctx *visitor.IfExprContext) error {
	*r.events = append(*r.events, "visit_if")
	return nil
}
func (r recorder) LeaveIfExpr(ctx *visitor.IfExprContext) error {
	*r.events = append(*r.events, "leave_if")
	return nil
}
func (r recorder) VisitExpr(ctx *visitor.ExprContext) error {
	*r.events = append(*r.events, "visit_expr:"+ctx.Expr.ExprKind())
	return nil
}
func (r recorder) LeaveExpr(ctx *visitor.ExprContext) error {
	*r.events = append(*r.events, "leave_expr:"+ctx.Expr.ExprKind())
	return nil
}
func (r recorder) VisitBlock(ctx *visitor.BlockContext) error {
	*r.events = append(*r.events, "visit_block")
	return nil
}
func (r recorder) LeaveBlock(ctx *visitor.BlockContext) error {
	*r.events = append(*r.events, "leave_block")
	return nil
}

func buildModule() *swayast.Module {
	cond := &swayast.Literal{Kind: swayast.LiteralBool, BoolVal: true}
	thenBlock := &swayast.Block{Final: &swayast.Literal{Kind: swayast.LiteralInt, Raw: "1"}}
	ifExpr := &swayast.IfExpr{Condition: swayast.IfCondition{Expr: cond}, Then: thenBlock}

	body := &swayast.Block{Final: ifExpr}
	fn := &swayast.ItemFn{
		Signature: swayast.FnSignature{Name: swayast.Ident{Name: "check"}},
		Body:      body,
	}
	return &swayast.Module{Items: []swayast.Item{fn}}
}

func TestWalkOrderingNestedIf(t *testing.T) {
	mod := buildModule()
	var events []string
	w := visitor.New(recorder{events: &events})

	err := w.Walk("main.sw", mod)
	assert.NoError(t, err)

	assert.Equal(t, []string{
		"visit_fn:check",
		"visit_block",
		"visit_expr:if",
		"visit_if",
		"visit_expr:literal",
		"leave_expr:literal",
		"visit_block",
		"visit_expr:literal",
		"leave_expr:literal",
		"leave_block",
		"leave_if",
		"leave_expr:if",
		"leave_block",
		"leave_fn:check",
	}, events)
}

func TestWalkAbortsOnHookError(t *testing.T) {
	mod := buildModule()
	var events []string
	failing := failingHooks{recorder: recorder{events: &events}}
	w := visitor.New(failing)

	err := w.Walk("main.sw", mod)
	assert.Error(t, err)
	assert.Equal(t, "boom", err.Error())
	// The walk must stop before descending into the if-block.
	assert.Equal(t, []string{"visit_fn:check", "visit_block", "visit_expr:if"}, events)
}

type failingHooks struct {
	recorder
}

func (failingHooks) VisitIfExpr(*visitor.IfExprContext) error {
	return errBoom
}

var errBoom = boom{}

type boom struct{}

func (boom) Error() string { return "boom" }
