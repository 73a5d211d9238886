package exprutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	swayast "github.com/ourovoros-io/sway-analyzer-go/ast"
	"github.com/ourovoros-io/sway-analyzer-go/exprutil"
)

func path(name string) *swayast.PathExpr { return &swayast.PathExpr{Segments: []string{name}} }

func TestIsBooleanLiteralOrNegation(t *testing.T) {
	lit := &swayast.Literal{Kind: swayast.LiteralBool, BoolVal: true}
	assert.True(t, exprutil.IsBooleanLiteralOrNegation(lit))
	assert.True(t, exprutil.IsBooleanLiteralOrNegation(&swayast.UnaryExpr{Op: swayast.UnaryNot, Operand: lit}))
	assert.False(t, exprutil.IsBooleanLiteralOrNegation(path("x")))
}

func TestRequireArgs(t *testing.T) {
	call := &swayast.FuncAppExpr{Func: path("require"), Args: []swayast.Expr{path("cond"), path("msg")}}
	args, ok := exprutil.RequireArgs(call)
	assert.True(t, ok)
	assert.Len(t, args, 2)

	_, ok = exprutil.RequireArgs(path("not_a_call"))
	assert.False(t, ok)
}

func TestIfRevertCondition(t *testing.T) {
	revertStmt := swayast.Statement{
		Kind:         swayast.StatementExprKind,
		Expr:         &swayast.FuncAppExpr{Func: path("revert"), Args: []swayast.Expr{&swayast.Literal{Kind: swayast.LiteralInt, Raw: "0"}}},
		HasSemicolon: true,
	}
	ifExpr := &swayast.IfExpr{
		Condition: swayast.IfCondition{Expr: path("cond")},
		Then:      &swayast.Block{Statements: []swayast.Statement{revertStmt}},
	}

	cond, ok := exprutil.IfRevertCondition(ifExpr)
	assert.True(t, ok)
	assert.Equal(t, path("cond"), cond)
}

func TestZeroValueComparison(t *testing.T) {
	zero := &swayast.FuncAppExpr{Func: path("Address::from"), Args: []swayast.Expr{path("ZERO_B256")}}
	assert.True(t, exprutil.ZeroValueComparison("Address", "to", path("to"), zero))
	assert.True(t, exprutil.ZeroValueComparison("Address", "to", zero, path("to")))
	assert.False(t, exprutil.ZeroValueComparison("Address", "other", path("to"), zero))
}

func TestFindStorageAccessInExpr(t *testing.T) {
	storageRead := &swayast.MethodCallExpr{
		Target: &swayast.FieldProjectionExpr{Target: path("storage"), Field: swayast.Ident{Name: "balance"}},
		Method: swayast.Ident{Name: "read"},
	}
	wrapped := &swayast.BinaryExpr{Op: swayast.OpAdd, LHS: storageRead, RHS: &swayast.Literal{Kind: swayast.LiteralInt, Raw: "1"}}

	found, ok := exprutil.FindStorageAccessInExpr(wrapped)
	assert.True(t, ok)
	assert.Equal(t, "read", found.Method.Name)

	_, ok = exprutil.FindStorageAccessInExpr(path("x"))
	assert.False(t, ok)
}
