package scope_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	swayast "github.com/ourovoros-io/sway-analyzer-go/ast"
	"github.com/ourovoros-io/sway-analyzer-go/scope"
)

func TestTypeOfLiterals(t *testing.T) {
	s := scope.NewRoot()
	assert.Equal(t, swayast.Type{Name: "u64"}, scope.TypeOf(&swayast.Literal{Kind: swayast.LiteralInt, Raw: "1"}, s))
	assert.Equal(t, swayast.Type{Name: "bool"}, scope.TypeOf(&swayast.Literal{Kind: swayast.LiteralBool, BoolVal: true}, s))
}

func TestTypeOfStorageProjection(t *testing.T) {
	s := scope.NewRoot()
	s.DeclareStorageField("balance", swayast.Type{Name: "u64"})

	expr := &swayast.FieldProjectionExpr{
		Target: &swayast.PathExpr{Segments: []string{"storage"}},
		Field:  swayast.Ident{Name: "balance"},
	}
	got := scope.TypeOf(expr, s)
	assert.Equal(t, "StorageKey", got.Name)
	assert.Equal(t, "u64", got.Args[0].Name)
}

func TestLookupVariableShadowing(t *testing.T) {
	root := scope.NewRoot()
	root.Declare(scope.Local, "x", swayast.Type{Name: "u64"})

	inner := scope.NewChild(root)
	inner.Declare(scope.Local, "x", swayast.Type{Name: "bool"})

	b, ok := inner.Lookup("x")
	assert.True(t, ok)
	assert.Equal(t, "bool", b.Type.Name)

	// The outer scope's binding is unaffected.
	b, ok = root.Lookup("x")
	assert.True(t, ok)
	assert.Equal(t, "u64", b.Type.Name)
}

func TestTypeOfComparisonIsBool(t *testing.T) {
	s := scope.NewRoot()
	expr := &swayast.BinaryExpr{
		Op:  swayast.OpEqual,
		LHS: &swayast.Literal{Kind: swayast.LiteralInt, Raw: "1"},
		RHS: &swayast.Literal{Kind: swayast.LiteralInt, Raw: "2"},
	}
	assert.Equal(t, "bool", scope.TypeOf(expr, s).Name)
}

func TestTypeOfUnresolvedPath(t *testing.T) {
	s := scope.NewRoot()
	got := scope.TypeOf(&swayast.PathExpr{Segments: []string{"unknown"}}, s)
	assert.True(t, got.IsUnresolved())
}
