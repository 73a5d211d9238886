// Package exprutil holds pure, side-effect-free structural predicates over
// AST expression fragments. None of them mutate or retain state; every
// detector that needs to recognize a shape like "is this a require call"
// goes through one of these.
package exprutil

import swayast "github.com/ourovoros-io/sway-analyzer-go/ast"

// IsBooleanLiteralOrNegation reports whether expr is the literal `true`
// or `false`, or a `!` negation of one.
func IsBooleanLiteralOrNegation(expr swayast.Expr) bool {
	if u, ok := expr.(*swayast.UnaryExpr); ok && u.Op == swayast.UnaryNot {
		return IsBooleanLiteralOrNegation(u.Operand)
	}
	lit, ok := expr.(*swayast.Literal)
	return ok && lit.Kind == swayast.LiteralBool
}

// BinaryOperands extracts (lhs, rhs) from any arithmetic, bitwise, shift,
// comparison, or logical binary expression.
func BinaryOperands(expr swayast.Expr) (lhs, rhs swayast.Expr, ok bool) {
	b, isBinary := expr.(*swayast.BinaryExpr)
	if !isBinary {
		return nil, nil, false
	}
	return b.LHS, b.RHS, true
}

// RequireArgs returns the argument list of a `require(a, b, ...)` call, or
// nil if expr is not such a call.
func RequireArgs(expr swayast.Expr) ([]swayast.Expr, bool) {
	app, ok := expr.(*swayast.FuncAppExpr)
	if !ok {
		return nil, false
	}
	path, ok := app.Func.(*swayast.PathExpr)
	if !ok || path.Full() != "require" {
		return nil, false
	}
	return app.Args, true
}

// IfRevertCondition returns C if expr is `if C { ... }` with a plain
// (non-pattern) condition, no else clause, and a then-block that contains
// a direct `revert(...)` call among its statements or as its final
// expression (see BlockHasRevert); other statements in the block do not
// matter.
func IfRevertCondition(expr swayast.Expr) (swayast.Expr, bool) {
	ifExpr, ok := expr.(*swayast.IfExpr)
	if !ok || ifExpr.Else != nil || ifExpr.Condition.Pattern != nil {
		return nil, false
	}
	if !BlockHasRevert(ifExpr.Then) {
		return nil, false
	}
	return ifExpr.Condition.Expr, true
}

// BlockHasRevert reports whether block's statements or final expression
// contain a direct call to `revert(...)`.
func BlockHasRevert(block *swayast.Block) bool {
	if block == nil {
		return false
	}
	for _, stmt := range block.Statements {
		if stmt.Kind == swayast.StatementExprKind && isRevertCall(stmt.Expr) {
			return true
		}
	}
	return isRevertCall(block.Final)
}

func isRevertCall(expr swayast.Expr) bool {
	app, ok := expr.(*swayast.FuncAppExpr)
	if !ok {
		return false
	}
	path, ok := app.Func.(*swayast.PathExpr)
	return ok && path.Full() == "revert"
}

// ZeroValueComparison detects `var op Type::from(ZERO_B256)` (in either
// operand order) for the given type and variable name, as used by the
// non-zero identity-validation detector. lhs/rhs are the operands of a
// comparison binary expression.
func ZeroValueComparison(typeName, varName string, lhs, rhs swayast.Expr) bool {
	match := func(a, b swayast.Expr) bool {
		path, ok := a.(*swayast.PathExpr)
		if !ok || path.Full() != varName {
			return false
		}
		return isZeroValueConstructor(typeName, b)
	}
	return match(lhs, rhs) || match(rhs, lhs)
}

func isZeroValueConstructor(typeName string, expr swayast.Expr) bool {
	app, ok := expr.(*swayast.FuncAppExpr)
	if !ok {
		return false
	}
	method, ok := app.Func.(*swayast.PathExpr)
	if !ok {
		return false
	}
	if method.Full() != typeName+"::from" && method.Full() != typeName+"::zero" {
		return false
	}
	if method.Full() == typeName+"::zero" {
		return len(app.Args) == 0
	}
	if len(app.Args) != 1 {
		return false
	}
	arg, ok := app.Args[0].(*swayast.PathExpr)
	return ok && arg.Full() == "ZERO_B256"
}

// FindStorageAccessInExpr recursively searches expr for the first
// `storage.<name>.<method>(...)` method-call expression and returns it.
// It descends through method-call targets and arguments, binary, unary
// and parenthesized operands, field and tuple-field projections, index
// expressions, function applications, tuples, struct-literal fields and
// reassignment values. It does not descend into blocks, if/match/while
// expressions, arrays, asm blocks, abi casts or return values.
func FindStorageAccessInExpr(expr swayast.Expr) (*swayast.MethodCallExpr, bool) {
	var found *swayast.MethodCallExpr
	var walk func(e swayast.Expr) bool
	walk = func(e swayast.Expr) bool {
		if e == nil {
			return false
		}
		if mc, ok := e.(*swayast.MethodCallExpr); ok {
			if fp, ok := mc.Target.(*swayast.FieldProjectionExpr); ok {
				if path, ok := fp.Target.(*swayast.PathExpr); ok && path.Full() == "storage" {
					found = mc
					return true
				}
			}
			if walk(mc.Target) {
				return true
			}
			for _, a := range mc.Args {
				if walk(a) {
					return true
				}
			}
			return false
		}
		switch n := e.(type) {
		case *swayast.BinaryExpr:
			return walk(n.LHS) || walk(n.RHS)
		case *swayast.UnaryExpr:
			return walk(n.Operand)
		case *swayast.ParensExpr:
			return walk(n.Inner)
		case *swayast.FieldProjectionExpr:
			return walk(n.Target)
		case *swayast.TupleFieldProjectionExpr:
			return walk(n.Target)
		case *swayast.IndexExpr:
			return walk(n.Target) || walk(n.Arg)
		case *swayast.FuncAppExpr:
			if walk(n.Func) {
				return true
			}
			for _, a := range n.Args {
				if walk(a) {
					return true
				}
			}
			return false
		case *swayast.TupleExpr:
			for _, el := range n.Elements {
				if walk(el) {
					return true
				}
			}
			return false
		case *swayast.StructExpr:
			for _, f := range n.Fields {
				if f.Expr != nil && walk(f.Expr) {
					return true
				}
			}
			return false
		case *swayast.ReassignmentExpr:
			return walk(n.Value)
		}
		return false
	}
	walk(expr)
	return found, found != nil
}
