package resolve

import swayast "github.com/ourovoros-io/sway-analyzer-go/ast"

// PatternIdents returns the flat, source-ordered list of binder
// identifiers in p, descending into constructor, struct, tuple, and
// or-patterns. It is a thin re-export of ast.Pattern.FoldIdents kept here
// so every name-resolution helper has one home.
func PatternIdents(p swayast.Pattern) []swayast.Ident {
	return p.FoldIdents()
}

// ExprIdents returns the flat, source-ordered list of "identifier-like"
// leaves in expr: path prefixes, method-call names, field names. Used by
// dataflow-proxy analyses that key on textual identifier equality rather
// than resolved bindings.
func ExprIdents(expr swayast.Expr) []swayast.Ident {
	var out []swayast.Ident
	fold(expr, &out)
	return out
}

func fold(expr swayast.Expr, out *[]swayast.Ident) {
	if expr == nil {
		return
	}
	switch e := expr.(type) {
	case *swayast.PathExpr:
		*out = append(*out, swayast.Ident{Name: e.Full(), Span: e.NodeSpan})

	case *swayast.AbiCastExpr:
		fold(e.Address, out)

	case *swayast.StructExpr:
		for _, f := range e.Fields {
			if f.Expr != nil {
				fold(f.Expr, out)
			} else {
				*out = append(*out, f.Name)
			}
		}

	case *swayast.TupleExpr:
		for _, el := range e.Elements {
			fold(el, out)
		}

	case *swayast.ParensExpr:
		fold(e.Inner, out)

	case *swayast.ArrayExpr:
		if e.IsRepeat() {
			fold(e.RepeatValue, out)
			fold(e.RepeatLen, out)
		} else {
			for _, el := range e.Elements {
				fold(el, out)
			}
		}

	case *swayast.ReturnExpr:
		if e.Value != nil {
			fold(e.Value, out)
		}

	case *swayast.FuncAppExpr:
		fold(e.Func, out)
		for _, a := range e.Args {
			fold(a, out)
		}

	case *swayast.IndexExpr:
		fold(e.Target, out)
		fold(e.Arg, out)

	case *swayast.MethodCallExpr:
		fold(e.Target, out)
		*out = append(*out, e.Method)
		for _, a := range e.Args {
			fold(a, out)
		}

	case *swayast.FieldProjectionExpr:
		fold(e.Target, out)
		*out = append(*out, swayast.Ident{Name: e.Field.Name, Span: e.NodeSpan})

	case *swayast.TupleFieldProjectionExpr:
		fold(e.Target, out)
		*out = append(*out, swayast.Ident{Name: "", Span: e.NodeSpan})

	case *swayast.UnaryExpr:
		fold(e.Operand, out)

	case *swayast.BinaryExpr:
		fold(e.LHS, out)
		fold(e.RHS, out)

	case *swayast.ReassignmentExpr:
		if name, ok := e.Assignable.RootName(); ok {
			*out = append(*out, name)
		}
		fold(e.Value, out)

	default:
		// Literals, blocks, asm, if/match/while, break/continue carry no
		// identifier-like leaves under this fold.
	}
}
