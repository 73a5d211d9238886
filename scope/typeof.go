package scope

import swayast "github.com/ourovoros-io/sway-analyzer-go/ast"

// TypeOf infers the type of expr under s, exhaustively over every
// expression kind. Cases with no reliable rule (method-call results,
// generics resolved only by a real type-checker) return ast.Unresolved;
// no detector may depend on those for correctness, per the design's open
// question about the inferencer's unresolved cases.
func TypeOf(expr swayast.Expr, s *Scope) swayast.Type {
	if expr == nil {
		return swayast.Unresolved
	}

	switch e := expr.(type) {
	case *swayast.PathExpr:
		if len(e.Segments) == 1 {
			if b, ok := s.Lookup(e.Segments[0]); ok {
				return b.Type
			}
		}
		return swayast.Unresolved

	case *swayast.Literal:
		switch e.Kind {
		case swayast.LiteralInt:
			return swayast.Type{Name: "u64"}
		case swayast.LiteralBool:
			return swayast.Type{Name: "bool"}
		case swayast.LiteralString:
			return swayast.Type{Name: "str"}
		default:
			return swayast.Unresolved
		}

	case *swayast.AbiCastExpr:
		return swayast.Type{Name: e.AbiName}

	case *swayast.StructExpr:
		return swayast.Type{Name: e.TypeName}

	case *swayast.TupleExpr:
		args := make([]swayast.Type, 0, len(e.Elements))
		for _, el := range e.Elements {
			args = append(args, TypeOf(el, s))
		}
		return swayast.Type{Name: "tuple", Args: args}

	case *swayast.ParensExpr:
		return TypeOf(e.Inner, s)

	case *swayast.BlockExpr:
		return typeOfBlock(e.Block, s)

	case *swayast.IfExpr:
		return typeOfBlock(e.Then, s)

	case *swayast.MatchExpr:
		if len(e.Branches) == 0 {
			return swayast.Unresolved
		}
		last := e.Branches[len(e.Branches)-1]
		if last.IsBlock {
			return typeOfBlock(last.Block, s)
		}
		return TypeOf(last.Expr, s)

	case *swayast.ArrayExpr:
		if e.IsRepeat() {
			return TypeOf(e.RepeatValue, s)
		}
		if len(e.Elements) == 0 {
			return swayast.Unresolved
		}
		return TypeOf(e.Elements[0], s)

	case *swayast.FieldProjectionExpr:
		if target, ok := e.Target.(*swayast.PathExpr); ok && target.Full() == "storage" {
			if fieldType, ok := s.LookupStorageField(e.Field.Name); ok {
				return swayast.StorageKeyType(fieldType)
			}
			return swayast.Unresolved
		}
		// Resolving an arbitrary struct's field type requires a struct
		// registry this package intentionally does not own (no
		// interprocedural/whole-program type resolution, per the
		// non-goals); unresolved is the documented behavior.
		return swayast.Unresolved

	case *swayast.TupleFieldProjectionExpr:
		targetType := TypeOf(e.Target, s)
		if targetType.Name == "tuple" && e.Index < len(targetType.Args) {
			return targetType.Args[e.Index]
		}
		return swayast.Unresolved

	case *swayast.IndexExpr:
		targetType := TypeOf(e.Target, s)
		if len(targetType.Args) == 1 {
			return targetType.Args[0]
		}
		return swayast.Unresolved

	case *swayast.UnaryExpr:
		return TypeOf(e.Operand, s)

	case *swayast.BinaryExpr:
		if e.Op.IsComparison() || e.Op.IsLogical() {
			return swayast.Type{Name: "bool"}
		}
		return TypeOf(e.LHS, s)

	case *swayast.WhileExpr, *swayast.ReturnExpr, *swayast.BreakExpr,
		*swayast.ContinueExpr, *swayast.ReassignmentExpr, *swayast.AsmExpr:
		return swayast.Unit

	default:
		return swayast.Unresolved
	}
}

func typeOfBlock(b *swayast.Block, s *Scope) swayast.Type {
	if b == nil || b.Final == nil {
		return swayast.Unit
	}
	return TypeOf(b.Final, s)
}
