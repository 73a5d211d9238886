package detectors

import (
	"fmt"

	swayast "github.com/ourovoros-io/sway-analyzer-go/ast"
	"github.com/ourovoros-io/sway-analyzer-go/detect"
	"github.com/ourovoros-io/sway-analyzer-go/exprutil"
	"github.com/ourovoros-io/sway-analyzer-go/report"
	"github.com/ourovoros-io/sway-analyzer-go/visitor"
)

var identityLikeTypes = map[string]bool{
	"Address":    true,
	"ContractId": true,
	"Identity":   true,
	"b256":       true,
}

// NonZeroIdentityValidation flags a function parameter of an
// identity-like type (Address, ContractId, Identity, b256) that the body
// never checks against its zero value via a `require`/if-revert guard.
type NonZeroIdentityValidation struct {
	visitor.BaseHooks
	r           detect.Reporter
	unvalidated map[string]bool // param name -> still unvalidated
	paramOrder  []string        // declared parameter order, for deterministic emission
	fnSpan      swayast.Span
}

func NewNonZeroIdentityValidation(r detect.Reporter) detect.Detector {
	return &NonZeroIdentityValidation{r: r}
}

func (d *NonZeroIdentityValidation) Name() string { return "non-zero-identity-validation" }

func (d *NonZeroIdentityValidation) VisitFn(ctx *visitor.FnContext) error {
	d.unvalidated = make(map[string]bool)
	d.paramOrder = nil
	d.fnSpan = ctx.ItemFn.Signature.Span()
	for _, p := range ctx.ItemFn.Signature.Params {
		if identityLikeTypes[p.Type.Name] {
			d.unvalidated[p.Name.Name] = true
			d.paramOrder = append(d.paramOrder, p.Name.Name)
		}
	}
	if len(d.unvalidated) == 0 || ctx.ItemFn.Body == nil {
		return nil
	}

	check := func(cond swayast.Expr) {
		lhs, rhs, ok := exprutil.BinaryOperands(cond)
		if !ok {
			return
		}
		for name := range d.unvalidated {
			typeName := paramType(ctx.ItemFn.Signature.Params, name)
			if exprutil.ZeroValueComparison(typeName, name, lhs, rhs) {
				delete(d.unvalidated, name)
			}
		}
	}
	scan := func(e swayast.Expr) {
		if args, ok := exprutil.RequireArgs(e); ok && len(args) > 0 {
			check(args[0])
		}
		if cond, ok := exprutil.IfRevertCondition(e); ok {
			check(cond)
		}
	}
	for _, stmt := range ctx.ItemFn.Body.Statements {
		if stmt.Kind == swayast.StatementExprKind {
			scan(stmt.Expr)
		}
	}
	if ctx.ItemFn.Body.Final != nil {
		scan(ctx.ItemFn.Body.Final)
	}
	return nil
}

func paramType(params []swayast.Param, name string) string {
	for _, p := range params {
		if p.Name.Name == name {
			return p.Type.Name
		}
	}
	return ""
}

func (d *NonZeroIdentityValidation) LeaveFn(ctx *visitor.FnContext) error {
	for _, name := range d.paramOrder {
		if !d.unvalidated[name] {
			continue
		}
		if err := reportSpan(d.r, ctx.Path, d.fnSpan, report.High,
			fmt.Sprintf("non-zero identity validation: parameter %q is never checked against its zero value", name)); err != nil {
			return err
		}
	}
	return nil
}
