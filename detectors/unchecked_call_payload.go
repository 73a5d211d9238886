package detectors

import (
	swayast "github.com/ourovoros-io/sway-analyzer-go/ast"
	"github.com/ourovoros-io/sway-analyzer-go/detect"
	"github.com/ourovoros-io/sway-analyzer-go/report"
	"github.com/ourovoros-io/sway-analyzer-go/visitor"
)

// UncheckedCallPayload flags an external contract call that forwards coins
// or gas via call-site options (`{coins: ..., asset_id: ...}`) but whose
// result is discarded as a bare statement: a failed external call can
// silently swallow the forwarded payload with no on-chain trace.
type UncheckedCallPayload struct {
	visitor.BaseHooks
	r       detect.Reporter
	abiVars map[string]bool
}

func NewUncheckedCallPayload(r detect.Reporter) detect.Detector {
	return &UncheckedCallPayload{r: r}
}

func (d *UncheckedCallPayload) Name() string { return "unchecked-call-payload" }

func (d *UncheckedCallPayload) VisitModule(ctx *visitor.ModuleContext) error {
	d.abiVars = make(map[string]bool)
	return nil
}

func (d *UncheckedCallPayload) VisitStatementLet(ctx *visitor.StatementLetContext) error {
	if _, ok := ctx.StatementLet.Expr.(*swayast.AbiCastExpr); !ok {
		return nil
	}
	ids := ctx.StatementLet.Pattern.FoldIdents()
	if len(ids) == 1 {
		d.abiVars[ids[0].Name] = true
	}
	return nil
}

func (d *UncheckedCallPayload) VisitExpr(ctx *visitor.ExprContext) error {
	mc, ok := ctx.Expr.(*swayast.MethodCallExpr)
	if !ok {
		return nil
	}
	p, ok := mc.Target.(*swayast.PathExpr)
	if !ok || !d.abiVars[p.Full()] {
		return nil
	}
	if !hasPayloadOption(mc.Options) {
		return nil
	}
	if ctx.Statement == nil || ctx.Statement.Expr != ctx.Expr {
		return nil
	}
	return reportSpan(d.r, ctx.Path, ctx.Expr.Span(), report.Medium,
		"unchecked call payload: external call forwards coins/gas but its result is discarded")
}

func hasPayloadOption(opts []swayast.CallSiteOption) bool {
	for _, o := range opts {
		if o.Name.Name == "coins" || o.Name.Name == "asset_id" || o.Name.Name == "gas" {
			return true
		}
	}
	return false
}
