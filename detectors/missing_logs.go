package detectors

import (
	swayast "github.com/ourovoros-io/sway-analyzer-go/ast"
	"github.com/ourovoros-io/sway-analyzer-go/detect"
	"github.com/ourovoros-io/sway-analyzer-go/report"
	"github.com/ourovoros-io/sway-analyzer-go/visitor"
)

// MissingLogs flags a function that writes to a storage field (`.write`
// or `.insert`) but never calls `log(...)` anywhere in its body.
type MissingLogs struct {
	visitor.BaseHooks
	r        detect.Reporter
	logNames map[string]string
	hasWrite bool
	hasLog   bool
	fnSpan   swayast.Span
}

func NewMissingLogs(r detect.Reporter) detect.Detector {
	return &MissingLogs{r: r}
}

func (d *MissingLogs) Name() string { return "missing-logs" }

func (d *MissingLogs) VisitModule(ctx *visitor.ModuleContext) error {
	d.logNames = fileImports(ctx.Module, "std::logging::log", "log")
	return nil
}

func (d *MissingLogs) VisitFn(ctx *visitor.FnContext) error {
	d.hasWrite = false
	d.hasLog = false
	d.fnSpan = ctx.ItemFn.Signature.Span()
	return nil
}

func (d *MissingLogs) VisitExpr(ctx *visitor.ExprContext) error {
	switch e := ctx.Expr.(type) {
	case *swayast.MethodCallExpr:
		if isStorageFieldAccess(e.Target) && (e.Method.Name == "write" || e.Method.Name == "insert") {
			d.hasWrite = true
		}
	case *swayast.FuncAppExpr:
		if p, ok := e.Func.(*swayast.PathExpr); ok {
			if _, ok := d.logNames[p.Full()]; ok {
				d.hasLog = true
			}
		}
	}
	return nil
}

func (d *MissingLogs) LeaveFn(ctx *visitor.FnContext) error {
	if !d.hasWrite || d.hasLog {
		return nil
	}
	return reportSpan(d.r, ctx.Path, d.fnSpan, report.Medium,
		"missing logs: storage is written but no event is logged")
}

// isStorageFieldAccess reports whether target is a `storage.<name>`
// field-projection expression.
func isStorageFieldAccess(target swayast.Expr) bool {
	fp, ok := target.(*swayast.FieldProjectionExpr)
	if !ok {
		return false
	}
	p, ok := fp.Target.(*swayast.PathExpr)
	return ok && p.Full() == "storage"
}
