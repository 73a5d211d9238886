package detectors

import (
	"fmt"

	swayast "github.com/ourovoros-io/sway-analyzer-go/ast"
	"github.com/ourovoros-io/sway-analyzer-go/detect"
	"github.com/ourovoros-io/sway-analyzer-go/report"
	"github.com/ourovoros-io/sway-analyzer-go/resolve"
	"github.com/ourovoros-io/sway-analyzer-go/visitor"
)

// UnusedImport flags a `use` item whose local name (the same local name
// the resolver computes for every other detector's use-tree recognition)
// is never referenced anywhere else in the module. Recognition of "used"
// is the same textual-identifier heuristic as the rest of the resolver
// layer: a reference is any path segment, method name, struct-literal
// type name, or abi-cast name equal to the local name.
type UnusedImport struct {
	visitor.BaseHooks
	r       detect.Reporter
	path    string
	imports map[string]swayast.Span
	used    map[string]bool
}

func NewUnusedImport(r detect.Reporter) detect.Detector {
	return &UnusedImport{r: r}
}

func (d *UnusedImport) Name() string { return "unused-import" }

func (d *UnusedImport) VisitModule(ctx *visitor.ModuleContext) error {
	d.path = ctx.Path
	d.imports = make(map[string]swayast.Span)
	d.used = make(map[string]bool)
	for _, item := range ctx.Module.Items {
		u, ok := item.(*swayast.ItemUse)
		if !ok {
			continue
		}
		for _, name := range resolve.AllLocalNames(u.Tree) {
			if _, already := d.imports[name]; !already {
				d.imports[name] = u.NodeSpan
			}
		}
	}
	return nil
}

func (d *UnusedImport) markUsed(name string) {
	if name != "" {
		d.used[name] = true
	}
}

func (d *UnusedImport) VisitExpr(ctx *visitor.ExprContext) error {
	switch e := ctx.Expr.(type) {
	case *swayast.PathExpr:
		for _, seg := range e.Segments {
			d.markUsed(seg)
		}
	case *swayast.MethodCallExpr:
		d.markUsed(e.Method.Name)
	case *swayast.StructExpr:
		d.markUsed(e.TypeName)
	case *swayast.AbiCastExpr:
		d.markUsed(e.AbiName)
	}
	return nil
}

func (d *UnusedImport) LeaveModule(ctx *visitor.ModuleContext) error {
	for name, span := range d.imports {
		if d.used[name] {
			continue
		}
		if err := reportSpan(d.r, d.path, span, report.Low,
			fmt.Sprintf("unused import: %q is never referenced in this module", name)); err != nil {
			return err
		}
	}
	return nil
}
