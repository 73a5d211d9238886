package detectors

import (
	"fmt"

	swayast "github.com/ourovoros-io/sway-analyzer-go/ast"
	"github.com/ourovoros-io/sway-analyzer-go/detect"
	"github.com/ourovoros-io/sway-analyzer-go/report"
	"github.com/ourovoros-io/sway-analyzer-go/resolve"
	"github.com/ourovoros-io/sway-analyzer-go/visitor"
)

// storageBinding tracks a local variable initialized from a storage field
// read, through any subsequent reassignment, up to its next storage write.
// written records whether the binding has ever been written back at all;
// modifiedAfterWrite records whether it was mutated again after its most
// recent write, so a second, un-written mutation is still caught.
type storageBinding struct {
	storageName        string
	varName            string
	span               swayast.Span
	written            bool
	modifiedAfterWrite bool
}

// StorageNotUpdated flags a local variable read from storage that is
// never written back at all, or is written back once and then mutated
// again with no further write: either way the function's final in-memory
// value never reaches storage.
type StorageNotUpdated struct {
	visitor.BaseHooks
	r             detect.Reporter
	fnIsWriteable bool
	bindings      []*storageBinding
}

func NewStorageNotUpdated(r detect.Reporter) detect.Detector {
	return &StorageNotUpdated{r: r}
}

func (d *StorageNotUpdated) Name() string { return "storage-not-updated" }

func (d *StorageNotUpdated) VisitFn(ctx *visitor.FnContext) error {
	d.fnIsWriteable = resolve.HasAttribute(ctx.ItemFn.Attributes, "storage", []string{"write"})
	d.bindings = nil
	return nil
}

func storageFieldRead(expr swayast.Expr) (string, bool) {
	mc, ok := expr.(*swayast.MethodCallExpr)
	if !ok || (mc.Method.Name != "read" && mc.Method.Name != "get") {
		return "", false
	}
	fp, ok := mc.Target.(*swayast.FieldProjectionExpr)
	if !ok {
		return "", false
	}
	p, ok := fp.Target.(*swayast.PathExpr)
	if !ok || p.Full() != "storage" {
		return "", false
	}
	return fp.Field.Name, true
}

func storageFieldWriteTarget(expr swayast.Expr) (string, bool) {
	mc, ok := expr.(*swayast.MethodCallExpr)
	if !ok || (mc.Method.Name != "write" && mc.Method.Name != "insert") {
		return "", false
	}
	fp, ok := mc.Target.(*swayast.FieldProjectionExpr)
	if !ok {
		return "", false
	}
	p, ok := fp.Target.(*swayast.PathExpr)
	if !ok || p.Full() != "storage" {
		return "", false
	}
	return fp.Field.Name, true
}

func (d *StorageNotUpdated) VisitStatementLet(ctx *visitor.StatementLetContext) error {
	if !d.fnIsWriteable {
		return nil
	}
	storageName, ok := storageFieldRead(ctx.StatementLet.Expr)
	if !ok {
		return nil
	}
	ids := ctx.StatementLet.Pattern.FoldIdents()
	if len(ids) != 1 {
		return nil
	}
	d.bindings = append(d.bindings, &storageBinding{
		storageName: storageName,
		varName:     ids[0].Name,
		span:        ctx.StatementLet.Span,
	})
	return nil
}

func (d *StorageNotUpdated) binding(name string) *storageBinding {
	for i := len(d.bindings) - 1; i >= 0; i-- {
		if d.bindings[i].varName == name {
			return d.bindings[i]
		}
	}
	return nil
}

func (d *StorageNotUpdated) VisitExpr(ctx *visitor.ExprContext) error {
	if !d.fnIsWriteable {
		return nil
	}
	// A storage write of a tracked variable lands the update and clears
	// any mutation recorded against the previous write.
	if mc, ok := ctx.Expr.(*swayast.MethodCallExpr); ok {
		if _, isWrite := storageFieldWriteTarget(mc); isWrite {
			if len(mc.Args) == 1 {
				if p, ok := mc.Args[0].(*swayast.PathExpr); ok && len(p.Segments) == 1 {
					if b := d.binding(p.Full()); b != nil {
						b.written = true
						b.modifiedAfterWrite = false
					}
				}
			}
		}
	}
	return nil
}

func (d *StorageNotUpdated) LeaveExpr(ctx *visitor.ExprContext) error {
	if !d.fnIsWriteable {
		return nil
	}
	re, ok := ctx.Expr.(*swayast.ReassignmentExpr)
	if !ok || re.Assignable.Kind != swayast.AssignableVar {
		return nil
	}
	if b := d.binding(re.Assignable.Name.Name); b != nil && b.written {
		b.modifiedAfterWrite = true
	}
	return nil
}

func (d *StorageNotUpdated) LeaveFn(ctx *visitor.FnContext) error {
	if !d.fnIsWriteable {
		return nil
	}
	for _, b := range d.bindings {
		if !b.written || b.modifiedAfterWrite {
			if err := reportSpan(d.r, ctx.Path, b.span, report.High,
				fmt.Sprintf("storage not updated: %q is read from storage field %q and never written back", b.varName, b.storageName)); err != nil {
				return err
			}
		}
	}
	return nil
}
