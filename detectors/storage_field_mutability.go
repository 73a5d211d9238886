package detectors

import (
	"fmt"

	swayast "github.com/ourovoros-io/sway-analyzer-go/ast"
	"github.com/ourovoros-io/sway-analyzer-go/detect"
	"github.com/ourovoros-io/sway-analyzer-go/report"
	"github.com/ourovoros-io/sway-analyzer-go/resolve"
	"github.com/ourovoros-io/sway-analyzer-go/visitor"
)

var storageMutatingMethods = map[string]bool{"write": true, "insert": true, "clear": true, "remove": true}

// StorageFieldMutability flags a storage-mutating call (`.write`,
// `.insert`, `.clear`, `.remove`) performed from a function whose
// signature is not annotated `#[storage(write)]`.
type StorageFieldMutability struct {
	visitor.BaseHooks
	r            detect.Reporter
	hasWriteAttr bool
}

func NewStorageFieldMutability(r detect.Reporter) detect.Detector {
	return &StorageFieldMutability{r: r}
}

func (d *StorageFieldMutability) Name() string { return "storage-field-mutability" }

func (d *StorageFieldMutability) VisitFn(ctx *visitor.FnContext) error {
	d.hasWriteAttr = resolve.HasAttribute(ctx.ItemFn.Attributes, "storage", []string{"write"})
	return nil
}

func (d *StorageFieldMutability) VisitExpr(ctx *visitor.ExprContext) error {
	if d.hasWriteAttr {
		return nil
	}
	mc, ok := ctx.Expr.(*swayast.MethodCallExpr)
	if !ok || !storageMutatingMethods[mc.Method.Name] {
		return nil
	}
	fp, ok := mc.Target.(*swayast.FieldProjectionExpr)
	if !ok {
		return nil
	}
	p, ok := fp.Target.(*swayast.PathExpr)
	if !ok || p.Full() != "storage" {
		return nil
	}
	return reportSpan(d.r, ctx.Path, ctx.Expr.Span(), report.High,
		fmt.Sprintf("storage field mutability: %q is mutated without a `#[storage(write)]` annotation", fp.Field.Name))
}
