package detectors

import (
	"fmt"

	swayast "github.com/ourovoros-io/sway-analyzer-go/ast"
	"github.com/ourovoros-io/sway-analyzer-go/detect"
	"github.com/ourovoros-io/sway-analyzer-go/exprutil"
	"github.com/ourovoros-io/sway-analyzer-go/report"
	"github.com/ourovoros-io/sway-analyzer-go/visitor"
)

// RedundantStorageAccess flags a storage field read twice within the
// same block with no intervening write, and a storage access performed
// directly in a `while` loop's condition (re-evaluated every iteration).
type RedundantStorageAccess struct {
	visitor.BaseHooks
	r      detect.Reporter
	frames []map[string]bool
}

func NewRedundantStorageAccess(r detect.Reporter) detect.Detector {
	return &RedundantStorageAccess{r: r}
}

func (d *RedundantStorageAccess) Name() string { return "redundant-storage-access" }

func (d *RedundantStorageAccess) VisitBlock(ctx *visitor.BlockContext) error {
	d.frames = append(d.frames, make(map[string]bool))
	return nil
}

func (d *RedundantStorageAccess) LeaveBlock(ctx *visitor.BlockContext) error {
	d.frames = d.frames[:len(d.frames)-1]
	return nil
}

func (d *RedundantStorageAccess) VisitExpr(ctx *visitor.ExprContext) error {
	mc, ok := ctx.Expr.(*swayast.MethodCallExpr)
	if !ok {
		return nil
	}
	fp, ok := mc.Target.(*swayast.FieldProjectionExpr)
	if !ok {
		return nil
	}
	if p, ok := fp.Target.(*swayast.PathExpr); !ok || p.Full() != "storage" {
		return nil
	}
	if len(d.frames) == 0 {
		return nil
	}
	frame := d.frames[len(d.frames)-1]
	field := fp.Field.Name

	switch mc.Method.Name {
	case "write", "insert":
		frame[field] = false
	case "read", "get":
		if frame[field] {
			return reportSpan(d.r, ctx.Path, ctx.Expr.Span(), report.Low,
				fmt.Sprintf("redundant storage access: %q is read more than once with no intervening write", field))
		}
		frame[field] = true
	}
	return nil
}

func (d *RedundantStorageAccess) VisitWhileExpr(ctx *visitor.WhileExprContext) error {
	if _, found := exprutil.FindStorageAccessInExpr(ctx.While.Condition); found {
		return reportSpan(d.r, ctx.Path, ctx.While.Condition.Span(), report.Low,
			"redundant storage access: loop condition re-reads storage on every iteration")
	}
	return nil
}
