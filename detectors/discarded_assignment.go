package detectors

import (
	"fmt"
	"strings"

	swayast "github.com/ourovoros-io/sway-analyzer-go/ast"
	"github.com/ourovoros-io/sway-analyzer-go/detect"
	"github.com/ourovoros-io/sway-analyzer-go/report"
	"github.com/ourovoros-io/sway-analyzer-go/visitor"
)

type discardedAssignmentRecord struct {
	name     string
	span     swayast.Span
	used     bool
	reported bool
}

type discardedAssignmentFrame struct {
	vars []*discardedAssignmentRecord
}

// DiscardedAssignment flags a `let`/reassignment binding whose value is
// never read before the block ends or before the binding is reassigned
// again. A name starting with `_` is always treated as used.
type DiscardedAssignment struct {
	visitor.BaseHooks
	r      detect.Reporter
	frames []*discardedAssignmentFrame
}

func NewDiscardedAssignment(r detect.Reporter) detect.Detector {
	return &DiscardedAssignment{r: r}
}

func (d *DiscardedAssignment) Name() string { return "discarded-assignment" }

func (d *DiscardedAssignment) top() *discardedAssignmentFrame {
	return d.frames[len(d.frames)-1]
}

func (d *DiscardedAssignment) VisitBlock(ctx *visitor.BlockContext) error {
	d.frames = append(d.frames, &discardedAssignmentFrame{})
	return nil
}

func (d *DiscardedAssignment) LeaveBlock(ctx *visitor.BlockContext) error {
	frame := d.top()
	d.frames = d.frames[:len(d.frames)-1]
	for _, rec := range frame.vars {
		if rec.used || rec.reported || strings.HasPrefix(rec.name, "_") {
			continue
		}
		if err := reportSpan(d.r, ctx.Path, rec.span, report.Medium,
			fmt.Sprintf("discarded assignment: %q is never read before the block ends", rec.name)); err != nil {
			return err
		}
	}
	return nil
}

func (d *DiscardedAssignment) declare(name string, span swayast.Span) {
	if len(d.frames) == 0 {
		return
	}
	d.top().vars = append(d.top().vars, &discardedAssignmentRecord{name: name, span: span})
}

func (d *DiscardedAssignment) VisitStatementLet(ctx *visitor.StatementLetContext) error {
	for _, id := range ctx.StatementLet.Pattern.FoldIdents() {
		d.declare(id.Name, ctx.StatementLet.Span)
	}
	return nil
}

func (d *DiscardedAssignment) markUsed(name string) {
	for i := len(d.frames) - 1; i >= 0; i-- {
		for j := len(d.frames[i].vars) - 1; j >= 0; j-- {
			if d.frames[i].vars[j].name == name {
				d.frames[i].vars[j].used = true
				return
			}
		}
	}
}

func (d *DiscardedAssignment) VisitExpr(ctx *visitor.ExprContext) error {
	if p, ok := ctx.Expr.(*swayast.PathExpr); ok && len(p.Segments) == 1 {
		d.markUsed(p.Full())
	}
	return nil
}

func (d *DiscardedAssignment) LeaveExpr(ctx *visitor.ExprContext) error {
	re, ok := ctx.Expr.(*swayast.ReassignmentExpr)
	if !ok || re.Assignable.Kind != swayast.AssignableVar {
		return nil
	}
	name := re.Assignable.Name.Name
	if len(d.frames) == 0 {
		return nil
	}
	frame := d.top()
	for i := len(frame.vars) - 1; i >= 0; i-- {
		if frame.vars[i].name != name {
			continue
		}
		rec := frame.vars[i]
		if !rec.used && !rec.reported && !strings.HasPrefix(name, "_") {
			rec.reported = true
			if err := reportSpan(d.r, ctx.Path, rec.span, report.Medium,
				fmt.Sprintf("discarded assignment: %q is overwritten before being read", name)); err != nil {
				return err
			}
		}
		break
	}
	d.declare(name, re.Span())
	return nil
}
