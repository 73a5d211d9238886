// Package detectors implements the catalog of detector state machines:
// the 17 representative contracts plus the supplemented catalog entries,
// each reacting to visitor hooks through the shared core (ast, resolve,
// exprutil) and reporting through a detect.Reporter.
package detectors

import (
	swayast "github.com/ourovoros-io/sway-analyzer-go/ast"
	"github.com/ourovoros-io/sway-analyzer-go/detect"
	"github.com/ourovoros-io/sway-analyzer-go/report"
	"github.com/ourovoros-io/sway-analyzer-go/resolve"
)

// reportSpan resolves span's start offset to a line in path and appends
// one finding to r. A line-resolution failure is never silently
// swallowed: it propagates up through the calling hook, aborting the
// walk, per the line-lookup-always-surfaced rule.
func reportSpan(r detect.Reporter, path string, span swayast.Span, severity report.Severity, text string) error {
	line, err := r.Line(path, span.Start)
	if err != nil {
		return err
	}
	return reportLine(r, path, line, severity, text)
}

func reportLine(r detect.Reporter, path string, line int, severity report.Severity, text string) error {
	l := line
	r.Report(path, &l, severity, text)
	return nil
}

// blockState holds a per-block loop-membership flag. No detector in this
// package uses it.
type blockState struct {
	isLoop bool
}

// fileImports resolves the local names under which each fully-qualified
// path in names is visible in mod, across every `use` item at module
// level. The result maps a recognized local alias back to the canonical
// path it resolves to, so recognition of "this call targets X" is a
// single map lookup regardless of how the caller imported X.
func fileImports(mod *swayast.Module, names ...string) map[string]string {
	out := make(map[string]string)
	var trees []swayast.UseTree
	for _, item := range mod.Items {
		if u, ok := item.(*swayast.ItemUse); ok {
			trees = append(trees, u.Tree)
		}
	}
	for _, full := range names {
		for _, t := range trees {
			if local, ok := resolve.LocalName(t, full); ok {
				out[local] = full
			}
		}
		// The bare path is always recognized even without an explicit
		// import (a fully-qualified call site).
		out[full] = full
	}
	return out
}
