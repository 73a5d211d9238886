// Package detect owns the analysis run: loading each file's line map,
// selecting and constructing the registered detectors, walking every
// module in deterministic path order, and collecting the findings they
// emit into the shared report sink.
package detect

import (
	"fmt"
	"sort"

	swayast "github.com/ourovoros-io/sway-analyzer-go/ast"
	"github.com/ourovoros-io/sway-analyzer-go/errs"
	"github.com/ourovoros-io/sway-analyzer-go/report"
	"github.com/ourovoros-io/sway-analyzer-go/source"
	"github.com/ourovoros-io/sway-analyzer-go/visitor"
)

// ParserFunc turns one file's raw source bytes into its parsed module.
// The lexer/parser of the Sway dialect is an external collaborator
// (spec.md §1); the core only ever consumes its output, so the CLI entry
// point is the only place that needs a concrete ParserFunc wired in.
type ParserFunc func(path string, src []byte) (*swayast.Module, error)

// Reporter is the surface a detector uses to turn a byte offset into a
// line number and append a finding to the run's shared sink. Detectors
// never touch the sink or line maps directly.
type Reporter interface {
	Line(path string, offset int) (int, error)
	Report(path string, line *int, severity report.Severity, text string)
}

// Detector is any object the host can register for a walk: the full
// visitor hook set plus the stable name under which it is selected.
type Detector interface {
	visitor.Hooks
	Name() string
}

// Factory builds one fresh Detector instance bound to r. The host calls
// a factory once per analysis run per selected name, so no state ever
// survives across runs.
type Factory func(r Reporter) Detector

// Host owns the project's per-file line maps and the report sink for one
// analysis run.
type Host struct {
	sink     *report.Sink
	lineMaps map[string]*source.Map
}

// NewHost creates an empty host ready to have files added to it, using
// the default line-first report sort.
func NewHost() *Host {
	return &Host{sink: report.NewSink(), lineMaps: make(map[string]*source.Map)}
}

// NewHostWithSort creates an empty host whose report sink uses mode,
// honoring the `sorting` configuration option (§6).
func NewHostWithSort(mode report.SortMode) *Host {
	return &Host{sink: report.NewSinkWithSort(mode), lineMaps: make(map[string]*source.Map)}
}

// AddFile registers path's source text so Line can resolve byte offsets
// within it. Every module passed to Run must have been added first.
func (h *Host) AddFile(path string, src []byte) {
	h.lineMaps[path] = source.Build(src)
}

// Line resolves a byte offset to a 1-based line number within path.
func (h *Host) Line(path string, offset int) (int, error) {
	m, ok := h.lineMaps[path]
	if !ok {
		return 0, &errs.FileNotFound{Path: path}
	}
	line, err := m.Line(offset)
	if err != nil {
		return 0, &errs.LineNotFound{Path: path, Offset: offset}
	}
	return line, nil
}

// Report appends one finding to the shared sink.
func (h *Host) Report(path string, line *int, severity report.Severity, text string) {
	h.sink.Add(path, line, severity, text)
}

// Sink returns the report sink findings accumulate into.
func (h *Host) Sink() *report.Sink { return h.sink }

// Select builds one fresh detector instance per requested name, in the
// order given, consulting catalog. An empty names selects every catalog
// entry, in stable (lexicographic) name order — this is also the
// registration order detector hooks observe a node in, per the walker's
// ordering guarantee.
func Select(names []string, catalog map[string]Factory, r Reporter) ([]Detector, error) {
	if len(names) == 0 {
		names = make([]string, 0, len(catalog))
		for name := range catalog {
			names = append(names, name)
		}
		sort.Strings(names)
	}

	out := make([]Detector, 0, len(names))
	for _, name := range names {
		factory, ok := catalog[name]
		if !ok {
			return nil, &errs.UnknownDetector{Name: name}
		}
		out = append(out, factory(r))
	}
	return out, nil
}

// Run walks every module in modules, in ascending path order, dispatching
// to one fresh instance of each name in names (resolved via catalog).
// The first hook error aborts the run and is returned wrapped with the
// file path being walked when it occurred.
func Run(h *Host, modules map[string]*swayast.Module, names []string, catalog map[string]Factory) error {
	detectors, err := Select(names, catalog, h)
	if err != nil {
		return err
	}

	hooks := make([]visitor.Hooks, len(detectors))
	for i, d := range detectors {
		hooks[i] = d
	}
	w := visitor.New(hooks...)

	paths := make([]string, 0, len(modules))
	for p := range modules {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	for _, path := range paths {
		if err := w.Walk(path, modules[path]); err != nil {
			return fmt.Errorf("analyzing %s: %w", path, err)
		}
	}
	return nil
}
