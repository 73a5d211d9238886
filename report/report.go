// Package report owns the ordered collection of findings produced by a
// detector run: one sink shared (append-only) across every detector and
// file, sorted and rendered on demand.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/minio/highwayhash"
)

// Severity is the coarse impact classification a detector attaches to a
// finding.
type Severity int

const (
	Low Severity = iota
	Medium
	High
)

func (s Severity) String() string {
	switch s {
	case Low:
		return "Low"
	case Medium:
		return "Medium"
	case High:
		return "High"
	default:
		return "Unknown"
	}
}

// Entry is one finding within a file: an optional line (None sorts before
// any Some), the detector-assigned severity, and a rendered message.
// Severity is kept in its own field, used by severity-first sorting, and
// is not rendered; Text starts with the detector's name, and each
// detector reports at one fixed severity.
type Entry struct {
	Line     *int
	Severity Severity
	Text     string
}

// hashKey is the fixed 256-bit key for the 64-bit fingerprint used only
// to deduplicate entries; neither is part of any externally visible
// output.
var hashKey = [32]byte{}

func fingerprint(path string, e Entry) uint64 {
	line := -1
	if e.Line != nil {
		line = *e.Line
	}
	buf := []byte(fmt.Sprintf("%s\x00%d\x00%s", path, line, e.Text))
	h, err := highwayhash.New64(hashKey[:])
	if err != nil {
		// highwayhash.New64 only errors on a wrong-length key, which
		// hashKey can never produce; treat as unreachable.
		panic(err)
	}
	_, _ = h.Write(buf)
	return h.Sum64()
}

// fileEntries is one file's ordered, deduplicated findings.
type fileEntries struct {
	path    string
	entries []Entry
	seen    map[uint64]struct{}
}

// Sink is the single append-only collection of findings for an entire
// analysis run. It must be treated as write-once-per-entry: detectors
// append via Add and never rewrite or read back an existing entry mid-walk.
type Sink struct {
	byPath map[string]*fileEntries
	order  []string
	mode   SortMode
}

// SortMode selects the report-sort mode recognized by the `sorting`
// configuration option (§6). LineFirst (the default, and the one the
// universal sort invariant in §8 is stated against) orders by ascending
// line with `None` first; SeverityFirst groups High before Medium before
// Low within a file, breaking ties by line.
type SortMode int

const (
	SortLineFirst SortMode = iota
	SortSeverityFirst
)

// ParseSortMode parses the CLI/config string form of a sort mode.
func ParseSortMode(s string) (SortMode, error) {
	switch strings.ToLower(s) {
	case "", "line":
		return SortLineFirst, nil
	case "severity":
		return SortSeverityFirst, nil
	default:
		return 0, fmt.Errorf("invalid sorting mode: %q", s)
	}
}

// NewSink creates an empty report sink using the default line-first sort.
func NewSink() *Sink {
	return &Sink{byPath: make(map[string]*fileEntries)}
}

// NewSinkWithSort creates an empty report sink using the given sort mode.
func NewSinkWithSort(mode SortMode) *Sink {
	return &Sink{byPath: make(map[string]*fileEntries), mode: mode}
}

// Add appends one finding to the sink, creating the file's bucket on
// first use and keeping both the file list and the file's own entries
// sorted after every insertion. An entry identical to one already
// recorded for the same file (same line, same text) is silently dropped.
func (s *Sink) Add(path string, line *int, severity Severity, text string) {
	fe, ok := s.byPath[path]
	if !ok {
		fe = &fileEntries{path: path, seen: make(map[uint64]struct{})}
		s.byPath[path] = fe
		s.order = append(s.order, path)
		sort.Strings(s.order)
	}

	entry := Entry{Line: line, Severity: severity, Text: text}
	key := fingerprint(path, entry)
	if _, dup := fe.seen[key]; dup {
		return
	}
	fe.seen[key] = struct{}{}

	fe.entries = append(fe.entries, entry)
	sort.SliceStable(fe.entries, func(i, j int) bool {
		return s.less(fe.entries[i], fe.entries[j])
	})
}

func (s *Sink) less(a, b Entry) bool {
	if s.mode == SortSeverityFirst && a.Severity != b.Severity {
		return a.Severity > b.Severity
	}
	return lineLess(a.Line, b.Line)
}

// lineLess orders nil (no line) before any concrete line, and otherwise
// ascending by line number.
func lineLess(a, b *int) bool {
	if a == nil {
		return b != nil
	}
	if b == nil {
		return false
	}
	return *a < *b
}

// Files returns the sorted list of file paths that have at least one
// finding.
func (s *Sink) Files() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Entries returns the sorted entries recorded for path, or nil.
func (s *Sink) Entries(path string) []Entry {
	fe, ok := s.byPath[path]
	if !ok {
		return nil
	}
	return fe.entries
}

// Len returns the total number of recorded findings across all files.
func (s *Sink) Len() int {
	n := 0
	for _, fe := range s.byPath {
		n += len(fe.entries)
	}
	return n
}
