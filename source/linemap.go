// Package source turns byte offsets into 1-based source line numbers.
package source

import (
	"bytes"
	"fmt"
	"sort"
)

// LineRange is the half-open byte range [Start, End) of one source line,
// Start pointing at the first byte of the line and End pointing one past
// its terminating newline (or end of file for the last line).
type LineRange struct {
	Start int
	End   int
}

// Map is the sorted per-file line-range table used to resolve an AST
// span's starting offset to a 1-based line number.
type Map struct {
	ranges []LineRange
}

// Build scans src once and records the byte range of every line.
func Build(src []byte) *Map {
	m := &Map{}
	start := 0
	for {
		idx := bytes.IndexByte(src[start:], '\n')
		if idx < 0 {
			m.ranges = append(m.ranges, LineRange{Start: start, End: len(src)})
			break
		}
		end := start + idx + 1
		m.ranges = append(m.ranges, LineRange{Start: start, End: end})
		start = end
	}
	if len(m.ranges) == 0 {
		m.ranges = []LineRange{{Start: 0, End: 0}}
	}
	return m
}

// ErrOffsetOutOfRange reports an offset that falls outside every known
// line range, signalling span/source-text corruption.
type ErrOffsetOutOfRange struct {
	Offset int
}

func (e *ErrOffsetOutOfRange) Error() string {
	return fmt.Sprintf("offset %d is outside any known line range", e.Offset)
}

// Line resolves a byte offset to its 1-based line number. It is monotone:
// for o1 < o2 that both resolve, Line(o1) <= Line(o2).
func (m *Map) Line(offset int) (int, error) {
	i := sort.Search(len(m.ranges), func(i int) bool {
		return m.ranges[i].End > offset
	})
	if i >= len(m.ranges) || offset < m.ranges[i].Start {
		return 0, &ErrOffsetOutOfRange{Offset: offset}
	}
	return i + 1, nil
}
