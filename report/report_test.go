package report_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ourovoros-io/sway-analyzer-go/report"
)

func intp(i int) *int { return &i }

func TestSinkSortingAndDedup(t *testing.T) {
	s := report.NewSink()

	s.Add("b.sw", intp(5), report.Low, "second file")
	s.Add("a.sw", nil, report.High, "no line, sorts first within file")
	s.Add("a.sw", intp(3), report.Medium, "line three")
	s.Add("a.sw", intp(1), report.High, "line one")
	s.Add("a.sw", intp(1), report.High, "line one") // duplicate, dropped

	assert.Equal(t, []string{"a.sw", "b.sw"}, s.Files())

	entries := s.Entries("a.sw")
	assert.Len(t, entries, 3)
	assert.Nil(t, entries[0].Line)
	assert.Equal(t, 1, *entries[1].Line)
	assert.Equal(t, 3, *entries[2].Line)

	assert.Equal(t, 4, s.Len())
}

func TestRenderText(t *testing.T) {
	s := report.NewSink()
	s.Add("a.sw", intp(2), report.High, "finding A")
	s.Add("a.sw", nil, report.Low, "finding B")

	text := s.RenderText()
	assert.Equal(t, "a.sw:\n\tfinding B\n\tL2: finding A\n", text)
}

func TestRenderJSON(t *testing.T) {
	s := report.NewSink()
	s.Add("a.sw", intp(2), report.High, "finding A")

	out, err := s.RenderJSON()
	assert.NoError(t, err)
	assert.Contains(t, string(out), `"entries"`)
	assert.Contains(t, string(out), `"line":2`)
	assert.Contains(t, string(out), `"finding A"`)
}

func TestSinkSeverityFirstSort(t *testing.T) {
	s := report.NewSinkWithSort(report.SortSeverityFirst)
	s.Add("a.sw", intp(1), report.Low, "low at line 1")
	s.Add("a.sw", intp(5), report.High, "high at line 5")
	s.Add("a.sw", intp(2), report.Medium, "medium at line 2")

	entries := s.Entries("a.sw")
	require.Len(t, entries, 3)
	assert.Equal(t, report.High, entries[0].Severity)
	assert.Equal(t, report.Medium, entries[1].Severity)
	assert.Equal(t, report.Low, entries[2].Severity)
}

func TestParseSortMode(t *testing.T) {
	mode, err := report.ParseSortMode("severity")
	assert.NoError(t, err)
	assert.Equal(t, report.SortSeverityFirst, mode)

	mode, err = report.ParseSortMode("")
	assert.NoError(t, err)
	assert.Equal(t, report.SortLineFirst, mode)

	_, err = report.ParseSortMode("bogus")
	assert.Error(t, err)
}

func TestParseDisplayFormat(t *testing.T) {
	f, err := report.ParseDisplayFormat("json")
	assert.NoError(t, err)
	assert.Equal(t, report.JSON, f)

	_, err = report.ParseDisplayFormat("yaml")
	assert.Error(t, err)
}
