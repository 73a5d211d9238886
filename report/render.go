package report

import (
	"encoding/json"
	"fmt"
	"strings"
)

// DisplayFormat selects how RenderText/Render output is produced.
type DisplayFormat int

const (
	Text DisplayFormat = iota
	JSON
)

// ParseDisplayFormat parses the CLI/config string form of a display
// format.
func ParseDisplayFormat(s string) (DisplayFormat, error) {
	switch strings.ToLower(s) {
	case "", "text":
		return Text, nil
	case "json":
		return JSON, nil
	default:
		return 0, &ErrInvalidDisplayFormat{Value: s}
	}
}

// ErrInvalidDisplayFormat reports an unsupported display-format string.
type ErrInvalidDisplayFormat struct{ Value string }

func (e *ErrInvalidDisplayFormat) Error() string {
	return fmt.Sprintf("invalid display format: %q", e.Value)
}

// RenderText renders the sink in the text form:
//
//	<path>:
//		L<line>: <message>
//		L<line>: <message>
//	<blank line between files>
func (s *Sink) RenderText() string {
	var b strings.Builder
	for i, path := range s.order {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "%s:\n", path)
		for _, e := range s.byPath[path].entries {
			if e.Line != nil {
				fmt.Fprintf(&b, "\tL%d: %s\n", *e.Line, e.Text)
			} else {
				fmt.Fprintf(&b, "\t%s\n", e.Text)
			}
		}
	}
	return b.String()
}

// jsonEntry mirrors one rendered Entry in the JSON report form.
type jsonEntry struct {
	Line *int   `json:"line,omitempty"`
	Text string `json:"text"`
}

// jsonReport mirrors the full report object: entries is an ordered array
// of (path, entries) pairs rather than a map, to preserve file ordering.
type jsonReport struct {
	Entries [][2]interface{} `json:"entries"`
}

// RenderJSON renders the sink as `{"entries": [[path, [{line, text}, ...]], ...]}`.
func (s *Sink) RenderJSON() ([]byte, error) {
	entries := make([][2]interface{}, 0, len(s.order))
	for _, path := range s.order {
		fe := s.byPath[path]
		jes := make([]jsonEntry, 0, len(fe.entries))
		for _, e := range fe.entries {
			jes = append(jes, jsonEntry{Line: e.Line, Text: e.Text})
		}
		entries = append(entries, [2]interface{}{path, jes})
	}
	return json.Marshal(jsonReport{Entries: entries})
}

// Render dispatches to RenderText or RenderJSON according to format.
func (s *Sink) Render(format DisplayFormat) (string, error) {
	switch format {
	case JSON:
		b, err := s.RenderJSON()
		if err != nil {
			return "", err
		}
		return string(b), nil
	default:
		return s.RenderText(), nil
	}
}
