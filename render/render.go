// Package render turns classified lines back into a renumbered list.
package render

import (
	"errors"
	"strconv"
	"strings"

	"github.com/tsawler/renumber/sequence"
)

// ErrAnalysisFailed is returned when there is nothing left to render,
// usually because the input followed an uncommon pattern.
var ErrAnalysisFailed = errors.New("analysis failed, the text might follow an uncommon pattern")

// Render writes leadingText on its own line, followed by every line of
// seq. Elements are numbered from 1; a verbatim line is written unchanged
// and restarts the numbering. A leading entry with empty content (the slot
// of extracted leading text) is skipped.
func Render(leadingText string, seq []sequence.Line) (string, error) {
	if len(seq) > 0 && seq[0].Content == "" {
		seq = seq[1:]
	}
	if len(seq) == 0 {
		return "", ErrAnalysisFailed
	}

	var sb strings.Builder
	if leadingText != "" {
		sb.WriteString(leadingText)
		sb.WriteByte('\n')
	}

	id := 0
	for i, line := range seq {
		if i > 0 {
			sb.WriteByte('\n')
		}
		if !line.IsElement {
			id = 0
			sb.WriteString(line.Content)
			continue
		}
		id++
		sb.WriteString(strconv.Itoa(id))
		sb.WriteString(". ")
		sb.WriteString(line.Content)
	}

	return sb.String(), nil
}

// Result renders an analyzer result.
func Result(r *sequence.Result) (string, error) {
	if r == nil {
		return "", ErrAnalysisFailed
	}
	return Render(r.LeadingText, r.Lines)
}
