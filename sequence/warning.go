package sequence

import "fmt"

// WarningKind identifies a non-fatal classification problem.
type WarningKind int

const (
	// WarnPrefixMismatch means the text before the splitter does not look
	// like a number. The line is still treated as an element.
	WarnPrefixMismatch WarningKind = iota
	// WarnUnparsedLine means the line could not be split and is kept
	// verbatim.
	WarnUnparsedLine
	// WarnFirstLineUnparsable means the first line sits within the cluster
	// but could not be split, so it was taken as leading text.
	WarnFirstLineUnparsable
)

// String returns a string representation of the warning kind
func (k WarningKind) String() string {
	switch k {
	case WarnPrefixMismatch:
		return "prefix-mismatch"
	case WarnUnparsedLine:
		return "unparsed-line"
	case WarnFirstLineUnparsable:
		return "first-line-unparsable"
	default:
		return "unknown"
	}
}

// Warning describes a recoverable problem with one input line.
type Warning struct {
	// Line is the 0-based index of the input line
	Line int
	Kind WarningKind
	// Text is the offending input line
	Text string
}

// Error implements the error interface so a Warning can be logged or
// wrapped like any other diagnostic.
func (w Warning) Error() string {
	return fmt.Sprintf("line %d: %s: %q", w.Line, w.Kind, w.Text)
}

func newWarning(line int, kind WarningKind, text string) Warning {
	return Warning{Line: line, Kind: kind, Text: text}
}
