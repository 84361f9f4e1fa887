// Package sequence classifies the lines of a pasted, numbered-list-like
// block of text.
//
// Every line is split into a numeric prefix and a body. The first line is
// the only one whose role is ambiguous: it may be the first list element
// or introductory prose. The [Analyze] function decides by treating the
// remaining lines as a cluster in (length, symbol count) space and testing
// whether the first line is an outlier.
//
// # Usage
//
//	result, warnings, err := sequence.Analyze(lines)
//	if err != nil {
//	    // too few lines, or the last line has no recognizable delimiter
//	}
//	fmt.Println(result.LeadingText)
//	for _, line := range result.Lines {
//	    fmt.Println(line.IsElement, line.Content)
//	}
//
// # Diagnostics
//
// The package performs no I/O. Non-fatal problems such as a prefix that
// does not look like a number are returned as [Warning] values for the
// caller to log.
package sequence
