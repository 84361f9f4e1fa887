package sequence

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"unicode/utf8"
)

// MinLines is the smallest number of lines Analyze accepts. Fewer lines do
// not give enough data for the statistics.
const MinLines = 4

// OutlierFactor is how many spreads away from the cluster's mean point the
// first line must lie to be treated as leading text.
const OutlierFactor = 6.0

// symbols are the structural punctuation marks counted per line.
const symbols = ".。,，!！…（）~“”：；、《》*&"

var (
	// ErrTooFewLines is returned when the input has fewer than MinLines lines.
	ErrTooFewLines = errors.New("too few lines to analyze")

	// ErrUnrecognizedPattern is returned when the last line has no splitter.
	ErrUnrecognizedPattern = errors.New("last line does not match the element pattern")
)

// Line is one classified input line.
//
// IsElement is true when the line was split into a prefix and a body, and
// Content holds the trimmed body. When IsElement is false, Content holds
// the original line, kept verbatim, unless the line was taken as leading
// text, in which case Content is empty.
type Line struct {
	IsElement bool
	Content   string
}

// IsLeading reports whether the line marks extracted leading text.
func (l Line) IsLeading() bool {
	return !l.IsElement && l.Content == ""
}

// LeadingReason records why the first line was or was not taken as
// leading text.
type LeadingReason int

const (
	// LeadingNone means the first line is a list element.
	LeadingNone LeadingReason = iota
	// LeadingOutlier means the first line lies too far from the cluster.
	LeadingOutlier
	// LeadingUnparsable means the first line lies within the cluster but
	// could not be split into a prefix and a body.
	LeadingUnparsable
)

// String returns a string representation of the reason
func (r LeadingReason) String() string {
	switch r {
	case LeadingOutlier:
		return "outlier"
	case LeadingUnparsable:
		return "unparsable"
	default:
		return "none"
	}
}

// Stats holds the intermediate values of the outlier test.
type Stats struct {
	// AverageLen and AverageSymbols are the mean point of lines 1..n-1
	AverageLen     float64
	AverageSymbols float64

	// Spread is the root of the summed squared deviations of each line's
	// distance from the mean distance. It is not divided by the number of
	// lines.
	Spread float64

	// FirstLineDist is the first line's distance from the mean point
	FirstLineDist float64
}

// Threshold returns the distance at or beyond which the first line is
// leading text.
func (s Stats) Threshold() float64 {
	return OutlierFactor * s.Spread
}

// Result is the output of Analyze.
type Result struct {
	// LeadingText is the first input line when it was classified as
	// introductory prose, or empty.
	LeadingText string

	// Lines has one entry per input line, in input order.
	Lines []Line

	// Leading tells why LeadingText was (or was not) extracted.
	Leading LeadingReason

	Stats Stats
}

// Elements returns the contents of the lines classified as elements.
func (r *Result) Elements() []string {
	var out []string
	for _, l := range r.Lines {
		if l.IsElement {
			out = append(out, l.Content)
		}
	}
	return out
}

// Analyze classifies lines, which must be trimmed and non-empty.
//
// The last line is trusted to be a list element; if it has no splitter the
// input is rejected with ErrUnrecognizedPattern. Every other line except the
// first is split into prefix and body, or kept verbatim when that fails.
// The first line becomes leading text when its distance from the mean
// (length, symbol count) point of the other lines is at least
// OutlierFactor times their spread.
func Analyze(lines []string) (*Result, []Warning, error) {
	if len(lines) < MinLines {
		return nil, nil, fmt.Errorf("%w: got %d, need at least %d", ErrTooFewLines, len(lines), MinLines)
	}

	var warnings []Warning
	last := len(lines) - 1

	if !HasSplitter(lines[last]) {
		return &Result{}, nil, ErrUnrecognizedPattern
	}

	result := &Result{
		Lines: make([]Line, len(lines)),
	}

	rest := len(lines) - 1
	lengths := make([]float64, rest)
	symbolCounts := make([]float64, rest)
	var totalLen, totalSymbols float64

	for i := 1; i < len(lines); i++ {
		line := lines[i]

		lengths[i-1] = float64(utf8.RuneCountInString(line))
		symbolCounts[i-1] = float64(countSymbols(line))
		totalLen += lengths[i-1]
		totalSymbols += symbolCounts[i-1]

		classified, ok := classify(line)
		result.Lines[i] = classified
		if !ok {
			warnings = append(warnings, newWarning(i, WarnUnparsedLine, line))
			continue
		}
		if prefix, _, _ := Split(line); !IsNumericPrefix(prefix) {
			warnings = append(warnings, newWarning(i, WarnPrefixMismatch, line))
		}
	}

	stats := Stats{
		AverageLen:     totalLen / float64(rest),
		AverageSymbols: totalSymbols / float64(rest),
	}

	dists := make([]float64, rest)
	var totalDist float64
	for i := range dists {
		dists[i] = math.Hypot(lengths[i]-stats.AverageLen, symbolCounts[i]-stats.AverageSymbols)
		totalDist += dists[i]
	}
	avgDist := totalDist / float64(rest)

	var sumSq float64
	for _, d := range dists {
		sumSq += (d - avgDist) * (d - avgDist)
	}
	stats.Spread = math.Sqrt(sumSq)

	first := lines[0]
	stats.FirstLineDist = math.Hypot(
		stats.AverageLen-float64(utf8.RuneCountInString(first)),
		stats.AverageSymbols-float64(countSymbols(first)),
	)
	result.Stats = stats

	if stats.FirstLineDist >= stats.Threshold() {
		result.Lines[0] = Line{}
		result.LeadingText = first
		result.Leading = LeadingOutlier
		return result, warnings, nil
	}

	classified, ok := classify(first)
	if !ok {
		warnings = append(warnings, newWarning(0, WarnFirstLineUnparsable, first))
		result.Lines[0] = Line{}
		result.LeadingText = first
		result.Leading = LeadingUnparsable
		return result, warnings, nil
	}
	if prefix, _, _ := Split(first); !IsNumericPrefix(prefix) {
		warnings = append(warnings, newWarning(0, WarnPrefixMismatch, first))
	}
	result.Lines[0] = classified

	return result, warnings, nil
}

// countSymbols counts the runes of s that belong to the symbol set.
func countSymbols(s string) int {
	n := 0
	for _, r := range s {
		if strings.ContainsRune(symbols, r) {
			n++
		}
	}
	return n
}
