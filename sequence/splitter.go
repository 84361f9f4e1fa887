package sequence

import (
	"regexp"
	"strings"

	"golang.org/x/text/width"
)

// whitespace is the whitespace class the heuristic was tuned with. It is
// wider than RE2's \s, which only covers ASCII.
const whitespace = `\t\n\v\f\r \x{00a0}\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}\x{feff}`

var (
	// splitterPattern separates a line's prefix from its body: an
	// ideographic full stop, a colon, a period or a whitespace character,
	// followed by any further whitespace.
	splitterPattern = regexp.MustCompile(`[。:.` + whitespace + `][` + whitespace + `]*`)

	// prefixPattern recognizes an optionally parenthesized run of digits.
	// It is unanchored and only used for diagnostics.
	prefixPattern = regexp.MustCompile(`[\(（]?(\d+)[）\)]?`)
)

// Split splits line at the first splitter into a prefix and a trimmed
// body. ok is false when the line has no splitter at all.
func Split(line string) (prefix, body string, ok bool) {
	loc := splitterPattern.FindStringIndex(line)
	if loc == nil {
		return "", "", false
	}
	return line[:loc[0]], strings.TrimSpace(line[loc[1]:]), true
}

// HasSplitter reports whether line contains a splitter anywhere.
func HasSplitter(line string) bool {
	return splitterPattern.MatchString(line)
}

// IsNumericPrefix reports whether s contains a (possibly parenthesized)
// number. Full-width digits and parentheses are folded to their ASCII
// forms first, so "３" and "（3）" match.
func IsNumericPrefix(s string) bool {
	return prefixPattern.MatchString(width.Fold.String(s))
}

// classify runs the splitter over a single list line.
func classify(line string) (Line, bool) {
	_, body, ok := Split(line)
	if !ok || body == "" {
		return Line{IsElement: false, Content: line}, false
	}
	return Line{IsElement: true, Content: body}, true
}
