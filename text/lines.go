package text

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// lineBreak matches a newline or a run of four or more whitespace
// characters. Text copied out of PDFs and web pages often loses its
// newlines but keeps the indentation between items.
var lineBreak = regexp.MustCompile(`\n|[\t\n\v\f\r \x{00a0}\x{1680}\x{2000}-\x{200a}\x{2028}\x{2029}\x{202f}\x{205f}\x{3000}\x{feff}]{4,}`)

// Lines splits a pasted block into trimmed, non-empty lines normalized to
// NFC.
func Lines(block string) []string {
	parts := lineBreak.Split(block, -1)
	lines := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		lines = append(lines, norm.NFC.String(p))
	}
	return lines
}
