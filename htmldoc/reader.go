// Package htmldoc extracts list-like lines from HTML, such as a list
// copied out of a web page or a saved document.
package htmldoc

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// Options controls extraction.
type Options struct {
	Navigation NavigationExclusionMode
}

// Reader holds the lines extracted from an HTML document.
type Reader struct {
	lines []string
}

// Open opens and parses an HTML file.
func Open(filename string, opts Options) (*Reader, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return OpenReader(f, opts)
}

// OpenReader parses HTML from an io.Reader.
func OpenReader(r io.Reader, opts Options) (*Reader, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	body := findElement(doc, "body")
	if body == nil {
		body = doc
	}

	e := &extractor{nav: newExclusionChecker(opts.Navigation, doc)}
	e.walk(body)
	e.flush()

	return &Reader{lines: e.lines}, nil
}

// Lines returns the extracted lines in document order. Ordered list items
// are prefixed with their number, unordered ones with "-".
func (r *Reader) Lines() []string {
	return append([]string(nil), r.lines...)
}

// extractor walks the DOM, turning block elements into lines. Inline text
// between blocks is buffered and flushed at the next block boundary.
type extractor struct {
	lines  []string
	inline strings.Builder
	nav    *exclusionChecker
}

func (e *extractor) emit(s string) {
	for _, part := range strings.Split(s, "\n") {
		if part = strings.TrimSpace(part); part != "" {
			e.lines = append(e.lines, part)
		}
	}
}

func (e *extractor) flush() {
	if e.inline.Len() > 0 {
		e.emit(e.inline.String())
		e.inline.Reset()
	}
}

func (e *extractor) walk(n *html.Node) {
	switch n.Type {
	case html.TextNode:
		e.inline.WriteString(collapseSpace(n.Data))
		return
	case html.ElementNode:
		if shouldSkipElement(n.Data) || e.nav.shouldExclude(n) {
			return
		}

		switch n.Data {
		case "br":
			e.inline.WriteByte('\n')
			return

		case "h1", "h2", "h3", "h4", "h5", "h6", "p", "blockquote",
			"dt", "dd", "caption", "figcaption", "summary", "label":
			e.flush()
			e.emit(textContent(n, false))
			return

		case "pre":
			e.flush()
			e.emit(preText(n))
			return

		case "ol", "ul":
			e.flush()
			e.walkList(n)
			return

		case "tr":
			e.flush()
			e.emit(rowText(n))
			return

		case "div", "section", "article", "main", "header", "footer", "body",
			"table", "thead", "tbody", "tfoot", "dl", "figure", "details",
			"form", "fieldset", "li", "hr":
			e.flush()
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				e.walk(c)
			}
			e.flush()
			return
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		e.walk(c)
	}
}

// walkList emits one line per list item, numbering ordered lists from
// their start attribute.
func (e *extractor) walkList(list *html.Node) {
	ordered := list.Data == "ol"
	num := 1
	if ordered {
		if n, ok := intAttr(list, "start"); ok {
			num = n
		}
	}

	for c := list.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || shouldSkipElement(c.Data) || e.nav.shouldExclude(c) {
			continue
		}
		if c.Data == "ol" || c.Data == "ul" {
			e.walkList(c)
			continue
		}
		if c.Data != "li" {
			continue
		}

		if ordered {
			if n, ok := intAttr(c, "value"); ok {
				num = n
			}
		}

		text := strings.Join(strings.Fields(textContent(c, true)), " ")
		if text != "" {
			marker := "-"
			if ordered {
				marker = strconv.Itoa(num) + "."
			}
			e.lines = append(e.lines, marker+" "+text)
		}
		num++

		for cc := c.FirstChild; cc != nil; cc = cc.NextSibling {
			if cc.Type == html.ElementNode && (cc.Data == "ol" || cc.Data == "ul") {
				e.walkList(cc)
			}
		}
	}
}

var spaceRun = regexp.MustCompile(`[ \t\n\f\r]+`)

// collapseSpace collapses HTML whitespace the way a browser renders it.
func collapseSpace(s string) string {
	return spaceRun.ReplaceAllString(s, " ")
}

// textContent returns the rendered text of n. A <br> becomes a newline.
// With skipLists set, nested lists are left out.
func textContent(n *html.Node, skipLists bool) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			sb.WriteString(collapseSpace(n.Data))
			return
		case html.ElementNode:
			if shouldSkipElement(n.Data) {
				return
			}
			if skipLists && (n.Data == "ol" || n.Data == "ul") {
				return
			}
			if n.Data == "br" {
				sb.WriteByte('\n')
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if n.Type == html.ElementNode {
			switch n.Data {
			case "p", "div", "li", "td", "th":
				sb.WriteByte(' ')
			}
		}
	}
	walk(n)
	return strings.TrimSpace(sb.String())
}

// preText returns the raw text of a <pre> element, keeping its newlines.
func preText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		if n.Type == html.ElementNode && n.Data == "br" {
			sb.WriteByte('\n')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

// rowText joins the cells of a table row with single spaces.
func rowText(tr *html.Node) string {
	var cells []string
	for c := tr.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && (c.Data == "td" || c.Data == "th") {
			if text := strings.Join(strings.Fields(textContent(c, false)), " "); text != "" {
				cells = append(cells, text)
			}
		}
	}
	return strings.Join(cells, " ")
}

func intAttr(n *html.Node, key string) (int, bool) {
	v := getAttr(n, key)
	if v == "" {
		return 0, false
	}
	i, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, false
	}
	return i, true
}

// findElement finds the first element with the given tag name.
func findElement(n *html.Node, tagName string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tagName {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if result := findElement(c, tagName); result != nil {
			return result
		}
	}
	return nil
}

// shouldSkipElement returns true if the element should be skipped during content extraction.
func shouldSkipElement(tagName string) bool {
	switch tagName {
	case "script", "style", "noscript", "template", "svg", "math", "iframe", "object", "embed", "head":
		return true
	}
	return false
}
