package htmldoc

import (
	"regexp"

	"golang.org/x/net/html"
)

// NavigationExclusionMode controls how navigation, headers and footers are
// filtered out of a pasted page.
type NavigationExclusionMode int

const (
	// NavigationExclusionStandard (default) skips explicit semantic
	// elements and elements whose class or id looks like navigation.
	NavigationExclusionStandard NavigationExclusionMode = iota

	// NavigationExclusionExplicit skips only <nav>, <aside>, ARIA
	// navigation roles, and top-level <header>/<footer>.
	NavigationExclusionExplicit

	// NavigationExclusionNone keeps everything.
	NavigationExclusionNone
)

// navigationPattern matches class/id values of common navigation and
// boilerplate containers.
var navigationPattern = regexp.MustCompile(
	`(?i)(^|[^a-z])(nav|navbar|navigation|menu|topnav|sidenav|breadcrumb|breadcrumbs|` +
		`site-header|page-header|masthead|banner|` +
		`footer|site-footer|page-footer|colophon|` +
		`sidebar|widget-area|widget|aside)([^a-z]|$)`)

// exclusionChecker decides which elements to skip.
type exclusionChecker struct {
	mode            NavigationExclusionMode
	bodyNode        *html.Node
	topLevelWrapper *html.Node
}

func newExclusionChecker(mode NavigationExclusionMode, doc *html.Node) *exclusionChecker {
	body := findElement(doc, "body")
	if body == nil {
		body = doc
	}
	return &exclusionChecker{
		mode:            mode,
		bodyNode:        body,
		topLevelWrapper: detectTopLevelWrapper(body),
	}
}

// detectTopLevelWrapper finds a single structural wrapper element if one exists.
// This handles the common pattern of <body><div id="wrapper">...</div></body>
func detectTopLevelWrapper(body *html.Node) *html.Node {
	var structuralChildren []*html.Node

	for c := body.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			switch c.Data {
			case "div", "main":
				structuralChildren = append(structuralChildren, c)
			case "script", "style", "noscript", "template":
			default:
				return nil
			}
		}
	}

	if len(structuralChildren) == 1 {
		return structuralChildren[0]
	}
	return nil
}

func (ec *exclusionChecker) shouldExclude(n *html.Node) bool {
	if n.Type != html.ElementNode || ec.mode == NavigationExclusionNone {
		return false
	}

	switch n.Data {
	case "nav", "aside":
		return true
	case "header", "footer":
		if ec.isTopLevel(n) {
			return true
		}
	}

	switch getAttr(n, "role") {
	case "navigation", "complementary":
		return true
	case "banner", "contentinfo":
		if ec.isTopLevel(n) {
			return true
		}
	}

	if ec.mode == NavigationExclusionStandard {
		if class := getAttr(n, "class"); class != "" && navigationPattern.MatchString(class) {
			return true
		}
		if id := getAttr(n, "id"); id != "" && navigationPattern.MatchString(id) {
			return true
		}
	}

	return false
}

// isTopLevel returns true if the node is a direct child of body or a single top-level wrapper.
func (ec *exclusionChecker) isTopLevel(n *html.Node) bool {
	parent := n.Parent
	if parent == nil {
		return false
	}
	return parent == ec.bodyNode || (ec.topLevelWrapper != nil && parent == ec.topLevelWrapper)
}

// getAttr returns the value of an attribute on a node, or empty string if not found.
func getAttr(n *html.Node, key string) string {
	for _, attr := range n.Attr {
		if attr.Key == key {
			return attr.Val
		}
	}
	return ""
}
