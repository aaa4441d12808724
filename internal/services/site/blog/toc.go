package blog

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// TOCEntry is one heading in an article's table of contents.
type TOCEntry struct {
	ID    string
	Text  string
	Level int
}

// Outline walks rendered article HTML and returns one entry per h2/h3 in
// document order, plus the HTML with anchor ids injected. Headings that
// already carry an id keep it; the rest get a slug generated from their text,
// with -2, -3 suffixes keeping duplicates unique. Running Outline twice over
// the same input yields identical ids.
func Outline(fragment string) ([]TOCEntry, string, error) {
	doc, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		return nil, "", fmt.Errorf("parse article html: %w", err)
	}

	body := findBody(doc)
	if body == nil {
		return nil, "", fmt.Errorf("parse article html: no body")
	}

	var entries []TOCEntry
	used := map[string]bool{}

	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			level := headingLevel(n)
			if level > 0 {
				text := collapseSpace(nodeText(n))
				id := headingID(n)
				if id == "" {
					id = assignID(n, Slugify(text), used)
				} else {
					used[id] = true
				}
				entries = append(entries, TOCEntry{ID: id, Text: text, Level: level})
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(body)

	var out strings.Builder
	for child := body.FirstChild; child != nil; child = child.NextSibling {
		if err := html.Render(&out, child); err != nil {
			return nil, "", fmt.Errorf("render article html: %w", err)
		}
	}

	return entries, out.String(), nil
}

func headingLevel(n *html.Node) int {
	switch n.DataAtom {
	case atom.H2:
		return 2
	case atom.H3:
		return 3
	default:
		return 0
	}
}

func headingID(n *html.Node) string {
	for _, attr := range n.Attr {
		if attr.Key == "id" {
			return strings.TrimSpace(attr.Val)
		}
	}
	return ""
}

func assignID(n *html.Node, base string, used map[string]bool) string {
	if base == "" {
		base = "section"
	}
	id := base
	for suffix := 2; used[id]; suffix++ {
		id = fmt.Sprintf("%s-%d", base, suffix)
	}
	used[id] = true
	n.Attr = append(n.Attr, html.Attribute{Key: "id", Val: id})
	return id
}

func nodeText(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var b strings.Builder
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		b.WriteString(nodeText(child))
	}
	return b.String()
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func findBody(doc *html.Node) *html.Node {
	var body *html.Node
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if body != nil {
			return
		}
		if n.Type == html.ElementNode && n.DataAtom == atom.Body {
			body = n
			return
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(doc)
	return body
}
