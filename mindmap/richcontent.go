package mindmap

import (
	"strings"

	"golang.org/x/net/html"
)

// richText extracts the visible text from a rich-content XHTML fragment.
// html.Parse tolerates fragments and malformed markup, so a damaged body
// degrades to whatever text can be recovered rather than failing the node.
func richText(fragment string) string {
	doc, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		return ""
	}

	var parts []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				parts = append(parts, t)
			}
		}
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style":
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return strings.Join(parts, " ")
}
