package mindmap

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/poiesic/mindgrep/core"
)

// Rich content roles recognized inside a <node> element. NODE replaces the
// TEXT attribute for formatted nodes; NOTE and DETAILS carry extra text that
// is appended so it participates in flattening and search.
const (
	richTypeNode    = "NODE"
	richTypeNote    = "NOTE"
	richTypeDetails = "DETAILS"
)

type xmlMap struct {
	XMLName xml.Name  `xml:"map"`
	Nodes   []xmlNode `xml:"node"`
}

type xmlNode struct {
	ID       string    `xml:"ID,attr"`
	Text     string    `xml:"TEXT,attr"`
	Rich     []xmlRich `xml:"richcontent"`
	Children []xmlNode `xml:"node"`
}

type xmlRich struct {
	Type string `xml:"TYPE,attr"`
	Body string `xml:",innerxml"`
}

// Parse decodes a Freeplane map document and returns its top-level nodes in
// document order. Any decoding failure, including a root element that is not
// <map>, is reported as ErrParse.
func Parse(r io.Reader) ([]*core.Node, error) {
	var doc xmlMap
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}

	roots := make([]*core.Node, 0, len(doc.Nodes))
	for i := range doc.Nodes {
		roots = append(roots, buildNode(&doc.Nodes[i]))
	}
	return roots, nil
}

// ParseFile reads and decodes a single map file. Read failures are reported
// as ErrRead, decode failures as ErrParse.
func ParseFile(path string) ([]*core.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrRead, path, err)
	}
	defer f.Close()

	roots, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return roots, nil
}

func buildNode(xn *xmlNode) *core.Node {
	n := &core.Node{
		ID:   xn.ID,
		Text: nodeText(xn),
	}
	if len(xn.Children) > 0 {
		n.Children = make([]*core.Node, 0, len(xn.Children))
		for i := range xn.Children {
			n.Children = append(n.Children, buildNode(&xn.Children[i]))
		}
	}
	return n
}

// nodeText resolves a node's searchable text. The TEXT attribute wins when
// present; otherwise a NODE rich-content body stands in for it. NOTE and
// DETAILS bodies are appended on their own lines.
func nodeText(xn *xmlNode) string {
	text := xn.Text
	var extras []string
	for _, rc := range xn.Rich {
		switch strings.ToUpper(rc.Type) {
		case richTypeNode:
			if text == "" {
				text = richText(rc.Body)
			}
		case richTypeNote, richTypeDetails:
			if t := richText(rc.Body); t != "" {
				extras = append(extras, t)
			}
		}
	}
	for _, extra := range extras {
		if text == "" {
			text = extra
		} else {
			text += "\n" + extra
		}
	}
	return norm.NFC.String(text)
}
