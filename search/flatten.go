package search

import (
	"strings"

	"github.com/poiesic/mindgrep/core"
)

// NewlineEscape is the two-character sequence substituted for embedded line
// breaks when a spec asks for newline flattening.
const NewlineEscape = `\n`

var newlineReplacer = strings.NewReplacer("\r\n", NewlineEscape, "\n", NewlineEscape, "\r", NewlineEscape)

// Flatten produces the flattened text of a node: the node's own text joined
// with the flattened text of each child, in document order, by a single
// newline. A leaf flattens to just its text. Empty texts are kept as empty
// segments rather than skipped, so a phrase can span exactly across them
// and every child's flattened text stays a contiguous substring of its
// parent's.
func Flatten(n *core.Node) string {
	if len(n.Children) == 0 {
		return n.Text
	}

	parts := make([]string, 0, len(n.Children)+1)
	parts = append(parts, n.Text)
	for _, c := range n.Children {
		parts = append(parts, Flatten(c))
	}
	return strings.Join(parts, "\n")
}

// EscapeNewlines replaces every line break with the literal two-character
// sequence backslash-n. CRLF collapses to a single escape. Applied to both
// the flattened text and the match target when a spec sets FlattenNewlines,
// which lets a regex written with an escaped `\n` span original line
// breaks.
func EscapeNewlines(s string) string {
	return newlineReplacer.Replace(s)
}
