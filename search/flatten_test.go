package search

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/poiesic/mindgrep/core"
)

func tree() *core.Node {
	return &core.Node{
		Text: "root",
		Children: []*core.Node{
			{
				Text: "left",
				Children: []*core.Node{
					{Text: "left leaf"},
				},
			},
			{Text: ""},
			{Text: "right"},
		},
	}
}

func TestFlatten(t *testing.T) {
	t.Run("leaf flattens to its own text", func(t *testing.T) {
		assert.Equal(t, "just me", Flatten(&core.Node{Text: "just me"}))
	})

	t.Run("joins subtree depth-first with newlines", func(t *testing.T) {
		assert.Equal(t, "root\nleft\nleft leaf\n\nright", Flatten(tree()))
	})

	t.Run("starts with the node's own text", func(t *testing.T) {
		n := tree()
		assert.True(t, strings.HasPrefix(Flatten(n), n.Text))
	})

	t.Run("contains every descendant's flattened text", func(t *testing.T) {
		n := tree()
		flat := Flatten(n)
		var visit func(*core.Node)
		visit = func(c *core.Node) {
			assert.Contains(t, flat, Flatten(c))
			for _, cc := range c.Children {
				visit(cc)
			}
		}
		visit(n)
	})

	t.Run("empty texts are preserved as segments", func(t *testing.T) {
		n := &core.Node{Text: "", Children: []*core.Node{{Text: ""}, {Text: "x"}}}
		assert.Equal(t, "\n\nx", Flatten(n))
	})
}

func TestEscapeNewlines(t *testing.T) {
	assert.Equal(t, `line1\nline2`, EscapeNewlines("line1\nline2"))
	assert.Equal(t, `a\nb`, EscapeNewlines("a\r\nb"))
	assert.Equal(t, `a\nb`, EscapeNewlines("a\rb"))
	assert.Equal(t, "no breaks", EscapeNewlines("no breaks"))
}
