package mindmap

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleMap = `<map version="freeplane 1.9.13">
<node ID="ID_ROOT" TEXT="project">
  <node ID="ID_A" TEXT="backlog">
    <node TEXT="write pingback handler"/>
    <node TEXT=""/>
  </node>
  <node ID="ID_B" TEXT="done">
    <node TEXT="ship v1"/>
  </node>
</node>
</map>`

func TestParse(t *testing.T) {
	t.Run("builds the node tree in document order", func(t *testing.T) {
		roots, err := Parse(strings.NewReader(sampleMap))
		require.NoError(t, err)
		require.Len(t, roots, 1)

		root := roots[0]
		assert.Equal(t, "ID_ROOT", root.ID)
		assert.Equal(t, "project", root.Text)
		require.Len(t, root.Children, 2)
		assert.Equal(t, "backlog", root.Children[0].Text)
		assert.Equal(t, "done", root.Children[1].Text)
		require.Len(t, root.Children[0].Children, 2)
		assert.Equal(t, "write pingback handler", root.Children[0].Children[0].Text)
	})

	t.Run("empty text attribute is preserved", func(t *testing.T) {
		roots, err := Parse(strings.NewReader(sampleMap))
		require.NoError(t, err)
		assert.Equal(t, "", roots[0].Children[0].Children[1].Text)
	})

	t.Run("malformed xml is a parse error", func(t *testing.T) {
		_, err := Parse(strings.NewReader(`<map><node TEXT="a">`))
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrParse)
	})

	t.Run("non-map root is a parse error", func(t *testing.T) {
		_, err := Parse(strings.NewReader(`<html><body/></html>`))
		assert.ErrorIs(t, err, ErrParse)
	})

	t.Run("map with no nodes yields no roots", func(t *testing.T) {
		roots, err := Parse(strings.NewReader(`<map version="1.9"/>`))
		require.NoError(t, err)
		assert.Empty(t, roots)
	})
}

func TestParseRichContent(t *testing.T) {
	t.Run("rich NODE body replaces missing text attribute", func(t *testing.T) {
		doc := `<map><node><richcontent TYPE="NODE"><html><body><p>formatted <b>heading</b></p></body></html></richcontent></node></map>`
		roots, err := Parse(strings.NewReader(doc))
		require.NoError(t, err)
		require.Len(t, roots, 1)
		assert.Equal(t, "formatted heading", roots[0].Text)
	})

	t.Run("text attribute wins over rich NODE body", func(t *testing.T) {
		doc := `<map><node TEXT="plain"><richcontent TYPE="NODE"><html><body>rich</body></html></richcontent></node></map>`
		roots, err := Parse(strings.NewReader(doc))
		require.NoError(t, err)
		assert.Equal(t, "plain", roots[0].Text)
	})

	t.Run("notes are appended on their own line", func(t *testing.T) {
		doc := `<map><node TEXT="task"><richcontent TYPE="NOTE"><html><body><p>remember the deadline</p></body></html></richcontent></node></map>`
		roots, err := Parse(strings.NewReader(doc))
		require.NoError(t, err)
		assert.Equal(t, "task\nremember the deadline", roots[0].Text)
	})
}

func TestParseFile(t *testing.T) {
	t.Run("missing file is a read error", func(t *testing.T) {
		_, err := ParseFile("does/not/exist.mm")
		assert.ErrorIs(t, err, ErrRead)
	})
}

func TestRichText(t *testing.T) {
	t.Run("collapses markup to visible text", func(t *testing.T) {
		assert.Equal(t, "a b c", richText(`<html><body><p>a</p><p>b <i>c</i></p></body></html>`))
	})

	t.Run("skips script and style bodies", func(t *testing.T) {
		assert.Equal(t, "visible", richText(`<html><body><style>p{}</style><p>visible</p></body></html>`))
	})

	t.Run("empty fragment yields empty text", func(t *testing.T) {
		assert.Equal(t, "", richText(""))
	})
}
