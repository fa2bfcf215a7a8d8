package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	t.Run("one record per match", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteJSON(&buf, sampleMatches()))

		lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
		require.Len(t, lines, 3)

		var rec Record
		require.NoError(t, json.Unmarshal([]byte(lines[0]), &rec))
		assert.Equal(t, "maps/a.mm", rec.File)
		assert.Equal(t, "ID_1", rec.Label)
		assert.Equal(t, []string{"root", "child"}, rec.Path)
		assert.Equal(t, "root\nchild", rec.Text)
		require.Len(t, rec.Spans, 1)
		assert.Equal(t, SpanRecord{Start: 5, End: 10, Term: "child"}, rec.Spans[0])
	})

	t.Run("no matches writes nothing", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteJSON(&buf, nil))
		assert.Zero(t, buf.Len())
	})
}
