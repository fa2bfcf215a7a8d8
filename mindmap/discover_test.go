package mindmap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(`<map/>`), 0o644))
}

func TestDiscover(t *testing.T) {
	t.Run("filters by extension and sorts lexically", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "b.mm"))
		writeFile(t, filepath.Join(dir, "a.mm"))
		writeFile(t, filepath.Join(dir, "notes.txt"))
		writeFile(t, filepath.Join(dir, "sub", "c.mm"))

		paths, err := Discover(dir, []string{".mm"})
		require.NoError(t, err)
		assert.Equal(t, []string{
			filepath.Join(dir, "a.mm"),
			filepath.Join(dir, "b.mm"),
			filepath.Join(dir, "sub", "c.mm"),
		}, paths)
	})

	t.Run("multiple extensions", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "a.mm"))
		writeFile(t, filepath.Join(dir, "b.smmx"))

		paths, err := Discover(dir, []string{".mm", ".smmx"})
		require.NoError(t, err)
		assert.Len(t, paths, 2)
	})

	t.Run("file root yields itself", func(t *testing.T) {
		dir := t.TempDir()
		file := filepath.Join(dir, "single.mm")
		writeFile(t, file)

		paths, err := Discover(file, []string{".mm"})
		require.NoError(t, err)
		assert.Equal(t, []string{file}, paths)
	})

	t.Run("unknown root is an error", func(t *testing.T) {
		_, err := Discover("no/such/path", []string{".mm"})
		assert.ErrorIs(t, err, ErrUnknownPath)
	})
}

func TestSplitExtensions(t *testing.T) {
	assert.Equal(t, []string{".mm"}, SplitExtensions(".mm"))
	assert.Equal(t, []string{".mm", ".smmx"}, SplitExtensions(".mm, .smmx"))
	assert.Empty(t, SplitExtensions(""))
	assert.Equal(t, []string{".mm"}, SplitExtensions(",.mm,"))
}
