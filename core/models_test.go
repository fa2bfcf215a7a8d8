package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIDFromContent(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		a := IDFromContent("lantern")
		b := IDFromContent("lantern")
		assert.Equal(t, a, b)
	})

	t.Run("different content yields different ids", func(t *testing.T) {
		a := IDFromContent("lantern")
		b := IDFromContent("lanterns")
		assert.NotEqual(t, a, b)
	})

	t.Run("empty content is valid", func(t *testing.T) {
		a := IDFromContent("")
		b := IDFromContent("")
		assert.Equal(t, a, b)
	})
}
