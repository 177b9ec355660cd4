package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormImages(t *testing.T) {
	t.Run("bare string URLs", func(t *testing.T) {
		images := normImages([]any{"/img/a.jpg", "/img/b.jpg"})
		require.Len(t, images, 2)
		assert.Equal(t, "/img/a.jpg", images[0].Src)
		assert.Empty(t, images[0].Alt)
	})

	t.Run("objects with src, url and image keys", func(t *testing.T) {
		images := normImages([]any{
			map[string]any{"src": "/img/a.jpg", "alt": "a bass", "width": 800.0, "height": 600.0},
			map[string]any{"url": "/img/b.jpg"},
			map[string]any{"image": "/img/c.jpg"},
		})
		require.Len(t, images, 3)
		assert.Equal(t, "a bass", images[0].Alt)
		require.NotNil(t, images[0].Width)
		assert.Equal(t, 800.0, *images[0].Width)
		assert.Equal(t, "/img/b.jpg", images[1].Src)
		assert.Equal(t, "/img/c.jpg", images[2].Src)
	})

	t.Run("entries with no source are dropped", func(t *testing.T) {
		images := normImages([]any{
			map[string]any{"alt": "no source"},
			"",
			nil,
			42.0,
			"/img/keep.jpg",
		})
		require.Len(t, images, 1)
		assert.Equal(t, "/img/keep.jpg", images[0].Src)
	})

	t.Run("non-array input", func(t *testing.T) {
		assert.Empty(t, normImages("not-a-list"))
		assert.Empty(t, normImages(nil))
	})
}

func TestNormTags(t *testing.T) {
	tags := normTags([]any{"bass", "", 7.0, "pond"})
	assert.Equal(t, []string{"bass", "pond"}, tags)

	assert.NotNil(t, normTags(nil), "empty tags must encode as [], not null")
}

func TestAsNumber(t *testing.T) {
	n, ok := asNumber(3.5)
	require.True(t, ok)
	assert.Equal(t, 3.5, n)

	_, ok = asNumber("3.5")
	assert.False(t, ok)

	_, ok = asNumber(nil)
	assert.False(t, ok)
}
