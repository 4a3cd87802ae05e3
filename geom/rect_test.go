package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverlaps(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}

	assert.True(t, Overlaps(a, Rect{X: 5, Y: 5, W: 10, H: 10}))
	assert.True(t, Overlaps(a, Rect{X: 2, Y: 2, W: 2, H: 2}), "contained box overlaps")

	// Half-open: touching edges are not an overlap.
	assert.False(t, Overlaps(a, Rect{X: 10, Y: 0, W: 5, H: 5}))
	assert.False(t, Overlaps(a, Rect{X: 0, Y: 10, W: 5, H: 5}))
	assert.False(t, Overlaps(a, Rect{X: -5, Y: 0, W: 5, H: 5}))
	assert.False(t, Overlaps(a, Rect{X: 20, Y: 20, W: 5, H: 5}))
}

func TestOverlapsIsSymmetric(t *testing.T) {
	a := Rect{X: 3, Y: 4, W: 7, H: 2}
	b := Rect{X: 9, Y: 5, W: 4, H: 4}
	assert.Equal(t, Overlaps(a, b), Overlaps(b, a))
}

func TestLandsOn(t *testing.T) {
	platform := Rect{X: 100, Y: 500, W: 200, H: 20}

	t.Run("falling onto top", func(t *testing.T) {
		box := Rect{X: 150, Y: 300, W: 50, H: 195}
		assert.True(t, LandsOn(box, 6, platform))
	})

	t.Run("resting exactly on top", func(t *testing.T) {
		box := Rect{X: 150, Y: 300, W: 50, H: 200}
		assert.True(t, LandsOn(box, 0, platform))
	})

	t.Run("within epsilon below top", func(t *testing.T) {
		box := Rect{X: 150, Y: 309, W: 50, H: 200}
		assert.True(t, LandsOn(box, 1, platform))
	})

	t.Run("too deep below top", func(t *testing.T) {
		box := Rect{X: 150, Y: 311, W: 50, H: 200}
		assert.False(t, LandsOn(box, 1, platform))
	})

	t.Run("not reaching top", func(t *testing.T) {
		box := Rect{X: 150, Y: 200, W: 50, H: 200}
		assert.False(t, LandsOn(box, 5, platform))
	})

	t.Run("moving upward", func(t *testing.T) {
		box := Rect{X: 150, Y: 305, W: 50, H: 200}
		assert.False(t, LandsOn(box, -19, platform))
	})

	t.Run("beside the platform", func(t *testing.T) {
		box := Rect{X: 300, Y: 300, W: 50, H: 200}
		assert.False(t, LandsOn(box, 5, platform))
		box.X = 50
		assert.False(t, LandsOn(box, 5, platform))
	})
}
