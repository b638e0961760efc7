package images

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageClampedAccess(t *testing.T) {
	img := NewGray(4, 3)
	img.SetUnsafe(Coord{0, 0}, 1)
	img.SetUnsafe(Coord{3, 2}, 2)

	assert.Equal(t, float32(1), img.At(Coord{-5, -5}), "reads clamp to the top-left corner")
	assert.Equal(t, float32(2), img.At(Coord{100, 100}), "reads clamp to the bottom-right corner")

	img.Set(Coord{-1, 0}, 9)
	assert.Equal(t, float32(9), img.AtUnsafe(Coord{0, 0}), "writes clamp too")
}

func TestImageCloneOwnsBuffer(t *testing.T) {
	img := NewGray(2, 2)
	img.SetUnsafe(Coord{1, 1}, 5)

	dup := img.Clone()
	dup.SetUnsafe(Coord{1, 1}, 7)

	assert.Equal(t, float32(5), img.AtUnsafe(Coord{1, 1}), "clone must not alias the source")
}

func TestFromPixRejectsWrongLength(t *testing.T) {
	assert.Panics(t, func() { FromPix(3, 3, make([]float32, 8)) })
}

func TestViewCoordsRowMajor(t *testing.T) {
	img := NewGray(5, 5)
	v := img.SubView(Coord{1, 2}, 2, 2)

	var got []Coord
	for c := range v.Coords() {
		got = append(got, c)
	}
	want := []Coord{{1, 2}, {2, 2}, {1, 3}, {2, 3}}
	require.Equal(t, want, got)
}

func TestSubViewClamped(t *testing.T) {
	img := NewGray(6, 4)

	v := img.SubView(Coord{4, 2}, 10, 10)
	assert.Equal(t, 2, v.Width, "view is cut at the right edge")
	assert.Equal(t, 2, v.Height, "view is cut at the bottom edge")

	v = img.SubView(Coord{-2, -1}, 4, 3)
	assert.Equal(t, Coord{0, 0}, v.Offset)
	assert.Equal(t, 2, v.Width)
	assert.Equal(t, 2, v.Height)

	assert.True(t, img.SubView(Coord{10, 10}, 3, 3).Empty())
}

func TestWindowCentered(t *testing.T) {
	img := NewGray(9, 9)

	v := img.Window(Coord{4, 4}, 3, 3)
	assert.Equal(t, Coord{3, 3}, v.Offset)
	assert.Equal(t, 3, v.Width)
	assert.Equal(t, 3, v.Height)

	// Near a corner the window shrinks instead of reading out of bounds.
	v = img.Window(Coord{0, 0}, 5, 5)
	assert.Equal(t, Coord{0, 0}, v.Offset)
	assert.Equal(t, 3, v.Width)
	assert.Equal(t, 3, v.Height)
}
