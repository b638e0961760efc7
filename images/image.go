package images

import "fmt"

// Image is a row-major 2D pixel buffer. It owns its backing slice; no
// two images ever alias the same storage.
type Image[T any] struct {
	width, height int
	pix           []T
}

// Gray is a single-channel float image, used for depth maps and the
// per-channel intermediates of the guided filter.
type Gray = Image[float32]

// RGB is a three-channel color image.
type RGB = Image[Pixel]

// New creates a zero-filled image of the given dimensions.
func New[T any](width, height int) *Image[T] {
	return &Image[T]{
		width:  width,
		height: height,
		pix:    make([]T, width*height),
	}
}

// NewGray creates a zero-filled single-channel image.
func NewGray(width, height int) *Gray { return New[float32](width, height) }

// NewRGB creates a zero-filled color image.
func NewRGB(width, height int) *RGB { return New[Pixel](width, height) }

// FromPix wraps an existing row-major buffer. The image takes ownership
// of pix; len(pix) must be width*height.
func FromPix[T any](width, height int, pix []T) *Image[T] {
	if len(pix) != width*height {
		panic(fmt.Sprintf("images: buffer of %d pixels for %dx%d image", len(pix), width, height))
	}
	return &Image[T]{width: width, height: height, pix: pix}
}

// Width returns the image width in pixels.
func (m *Image[T]) Width() int { return m.width }

// Height returns the image height in pixels.
func (m *Image[T]) Height() int { return m.height }

// Pix returns the backing row-major pixel slice.
func (m *Image[T]) Pix() []T { return m.pix }

// At returns the pixel at c, with c clamped to the image bounds.
func (m *Image[T]) At(c Coord) T {
	return m.pix[m.index(c)]
}

// Set stores v at c, with c clamped to the image bounds.
func (m *Image[T]) Set(c Coord, v T) {
	m.pix[m.index(c)] = v
}

// AtUnsafe returns the pixel at c. The caller must keep c in bounds.
func (m *Image[T]) AtUnsafe(c Coord) T {
	return m.pix[c.Y*m.width+c.X]
}

// SetUnsafe stores v at c. The caller must keep c in bounds.
func (m *Image[T]) SetUnsafe(c Coord, v T) {
	m.pix[c.Y*m.width+c.X] = v
}

// Clone returns a deep copy of the image.
func (m *Image[T]) Clone() *Image[T] {
	out := New[T](m.width, m.height)
	copy(out.pix, m.pix)
	return out
}

// Bounds returns a view covering the whole image.
func (m *Image[T]) Bounds() View {
	return View{Width: m.width, Height: m.height}
}

// SubView returns a view of the requested window clamped to the image.
func (m *Image[T]) SubView(offset Coord, width, height int) View {
	return clampView(offset, width, height, m.width, m.height)
}

// Window returns a width x height view centered on c, clamped to the
// image. Used by the minimum filter in the depth estimator.
func (m *Image[T]) Window(c Coord, width, height int) View {
	return m.SubView(c.Sub(Coord{width / 2, height / 2}), width, height)
}

// SameSize reports whether two images have identical dimensions.
func SameSize[A, B any](a *Image[A], b *Image[B]) bool {
	return a.width == b.width && a.height == b.height
}

func (m *Image[T]) index(c Coord) int {
	x := min(max(c.X, 0), m.width-1)
	y := min(max(c.Y, 0), m.height-1)
	return y*m.width + x
}
