package images

import (
	"fmt"
	"iter"
)

// Coord is an integer pixel coordinate.
type Coord struct {
	X, Y int
}

// Add returns the componentwise sum of two coordinates.
func (c Coord) Add(o Coord) Coord { return Coord{c.X + o.X, c.Y + o.Y} }

// Sub returns the componentwise difference of two coordinates.
func (c Coord) Sub(o Coord) Coord { return Coord{c.X - o.X, c.Y - o.Y} }

func (c Coord) String() string { return fmt.Sprintf("(%d, %d)", c.X, c.Y) }

// View is a rectangular window over an image, defined by an offset plus
// width and height. Views produced by Image methods are always clamped
// to the image bounds, so every coordinate they yield is addressable.
type View struct {
	Offset        Coord
	Width, Height int
}

// clampView bounds a requested window to [0,w) x [0,h).
func clampView(offset Coord, width, height, w, h int) View {
	if offset.X < 0 {
		width += offset.X
		offset.X = 0
	}
	if offset.Y < 0 {
		height += offset.Y
		offset.Y = 0
	}
	width = max(min(width, w-offset.X), 0)
	height = max(min(height, h-offset.Y), 0)
	return View{Offset: offset, Width: width, Height: height}
}

// Empty reports whether the view contains no coordinates.
func (v View) Empty() bool { return v.Width <= 0 || v.Height <= 0 }

// Coords yields every coordinate in the view in row-major order.
func (v View) Coords() iter.Seq[Coord] {
	return func(yield func(Coord) bool) {
		for y := 0; y < v.Height; y++ {
			for x := 0; x < v.Width; x++ {
				if !yield(Coord{v.Offset.X + x, v.Offset.Y + y}) {
					return
				}
			}
		}
	}
}
