package images

import "fmt"

// Elementwise arithmetic over whole scalar images. The guided filter is
// written entirely in terms of these, so every "matrix entry" of its
// local covariance model is itself a full Gray rather than a per-pixel
// 3x3 matrix type.
//
// Binary ops require operands of identical dimensions and panic
// otherwise: inside the filter algebra a mismatch is a programmer error,
// not a runtime condition.

func checkSizes[T any](a, b *Image[T]) {
	if !SameSize(a, b) {
		panic(fmt.Sprintf("images: binary op on %dx%d and %dx%d images",
			a.width, a.height, b.width, b.height))
	}
}

// zip applies op pairwise over two same-sized images into a new image.
func zip[T any](a, b *Image[T], op func(T, T) T) *Image[T] {
	checkSizes(a, b)
	out := New[T](a.width, a.height)
	for i := range a.pix {
		out.pix[i] = op(a.pix[i], b.pix[i])
	}
	return out
}

// apply maps op over every pixel of a into a new image.
func apply[T any](a *Image[T], op func(T) T) *Image[T] {
	out := New[T](a.width, a.height)
	for i := range a.pix {
		out.pix[i] = op(a.pix[i])
	}
	return out
}

// Add returns a + b elementwise.
func Add(a, b *Gray) *Gray {
	return zip(a, b, func(x, y float32) float32 { return x + y })
}

// Sub returns a - b elementwise.
func Sub(a, b *Gray) *Gray {
	return zip(a, b, func(x, y float32) float32 { return x - y })
}

// Mul returns a * b elementwise.
func Mul(a, b *Gray) *Gray {
	return zip(a, b, func(x, y float32) float32 { return x * y })
}

// Div returns a / b elementwise. Division by zero propagates as
// non-finite values, matching float semantics everywhere else here.
func Div(a, b *Gray) *Gray {
	return zip(a, b, func(x, y float32) float32 { return x / y })
}

// AddScalar returns a + v elementwise.
func AddScalar(a *Gray, v float32) *Gray {
	return apply(a, func(x float32) float32 { return x + v })
}

// SubScalar returns a - v elementwise.
func SubScalar(a *Gray, v float32) *Gray {
	return apply(a, func(x float32) float32 { return x - v })
}

// MulScalar returns a * v elementwise.
func MulScalar(a *Gray, v float32) *Gray {
	return apply(a, func(x float32) float32 { return x * v })
}

// DivScalar returns a / v elementwise.
func DivScalar(a *Gray, v float32) *Gray {
	return apply(a, func(x float32) float32 { return x / v })
}
