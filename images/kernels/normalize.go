package kernels

import (
	"github.com/chewxy/math32"

	"github.com/airlight/dehaze/images"
)

// Normalize rescales img in place so its lowest value becomes 0 and its
// highest becomes 1. A constant image divides by zero and goes
// non-finite, like any other degenerate float input in this package.
func Normalize(img *images.Gray) {
	lo := float32(math32.MaxFloat32)
	hi := float32(-math32.MaxFloat32)

	pix := img.Pix()
	for _, v := range pix {
		lo = math32.Min(lo, v)
		hi = math32.Max(hi, v)
	}
	for i, v := range pix {
		pix[i] = (v - lo) / (hi - lo)
	}
}
