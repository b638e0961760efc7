// Package kernels implements the filtering primitives of the dehazing
// pipeline: a linear-time separable box filter and a guided filter
// driven by a 3x3 local color-covariance model of a guide image.
package kernels

import "github.com/airlight/dehaze/images"

// Box applies a mean filter over a centered (2r+1)x(2r+1) window.
// Windows are clamped at the image borders, so border pixels average
// over a smaller window rather than zero-padded neighbors.
//
// Each axis is a 1D sliding-window pass: O(1) work per pixel regardless
// of radius, horizontal pass first, then vertical on the intermediate.
// A radius of zero or less returns a copy.
func Box(src *images.Gray, r int) *images.Gray {
	if r <= 0 {
		return src.Clone()
	}

	w, h := src.Width(), src.Height()
	tmp := images.NewGray(w, h)
	out := images.NewGray(w, h)

	for y := 0; y < h; y++ {
		slideMean(src.Pix(), tmp.Pix(), y*w, 1, w, r)
	}
	for x := 0; x < w; x++ {
		slideMean(tmp.Pix(), out.Pix(), x, w, h, r)
	}
	return out
}

// slideMean writes the running mean of a line of n elements, addressed
// as src[base + i*stride], into the same positions of dst. The window
// weight grows and shrinks at the line ends, which is what produces the
// clamped-border averaging. Sums accumulate in float32, same as the
// pixel type.
func slideMean(src, dst []float32, base, stride, n, r int) {
	var sum, weight float32

	// Prime the leading half-window so position 0 sees [0, r].
	for i := 0; i < r && i < n; i++ {
		sum += src[base+i*stride]
		weight++
	}

	for i := 0; i < n; i++ {
		if head := i + r; head < n {
			sum += src[base+head*stride]
			weight++
		}
		dst[base+i*stride] = sum / weight
		if tail := i - r; tail >= 0 {
			sum -= src[base+tail*stride]
			weight--
		}
	}
}
