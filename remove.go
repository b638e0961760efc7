package dehaze

import (
	"github.com/chewxy/math32"
	"github.com/pkg/errors"

	"github.com/airlight/dehaze/images"
)

// Transmission clamp bounds. The lower bound keeps the radiance
// division away from zero; the upper bound guarantees some correction is
// applied even where the depth map reads zero haze.
const (
	minTransmission = 0.1
	maxTransmission = 0.9
)

// AtmosphericLight estimates the airlight color A from the 0.1% of
// pixels with the highest depth value, picking the one among them with
// the highest luminance in the hazy image.
//
// The candidate count is pixels/1000 with integer truncation, so images
// under 1000 pixels select no candidates and A stays black. That quirk
// is load-bearing for compatibility; callers wanting a different policy
// must resize first.
func AtmosphericLight(in *images.RGB, depth *images.Gray) images.Pixel {
	d := depth.Pix()
	n := len(d) / 1000

	idx := make([]int, len(d))
	for i := range idx {
		idx[i] = i
	}
	selectTopDepth(idx, d, n)

	var a images.Pixel
	for _, i := range idx[:n] {
		if p := in.Pix()[i]; p.Luminance() > a.Luminance() {
			a = p
		}
	}
	return a
}

// RemoveHaze inverts the haze image-formation model I = J*t + A*(1-t).
//
// Arguments:
//   - in: the hazy image.
//   - depth: per-pixel depth in [0, 1], same dimensions as in (typically
//     DepthFromHazy refined through kernels.GuidedGray).
//   - beta: the scattering coefficient of the transmission model
//     t = exp(-beta * depth); 1.0 is the usual default.
//
// Returns:
//   - *images.RGB: the recovered scene radiance A + (in - A) / t, with t
//     clamped to [0.1, 0.9] and broadcast across channels.
//   - error: if in and depth dimensions differ.
func RemoveHaze(in *images.RGB, depth *images.Gray, beta float32) (*images.RGB, error) {
	if !images.SameSize(in, depth) {
		return nil, errors.Errorf("remove haze: image %dx%d does not match depth map %dx%d",
			in.Width(), in.Height(), depth.Width(), depth.Height())
	}

	a := AtmosphericLight(in, depth)
	Logger().Debug("estimated atmospheric light", "a", a.String())

	d := depth.Pix()
	out := images.NewRGB(in.Width(), in.Height())
	outPix := out.Pix()
	for i, p := range in.Pix() {
		t := math32.Exp(-beta * d[i])
		t = math32.Min(math32.Max(t, minTransmission), maxTransmission)
		outPix[i] = a.Add(p.Sub(a).Div(t))
	}
	return out, nil
}

// selectTopDepth partially orders idx so that its first n entries index
// the n highest depth values. Quickselect: only the partition boundary
// at n is exact, order inside either side is unspecified, which is all
// AtmosphericLight needs before its linear scan.
func selectTopDepth(idx []int, depth []float32, n int) {
	if n <= 0 || n >= len(idx) {
		return
	}
	lo, hi := 0, len(idx)-1
	for lo < hi {
		p := partitionDesc(idx, depth, lo, hi)
		switch {
		case p == n:
			return
		case p < n:
			lo = p + 1
		default:
			hi = p - 1
		}
	}
}

// partitionDesc is a Lomuto partition in descending depth order, pivot
// taken from the middle of the range.
func partitionDesc(idx []int, depth []float32, lo, hi int) int {
	mid := lo + (hi-lo)/2
	idx[mid], idx[hi] = idx[hi], idx[mid]
	pivot := depth[idx[hi]]

	i := lo
	for j := lo; j < hi; j++ {
		if depth[idx[j]] > pivot {
			idx[i], idx[j] = idx[j], idx[i]
			i++
		}
	}
	idx[i], idx[hi] = idx[hi], idx[i]
	return i
}
