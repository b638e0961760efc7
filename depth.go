// Package dehaze removes atmospheric haze from a photograph using the
// color-attenuation prior: scene depth is estimated from the gap between
// a hazy pixel's brightness and its saturation, refined with a guided
// filter, and the haze image-formation model is inverted to recover
// scene radiance.
package dehaze

import (
	"github.com/chewxy/math32"

	"github.com/airlight/dehaze/images"
	"github.com/airlight/dehaze/images/kernels"
)

// Coefficients of the color-attenuation prior, fit on outdoor hazy
// scenes (Zhu, Mai, Shao 2015).
const (
	theta0 = 0.121779
	theta1 = 0.959710
	theta2 = -0.780245
)

// DepthFromHazy estimates a relative depth map from a hazy image.
//
// Per pixel the prior gives depth = θ0 + θ1*luminance + θ2*saturation,
// clamped to [0, 1]. A kernel x kernel minimum filter then suppresses
// locally bright outliers (sky, light sources) that would read as
// haze-free, and the result is normalized so its minimum is exactly 0
// and its maximum exactly 1. Bright, desaturated regions read as far /
// most hazy (high values); dark saturated regions as near (low values).
func DepthFromHazy(img *images.RGB, kernel int) *images.Gray {
	raw := images.NewGray(img.Width(), img.Height())

	for c := range img.Bounds().Coords() {
		p := img.AtUnsafe(c)
		d := theta0 + theta1*p.Luminance() + theta2*p.Saturation()
		raw.SetUnsafe(c, math32.Min(math32.Max(d, 0), 1))
	}

	out := images.NewGray(img.Width(), img.Height())
	for c := range raw.Bounds().Coords() {
		lo := float32(1)
		for w := range raw.Window(c, kernel, kernel).Coords() {
			lo = math32.Min(lo, raw.AtUnsafe(w))
		}
		out.SetUnsafe(c, lo)
	}

	kernels.Normalize(out)
	return out
}
