package dehaze

import (
	"time"

	"github.com/airlight/dehaze/images"
	"github.com/airlight/dehaze/images/kernels"
)

// Defaults for Options fields left at zero.
const (
	DefaultRadius = 9
	DefaultBeta   = 1.0
	DefaultEps    = 0.00001
)

// Options configures a dehazing run.
type Options struct {
	// Radius is the window radius of the guided filter and, unless
	// Kernel is set, the side of the depth minimum filter. Defaults to
	// DefaultRadius when zero.
	Radius int
	// Beta is the scattering coefficient of the transmission model.
	// Defaults to DefaultBeta when zero.
	Beta float32
	// Eps is the guided-filter regularization. Defaults to DefaultEps
	// when zero.
	Eps float32
	// Kernel is the side of the depth minimum filter. Defaults to
	// Radius when zero.
	Kernel int
}

func (o Options) withDefaults() Options {
	if o.Radius == 0 {
		o.Radius = DefaultRadius
	}
	if o.Beta == 0 {
		o.Beta = DefaultBeta
	}
	if o.Eps == 0 {
		o.Eps = DefaultEps
	}
	if o.Kernel == 0 {
		o.Kernel = o.Radius
	}
	return o
}

// Result holds the outputs of a dehazing run, including the two
// intermediate depth maps so callers can inspect or save them.
type Result struct {
	// RawDepth is the color-attenuation-prior estimate before
	// refinement.
	RawDepth *images.Gray
	// Depth is RawDepth refined by the guided filter, using the hazy
	// image itself as the guide.
	Depth *images.Gray
	// Dehazed is the recovered scene radiance.
	Dehazed *images.RGB
}

// Process runs the full pipeline on a hazy image:
// depth estimation, guided-filter refinement against the hazy image,
// and radiance recovery.
//
// Arguments:
//   - hazy: the input image, linear-light float pixels.
//   - opts: run parameters; zero fields take package defaults.
//
// Returns:
//   - Result: the dehazed image plus both depth intermediates.
//   - error: if any stage fails (dimension mismatches only; the numeric
//     stages themselves are total functions of their inputs).
func Process(hazy *images.RGB, opts Options) (Result, error) {
	opts = opts.withDefaults()
	log := Logger()

	start := time.Now()
	raw := DepthFromHazy(hazy, opts.Kernel)
	log.Debug("estimated depth", "elapsed", time.Since(start))

	start = time.Now()
	depth, err := kernels.GuidedGray(raw, hazy, opts.Radius, opts.Eps)
	if err != nil {
		return Result{}, err
	}
	log.Debug("refined depth", "radius", opts.Radius, "eps", opts.Eps, "elapsed", time.Since(start))

	start = time.Now()
	dehazed, err := RemoveHaze(hazy, depth, opts.Beta)
	if err != nil {
		return Result{}, err
	}
	log.Debug("recovered radiance", "beta", opts.Beta, "elapsed", time.Since(start))

	return Result{RawDepth: raw, Depth: depth, Dehazed: dehazed}, nil
}
