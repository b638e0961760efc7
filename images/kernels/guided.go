package kernels

import (
	"github.com/airlight/dehaze/images"
	"github.com/pkg/errors"
)

// GuidedFilterValues caches the guide-image statistics of a guided
// filter: per-channel local means, the six independent entries of the
// regularized symmetric 3x3 color-covariance matrix, and the six entries
// of its inverse. Computing these is the expensive half of the filter,
// and they depend only on (guide, radius, eps), so one value is built
// per guide and reused for every channel filtered against it.
//
// Every field is a whole scalar image; the matrix inverse below is the
// closed-form cofactor expansion applied elementwise across those
// images. Values are immutable after construction.
type GuidedFilterValues struct {
	radius int
	guide  [3]*images.Gray
	mean   [3]*images.Gray

	invRR, invRG, invRB *images.Gray
	invGG, invGB, invBB *images.Gray
}

// NewGuidedFilterValues precomputes guide statistics for window radius r
// and regularization eps. eps must be positive in practice: it is added
// to the covariance diagonal and is the only thing keeping the matrix
// invertible in flat guide regions. A zero determinant is not detected;
// it propagates as non-finite coefficients.
func NewGuidedFilterValues(guide *images.RGB, r int, eps float32) *GuidedFilterValues {
	I := images.SplitChannels(guide)

	meanR := Box(I[0], r)
	meanG := Box(I[1], r)
	meanB := Box(I[2], r)

	// var(x,y) = E[xy] - E[x]E[y], eps on the diagonal.
	varRR := images.AddScalar(images.Sub(Box(images.Mul(I[0], I[0]), r), images.Mul(meanR, meanR)), eps)
	varRG := images.Sub(Box(images.Mul(I[0], I[1]), r), images.Mul(meanR, meanG))
	varRB := images.Sub(Box(images.Mul(I[0], I[2]), r), images.Mul(meanR, meanB))
	varGG := images.AddScalar(images.Sub(Box(images.Mul(I[1], I[1]), r), images.Mul(meanG, meanG)), eps)
	varGB := images.Sub(Box(images.Mul(I[1], I[2]), r), images.Mul(meanG, meanB))
	varBB := images.AddScalar(images.Sub(Box(images.Mul(I[2], I[2]), r), images.Mul(meanB, meanB)), eps)

	// Cofactors of the symmetric covariance matrix.
	invRR := images.Sub(images.Mul(varGG, varBB), images.Mul(varGB, varGB))
	invRG := images.Sub(images.Mul(varGB, varRB), images.Mul(varRG, varBB))
	invRB := images.Sub(images.Mul(varRG, varGB), images.Mul(varGG, varRB))
	invGG := images.Sub(images.Mul(varRR, varBB), images.Mul(varRB, varRB))
	invGB := images.Sub(images.Mul(varRB, varRG), images.Mul(varRR, varGB))
	invBB := images.Sub(images.Mul(varRR, varGG), images.Mul(varRG, varRG))

	// Determinant by expansion along the first row.
	det := images.Add(images.Add(
		images.Mul(invRR, varRR),
		images.Mul(invRG, varRG)),
		images.Mul(invRB, varRB))

	return &GuidedFilterValues{
		radius: r,
		guide:  I,
		mean:   [3]*images.Gray{meanR, meanG, meanB},
		invRR:  images.Div(invRR, det),
		invRG:  images.Div(invRG, det),
		invRB:  images.Div(invRB, det),
		invGG:  images.Div(invGG, det),
		invGB:  images.Div(invGB, det),
		invBB:  images.Div(invBB, det),
	}
}

// FilterChannel runs the guided filter over one input channel using the
// cached guide statistics. The input must match the guide's dimensions;
// callers going through GuidedGray / GuidedRGB get that checked.
func (v *GuidedFilterValues) FilterChannel(input *images.Gray) *images.Gray {
	meanP := Box(input, v.radius)

	// Local covariance between each guide channel and the input.
	covR := images.Sub(Box(images.Mul(v.guide[0], input), v.radius), images.Mul(v.mean[0], meanP))
	covG := images.Sub(Box(images.Mul(v.guide[1], input), v.radius), images.Mul(v.mean[1], meanP))
	covB := images.Sub(Box(images.Mul(v.guide[2], input), v.radius), images.Mul(v.mean[2], meanP))

	// a = inv(cov(I)) * cov(I, p): the per-window linear model that best
	// predicts the input from the guide.
	aR := add3(images.Mul(v.invRR, covR), images.Mul(v.invRG, covG), images.Mul(v.invRB, covB))
	aG := add3(images.Mul(v.invRG, covR), images.Mul(v.invGG, covG), images.Mul(v.invGB, covB))
	aB := add3(images.Mul(v.invRB, covR), images.Mul(v.invGB, covG), images.Mul(v.invBB, covB))

	// Intercept b = mean(p) - a . mean(I).
	b := images.Sub(images.Sub(images.Sub(meanP,
		images.Mul(aR, v.mean[0])),
		images.Mul(aG, v.mean[1])),
		images.Mul(aB, v.mean[2]))

	// Average the overlapping linear models, then evaluate against the
	// guide: out = box(a) . I + box(b).
	return add3(
		images.Mul(Box(aR, v.radius), v.guide[0]),
		images.Mul(Box(aG, v.radius), v.guide[1]),
		images.Add(images.Mul(Box(aB, v.radius), v.guide[2]), Box(b, v.radius)))
}

// GuidedGray filters a single-channel image, steered by the edges of a
// color guide of the same dimensions.
func GuidedGray(input *images.Gray, guide *images.RGB, r int, eps float32) (*images.Gray, error) {
	if !images.SameSize(input, guide) {
		return nil, errors.Errorf("guided filter: input %dx%d does not match guide %dx%d",
			input.Width(), input.Height(), guide.Width(), guide.Height())
	}
	v := NewGuidedFilterValues(guide, r, eps)
	return v.FilterChannel(input), nil
}

// GuidedRGB filters a color image channel by channel, reusing one set of
// guide statistics for all three channels.
func GuidedRGB(input *images.RGB, guide *images.RGB, r int, eps float32) (*images.RGB, error) {
	if !images.SameSize(input, guide) {
		return nil, errors.Errorf("guided filter: input %dx%d does not match guide %dx%d",
			input.Width(), input.Height(), guide.Width(), guide.Height())
	}

	v := NewGuidedFilterValues(guide, r, eps)

	channels := images.SplitChannels(input)
	for i := range channels {
		channels[i] = v.FilterChannel(channels[i])
	}
	return images.JoinChannels(channels[0], channels[1], channels[2])
}

func add3(a, b, c *images.Gray) *images.Gray {
	return images.Add(images.Add(a, b), c)
}
