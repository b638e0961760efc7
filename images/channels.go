package images

import "github.com/pkg/errors"

// SplitChannels copies a color image into three single-channel planes.
func SplitChannels(img *RGB) [3]*Gray {
	var out [3]*Gray
	for i := range out {
		out[i] = NewGray(img.width, img.height)
	}
	for i, p := range img.pix {
		out[0].pix[i] = p.R
		out[1].pix[i] = p.G
		out[2].pix[i] = p.B
	}
	return out
}

// JoinChannels assembles a color image from three single-channel planes.
//
// Arguments:
//   - r, g, b: the channel planes, all of identical dimensions.
//
// Returns:
//   - *RGB: the assembled image.
//   - error: if the planes disagree on dimensions.
func JoinChannels(r, g, b *Gray) (*RGB, error) {
	if !SameSize(r, g) || !SameSize(g, b) {
		return nil, errors.Errorf(
			"join channels: plane sizes differ: %dx%d, %dx%d, %dx%d",
			r.width, r.height, g.width, g.height, b.width, b.height)
	}
	out := NewRGB(r.width, r.height)
	for i := range out.pix {
		out.pix[i] = Pixel{R: r.pix[i], G: g.pix[i], B: b.pix[i]}
	}
	return out, nil
}
