// Package images provides the float-pixel containers and elementwise
// arithmetic the dehazing pipeline is built on. All pixel values are
// linear-light float32, nominally in [0, 1].
package images

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Luminance weights for linear-light RGB (ITU-R BT.709).
const (
	lumR = 0.2126
	lumG = 0.7152
	lumB = 0.0722
)

// Pixel is a single RGB color sample with linear float32 channels.
type Pixel struct {
	R, G, B float32
}

// Uniform returns a pixel with all three channels set to v.
func Uniform(v float32) Pixel {
	return Pixel{R: v, G: v, B: v}
}

// Add returns the elementwise sum of two pixels.
func (p Pixel) Add(q Pixel) Pixel {
	return Pixel{p.R + q.R, p.G + q.G, p.B + q.B}
}

// Sub returns the elementwise difference of two pixels.
func (p Pixel) Sub(q Pixel) Pixel {
	return Pixel{p.R - q.R, p.G - q.G, p.B - q.B}
}

// Scale returns the pixel with every channel multiplied by f.
func (p Pixel) Scale(f float32) Pixel {
	return Pixel{p.R * f, p.G * f, p.B * f}
}

// Div returns the pixel with every channel divided by d.
func (p Pixel) Div(d float32) Pixel {
	return Pixel{p.R / d, p.G / d, p.B / d}
}

// Luminance returns the weighted channel sum of the pixel.
func (p Pixel) Luminance() float32 {
	return lumR*p.R + lumG*p.G + lumB*p.B
}

// SetLuminance rescales the pixel so its luminance equals v. A black
// pixel has no hue to preserve and becomes grey.
func (p Pixel) SetLuminance(v float32) Pixel {
	l := p.Luminance()
	if l == 0 {
		return Uniform(v)
	}
	return p.Scale(v / l)
}

// Saturation returns (max channel - min channel) / luminance, or 0 for a
// pixel with zero luminance.
func (p Pixel) Saturation() float32 {
	maxC := math32.Max(p.R, math32.Max(p.G, p.B))
	minC := math32.Min(p.R, math32.Min(p.G, p.B))
	l := p.Luminance()
	if l == 0 {
		return 0
	}
	return (maxC - minC) / l
}

// Blend linearly interpolates from p to q. amount=0 returns p, amount=1
// returns q.
func (p Pixel) Blend(q Pixel, amount float32) Pixel {
	return q.Scale(amount).Add(p.Scale(1 - amount))
}

func (p Pixel) String() string {
	return fmt.Sprintf("{ r: %g, g: %g, b: %g }", p.R, p.G, p.B)
}

// LinearToSRGB applies the sRGB transfer curve to one linear value.
func LinearToSRGB(v float32) float32 {
	if v <= 0.0031308 {
		return v * 12.92
	}
	return 1.055*math32.Pow(v, 1/2.4) - 0.055
}

// SRGBToLinear inverts the sRGB transfer curve for one encoded value.
func SRGBToLinear(v float32) float32 {
	if v <= 0.04045 {
		return v / 12.92
	}
	return math32.Pow((v+0.055)/1.055, 2.4)
}

// PixelToSRGB applies the sRGB transfer curve per channel.
func PixelToSRGB(p Pixel) Pixel {
	return Pixel{LinearToSRGB(p.R), LinearToSRGB(p.G), LinearToSRGB(p.B)}
}

// PixelToLinear inverts the sRGB transfer curve per channel.
func PixelToLinear(p Pixel) Pixel {
	return Pixel{SRGBToLinear(p.R), SRGBToLinear(p.G), SRGBToLinear(p.B)}
}
