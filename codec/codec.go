// Package codec is the image I/O boundary of the dehazer. It decodes
// files into linear-light float images, re-encodes results, and keeps
// all gamma handling here so the numeric core only ever sees linear
// values.
//
// Format support comes from the registered stdlib and x/image decoders
// (jpeg, png, bmp, tiff, webp); registration happens once via the blank
// imports below. The stdlib codecs are safe for concurrent use, so no
// extra serialization is needed around them.
package codec

import (
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/nfnt/resize"
	"github.com/pkg/errors"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	_ "golang.org/x/image/webp" // decode only

	"github.com/airlight/dehaze"
	"github.com/airlight/dehaze/images"
)

const jpegQuality = 95

// LoadOptions configures decoding.
type LoadOptions struct {
	// MaxDim, when positive, downscales the decoded image with Lanczos3
	// so neither side exceeds it. Aspect ratio is preserved.
	MaxDim int
}

// Load decodes the image at path into linear float pixels.
//
// Arguments:
//   - path: the file to decode; format is detected from content.
//   - opts: decode options.
//
// Returns:
//   - *images.RGB: the decoded image, sRGB-decoded to linear light.
//   - error: any open or decode failure, wrapped with the path.
func Load(path string, opts LoadOptions) (*images.RGB, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "load image %q", path)
	}
	defer f.Close()

	src, format, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "decode image %q", path)
	}

	if d := opts.MaxDim; d > 0 {
		b := src.Bounds()
		if b.Dx() > d || b.Dy() > d {
			src = resize.Thumbnail(uint(d), uint(d), src, resize.Lanczos3)
		}
	}

	b := src.Bounds()
	out := images.NewRGB(b.Dx(), b.Dy())
	pix := out.Pix()
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := src.At(x, y).RGBA()
			pix[i] = images.PixelToLinear(images.Pixel{
				R: float32(r) / 0xffff,
				G: float32(g) / 0xffff,
				B: float32(bl) / 0xffff,
			})
			i++
		}
	}

	dehaze.Logger().Info("loaded image", "path", path, "format", format,
		"width", out.Width(), "height", out.Height())
	return out, nil
}

// SaveRGB encodes a linear float image to path. The encoder is chosen
// by extension: .png, .bmp and .tif/.tiff as themselves, anything else
// as JPEG. Values are sRGB-encoded and clamped to [0, 1] first;
// non-finite pixels clamp to the nearest bound.
func SaveRGB(img *images.RGB, path string) error {
	b := image.Rect(0, 0, img.Width(), img.Height())
	dst := image.NewNRGBA(b)
	for i, p := range img.Pix() {
		s := images.PixelToSRGB(p)
		dst.Pix[i*4+0] = to8(s.R)
		dst.Pix[i*4+1] = to8(s.G)
		dst.Pix[i*4+2] = to8(s.B)
		dst.Pix[i*4+3] = 0xff
	}
	return encode(dst, path)
}

// SaveGray encodes a single-channel linear float image to path, with
// the same extension and clamping rules as SaveRGB.
func SaveGray(img *images.Gray, path string) error {
	b := image.Rect(0, 0, img.Width(), img.Height())
	dst := image.NewGray(b)
	for i, v := range img.Pix() {
		dst.Pix[i] = to8(images.LinearToSRGB(v))
	}
	return encode(dst, path)
}

func encode(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "save image %q", path)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		err = png.Encode(f, img)
	case ".bmp":
		err = bmp.Encode(f, img)
	case ".tif", ".tiff":
		err = tiff.Encode(f, img, nil)
	default:
		err = jpeg.Encode(f, img, &jpeg.Options{Quality: jpegQuality})
	}
	if err != nil {
		return errors.Wrapf(err, "encode image %q", path)
	}
	if err := f.Close(); err != nil {
		return errors.Wrapf(err, "save image %q", path)
	}

	dehaze.Logger().Info("wrote image", "path", path)
	return nil
}

// to8 converts one sRGB-encoded channel to 8 bits. The comparisons are
// written so NaN falls through to 0.
func to8(v float32) uint8 {
	if !(v > 0) {
		return 0
	}
	if v >= 1 {
		return 0xff
	}
	return uint8(v*255 + 0.5)
}
