package codec

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/airlight/dehaze/images"
)

func TestSaveLoadPNGRoundTrip(t *testing.T) {
	img := images.NewRGB(16, 12)
	for c := range img.Bounds().Coords() {
		img.SetUnsafe(c, images.Pixel{
			R: float32(c.X) / 15,
			G: float32(c.Y) / 11,
			B: 0.25,
		})
	}

	path := filepath.Join(t.TempDir(), "roundtrip.png")
	require.NoError(t, SaveRGB(img, path))

	back, err := Load(path, LoadOptions{})
	require.NoError(t, err)
	require.Equal(t, 16, back.Width())
	require.Equal(t, 12, back.Height())

	// PNG is lossless, so the only error left is 8-bit sRGB
	// quantization.
	for i, want := range img.Pix() {
		got := back.Pix()[i]
		assert.InDelta(t, want.R, got.R, 0.01)
		assert.InDelta(t, want.G, got.G, 0.01)
		assert.InDelta(t, want.B, got.B, 0.01)
	}
}

func TestSaveGrayRoundTrip(t *testing.T) {
	img := images.NewGray(8, 8)
	for i := range img.Pix() {
		img.Pix()[i] = float32(i) / 63
	}

	path := filepath.Join(t.TempDir(), "depth.png")
	require.NoError(t, SaveGray(img, path))

	back, err := Load(path, LoadOptions{})
	require.NoError(t, err)
	for i, want := range img.Pix() {
		got := back.Pix()[i]
		assert.InDelta(t, want, got.R, 0.01)
		assert.Equal(t, got.R, got.G, "grayscale file should decode with equal channels")
		assert.Equal(t, got.G, got.B)
	}
}

func TestSaveClampsNonFiniteValues(t *testing.T) {
	zero := float32(0)
	nan := zero / zero
	inf := 1 / zero

	img := images.NewRGB(2, 1)
	img.Pix()[0] = images.Pixel{R: nan, G: -inf, B: -0.5}
	img.Pix()[1] = images.Pixel{R: inf, G: 2.5, B: 1}

	path := filepath.Join(t.TempDir(), "clamped.png")
	require.NoError(t, SaveRGB(img, path))

	back, err := Load(path, LoadOptions{})
	require.NoError(t, err)
	assert.Equal(t, images.Pixel{}, back.Pix()[0], "non-finite and negative values clamp to 0")
	assert.Equal(t, images.Uniform(1), back.Pix()[1], "overrange values clamp to 1")
}

func TestLoadMaxDimDownscales(t *testing.T) {
	img := images.NewRGB(100, 50)
	path := filepath.Join(t.TempDir(), "big.png")
	require.NoError(t, SaveRGB(img, path))

	small, err := Load(path, LoadOptions{MaxDim: 50})
	require.NoError(t, err)
	assert.Equal(t, 50, small.Width())
	assert.Equal(t, 25, small.Height(), "aspect ratio preserved")

	// Images already within the bound are left alone.
	same, err := Load(path, LoadOptions{MaxDim: 200})
	require.NoError(t, err)
	assert.Equal(t, 100, same.Width())
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.png"), LoadOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.png")

	garbage := filepath.Join(t.TempDir(), "garbage.png")
	require.NoError(t, os.WriteFile(garbage, []byte("not an image"), 0o644))
	_, err = Load(garbage, LoadOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode image")
}
