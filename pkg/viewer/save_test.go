package viewer

import (
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/HugoSmits86/nativewebp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 16, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 16; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}
	return img
}

func TestSaveImage(t *testing.T) {
	decoders := map[string]func(f *os.File) (image.Image, error){
		"out.png":  func(f *os.File) (image.Image, error) { return png.Decode(f) },
		"out.jpg":  func(f *os.File) (image.Image, error) { return jpeg.Decode(f) },
		"out.JPEG": func(f *os.File) (image.Image, error) { return jpeg.Decode(f) },
		"out.webp": func(f *os.File) (image.Image, error) { return nativewebp.Decode(f) },
	}

	for name, decode := range decoders {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", name)
			require.NoError(t, SaveImage(path, testImage()))

			f, err := os.Open(path)
			require.NoError(t, err)
			defer f.Close()

			img, err := decode(f)
			require.NoError(t, err)
			assert.Equal(t, image.Rect(0, 0, 16, 8), img.Bounds())
		})
	}
}

func TestSaveImageUnsupported(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.gif")
	err := SaveImage(path, testImage())
	assert.ErrorContains(t, err, "unsupported")
	assert.NoFileExists(t, path)
}
