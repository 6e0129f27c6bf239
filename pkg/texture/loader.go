package texture

import (
	"bufio"
	"fmt"
	"image"
	"image/draw"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

type decodeFunc func(io.Reader) (image.Image, error)

// Decoders are picked by extension. The TGA format has no magic bytes, so
// content sniffing through image.Decode is not reliable once it is registered.
var decoders = map[string]decodeFunc{
	".png":  png.Decode,
	".jpg":  jpeg.Decode,
	".jpeg": jpeg.Decode,
	".gif":  gif.Decode,
	".bmp":  bmp.Decode,
	".tif":  tiff.Decode,
	".tiff": tiff.Decode,
	".webp": nativewebp.Decode,
	".tga":  tga.Decode,
}

// SupportedExtensions lists the file extensions Load understands
func SupportedExtensions() []string {
	return []string{".bmp", ".gif", ".jpeg", ".jpg", ".png", ".tga", ".tif", ".tiff", ".webp"}
}

// Load reads an image file and returns it as a texture
func Load(path string) (*Texture, error) {
	ext := strings.ToLower(filepath.Ext(path))
	decode, ok := decoders[ext]
	if !ok {
		return nil, fmt.Errorf("texture: unsupported extension %q", ext)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("texture: open %s: %w", path, err)
	}
	defer file.Close()

	img, err := decode(bufio.NewReader(file))
	if err != nil {
		return nil, fmt.Errorf("texture: decode %s: %w", path, err)
	}

	return New(img), nil
}

// toNRGBA converts any image to a zero-origin NRGBA image
func toNRGBA(src image.Image) *image.NRGBA {
	if n, ok := src.(*image.NRGBA); ok && n.Rect.Min == (image.Point{}) {
		return n
	}
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}
