package viewer

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"
)

// SaveImage encodes img by file extension: .png, .jpg/.jpeg or .webp
func SaveImage(path string, img image.Image) error {
	var encode func(f *os.File) error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		encode = func(f *os.File) error { return png.Encode(f, img) }
	case ".jpg", ".jpeg":
		encode = func(f *os.File) error { return jpeg.Encode(f, img, &jpeg.Options{Quality: 95}) }
	case ".webp":
		encode = func(f *os.File) error { return nativewebp.Encode(f, img, nil) }
	default:
		return fmt.Errorf("unsupported image format %q", ext)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create image: %w", err)
	}
	if err := encode(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return f.Close()
}
