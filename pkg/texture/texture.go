// Package texture loads texture images and samples them with the planar
// UV mapping used to color ModelNet40 meshes.
package texture

import (
	"image"
	"image/color"
	"math"
)

// Texture is a decoded image addressed by normalized (u, v) coordinates
type Texture struct {
	img    *image.NRGBA
	Width  int
	Height int
}

// New wraps an image as a texture
func New(img image.Image) *Texture {
	n := toNRGBA(img)
	return &Texture{
		img:    n,
		Width:  n.Rect.Dx(),
		Height: n.Rect.Dy(),
	}
}

// Solid returns a 1x1 texture of a single color
func Solid(c color.NRGBA) *Texture {
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	img.SetNRGBA(0, 0, c)
	return New(img)
}

// Image returns the underlying pixels
func (t *Texture) Image() *image.NRGBA {
	return t.img
}

// ColorAt returns the nearest pixel for (u, v). The pixel position is
// truncated from u*width and v*height and clamped to the image.
func (t *Texture) ColorAt(u, v float64) color.NRGBA {
	x := clampIndex(u*float64(t.Width), t.Width)
	y := clampIndex(v*float64(t.Height), t.Height)
	return t.img.NRGBAAt(x, y)
}

func clampIndex(f float64, size int) int {
	if math.IsNaN(f) || f < 0 {
		return 0
	}
	if f >= float64(size) {
		return size - 1
	}
	return int(f)
}
