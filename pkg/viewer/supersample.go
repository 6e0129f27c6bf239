package viewer

import (
	"image"

	"golang.org/x/image/draw"
)

// RenderSupersampled renders at factor times the target resolution and
// scales the result down, smoothing triangle edges.
func (s *Scene) RenderSupersampled(camera *Camera, width, height, factor int) *image.RGBA {
	if factor <= 1 {
		return s.Render(camera, width, height)
	}
	return Downsample(s.Render(camera, width*factor, height*factor), width, height)
}

// Downsample scales img to width x height with a Catmull-Rom filter
func Downsample(img *image.RGBA, width, height int) *image.RGBA {
	b := img.Bounds()
	if b.Dx() == width && b.Dy() == height {
		return img
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
