package viewer

import (
	"image"
	"image/color"
	"math"
)

// FrameBuffer is a color target with a per-pixel depth buffer
type FrameBuffer struct {
	Width  int
	Height int
	Color  *image.RGBA
	Depth  []float64 // camera-space depth, +Inf where nothing was drawn
}

// NewFrameBuffer allocates a frame buffer cleared to background
func NewFrameBuffer(width, height int, background color.RGBA) *FrameBuffer {
	fb := &FrameBuffer{
		Width:  width,
		Height: height,
		Color:  image.NewRGBA(image.Rect(0, 0, width, height)),
		Depth:  make([]float64, width*height),
	}
	for i := range fb.Depth {
		fb.Depth[i] = math.Inf(1)
	}
	pix := fb.Color.Pix
	for i := 0; i < len(pix); i += 4 {
		pix[i] = background.R
		pix[i+1] = background.G
		pix[i+2] = background.B
		pix[i+3] = background.A
	}
	return fb
}
