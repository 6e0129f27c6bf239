package viewer

import (
	"image/color"
	"math"
)

// screenVertex is a projected corner with its shaded color in [0, 255]
type screenVertex struct {
	x, y, z float64
	r, g, b float64
}

// fillTriangle rasterizes a triangle with barycentric interpolation of depth
// and color. Pixels are drawn when closer than what the depth buffer holds.
func fillTriangle(fb *FrameBuffer, v0, v1, v2 screenVertex) {
	// clamp in float space; converting an out-of-range float to int is undefined
	minX := clampBound(math.Floor(math.Min(v0.x, math.Min(v1.x, v2.x))), fb.Width)
	maxX := clampBound(math.Ceil(math.Max(v0.x, math.Max(v1.x, v2.x))), fb.Width)
	minY := clampBound(math.Floor(math.Min(v0.y, math.Min(v1.y, v2.y))), fb.Height)
	maxY := clampBound(math.Ceil(math.Max(v0.y, math.Max(v1.y, v2.y))), fb.Height)

	minX = max(minX, 0)
	maxX = min(maxX, fb.Width-1)
	minY = max(minY, 0)
	maxY = min(maxY, fb.Height-1)
	if minX > maxX || minY > maxY {
		return
	}
	if math.IsNaN(v0.x+v1.x+v2.x) || math.IsNaN(v0.y+v1.y+v2.y) {
		return
	}

	det := (v1.y-v2.y)*(v0.x-v2.x) + (v2.x-v1.x)*(v0.y-v2.y)
	if math.Abs(det) < 1e-12 {
		return
	}
	invDet := 1.0 / det

	dy12 := v1.y - v2.y
	dx21 := v2.x - v1.x
	dy20 := v2.y - v0.y
	dx02 := v0.x - v2.x

	pix := fb.Color.Pix
	stride := fb.Color.Stride

	for y := minY; y <= maxY; y++ {
		// sample at pixel centers
		dsy := float64(y) + 0.5 - v2.y
		for x := minX; x <= maxX; x++ {
			dsx := float64(x) + 0.5 - v2.x
			w0 := (dy12*dsx + dx21*dsy) * invDet
			w1 := (dy20*dsx + dx02*dsy) * invDet
			w2 := 1.0 - w0 - w1
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}

			z := w0*v0.z + w1*v1.z + w2*v2.z
			idx := y*fb.Width + x
			if z >= fb.Depth[idx] {
				continue
			}
			fb.Depth[idx] = z

			p := y*stride + x*4
			pix[p] = clamp8(w0*v0.r + w1*v1.r + w2*v2.r)
			pix[p+1] = clamp8(w0*v0.g + w1*v1.g + w2*v2.g)
			pix[p+2] = clamp8(w0*v0.b + w1*v1.b + w2*v2.b)
			pix[p+3] = 255
		}
	}
}

// drawLine draws a line using Bresenham's algorithm, ignoring depth. The
// segment is clipped to the frame buffer first, so endpoints far off screen
// cost no more than on-screen ones.
func drawLine(fb *FrameBuffer, x1, y1, x2, y2 float64, col color.RGBA) {
	x1, y1, x2, y2, ok := clipLine(x1, y1, x2, y2, float64(fb.Width-1), float64(fb.Height-1))
	if !ok {
		return
	}
	bresenham(fb, int(math.Round(x1)), int(math.Round(y1)), int(math.Round(x2)), int(math.Round(y2)), col)
}

// clipLine clips a segment to [0, maxX] x [0, maxY] (Liang-Barsky). ok is
// false when nothing of the segment is inside.
func clipLine(x1, y1, x2, y2, maxX, maxY float64) (cx1, cy1, cx2, cy2 float64, ok bool) {
	for _, v := range [...]float64{x1, y1, x2, y2} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, 0, 0, 0, false
		}
	}
	if maxX < 0 || maxY < 0 {
		return 0, 0, 0, 0, false
	}

	dx, dy := x2-x1, y2-y1
	t0, t1 := 0.0, 1.0
	p := [4]float64{-dx, dx, -dy, dy}
	q := [4]float64{x1, maxX - x1, y1, maxY - y1}
	for i := range p {
		if p[i] == 0 {
			if q[i] < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q[i] / p[i]
		if p[i] < 0 {
			t0 = math.Max(t0, r)
		} else {
			t1 = math.Min(t1, r)
		}
		if t0 > t1 {
			return 0, 0, 0, 0, false
		}
	}
	return x1 + t0*dx, y1 + t0*dy, x1 + t1*dx, y1 + t1*dy, true
}

func bresenham(fb *FrameBuffer, x1, y1, x2, y2 int, col color.RGBA) {
	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	var sx, sy int
	if x1 < x2 {
		sx = 1
	} else {
		sx = -1
	}
	if y1 < y2 {
		sy = 1
	} else {
		sy = -1
	}

	err := dx - dy

	for {
		if x1 >= 0 && x1 < fb.Width && y1 >= 0 && y1 < fb.Height {
			fb.Color.SetRGBA(x1, y1, col)
		}

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// fillSquare draws a filled square of the given radius centered on (x, y)
func fillSquare(fb *FrameBuffer, x, y, radius int, col color.RGBA) {
	for py := y - radius; py <= y+radius; py++ {
		for px := x - radius; px <= x+radius; px++ {
			if px >= 0 && px < fb.Width && py >= 0 && py < fb.Height {
				fb.Color.SetRGBA(px, py, col)
			}
		}
	}
}

// clampBound limits a pixel bound to [-1, size] before it becomes an int
func clampBound(v float64, size int) int {
	if !(v > -1) {
		return -1
	}
	if v > float64(size) {
		return size
	}
	return int(v)
}

func clamp8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
