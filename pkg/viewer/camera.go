package viewer

import (
	"math"

	"github.com/philipparndt/meshbake/pkg/geometry"
)

// NearPlane is the closest camera-space depth that is still drawn
const NearPlane = 0.01

// Camera is an orbit camera looking at a fixed target
type Camera struct {
	Position  geometry.Vector3
	Target    geometry.Vector3
	Up        geometry.Vector3
	FOV       float64 // Field of view in radians
	Distance  float64
	RotationX float64 // Rotation around X axis (vertical)
	RotationY float64 // Rotation around Y axis (horizontal)

	minDistance float64
}

// NewCamera creates a camera that frames a bounding box
func NewCamera(bbox geometry.BoundingBox) *Camera {
	extent := bbox.Size().MaxComponent()
	if extent <= 0 {
		extent = 1
	}
	distance := extent * 2.0

	c := &Camera{
		Target:      bbox.Center(),
		Up:          geometry.NewVector3(0, 1, 0),
		FOV:         math.Pi / 4, // 45 degrees
		Distance:    distance,
		minDistance: extent * 0.05,
	}
	c.UpdatePosition()
	return c
}

// UpdatePosition updates camera position based on rotation angles
func (c *Camera) UpdatePosition() {
	x := c.Distance * math.Cos(c.RotationX) * math.Sin(c.RotationY)
	y := c.Distance * math.Sin(c.RotationX)
	z := c.Distance * math.Cos(c.RotationX) * math.Cos(c.RotationY)

	c.Position = c.Target.Add(geometry.NewVector3(x, y, z))
}

// Rotate rotates the camera by the given angles
func (c *Camera) Rotate(deltaX, deltaY float64) {
	c.RotationX += deltaX
	c.RotationY += deltaY

	// Clamp X rotation to prevent gimbal lock
	maxAngle := math.Pi/2 - 0.1
	if c.RotationX > maxAngle {
		c.RotationX = maxAngle
	}
	if c.RotationX < -maxAngle {
		c.RotationX = -maxAngle
	}

	c.UpdatePosition()
}

// Zoom scales the camera distance by (1 + delta)
func (c *Camera) Zoom(delta float64) {
	c.Distance *= (1.0 + delta)
	if c.Distance < c.minDistance {
		c.Distance = c.minDistance
	}
	c.UpdatePosition()
}

// basis returns the right, up and forward axes of the view
func (c *Camera) basis() (right, up, forward geometry.Vector3) {
	forward = c.Target.Sub(c.Position).Normalize()
	right = forward.Cross(c.Up).Normalize()
	up = right.Cross(forward).Normalize()
	return right, up, forward
}

// Project projects a 3D point to screen coordinates. The returned depth is
// the distance along the view direction; points at or behind NearPlane are
// not visible.
func (c *Camera) Project(point geometry.Vector3, width, height float64) (float64, float64, float64) {
	right, up, forward := c.basis()

	relative := point.Sub(c.Position)
	x := relative.Dot(right)
	y := relative.Dot(up)
	z := relative.Dot(forward)

	d := math.Max(z, NearPlane)
	aspect := width / height
	fovScale := math.Tan(c.FOV / 2)

	screenX := (x/(d*fovScale*aspect))*(width/2) + (width / 2)
	screenY := (-y/(d*fovScale))*(height/2) + (height / 2)

	return screenX, screenY, z
}

// ViewDirection returns the unit vector from the target towards the camera
func (c *Camera) ViewDirection() geometry.Vector3 {
	return c.Position.Sub(c.Target).Normalize()
}
