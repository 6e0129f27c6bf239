package viewer

import (
	"math"

	"github.com/philipparndt/meshbake/pkg/geometry"
)

// Light is a directional Lambert light with an ambient term
type Light struct {
	Direction geometry.Vector3 // unit vector pointing towards the light
	Ambient   float64
	Diffuse   float64
}

// DefaultLight returns a light shining along dir
func DefaultLight(dir geometry.Vector3) Light {
	return Light{
		Direction: dir.Normalize(),
		Ambient:   0.25,
		Diffuse:   0.75,
	}
}

// Shade returns the intensity for a surface normal. Faces are lit from both
// sides since OFF winding is not consistent across the dataset.
func (l Light) Shade(normal geometry.Vector3) float64 {
	return l.Ambient + l.Diffuse*math.Abs(normal.Dot(l.Direction))
}
