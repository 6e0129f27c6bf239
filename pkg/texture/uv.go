package texture

import (
	"image/color"

	"github.com/philipparndt/meshbake/pkg/geometry"
	"github.com/philipparndt/meshbake/pkg/off"
)

// PlanarUV reinterprets a vertex position as texture coordinates: the x and
// y coordinates are divided by the texture size and v is flipped. This is
// not an unwrap; it reproduces how the dataset samples were colored.
func (t *Texture) PlanarUV(p geometry.Vector3) (u, v float64) {
	return p.X / float64(t.Width), 1 - p.Y/float64(t.Height)
}

// SampleVertex returns the texture color for a vertex position
func (t *Texture) SampleVertex(p geometry.Vector3) color.NRGBA {
	return t.ColorAt(t.PlanarUV(p))
}

// FaceColors samples one color per face corner. For triangle meshes this is
// three samples per face, in the face's winding order.
func FaceColors(mesh *off.Mesh, tex *Texture) [][]color.NRGBA {
	colors := make([][]color.NRGBA, len(mesh.Faces))
	for i, face := range mesh.Faces {
		corners := make([]color.NRGBA, len(face))
		for j, idx := range face {
			corners[j] = tex.SampleVertex(mesh.Vertices[idx])
		}
		colors[i] = corners
	}
	return colors
}
