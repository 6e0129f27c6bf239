package viewer

import (
	"image"
	"image/color"

	"github.com/philipparndt/meshbake/pkg/geometry"
	"github.com/philipparndt/meshbake/pkg/off"
	"github.com/philipparndt/meshbake/pkg/pathgraph"
)

var (
	// DefaultMaterial is used for corners without a sampled color
	DefaultMaterial = color.NRGBA{R: 180, G: 180, B: 190, A: 255}
	// DefaultBackground fills pixels not covered by the mesh
	DefaultBackground = color.RGBA{R: 32, G: 32, B: 36, A: 255}
	// DefaultGraphColor draws path graph links and nodes
	DefaultGraphColor = color.RGBA{R: 255, G: 64, B: 32, A: 255}
)

// Scene is everything the renderer draws
type Scene struct {
	Mesh    *off.Mesh
	Normals []geometry.Vector3
	// Colors holds one color per face corner, parallel to Mesh.Faces
	Colors [][]color.NRGBA
	Graph  *pathgraph.Graph

	Material   color.NRGBA
	Background color.RGBA
	GraphColor color.RGBA

	graphPoints []geometry.Vector3
}

// NewScene prepares a mesh for rendering. colors may be nil, in which case
// the whole mesh uses the flat material color.
func NewScene(mesh *off.Mesh, colors [][]color.NRGBA) *Scene {
	return &Scene{
		Mesh:       mesh,
		Normals:    mesh.VertexNormals(),
		Colors:     colors,
		Material:   DefaultMaterial,
		Background: DefaultBackground,
		GraphColor: DefaultGraphColor,
	}
}

// SetGraph attaches a path graph overlay. Graph positions live in the unit
// cube the generator normalizes the mesh into, so they are scaled back onto
// the mesh bounding box.
func (s *Scene) SetGraph(g *pathgraph.Graph) {
	s.Graph = g
	s.graphPoints = nil
	if g == nil {
		return
	}

	unit := geometry.BoundingBox{Max: geometry.NewVector3(1, 1, 1)}
	toMesh := unit.MapInto(s.Mesh.BoundingBox())
	s.graphPoints = make([]geometry.Vector3, len(g.Positions))
	for i, p := range g.Positions {
		s.graphPoints[i] = toMesh(p)
	}
}

// GraphPoints returns the overlay node positions in mesh coordinates
func (s *Scene) GraphPoints() []geometry.Vector3 {
	return s.graphPoints
}

// cornerColor returns the color of corner k of face f
func (s *Scene) cornerColor(f, k int) color.NRGBA {
	if f < len(s.Colors) && k < len(s.Colors[f]) {
		return s.Colors[f][k]
	}
	return s.Material
}

// Render draws the scene from the camera's point of view
func (s *Scene) Render(camera *Camera, width, height int) *image.RGBA {
	fb := NewFrameBuffer(width, height, s.Background)
	if width <= 0 || height <= 0 {
		return fb.Color
	}
	w, h := float64(width), float64(height)

	light := DefaultLight(camera.ViewDirection())

	projected := make([]screenVertex, len(s.Mesh.Vertices))
	for i, v := range s.Mesh.Vertices {
		x, y, z := camera.Project(v, w, h)
		projected[i] = screenVertex{x: x, y: y, z: z}
	}

	for f, face := range s.Mesh.Faces {
		for _, tri := range off.FanTriangles(len(face)) {
			var corners [3]screenVertex
			visible := true
			for i, k := range tri {
				vertex := face[k]
				corner := projected[vertex]
				if corner.z <= NearPlane {
					visible = false
					break
				}
				shade := light.Shade(s.Normals[vertex])
				c := s.cornerColor(f, k)
				corner.r = float64(c.R) * shade
				corner.g = float64(c.G) * shade
				corner.b = float64(c.B) * shade
				corners[i] = corner
			}
			if visible {
				fillTriangle(fb, corners[0], corners[1], corners[2])
			}
		}
	}

	s.drawGraph(fb, camera)
	return fb.Color
}

func (s *Scene) drawGraph(fb *FrameBuffer, camera *Camera) {
	if s.Graph == nil {
		return
	}
	w, h := float64(fb.Width), float64(fb.Height)

	type point struct {
		x, y    float64
		visible bool
	}
	points := make([]point, len(s.graphPoints))
	for i, p := range s.graphPoints {
		x, y, z := camera.Project(p, w, h)
		points[i] = point{x: x, y: y, visible: z > NearPlane}
	}

	for _, link := range s.Graph.Links {
		a, b := points[link[0]], points[link[1]]
		if a.visible && b.visible {
			drawLine(fb, a.x, a.y, b.x, b.y, s.GraphColor)
		}
	}
	for _, p := range points {
		// off-screen markers are skipped before the int conversion
		if p.visible && p.x > -2 && p.x < w+1 && p.y > -2 && p.y < h+1 {
			fillSquare(fb, int(p.x), int(p.y), 1, s.GraphColor)
		}
	}
}
