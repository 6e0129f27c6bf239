package viewer

import (
	"image/color"
	"math"
	"testing"
	"time"

	"github.com/philipparndt/meshbake/pkg/geometry"
	"github.com/philipparndt/meshbake/pkg/off"
	"github.com/philipparndt/meshbake/pkg/pathgraph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	red   = color.NRGBA{R: 255, A: 255}
	green = color.NRGBA{G: 255, A: 255}
	blue  = color.NRGBA{B: 255, A: 255}
)

// addQuad adds a square of half size s at depth z facing +Z
func addQuad(mesh *off.Mesh, s, z float64) {
	a := mesh.AddVertex(geometry.NewVector3(-s, -s, z))
	b := mesh.AddVertex(geometry.NewVector3(s, -s, z))
	c := mesh.AddVertex(geometry.NewVector3(s, s, z))
	d := mesh.AddVertex(geometry.NewVector3(-s, s, z))
	mesh.AddFace(a, b, c, d)
}

func rgba(c color.NRGBA) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

func TestRenderFlatMaterial(t *testing.T) {
	mesh := off.NewMesh("quad")
	addQuad(mesh, 1, 0)

	scene := NewScene(mesh, nil)
	scene.Material = red
	img := scene.Render(NewCamera(mesh.BoundingBox()), 100, 100)

	require.Equal(t, 100, img.Bounds().Dx())
	assert.Equal(t, rgba(red), img.RGBAAt(50, 50), "facing the light, shade is 1")
	assert.Equal(t, DefaultBackground, img.RGBAAt(0, 0))
	assert.Equal(t, DefaultBackground, img.RGBAAt(99, 99))
}

func TestRenderCornerColors(t *testing.T) {
	mesh := off.NewMesh("quad")
	addQuad(mesh, 1, 0)

	scene := NewScene(mesh, [][]color.NRGBA{{blue, blue, blue, blue}})
	img := scene.Render(NewCamera(mesh.BoundingBox()), 64, 64)
	assert.Equal(t, rgba(blue), img.RGBAAt(32, 32))
}

func TestRenderInterpolatesColors(t *testing.T) {
	mesh := off.NewMesh("quad")
	addQuad(mesh, 1, 0)

	// left corners red, right corners green
	scene := NewScene(mesh, [][]color.NRGBA{{red, green, green, red}})
	img := scene.Render(NewCamera(mesh.BoundingBox()), 100, 100)

	left := img.RGBAAt(35, 50)
	right := img.RGBAAt(65, 50)
	assert.Greater(t, left.R, left.G)
	assert.Greater(t, right.G, right.R)
}

func TestRenderMissingColorsFallBack(t *testing.T) {
	mesh := off.NewMesh("quads")
	addQuad(mesh, 1, 0)

	scene := NewScene(mesh, [][]color.NRGBA{{green}})
	scene.Material = red
	img := scene.Render(NewCamera(mesh.BoundingBox()), 100, 100)

	// the quad's first triangle uses corners 0, 1, 2 and the second 0, 2, 3;
	// corner 0 is green, the others fall back to red
	center := img.RGBAAt(50, 50)
	assert.NotZero(t, center.R)
	assert.NotZero(t, center.G)
}

func TestRenderDepthOrder(t *testing.T) {
	mesh := off.NewMesh("stack")
	addQuad(mesh, 0.5, 0.5) // near, drawn first
	addQuad(mesh, 1, 0)     // far

	scene := NewScene(mesh, [][]color.NRGBA{
		{green, green, green, green},
		{red, red, red, red},
	})
	img := scene.Render(NewCamera(mesh.BoundingBox()), 100, 100)

	assert.Equal(t, rgba(green), img.RGBAAt(50, 50))
	assert.Equal(t, rgba(red), img.RGBAAt(50, 30))
}

func TestRenderEmpty(t *testing.T) {
	scene := NewScene(off.NewMesh("empty"), nil)
	img := scene.Render(NewCamera(geometry.NewBoundingBox()), 8, 8)
	assert.Equal(t, DefaultBackground, img.RGBAAt(4, 4))

	img = scene.Render(NewCamera(geometry.NewBoundingBox()), 0, 0)
	assert.True(t, img.Bounds().Empty())
}

func TestSetGraphMapsUnitCube(t *testing.T) {
	mesh := off.NewMesh("quad")
	addQuad(mesh, 1, 0)

	scene := NewScene(mesh, nil)
	scene.SetGraph(&pathgraph.Graph{
		Positions: []geometry.Vector3{
			geometry.NewVector3(0, 0.5, 1),
			geometry.NewVector3(1, 0.5, 1),
		},
		Links: [][2]int{{0, 1}},
	})

	points := scene.GraphPoints()
	require.Len(t, points, 2)
	assert.Equal(t, geometry.NewVector3(-1, 0, 2), points[0])
	assert.Equal(t, geometry.NewVector3(1, 0, 2), points[1])

	img := scene.Render(NewCamera(mesh.BoundingBox()), 100, 100)
	assert.Equal(t, DefaultGraphColor, img.RGBAAt(50, 50))

	scene.SetGraph(nil)
	assert.Empty(t, scene.GraphPoints())
}

func TestRenderGraphWithCameraAtNode(t *testing.T) {
	mesh := off.NewMesh("plate")
	addQuad(mesh, 5000, 0)

	links := make([][2]int, 500)
	for i := range links {
		links[i] = [2]int{0, 1}
	}
	scene := NewScene(mesh, nil)
	scene.SetGraph(&pathgraph.Graph{
		Positions: []geometry.Vector3{
			geometry.NewVector3(0.5, 0.5, 0),
			geometry.NewVector3(1, 1, 0),
		},
		Links: links,
	})
	points := scene.GraphPoints()
	require.Equal(t, geometry.NewVector3(0, 0, 0), points[0])

	// just past the near plane: the far node projects ~1e8 pixels away
	camera := &Camera{
		Position: geometry.NewVector3(0, 0, 0.011),
		Target:   geometry.NewVector3(0, 0, -1),
		Up:       geometry.NewVector3(0, 1, 0),
		FOV:      math.Pi / 4,
	}

	start := time.Now()
	img := scene.Render(camera, 200, 200)
	assert.Less(t, time.Since(start), 2*time.Second)

	assert.Equal(t, DefaultGraphColor, img.RGBAAt(100, 100))
	assert.Equal(t, DefaultGraphColor, img.RGBAAt(150, 50))
}

func TestRenderSupersampled(t *testing.T) {
	mesh := off.NewMesh("quad")
	addQuad(mesh, 1, 0)

	scene := NewScene(mesh, nil)
	scene.Material = red
	img := scene.RenderSupersampled(NewCamera(mesh.BoundingBox()), 50, 40, 3)

	assert.Equal(t, 50, img.Bounds().Dx())
	assert.Equal(t, 40, img.Bounds().Dy())
	center := img.RGBAAt(25, 20)
	assert.InDelta(t, 255, int(center.R), 2)
	assert.InDelta(t, 0, int(center.G), 2)
}

func TestLightShadeIsDoubleSided(t *testing.T) {
	light := DefaultLight(geometry.NewVector3(0, 0, 2))

	assert.InDelta(t, 1.0, light.Shade(geometry.NewVector3(0, 0, 1)), 1e-9)
	assert.InDelta(t, 1.0, light.Shade(geometry.NewVector3(0, 0, -1)), 1e-9)
	assert.InDelta(t, light.Ambient, light.Shade(geometry.NewVector3(1, 0, 0)), 1e-9)
}
