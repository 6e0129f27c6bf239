package viewer

import (
	"image"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// MeshView displays a Scene; dragging rotates and scrolling zooms
type MeshView struct {
	widget.BaseWidget

	mu          sync.Mutex
	scene       *Scene
	camera      *Camera
	raster      *canvas.Raster
	supersample int
}

// NewMeshView creates a view framing the scene's mesh
func NewMeshView(scene *Scene) *MeshView {
	v := &MeshView{
		scene:       scene,
		camera:      NewCamera(scene.Mesh.BoundingBox()),
		supersample: 1,
	}
	v.raster = canvas.NewRaster(v.draw)
	v.raster.SetMinSize(fyne.NewSize(400, 400))
	v.ExtendBaseWidget(v)
	return v
}

// CreateRenderer creates the renderer for the widget
func (v *MeshView) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(v.raster)
}

func (v *MeshView) draw(w, h int) image.Image {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.scene.RenderSupersampled(v.camera, w, h, v.supersample)
}

// SetSupersample sets the render oversampling factor
func (v *MeshView) SetSupersample(factor int) {
	v.mu.Lock()
	if factor < 1 {
		factor = 1
	}
	v.supersample = factor
	v.mu.Unlock()
	v.raster.Refresh()
}

// SetScene replaces the displayed scene. The camera is kept so that a
// reloaded mesh keeps the current view. Must run on the fyne goroutine.
func (v *MeshView) SetScene(scene *Scene) {
	v.mu.Lock()
	v.scene = scene
	v.mu.Unlock()
	v.raster.Refresh()
}

// ResetCamera frames the current mesh again
func (v *MeshView) ResetCamera() {
	v.mu.Lock()
	v.camera = NewCamera(v.scene.Mesh.BoundingBox())
	v.mu.Unlock()
	v.raster.Refresh()
}

// Snapshot renders the current view at the given size
func (v *MeshView) Snapshot(width, height int) *image.RGBA {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.scene.RenderSupersampled(v.camera, width, height, v.supersample)
}

// Dragged handles mouse drag events for rotation
func (v *MeshView) Dragged(event *fyne.DragEvent) {
	v.mu.Lock()
	v.camera.Rotate(float64(-event.Dragged.DY)*0.01, float64(-event.Dragged.DX)*0.01)
	v.mu.Unlock()
	v.raster.Refresh()
}

// DragEnd handles the end of a drag event
func (v *MeshView) DragEnd() {}

// Scrolled handles scroll events for zooming
func (v *MeshView) Scrolled(event *fyne.ScrollEvent) {
	v.mu.Lock()
	v.camera.Zoom(-float64(event.Scrolled.DY) * 0.001)
	v.mu.Unlock()
	v.raster.Refresh()
}
