package main

import (
	"fmt"
	"path/filepath"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/philipparndt/meshbake/internal/config"
	"github.com/philipparndt/meshbake/pkg/analysis"
	"github.com/philipparndt/meshbake/pkg/off"
	"github.com/philipparndt/meshbake/pkg/pathgraph"
	"github.com/philipparndt/meshbake/pkg/texture"
	"github.com/philipparndt/meshbake/pkg/viewer"
	"github.com/philipparndt/meshbake/pkg/watcher"
	"github.com/spf13/cobra"
)

var viewFlags struct {
	texture     string
	flat        bool
	graph       string
	out         string
	size        int
	supersample int
	watch       bool
	datasetDir  string
	metadata    string
}

var viewCmd = &cobra.Command{
	Use:   "view [object_id|file.off]",
	Short: "Render a mesh colored by planar texture sampling",
	Long: `Load an OFF mesh, color every face corner by sampling the texture at the
vertex's planar (x, y) position and show it in a window.

Without an argument the configured sample object is shown. Object ids are
looked up in the dataset metadata. With --out the view is rendered to a
.png, .jpg or .webp file instead of opening a window.`,
	Example: `  meshbake view
  meshbake view chair_0001 --path Dataset/ModelNet40-path-3/chair/train/chair_0001.path
  meshbake view mesh.off --texture uv.tga --out mesh.webp --size 512`,
	Args: cobra.MaximumNArgs(1),
	RunE: runView,
}

func init() {
	viewCmd.Flags().StringVarP(&viewFlags.texture, "texture", "t", "", "texture image (default "+config.DefaultTexture+")")
	viewCmd.Flags().BoolVar(&viewFlags.flat, "flat", false, "use a flat material instead of the texture")
	viewCmd.Flags().StringVarP(&viewFlags.graph, "path", "p", "", "overlay a .path graph")
	viewCmd.Flags().StringVarP(&viewFlags.out, "out", "o", "", "render to an image file instead of a window")
	viewCmd.Flags().IntVarP(&viewFlags.size, "size", "s", 0, "image or window size in pixels")
	viewCmd.Flags().IntVar(&viewFlags.supersample, "supersample", 0, "render oversampling factor")
	viewCmd.Flags().BoolVarP(&viewFlags.watch, "watch", "w", false, "reload when the mesh, texture or graph changes")
	viewCmd.Flags().StringVar(&viewFlags.datasetDir, "dataset-dir", "", "dataset base directory (default Dataset)")
	viewCmd.Flags().StringVar(&viewFlags.metadata, "metadata", "", "metadata CSV used to resolve object ids")
	rootCmd.AddCommand(viewCmd)
}

// sceneSource names the files a scene is built from
type sceneSource struct {
	mesh    string
	texture string // empty for a flat material
	graph   string // optional
}

func (s sceneSource) files() []string {
	files := []string{s.mesh}
	if s.texture != "" {
		files = append(files, s.texture)
	}
	if s.graph != "" {
		files = append(files, s.graph)
	}
	return files
}

// load reads all files and assembles the scene
func (s sceneSource) load() (*viewer.Scene, *off.Mesh, error) {
	mesh, err := off.Parse(s.mesh)
	if err != nil {
		return nil, nil, err
	}

	var scene *viewer.Scene
	if s.texture != "" {
		tex, err := texture.Load(s.texture)
		if err != nil {
			return nil, nil, err
		}
		scene = viewer.NewScene(mesh, texture.FaceColors(mesh, tex))
	} else {
		scene = viewer.NewScene(mesh, nil)
	}

	if s.graph != "" {
		graph, err := pathgraph.Parse(s.graph)
		if err != nil {
			return nil, nil, err
		}
		scene.SetGraph(graph)
	}
	return scene, mesh, nil
}

func runView(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(config.Flags{
		DatasetDir:  viewFlags.datasetDir,
		Metadata:    viewFlags.metadata,
		Texture:     viewFlags.texture,
		RenderSize:  viewFlags.size,
		Supersample: viewFlags.supersample,
	})
	if err != nil {
		return err
	}

	target := cfg.Sample
	if len(args) == 1 {
		target = args[0]
	}
	meshPath, err := resolveMesh(cfg, target)
	if err != nil {
		return err
	}

	source := sceneSource{mesh: meshPath, texture: cfg.Texture, graph: viewFlags.graph}
	if viewFlags.flat {
		source.texture = ""
	}

	scene, mesh, err := source.load()
	if err != nil {
		return err
	}

	if viewFlags.out != "" {
		camera := viewer.NewCamera(mesh.BoundingBox())
		img := scene.RenderSupersampled(camera, cfg.RenderSize, cfg.RenderSize, cfg.Supersample)
		if err := viewer.SaveImage(viewFlags.out, img); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", viewFlags.out)
		return nil
	}

	return showWindow(source, scene, mesh, cfg)
}

func summary(mesh *off.Mesh) string {
	result := analysis.AnalyzeMesh(mesh)
	return fmt.Sprintf("%s  vertices: %d  faces: %d  edges: %d  size: %s",
		mesh.Name, result.VertexCount, result.FaceCount, result.EdgeCount,
		analysis.FormatVector(result.Dimensions))
}

func showWindow(source sceneSource, scene *viewer.Scene, mesh *off.Mesh, cfg config.Config) error {
	a := app.New()
	w := a.NewWindow("meshbake - " + filepath.Base(source.mesh))

	view := viewer.NewMeshView(scene)
	view.SetSupersample(cfg.Supersample)
	status := widget.NewLabel(summary(mesh))

	resetButton := widget.NewButton("Reset View", view.ResetCamera)
	saveButton := widget.NewButton("Save Image", func() {
		dialog.ShowFileSave(func(writer fyne.URIWriteCloser, err error) {
			if err != nil {
				dialog.ShowError(err, w)
				return
			}
			if writer == nil {
				return
			}
			path := writer.URI().Path()
			writer.Close()
			if err := viewer.SaveImage(path, view.Snapshot(cfg.RenderSize, cfg.RenderSize)); err != nil {
				dialog.ShowError(err, w)
				return
			}
			status.SetText("Saved " + path)
		}, w)
	})

	toolbar := container.NewHBox(resetButton, saveButton)
	w.SetContent(container.NewBorder(nil, container.NewBorder(nil, nil, nil, toolbar, status), nil, nil, view))

	if viewFlags.watch {
		fw, err := watcher.New(200 * time.Millisecond)
		if err != nil {
			return err
		}
		defer fw.Close()

		err = fw.Watch(source.files(), func(changed string) {
			scene, mesh, err := source.load()
			fyne.Do(func() {
				if err != nil {
					status.SetText(fmt.Sprintf("Reload of %s failed: %v", filepath.Base(changed), err))
					return
				}
				view.SetScene(scene)
				status.SetText(summary(mesh))
			})
		})
		if err != nil {
			return err
		}
		fw.Start()
	}

	w.Resize(fyne.NewSize(float32(cfg.RenderSize), float32(cfg.RenderSize)))
	w.ShowAndRun()
	return nil
}
