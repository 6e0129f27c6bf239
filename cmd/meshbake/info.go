package main

import (
	"fmt"

	"github.com/philipparndt/meshbake/internal/config"
	"github.com/philipparndt/meshbake/pkg/analysis"
	"github.com/philipparndt/meshbake/pkg/off"
	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info <object_id|file.off>",
	Short: "Display general information about an OFF mesh",
	Long:  "Show vertex, face and edge counts, surface area, bounding box and edge length statistics.",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(config.Flags{})
	if err != nil {
		return err
	}
	filename, err := resolveMesh(cfg, args[0])
	if err != nil {
		return err
	}

	mesh, err := off.Parse(filename)
	if err != nil {
		return err
	}

	result := analysis.AnalyzeMesh(mesh)
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "OFF Mesh Information")
	fmt.Fprintln(out, "====================")
	fmt.Fprintf(out, "Name: %s\n", mesh.Name)
	fmt.Fprintf(out, "File: %s\n\n", filename)

	fmt.Fprintln(out, "Mesh Statistics:")
	fmt.Fprintf(out, "  Vertices: %d\n", result.VertexCount)
	fmt.Fprintf(out, "  Faces: %d\n", result.FaceCount)
	fmt.Fprintf(out, "  Triangles: %d\n", result.TriangleCount)
	fmt.Fprintf(out, "  Edges: %d (%d boundary)\n", result.EdgeCount, result.BoundaryEdges)
	fmt.Fprintf(out, "  Closed: %t\n", result.Closed())
	fmt.Fprintf(out, "  Surface Area: %.6f square units\n\n", result.SurfaceArea)

	fmt.Fprintln(out, "Bounding Box:")
	fmt.Fprintf(out, "  Min: %s\n", analysis.FormatVector(result.BoundingBox.Min))
	fmt.Fprintf(out, "  Max: %s\n", analysis.FormatVector(result.BoundingBox.Max))
	fmt.Fprintf(out, "  Center: %s\n\n", analysis.FormatVector(result.BoundingBox.Center()))

	fmt.Fprintln(out, "Dimensions:")
	fmt.Fprintf(out, "  Width (X): %.6f units\n", result.Dimensions.X)
	fmt.Fprintf(out, "  Height (Y): %.6f units\n", result.Dimensions.Y)
	fmt.Fprintf(out, "  Depth (Z): %.6f units\n", result.Dimensions.Z)
	fmt.Fprintf(out, "  Diagonal: %.6f units\n", result.BoundingBox.Diagonal())
	fmt.Fprintf(out, "  Volume: %.6f cubic units\n\n", result.Volume)

	fmt.Fprintln(out, "Edge Lengths:")
	fmt.Fprintf(out, "  Minimum: %.6f units\n", result.MinEdgeLength)
	fmt.Fprintf(out, "  Maximum: %.6f units\n", result.MaxEdgeLength)
	fmt.Fprintf(out, "  Average: %.6f units\n", result.AvgEdgeLength)
	return nil
}
