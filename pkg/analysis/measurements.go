package analysis

import (
	"fmt"
	"math"
	"sort"

	"github.com/philipparndt/meshbake/pkg/geometry"
	"github.com/philipparndt/meshbake/pkg/off"
)

// EdgeInfo describes one polygon edge of the mesh
type EdgeInfo struct {
	A, B   int // vertex indices, A < B
	Start  geometry.Vector3
	End    geometry.Vector3
	Length float64
	Faces  int // number of faces sharing the edge
}

// MeasurementResult contains various measurements of a mesh
type MeasurementResult struct {
	BoundingBox   geometry.BoundingBox
	Dimensions    geometry.Vector3
	Volume        float64 // of the bounding box
	SurfaceArea   float64
	VertexCount   int
	FaceCount     int
	TriangleCount int
	EdgeCount     int
	BoundaryEdges int // edges used by exactly one face
	MinEdgeLength float64
	MaxEdgeLength float64
	AvgEdgeLength float64
	AllEdges      []EdgeInfo
}

type edgeKey struct{ a, b int }

func newEdgeKey(a, b int) edgeKey {
	if a > b {
		a, b = b, a
	}
	return edgeKey{a, b}
}

// AnalyzeMesh measures a mesh. Each polygon edge is counted once no matter
// how many faces share it; fan diagonals are not edges.
func AnalyzeMesh(mesh *off.Mesh) *MeasurementResult {
	result := &MeasurementResult{
		BoundingBox:   mesh.BoundingBox(),
		SurfaceArea:   mesh.SurfaceArea(),
		VertexCount:   len(mesh.Vertices),
		FaceCount:     len(mesh.Faces),
		TriangleCount: mesh.TriangleCount(),
		AllEdges:      make([]EdgeInfo, 0),
	}

	result.Dimensions = result.BoundingBox.Size()
	result.Volume = result.BoundingBox.Volume()

	index := make(map[edgeKey]int)
	for _, face := range mesh.Faces {
		for i := range face {
			key := newEdgeKey(face[i], face[(i+1)%len(face)])
			if at, ok := index[key]; ok {
				result.AllEdges[at].Faces++
				continue
			}
			start, end := mesh.Vertices[key.a], mesh.Vertices[key.b]
			index[key] = len(result.AllEdges)
			result.AllEdges = append(result.AllEdges, EdgeInfo{
				A:      key.a,
				B:      key.b,
				Start:  start,
				End:    end,
				Length: start.Distance(end),
				Faces:  1,
			})
		}
	}

	result.EdgeCount = len(result.AllEdges)
	if result.EdgeCount == 0 {
		return result
	}

	minLength := math.MaxFloat64
	maxLength := 0.0
	totalLength := 0.0
	for _, edge := range result.AllEdges {
		totalLength += edge.Length
		minLength = math.Min(minLength, edge.Length)
		maxLength = math.Max(maxLength, edge.Length)
		if edge.Faces == 1 {
			result.BoundaryEdges++
		}
	}
	result.MinEdgeLength = minLength
	result.MaxEdgeLength = maxLength
	result.AvgEdgeLength = totalLength / float64(result.EdgeCount)

	return result
}

// Closed reports whether every edge is shared by at least two faces
func (r *MeasurementResult) Closed() bool {
	return r.EdgeCount > 0 && r.BoundaryEdges == 0
}

// FindLongestEdges returns the N longest edges in the mesh
func FindLongestEdges(result *MeasurementResult, count int) []EdgeInfo {
	edges := make([]EdgeInfo, len(result.AllEdges))
	copy(edges, result.AllEdges)

	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Length > edges[j].Length
	})

	count = max(0, min(count, len(edges)))

	return edges[:count]
}

// FindShortestEdges returns the N shortest edges in the mesh
func FindShortestEdges(result *MeasurementResult, count int) []EdgeInfo {
	edges := make([]EdgeInfo, len(result.AllEdges))
	copy(edges, result.AllEdges)

	sort.SliceStable(edges, func(i, j int) bool {
		return edges[i].Length < edges[j].Length
	})

	count = max(0, min(count, len(edges)))

	return edges[:count]
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}
