package off

import (
	"github.com/philipparndt/meshbake/pkg/geometry"
)

// Mesh is an indexed polygon mesh as stored in an OFF file
type Mesh struct {
	Name     string
	Vertices []geometry.Vector3
	// Faces hold vertex indices in winding order, at least 3 per face
	Faces [][]int
}

// NewMesh creates an empty mesh
func NewMesh(name string) *Mesh {
	return &Mesh{
		Name:     name,
		Vertices: make([]geometry.Vector3, 0),
		Faces:    make([][]int, 0),
	}
}

// AddVertex appends a vertex and returns its index
func (m *Mesh) AddVertex(v geometry.Vector3) int {
	m.Vertices = append(m.Vertices, v)
	return len(m.Vertices) - 1
}

// AddFace appends a face
func (m *Mesh) AddFace(indices ...int) {
	m.Faces = append(m.Faces, indices)
}

// FanTriangles splits a face with n corners into n-2 triangles.
// The result holds corner positions within the face, not vertex indices.
func FanTriangles(n int) [][3]int {
	if n < 3 {
		return nil
	}
	tris := make([][3]int, 0, n-2)
	for i := 1; i < n-1; i++ {
		tris = append(tris, [3]int{0, i, i + 1})
	}
	return tris
}

// TriangleCount returns the number of triangles after fan triangulation
func (m *Mesh) TriangleCount() int {
	count := 0
	for _, face := range m.Faces {
		if len(face) >= 3 {
			count += len(face) - 2
		}
	}
	return count
}

// Triangles returns all faces as triangles
func (m *Mesh) Triangles() []geometry.Triangle {
	triangles := make([]geometry.Triangle, 0, m.TriangleCount())
	for _, face := range m.Faces {
		for _, tri := range FanTriangles(len(face)) {
			triangles = append(triangles, geometry.NewTriangle(
				m.Vertices[face[tri[0]]],
				m.Vertices[face[tri[1]]],
				m.Vertices[face[tri[2]]],
			))
		}
	}
	return triangles
}

// BoundingBox calculates the bounding box of all vertices
func (m *Mesh) BoundingBox() geometry.BoundingBox {
	return geometry.BoundsOf(m.Vertices)
}

// SurfaceArea calculates the total surface area of the mesh
func (m *Mesh) SurfaceArea() float64 {
	total := 0.0
	for _, tri := range m.Triangles() {
		total += tri.Area()
	}
	return total
}

// FaceNormals returns one unit normal per face, summed over its fan
// triangles. Degenerate faces get the zero vector.
func (m *Mesh) FaceNormals() []geometry.Vector3 {
	normals := make([]geometry.Vector3, len(m.Faces))
	for f, face := range m.Faces {
		var sum geometry.Vector3
		for _, tri := range FanTriangles(len(face)) {
			sum = sum.Add(geometry.NewTriangle(
				m.Vertices[face[tri[0]]],
				m.Vertices[face[tri[1]]],
				m.Vertices[face[tri[2]]],
			).AreaVector())
		}
		normals[f] = sum.Normalize()
	}
	return normals
}

// VertexNormals computes one unit normal per vertex by summing the
// area-weighted normals of the adjacent faces. Vertices without faces
// get the zero vector.
func (m *Mesh) VertexNormals() []geometry.Vector3 {
	normals := make([]geometry.Vector3, len(m.Vertices))
	for _, face := range m.Faces {
		for _, tri := range FanTriangles(len(face)) {
			a, b, c := face[tri[0]], face[tri[1]], face[tri[2]]
			weighted := geometry.NewTriangle(m.Vertices[a], m.Vertices[b], m.Vertices[c]).AreaVector()
			normals[a] = normals[a].Add(weighted)
			normals[b] = normals[b].Add(weighted)
			normals[c] = normals[c].Add(weighted)
		}
	}
	for i := range normals {
		normals[i] = normals[i].Normalize()
	}
	return normals
}

// Normalize moves the mesh into the unit cube: the minimum corner goes to
// the origin and the largest extent is scaled to 1, keeping proportions.
// This is the frame the graph generator writes its positions in.
func (m *Mesh) Normalize() {
	unit := geometry.BoundingBox{Max: geometry.NewVector3(1, 1, 1)}
	toUnit := m.BoundingBox().MapInto(unit)
	for i, v := range m.Vertices {
		m.Vertices[i] = toUnit(v)
	}
}
