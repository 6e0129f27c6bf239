package geometry

// Triangle is a triangular facet given by its corners in winding order
type Triangle struct {
	V1, V2, V3 Vector3
}

// NewTriangle creates a new triangle
func NewTriangle(v1, v2, v3 Vector3) Triangle {
	return Triangle{V1: v1, V2: v2, V3: v3}
}

// AreaVector returns the cross product of the two edges from V1.
// Its length is twice the area and its direction is the face normal.
func (t Triangle) AreaVector() Vector3 {
	return t.V2.Sub(t.V1).Cross(t.V3.Sub(t.V1))
}

// Normal computes the unit normal from the winding order
func (t Triangle) Normal() Vector3 {
	return t.AreaVector().Normalize()
}

// Area returns the surface area of the triangle
func (t Triangle) Area() float64 {
	return t.AreaVector().Length() / 2.0
}

// EdgeLengths returns the lengths of all three edges
func (t Triangle) EdgeLengths() [3]float64 {
	return [3]float64{
		t.V1.Distance(t.V2),
		t.V2.Distance(t.V3),
		t.V3.Distance(t.V1),
	}
}

// Perimeter returns the total length of all edges
func (t Triangle) Perimeter() float64 {
	lengths := t.EdgeLengths()
	return lengths[0] + lengths[1] + lengths[2]
}

// Center returns the centroid of the triangle
func (t Triangle) Center() Vector3 {
	sum := t.V1.Add(t.V2).Add(t.V3)
	return Vector3{X: sum.X / 3.0, Y: sum.Y / 3.0, Z: sum.Z / 3.0}
}
