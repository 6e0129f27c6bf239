package geometry

import (
	"math"
	"testing"
)

func TestTriangleArea(t *testing.T) {
	// Create a right triangle with sides 3, 4, 5
	tri := NewTriangle(
		NewVector3(0, 0, 0),
		NewVector3(3, 0, 0),
		NewVector3(0, 4, 0),
	)

	area := tri.Area()
	expected := 6.0 // (3 * 4) / 2 = 6

	if math.Abs(area-expected) > 1e-10 {
		t.Errorf("Area failed: expected %v, got %v", expected, area)
	}
}

func TestTriangleEdgeLengths(t *testing.T) {
	tri := NewTriangle(
		NewVector3(0, 0, 0),
		NewVector3(3, 0, 0),
		NewVector3(0, 4, 0),
	)

	lengths := tri.EdgeLengths()

	// Expected lengths: 3, 5, 4 (Pythagorean triple)
	if math.Abs(lengths[0]-3.0) > 1e-10 {
		t.Errorf("Edge 0 length failed: expected 3.0, got %v", lengths[0])
	}
	if math.Abs(lengths[1]-5.0) > 1e-10 {
		t.Errorf("Edge 1 length failed: expected 5.0, got %v", lengths[1])
	}
	if math.Abs(lengths[2]-4.0) > 1e-10 {
		t.Errorf("Edge 2 length failed: expected 4.0, got %v", lengths[2])
	}
}

func TestTrianglePerimeter(t *testing.T) {
	tri := NewTriangle(
		NewVector3(0, 0, 0),
		NewVector3(3, 0, 0),
		NewVector3(0, 4, 0),
	)

	perimeter := tri.Perimeter()
	expected := 12.0 // 3 + 4 + 5 = 12

	if math.Abs(perimeter-expected) > 1e-10 {
		t.Errorf("Perimeter failed: expected %v, got %v", expected, perimeter)
	}
}

func TestTriangleCenter(t *testing.T) {
	tri := NewTriangle(
		NewVector3(0, 0, 0),
		NewVector3(3, 0, 0),
		NewVector3(0, 3, 0),
	)

	center := tri.Center()
	expected := NewVector3(1, 1, 0)

	if center != expected {
		t.Errorf("Center failed: expected %v, got %v", expected, center)
	}
}

func TestTriangleNormal(t *testing.T) {
	tri := NewTriangle(
		NewVector3(0, 0, 0),
		NewVector3(1, 0, 0),
		NewVector3(0, 1, 0),
	)

	normal := tri.Normal()
	expected := NewVector3(0, 0, 1)

	if normal != expected {
		t.Errorf("Normal failed: expected %v, got %v", expected, normal)
	}

	// Reversed winding flips the normal
	flipped := NewTriangle(tri.V1, tri.V3, tri.V2).Normal()
	if flipped != expected.Mul(-1) {
		t.Errorf("Normal failed for reversed winding: got %v", flipped)
	}
}

func TestDegenerateTriangleNormal(t *testing.T) {
	tri := NewTriangle(
		NewVector3(0, 0, 0),
		NewVector3(1, 1, 1),
		NewVector3(2, 2, 2),
	)

	if n := tri.Normal(); n != (Vector3{}) {
		t.Errorf("Normal of collinear triangle should be zero, got %v", n)
	}
}
