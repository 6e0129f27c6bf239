package geometry

import "math"

// BoundingBox represents an axis-aligned bounding box
type BoundingBox struct {
	Min Vector3
	Max Vector3
}

// NewBoundingBox creates an empty bounding box
func NewBoundingBox() BoundingBox {
	return BoundingBox{
		Min: Vector3{X: math.MaxFloat64, Y: math.MaxFloat64, Z: math.MaxFloat64},
		Max: Vector3{X: -math.MaxFloat64, Y: -math.MaxFloat64, Z: -math.MaxFloat64},
	}
}

// BoundsOf returns the bounding box of a point set
func BoundsOf(points []Vector3) BoundingBox {
	bbox := NewBoundingBox()
	for _, p := range points {
		bbox.Extend(p)
	}
	return bbox
}

// Extend expands the bounding box to include a point
func (b *BoundingBox) Extend(point Vector3) {
	b.Min = b.Min.Min(point)
	b.Max = b.Max.Max(point)
}

// Empty reports whether no point has been added
func (b BoundingBox) Empty() bool {
	return b.Min.X > b.Max.X
}

// Size returns the dimensions of the bounding box
func (b BoundingBox) Size() Vector3 {
	if b.Empty() {
		return Vector3{}
	}
	return b.Max.Sub(b.Min)
}

// Center returns the center point of the bounding box
func (b BoundingBox) Center() Vector3 {
	if b.Empty() {
		return Vector3{}
	}
	return b.Min.Add(b.Max).Mul(0.5)
}

// Diagonal returns the length of the bounding box diagonal
func (b BoundingBox) Diagonal() float64 {
	return b.Size().Length()
}

// Volume returns the volume of the bounding box
func (b BoundingBox) Volume() float64 {
	size := b.Size()
	return size.X * size.Y * size.Z
}

// MapInto returns a function mapping points of b onto target with a uniform
// scale, aligning the minimum corners. The largest extent of b is stretched
// to the largest extent of target.
func (b BoundingBox) MapInto(target BoundingBox) func(Vector3) Vector3 {
	from := b.Size().MaxComponent()
	to := target.Size().MaxComponent()
	scale := 1.0
	if from > 0 {
		scale = to / from
	}
	return func(p Vector3) Vector3 {
		return target.Min.Add(p.Sub(b.Min).Mul(scale))
	}
}
