package geometry

import "math"

// BoundingBox represents an axis-aligned bounding box
type BoundingBox struct {
	Min Vector3
	Max Vector3
}

// NewBoundingBox creates an empty bounding box that any point will extend
func NewBoundingBox() BoundingBox {
	return BoundingBox{
		Min: Vector3{X: math.MaxFloat64, Y: math.MaxFloat64, Z: math.MaxFloat64},
		Max: Vector3{X: -math.MaxFloat64, Y: -math.MaxFloat64, Z: -math.MaxFloat64},
	}
}

// Bounds computes the bounding box of a vertex set.
// An empty set yields the zero box.
func Bounds(vertices []Vector3) BoundingBox {
	if len(vertices) == 0 {
		return BoundingBox{}
	}
	bbox := NewBoundingBox()
	for _, v := range vertices {
		bbox.Extend(v)
	}
	return bbox
}

// Extend expands the bounding box to include a point
func (b *BoundingBox) Extend(point Vector3) {
	b.Min = b.Min.Min(point)
	b.Max = b.Max.Max(point)
}

// Size returns width (X), length (Y) and height (Z) of the box
func (b BoundingBox) Size() Vector3 {
	return b.Max.Sub(b.Min)
}

// Center returns the center point of the bounding box
func (b BoundingBox) Center() Vector3 {
	return Vector3{
		X: (b.Min.X + b.Max.X) / 2.0,
		Y: (b.Min.Y + b.Max.Y) / 2.0,
		Z: (b.Min.Z + b.Max.Z) / 2.0,
	}
}

// Diagonal returns the length of the bounding box diagonal
func (b BoundingBox) Diagonal() float64 {
	return b.Size().Length()
}

// MaxRadius returns the largest distance from the origin to any vertex
func MaxRadius(vertices []Vector3) float64 {
	radius := 0.0
	for _, v := range vertices {
		if r := v.Length(); r > radius {
			radius = r
		}
	}
	return radius
}
