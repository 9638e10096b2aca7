package analysis

import (
	"fmt"

	"github.com/philipparndt/goobj/pkg/geometry"
)

// Measurement describes the extent of a vertex set
type Measurement struct {
	VertexCount int
	BoundingBox geometry.BoundingBox
	Dimensions  geometry.Vector3 // width (X), length (Y), height (Z)
	Radius      float64          // largest distance from the origin
}

// Measure computes bounding box, dimensions and radius of the vertices
func Measure(vertices []geometry.Vector3) Measurement {
	bbox := geometry.Bounds(vertices)
	return Measurement{
		VertexCount: len(vertices),
		BoundingBox: bbox,
		Dimensions:  bbox.Size(),
		Radius:      geometry.MaxRadius(vertices),
	}
}

// Width returns the X extent
func (m Measurement) Width() float64 { return m.Dimensions.X }

// Length returns the Y extent
func (m Measurement) Length() float64 { return m.Dimensions.Y }

// Height returns the Z extent
func (m Measurement) Height() float64 { return m.Dimensions.Z }

// Diagonal returns the bounding box diagonal
func (m Measurement) Diagonal() float64 {
	return m.Dimensions.Length()
}

// FormatDimensions formats width, length and height the way the CLI prints them
func FormatDimensions(m Measurement) string {
	return fmt.Sprintf("width=%.6f, length=%.6f, height=%.6f", m.Width(), m.Length(), m.Height())
}

// FormatRange formats the extent of the box along one axis
func FormatRange(b geometry.BoundingBox, axis geometry.Axis) string {
	return fmt.Sprintf("%.6f to %.6f", b.Min.Component(axis), b.Max.Component(axis))
}

// FormatMeasurement formats a measurement with appropriate units
func FormatMeasurement(value float64, unit string) string {
	if unit == "" {
		unit = "units"
	}
	return fmt.Sprintf("%.6f %s", value, unit)
}

// FormatVector formats a 3D vector
func FormatVector(v geometry.Vector3) string {
	return fmt.Sprintf("(%.6f, %.6f, %.6f)", v.X, v.Y, v.Z)
}
