// Package stl reads STL files far enough to use them as reference geometry:
// only facet vertex positions are kept.
package stl

import (
	"github.com/philipparndt/goobj/pkg/geometry"
)

// Model holds the vertices of an STL file, three per facet
type Model struct {
	Name     string
	Vertices []geometry.Vector3
}

// NewModel creates a new STL model
func NewModel(name string) *Model {
	return &Model{
		Name:     name,
		Vertices: make([]geometry.Vector3, 0),
	}
}

// AddFacet appends the three corners of a facet
func (m *Model) AddFacet(v1, v2, v3 geometry.Vector3) {
	m.Vertices = append(m.Vertices, v1, v2, v3)
}

// FacetCount returns the number of facets in the model
func (m *Model) FacetCount() int {
	return len(m.Vertices) / 3
}

// BoundingBox calculates the bounding box of the entire model
func (m *Model) BoundingBox() geometry.BoundingBox {
	return geometry.Bounds(m.Vertices)
}
