// Package obj reads and writes Wavefront OBJ files at the granularity needed
// to transform geometry: vertex positions are parsed, every other line is
// kept as opaque text and written back unchanged in its original position.
package obj

import (
	"fmt"

	"github.com/philipparndt/goobj/pkg/geometry"
)

// Kind distinguishes the two kinds of line record.
type Kind uint8

const (
	// KindOpaque is any line that is passed through verbatim.
	KindOpaque Kind = iota
	// KindVertex is a "v x y z" line whose position lives in Document.Vertices.
	KindVertex
)

// Record is one line of an OBJ document.
// Vertex records carry Index into the vertex slice, opaque records carry Text.
type Record struct {
	Kind  Kind
	Index int
	Text  string
}

// VertexRecord returns a record referring to vertex i
func VertexRecord(i int) Record {
	return Record{Kind: KindVertex, Index: i}
}

// OpaqueRecord returns a record holding a verbatim line
func OpaqueRecord(text string) Record {
	return Record{Kind: KindOpaque, Text: text}
}

func (r Record) String() string {
	if r.Kind == KindVertex {
		return fmt.Sprintf("Vertex(%d)", r.Index)
	}
	return fmt.Sprintf("Opaque(%q)", r.Text)
}

// Document is a parsed OBJ file: the line skeleton plus the vertex positions
// it refers to. Transforms replace Vertices and leave Records alone.
type Document struct {
	Vertices []geometry.Vector3
	Records  []Record
}

// WithVertices returns a copy of the document that uses the given vertices.
// The record skeleton is shared, it is never modified after parsing.
func (d *Document) WithVertices(vertices []geometry.Vector3) *Document {
	return &Document{
		Vertices: vertices,
		Records:  d.Records,
	}
}

// VertexCount returns the number of vertex records
func (d *Document) VertexCount() int {
	return len(d.Vertices)
}

// LineCount returns the number of lines the document will be written as
func (d *Document) LineCount() int {
	return len(d.Records)
}
