package obj

import (
	"errors"
	"fmt"
)

// Sentinel errors for reading and writing OBJ documents.
var (
	// ErrInputNotFound is returned when the source file cannot be opened or read.
	ErrInputNotFound = errors.New("input not found")

	// ErrMalformedVertex is returned for a v line with missing or non-numeric fields.
	ErrMalformedVertex = errors.New("malformed vertex")

	// ErrEmptyModel is returned when a document contains no vertex records.
	ErrEmptyModel = errors.New("no vertices found in OBJ")

	// ErrOutputWriteFailed is returned when the destination cannot be written.
	ErrOutputWriteFailed = errors.New("output write failed")

	// ErrIndexOutOfRange signals a vertex record pointing past the vertex slice.
	ErrIndexOutOfRange = errors.New("vertex index out of range")
)

// MalformedVertexError describes the offending line of a malformed vertex.
type MalformedVertexError struct {
	Line   int // 1-based line number
	Text   string
	Reason string
}

func (e *MalformedVertexError) Error() string {
	return fmt.Sprintf("malformed vertex on line %d (%s): %q", e.Line, e.Reason, e.Text)
}

// Is lets errors.Is match ErrMalformedVertex.
func (e *MalformedVertexError) Is(target error) bool {
	return target == ErrMalformedVertex
}
