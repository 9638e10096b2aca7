package obj

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/philipparndt/goobj/pkg/geometry"
)

// ParseFile reads an OBJ file from disk
func ParseFile(filename string) (*Document, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInputNotFound, filename, err)
	}
	defer file.Close()

	return Parse(file)
}

// Parse classifies every line of r into vertex and opaque records.
// Lines end at "\n", "\r\n" or a lone "\r" and have no length limit.
// Each line is trimmed of surrounding whitespace. Any malformed vertex aborts
// the parse, and a document without vertices is rejected with ErrEmptyModel.
func Parse(r io.Reader) (*Document, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), math.MaxInt)
	scanner.Split(scanLines)

	doc := &Document{}
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		fields := strings.Fields(line)

		if len(fields) == 0 || fields[0] != "v" {
			doc.Records = append(doc.Records, OpaqueRecord(line))
			continue
		}

		vertex, err := parseVertex(fields[1:])
		if err != nil {
			return nil, &MalformedVertexError{Line: lineNo, Text: line, Reason: err.Error()}
		}
		doc.Records = append(doc.Records, VertexRecord(len(doc.Vertices)))
		doc.Vertices = append(doc.Vertices, vertex)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: error reading OBJ: %w", ErrInputNotFound, err)
	}

	if len(doc.Vertices) == 0 {
		return nil, ErrEmptyModel
	}

	return doc, nil
}

// scanLines is a bufio.SplitFunc that accepts all three line ending styles
func scanLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		if data[i] == '\n' {
			return i + 1, data[:i], nil
		}
		if i+1 < len(data) {
			if data[i+1] == '\n' {
				return i + 2, data[:i], nil
			}
			return i + 1, data[:i], nil
		}
		// a trailing '\r' may be the first half of "\r\n"
		if !atEOF {
			return 0, nil, nil
		}
		return i + 1, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// parseVertex reads the first three coordinates; anything after them is dropped.
func parseVertex(fields []string) (geometry.Vector3, error) {
	if len(fields) < 3 {
		return geometry.Vector3{}, fmt.Errorf("expected 3 coordinates, got %d", len(fields))
	}

	var coords [3]float64
	for i := range coords {
		f, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return geometry.Vector3{}, fmt.Errorf("invalid coordinate %q", fields[i])
		}
		coords[i] = f
	}

	return geometry.NewVector3(coords[0], coords[1], coords[2]), nil
}
