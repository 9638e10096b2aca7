package stl

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/philipparndt/goobj/pkg/geometry"
)

const (
	binaryHeaderSize = 80
	binaryFacetSize  = 50 // normal, three vertices, attribute byte count
)

// ParseFile reads an STL file and returns a Model
// It automatically detects whether the file is ASCII or binary format
func ParseFile(filename string) (*Model, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	return Parse(data)
}

// Parse decodes STL data held in memory
func Parse(data []byte) (*Model, error) {
	// Some exporters write binary files whose header starts with "solid";
	// a size that matches the binary layout exactly wins over the prefix.
	if bytes.HasPrefix(data, []byte("solid")) && !isBinarySize(data) {
		return parseASCII(data)
	}
	return parseBinary(data)
}

func isBinarySize(data []byte) bool {
	if len(data) < binaryHeaderSize+4 {
		return false
	}
	count := binary.LittleEndian.Uint32(data[binaryHeaderSize:])
	return uint64(len(data)) == binaryHeaderSize+4+uint64(count)*binaryFacetSize
}

// parseASCII parses an ASCII STL file
func parseASCII(data []byte) (*Model, error) {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	model := NewModel("")

	var vertices []geometry.Vector3
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "solid":
			if len(fields) > 1 {
				model.Name = strings.Join(fields[1:], " ")
			}

		case "vertex":
			v, err := parseVector(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			vertices = append(vertices, v)

		case "endfacet":
			if len(vertices) == 3 {
				model.AddFacet(vertices[0], vertices[1], vertices[2])
			}
			vertices = vertices[:0]
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading ASCII STL: %w", err)
	}

	return model, nil
}

func parseVector(fields []string) (geometry.Vector3, error) {
	if len(fields) < 3 {
		return geometry.Vector3{}, fmt.Errorf("vertex needs 3 coordinates, got %d", len(fields))
	}
	var c [3]float64
	for i := range c {
		f, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return geometry.Vector3{}, fmt.Errorf("invalid vertex coordinate %q", fields[i])
		}
		c[i] = f
	}
	return geometry.NewVector3(c[0], c[1], c[2]), nil
}

// parseBinary parses a binary STL file
func parseBinary(data []byte) (*Model, error) {
	if len(data) < binaryHeaderSize+4 {
		return nil, fmt.Errorf("failed to read header: file too short (%d bytes)", len(data))
	}

	model := NewModel(string(bytes.TrimRight(data[:binaryHeaderSize], "\x00 ")))

	count := binary.LittleEndian.Uint32(data[binaryHeaderSize:])
	body := data[binaryHeaderSize+4:]
	if uint64(len(body)) < uint64(count)*binaryFacetSize {
		return nil, fmt.Errorf("truncated binary STL: %d facets declared, %d bytes of facet data", count, len(body))
	}

	for i := uint32(0); i < count; i++ {
		facet := body[int(i)*binaryFacetSize:]
		// Skip the 12 byte normal; corners follow.
		model.AddFacet(
			readVector(facet[12:]),
			readVector(facet[24:]),
			readVector(facet[36:]),
		)
	}

	return model, nil
}

func readVector(b []byte) geometry.Vector3 {
	return geometry.NewVector3(
		float64(math.Float32frombits(binary.LittleEndian.Uint32(b[0:]))),
		float64(math.Float32frombits(binary.LittleEndian.Uint32(b[4:]))),
		float64(math.Float32frombits(binary.LittleEndian.Uint32(b[8:]))),
	)
}
