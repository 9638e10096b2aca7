package obj

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/goobj/pkg/geometry"
)

func TestFormatVertex(t *testing.T) {
	tests := []struct {
		in   geometry.Vector3
		want string
	}{
		{geometry.NewVector3(10, 0, 0), "v 10.000000 0.000000 0.000000"},
		{geometry.NewVector3(-1.5, 0.1234564, 1e-7), "v -1.500000 0.123456 0.000000"},
		{geometry.NewVector3(1e21, 0, 0), "v 1000000000000000000000.000000 0.000000 0.000000"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatVertex(tt.in))
	}
}

func TestEncodePreservesLineOrder(t *testing.T) {
	input := "# header\nv 1 2 3\nvn 0 0 1\n\nv 4 5 6 1.0\nf 1//1 2//1 1//1\n"
	doc, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	out, err := doc.Encode()
	require.NoError(t, err)

	want := "# header\nv 1.000000 2.000000 3.000000\nvn 0 0 1\n\nv 4.000000 5.000000 6.000000\nf 1//1 2//1 1//1\n"
	assert.Equal(t, want, string(out))
}

func TestEncodeWithReplacedVertices(t *testing.T) {
	doc, err := Parse(strings.NewReader("o a\nv 0 0 0\nv 2 0 0\ns off\n"))
	require.NoError(t, err)

	moved := doc.WithVertices(geometry.Translate(doc.Vertices, geometry.NewVector3(1, 1, 1)))
	out, err := moved.Encode()
	require.NoError(t, err)

	assert.Equal(t, "o a\nv 1.000000 1.000000 1.000000\nv 3.000000 1.000000 1.000000\ns off\n", string(out))
	assert.Equal(t, geometry.NewVector3(0, 0, 0), doc.Vertices[0], "original document must not change")
}

func TestEncodeIndexOutOfRange(t *testing.T) {
	doc := &Document{
		Vertices: []geometry.Vector3{{X: 1}},
		Records:  []Record{VertexRecord(0), VertexRecord(1)},
	}

	_, err := doc.Encode()
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.obj")
	require.NoError(t, os.WriteFile(path, []byte("old content\n"), 0o644))

	doc, err := Parse(strings.NewReader("v 0 0 0\nf 1 1 1\n"))
	require.NoError(t, err)
	require.NoError(t, WriteFile(path, doc))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "v 0.000000 0.000000 0.000000\nf 1 1 1\n", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestWriteFileFailure(t *testing.T) {
	doc, err := Parse(strings.NewReader("v 0 0 0\n"))
	require.NoError(t, err)

	err = WriteFile(filepath.Join(t.TempDir(), "missing", "out.obj"), doc)
	assert.ErrorIs(t, err, ErrOutputWriteFailed)
}

func TestWriteFileInvariantViolationLeavesNoFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.obj")
	doc := &Document{Records: []Record{VertexRecord(3)}}

	err := WriteFile(path, doc)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.NoFileExists(t, path)
}

func TestRoundTripIdentity(t *testing.T) {
	input := "v 0.123456 -7.5 1000.25\nv 3 4 5\n"
	doc, err := Parse(strings.NewReader(input))
	require.NoError(t, err)

	out, err := doc.Encode()
	require.NoError(t, err)

	again, err := Parse(bytes.NewReader(out))
	require.NoError(t, err)
	for i := range doc.Vertices {
		assert.InDelta(t, 0, doc.Vertices[i].Distance(again.Vertices[i]), 1e-9)
	}
}
