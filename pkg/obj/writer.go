package obj

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/philipparndt/goobj/pkg/geometry"
)

// Encode renders the document back to OBJ text. Vertex records are written
// as "v x y z" with six decimals, opaque records verbatim, one per line.
func (d *Document) Encode() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile encodes the document fully in memory and then replaces filename
// with it via a temporary file and rename, so a failed run never leaves a
// partially written destination.
func WriteFile(filename string, d *Document) error {
	data, err := d.Encode()
	if err != nil {
		return err
	}

	dir := filepath.Dir(filename)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(filename)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrOutputWriteFailed, filename, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: %s: %w", ErrOutputWriteFailed, filename, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %s: %w", ErrOutputWriteFailed, filename, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %s: %w", ErrOutputWriteFailed, filename, err)
	}
	if err := os.Rename(tmpName, filename); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: %s: %w", ErrOutputWriteFailed, filename, err)
	}
	return nil
}

func (d *Document) write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	line := make([]byte, 0, 64)

	for i, rec := range d.Records {
		line = line[:0]
		switch rec.Kind {
		case KindVertex:
			if rec.Index < 0 || rec.Index >= len(d.Vertices) {
				return fmt.Errorf("%w: record %d refers to vertex %d of %d", ErrIndexOutOfRange, i, rec.Index, len(d.Vertices))
			}
			line = AppendVertex(line, d.Vertices[rec.Index])
		default:
			line = append(line, rec.Text...)
		}
		line = append(line, '\n')
		if _, err := bw.Write(line); err != nil {
			return fmt.Errorf("%w: %w", ErrOutputWriteFailed, err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %w", ErrOutputWriteFailed, err)
	}
	return nil
}

// AppendVertex appends the "v x y z" form of v to dst
func AppendVertex(dst []byte, v geometry.Vector3) []byte {
	dst = append(dst, 'v', ' ')
	dst = strconv.AppendFloat(dst, v.X, 'f', 6, 64)
	dst = append(dst, ' ')
	dst = strconv.AppendFloat(dst, v.Y, 'f', 6, 64)
	dst = append(dst, ' ')
	dst = strconv.AppendFloat(dst, v.Z, 'f', 6, 64)
	return dst
}

// FormatVertex returns the "v x y z" line for v
func FormatVertex(v geometry.Vector3) string {
	return string(AppendVertex(nil, v))
}
