package transform

import (
	"path/filepath"
	"strings"

	"github.com/philipparndt/goobj/pkg/geometry"
	"github.com/philipparndt/goobj/pkg/obj"
	"github.com/philipparndt/goobj/pkg/stl"
)

// LoadReference returns the bounding box of a reference model.
// Files ending in .stl are read as STL, everything else as OBJ.
func LoadReference(path string) (geometry.BoundingBox, error) {
	if strings.EqualFold(filepath.Ext(path), ".stl") {
		model, err := stl.ParseFile(path)
		if err != nil {
			return geometry.BoundingBox{}, err
		}
		if len(model.Vertices) == 0 {
			return geometry.BoundingBox{}, obj.ErrEmptyModel
		}
		return model.BoundingBox(), nil
	}

	doc, err := obj.ParseFile(path)
	if err != nil {
		return geometry.BoundingBox{}, err
	}
	return geometry.Bounds(doc.Vertices), nil
}
