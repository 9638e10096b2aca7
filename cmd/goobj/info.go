package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipparndt/goobj/pkg/analysis"
	"github.com/philipparndt/goobj/pkg/obj"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <file.obj>",
		Short: "Display general information about an OBJ file",
		Long:  "Show line and vertex counts, bounding box, dimensions and radius of an OBJ model.",
		Args:  cobra.ExactArgs(1),
		RunE:  runInfo,
	}
}

func runInfo(cmd *cobra.Command, args []string) error {
	filename := args[0]

	doc, err := obj.ParseFile(filename)
	if err != nil {
		return err
	}

	m := analysis.Measure(doc.Vertices)
	w := cmd.OutOrStdout()

	fmt.Fprintln(w, "OBJ File Information")
	fmt.Fprintln(w, "====================")
	fmt.Fprintf(w, "File: %s\n\n", filename)

	fmt.Fprintln(w, "Model Statistics:")
	fmt.Fprintf(w, "  Lines: %d\n", doc.LineCount())
	fmt.Fprintf(w, "  Vertices: %d\n\n", m.VertexCount)

	fmt.Fprintln(w, "Bounding Box:")
	fmt.Fprintf(w, "  Min: %s\n", analysis.FormatVector(m.BoundingBox.Min))
	fmt.Fprintf(w, "  Max: %s\n", analysis.FormatVector(m.BoundingBox.Max))
	fmt.Fprintf(w, "  Center: %s\n\n", analysis.FormatVector(m.BoundingBox.Center()))

	fmt.Fprintln(w, "Dimensions:")
	fmt.Fprintf(w, "  Width (X): %s\n", analysis.FormatMeasurement(m.Width(), ""))
	fmt.Fprintf(w, "  Length (Y): %s\n", analysis.FormatMeasurement(m.Length(), ""))
	fmt.Fprintf(w, "  Height (Z): %s\n", analysis.FormatMeasurement(m.Height(), ""))
	fmt.Fprintf(w, "  Diagonal: %s\n", analysis.FormatMeasurement(m.Diagonal(), ""))
	fmt.Fprintf(w, "  Radius: %s\n", analysis.FormatMeasurement(m.Radius, ""))
	return nil
}
