package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/philipparndt/goobj/pkg/analysis"
	"github.com/philipparndt/goobj/pkg/geometry"
	"github.com/philipparndt/goobj/pkg/transform"
)

func newTransformCmd() *cobra.Command {
	var flags transformFlags

	cmd := &cobra.Command{
		Use:   "transform <input.obj> <output.obj>",
		Short: "Scale, rotate and translate an OBJ file",
		Long: `Apply rotations, scaling and translation to every vertex of an OBJ file.

Transforms always run in this order, independent of the order of the flags:
rotate X, rotate Y, rotate Z, scale, translate. Scaling uses either --scale
or a factor derived from --target-width/--target-length/--target-radius.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options(cmd)
			if err != nil {
				return err
			}
			return runTransform(cmd, args[0], args[1], opts)
		},
	}

	flags.register(cmd.Flags())
	return cmd
}

func runTransform(cmd *cobra.Command, input, output string, opts transform.Options) error {
	logger := loggerFromContext(cmd.Context())
	logger.Info("Reading", "file", input)

	result, err := transform.NewPipeline(logger).RunFile(cmd.Context(), input, output, opts)
	if err != nil {
		return err
	}

	printResult(cmd.OutOrStdout(), result, opts.TargetRadius != nil)
	logger.Info("Wrote", "file", output)
	return nil
}

// printResult prints the before/after report of a pipeline run
func printResult(w io.Writer, result *transform.Result, radius bool) {
	fmt.Fprintf(w, "Vertices: %d\n", result.Before.VertexCount)
	if radius {
		fmt.Fprintf(w, "Original radius: %.6f\n", result.Before.Radius)
	} else {
		fmt.Fprintf(w, "Original dimensions: %s\n", analysis.FormatDimensions(result.Before))
		fmt.Fprintf(w, "Original Z range: %s\n", analysis.FormatRange(result.Before.BoundingBox, geometry.AxisZ))
	}

	for _, step := range result.Steps {
		fmt.Fprintf(w, "Applied: %s\n", step)
	}

	if radius {
		fmt.Fprintf(w, "Final radius: %.6f\n", result.After.Radius)
	} else {
		fmt.Fprintf(w, "Final dimensions: %s\n", analysis.FormatDimensions(result.After))
		fmt.Fprintf(w, "Final Z range: %s\n", analysis.FormatRange(result.After.BoundingBox, geometry.AxisZ))
	}
}
