package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipparndt/goobj/pkg/analysis"
	"github.com/philipparndt/goobj/pkg/geometry"
	"github.com/philipparndt/goobj/pkg/obj"
	"github.com/philipparndt/goobj/pkg/transform"
)

// matchTolerance is the per-axis deviation still reported as a match
const matchTolerance = 0.01

func newMatchCmd() *cobra.Command {
	var (
		remap string
		fit   string
	)

	cmd := &cobra.Command{
		Use:   "match <input.obj> <reference.obj|reference.stl> <output.obj>",
		Short: "Fit an OBJ model onto the bounding box of a reference model",
		Long: `Reorient, uniformly scale and move a model so that its bounding box lines
up with the bounding box of a reference model (OBJ or STL).

The scale factor is the average of the extent ratios along the --fit axes,
and the model is centered on the reference center.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			axes, err := geometry.ParseAxisMap(remap)
			if err != nil {
				return err
			}
			fitAxes, err := transform.ParseFitAxes(fit)
			if err != nil {
				return err
			}
			return runMatch(cmd, args[0], args[1], args[2], transform.MatchOptions{Remap: axes, FitAxes: fitAxes})
		},
	}

	cmd.Flags().StringVar(&remap, "remap", "xyz", "source axis for new X, Y and Z, e.g. yzx")
	cmd.Flags().StringVar(&fit, "fit", "xy", "axes whose extent ratios are averaged into the scale factor")
	return cmd
}

func runMatch(cmd *cobra.Command, input, reference, output string, opts transform.MatchOptions) error {
	logger := loggerFromContext(cmd.Context())

	ref, err := transform.LoadReference(reference)
	if err != nil {
		return fmt.Errorf("reference %s: %w", reference, err)
	}

	logger.Info("Reading", "file", input)
	doc, err := obj.ParseFile(input)
	if err != nil {
		return err
	}

	result, err := transform.NewPipeline(logger).Match(doc, ref, opts)
	if err != nil {
		return err
	}

	if err := cmd.Context().Err(); err != nil {
		return err
	}
	if err := obj.WriteFile(output, result.Document); err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	axes := []geometry.Axis{geometry.AxisX, geometry.AxisY, geometry.AxisZ}

	fmt.Fprintln(w, "Target bounds:")
	for _, axis := range axes {
		fmt.Fprintf(w, "  %s: %s\n", axis, analysis.FormatRange(ref, axis))
	}
	fmt.Fprintf(w, "Scale factors: x=%.6f, y=%.6f, z=%.6f, uniform=%.6f\n",
		result.Ratios.X, result.Ratios.Y, result.Ratios.Z, result.Factor)
	fmt.Fprintf(w, "Translation: %s\n", analysis.FormatVector(result.Translation))

	fmt.Fprintln(w, "Final bounds:")
	for _, axis := range axes {
		mark := "✓"
		if result.Deviation.Component(axis) >= matchTolerance {
			mark = "✗"
		}
		fmt.Fprintf(w, "  %s: %s %s\n", axis, analysis.FormatRange(result.After.BoundingBox, axis), mark)
	}

	logger.Info("Wrote", "file", output)
	return nil
}
