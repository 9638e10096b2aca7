package transform

import (
	"fmt"
	"math"

	"github.com/philipparndt/goobj/pkg/analysis"
	"github.com/philipparndt/goobj/pkg/geometry"
	"github.com/philipparndt/goobj/pkg/obj"
)

// MatchOptions controls how a model is fitted onto a reference bounding box
type MatchOptions struct {
	// Remap reorients the source before fitting. The zero value keeps axes as they are.
	Remap geometry.AxisMap
	// FitAxes are the axes whose extent ratios are averaged into the uniform
	// factor. Empty means X and Y.
	FitAxes []geometry.Axis
}

// DefaultFitAxes are used when MatchOptions.FitAxes is empty
var DefaultFitAxes = []geometry.Axis{geometry.AxisX, geometry.AxisY}

// MatchResult reports how the source was fitted
type MatchResult struct {
	Reference   geometry.BoundingBox
	Ratios      geometry.Vector3 // per-axis reference/source extent, 0 where the source is flat
	Factor      float64
	Translation geometry.Vector3
	Before      analysis.Measurement // after remapping, before scaling
	After       analysis.Measurement
	Deviation   geometry.Vector3 // largest min/max distance from the reference per axis
	Document    *obj.Document
}

// ParseFitAxes parses a set of axes such as "xy" or "xyz"
func ParseFitAxes(s string) ([]geometry.Axis, error) {
	if s == "" {
		return nil, fmt.Errorf("no fit axes given")
	}
	var axes []geometry.Axis
	seen := map[geometry.Axis]bool{}
	for _, r := range s {
		axis, err := geometry.ParseAxis(r)
		if err != nil {
			return nil, err
		}
		if !seen[axis] {
			seen[axis] = true
			axes = append(axes, axis)
		}
	}
	return axes, nil
}

// Match reorients, uniformly scales and translates the document so that its
// bounding box lines up with reference: the factor is the mean of the extent
// ratios over the fit axes, and the scaled box center is moved onto the
// reference center.
func (p *Pipeline) Match(doc *obj.Document, reference geometry.BoundingBox, opts MatchOptions) (*MatchResult, error) {
	remap := opts.Remap
	if remap == (geometry.AxisMap{}) {
		remap = geometry.IdentityAxes
	}
	fitAxes := opts.FitAxes
	if len(fitAxes) == 0 {
		fitAxes = DefaultFitAxes
	}

	vertices := doc.Vertices
	if remap != geometry.IdentityAxes {
		p.logger.Debug("reorienting", "axes", remap.String())
		vertices = geometry.Remap(vertices, remap)
	}

	result := &MatchResult{
		Reference: reference,
		Before:    analysis.Measure(vertices),
	}

	srcSize := result.Before.Dimensions
	refSize := reference.Size()
	var ratios [3]float64
	for _, axis := range []geometry.Axis{geometry.AxisX, geometry.AxisY, geometry.AxisZ} {
		if s := srcSize.Component(axis); s != 0 {
			ratios[axis] = refSize.Component(axis) / s
		}
	}
	result.Ratios = geometry.NewVector3(ratios[0], ratios[1], ratios[2])

	var fit []float64
	for _, axis := range fitAxes {
		if srcSize.Component(axis) == 0 {
			return nil, fmt.Errorf("%w: source extent along %s is zero", ErrDegenerateScale, axis)
		}
		fit = append(fit, ratios[axis])
	}
	factor := mean(fit)
	if !(factor > 0) || math.IsInf(factor, 0) {
		return nil, fmt.Errorf("%w: %g", ErrDegenerateScale, factor)
	}
	result.Factor = factor
	p.logger.Debug("fit ratios", "x", ratios[0], "y", ratios[1], "z", ratios[2], "uniform", factor)

	vertices = geometry.Scale(vertices, factor)
	result.Translation = reference.Center().Sub(geometry.Bounds(vertices).Center())
	vertices = geometry.Translate(vertices, result.Translation)

	result.After = analysis.Measure(vertices)
	result.Deviation = deviation(result.After.BoundingBox, reference)
	result.Document = doc.WithVertices(vertices)
	return result, nil
}

func deviation(got, want geometry.BoundingBox) geometry.Vector3 {
	minDiff := got.Min.Sub(want.Min)
	maxDiff := got.Max.Sub(want.Max)
	return geometry.NewVector3(
		math.Max(math.Abs(minDiff.X), math.Abs(maxDiff.X)),
		math.Max(math.Abs(minDiff.Y), math.Abs(maxDiff.Y)),
		math.Max(math.Abs(minDiff.Z), math.Abs(maxDiff.Z)),
	)
}
