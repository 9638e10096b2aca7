package transform

import (
	"fmt"
	"math"

	"github.com/philipparndt/goobj/pkg/geometry"
)

// ScaleFactor derives a uniform scale factor from the target.
//
// With a radius target the factor is target/current radius. With width
// and/or length targets the factor is the mean of the per-axis ratios, so
// when both are given neither is matched exactly but proportions are kept.
func ScaleFactor(vertices []geometry.Vector3, target Target) (float64, error) {
	var factor float64

	switch {
	case target.Radius != nil:
		current := geometry.MaxRadius(vertices)
		if current == 0 {
			return 0, fmt.Errorf("%w: current radius is zero", ErrDegenerateScale)
		}
		factor = *target.Radius / current

	case target.Width != nil || target.Length != nil:
		size := geometry.Bounds(vertices).Size()

		var ratios []float64
		if target.Width != nil {
			if size.X == 0 {
				return 0, fmt.Errorf("%w: current width is zero", ErrDegenerateScale)
			}
			ratios = append(ratios, *target.Width/size.X)
		}
		if target.Length != nil {
			if size.Y == 0 {
				return 0, fmt.Errorf("%w: current length is zero", ErrDegenerateScale)
			}
			ratios = append(ratios, *target.Length/size.Y)
		}
		factor = mean(ratios)

	default:
		return 0, ErrNoTargetSpecified
	}

	if !(factor > 0) || math.IsInf(factor, 0) {
		return 0, fmt.Errorf("%w: %g", ErrDegenerateScale, factor)
	}
	return factor, nil
}

func mean(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
