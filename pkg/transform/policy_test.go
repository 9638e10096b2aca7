package transform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/goobj/pkg/geometry"
)

var triangle = []geometry.Vector3{
	geometry.NewVector3(0, 0, 0),
	geometry.NewVector3(2, 0, 0),
	geometry.NewVector3(0, 4, 0),
}

func TestScaleFactor(t *testing.T) {
	tests := []struct {
		name   string
		target Target
		want   float64
	}{
		{"width", Target{Width: Float(10)}, 5},
		{"length", Target{Length: Float(2)}, 0.5},
		{"width and length are averaged", Target{Width: Float(10), Length: Float(2)}, 2.75},
		{"radius", Target{Radius: Float(8)}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ScaleFactor(triangle, tt.target)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-12)
		})
	}
}

func TestScaleFactorErrors(t *testing.T) {
	flat := []geometry.Vector3{geometry.NewVector3(0, 1, 0), geometry.NewVector3(0, 3, 0)}
	origin := []geometry.Vector3{{}}

	tests := []struct {
		name     string
		vertices []geometry.Vector3
		target   Target
		want     error
	}{
		{"no target", triangle, Target{}, ErrNoTargetSpecified},
		{"zero width", flat, Target{Width: Float(1)}, ErrDegenerateScale},
		{"zero length", []geometry.Vector3{{X: 1}, {X: 2}}, Target{Length: Float(1)}, ErrDegenerateScale},
		{"zero radius", origin, Target{Radius: Float(1)}, ErrDegenerateScale},
		{"negative target", triangle, Target{Width: Float(-4)}, ErrDegenerateScale},
		{"zero target", triangle, Target{Radius: Float(0)}, ErrDegenerateScale},
		{"averaged to zero", triangle, Target{Width: Float(2), Length: Float(-4)}, ErrDegenerateScale},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ScaleFactor(tt.vertices, tt.target)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}
