package geometry

import (
	"fmt"
	"math"
)

// Radians converts an angle in degrees to radians
func Radians(degrees float64) float64 {
	return degrees * math.Pi / 180.0
}

// RotateX rotates every vertex around the X axis by the given angle in degrees
func RotateX(vertices []Vector3, degrees float64) []Vector3 {
	sin, cos := math.Sincos(Radians(degrees))
	return mapVertices(vertices, func(v Vector3) Vector3 {
		return Vector3{
			X: v.X,
			Y: v.Y*cos - v.Z*sin,
			Z: v.Y*sin + v.Z*cos,
		}
	})
}

// RotateY rotates every vertex around the Y axis by the given angle in degrees
func RotateY(vertices []Vector3, degrees float64) []Vector3 {
	sin, cos := math.Sincos(Radians(degrees))
	return mapVertices(vertices, func(v Vector3) Vector3 {
		return Vector3{
			X: v.X*cos + v.Z*sin,
			Y: v.Y,
			Z: -v.X*sin + v.Z*cos,
		}
	})
}

// RotateZ rotates every vertex around the Z axis by the given angle in degrees
func RotateZ(vertices []Vector3, degrees float64) []Vector3 {
	sin, cos := math.Sincos(Radians(degrees))
	return mapVertices(vertices, func(v Vector3) Vector3 {
		return Vector3{
			X: v.X*cos - v.Y*sin,
			Y: v.X*sin + v.Y*cos,
			Z: v.Z,
		}
	})
}

// Rotate dispatches to RotateX, RotateY or RotateZ
func Rotate(vertices []Vector3, axis Axis, degrees float64) []Vector3 {
	switch axis {
	case AxisX:
		return RotateX(vertices, degrees)
	case AxisY:
		return RotateY(vertices, degrees)
	default:
		return RotateZ(vertices, degrees)
	}
}

// Scale multiplies all coordinates by factor. The factor is not validated.
func Scale(vertices []Vector3, factor float64) []Vector3 {
	return mapVertices(vertices, func(v Vector3) Vector3 {
		return v.Mul(factor)
	})
}

// Translate moves every vertex by offset
func Translate(vertices []Vector3, offset Vector3) []Vector3 {
	return mapVertices(vertices, func(v Vector3) Vector3 {
		return v.Add(offset)
	})
}

// AxisMap describes which source axis feeds each output axis.
// AxisMap{AxisY, AxisZ, AxisX} makes new X = old Y, new Y = old Z, new Z = old X.
type AxisMap [3]Axis

// IdentityAxes leaves coordinates where they are
var IdentityAxes = AxisMap{AxisX, AxisY, AxisZ}

// ParseAxisMap parses a three letter permutation such as "yzx"
func ParseAxisMap(s string) (AxisMap, error) {
	runes := []rune(s)
	if len(runes) != 3 {
		return AxisMap{}, fmt.Errorf("invalid axis map %q: need exactly three axes", s)
	}

	var m AxisMap
	var seen [3]bool
	for i, r := range runes {
		axis, err := ParseAxis(r)
		if err != nil {
			return AxisMap{}, fmt.Errorf("invalid axis map %q: %w", s, err)
		}
		if seen[axis] {
			return AxisMap{}, fmt.Errorf("invalid axis map %q: axis %s used twice", s, axis)
		}
		seen[axis] = true
		m[i] = axis
	}
	return m, nil
}

func (m AxisMap) String() string {
	return m[0].String() + m[1].String() + m[2].String()
}

// Remap reorders the coordinates of every vertex according to m
func Remap(vertices []Vector3, m AxisMap) []Vector3 {
	return mapVertices(vertices, func(v Vector3) Vector3 {
		return Vector3{
			X: v.Component(m[0]),
			Y: v.Component(m[1]),
			Z: v.Component(m[2]),
		}
	})
}

func mapVertices(vertices []Vector3, fn func(Vector3) Vector3) []Vector3 {
	out := make([]Vector3, len(vertices))
	for i, v := range vertices {
		out[i] = fn(v)
	}
	return out
}
