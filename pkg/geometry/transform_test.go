package geometry

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func assertVector(t *testing.T, name string, got, want Vector3) {
	t.Helper()
	if got.Distance(want) > epsilon {
		t.Errorf("%s: expected %v, got %v", name, want, got)
	}
}

func TestRotations(t *testing.T) {
	tests := []struct {
		name   string
		rotate func([]Vector3, float64) []Vector3
		in     Vector3
		deg    float64
		want   Vector3
	}{
		{"x 90 moves y to z", RotateX, NewVector3(1, 1, 0), 90, NewVector3(1, 0, 1)},
		{"x 90 moves z to -y", RotateX, NewVector3(0, 0, 1), 90, NewVector3(0, -1, 0)},
		{"y 90 moves z to x", RotateY, NewVector3(0, 5, 1), 90, NewVector3(1, 5, 0)},
		{"y 90 moves x to -z", RotateY, NewVector3(1, 0, 0), 90, NewVector3(0, 0, -1)},
		{"z 90 moves x to y", RotateZ, NewVector3(1, 0, 2), 90, NewVector3(0, 1, 2)},
		{"z 180", RotateZ, NewVector3(1, 2, 3), 180, NewVector3(-1, -2, 3)},
		{"z 0 is identity", RotateZ, NewVector3(1, 2, 3), 0, NewVector3(1, 2, 3)},
		{"x 360 is identity", RotateX, NewVector3(1, 2, 3), 360, NewVector3(1, 2, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.rotate([]Vector3{tt.in}, tt.deg)
			if len(got) != 1 {
				t.Fatalf("expected 1 vertex, got %d", len(got))
			}
			assertVector(t, tt.name, got[0], tt.want)
		})
	}
}

func TestRotateDispatch(t *testing.T) {
	in := []Vector3{NewVector3(1, 2, 3)}
	for _, axis := range []Axis{AxisX, AxisY, AxisZ} {
		var want []Vector3
		switch axis {
		case AxisX:
			want = RotateX(in, 33)
		case AxisY:
			want = RotateY(in, 33)
		case AxisZ:
			want = RotateZ(in, 33)
		}
		assertVector(t, "Rotate "+axis.String(), Rotate(in, axis, 33)[0], want[0])
	}
}

func TestRotationPreservesDiagonal(t *testing.T) {
	vertices := []Vector3{
		NewVector3(0, 0, 0),
		NewVector3(2, 1, 0),
		NewVector3(-1, 3, 2),
		NewVector3(0.5, -2, 4),
	}
	before := Bounds(vertices).Diagonal()

	for _, deg := range []float64{0, 30, 45, 90, 135, 270} {
		for _, axis := range []Axis{AxisX, AxisY, AxisZ} {
			rotated := Rotate(vertices, axis, deg)
			// Pure rotations keep pairwise distances, so the farthest pair stays put.
			for i := range vertices {
				for j := range vertices {
					d0 := vertices[i].Distance(vertices[j])
					d1 := rotated[i].Distance(rotated[j])
					if math.Abs(d0-d1) > epsilon {
						t.Fatalf("rotate %s %v changed distance %d-%d: %v -> %v", axis, deg, i, j, d0, d1)
					}
				}
			}
			if deg == 90 || deg == 270 || deg == 0 {
				after := Bounds(rotated).Diagonal()
				if math.Abs(after-before) > epsilon {
					t.Errorf("rotate %s %v changed diagonal: %v -> %v", axis, deg, before, after)
				}
			}
		}
	}
}

func TestTransformsDoNotMutateInput(t *testing.T) {
	in := []Vector3{NewVector3(1, 2, 3)}
	original := in[0]

	_ = RotateX(in, 45)
	_ = Scale(in, 3)
	_ = Translate(in, NewVector3(1, 1, 1))
	_ = Remap(in, AxisMap{AxisZ, AxisX, AxisY})

	if in[0] != original {
		t.Errorf("input was mutated: %v", in[0])
	}
}

func TestScale(t *testing.T) {
	got := Scale([]Vector3{NewVector3(1, -2, 3)}, 2.5)
	assertVector(t, "Scale", got[0], NewVector3(2.5, -5, 7.5))
}

func TestTranslate(t *testing.T) {
	got := Translate([]Vector3{NewVector3(1, 2, 3)}, NewVector3(-1, 0.5, 10))
	assertVector(t, "Translate", got[0], NewVector3(0, 2.5, 13))
}

func TestComposedOrder(t *testing.T) {
	v := NewVector3(1, 0, 0)
	got := Translate(Scale(RotateZ([]Vector3{v}, 90), 2), NewVector3(1, 0, 0))
	assertVector(t, "rotate, scale, translate", got[0], NewVector3(1, 2, 0))
}

func TestParseAxisMap(t *testing.T) {
	tests := []struct {
		in      string
		want    AxisMap
		wantErr bool
	}{
		{"xyz", IdentityAxes, false},
		{"yzx", AxisMap{AxisY, AxisZ, AxisX}, false},
		{"ZXY", AxisMap{AxisZ, AxisX, AxisY}, false},
		{"xx", AxisMap{}, true},
		{"xxy", AxisMap{}, true},
		{"xyw", AxisMap{}, true},
	}

	for _, tt := range tests {
		got, err := ParseAxisMap(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseAxisMap(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseAxisMap(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRemap(t *testing.T) {
	got := Remap([]Vector3{NewVector3(1, 2, 3)}, AxisMap{AxisY, AxisZ, AxisX})
	if got[0] != NewVector3(2, 3, 1) {
		t.Errorf("Remap yzx failed: got %v", got[0])
	}
	if s := (AxisMap{AxisY, AxisZ, AxisX}).String(); s != "yzx" {
		t.Errorf("AxisMap.String() = %q", s)
	}
}
