package gamemath

import (
	"math"
	"testing"
)

const eps = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func vecAlmostEqual(a, b Vec3) bool {
	return almostEqual(a.X, b.X) && almostEqual(a.Y, b.Y) && almostEqual(a.Z, b.Z)
}

func TestRotateYForwardVector(t *testing.T) {
	forward := Vec3{Z: -1}

	tests := []struct {
		name string
		yaw  float64
		want Vec3
	}{
		{"zero yaw keeps forward", 0, Vec3{Z: -1}},
		{"quarter turn faces -X", math.Pi / 2, Vec3{X: -1}},
		{"half turn faces +Z", math.Pi, Vec3{Z: 1}},
		{"three quarter turn faces +X", 3 * math.Pi / 2, Vec3{X: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := forward.RotateY(tt.yaw)
			if !vecAlmostEqual(got, tt.want) {
				t.Errorf("RotateY(%v) = %+v, want %+v", tt.yaw, got, tt.want)
			}
		})
	}
}

func TestClampLength(t *testing.T) {
	diagonal := Vec3{X: 1, Z: -1}
	clamped := diagonal.ClampLength(1.1)
	if !almostEqual(clamped.Length(), 1.0) {
		t.Errorf("diagonal should normalize to unit length, got %v", clamped.Length())
	}

	single := Vec3{Z: -1}
	if got := single.ClampLength(1.1); !vecAlmostEqual(got, single) {
		t.Errorf("single axis should pass through unchanged, got %+v", got)
	}
}

func TestMirroredFlipsHorizontalAxesOnly(t *testing.T) {
	v := Vec3{X: 3, Y: 1, Z: -2}
	want := Vec3{X: -3, Y: 1, Z: 2}
	if got := v.Mirrored(); got != want {
		t.Errorf("Mirrored() = %+v, want %+v", got, want)
	}
}

func TestNormalizedZeroVector(t *testing.T) {
	if got := (Vec3{}).Normalized(); got != (Vec3{}) {
		t.Errorf("zero vector should normalize to zero, got %+v", got)
	}
}

func TestLerpMovesStrictlyCloser(t *testing.T) {
	from := Vec3{X: 10.6, Z: 10}
	to := Vec3{X: 10, Z: 10}

	before := from.Distance(to)
	blended := from.Lerp(to, 0.2)
	after := blended.Distance(to)

	if after >= before {
		t.Errorf("lerp did not move closer: before %v, after %v", before, after)
	}
	if after < eps {
		t.Errorf("lerp with factor 0.2 must not snap onto target")
	}
}
