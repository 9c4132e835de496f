package gamemath

import (
	"math"
	"testing"
)

func TestQuatYawRoundTrip(t *testing.T) {
	for _, yaw := range []float64{0, 0.5, -0.5, math.Pi / 2, -math.Pi + 0.01} {
		got := QuatFromYaw(yaw).Yaw()
		if !almostEqual(got, yaw) {
			t.Errorf("yaw round trip %v -> %v", yaw, got)
		}
	}
}

func TestQuatAngleTo(t *testing.T) {
	a := QuatFromYaw(0)
	b := QuatFromYaw(math.Pi / 2)
	if got := a.AngleTo(b); !almostEqual(got, math.Pi/2) {
		t.Errorf("AngleTo = %v, want %v", got, math.Pi/2)
	}
	if got := a.AngleTo(a); !almostEqual(got, 0) {
		t.Errorf("identical quats should have zero angle, got %v", got)
	}
}

func TestQuatAngleToWrapAround(t *testing.T) {
	// 350 and 10 degrees are 20 degrees apart, not 340.
	a := QuatFromYaw(350 * math.Pi / 180)
	b := QuatFromYaw(10 * math.Pi / 180)
	want := 20 * math.Pi / 180
	if got := a.AngleTo(b); !almostEqual(got, want) {
		t.Errorf("wrap-around AngleTo = %v, want %v", got, want)
	}
}

func TestSlerpReducesAngleWithoutOvershoot(t *testing.T) {
	current := QuatFromYaw(0)
	target := QuatFromYaw(1.2)

	prev := current.AngleTo(target)
	for i := 0; i < 20; i++ {
		current = current.Slerp(target, 0.3)
		angle := current.AngleTo(target)
		if angle > prev+1e-9 {
			t.Fatalf("slerp step %d increased angular distance: %v -> %v", i, prev, angle)
		}
		prev = angle
	}
	if prev > 0.01 {
		t.Errorf("repeated slerp should converge, remaining angle %v", prev)
	}
}

func TestSlerpTakesShortPath(t *testing.T) {
	a := QuatFromYaw(350 * math.Pi / 180)
	b := QuatFromYaw(10 * math.Pi / 180)

	mid := a.Slerp(b, 0.5)
	// Midpoint of the short arc is yaw 0 (or equivalent), 10 degrees from both.
	want := 10 * math.Pi / 180
	if got := mid.AngleTo(b); !almostEqual(got, want) {
		t.Errorf("short-path midpoint angle = %v, want %v", got, want)
	}
}
