package gamemath

import "math"

// HomingDirection returns the unit vector from a projectile toward its
// target's current position.
func HomingDirection(projectilePos, targetPos Vec3) Vec3 {
	return targetPos.Sub(projectilePos).Normalized()
}

// TurnToward rotates velocity's direction toward desired by at most
// maxAngle radians, preserving speed. This bounds the turn rate so a
// homing projectile can be dodged instead of tracking perfectly.
func TurnToward(velocity, desired Vec3, maxAngle float64) Vec3 {
	speed := velocity.Length()
	if speed < 1e-6 {
		return desired.Scale(speed)
	}
	dir := velocity.Scale(1 / speed)
	want := desired.Normalized()
	if want.Length() == 0 {
		return velocity
	}

	dot := dir.Dot(want)
	if dot > 1 {
		dot = 1
	} else if dot < -1 {
		dot = -1
	}
	angle := math.Acos(dot)
	if angle <= maxAngle {
		return want.Scale(speed)
	}

	axis := dir.Cross(want)
	if axis.Length() < 1e-6 {
		// Directly opposed: any perpendicular axis works.
		axis = dir.Cross(Vec3{Y: 1})
		if axis.Length() < 1e-6 {
			axis = dir.Cross(Vec3{X: 1})
		}
	}
	return rotateAboutAxis(dir, axis.Normalized(), maxAngle).Scale(speed)
}

// rotateAboutAxis applies Rodrigues' rotation of v around unit axis k.
func rotateAboutAxis(v, k Vec3, angle float64) Vec3 {
	sin, cos := math.Sincos(angle)
	term1 := v.Scale(cos)
	term2 := k.Cross(v).Scale(sin)
	term3 := k.Scale(k.Dot(v) * (1 - cos))
	return term1.Add(term2).Add(term3)
}
