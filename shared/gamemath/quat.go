package gamemath

import "math"

// Quat is a unit quaternion. Player orientation only ever rotates
// around Y, but reconciliation compares and blends full quaternions so
// angular distance and slerp behave at the wrap-around.
type Quat struct {
	X, Y, Z, W float64
}

// QuatFromYaw builds a rotation of yaw radians around the Y axis.
func QuatFromYaw(yaw float64) Quat {
	sin, cos := math.Sincos(yaw / 2)
	return Quat{X: 0, Y: sin, Z: 0, W: cos}
}

// Yaw extracts the rotation angle around Y.
func (q Quat) Yaw() float64 {
	return 2 * math.Atan2(q.Y, q.W)
}

func (q Quat) Dot(o Quat) float64 {
	return q.X*o.X + q.Y*o.Y + q.Z*o.Z + q.W*o.W
}

// AngleTo returns the angular distance to o in radians, in [0, pi].
func (q Quat) AngleTo(o Quat) float64 {
	d := math.Abs(q.Dot(o))
	if d > 1 {
		d = 1
	}
	return 2 * math.Acos(d)
}

// Slerp spherically interpolates from q toward o by t. Falls back to
// normalized lerp when the quaternions are nearly parallel.
func (q Quat) Slerp(o Quat, t float64) Quat {
	d := q.Dot(o)
	// Take the short way around.
	if d < 0 {
		o = Quat{-o.X, -o.Y, -o.Z, -o.W}
		d = -d
	}
	if d > 0.9995 {
		return Quat{
			q.X + (o.X-q.X)*t,
			q.Y + (o.Y-q.Y)*t,
			q.Z + (o.Z-q.Z)*t,
			q.W + (o.W-q.W)*t,
		}.normalized()
	}
	theta := math.Acos(d)
	sinTheta := math.Sin(theta)
	wa := math.Sin((1-t)*theta) / sinTheta
	wb := math.Sin(t*theta) / sinTheta
	return Quat{
		q.X*wa + o.X*wb,
		q.Y*wa + o.Y*wb,
		q.Z*wa + o.Z*wb,
		q.W*wa + o.W*wb,
	}
}

func (q Quat) normalized() Quat {
	mag := math.Sqrt(q.Dot(q))
	if mag == 0 {
		return Quat{W: 1}
	}
	return Quat{q.X / mag, q.Y / mag, q.Z / mag, q.W / mag}
}
