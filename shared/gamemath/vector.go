package gamemath

import "math"

// Vec3 is a 3D vector using the renderer's coordinate convention:
// +X right, +Y up, -Z forward.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

func (v Vec3) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

func (v Vec3) Distance(o Vec3) float64 {
	return v.Sub(o).Length()
}

// Normalized returns the unit vector, or the zero vector when v is
// too short to carry a direction.
func (v Vec3) Normalized() Vec3 {
	mag := v.Length()
	if mag < 1e-6 {
		return Vec3{}
	}
	return v.Scale(1 / mag)
}

// Lerp blends from v toward o by t (0 = v, 1 = o).
func (v Vec3) Lerp(o Vec3, t float64) Vec3 {
	return Vec3{
		v.X + (o.X-v.X)*t,
		v.Y + (o.Y-v.Y)*t,
		v.Z + (o.Z-v.Z)*t,
	}
}

// Mirrored flips the horizontal axes. The server's coordinate convention
// mirrors the client's on X and Z, so snapshot positions pass through
// this before distance comparisons.
func (v Vec3) Mirrored() Vec3 {
	return Vec3{-v.X, v.Y, -v.Z}
}

// RotateY rotates v around the Y axis by yaw radians.
func (v Vec3) RotateY(yaw float64) Vec3 {
	sin, cos := math.Sincos(yaw)
	return Vec3{
		X: v.X*cos + v.Z*sin,
		Y: v.Y,
		Z: -v.X*sin + v.Z*cos,
	}
}

// ClampLength normalizes v down to max when it is longer. Diagonal
// movement input exceeds unit length and goes through this so diagonal
// speed matches axis speed.
func (v Vec3) ClampLength(max float64) Vec3 {
	mag := v.Length()
	if mag <= max {
		return v
	}
	return v.Scale(1 / mag)
}
