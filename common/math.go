package common

import "math"

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Vec3 is a world-space vector. X is forward, Y is right and Z is up, in
// engine units (centimetres).
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }

func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

func (v Vec3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

// Normalize returns the unit vector, or the zero vector for zero input.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return v.Scale(1 / l)
}

func (v Vec3) Distance(o Vec3) float64 {
	return o.Sub(v).Length()
}

// LerpVec3 blends a toward b by alpha without clamping.
func LerpVec3(a, b Vec3, alpha float64) Vec3 {
	return Vec3{
		X: Lerp(a.X, b.X, alpha),
		Y: Lerp(a.Y, b.Y, alpha),
		Z: Lerp(a.Z, b.Z, alpha),
	}
}

// Rotator holds view angles in degrees.
type Rotator struct {
	Pitch, Yaw, Roll float64
}

// LerpRotator blends each axis independently.
func LerpRotator(a, b Rotator, alpha float64) Rotator {
	return Rotator{
		Pitch: Lerp(a.Pitch, b.Pitch, alpha),
		Yaw:   Lerp(a.Yaw, b.Yaw, alpha),
		Roll:  Lerp(a.Roll, b.Roll, alpha),
	}
}

func (r Rotator) Add(o Rotator) Rotator {
	return Rotator{r.Pitch + o.Pitch, r.Yaw + o.Yaw, r.Roll + o.Roll}
}

// Forward is the unit view direction for the rotator.
func (r Rotator) Forward() Vec3 {
	p := r.Pitch * math.Pi / 180
	y := r.Yaw * math.Pi / 180
	return Vec3{
		X: math.Cos(p) * math.Cos(y),
		Y: math.Cos(p) * math.Sin(y),
		Z: math.Sin(p),
	}
}

// FlatForward ignores pitch.
func (r Rotator) FlatForward() Vec3 {
	y := r.Yaw * math.Pi / 180
	return Vec3{X: math.Cos(y), Y: math.Sin(y)}
}

// Right is perpendicular to FlatForward on the ground plane.
func (r Rotator) Right() Vec3 {
	y := r.Yaw * math.Pi / 180
	return Vec3{X: -math.Sin(y), Y: math.Cos(y)}
}

var Up = Vec3{Z: 1}
