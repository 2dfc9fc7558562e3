// Package kinematics provides the planar vector helpers shared by the simulation.
//
// The pitch lies on the XZ plane. Y is height: the ball uses it, actors keep it pinned
// to a ground offset. Every "planar" helper ignores Y.
package kinematics

import "math"

// normalizeEpsilon is the length below which a direction is treated as zero.
const normalizeEpsilon = 1e-9

// Vec3 is a position or velocity in world space.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + o
func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Sub returns v - o
func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// Scale returns v * s
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Length returns the full 3D length.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// LengthSq returns the squared 3D length.
func (v Vec3) LengthSq() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// LengthXZ returns the length of the planar component.
func (v Vec3) LengthXZ() float64 {
	return math.Hypot(v.X, v.Z)
}

// NormalizeXZ returns the planar unit direction of v.
// ok is false for a zero-length input; the returned vector is then zero.
func (v Vec3) NormalizeXZ() (Vec3, bool) {
	l := v.LengthXZ()
	if l < normalizeEpsilon {
		return Vec3{}, false
	}
	return Vec3{X: v.X / l, Z: v.Z / l}, true
}

// DotXZ returns the planar dot product.
func (v Vec3) DotXZ(o Vec3) float64 {
	return v.X*o.X + v.Z*o.Z
}

// RotateXZ rotates the planar component by angle radians around the Y axis.
// Y is carried through unchanged.
func (v Vec3) RotateXZ(angle float64) Vec3 {
	s, c := math.Sincos(angle)
	return Vec3{
		X: v.X*c + v.Z*s,
		Y: v.Y,
		Z: -v.X*s + v.Z*c,
	}
}

// Yaw returns the heading of the planar component, measured from +Z toward +X.
func (v Vec3) Yaw() float64 {
	return math.Atan2(v.X, v.Z)
}

// DistanceXZ returns the horizontal-plane distance between a and b.
func DistanceXZ(a, b Vec3) float64 {
	return math.Hypot(a.X-b.X, a.Z-b.Z)
}

// DistanceXZSq returns the squared horizontal-plane distance between a and b.
// Threshold checks compare against a squared radius to stay division free.
func DistanceXZSq(a, b Vec3) float64 {
	dx := a.X - b.X
	dz := a.Z - b.Z
	return dx*dx + dz*dz
}

// WithinXZ reports whether a and b are strictly closer than r on the plane.
func WithinXZ(a, b Vec3, r float64) bool {
	return DistanceXZSq(a, b) < r*r
}

// Lerp returns a + (b-a)*t.
func Lerp(a, b Vec3, t float64) Vec3 {
	return a.Add(b.Sub(a).Scale(t))
}

// Sign returns 1 for x >= 0 and -1 otherwise.
// Zero maps to 1 so boundary clamps always pick a side.
func Sign(x float64) float64 {
	if x >= 0 {
		return 1
	}
	return -1
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
