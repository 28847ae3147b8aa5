// Package geometry provides the 2D points and affine transforms shared by the
// control core. Points are gonum r2 vectors in metres.
package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Point is a position in metres.
type Point = r2.Vec

// RadiansToDegrees converts an angle in radians to degrees.
const RadiansToDegrees = 180 / math.Pi

// FixAngleDegrees wraps an angle into (-180, 180].
func FixAngleDegrees(a float64) float64 {
	a = math.Mod(a, 360)
	if a > 180 {
		a -= 360
	} else if a <= -180 {
		a += 360
	}
	return a
}

// TransformMatrix is an affine transform applied as rotation followed by
// translation: p' = R(angle)·p + offset.
type TransformMatrix struct {
	rot    r2.Rotation
	angle  float64
	offset Point
}

// Identity returns the identity transform.
func Identity() TransformMatrix {
	return TransformMatrix{rot: r2.NewRotation(0, r2.Vec{})}
}

// Rotate returns a pure rotation by degrees about the origin.
func Rotate(degrees float64) TransformMatrix {
	return TransformMatrix{
		rot:   r2.NewRotation(degrees/RadiansToDegrees, r2.Vec{}),
		angle: degrees,
	}
}

// Translate returns a pure translation.
func Translate(offset Point) TransformMatrix {
	t := Identity()
	t.offset = offset
	return t
}

// Then composes m with next so that the result applies m first.
func (m TransformMatrix) Then(next TransformMatrix) TransformMatrix {
	return TransformMatrix{
		rot:    r2.NewRotation((m.angle+next.angle)/RadiansToDegrees, r2.Vec{}),
		angle:  m.angle + next.angle,
		offset: next.Apply(m.offset),
	}
}

// Apply maps p through the transform.
func (m TransformMatrix) Apply(p Point) Point {
	return r2.Add(m.rot.Rotate(p), m.offset)
}

// Angle returns the rotation component in degrees.
func (m TransformMatrix) Angle() float64 {
	return m.angle
}

// Offset returns the translation component.
func (m TransformMatrix) Offset() Point {
	return m.offset
}

// Inverse returns the transform undoing m.
func (m TransformMatrix) Inverse() TransformMatrix {
	inv := Rotate(-m.angle)
	inv.offset = r2.Scale(-1, inv.rot.Rotate(m.offset))
	return inv
}

// Near reports whether a and b are within eps of each other.
func Near(a, b Point, eps float64) bool {
	return r2.Norm(r2.Sub(a, b)) <= eps
}
