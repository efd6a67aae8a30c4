// Package geom provides the float32 vector and axis-aligned box primitives
// shared by the physics core and its consumers.
package geom

import (
	"fmt"
	"math"
)

// Vector2 is a 2D float vector. Value type; arithmetic returns new vectors.
type Vector2 struct {
	X float32 `json:"x" msgpack:"x"`
	Y float32 `json:"y" msgpack:"y"`
}

// Vec is shorthand for Vector2{X: x, Y: y}.
func Vec(x, y float32) Vector2 {
	return Vector2{X: x, Y: y}
}

// Zero returns the zero vector
func Zero() Vector2 {
	return Vector2{}
}

// Add returns v + o
func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o
func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v * s
func (v Vector2) Scale(s float32) Vector2 {
	return Vector2{X: v.X * s, Y: v.Y * s}
}

// Dot returns the dot product of v and o
func (v Vector2) Dot(o Vector2) float32 {
	return v.X*o.X + v.Y*o.Y
}

// LengthSquared returns |v|²
func (v Vector2) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y
}

// Length returns |v|
func (v Vector2) Length() float32 {
	return float32(math.Sqrt(float64(v.LengthSquared())))
}

// Normalize returns v / |v|.
// A zero vector yields NaN components; callers must not normalize zero.
func (v Vector2) Normalize() Vector2 {
	l := v.Length()
	return Vector2{X: v.X / l, Y: v.Y / l}
}

// Rotate returns v rotated by theta radians around the origin
func (v Vector2) Rotate(theta float32) Vector2 {
	sin, cos := math.Sincos(float64(theta))
	s, c := float32(sin), float32(cos)
	return Vector2{
		X: float32(v.X*c) - float32(v.Y*s),
		Y: float32(v.X*s) + float32(v.Y*c),
	}
}

// RotatePoint returns v rotated by theta radians around center
func (v Vector2) RotatePoint(center Vector2, theta float32) Vector2 {
	return v.Sub(center).Rotate(theta).Add(center)
}

// RotateBy rotates v in place around the origin
func (v *Vector2) RotateBy(theta float32) {
	*v = v.Rotate(theta)
}

// ClampX clamps the X component in place to [lo, hi]
func (v *Vector2) ClampX(lo, hi float32) {
	v.X = clamp(v.X, lo, hi)
}

// ClampY clamps the Y component in place to [lo, hi]
func (v *Vector2) ClampY(lo, hi float32) {
	v.Y = clamp(v.Y, lo, hi)
}

// Lerp interpolates between a and b; alpha 0 yields a, 1 yields b
func Lerp(a, b Vector2, alpha float32) Vector2 {
	return Vector2{
		X: LerpScalar(a.X, b.X, alpha),
		Y: LerpScalar(a.Y, b.Y, alpha),
	}
}

// LerpScalar interpolates between a and b
func LerpScalar(a, b, alpha float32) float32 {
	return a + float32((b-a)*alpha)
}

// String implements fmt.Stringer
func (v Vector2) String() string {
	return fmt.Sprintf("x: %g, y: %g", v.X, v.Y)
}

func clamp(x, lo, hi float32) float32 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
