package convex

import "math"

// Vector is a 2D point or direction.
type Vector struct {
	X, Y float64
}

// V is a convenience constructor.
func V(x, y float64) Vector {
	return Vector{X: x, Y: y}
}

func (v Vector) Add(u Vector) Vector {
	return Vector{X: v.X + u.X, Y: v.Y + u.Y}
}

func (v Vector) Sub(u Vector) Vector {
	return Vector{X: v.X - u.X, Y: v.Y - u.Y}
}

func (v Vector) Mul(s float64) Vector {
	return Vector{X: v.X * s, Y: v.Y * s}
}

func (v Vector) Neg() Vector {
	return Vector{X: -v.X, Y: -v.Y}
}

func (v Vector) Dot(u Vector) float64 {
	return v.X*u.X + v.Y*u.Y
}

// Cross returns the z component of the 3D cross product of v and u. Its
// sign tells whether u points to the left (positive) or right (negative)
// of v.
func (v Vector) Cross(u Vector) float64 {
	return v.X*u.Y - v.Y*u.X
}

func (v Vector) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

func (v Vector) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalized returns a unit vector in the same direction, or the zero
// vector if v has no direction to speak of.
func (v Vector) Normalized() Vector {
	l := v.Length()
	if IsZero(l) {
		return Vector{}
	}
	return Vector{X: v.X / l, Y: v.Y / l}
}

// LeftPerp returns v rotated 90 degrees counterclockwise. For a CCW edge
// traversal this is the inward normal direction.
func (v Vector) LeftPerp() Vector {
	return Vector{X: -v.Y, Y: v.X}
}

// Flipped mirrors v across the x axis.
func (v Vector) Flipped() Vector {
	return Vector{X: v.X, Y: -v.Y}
}

// Lerp interpolates between v and u; t=0 yields v, t=1 yields u.
func (v Vector) Lerp(u Vector, t float64) Vector {
	return Vector{X: v.X + (u.X-v.X)*t, Y: v.Y + (u.Y-v.Y)*t}
}

// EqualTo reports component-wise tolerant equality.
func (v Vector) EqualTo(u Vector) bool {
	return Equal(v.X, u.X) && Equal(v.Y, u.Y)
}

// IsZero reports whether both components are tolerantly zero.
func (v Vector) IsZero() bool {
	return IsZero(v.X) && IsZero(v.Y)
}
