package convex

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Affine is a 2x3 affine transformation:
//
//	x' = A*x + B*y + TX
//	y' = C*x + D*y + TY
type Affine struct {
	A, B, TX float64
	C, D, TY float64
}

// AffineIdentity returns the identity transform.
func AffineIdentity() Affine {
	return Affine{A: 1, D: 1}
}

// AffineTranslation returns a translation by (tx, ty).
func AffineTranslation(tx, ty float64) Affine {
	return Affine{A: 1, D: 1, TX: tx, TY: ty}
}

// AffineRotation returns a counterclockwise rotation by the given angle
// in radians.
func AffineRotation(radians float64) Affine {
	cos := math.Cos(radians)
	sin := math.Sin(radians)
	return Affine{A: cos, B: -sin, C: sin, D: cos}
}

// AffineScaling returns a scale about the origin. Negative factors
// produce reflections; note that a reflection reverses polygon winding.
func AffineScaling(sx, sy float64) Affine {
	return Affine{A: sx, D: sy}
}

// Apply transforms a point.
func (t Affine) Apply(p Vector) Vector {
	return Vector{
		X: t.A*p.X + t.B*p.Y + t.TX,
		Y: t.C*p.X + t.D*p.Y + t.TY,
	}
}

// Compose returns the transform equivalent to applying u first, then t.
func (t Affine) Compose(u Affine) Affine {
	return Affine{
		A:  t.A*u.A + t.B*u.C,
		B:  t.A*u.B + t.B*u.D,
		TX: t.A*u.TX + t.B*u.TY + t.TX,
		C:  t.C*u.A + t.D*u.C,
		D:  t.C*u.B + t.D*u.D,
		TY: t.C*u.TX + t.D*u.TY + t.TY,
	}
}

// Det returns the determinant of the linear part. A tolerantly negative
// determinant means the transform reverses winding.
func (t Affine) Det() float64 {
	return t.A*t.D - t.B*t.C
}

// Inverse returns the inverse transform; ok is false when the transform
// is singular within tolerance.
func (t Affine) Inverse() (Affine, bool) {
	det := t.Det()
	if IsZero(det) {
		return Affine{}, false
	}
	inv := Affine{
		A: t.D / det,
		B: -t.B / det,
		C: -t.C / det,
		D: t.A / det,
	}
	inv.TX = -(inv.A*t.TX + inv.B*t.TY)
	inv.TY = -(inv.C*t.TX + inv.D*t.TY)
	return inv, true
}

// Projective is a full 3x3 homogeneous transform for the occasional
// perspective map. Affine covers the common cases; this exists for
// callers that feed projective matrices in.
type Projective struct {
	m *mat.Dense
}

// NewProjective builds a projective transform from 9 row-major elements.
func NewProjective(elements []float64) *Projective {
	if len(elements) != 9 {
		return nil
	}
	data := make([]float64, 9)
	copy(data, elements)
	return &Projective{m: mat.NewDense(3, 3, data)}
}

// ProjectiveFromAffine embeds an affine transform.
func ProjectiveFromAffine(t Affine) *Projective {
	return NewProjective([]float64{
		t.A, t.B, t.TX,
		t.C, t.D, t.TY,
		0, 0, 1,
	})
}

// Apply transforms a point with homogeneous divide. ok is false when the
// point maps to infinity.
func (t *Projective) Apply(p Vector) (Vector, bool) {
	x := t.m.At(0, 0)*p.X + t.m.At(0, 1)*p.Y + t.m.At(0, 2)
	y := t.m.At(1, 0)*p.X + t.m.At(1, 1)*p.Y + t.m.At(1, 2)
	w := t.m.At(2, 0)*p.X + t.m.At(2, 1)*p.Y + t.m.At(2, 2)
	if IsZero(w) {
		return Vector{}, false
	}
	return Vector{X: x / w, Y: y / w}, true
}

// Det returns the determinant of the 3x3 matrix.
func (t *Projective) Det() float64 {
	return mat.Det(t.m)
}

// Inverse returns the inverse transform, or nil if the matrix is
// singular.
func (t *Projective) Inverse() *Projective {
	var inv mat.Dense
	if err := inv.Inverse(t.m); err != nil {
		return nil
	}
	return &Projective{m: &inv}
}
