package convex

// Line is an oriented 2D line, stored as a unit normal and an offset
// satisfying Normal·x + C = 0. The positive halfplane is the side the
// normal points into. Orientation matters: the same geometric line with
// a negated normal is a different Line.
type Line struct {
	Normal Vector
	C      float64
}

// NewLine returns the line through p and q, oriented so that the normal
// points to the left of travel from p to q. For a counterclockwise edge
// traversal this makes the polygon interior the positive side. The two
// points must be distinct.
func NewLine(p, q Vector) Line {
	n := q.Sub(p).LeftPerp().Normalized()
	return Line{Normal: n, C: -n.Dot(p)}
}

// NewLineFromDirection returns the line through point with the given
// direction of travel; the normal points to the left of it.
func NewLineFromDirection(direction, point Vector) Line {
	n := direction.LeftPerp().Normalized()
	return Line{Normal: n, C: -n.Dot(point)}
}

// NewLineFromNormal returns the line through point with the given normal.
func NewLineFromNormal(normal, point Vector) Line {
	n := normal.Normalized()
	return Line{Normal: n, C: -n.Dot(point)}
}

// Side is the classification of a point against an oriented line.
type Side int

const (
	// SideOn means the point is on the line within tolerance.
	SideOn Side = iota
	// SideFront means the point is in the halfplane the normal points into.
	SideFront
	// SideBack is the opposite halfplane.
	SideBack
)

func (s Side) String() string {
	switch s {
	case SideFront:
		return "front"
	case SideBack:
		return "back"
	default:
		return "on"
	}
}

// SignedOffset returns the signed distance from p to the line; positive
// on the normal's side. The normal is unit length, so this is a true
// distance.
func (l Line) SignedOffset(p Vector) float64 {
	return l.Normal.Dot(p) + l.C
}

// Classify places p on one side of the line, or on it.
func (l Line) Classify(p Vector) Side {
	switch Sign(l.SignedOffset(p)) {
	case 1:
		return SideFront
	case -1:
		return SideBack
	default:
		return SideOn
	}
}

// Contains reports whether p lies on the line within tolerance.
func (l Line) Contains(p Vector) bool {
	return IsZero(l.SignedOffset(p))
}

// Intersection returns the unique common point of two lines, solving the
// 2x2 system the two line equations form. ok is false when the lines are
// parallel or coincident within tolerance.
func (l Line) Intersection(m Line) (Vector, bool) {
	det := l.Normal.Cross(m.Normal)
	if IsZero(det) {
		return Vector{}, false
	}
	return Vector{
		X: (-l.C*m.Normal.Y + m.C*l.Normal.Y) / det,
		Y: (-m.C*l.Normal.X + l.C*m.Normal.X) / det,
	}, true
}

// Front returns the direction of travel along the line, i.e. the normal
// rotated 90 degrees clockwise.
func (l Line) Front() Vector {
	return Vector{X: l.Normal.Y, Y: -l.Normal.X}
}

// AnyCoordinate returns a point on the line (the one closest to the
// origin).
func (l Line) AnyCoordinate() Vector {
	return l.Normal.Mul(-l.C)
}

// Project returns the orthogonal projection of p onto the line.
func (l Line) Project(p Vector) Vector {
	return p.Sub(l.Normal.Mul(l.SignedOffset(p)))
}

// XAtY solves the line equation for x at the given y. ok is false for
// horizontal lines (normal has no x component), which cross a given y
// either everywhere or not at all.
func (l Line) XAtY(y float64) (float64, bool) {
	if IsZero(l.Normal.X) {
		return 0, false
	}
	return -(l.C + l.Normal.Y*y) / l.Normal.X, true
}

// Flipped mirrors the line across the x axis.
func (l Line) Flipped() Line {
	return Line{Normal: l.Normal.Flipped(), C: l.C}
}

// Reversed returns the same geometric line facing the other way, so
// front and back swap.
func (l Line) Reversed() Line {
	return Line{Normal: l.Normal.Neg(), C: -l.C}
}

// Applied transforms the line by an affine map. The normal goes through
// the inverse transpose of the linear part and the offset is recomputed
// from a transformed point on the line; transforming normal and offset
// naively breaks under non-uniform scale. ok is false for singular
// transforms.
func (l Line) Applied(t Affine) (Line, bool) {
	inv, ok := t.Inverse()
	if !ok {
		return Line{}, false
	}
	// Inverse transpose of the linear part, applied to the normal.
	n := Vector{
		X: inv.A*l.Normal.X + inv.C*l.Normal.Y,
		Y: inv.B*l.Normal.X + inv.D*l.Normal.Y,
	}
	return NewLineFromNormal(n, t.Apply(l.AnyCoordinate())), true
}

// EqualTo reports tolerant equality of the two lines, orientation
// included.
func (l Line) EqualTo(m Line) bool {
	return l.Normal.EqualTo(m.Normal) && Equal(l.C, m.C)
}
