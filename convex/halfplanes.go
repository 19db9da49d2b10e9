package convex

import "math"

// Range is a closed interval of x values.
type Range struct {
	Min, Max float64
}

// HalfPlanes is a convex region represented as the intersection of
// oriented halfplanes, one per directed edge, each normal pointing
// inward. It is the same shape a Polygon describes, in the form that
// makes point containment and scanline queries cheap.
type HalfPlanes struct {
	lines []Line
}

// NewHalfPlanes converts a polygon into halfplane form, one line per CCW
// edge. The polygon is trusted to be valid; its invariant guarantees the
// produced lines bound exactly its interior.
func NewHalfPlanes(p *Polygon) *HalfPlanes {
	ring := p.CCW()
	n := ring.Len()
	lines := make([]Line, n)
	for i := 0; i < n; i++ {
		lines[i] = NewLine(ring.At(i).Coordinate(), ring.At((i+1)%n).Coordinate())
	}
	return &HalfPlanes{lines: lines}
}

// NewHalfPlanesFromCoords builds the halfplane form directly from a raw
// coordinate sequence, running the same classification as the polygon
// constructor but skipping the vertex machinery. Each accepted step
// becomes one edge line, oriented inward regardless of the input
// winding. Returns nil when the sequence is not convex.
func NewHalfPlanesFromCoords(coords []Vector) *HalfPlanes {
	elements, dir := runPath(func(i int) Vector { return coords[i] }, len(coords))
	if !dir.IsValid() {
		return nil
	}
	factor := 1.0
	if dir == DirectionCW {
		factor = -1
	}
	lines := make([]Line, len(elements))
	for i, e := range elements {
		lines[i] = NewLineFromNormal(e.Step.LeftPerp().Mul(factor), e.Coordinate)
	}
	return &HalfPlanes{lines: lines}
}

// HalfPlanesFromBox returns the four axis-aligned halfplanes of a
// bounding box.
func HalfPlanesFromBox(min, max Vector) *HalfPlanes {
	return &HalfPlanes{lines: []Line{
		{Normal: V(1, 0), C: -min.X},
		{Normal: V(0, 1), C: -min.Y},
		{Normal: V(-1, 0), C: max.X},
		{Normal: V(0, -1), C: max.Y},
	}}
}

// HalfPlanesFromTriangle returns the halfplane form of the triangle
// a-b-c, consistently oriented whichever way the three points wind.
// Returns nil when they are collinear within tolerance.
func HalfPlanesFromTriangle(a, b, c Vector) *HalfPlanes {
	ab := NewLine(a, b)
	switch Sign(ab.SignedOffset(c)) {
	case 1: // CCW
		return &HalfPlanes{lines: []Line{ab, NewLine(b, c), NewLine(c, a)}}
	case -1: // CW: flip the traversal so normals still point inward
		return &HalfPlanes{lines: []Line{NewLine(b, a), NewLine(a, c), NewLine(c, b)}}
	default:
		return nil
	}
}

// Len returns the number of bounding halfplanes.
func (h *HalfPlanes) Len() int {
	return len(h.lines)
}

// Line returns the i-th bounding line.
func (h *HalfPlanes) Line(i int) Line {
	return h.lines[i]
}

// Contains reports whether the point is inside the region or on its
// boundary, within tolerance.
func (h *HalfPlanes) Contains(p Vector) bool {
	for _, l := range h.lines {
		if IsNegative(l.SignedOffset(p)) {
			return false
		}
	}
	return true
}

// SegmentAt intersects the horizontal scanline at the given y with the
// region, returning the covered x interval. Each non-horizontal edge
// tightens a lower or an upper bound on x depending on which way its
// normal leans; a horizontal edge either admits the whole scanline or
// rejects it outright. ok is false when the scanline misses the region.
func (h *HalfPlanes) SegmentAt(y float64) (Range, bool) {
	lower := math.Inf(-1)
	upper := math.Inf(1)
	for _, l := range h.lines {
		x, ok := l.XAtY(y)
		if !ok {
			// Horizontal edge: the scanline is either entirely inside
			// this halfplane or entirely outside it.
			if IsNegative(l.Normal.Y*y + l.C) {
				return Range{}, false
			}
			continue
		}
		if l.Normal.X > 0 {
			lower = math.Max(lower, x)
		} else {
			upper = math.Min(upper, x)
		}
	}
	if Greater(lower, upper) {
		return Range{}, false
	}
	return Range{Min: lower, Max: upper}, true
}

// EqualTo reports whether two regions have the same edges within
// tolerance, ignoring edge order. The matching is O(n^2); sorting edges
// by normal angle would make it linearithmic if this ever shows up in a
// profile.
func (h *HalfPlanes) EqualTo(other *HalfPlanes) bool {
	if len(h.lines) != len(other.lines) {
		return false
	}
	used := make([]bool, len(other.lines))
outer:
	for _, l := range h.lines {
		for i, m := range other.lines {
			if !used[i] && l.EqualTo(m) {
				used[i] = true
				continue outer
			}
		}
		return false
	}
	return true
}
