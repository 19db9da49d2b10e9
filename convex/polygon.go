package convex

import (
	"fmt"
	"math"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"

	"github.com/polygo/convex/dbg"
)

// Polygon is a convex polygon. The stored vertex sequence, read in its
// natural order, is entirely CCW or entirely CW with no degenerate
// angles; the reversed flag records which, so the winding-named views
// never have to re-derive it. Polygons own their vertices: no vertex is
// ever shared with the input or with another polygon.
type Polygon struct {
	vertices []Vertex
	// reversed is true when the natural stored order winds clockwise,
	// i.e. the CCW view reads the storage backward.
	reversed bool
}

// NewPolygon builds a polygon from an arbitrary vertex sequence by
// running the classification machine over it: duplicate and collinear
// vertices are dropped and the winding determined. Returns nil when the
// sequence does not describe a convex polygon (fewer than three
// effective vertices, collinear input, or mixed winding). Accepted
// vertices are cloned.
func NewPolygon(vertices []Vertex) *Polygon {
	elements, dir := runPath(func(i int) Vector { return vertices[i].Coordinate() }, len(vertices))
	if !dir.IsValid() {
		return nil
	}
	// Rotate the kept cycle so it starts at the earliest surviving input
	// vertex. The machine emits starting at the second point of the
	// path; without this, classifying an already-minimal sequence would
	// reproduce it rotated by one instead of unchanged.
	start := 0
	for i, e := range elements {
		if e.Index < elements[start].Index {
			start = i
		}
	}
	kept := make([]Vertex, len(elements))
	for i := range elements {
		kept[i] = vertices[elements[(start+i)%len(elements)].Index].Clone()
	}
	return &Polygon{vertices: kept, reversed: dir == DirectionCW}
}

// NewPolygonFromCoords is NewPolygon over bare coordinates.
func NewPolygonFromCoords(coords []Vector) *Polygon {
	return NewPolygon(PlainVertices(coords))
}

// NewPolygonUnsafe stores the given vertices and flag without any
// validation, taking ownership of the slice. The caller is responsible
// for the polygon invariant: the vertices in natural order must wind CW
// when reversed is true and CCW otherwise, with no degenerate angles.
// Split and the transform operators use this to avoid reclassifying
// results that are valid by construction. Use AssertValid while
// debugging a caller of this.
func NewPolygonUnsafe(vertices []Vertex, reversed bool) *Polygon {
	return &Polygon{vertices: vertices, reversed: reversed}
}

// Len returns the number of vertices.
func (p *Polygon) Len() int {
	return len(p.vertices)
}

// IsReversed reports whether the natural stored order winds clockwise.
func (p *Polygon) IsReversed() bool {
	return p.reversed
}

// VertexRing is a read-only view of a polygon's vertices in a fixed
// winding. Producing one is O(1); it shares the polygon's storage, so
// callers must not mutate the vertices it hands out.
type VertexRing struct {
	vertices []Vertex
	backward bool
}

func (r VertexRing) Len() int {
	return len(r.vertices)
}

// At returns the i-th vertex of the view, 0 <= i < Len.
func (r VertexRing) At(i int) Vertex {
	if r.backward {
		return r.vertices[len(r.vertices)-1-i]
	}
	return r.vertices[i]
}

// Coordinates copies out the view's coordinates in order.
func (r VertexRing) Coordinates() []Vector {
	coords := make([]Vector, len(r.vertices))
	for i := range coords {
		coords[i] = r.At(i).Coordinate()
	}
	return coords
}

// CCW returns the counterclockwise view of the polygon.
func (p *Polygon) CCW() VertexRing {
	return VertexRing{vertices: p.vertices, backward: p.reversed}
}

// CW returns the clockwise view of the polygon.
func (p *Polygon) CW() VertexRing {
	return VertexRing{vertices: p.vertices, backward: !p.reversed}
}

// naturalDirection is the winding the reversed flag claims for the
// stored order.
func (p *Polygon) naturalDirection() Direction {
	if p.reversed {
		return DirectionCW
	}
	return DirectionCCW
}

// IsValid reruns the full classification over the stored vertices and
// checks that the result agrees with the reversed flag. Only useful
// after NewPolygonUnsafe or a transform; validated constructors
// guarantee it.
func (p *Polygon) IsValid() bool {
	elements, dir := runPath(func(i int) Vector { return p.vertices[i].Coordinate() }, len(p.vertices))
	return dir == p.naturalDirection() && len(elements) == len(p.vertices)
}

// Reverse reverses the natural stored order in place; the flag flips
// with it, so the winding invariant and both views are unaffected. The
// shape is unchanged. What changes is the natural traversal order, the
// one Split walks and String prints. No allocation.
func (p *Polygon) Reverse() {
	for i, j := 0, len(p.vertices)-1; i < j; i, j = i+1, j-1 {
		p.vertices[i], p.vertices[j] = p.vertices[j], p.vertices[i]
	}
	p.reversed = !p.reversed
}

// Reversed returns a reversed copy with independently owned vertices.
func (p *Polygon) Reversed() *Polygon {
	n := len(p.vertices)
	vertices := make([]Vertex, n)
	for i, v := range p.vertices {
		vertices[n-1-i] = v.Clone()
	}
	return NewPolygonUnsafe(vertices, !p.reversed)
}

// Flip mirrors the polygon across the x axis in place. Mirroring
// reverses winding, so the flag toggles too.
func (p *Polygon) Flip() {
	for i, v := range p.vertices {
		p.vertices[i] = v.Flipped()
	}
	p.reversed = !p.reversed
}

// Flipped returns a mirrored copy.
func (p *Polygon) Flipped() *Polygon {
	vertices := make([]Vertex, len(p.vertices))
	for i, v := range p.vertices {
		vertices[i] = v.Flipped()
	}
	return NewPolygonUnsafe(vertices, !p.reversed)
}

// Translate moves every vertex by the given offset in place.
func (p *Polygon) Translate(offset Vector) {
	for i, v := range p.vertices {
		p.vertices[i] = v.Translated(offset)
	}
}

// Translated returns a moved copy.
func (p *Polygon) Translated(offset Vector) *Polygon {
	vertices := make([]Vertex, len(p.vertices))
	for i, v := range p.vertices {
		vertices[i] = v.Translated(offset)
	}
	return NewPolygonUnsafe(vertices, p.reversed)
}

// Apply transforms every vertex by an affine map in place. A reflecting
// transform (negative determinant) flips the actual winding, so the
// flag toggles with it. A singular transform collapses the polygon to a
// degenerate shape; the result fails IsValid either way.
func (p *Polygon) Apply(t Affine) {
	for i, v := range p.vertices {
		p.vertices[i] = v.WithCoordinate(t.Apply(v.Coordinate()))
	}
	if IsNegative(t.Det()) {
		p.reversed = !p.reversed
	}
}

// Applied returns a transformed copy.
func (p *Polygon) Applied(t Affine) *Polygon {
	vertices := make([]Vertex, len(p.vertices))
	for i, v := range p.vertices {
		vertices[i] = v.WithCoordinate(t.Apply(v.Coordinate()))
	}
	reversed := p.reversed
	if IsNegative(t.Det()) {
		reversed = !reversed
	}
	return NewPolygonUnsafe(vertices, reversed)
}

// AppliedProjective returns a copy transformed by a projective map.
// Unlike an affine map, a projective one can send vertices to infinity
// or break convexity when the horizon line crosses the polygon, so the
// image is reclassified; nil is returned when it is not a convex
// polygon.
func (p *Polygon) AppliedProjective(t *Projective) *Polygon {
	vertices := make([]Vertex, len(p.vertices))
	coords := make([]Vector, len(p.vertices))
	for i, v := range p.vertices {
		c, ok := t.Apply(v.Coordinate())
		if !ok {
			return nil
		}
		vertices[i] = v.WithCoordinate(c)
		coords[i] = c
	}
	dir := ClassifyDirection(coords)
	if !dir.IsValid() {
		return nil
	}
	return NewPolygonUnsafe(vertices, dir == DirectionCW)
}

// Centroid returns the average of the vertex coordinates. For a convex
// polygon it is always interior.
func (p *Polygon) Centroid() Vector {
	var sum Vector
	for _, v := range p.vertices {
		sum = sum.Add(v.Coordinate())
	}
	return sum.Mul(1 / float64(len(p.vertices)))
}

// BoundingBox returns the axis-aligned bounds of the polygon.
func (p *Polygon) BoundingBox() (min, max Vector) {
	min = V(math.Inf(1), math.Inf(1))
	max = V(math.Inf(-1), math.Inf(-1))
	for _, v := range p.vertices {
		c := v.Coordinate()
		min.X = math.Min(min.X, c.X)
		min.Y = math.Min(min.Y, c.Y)
		max.X = math.Max(max.X, c.X)
		max.Y = math.Max(max.Y, c.Y)
	}
	return min, max
}

// Contains reports whether the point is inside the polygon or on its
// boundary, within tolerance.
func (p *Polygon) Contains(c Vector) bool {
	return NewHalfPlanes(p).Contains(c)
}

func (p *Polygon) cloneVertices() []Vertex {
	vertices := make([]Vertex, len(p.vertices))
	for i, v := range p.vertices {
		vertices[i] = v.Clone()
	}
	return vertices
}

// Clone returns a copy with independently owned vertices.
func (p *Polygon) Clone() *Polygon {
	return NewPolygonUnsafe(p.cloneVertices(), p.reversed)
}

// Split clips the polygon by a line into the part in front of it
// (the normal's side) and the part behind it. Crossed edges get an
// intersection vertex inserted into both parts, so the two parts share
// their boundary coordinates but never vertex storage. A nil part means
// the polygon has no genuine vertex on that side; splitting a polygon
// that lies entirely on one side (or entirely on the line) is a
// legitimate call, not an error. Both parts are convex and carry the
// receiver's winding by construction, so they are built without
// revalidation.
func (p *Polygon) Split(line Line) (front, back *Polygon) {
	n := len(p.vertices)
	if n == 0 {
		return nil, nil
	}

	var frontAcc, backAcc []Vertex
	frontSeen, backSeen := false, false

	prev := p.vertices[n-1]
	prevSide := line.Classify(prev.Coordinate())
	for _, next := range p.vertices {
		nextSide := line.Classify(next.Coordinate())

		if (prevSide == SideFront && nextSide == SideBack) ||
			(prevSide == SideBack && nextSide == SideFront) {
			// The edge crosses the line. A genuine side change across
			// the tolerance band implies the edge is not parallel to
			// the line, so the intersection must exist; if it doesn't,
			// the classification and the intersection disagree and
			// that's a bug here, not in the caller.
			edge := NewLine(prev.Coordinate(), next.Coordinate())
			at, ok := line.Intersection(edge)
			if !ok {
				panic(errors.Errorf(
					"convex: split edge %v -> %v changed sides across %v yet is parallel to it",
					prev.Coordinate(), next.Coordinate(), line))
			}
			frontAcc = append(frontAcc, prev.WithCoordinate(at))
			backAcc = append(backAcc, prev.WithCoordinate(at))
		}

		switch nextSide {
		case SideFront:
			frontAcc = append(frontAcc, next.Clone())
			frontSeen = true
		case SideBack:
			backAcc = append(backAcc, next.Clone())
			backSeen = true
		default:
			// On the line: shared by both parts, activating neither.
			frontAcc = append(frontAcc, next.Clone())
			backAcc = append(backAcc, next.Clone())
		}

		prev, prevSide = next, nextSide
	}

	if frontSeen {
		front = NewPolygonUnsafe(frontAcc, p.reversed)
	}
	if backSeen {
		back = NewPolygonUnsafe(backAcc, p.reversed)
	}
	return front, back
}

func (p *Polygon) String() string {
	coords := make([]string, len(p.vertices))
	for i, v := range p.vertices {
		c := v.Coordinate()
		coords[i] = fmt.Sprintf("(%v, %v)", c.X, c.Y)
	}
	return fmt.Sprintf("Polygon %s [%s %s]", dbg.Name(p), p.naturalDirection(), strings.Join(coords, " "))
}

// AssertValid walks the stored vertices and panics with a descriptive
// error when the polygon invariant does not hold. It is a debugging aid
// for code built on NewPolygonUnsafe; validated constructors never need
// it. The failure message names the offending vertex.
func (p *Polygon) AssertValid() {
	elements, dir := runPath(func(i int) Vector { return p.vertices[i].Coordinate() }, len(p.vertices))

	blame := func(i int) string {
		name := aurora.Red(dbg.Name(p.vertices[i])).String()
		return fmt.Sprintf("vertex %s #%d at %v", name, i, p.vertices[i].Coordinate())
	}

	switch dir {
	case DirectionMixed:
		last := elements[len(elements)-1]
		panic(errors.Errorf("%s: mixed direction at %s", p, blame(last.Index)))
	case DirectionInvalid:
		at := "the whole path"
		if len(elements) > 0 {
			at = blame(elements[len(elements)-1].Index)
		}
		panic(errors.Errorf("%s: invalid direction at %s", p, at))
	}

	if dir != p.naturalDirection() {
		panic(errors.Errorf("%s: invalid direction: stored order winds %s but the reversed flag claims %s",
			p, dir, p.naturalDirection()))
	}

	// The stored sequence must already be minimal; the classifier
	// dropping a vertex here means some unsafe path stored a duplicate
	// or collinear vertex. Structurally impossible through Split and the
	// transforms, so hitting this signals a library bug.
	if len(elements) != len(p.vertices) {
		kept := make(map[int]bool, len(elements))
		for _, e := range elements {
			kept[e.Index] = true
		}
		for i := range p.vertices {
			if !kept[i] {
				panic(errors.Errorf("%s: internal inconsistency: %s is degenerate in a stored sequence",
					p, blame(i)))
			}
		}
		panic(errors.Errorf("%s: internal inconsistency: classifier kept %d of %d vertices",
			p, len(elements), len(p.vertices)))
	}
}
