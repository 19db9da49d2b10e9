package convex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHalfPlanesContains(t *testing.T) {
	poly := NewPolygonFromCoords(squareCCW)
	require.NotNil(t, poly)
	h := NewHalfPlanes(poly)
	require.Equal(t, 4, h.Len())

	assert.True(t, h.Contains(V(0.5, 0.5)))
	assert.True(t, h.Contains(poly.Centroid()))
	assert.True(t, h.Contains(V(0, 0.5)))  // edge
	assert.True(t, h.Contains(V(0, 0)))    // corner
	assert.True(t, h.Contains(V(1, 1)))    // corner
	assert.False(t, h.Contains(V(-0.1, 0.5)))
	assert.False(t, h.Contains(V(1.1, 1.1)))
	assert.False(t, h.Contains(V(0.5, -2)))
}

func TestHalfPlanesFromCoords(t *testing.T) {
	poly := NewPolygonFromCoords(squareCCW)
	require.NotNil(t, poly)
	fromPoly := NewHalfPlanes(poly)

	// Built straight from coordinates the edges come out in a different
	// order, but they bound the same region whichever way the input
	// winds.
	ccw := NewHalfPlanesFromCoords(squareCCW)
	cw := NewHalfPlanesFromCoords(squareCW)
	require.NotNil(t, ccw)
	require.NotNil(t, cw)
	assert.True(t, ccw.EqualTo(fromPoly))
	assert.True(t, cw.EqualTo(fromPoly))
	assert.True(t, ccw.EqualTo(cw))

	assert.Nil(t, NewHalfPlanesFromCoords([]Vector{V(0, 0), V(1, 0), V(2, 0)}))
	assert.Nil(t, NewHalfPlanesFromCoords([]Vector{V(0, 0), V(2, 2), V(2, 0), V(0, 2)}))
}

func TestHalfPlanesFromBox(t *testing.T) {
	box := HalfPlanesFromBox(V(0, 0), V(1, 1))
	square := NewHalfPlanesFromCoords(squareCCW)
	require.NotNil(t, square)
	assert.True(t, box.EqualTo(square))

	assert.True(t, box.Contains(V(0.5, 0.5)))
	assert.False(t, box.Contains(V(1.5, 0.5)))
}

func TestHalfPlanesFromTriangle(t *testing.T) {
	a, b, c := V(0, 0), V(2, 0), V(0, 2)

	ccw := HalfPlanesFromTriangle(a, b, c)
	cw := HalfPlanesFromTriangle(a, c, b)
	require.NotNil(t, ccw)
	require.NotNil(t, cw)

	// Same triangle either way round: the normals always point inward.
	assert.True(t, ccw.EqualTo(cw))
	for _, h := range []*HalfPlanes{ccw, cw} {
		assert.True(t, h.Contains(V(0.5, 0.5)))
		assert.True(t, h.Contains(V(1, 1))) // hypotenuse
		assert.False(t, h.Contains(V(1.5, 1.5)))
	}

	assert.Nil(t, HalfPlanesFromTriangle(V(0, 0), V(1, 1), V(2, 2)))
}

func TestSegmentAt(t *testing.T) {
	square := NewHalfPlanesFromCoords(squareCCW)
	require.NotNil(t, square)

	seg, ok := square.SegmentAt(0.5)
	require.True(t, ok)
	assert.True(t, Equal(seg.Min, 0))
	assert.True(t, Equal(seg.Max, 1))

	// Scanline along the bottom edge: still fully covered.
	seg, ok = square.SegmentAt(0)
	require.True(t, ok)
	assert.True(t, Equal(seg.Min, 0))
	assert.True(t, Equal(seg.Max, 1))

	_, ok = square.SegmentAt(1.5)
	assert.False(t, ok)
	_, ok = square.SegmentAt(-0.25)
	assert.False(t, ok)
}

func TestSegmentAtDiamond(t *testing.T) {
	diamond := NewHalfPlanesFromCoords([]Vector{V(1, 0), V(2, 1), V(1, 2), V(0, 1)})
	require.NotNil(t, diamond)

	seg, ok := diamond.SegmentAt(1)
	require.True(t, ok)
	assert.True(t, Equal(seg.Min, 0))
	assert.True(t, Equal(seg.Max, 2))

	// The scanline through the apex degenerates to a single point.
	seg, ok = diamond.SegmentAt(2)
	require.True(t, ok)
	assert.True(t, Equal(seg.Min, 1))
	assert.True(t, Equal(seg.Max, 1))

	_, ok = diamond.SegmentAt(2.5)
	assert.False(t, ok)
}

func TestHalfPlanesEqualTo(t *testing.T) {
	square := NewHalfPlanesFromCoords(squareCCW)
	triangle := HalfPlanesFromTriangle(V(0, 0), V(2, 0), V(0, 2))
	shifted := HalfPlanesFromBox(V(1, 1), V(2, 2))
	require.NotNil(t, square)
	require.NotNil(t, triangle)

	assert.True(t, square.EqualTo(square))
	assert.False(t, square.EqualTo(triangle)) // different edge counts
	assert.False(t, square.EqualTo(shifted))  // same normals, different offsets
	assert.False(t, shifted.EqualTo(square))
}

func TestPolygonContainsMatchesHalfPlanes(t *testing.T) {
	coords := []Vector{V(0, 0), V(4, 0), V(5, 3), V(2, 5), V(-1, 2)}
	poly := NewPolygonFromCoords(coords)
	require.NotNil(t, poly)
	h := NewHalfPlanes(poly)

	probes := []Vector{
		V(2, 2), V(0, 0), V(5, 3), V(2.5, 4),
		V(-2, 0), V(6, 3), V(2, 6), V(2, -1),
	}
	for _, p := range probes {
		assert.Equal(t, h.Contains(p), poly.Contains(p), "probe %v", p)
	}
}
