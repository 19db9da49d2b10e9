package convex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalDirection(t *testing.T) {
	assert.Equal(t, LocalCCW, localDirection(V(1, 0), V(0, 1)))
	assert.Equal(t, LocalCW, localDirection(V(1, 0), V(0, -1)))
	assert.Equal(t, LocalForward, localDirection(V(1, 0), V(2, 0)))
	assert.Equal(t, LocalBackward, localDirection(V(1, 0), V(-1, 0)))
	// Slightly skewed but within tolerance still counts as collinear.
	assert.Equal(t, LocalForward, localDirection(V(1, 0), V(1, 1e-20)))
}

func TestDirectionHelpers(t *testing.T) {
	assert.Equal(t, DirectionCW, DirectionCCW.Reversed())
	assert.Equal(t, DirectionCCW, DirectionCW.Reversed())
	assert.Equal(t, DirectionMixed, DirectionMixed.Reversed())
	assert.Equal(t, DirectionInvalid, DirectionInvalid.Reversed())
	assert.True(t, DirectionCCW.IsValid())
	assert.True(t, DirectionCW.IsValid())
	assert.False(t, DirectionMixed.IsValid())
	assert.False(t, DirectionInvalid.IsValid())
}

func TestClassifySquares(t *testing.T) {
	ccw := []Vector{V(0, 0), V(1, 0), V(1, 1), V(0, 1)}
	cw := []Vector{V(0, 0), V(0, 1), V(1, 1), V(1, 0)}
	assert.Equal(t, DirectionCCW, ClassifyDirection(ccw))
	assert.Equal(t, DirectionCW, ClassifyDirection(cw))
}

func TestClassifyTriangle(t *testing.T) {
	assert.Equal(t, DirectionCCW, ClassifyDirection([]Vector{V(0, 0), V(2, 0), V(0, 2)}))
	assert.Equal(t, DirectionCW, ClassifyDirection([]Vector{V(0, 0), V(0, 2), V(2, 0)}))
}

func TestClassifyDegenerate(t *testing.T) {
	// All collinear: no polygon.
	assert.Equal(t, DirectionInvalid, ClassifyDirection([]Vector{V(0, 0), V(1, 0), V(2, 0)}))
	// Too few points.
	assert.Equal(t, DirectionInvalid, ClassifyDirection(nil))
	assert.Equal(t, DirectionInvalid, ClassifyDirection([]Vector{V(1, 1)}))
	assert.Equal(t, DirectionInvalid, ClassifyDirection([]Vector{V(0, 0), V(1, 1)}))
	// Two points plus duplicates is still two points.
	assert.Equal(t, DirectionInvalid, ClassifyDirection([]Vector{V(0, 0), V(0, 0), V(1, 1), V(1, 1)}))
	// A spike that doubles back on itself.
	assert.Equal(t, DirectionInvalid, ClassifyDirection([]Vector{V(0, 0), V(2, 0), V(1, 0), V(1, 2)}))
}

func TestClassifyBowtie(t *testing.T) {
	// Self-intersecting path: the winding changes sign partway around.
	assert.Equal(t, DirectionMixed, ClassifyDirection([]Vector{V(0, 0), V(2, 2), V(2, 0), V(0, 2)}))
}

func TestDuplicateAndCollinearCollapse(t *testing.T) {
	// A duplicated point and a collinear midpoint both disappear,
	// leaving the plain quad.
	messy := []Vector{V(0, 0), V(0, 0), V(1, 0), V(2, 0), V(2, 2), V(0, 2)}
	clean := []Vector{V(0, 0), V(2, 0), V(2, 2), V(0, 2)}

	assert.Equal(t, DirectionCCW, ClassifyDirection(messy))

	got := NewPolygonFromCoords(messy)
	want := NewPolygonFromCoords(clean)
	require.NotNil(t, got)
	require.NotNil(t, want)
	assert.Equal(t, want.CCW().Coordinates(), got.CCW().Coordinates())
}

func TestClosedRingInputCollapses(t *testing.T) {
	// Inputs that repeat the starting point at the end classify the
	// same as open ones.
	open := []Vector{V(0, 0), V(1, 0), V(1, 1), V(0, 1)}
	closed := append(append([]Vector{}, open...), V(0, 0))
	assert.Equal(t, DirectionCCW, ClassifyDirection(closed))

	got := NewPolygonFromCoords(closed)
	require.NotNil(t, got)
	assert.Equal(t, 4, got.Len())
}

func TestCollinearAtWrap(t *testing.T) {
	// The starting point lies in the middle of the bottom edge; the
	// wrap-around pass must absorb it.
	coords := []Vector{V(0.5, 0), V(1, 0), V(1, 1), V(0, 1), V(0, 0)}
	assert.Equal(t, DirectionCCW, ClassifyDirection(coords))

	poly := NewPolygonFromCoords(coords)
	require.NotNil(t, poly)
	assert.Equal(t, 4, poly.Len())
	assert.ElementsMatch(t,
		[]Vector{V(1, 0), V(1, 1), V(0, 1), V(0, 0)},
		poly.CCW().Coordinates())
}

func TestPathIteratorElements(t *testing.T) {
	it := NewPathIterator([]Vector{V(0, 0), V(2, 0), V(2, 2), V(0, 2)})

	var elements []PathElement
	for {
		e, ok := it.Next()
		if !ok {
			break
		}
		elements = append(elements, e)
	}

	require.Len(t, elements, 4)
	for _, e := range elements {
		assert.Equal(t, LocalCCW, e.Local)
		assert.Equal(t, DirectionCCW, e.Path)
	}
	// Emission starts at the second point and closes back through the
	// first.
	assert.Equal(t, V(2, 0), elements[0].Coordinate)
	assert.Equal(t, V(2, 0), elements[0].Step)
	assert.Equal(t, V(2, 2), elements[1].Coordinate)
	assert.Equal(t, V(0, 2), elements[2].Coordinate)
	assert.Equal(t, V(0, 0), elements[3].Coordinate)
	assert.Equal(t, V(0, -2), elements[3].Step)
}

func TestPathIteratorHaltsOnMixed(t *testing.T) {
	it := NewPathIterator([]Vector{V(0, 0), V(2, 2), V(2, 0), V(0, 2)})

	var last PathElement
	count := 0
	for {
		e, ok := it.Next()
		if !ok {
			break
		}
		last = e
		count++
	}
	assert.Equal(t, DirectionMixed, last.Path)
	// The iterator stops the moment the verdict is known instead of
	// finishing the loop.
	assert.LessOrEqual(t, count, 3)

	// And stays stopped.
	_, ok := it.Next()
	assert.False(t, ok)
}

func TestPathIteratorDegenerateElement(t *testing.T) {
	it := NewPathIterator([]Vector{V(0, 0), V(1, 0), V(2, 0)})
	e, ok := it.Next()
	require.True(t, ok)
	assert.Equal(t, LocalBackward, e.Local)
	assert.Equal(t, DirectionInvalid, e.Path)
	_, ok = it.Next()
	assert.False(t, ok)
}

func TestClassificationIdempotent(t *testing.T) {
	messy := []Vector{V(0, 0), V(0, 0), V(1, 0), V(2, 0), V(2, 2), V(0, 2), V(0, 1)}
	poly := NewPolygonFromCoords(messy)
	require.NotNil(t, poly)

	// Reclassifying the output reproduces it unchanged.
	again := NewPolygonFromCoords(poly.CCW().Coordinates())
	require.NotNil(t, again)
	assert.Equal(t, poly.CCW().Coordinates(), again.CCW().Coordinates())
	assert.Equal(t, poly.Len(), again.Len())
}
