package convex

import "sort"

// hullCross is the cross product of OA and OB.
func hullCross(o, a, b Vector) float64 {
	return a.Sub(o).Cross(b.Sub(o))
}

// HullPolygon returns the convex hull of a point set as a validated
// polygon, using Andrew's monotone chain. Collinear points on the hull
// boundary are dropped, so the result satisfies the polygon invariant
// directly. Returns nil when the set spans fewer than three
// non-collinear points.
func HullPolygon(points []Vector) *Polygon {
	if len(points) < 3 {
		return nil
	}
	sorted := make([]Vector, len(points))
	copy(sorted, points)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].X == sorted[j].X {
			return sorted[i].Y < sorted[j].Y
		}
		return sorted[i].X < sorted[j].X
	})

	var lower []Vector
	for _, p := range sorted {
		for len(lower) >= 2 && !IsPositive(hullCross(lower[len(lower)-2], lower[len(lower)-1], p)) {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, p)
	}

	var upper []Vector
	for i := len(sorted) - 1; i >= 0; i-- {
		p := sorted[i]
		for len(upper) >= 2 && !IsPositive(hullCross(upper[len(upper)-2], upper[len(upper)-1], p)) {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, p)
	}

	// The last point of each chain starts the other; drop both repeats.
	hull := append(lower[:len(lower)-1], upper[:len(upper)-1]...)

	// The chains leave a CCW ring; the validating constructor is still
	// run so that degenerate sets (all points collinear) come back nil
	// rather than as a two-point sliver.
	return NewPolygonFromCoords(hull)
}
