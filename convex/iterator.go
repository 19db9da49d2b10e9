package convex

// The classification machine. Given an arbitrary closed sequence of
// points it produces the minimal subsequence whose consecutive triples
// all form genuine turns, tagging each emitted point with the turn taken
// there and the winding of the path so far. It is a pull pipeline in
// three stages: consecutive duplicates are skipped as points are read,
// collinear runs are merged into single steps, and the winding
// accumulator on top turns per-triple verdicts into a path verdict. No
// stage buffers the input; the whole machine carries two points and one
// step vector of state. Transitions are an explicit state enum consumed
// by one stepping function.

// TurnElement is one emitted vertex of the filtered path.
type TurnElement struct {
	// Index of the emitted point in the input sequence.
	Index int
	// Coordinate of the emitted point.
	Coordinate Vector
	// Step is the merged step from the previously emitted point (or the
	// path start) into this one.
	Step Vector
	// Local is the turn taken at this point.
	Local LocalDirection
}

// PathElement is a TurnElement plus the winding of the path up to and
// including it. The Path value of the last element the iterator emits is
// the verdict for the whole closed path.
type PathElement struct {
	TurnElement
	Path Direction
}

type turnState int

const (
	turnStateInit turnState = iota
	turnStateScan
	turnStateCloseLast
	turnStateCloseFirst
	turnStateDone
)

// turnIterator implements the duplicate filter, the collinear-run merge
// and the wrap-around closure. It reads coordinates through an accessor
// so that vertex slices and raw coordinate slices share it.
type turnIterator struct {
	at func(int) Vector
	n  int // effective input length, trailing repeats of the start trimmed

	state turnState
	next  int // next input index to read

	firstIdx  int
	first     Vector
	secondIdx int
	second    Vector

	curIdx int
	cur    Vector // middle point of the next triple to classify
	step   Vector // merged step into cur
}

func newTurnIterator(at func(int) Vector, n int) *turnIterator {
	return &turnIterator{at: at, n: n, state: turnStateInit}
}

// pull returns the next input point that is not a duplicate of the
// current point.
func (it *turnIterator) pull() (Vector, int, bool) {
	for it.next < it.n {
		i := it.next
		it.next++
		p := it.at(i)
		if p.EqualTo(it.cur) {
			continue
		}
		return p, i, true
	}
	return Vector{}, 0, false
}

// emit produces an element for the current middle point and advances the
// pending step past it.
func (it *turnIterator) emit(local LocalDirection, to Vector, toIdx int) TurnElement {
	e := TurnElement{Index: it.curIdx, Coordinate: it.cur, Step: it.step, Local: local}
	it.step = to.Sub(it.cur)
	it.curIdx = toIdx
	it.cur = to
	return e
}

// degenerate marks the current middle point as the point where the path
// folded back, and stops the iterator.
func (it *turnIterator) degenerate() TurnElement {
	it.state = turnStateDone
	return TurnElement{Index: it.curIdx, Coordinate: it.cur, Step: it.step, Local: LocalBackward}
}

// absorb drops the current middle point, merging its incoming and
// outgoing steps.
func (it *turnIterator) absorb(to Vector, toIdx int) {
	it.step = it.step.Add(to.Sub(it.cur))
	it.curIdx = toIdx
	it.cur = to
}

func (it *turnIterator) Next() (TurnElement, bool) {
	for {
		switch it.state {
		case turnStateInit:
			if it.n == 0 {
				it.state = turnStateDone
				return TurnElement{}, false
			}
			it.firstIdx = 0
			it.first = it.at(0)
			// A closed input may repeat its starting point at the end;
			// trim that before scanning so the wrap-around triples see
			// distinct points.
			for it.n > 1 && it.at(it.n-1).EqualTo(it.first) {
				it.n--
			}
			it.curIdx = 0
			it.cur = it.first
			it.next = 1
			second, i, ok := it.pull()
			if !ok {
				// A single distinct point. No path at all.
				return it.degenerate(), true
			}
			it.secondIdx = i
			it.second = second
			it.step = second.Sub(it.first)
			it.curIdx = i
			it.cur = second
			it.state = turnStateScan

		case turnStateScan:
			p, i, ok := it.pull()
			if !ok {
				it.state = turnStateCloseLast
				continue
			}
			switch localDirection(it.step, p.Sub(it.cur)) {
			case LocalCCW:
				return it.emit(LocalCCW, p, i), true
			case LocalCW:
				return it.emit(LocalCW, p, i), true
			case LocalForward:
				it.absorb(p, i)
			case LocalBackward:
				return it.degenerate(), true
			}

		case turnStateCloseLast:
			// Wrap-around triple at the last point: ... -> last -> first.
			it.state = turnStateCloseFirst
			switch localDirection(it.step, it.first.Sub(it.cur)) {
			case LocalCCW:
				return it.emit(LocalCCW, it.first, it.firstIdx), true
			case LocalCW:
				return it.emit(LocalCW, it.first, it.firstIdx), true
			case LocalForward:
				it.absorb(it.first, it.firstIdx)
			case LocalBackward:
				return it.degenerate(), true
			}

		case turnStateCloseFirst:
			// Wrap-around triple at the first point: last -> first ->
			// second. The outgoing step retraces the very first segment
			// of the scan; if the first point turns out to be collinear
			// on the closing run it is absorbed, and the turn at the
			// second point has already been emitted with a co-directional
			// incoming step, so nothing needs revisiting.
			it.state = turnStateDone
			switch localDirection(it.step, it.second.Sub(it.cur)) {
			case LocalCCW:
				return it.emit(LocalCCW, it.second, it.secondIdx), true
			case LocalCW:
				return it.emit(LocalCW, it.second, it.secondIdx), true
			case LocalForward:
				return TurnElement{}, false
			case LocalBackward:
				return it.degenerate(), true
			}

		default:
			return TurnElement{}, false
		}
	}
}

// PathIterator wraps the turn machine with the winding accumulator. Once
// the winding is known to be mixed or the path degenerate, iteration
// halts; the Path value of the final element is the verdict.
type PathIterator struct {
	inner *turnIterator
	path  Direction
	begun bool
	done  bool
}

// NewPathIterator classifies a raw coordinate sequence.
func NewPathIterator(coords []Vector) *PathIterator {
	return newPathIterator(func(i int) Vector { return coords[i] }, len(coords))
}

func newPathIterator(at func(int) Vector, n int) *PathIterator {
	return &PathIterator{inner: newTurnIterator(at, n)}
}

func (it *PathIterator) Next() (PathElement, bool) {
	if it.done {
		return PathElement{}, false
	}
	e, ok := it.inner.Next()
	if !ok {
		it.done = true
		return PathElement{}, false
	}
	out := PathElement{TurnElement: e}
	switch {
	case e.Local == LocalBackward:
		out.Path = DirectionInvalid
		it.done = true
	case !it.begun:
		it.begun = true
		if e.Local == LocalCCW {
			it.path = DirectionCCW
		} else {
			it.path = DirectionCW
		}
		out.Path = it.path
	case (e.Local == LocalCCW) != (it.path == DirectionCCW):
		out.Path = DirectionMixed
		it.done = true
	default:
		out.Path = it.path
	}
	return out, true
}

// runPath drains a path iterator, returning every emitted element and
// the terminal direction. A path that closes with fewer than three
// turns cannot bound any area and is invalid.
func runPath(at func(int) Vector, n int) ([]PathElement, Direction) {
	it := newPathIterator(at, n)
	var elements []PathElement
	dir := DirectionInvalid
	for {
		e, ok := it.Next()
		if !ok {
			break
		}
		elements = append(elements, e)
		dir = e.Path
	}
	if dir.IsValid() && len(elements) < 3 {
		dir = DirectionInvalid
	}
	return elements, dir
}

// ClassifyDirection returns the winding of the closed path through the
// given points.
func ClassifyDirection(coords []Vector) Direction {
	_, dir := runPath(func(i int) Vector { return coords[i] }, len(coords))
	return dir
}
