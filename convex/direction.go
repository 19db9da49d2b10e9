package convex

// Direction is the accumulated winding of a closed point path.
type Direction int

const (
	// DirectionInvalid means the path never produced two non-degenerate
	// segments, or reversed onto itself before a turn could be
	// classified.
	DirectionInvalid Direction = iota
	DirectionCCW
	DirectionCW
	// DirectionMixed means the turn direction changed sign partway
	// through the path; the path is not convex.
	DirectionMixed
)

func (d Direction) String() string {
	switch d {
	case DirectionCCW:
		return "ccw"
	case DirectionCW:
		return "cw"
	case DirectionMixed:
		return "mixed"
	default:
		return "invalid"
	}
}

// Reversed returns the direction of the same path traversed backward.
// Mixed and invalid paths stay mixed and invalid.
func (d Direction) Reversed() Direction {
	switch d {
	case DirectionCCW:
		return DirectionCW
	case DirectionCW:
		return DirectionCCW
	default:
		return d
	}
}

// IsValid reports whether the direction describes a usable convex path.
func (d Direction) IsValid() bool {
	return d == DirectionCCW || d == DirectionCW
}

// LocalDirection classifies a single point triple: the turn taken at the
// middle point given the incoming and outgoing steps.
type LocalDirection int

const (
	LocalCCW LocalDirection = iota
	LocalCW
	// LocalForward means the three points are collinear and the second
	// step continues in the same direction. The middle point lies on the
	// segment between its neighbors and contributes nothing.
	LocalForward
	// LocalBackward means the three points are collinear but the second
	// step reverses. The path folds onto itself, which no convex shape
	// survives.
	LocalBackward
)

func (d LocalDirection) String() string {
	switch d {
	case LocalCCW:
		return "ccw"
	case LocalCW:
		return "cw"
	case LocalForward:
		return "forward"
	default:
		return "backward"
	}
}

// localDirection classifies the turn from step s to step s2.
func localDirection(s, s2 Vector) LocalDirection {
	switch Sign(s.Cross(s2)) {
	case 1:
		return LocalCCW
	case -1:
		return LocalCW
	}
	if IsNegative(s.Dot(s2)) {
		return LocalBackward
	}
	return LocalForward
}
