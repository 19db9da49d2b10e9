package convex

// Vertex is anything that sits at a 2D coordinate. Polygons own their
// vertices by value: any vertex taken from elsewhere is cloned before
// being stored, and every derived polygon clones again, so two polygons
// never share a vertex. Implementations whose payload contains reference
// internals must deep-copy in Clone.
type Vertex interface {
	// Coordinate returns the vertex position.
	Coordinate() Vector

	// Clone returns an independently owned copy.
	Clone() Vertex

	// Flipped returns a copy mirrored across the x axis. Payloads that
	// carry orientation-dependent data must mirror it too.
	Flipped() Vertex

	// Translated returns a copy moved by the given offset.
	Translated(offset Vector) Vertex

	// WithCoordinate returns a copy carrying the same payload at a new
	// position. Split and transform operations use this to synthesize
	// vertices at computed coordinates.
	WithCoordinate(c Vector) Vertex
}

// PlainVertex is the trivial Vertex: a bare coordinate with no payload.
type PlainVertex struct {
	C Vector
}

func NewPlainVertex(c Vector) *PlainVertex {
	return &PlainVertex{C: c}
}

func (v *PlainVertex) Coordinate() Vector { return v.C }

func (v *PlainVertex) Clone() Vertex {
	c := *v
	return &c
}

func (v *PlainVertex) Flipped() Vertex {
	return &PlainVertex{C: v.C.Flipped()}
}

func (v *PlainVertex) Translated(offset Vector) Vertex {
	return &PlainVertex{C: v.C.Add(offset)}
}

func (v *PlainVertex) WithCoordinate(c Vector) Vertex {
	return &PlainVertex{C: c}
}

// PlainVertices wraps raw coordinates into vertices.
func PlainVertices(coords []Vector) []Vertex {
	vertices := make([]Vertex, len(coords))
	for i, c := range coords {
		vertices[i] = NewPlainVertex(c)
	}
	return vertices
}
