package mesh

// Mesh is a flat-array polygon mesh. Vertices, edges, and faces live in
// slices indexed by their handles, so handle h of element kind K is always
// the position of that element in its slice. Edges are created implicitly
// by AddFace and deduplicated by endpoint pair, so two faces sharing a
// vertex pair always share one edge handle.
//
// Mesh is not safe for concurrent mutation; the seam pipeline is
// single-threaded by design.
type Mesh struct {
	verts []vert
	edges []edge
	faces []face

	// lookup maps a canonical (low, high) endpoint pair to its edge.
	lookup map[[2]VertID]EdgeID
}

// New returns an empty mesh.
func New() *Mesh {
	return &Mesh{lookup: make(map[[2]VertID]EdgeID)}
}

// AddVert creates a new vertex and returns its handle.
// Handles are issued densely starting at 0.
func (m *Mesh) AddVert() VertID {
	m.verts = append(m.verts, vert{})

	return VertID(len(m.verts) - 1)
}

// AddFace creates a face from an ordered vertex loop and returns its handle.
// Edges between consecutive loop vertices (closing back to the first) are
// created on demand and shared with previously added faces.
//
// Returns ErrFaceTooShort for loops under MinFaceSides vertices,
// ErrVertNotFound for unknown handles, and ErrDegenerateFace for loops
// that repeat a vertex.
func (m *Mesh) AddFace(normal Vec3, loop ...VertID) (FaceID, error) {
	if len(loop) < MinFaceSides {
		return NoFace, ErrFaceTooShort
	}
	seen := make(map[VertID]struct{}, len(loop))
	for _, v := range loop {
		if int(v) < 0 || int(v) >= len(m.verts) {
			return NoFace, ErrVertNotFound
		}
		if _, dup := seen[v]; dup {
			return NoFace, ErrDegenerateFace
		}
		seen[v] = struct{}{}
	}

	id := FaceID(len(m.faces))
	f := face{
		verts:  append([]VertID(nil), loop...),
		edges:  make([]EdgeID, 0, len(loop)),
		normal: normal,
	}
	for i := range loop {
		a, b := loop[i], loop[(i+1)%len(loop)]
		e := m.ensureEdge(a, b)
		m.edges[e].faces = append(m.edges[e].faces, id)
		f.edges = append(f.edges, e)
	}
	m.faces = append(m.faces, f)

	return id, nil
}

// ensureEdge returns the edge between a and b, creating it if absent.
func (m *Mesh) ensureEdge(a, b VertID) EdgeID {
	if b < a {
		a, b = b, a
	}
	key := [2]VertID{a, b}
	if e, ok := m.lookup[key]; ok {
		return e
	}

	e := EdgeID(len(m.edges))
	m.edges = append(m.edges, edge{verts: key})
	m.verts[a].edges = append(m.verts[a].edges, e)
	m.verts[b].edges = append(m.verts[b].edges, e)
	m.lookup[key] = e

	return e
}
