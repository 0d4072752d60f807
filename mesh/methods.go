package mesh

// Query methods. Handles passed here must have been issued by this mesh;
// out-of-range handles panic with the usual slice bounds error, the same
// contract a caller gets from indexing a slice directly.

// NumVerts returns the number of vertices.
func (m *Mesh) NumVerts() int { return len(m.verts) }

// NumEdges returns the number of edges.
func (m *Mesh) NumEdges() int { return len(m.edges) }

// NumFaces returns the number of faces.
func (m *Mesh) NumFaces() int { return len(m.faces) }

// Faces returns every face handle in ascending order.
func (m *Mesh) Faces() []FaceID {
	out := make([]FaceID, len(m.faces))
	for i := range out {
		out[i] = FaceID(i)
	}

	return out
}

// FaceVerts returns the ordered vertex loop of f.
func (m *Mesh) FaceVerts(f FaceID) []VertID {
	return append([]VertID(nil), m.faces[f].verts...)
}

// FaceEdges returns the ordered edge loop of f.
func (m *Mesh) FaceEdges(f FaceID) []EdgeID {
	return append([]EdgeID(nil), m.faces[f].edges...)
}

// FaceNormal returns the normal vector of f.
func (m *Mesh) FaceNormal(f FaceID) Vec3 { return m.faces[f].normal }

// IsQuad reports whether f has a loop length of exactly QuadSides.
func (m *Mesh) IsQuad(f FaceID) bool { return len(m.faces[f].verts) == QuadSides }

// EdgeVerts returns the two endpoints of e, lowest handle first.
func (m *Mesh) EdgeVerts(e EdgeID) (VertID, VertID) {
	return m.edges[e].verts[0], m.edges[e].verts[1]
}

// EdgeFaces returns the faces incident to e.
func (m *Mesh) EdgeFaces(e EdgeID) []FaceID {
	return append([]FaceID(nil), m.edges[e].faces...)
}

// OtherVert returns the endpoint of e that is not v, or NoVert when v is
// not an endpoint of e.
func (m *Mesh) OtherVert(e EdgeID, v VertID) VertID {
	switch v {
	case m.edges[e].verts[0]:
		return m.edges[e].verts[1]
	case m.edges[e].verts[1]:
		return m.edges[e].verts[0]
	}

	return NoVert
}

// VertEdges returns the edges incident to v, in creation order.
func (m *Mesh) VertEdges(v VertID) []EdgeID {
	return append([]EdgeID(nil), m.verts[v].edges...)
}

// EdgeBetween returns the edge joining a and b, if one exists.
func (m *Mesh) EdgeBetween(a, b VertID) (EdgeID, bool) {
	if b < a {
		a, b = b, a
	}
	e, ok := m.lookup[[2]VertID{a, b}]

	return e, ok
}

// Seam reports whether e carries the seam flag.
func (m *Mesh) Seam(e EdgeID) bool { return m.edges[e].seam }

// MarkSeam sets the seam flag on e. The flag is monotonic: nothing in
// this module ever clears it.
func (m *Mesh) MarkSeam(e EdgeID) { m.edges[e].seam = true }

// SeamEdges returns every seam-flagged edge in ascending order.
func (m *Mesh) SeamEdges() []EdgeID {
	var out []EdgeID
	for i := range m.edges {
		if m.edges[i].seam {
			out = append(out, EdgeID(i))
		}
	}

	return out
}

// SeamCount returns the number of seam-flagged edges.
func (m *Mesh) SeamCount() int {
	n := 0
	for i := range m.edges {
		if m.edges[i].seam {
			n++
		}
	}

	return n
}
