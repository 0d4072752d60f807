// Package island groups candidate quad faces into maximal connected
// regions separated by existing seams, angle-threshold violations, and
// non-quad faces. This file declares the Island type, its adjacency
// records, and sentinel errors.
package island

import (
	"errors"
	"sort"

	"github.com/Gnumaru/anvil-level-design/mesh"
)

// ErrNilMesh is returned when a nil mesh pointer is passed.
var ErrNilMesh = errors.New("island: mesh is nil")

// Neighbor records one adjacency arc inside an island: the neighboring
// quad and the mesh edge shared with it.
type Neighbor struct {
	Face mesh.FaceID
	Edge mesh.EdgeID
}

// Island is a maximal connected set of quad faces together with its
// face-adjacency map. Adjacency is restricted to edges that were
// non-seam at partition time, below the angle threshold, and joining two
// quad faces of the candidate set.
type Island struct {
	faces map[mesh.FaceID]struct{}
	adj   map[mesh.FaceID][]Neighbor
}

// newIsland returns an empty island.
func newIsland() *Island {
	return &Island{
		faces: make(map[mesh.FaceID]struct{}),
		adj:   make(map[mesh.FaceID][]Neighbor),
	}
}

// Size returns the number of faces in the island.
func (il *Island) Size() int { return len(il.faces) }

// Contains reports whether f belongs to the island.
func (il *Island) Contains(f mesh.FaceID) bool {
	_, ok := il.faces[f]

	return ok
}

// Faces returns the island's faces in ascending handle order.
func (il *Island) Faces() []mesh.FaceID {
	out := make([]mesh.FaceID, 0, len(il.faces))
	for f := range il.faces {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Neighbors returns the adjacency arcs of f, ordered by ascending
// neighbor handle (then edge handle). The slice is shared; callers must
// not mutate it.
func (il *Island) Neighbors(f mesh.FaceID) []Neighbor { return il.adj[f] }

// AllEdges returns every edge touching an island face, interior and
// boundary alike, in ascending handle order.
func (il *Island) AllEdges(m *mesh.Mesh) []mesh.EdgeID {
	set := make(map[mesh.EdgeID]struct{})
	for f := range il.faces {
		for _, e := range m.FaceEdges(f) {
			set[e] = struct{}{}
		}
	}
	out := make([]mesh.EdgeID, 0, len(set))
	for e := range set {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// AllVerts returns every vertex touching an island face in ascending
// handle order.
func (il *Island) AllVerts(m *mesh.Mesh) []mesh.VertID {
	set := make(map[mesh.VertID]struct{})
	for f := range il.faces {
		for _, v := range m.FaceVerts(f) {
			set[v] = struct{}{}
		}
	}
	out := make([]mesh.VertID, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// IncidentFaces returns how many faces of e belong to the island.
// An edge with exactly two incident island faces is interior; exactly
// one makes it a boundary edge.
func (il *Island) IncidentFaces(m *mesh.Mesh, e mesh.EdgeID) int {
	n := 0
	for _, f := range m.EdgeFaces(e) {
		if il.Contains(f) {
			n++
		}
	}

	return n
}
