package spantree

import (
	"sort"

	"github.com/plan-systems/klog"

	"github.com/Gnumaru/anvil-level-design/island"
	"github.com/Gnumaru/anvil-level-design/mesh"
)

// BuildPrimal builds a spanning tree over the vertex graph of isl using
// only edges absent from dual. Candidate edges are every edge touching
// an island face, interior and boundary alike, minus the dual-tree
// edges; keeping the two trees edge-disjoint is what lets genus cutting
// treat leftover interior edges as independent dual cycles.
//
// The traversal is an iterative BFS from the lowest vertex handle,
// following each vertex's candidate edges in ascending handle order.
// Vertices unreachable through candidate edges simply stay out of the
// Parent map; callers treat that as degenerate input, not an error.
func BuildPrimal(m *mesh.Mesh, isl *island.Island, dual *DualTree) (*PrimalTree, error) {
	if m == nil {
		return nil, ErrNilMesh
	}
	if isl == nil || dual == nil {
		return nil, ErrNilIsland
	}

	t := &PrimalTree{
		Root:   mesh.NoVert,
		Edges:  make(map[mesh.EdgeID]struct{}),
		Parent: make(map[mesh.VertID]PrimalLink),
	}
	verts := isl.AllVerts(m)
	if len(verts) == 0 {
		return t, nil
	}

	inIsland := make(map[mesh.VertID]struct{}, len(verts))
	for _, v := range verts {
		inIsland[v] = struct{}{}
	}
	candidate := make(map[mesh.EdgeID]struct{})
	for _, e := range isl.AllEdges(m) {
		if !dual.Contains(e) {
			candidate[e] = struct{}{}
		}
	}

	t.Root = verts[0]
	visited := make(map[mesh.VertID]bool, len(verts))
	visited[t.Root] = true
	queue := []mesh.VertID{t.Root}

	for qi := 0; qi < len(queue); qi++ {
		v := queue[qi]
		edges := candidateEdges(m, v, candidate)
		for _, e := range edges {
			other := m.OtherVert(e, v)
			if _, ok := inIsland[other]; !ok {
				continue
			}
			if visited[other] {
				continue
			}
			visited[other] = true
			t.Edges[e] = struct{}{}
			t.Parent[other] = PrimalLink{Vert: v, Edge: e}
			queue = append(queue, other)
		}
	}

	klog.V(2).Infof("spantree: primal tree with %d edges for %d vertices", len(t.Edges), len(verts))

	return t, nil
}

// candidateEdges returns v's incident edges restricted to the candidate
// set, sorted ascending for deterministic traversal.
func candidateEdges(m *mesh.Mesh, v mesh.VertID, candidate map[mesh.EdgeID]struct{}) []mesh.EdgeID {
	var out []mesh.EdgeID
	for _, e := range m.VertEdges(v) {
		if _, ok := candidate[e]; ok {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}
