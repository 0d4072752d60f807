// Package cyclecut eliminates the independent cycles of an island's
// dual graph by seaming fundamental cycles, forcing the island to
// genus 0.
//
// Interior edges are the edges shared by exactly two island faces.
// After building the dual spanning tree and the edge-disjoint primal
// spanning tree, every interior edge left outside both trees (a co-tree
// edge) corresponds to one independent dual cycle. For each co-tree
// edge the fundamental cycle is the primal-tree path between its
// endpoints plus the edge itself; marking every cycle edge as seam cuts
// the corresponding handle.
//
// Co-tree edges are processed in ascending handle order, kept in a
// red-black ordered set, so cut output is deterministic.
package cyclecut

import (
	"errors"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/plan-systems/klog"

	"github.com/Gnumaru/anvil-level-design/island"
	"github.com/Gnumaru/anvil-level-design/mesh"
	"github.com/Gnumaru/anvil-level-design/spantree"
)

// Sentinel errors for cycle computation.
var (
	// ErrNilMesh is returned when a nil mesh pointer is passed.
	ErrNilMesh = errors.New("cyclecut: mesh is nil")

	// ErrNilIsland is returned when a nil island pointer is passed.
	ErrNilIsland = errors.New("cyclecut: island is nil")
)

// Cycles computes the fundamental cycles of isl, one per co-tree edge,
// in ascending co-tree edge order. Each cycle lists the primal-tree
// path edges followed by the co-tree edge itself. When the primal tree
// connects no path between the endpoints (non-manifold or otherwise
// degenerate input) the cycle degrades to just the co-tree edge; this
// is logged, never fatal.
func Cycles(m *mesh.Mesh, isl *island.Island) ([][]mesh.EdgeID, error) {
	if m == nil {
		return nil, ErrNilMesh
	}
	if isl == nil {
		return nil, ErrNilIsland
	}

	dual, err := spantree.BuildDual(m, isl)
	if err != nil {
		return nil, err
	}
	primal, err := spantree.BuildPrimal(m, isl, dual)
	if err != nil {
		return nil, err
	}

	// Co-tree edges: interior edges absent from both trees, ascending.
	cotree := treeset.NewWithIntComparator()
	interior := 0
	for _, e := range isl.AllEdges(m) {
		if isl.IncidentFaces(m, e) != 2 {
			continue
		}
		interior++
		if dual.Contains(e) || primal.Contains(e) {
			continue
		}
		cotree.Add(int(e))
	}
	klog.V(2).Infof("cyclecut: %d co-tree edges (interior %d, dual %d, primal %d)",
		cotree.Size(), interior, len(dual.Edges), len(primal.Edges))

	var cycles [][]mesh.EdgeID
	cotree.Each(func(_ int, value interface{}) {
		e := mesh.EdgeID(value.(int))
		v1, v2 := m.EdgeVerts(e)
		path := tracePath(v1, v2, primal)
		cycles = append(cycles, append(path, e))
	})

	return cycles, nil
}

// Cut marks every fundamental-cycle edge of isl as seam and returns the
// number of distinct cycle edges.
func Cut(m *mesh.Mesh, isl *island.Island) (int, error) {
	cycles, err := Cycles(m, isl)
	if err != nil {
		return 0, err
	}

	marked := make(map[mesh.EdgeID]struct{})
	for _, cycle := range cycles {
		for _, e := range cycle {
			if _, ok := marked[e]; ok {
				continue
			}
			m.MarkSeam(e)
			marked[e] = struct{}{}
		}
	}
	if len(marked) > 0 {
		klog.V(2).Infof("cyclecut: marked %d seams across %d cycles", len(marked), len(cycles))
	}

	return len(marked), nil
}

// tracePath returns the primal-tree path between v1 and v2: the chain
// v1 up to the lowest common ancestor, then v2's chain up to the same
// ancestor. Returns nil when the two vertices share no ancestor, which
// only happens on degenerate input.
func tracePath(v1, v2 mesh.VertID, t *spantree.PrimalTree) []mesh.EdgeID {
	// Walk v1 to the root, remembering each hop and every ancestor.
	type hop struct {
		parent mesh.VertID
		edge   mesh.EdgeID
	}
	var chain1 []hop
	ancestors := map[mesh.VertID]struct{}{v1: {}}
	for cur := v1; ; {
		link, ok := t.Parent[cur]
		if !ok {
			break
		}
		chain1 = append(chain1, hop{parent: link.Vert, edge: link.Edge})
		ancestors[link.Vert] = struct{}{}
		cur = link.Vert
	}

	// Walk v2 upward until an ancestor of v1 appears.
	var chain2 []mesh.EdgeID
	lca := v2
	for {
		if _, ok := ancestors[lca]; ok {
			break
		}
		link, ok := t.Parent[lca]
		if !ok {
			klog.Warningf("cyclecut: vertices %d and %d not connected in primal tree", v1, v2)

			return nil
		}
		chain2 = append(chain2, link.Edge)
		lca = link.Vert
	}

	// v1's edges up to the common ancestor, then v2's. When v1 itself is
	// the ancestor its side of the path is empty.
	var path []mesh.EdgeID
	if lca != v1 {
		for _, h := range chain1 {
			path = append(path, h.edge)
			if h.parent == lca {
				break
			}
		}
	}
	path = append(path, chain2...)

	return path
}
