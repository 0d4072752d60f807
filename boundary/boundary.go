// Package boundary detects the boundary-edge loops of an island and,
// when more than one exists, seams shortest connecting paths so the
// flattened island ends up with a single boundary.
//
// A boundary edge has exactly one incident face inside the island.
// Loops are connected components over boundary-vertex adjacency,
// discovered from ascending start vertices; merging walks consecutive
// loop pairs in discovery order with a multi-source BFS over all island
// edges.
package boundary

import (
	"errors"
	"sort"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/plan-systems/klog"

	"github.com/Gnumaru/anvil-level-design/island"
	"github.com/Gnumaru/anvil-level-design/mesh"
)

// Sentinel errors for boundary processing.
var (
	// ErrNilMesh is returned when a nil mesh pointer is passed.
	ErrNilMesh = errors.New("boundary: mesh is nil")

	// ErrNilIsland is returned when a nil island pointer is passed.
	ErrNilIsland = errors.New("boundary: island is nil")
)

// Loop is one connected boundary component, stored as its vertex set.
type Loop map[mesh.VertID]struct{}

// Contains reports whether v lies on the loop.
func (l Loop) Contains(v mesh.VertID) bool {
	_, ok := l[v]

	return ok
}

// Verts returns the loop's vertices in ascending handle order.
func (l Loop) Verts() []mesh.VertID {
	out := make([]mesh.VertID, 0, len(l))
	for v := range l {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Edges returns the boundary edges of isl in ascending handle order:
// every edge with exactly one incident face inside the island.
func Edges(m *mesh.Mesh, isl *island.Island) ([]mesh.EdgeID, error) {
	if m == nil {
		return nil, ErrNilMesh
	}
	if isl == nil {
		return nil, ErrNilIsland
	}

	var out []mesh.EdgeID
	for _, e := range isl.AllEdges(m) {
		if isl.IncidentFaces(m, e) == 1 {
			out = append(out, e)
		}
	}

	return out, nil
}

// Loops groups the boundary edges of isl into connected loops. Loops
// appear in discovery order, seeded from ascending boundary vertices,
// so the result is deterministic. A closed island yields no loops.
func Loops(m *mesh.Mesh, isl *island.Island) ([]Loop, error) {
	edges, err := Edges(m, isl)
	if err != nil {
		return nil, err
	}
	if len(edges) == 0 {
		return nil, nil
	}

	// Boundary-vertex adjacency, with an ordered vertex set for seeds.
	vertEdges := make(map[mesh.VertID][]mesh.EdgeID)
	seeds := treeset.NewWithIntComparator()
	for _, e := range edges {
		a, b := m.EdgeVerts(e)
		vertEdges[a] = append(vertEdges[a], e)
		vertEdges[b] = append(vertEdges[b], e)
		seeds.Add(int(a), int(b))
	}

	visited := make(map[mesh.VertID]bool, len(vertEdges))
	var loops []Loop
	seeds.Each(func(_ int, value interface{}) {
		start := mesh.VertID(value.(int))
		if visited[start] {
			return
		}
		loop := make(Loop)
		visited[start] = true
		queue := []mesh.VertID{start}
		for qi := 0; qi < len(queue); qi++ {
			v := queue[qi]
			loop[v] = struct{}{}
			for _, e := range vertEdges[v] {
				other := m.OtherVert(e, v)
				if !visited[other] {
					visited[other] = true
					queue = append(queue, other)
				}
			}
		}
		loops = append(loops, loop)
	})

	return loops, nil
}

// Connect merges multiple boundary loops of isl into one by marking the
// shortest connecting path between each consecutive loop pair as seam.
// Returns the number of edges newly flagged. Islands with one loop or
// none are left untouched. An unreachable pair is logged and skipped.
func Connect(m *mesh.Mesh, isl *island.Island) (int, error) {
	loops, err := Loops(m, isl)
	if err != nil {
		return 0, err
	}
	if len(loops) <= 1 {
		return 0, nil
	}
	klog.V(2).Infof("boundary: island has %d boundary loops", len(loops))

	edgeSet := make(map[mesh.EdgeID]struct{})
	for _, e := range isl.AllEdges(m) {
		edgeSet[e] = struct{}{}
	}
	vertSet := make(map[mesh.VertID]struct{})
	for _, v := range isl.AllVerts(m) {
		vertSet[v] = struct{}{}
	}

	marked := 0
	for i := 0; i+1 < len(loops); i++ {
		path := shortestPath(m, loops[i], loops[i+1], edgeSet, vertSet)
		if path == nil {
			klog.Warningf("boundary: no path between boundary loops %d and %d", i, i+1)
			continue
		}
		for _, e := range path {
			if !m.Seam(e) {
				m.MarkSeam(e)
				marked++
			}
		}
	}
	if marked > 0 {
		klog.V(2).Infof("boundary: marked %d seams to merge %d loops", marked, len(loops))
	}

	return marked, nil
}

// pathLink records the BFS predecessor of a vertex. Seed vertices carry
// Edge == mesh.NoEdge so they are never mistaken for a reached target.
type pathLink struct {
	vert mesh.VertID
	edge mesh.EdgeID
}

// shortestPath runs a multi-source BFS seeded from every vertex of from
// (ascending) across the island's edges and returns the edge path to
// the first vertex of to it reaches, or nil when none is reachable.
func shortestPath(m *mesh.Mesh, from, to Loop,
	edgeSet map[mesh.EdgeID]struct{}, vertSet map[mesh.VertID]struct{}) []mesh.EdgeID {

	parent := make(map[mesh.VertID]pathLink)
	var queue []mesh.VertID
	for _, v := range from.Verts() {
		parent[v] = pathLink{vert: mesh.NoVert, edge: mesh.NoEdge}
		queue = append(queue, v)
	}

	target := mesh.NoVert
	for qi := 0; qi < len(queue) && target == mesh.NoVert; qi++ {
		v := queue[qi]
		if to.Contains(v) && parent[v].edge != mesh.NoEdge {
			target = v
			break
		}
		for _, e := range islandEdges(m, v, edgeSet) {
			other := m.OtherVert(e, v)
			if _, ok := vertSet[other]; !ok {
				continue
			}
			if _, seen := parent[other]; seen {
				continue
			}
			parent[other] = pathLink{vert: v, edge: e}
			queue = append(queue, other)
		}
	}
	if target == mesh.NoVert {
		return nil
	}

	var path []mesh.EdgeID
	for cur := target; parent[cur].edge != mesh.NoEdge; cur = parent[cur].vert {
		path = append(path, parent[cur].edge)
	}

	return path
}

// islandEdges returns v's incident edges restricted to the island,
// ascending.
func islandEdges(m *mesh.Mesh, v mesh.VertID, edgeSet map[mesh.EdgeID]struct{}) []mesh.EdgeID {
	var out []mesh.EdgeID
	for _, e := range m.VertEdges(v) {
		if _, ok := edgeSet[e]; ok {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}
