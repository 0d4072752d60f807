// Package island implements the first stage of the seam-topology
// pipeline: partitioning candidate faces into quad islands.
//
// Partition walks the candidate faces with an iterative breadth-first
// traversal. Two quad faces are adjacent only if they share a non-seam
// edge and the angle between their normals stays within the threshold.
// Edges that violate the threshold, and edges bordering a non-quad
// candidate, are marked seam on the spot, so partitioning both discovers
// islands and lays down their hard boundaries.
//
// Determinism: candidate faces are seeded in ascending handle order and
// neighbors of each face are visited in ascending (face, edge) handle
// order, so identical mesh state and threshold always produce identical
// islands and identical seam flags.
package island

import (
	"sort"

	"github.com/plan-systems/klog"

	"github.com/Gnumaru/anvil-level-design/mesh"
)

// Partition groups the candidate faces of m into maximal connected quad
// islands under angleThreshold (radians) and returns the islands plus
// the excluded non-quad faces in ascending order.
//
// Side effects on m: edges between a candidate quad and a candidate
// non-quad are marked seam, as are candidate-internal edges whose normal
// angle exceeds the threshold. Empty input yields empty output; the only
// error is ErrNilMesh.
func Partition(m *mesh.Mesh, faces []mesh.FaceID, angleThreshold float64) ([]*Island, []mesh.FaceID, error) {
	if m == nil {
		return nil, nil, ErrNilMesh
	}

	// Candidate set, deduplicated; seeds sorted ascending so island
	// discovery order depends on mesh state alone.
	candidates := make(map[mesh.FaceID]struct{}, len(faces))
	for _, f := range faces {
		candidates[f] = struct{}{}
	}
	seeds := make([]mesh.FaceID, 0, len(candidates))
	for f := range candidates {
		seeds = append(seeds, f)
	}
	sort.Slice(seeds, func(i, j int) bool { return seeds[i] < seeds[j] })

	// First pass: classify non-quads. They never join an island.
	visited := make(map[mesh.FaceID]bool, len(candidates))
	nonQuadSet := make(map[mesh.FaceID]struct{})
	var nonQuad []mesh.FaceID
	for _, f := range seeds {
		if !m.IsQuad(f) {
			nonQuadSet[f] = struct{}{}
			nonQuad = append(nonQuad, f)
			visited[f] = true
		}
	}

	var islands []*Island
	for _, start := range seeds {
		if visited[start] {
			continue
		}
		il := growIsland(m, start, candidates, nonQuadSet, visited, angleThreshold)
		islands = append(islands, il)
		klog.V(2).Infof("island: grew island of %d faces from face %d", il.Size(), start)
	}

	return islands, nonQuad, nil
}

// growIsland runs one breadth-first expansion from start, recording
// faces and adjacency arcs and marking boundary seams as it goes.
func growIsland(m *mesh.Mesh, start mesh.FaceID, candidates map[mesh.FaceID]struct{},
	nonQuad map[mesh.FaceID]struct{}, visited map[mesh.FaceID]bool, angleThreshold float64) *Island {

	il := newIsland()
	visited[start] = true
	queue := []mesh.FaceID{start}

	for qi := 0; qi < len(queue); qi++ {
		f := queue[qi]
		il.faces[f] = struct{}{}
		il.adj[f] = nil

		// Collect traversable neighbors of f, then order them so the
		// angle checks and seam marking happen ascending by (face, edge).
		arcs := collectArcs(m, f, candidates, nonQuad)

		for _, a := range arcs {
			angle := m.FaceNormal(f).AngleTo(m.FaceNormal(a.Face))
			if angle > angleThreshold {
				// Crease beyond the threshold: hard boundary.
				m.MarkSeam(a.Edge)
				continue
			}
			il.adj[f] = append(il.adj[f], a)
			if !visited[a.Face] {
				visited[a.Face] = true
				queue = append(queue, a.Face)
			}
		}
	}

	return il
}

// collectArcs gathers the candidate arcs out of f: every (neighbor,
// shared edge) pair whose edge is not already a seam and whose neighbor
// is a candidate quad. Edges shared with a candidate non-quad are marked
// seam immediately and never traversed. The result is sorted ascending
// by neighbor handle, then edge handle.
func collectArcs(m *mesh.Mesh, f mesh.FaceID, candidates map[mesh.FaceID]struct{},
	nonQuad map[mesh.FaceID]struct{}) []Neighbor {

	var arcs []Neighbor
	for _, e := range m.FaceEdges(f) {
		for _, nb := range m.EdgeFaces(e) {
			if nb == f {
				continue
			}
			if _, ok := candidates[nb]; !ok {
				continue
			}
			if m.Seam(e) {
				// Existing seams are respected as island boundaries.
				continue
			}
			if _, ok := nonQuad[nb]; ok {
				m.MarkSeam(e)
				continue
			}
			arcs = append(arcs, Neighbor{Face: nb, Edge: e})
		}
	}
	sort.Slice(arcs, func(i, j int) bool {
		if arcs[i].Face != arcs[j].Face {
			return arcs[i].Face < arcs[j].Face
		}

		return arcs[i].Edge < arcs[j].Edge
	})

	return arcs
}
