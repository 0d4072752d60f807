// Package spantree builds the two spanning trees that drive genus
// cutting: a dual tree over an island's face-adjacency graph, and a
// primal tree over its vertex graph that is edge-disjoint from the dual
// tree. This file declares the tree types and sentinel errors.
package spantree

import (
	"errors"

	"github.com/Gnumaru/anvil-level-design/mesh"
)

// Sentinel errors for tree construction.
var (
	// ErrNilMesh is returned when a nil mesh pointer is passed.
	ErrNilMesh = errors.New("spantree: mesh is nil")

	// ErrNilIsland is returned when a nil island pointer is passed.
	ErrNilIsland = errors.New("spantree: island is nil")
)

// DualTree is a spanning tree over an island's face-adjacency graph.
// Edges holds the mesh edges crossed by tree arcs; Parent maps every
// non-root face to its BFS parent.
type DualTree struct {
	Root   mesh.FaceID
	Edges  map[mesh.EdgeID]struct{}
	Parent map[mesh.FaceID]mesh.FaceID
}

// Contains reports whether e is crossed by a dual-tree arc.
func (t *DualTree) Contains(e mesh.EdgeID) bool {
	_, ok := t.Edges[e]

	return ok
}

// PrimalLink records a vertex's parent in the primal tree and the mesh
// edge connecting to it.
type PrimalLink struct {
	Vert mesh.VertID
	Edge mesh.EdgeID
}

// PrimalTree is a spanning tree over an island's vertex graph, built
// only from edges outside the dual tree. Parent maps every non-root
// reachable vertex to its parent link.
type PrimalTree struct {
	Root   mesh.VertID
	Edges  map[mesh.EdgeID]struct{}
	Parent map[mesh.VertID]PrimalLink
}

// Contains reports whether e is a primal-tree edge.
func (t *PrimalTree) Contains(e mesh.EdgeID) bool {
	_, ok := t.Edges[e]

	return ok
}
