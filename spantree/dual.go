package spantree

import (
	"github.com/plan-systems/klog"

	"github.com/Gnumaru/anvil-level-design/island"
	"github.com/Gnumaru/anvil-level-design/mesh"
)

// BuildDual builds a spanning tree over the face-adjacency graph of isl.
//
// The traversal is an iterative BFS from the lowest face handle,
// following adjacency arcs in ascending (face, edge) order; an edge
// joins the tree the first time it leads to an undiscovered face. For a
// connected island of N faces the tree always holds exactly N-1 arcs.
// An empty island yields an empty tree rooted at mesh.NoFace.
func BuildDual(m *mesh.Mesh, isl *island.Island) (*DualTree, error) {
	if m == nil {
		return nil, ErrNilMesh
	}
	if isl == nil {
		return nil, ErrNilIsland
	}

	t := &DualTree{
		Root:   mesh.NoFace,
		Edges:  make(map[mesh.EdgeID]struct{}),
		Parent: make(map[mesh.FaceID]mesh.FaceID, isl.Size()),
	}
	faces := isl.Faces()
	if len(faces) == 0 {
		return t, nil
	}

	t.Root = faces[0]
	visited := make(map[mesh.FaceID]bool, len(faces))
	visited[t.Root] = true
	queue := []mesh.FaceID{t.Root}

	for qi := 0; qi < len(queue); qi++ {
		f := queue[qi]
		// Neighbors is already ordered ascending by (face, edge).
		for _, a := range isl.Neighbors(f) {
			if visited[a.Face] {
				continue
			}
			visited[a.Face] = true
			t.Parent[a.Face] = f
			t.Edges[a.Edge] = struct{}{}
			queue = append(queue, a.Face)
		}
	}

	klog.V(2).Infof("spantree: dual tree with %d edges for %d faces", len(t.Edges), len(faces))

	return t, nil
}
