package spantree_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gnumaru/anvil-level-design/island"
	"github.com/Gnumaru/anvil-level-design/mesh"
	"github.com/Gnumaru/anvil-level-design/meshbuild"
	"github.com/Gnumaru/anvil-level-design/spantree"
)

// singleIsland partitions the whole mesh under a lenient threshold and
// requires exactly one island.
func singleIsland(t *testing.T, m *mesh.Mesh) *island.Island {
	t.Helper()
	islands, _, err := island.Partition(m, m.Faces(), math.Pi)
	require.NoError(t, err)
	require.Len(t, islands, 1)

	return islands[0]
}

// TestBuildDual_NilInputs exercises the argument sentinels.
func TestBuildDual_NilInputs(t *testing.T) {
	m, err := meshbuild.Grid(2, 2)
	require.NoError(t, err)
	il := singleIsland(t, m)

	_, err = spantree.BuildDual(nil, il)
	assert.ErrorIs(t, err, spantree.ErrNilMesh)
	_, err = spantree.BuildDual(m, nil)
	assert.ErrorIs(t, err, spantree.ErrNilIsland)
	_, err = spantree.BuildPrimal(nil, il, &spantree.DualTree{})
	assert.ErrorIs(t, err, spantree.ErrNilMesh)
	_, err = spantree.BuildPrimal(m, il, nil)
	assert.ErrorIs(t, err, spantree.ErrNilIsland)
}

// TestBuildDual_Grid checks the N-1 tree-edge guarantee and parent
// coverage on a connected 3×3 grid island.
func TestBuildDual_Grid(t *testing.T) {
	m, err := meshbuild.Grid(3, 3)
	require.NoError(t, err)
	il := singleIsland(t, m)

	dual, err := spantree.BuildDual(m, il)
	require.NoError(t, err)

	assert.Equal(t, mesh.FaceID(0), dual.Root)
	assert.Len(t, dual.Edges, 8, "9 connected faces need 8 tree edges")
	assert.Len(t, dual.Parent, 8, "every non-root face has a parent")
	for f, p := range dual.Parent {
		assert.True(t, il.Contains(f))
		assert.True(t, il.Contains(p))
	}
	// Tree edges are interior edges of the island.
	for e := range dual.Edges {
		assert.Equal(t, 2, il.IncidentFaces(m, e))
	}
}

// TestBuildPrimal_DisjointAndSpanning verifies the primal tree avoids
// every dual-tree edge and spans all island vertices.
func TestBuildPrimal_DisjointAndSpanning(t *testing.T) {
	for name, build := range map[string]func() (*mesh.Mesh, error){
		"grid":     func() (*mesh.Mesh, error) { return meshbuild.Grid(3, 3) },
		"cylinder": func() (*mesh.Mesh, error) { return meshbuild.CylinderBand(8) },
		"torus":    func() (*mesh.Mesh, error) { return meshbuild.Torus(3, 3) },
	} {
		t.Run(name, func(t *testing.T) {
			m, err := build()
			require.NoError(t, err)
			il := singleIsland(t, m)

			dual, err := spantree.BuildDual(m, il)
			require.NoError(t, err)
			primal, err := spantree.BuildPrimal(m, il, dual)
			require.NoError(t, err)

			for e := range primal.Edges {
				assert.False(t, dual.Contains(e), "edge %d in both trees", e)
			}

			verts := il.AllVerts(m)
			assert.Equal(t, verts[0], primal.Root)
			assert.Len(t, primal.Edges, len(verts)-1)
			assert.Len(t, primal.Parent, len(verts)-1)

			// Every parent chain terminates at the root.
			for v := range primal.Parent {
				steps := 0
				for cur := v; cur != primal.Root; steps++ {
					link, ok := primal.Parent[cur]
					require.True(t, ok, "chain from %d broke at %d", v, cur)
					cur = link.Vert
					require.Less(t, steps, len(verts), "parent chain cycles")
				}
			}
		})
	}
}

// TestBuildDual_CylinderRing verifies that the 8-cycle dual graph of a
// cylinder band yields a 7-edge tree, leaving one interior edge out.
func TestBuildDual_CylinderRing(t *testing.T) {
	m, err := meshbuild.CylinderBand(8)
	require.NoError(t, err)
	il := singleIsland(t, m)

	dual, err := spantree.BuildDual(m, il)
	require.NoError(t, err)
	assert.Len(t, dual.Edges, 7)

	outside := 0
	for _, e := range il.AllEdges(m) {
		if il.IncidentFaces(m, e) == 2 && !dual.Contains(e) {
			outside++
		}
	}
	assert.Equal(t, 1, outside)
}
