package boundary_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gnumaru/anvil-level-design/boundary"
	"github.com/Gnumaru/anvil-level-design/island"
	"github.com/Gnumaru/anvil-level-design/mesh"
	"github.com/Gnumaru/anvil-level-design/meshbuild"
)

func singleIsland(t *testing.T, m *mesh.Mesh) *island.Island {
	t.Helper()
	islands, _, err := island.Partition(m, m.Faces(), math.Pi)
	require.NoError(t, err)
	require.Len(t, islands, 1)

	return islands[0]
}

// TestEdges_NilInputs exercises the argument sentinels.
func TestEdges_NilInputs(t *testing.T) {
	m, err := meshbuild.Grid(2, 2)
	require.NoError(t, err)
	il := singleIsland(t, m)

	_, err = boundary.Edges(nil, il)
	assert.ErrorIs(t, err, boundary.ErrNilMesh)
	_, err = boundary.Edges(m, nil)
	assert.ErrorIs(t, err, boundary.ErrNilIsland)
}

// TestLoops_FlatGrid finds the single rim of a disk-like grid island:
// 12 boundary edges forming one loop of 12 vertices.
func TestLoops_FlatGrid(t *testing.T) {
	m, err := meshbuild.Grid(3, 3)
	require.NoError(t, err)
	il := singleIsland(t, m)

	edges, err := boundary.Edges(m, il)
	require.NoError(t, err)
	assert.Len(t, edges, 12)

	loops, err := boundary.Loops(m, il)
	require.NoError(t, err)
	require.Len(t, loops, 1)
	assert.Len(t, loops[0].Verts(), 12)

	// One loop or none: nothing to merge.
	n, err := boundary.Connect(m, il)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Zero(t, m.SeamCount())
}

// TestLoops_ClosedSurface finds no boundary at all on a closed torus.
func TestLoops_ClosedSurface(t *testing.T) {
	m, err := meshbuild.Torus(3, 3)
	require.NoError(t, err)
	il := singleIsland(t, m)

	edges, err := boundary.Edges(m, il)
	require.NoError(t, err)
	assert.Empty(t, edges)

	loops, err := boundary.Loops(m, il)
	require.NoError(t, err)
	assert.Empty(t, loops)

	n, err := boundary.Connect(m, il)
	require.NoError(t, err)
	assert.Zero(t, n)
}

// TestConnect_CylinderRims merges the two rims of a cylinder band with
// a single-edge path between the lowest rim vertices.
func TestConnect_CylinderRims(t *testing.T) {
	m, err := meshbuild.CylinderBand(8)
	require.NoError(t, err)
	il := singleIsland(t, m)

	loops, err := boundary.Loops(m, il)
	require.NoError(t, err)
	require.Len(t, loops, 2)
	// Discovery order is ascending: the lower rim (vertices 0..7) first.
	assert.Equal(t, []mesh.VertID{0, 1, 2, 3, 4, 5, 6, 7}, loops[0].Verts())
	assert.Equal(t, []mesh.VertID{8, 9, 10, 11, 12, 13, 14, 15}, loops[1].Verts())

	n, err := boundary.Connect(m, il)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	// The seamed path is one rung: the edge joining vertex 0 to its
	// upper-rim counterpart.
	seams := m.SeamEdges()
	require.Len(t, seams, 1)
	a, b := m.EdgeVerts(seams[0])
	assert.Equal(t, mesh.VertID(0), a)
	assert.Equal(t, mesh.VertID(8), b)

	// Re-running marks nothing new: the shortest path re-traces the
	// already seamed rung.
	n, err = boundary.Connect(m, il)
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Equal(t, seams, m.SeamEdges())
}
