package mesh_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gnumaru/anvil-level-design/mesh"
)

// buildQuadPair constructs two quads sharing one edge:
//
//	0───1───4
//	│ A │ B │
//	3───2───5
//
// Quad A has loop 0,1,2,3; quad B has loop 1,4,5,2; the shared edge is
// (1,2).
func buildQuadPair(t *testing.T) *mesh.Mesh {
	t.Helper()
	m := mesh.New()
	for i := 0; i < 6; i++ {
		m.AddVert()
	}
	up := mesh.Vec3{Z: 1}
	_, err := m.AddFace(up, 0, 1, 2, 3)
	require.NoError(t, err)
	_, err = m.AddFace(up, 1, 4, 5, 2)
	require.NoError(t, err)

	return m
}

// TestAddFace_SharesEdges verifies that two faces using the same vertex
// pair share a single edge handle, and that incidence queries line up.
func TestAddFace_SharesEdges(t *testing.T) {
	m := buildQuadPair(t)

	assert.Equal(t, 6, m.NumVerts())
	assert.Equal(t, 2, m.NumFaces())
	// 4 + 4 edges minus the shared one.
	assert.Equal(t, 7, m.NumEdges())

	shared, ok := m.EdgeBetween(1, 2)
	require.True(t, ok)
	faces := m.EdgeFaces(shared)
	assert.ElementsMatch(t, []mesh.FaceID{0, 1}, faces)

	// Endpoint order is canonical (lowest handle first).
	a, b := m.EdgeVerts(shared)
	assert.Equal(t, mesh.VertID(1), a)
	assert.Equal(t, mesh.VertID(2), b)
	assert.Equal(t, mesh.VertID(2), m.OtherVert(shared, 1))
	assert.Equal(t, mesh.VertID(1), m.OtherVert(shared, 2))
	assert.Equal(t, mesh.NoVert, m.OtherVert(shared, 5))

	// Both faces are quads and their edge loops have length 4.
	assert.True(t, m.IsQuad(0))
	assert.True(t, m.IsQuad(1))
	assert.Len(t, m.FaceEdges(0), 4)
	assert.Len(t, m.FaceEdges(1), 4)
}

// TestAddFace_Validation exercises every construction error.
func TestAddFace_Validation(t *testing.T) {
	m := mesh.New()
	v0, v1 := m.AddVert(), m.AddVert()

	_, err := m.AddFace(mesh.Vec3{}, v0, v1)
	assert.ErrorIs(t, err, mesh.ErrFaceTooShort)

	_, err = m.AddFace(mesh.Vec3{}, v0, v1, 99)
	assert.ErrorIs(t, err, mesh.ErrVertNotFound)

	v2 := m.AddVert()
	_, err = m.AddFace(mesh.Vec3{}, v0, v1, v2, v0)
	assert.ErrorIs(t, err, mesh.ErrDegenerateFace)

	// Triangles are legal faces, just not quads.
	f, err := m.AddFace(mesh.Vec3{}, v0, v1, v2)
	require.NoError(t, err)
	assert.False(t, m.IsQuad(f))
}

// TestSeam_Monotonic verifies the seam flag is set-only and reported by
// SeamEdges and SeamCount in ascending order.
func TestSeam_Monotonic(t *testing.T) {
	m := buildQuadPair(t)
	require.Zero(t, m.SeamCount())

	shared, _ := m.EdgeBetween(1, 2)
	m.MarkSeam(shared)
	m.MarkSeam(shared) // marking twice is a no-op

	assert.True(t, m.Seam(shared))
	assert.Equal(t, 1, m.SeamCount())
	assert.Equal(t, []mesh.EdgeID{shared}, m.SeamEdges())
}

// TestVec3_AngleTo checks the clamped-arccos angle at the three
// canonical configurations.
func TestVec3_AngleTo(t *testing.T) {
	up := mesh.Vec3{Z: 1}
	down := mesh.Vec3{Z: -1}
	side := mesh.Vec3{X: 1}

	assert.InDelta(t, 0, up.AngleTo(up), 1e-12)
	assert.InDelta(t, math.Pi, up.AngleTo(down), 1e-12)
	assert.InDelta(t, math.Pi/2, up.AngleTo(side), 1e-12)

	// Slightly over-unit vectors must clamp instead of producing NaN.
	big := mesh.Vec3{Z: 1.0000000001}
	assert.False(t, math.IsNaN(big.AngleTo(big)))
	assert.InDelta(t, 0, big.AngleTo(big), 1e-4)
}
