// Package mesh defines the flat-array polygon mesh the seam-topology
// pipeline operates on: faces, edges, and vertices addressed by integer
// handles, O(1) incidence queries, per-face normals, and a monotonic
// per-edge seam flag.
//
// This file declares the handle types, Vec3, sentinel errors, and the
// internal storage records.
//
// Errors:
//
//	ErrFaceTooShort  - a face loop needs at least three vertices.
//	ErrVertNotFound  - a face referenced a vertex this mesh never issued.
//	ErrDegenerateFace - a face loop repeats a vertex.
package mesh

import (
	"errors"
	"math"
)

// Sentinel errors for mesh construction.
var (
	// ErrFaceTooShort indicates a face loop with fewer than MinFaceSides vertices.
	ErrFaceTooShort = errors.New("mesh: face loop too short")

	// ErrVertNotFound indicates a vertex handle not issued by this mesh.
	ErrVertNotFound = errors.New("mesh: vertex not found")

	// ErrDegenerateFace indicates a face loop that repeats a vertex.
	ErrDegenerateFace = errors.New("mesh: degenerate face loop")
)

// VertID is a stable integer handle for a vertex.
type VertID int

// EdgeID is a stable integer handle for an edge.
type EdgeID int

// FaceID is a stable integer handle for a face.
type FaceID int

// Sentinel "no such element" handles, used as parent-map terminators.
const (
	NoVert VertID = -1
	NoEdge EdgeID = -1
	NoFace FaceID = -1
)

// MinFaceSides is the smallest legal face loop length.
const MinFaceSides = 3

// QuadSides is the loop length that classifies a face as a quad.
const QuadSides = 4

// Vec3 is a 3-component vector used for face normals.
type Vec3 struct {
	X, Y, Z float64
}

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// AngleTo returns the angle between v and o in radians, computed as the
// arccosine of the dot product clamped to [-1, 1]. Both vectors are
// expected to be unit length; clamping guards against rounding drift.
func (v Vec3) AngleTo(o Vec3) float64 {
	d := v.Dot(o)
	if d > 1 {
		d = 1
	} else if d < -1 {
		d = -1
	}

	return math.Acos(d)
}

// vert stores the incident edges of one vertex, in insertion order.
type vert struct {
	edges []EdgeID
}

// edge stores the two endpoints, the incident faces (0..2 on manifold
// meshes, more on degenerate input), and the seam flag.
type edge struct {
	verts [2]VertID
	faces []FaceID
	seam  bool
}

// face stores the ordered vertex loop, the matching edge loop, and the
// face normal.
type face struct {
	verts  []VertID
	edges  []EdgeID
	normal Vec3
}
