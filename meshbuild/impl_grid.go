// SPDX-License-Identifier: MIT
// Package: anvil-level-design/meshbuild
//
// impl_grid.go — Grid(rows, cols) constructor.
//
// Canonical model:
//   • rows×cols coplanar quads over a (rows+1)×(cols+1) vertex lattice.
//   • Vertex handles issued row-major: vert(r,c) = r*(cols+1)+c.
//   • Faces issued row-major: face(R,C) = R*cols+C, loop
//     (R,C) → (R,C+1) → (R+1,C+1) → (R+1,C).
//   • Every face normal is +Z, so any non-negative angle threshold keeps
//     the grid a single island.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrBadDimension).

package meshbuild

import (
	"fmt"

	"github.com/Gnumaru/anvil-level-design/mesh"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid builds a flat rows×cols quad grid with all normals +Z.
func Grid(rows, cols int) (*mesh.Mesh, error) {
	if rows < minGridDim || cols < minGridDim {
		return nil, fmt.Errorf("%s: rows=%d, cols=%d (each must be >= %d): %w",
			methodGrid, rows, cols, minGridDim, ErrBadDimension)
	}

	m := mesh.New()
	for i := 0; i < (rows+1)*(cols+1); i++ {
		m.AddVert()
	}

	up := mesh.Vec3{Z: 1}
	vert := func(r, c int) mesh.VertID { return mesh.VertID(r*(cols+1) + c) }
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if _, err := m.AddFace(up, vert(r, c), vert(r, c+1), vert(r+1, c+1), vert(r+1, c)); err != nil {
				return nil, fmt.Errorf("%s: AddFace(%d,%d): %w", methodGrid, r, c, err)
			}
		}
	}

	return m, nil
}
