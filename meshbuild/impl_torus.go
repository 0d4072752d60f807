// SPDX-License-Identifier: MIT
// Package: anvil-level-design/meshbuild
//
// impl_torus.go — Torus(rows, cols) constructor.
//
// Canonical model:
//   • rows×cols quads over a rows×cols vertex lattice closed in both
//     directions: vert(r,c) = r*cols+c, indices taken modulo rows/cols.
//   • Face (R,C) loop: (R,C) → (R,C+1) → (R+1,C+1) → (R+1,C), wrapping.
//   • Normals are synthetic (+Z): the fixture exercises topology, not
//     shading, and a uniform normal keeps the torus one island under any
//     non-negative threshold.
//   • Closed genus-1 surface: no boundary, two independent dual cycles.
//
// Contract:
//   • rows ≥ 3 and cols ≥ 3 (else ErrBadDimension); smaller wraps would
//     collapse distinct edges onto the same vertex pair.

package meshbuild

import (
	"fmt"

	"github.com/Gnumaru/anvil-level-design/mesh"
)

const (
	methodTorus = "Torus"
	minTorusDim = 3
)

// Torus builds a closed rows×cols quad torus with uniform +Z normals.
func Torus(rows, cols int) (*mesh.Mesh, error) {
	if rows < minTorusDim || cols < minTorusDim {
		return nil, fmt.Errorf("%s: rows=%d, cols=%d (each must be >= %d): %w",
			methodTorus, rows, cols, minTorusDim, ErrBadDimension)
	}

	m := mesh.New()
	for i := 0; i < rows*cols; i++ {
		m.AddVert()
	}

	up := mesh.Vec3{Z: 1}
	vert := func(r, c int) mesh.VertID { return mesh.VertID((r%rows)*cols + c%cols) }
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if _, err := m.AddFace(up, vert(r, c), vert(r, c+1), vert(r+1, c+1), vert(r+1, c)); err != nil {
				return nil, fmt.Errorf("%s: AddFace(%d,%d): %w", methodTorus, r, c, err)
			}
		}
	}

	return m, nil
}
