// SPDX-License-Identifier: MIT
// Package: anvil-level-design/meshbuild
//
// impl_cube.go — Cube() constructor.
//
// Canonical model:
//   • Unit cube: vertices 0-3 on the bottom ring, 4-7 directly above.
//   • Six quad faces in the order bottom, top, front, right, back, left,
//     each with its outward axis normal.
//   • Every dihedral angle is 90°, so a threshold under π/2 shatters the
//     cube into six single-face islands and seams all twelve edges.

package meshbuild

import (
	"fmt"

	"github.com/Gnumaru/anvil-level-design/mesh"
)

const methodCube = "Cube"

// Cube builds a closed unit cube of six quads with outward normals.
func Cube() (*mesh.Mesh, error) {
	m := mesh.New()
	for i := 0; i < 8; i++ {
		m.AddVert()
	}

	faces := []struct {
		normal mesh.Vec3
		loop   [4]mesh.VertID
	}{
		{mesh.Vec3{Z: -1}, [4]mesh.VertID{0, 3, 2, 1}}, // bottom
		{mesh.Vec3{Z: 1}, [4]mesh.VertID{4, 5, 6, 7}},  // top
		{mesh.Vec3{Y: -1}, [4]mesh.VertID{0, 1, 5, 4}}, // front
		{mesh.Vec3{X: 1}, [4]mesh.VertID{1, 2, 6, 5}},  // right
		{mesh.Vec3{Y: 1}, [4]mesh.VertID{2, 3, 7, 6}},  // back
		{mesh.Vec3{X: -1}, [4]mesh.VertID{3, 0, 4, 7}}, // left
	}
	for i, f := range faces {
		if _, err := m.AddFace(f.normal, f.loop[0], f.loop[1], f.loop[2], f.loop[3]); err != nil {
			return nil, fmt.Errorf("%s: AddFace(%d): %w", methodCube, i, err)
		}
	}

	return m, nil
}
