// SPDX-License-Identifier: MIT
// Package: anvil-level-design/meshbuild
//
// impl_cylinder.go — CylinderBand(n) constructor.
//
// Canonical model:
//   • Closed ring of n quads (a cylinder barrel with no caps).
//   • Vertices 0..n-1 form the lower rim, n..2n-1 the upper rim.
//   • Face i has the loop i → (i+1)%n → n+(i+1)%n → n+i and the radial
//     normal of its arc midpoint, so adjacent faces differ by 2π/n.
//   • The dual graph is an n-cycle and the band has two boundary rims.
//
// Contract:
//   • n ≥ 3 (else ErrBadDimension).

package meshbuild

import (
	"fmt"
	"math"

	"github.com/Gnumaru/anvil-level-design/mesh"
)

const (
	methodCylinder = "CylinderBand"
	minRingFaces   = 3
)

// CylinderBand builds a closed ring of n quads with two boundary rims.
func CylinderBand(n int) (*mesh.Mesh, error) {
	if n < minRingFaces {
		return nil, fmt.Errorf("%s: n=%d (must be >= %d): %w",
			methodCylinder, n, minRingFaces, ErrBadDimension)
	}

	m := mesh.New()
	for i := 0; i < 2*n; i++ {
		m.AddVert()
	}

	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * (float64(i) + 0.5) / float64(n)
		normal := mesh.Vec3{X: math.Cos(theta), Y: math.Sin(theta)}
		lo, hi := mesh.VertID(i), mesh.VertID((i+1)%n)
		if _, err := m.AddFace(normal, lo, hi, hi+mesh.VertID(n), lo+mesh.VertID(n)); err != nil {
			return nil, fmt.Errorf("%s: AddFace(%d): %w", methodCylinder, i, err)
		}
	}

	return m, nil
}
