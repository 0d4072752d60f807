// SPDX-License-Identifier: MIT
// Package: anvil-level-design/meshbuild
//
// Package meshbuild provides deterministic mesh constructors for tests,
// examples, and benchmarks of the seam-topology pipeline.
//
// What:
//
//   - Grid(rows, cols): flat coplanar quad grid, one disk-like island.
//   - Cube(): closed unit cube, six quads, every dihedral angle 90°.
//   - CylinderBand(n): closed ring of n quads with two boundary rims.
//   - Torus(rows, cols): closed genus-1 quad torus.
//
// Determinism:
//
//   - Vertex handles are issued row-major (or rim-major), faces in the
//     documented order, so a fixture built twice is handle-identical.
//
// Errors:
//
//   - ErrBadDimension: a dimension below the constructor's minimum.
package meshbuild
