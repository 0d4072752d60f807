// Package anvil prepares polygon-mesh surfaces for distortion-minimizing
// UV unwrapping by computing and marking seam edges, so that every
// connected quad region becomes topologically a flat disk with a single
// boundary loop.
//
// 🚀 What does it do?
//
//	A small, focused library that brings together:
//		• mesh/      — flat-array mesh model: integer handles, O(1) incidence
//		               queries, per-face normals, monotonic seam flags
//		• island/    — quad-island partitioning by seams, angle threshold,
//		               and non-quad boundaries
//		• spantree/  — dual (face) and primal (vertex) spanning trees,
//		               edge-disjoint by construction
//		• cyclecut/  — fundamental-cycle seams that force genus 0
//		• boundary/  — boundary-loop detection and shortest-path merging
//		• normalize/ — the orchestrator: Process and NormalizeIsland
//		• meshbuild/ — deterministic grid/cube/cylinder/torus fixtures
//
// ✨ Guarantees
//
//   - Deterministic: identical mesh state and threshold always yield
//     identical seam sets (all traversals run in ascending handle order).
//   - Monotonic: seam flags are only ever set, never cleared.
//   - Total: degenerate input degrades to conservative seam placement
//     and a warning log, never an abort.
//
// Quick example:
//
//	m, _ := meshbuild.CylinderBand(8)
//	res, _ := normalize.Process(m, m.Faces(), math.Pi/2)
//	// res.Islands: one ring island; the band's two rims are now merged
//	// through a single seamed edge path.
//
// The library is an in-process boundary: no CLI, no wire format. The
// host level-design tooling supplies the mesh and surfaces the counts.
package anvil
