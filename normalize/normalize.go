// Package normalize orchestrates the seam-topology pipeline: island
// partitioning, genus cutting, and boundary merging. After Process
// every island is topologically a disk once cut along its seams.
//
// The pipeline only ever sets seam flags on the caller's mesh; it never
// clears them, and it never fails on degenerate input: malformed
// regions are logged and conservatively seamed.
package normalize

import (
	"errors"

	"github.com/plan-systems/klog"

	"github.com/Gnumaru/anvil-level-design/boundary"
	"github.com/Gnumaru/anvil-level-design/cyclecut"
	"github.com/Gnumaru/anvil-level-design/island"
	"github.com/Gnumaru/anvil-level-design/mesh"
)

// ErrNilMesh is returned when a nil mesh pointer is passed.
var ErrNilMesh = errors.New("normalize: mesh is nil")

// Result aggregates one full pipeline run.
type Result struct {
	// Islands holds the quad islands discovered by partitioning.
	Islands []*island.Island

	// NonQuad lists the candidate faces excluded for not being quads,
	// ascending.
	NonQuad []mesh.FaceID

	// GenusSeams counts the edges seamed by genus cutting.
	GenusSeams int

	// BoundarySeams counts the edges newly seamed by boundary merging.
	BoundarySeams int
}

// SeamsAdded returns the total seams placed by the cutting phases.
// Seams laid down during partitioning (angle creases and non-quad
// borders) are visible on the mesh but not counted here, matching what
// callers surface as "cuts made".
func (r *Result) SeamsAdded() int { return r.GenusSeams + r.BoundarySeams }

// NormalizeIsland runs genus cutting then boundary merging on a single
// island and returns the number of seams placed.
func NormalizeIsland(m *mesh.Mesh, isl *island.Island) (int, error) {
	if m == nil {
		return 0, ErrNilMesh
	}

	genus, err := cyclecut.Cut(m, isl)
	if err != nil {
		return 0, err
	}
	merged, err := boundary.Connect(m, isl)
	if err != nil {
		return genus, err
	}

	return genus + merged, nil
}

// Process runs the full pipeline over the candidate faces: partition
// into quad islands under angleThreshold, cut every island to genus 0,
// then merge each island's boundary loops into one. Seam flags on m are
// mutated as a side effect; the returned Result reports what happened.
func Process(m *mesh.Mesh, faces []mesh.FaceID, angleThreshold float64) (*Result, error) {
	islands, nonQuad, err := island.Partition(m, faces, angleThreshold)
	if err != nil {
		return nil, err
	}
	res := &Result{Islands: islands, NonQuad: nonQuad}
	klog.V(2).Infof("normalize: %d islands from %d faces (%d non-quads excluded)",
		len(islands), len(faces), len(nonQuad))

	for _, isl := range islands {
		n, err := cyclecut.Cut(m, isl)
		if err != nil {
			return res, err
		}
		res.GenusSeams += n
	}
	for _, isl := range islands {
		n, err := boundary.Connect(m, isl)
		if err != nil {
			return res, err
		}
		res.BoundarySeams += n
	}
	klog.V(2).Infof("normalize: %d genus seams, %d boundary seams", res.GenusSeams, res.BoundarySeams)

	return res, nil
}
