package normalize_test

import (
	"math"
	"testing"

	"github.com/Gnumaru/anvil-level-design/meshbuild"
	"github.com/Gnumaru/anvil-level-design/normalize"
)

// BenchmarkProcess_Grid measures the full pipeline on a flat 50×50
// grid (2500 faces). The grid never gains seams, so the mesh can be
// reused across iterations.
func BenchmarkProcess_Grid(b *testing.B) {
	m, err := meshbuild.Grid(50, 50)
	if err != nil {
		b.Fatalf("Grid failed: %v", err)
	}
	faces := m.Faces()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := normalize.Process(m, faces, 0); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkProcess_Torus measures genus cutting on a 20×20 torus.
// Seams placed by the first iteration persist; later iterations
// exercise the steady state, which is the common editor case of
// re-running normalization over an already cut mesh.
func BenchmarkProcess_Torus(b *testing.B) {
	m, err := meshbuild.Torus(20, 20)
	if err != nil {
		b.Fatalf("Torus failed: %v", err)
	}
	faces := m.Faces()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := normalize.Process(m, faces, math.Pi); err != nil {
			b.Fatal(err)
		}
	}
}
