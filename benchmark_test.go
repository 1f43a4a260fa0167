package scratchroad

import (
	"math/rand/v2"
	"testing"
)

// --- Coverage Benchmarks ---

func BenchmarkPaint_Square12(b *testing.B) {
	buf := NewCoverageBuffer(256, 256)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.Paint(Vec2{float64(i%97) / 97, float64(i%89) / 89}, 12, BrushSquare, 0.5)
	}
}

func BenchmarkPercentCovered_256(b *testing.B) {
	buf := NewCoverageBuffer(256, 256)
	buf.Paint(Vec2{0.5, 0.5}, 64, BrushCircle, 1)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf.PercentCovered()
	}
}

// Region checks run on every pointer sample, so they must stay far cheaper
// than a full scan.
func BenchmarkRegionCheck_3x3(b *testing.B) {
	buf := NewCoverageBuffer(256, 256)
	tr := NewRegionTracker(GridRegions(3, 3), 3, 0.3, 0.5)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tr.Check(buf, nil)
	}
}

// --- Simulation Benchmarks ---

func BenchmarkRoadUpdate(b *testing.B) {
	cfg := DefaultConfig()
	cfg.Obstacles.SpawnInterval = 0.5
	r, err := NewRoad(cfg, rand.New(rand.NewPCG(1, 1)))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		r.Update(1.0 / 60)
	}
}
