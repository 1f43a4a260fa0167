package scratchroad

import (
	"math"
	"testing"
)

func TestGridRegions(t *testing.T) {
	regions := GridRegions(3, 2)
	if len(regions) != 6 {
		t.Fatalf("len = %d, want 6", len(regions))
	}
	// Row-major from the top-left.
	if r := regions[1]; math.Abs(r.X-1.0/3) > 1e-12 || r.Y != 0 {
		t.Errorf("regions[1] = %+v", r)
	}
	if r := regions[3]; r.X != 0 || r.Y != 0.5 || r.Height != 0.5 {
		t.Errorf("regions[3] = %+v", r)
	}
	if GridRegions(0, 3) != nil {
		t.Error("expected nil for zero columns")
	}
}

// paintSamples scratches exactly n of the K×K sample points of bounds, in
// row-major order, using single-cell brushes.
func paintSamples(buf *CoverageBuffer, bounds Rect, k, n int) {
	step := 1 / float64(k+1)
	painted := 0
	for j := 1; j <= k && painted < n; j++ {
		for i := 1; i <= k && painted < n; i++ {
			buf.Paint(bounds.Lerp(float64(i)*step, float64(j)*step), 0, BrushSquare, 1)
			painted++
		}
	}
}

func TestRegionCompletionThreshold(t *testing.T) {
	tests := []struct {
		name      string
		scratched int
		want      bool
	}{
		{"four of nine", 4, false},
		{"five of nine", 5, true},
		{"all nine", 9, true},
		{"none", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bounds := []Rect{{X: 0, Y: 0, Width: 1, Height: 1}}
			tr := NewRegionTracker(bounds, 3, 0.3, 0.5)
			buf := NewCoverageBuffer(64, 64)
			paintSamples(buf, bounds[0], 3, tt.scratched)

			newly := tr.Check(buf, nil)
			if got := tr.Completed(0); got != tt.want {
				t.Errorf("Completed = %v, want %v", got, tt.want)
			}
			if (newly == 1) != tt.want {
				t.Errorf("newly = %d", newly)
			}
		})
	}
}

func TestRegionSampleThreshold(t *testing.T) {
	bounds := []Rect{{X: 0, Y: 0, Width: 1, Height: 1}}
	tr := NewRegionTracker(bounds, 1, 0.3, 0.5)
	buf := NewCoverageBuffer(16, 16)

	// A sample counts only when coverage strictly exceeds the threshold.
	buf.Paint(Vec2{0.5, 0.5}, 0, BrushSquare, 0.3)
	tr.Check(buf, nil)
	if tr.Completed(0) {
		t.Fatal("coverage equal to threshold completed the region")
	}
	buf.Paint(Vec2{0.5, 0.5}, 0, BrushSquare, 0.1)
	tr.Check(buf, nil)
	if !tr.Completed(0) {
		t.Error("coverage above threshold did not complete the region")
	}
}

func TestRegionCompletionIsSticky(t *testing.T) {
	bounds := GridRegions(2, 1)
	tr := NewRegionTracker(bounds, 3, 0.3, 0.5)
	buf := NewCoverageBuffer(32, 32)
	paintSamples(buf, bounds[0], 3, 9)

	var reports []float64
	emit := func(p float64) { reports = append(reports, p) }
	tr.Check(buf, emit)
	tr.Check(buf, emit)
	tr.Check(NewCoverageBuffer(32, 32), emit)

	if len(reports) != 1 || reports[0] != 50 {
		t.Errorf("reports = %v, want [50]", reports)
	}
	if !tr.Completed(0) || tr.CompletedCount() != 1 {
		t.Error("completion reverted")
	}
}

func TestRegionProgressSteps(t *testing.T) {
	bounds := GridRegions(3, 3)
	tr := NewRegionTracker(bounds, 3, 0.3, 0.5)
	buf := NewCoverageBuffer(90, 90)

	var reports []float64
	for i, b := range bounds {
		paintSamples(buf, b, 3, 9)
		tr.Check(buf, func(p float64) { reports = append(reports, p) })
		if len(reports) != i+1 {
			t.Fatalf("after region %d: %d reports", i, len(reports))
		}
	}
	step := 100.0 / 9
	for i, p := range reports {
		if math.Abs(p-step*float64(i+1)) > 1e-9 {
			t.Errorf("report %d = %v, want %v", i, p, step*float64(i+1))
		}
		if i > 0 && p <= reports[i-1] {
			t.Errorf("report %d not increasing: %v", i, reports)
		}
	}
	if !tr.Done() || tr.Percent() != 100 {
		t.Errorf("Done = %v, Percent = %v", tr.Done(), tr.Percent())
	}
}

func TestRegionCheckReportsEachCompletion(t *testing.T) {
	bounds := GridRegions(2, 2)
	tr := NewRegionTracker(bounds, 2, 0.3, 0.5)
	buf := NewCoverageBuffer(40, 40)
	buf.Paint(Vec2{0.5, 0.5}, 40, BrushSquare, 1)

	var reports []float64
	if n := tr.Check(buf, func(p float64) { reports = append(reports, p) }); n != 4 {
		t.Fatalf("newly = %d, want 4", n)
	}
	want := []float64{25, 50, 75, 100}
	for i := range want {
		if reports[i] != want[i] {
			t.Errorf("reports = %v, want %v", reports, want)
			break
		}
	}
}

func TestRegionTrackerOutOfRange(t *testing.T) {
	tr := NewRegionTracker(GridRegions(1, 1), 3, 0.3, 0.5)
	if tr.Completed(-1) || tr.Completed(5) {
		t.Error("out-of-range index reported complete")
	}
	empty := NewRegionTracker(nil, 3, 0.3, 0.5)
	if empty.Done() || empty.Percent() != 0 {
		t.Error("empty tracker should never be done")
	}
}
