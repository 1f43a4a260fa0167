package scratchroad

// ScratchRegion is a fixed sub-area of the scratch surface with a sticky
// completion flag.
type ScratchRegion struct {
	Bounds    Rect // normalized surface coordinates
	completed bool
}

// Completed reports whether the region has been scratched.
func (r ScratchRegion) Completed() bool {
	return r.completed
}

// RegionTracker samples the coverage buffer at a K×K interior grid per region
// and counts regions as complete once enough samples are scratched.
// Completion is one-way.
type RegionTracker struct {
	regions         []ScratchRegion
	samplesPerAxis  int
	sampleThreshold float32
	completionRatio float64
	completed       int
}

// NewRegionTracker creates a tracker over the given region bounds.
// samplesPerAxis is K; a sample counts as scratched when its coverage exceeds
// sampleThreshold; a region completes when the scratched share of its K²
// samples is strictly greater than completionRatio.
func NewRegionTracker(bounds []Rect, samplesPerAxis int, sampleThreshold, completionRatio float64) *RegionTracker {
	if samplesPerAxis < 1 {
		samplesPerAxis = 1
	}
	regions := make([]ScratchRegion, len(bounds))
	for i, b := range bounds {
		regions[i] = ScratchRegion{Bounds: b}
	}
	return &RegionTracker{
		regions:         regions,
		samplesPerAxis:  samplesPerAxis,
		sampleThreshold: float32(sampleThreshold),
		completionRatio: completionRatio,
	}
}

// GridRegions partitions the unit square into cols×rows equal regions,
// row-major from the top-left.
func GridRegions(cols, rows int) []Rect {
	if cols <= 0 || rows <= 0 {
		return nil
	}
	w := 1 / float64(cols)
	h := 1 / float64(rows)
	out := make([]Rect, 0, cols*rows)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			out = append(out, Rect{X: float64(c) * w, Y: float64(r) * h, Width: w, Height: h})
		}
	}
	return out
}

// Len returns the number of regions.
func (t *RegionTracker) Len() int {
	return len(t.regions)
}

// CompletedCount returns the number of completed regions.
func (t *RegionTracker) CompletedCount() int {
	return t.completed
}

// Completed reports whether region i is complete.
func (t *RegionTracker) Completed(i int) bool {
	if i < 0 || i >= len(t.regions) {
		return false
	}
	return t.regions[i].completed
}

// Regions returns the tracked regions. The returned slice MUST NOT be mutated.
func (t *RegionTracker) Regions() []ScratchRegion {
	return t.regions
}

// Percent returns completed/N×100.
func (t *RegionTracker) Percent() float64 {
	if len(t.regions) == 0 {
		return 0
	}
	return float64(t.completed) * 100 / float64(len(t.regions))
}

// Done reports whether every region is complete.
func (t *RegionTracker) Done() bool {
	return len(t.regions) > 0 && t.completed == len(t.regions)
}

// Check samples every incomplete region against buf. For each region that
// completes, emit (if non-nil) is called with the new percentage. Returns
// the number of newly completed regions.
func (t *RegionTracker) Check(buf *CoverageBuffer, emit func(percent float64)) int {
	newly := 0
	total := float64(t.samplesPerAxis * t.samplesPerAxis)
	for i := range t.regions {
		r := &t.regions[i]
		if r.completed {
			continue
		}
		if float64(t.scratchedSamples(buf, r.Bounds))/total <= t.completionRatio {
			continue
		}
		r.completed = true
		t.completed++
		newly++
		if emit != nil {
			emit(t.Percent())
		}
	}
	return newly
}

// scratchedSamples counts the interior sample points of bounds whose coverage
// exceeds the sample threshold. Samples sit at i/(K+1) along each axis so
// the region edges are never sampled.
func (t *RegionTracker) scratchedSamples(buf *CoverageBuffer, bounds Rect) int {
	k := t.samplesPerAxis
	step := 1 / float64(k+1)
	n := 0
	for i := 1; i <= k; i++ {
		for j := 1; j <= k; j++ {
			p := bounds.Lerp(float64(i)*step, float64(j)*step)
			if buf.SampleNormalized(p) > t.sampleThreshold {
				n++
			}
		}
	}
	return n
}
