package scratchroad

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSurface is returned when a tracker is created without a surface.
	ErrNoSurface = errors.New("scratch surface not assigned")
	// ErrNoRegions is returned when the surface has no sub-regions.
	ErrNoRegions = errors.New("scratch surface has no regions")
)

// Surface describes the scratchable surface: the coverage resolution and the
// fixed sub-regions used for completion tracking, in normalized coordinates.
type Surface struct {
	Width, Height int
	Regions       []Rect
}

// SurfaceFromConfig builds the surface described by cfg.
func SurfaceFromConfig(cfg ScratchConfig) *Surface {
	return &Surface{
		Width:   cfg.BufferWidth,
		Height:  cfg.BufferHeight,
		Regions: cfg.regionBounds(),
	}
}

// readbackState is the one-frame pixel readback handshake.
type readbackState uint8

const (
	readbackIdle    readbackState = iota
	readbackPending               // requested; serviced on the next tick
)

// ScratchTracker owns the coverage buffer, turns pointer input into paint
// operations and reports both progress signals.
type ScratchTracker struct {
	buf     *CoverageBuffer
	regions *RegionTracker

	brushRadius   int
	brushShape    BrushShape
	brushStrength float32

	onProgress func(Progress)
	onPaint    func(p Vec2, radius int, shape BrushShape)

	frame         uint64
	readback      readbackState
	readbackFrame uint64

	injectQueue []syntheticPointerEvent
}

// NewScratchTracker creates a tracker over surface. A missing surface, a
// zero resolution or an empty region set is a configuration error.
func NewScratchTracker(surface *Surface, cfg ScratchConfig) (*ScratchTracker, error) {
	if surface == nil {
		return nil, ErrNoSurface
	}
	if surface.Width <= 0 || surface.Height <= 0 {
		return nil, fmt.Errorf("%w: resolution %dx%d", ErrNoSurface, surface.Width, surface.Height)
	}
	if len(surface.Regions) == 0 {
		return nil, ErrNoRegions
	}
	shape, ok := ParseBrushShape(cfg.BrushShape)
	if !ok {
		return nil, fmt.Errorf("%w: unknown brush shape %q", ErrInvalidConfig, cfg.BrushShape)
	}
	strength := float32(cfg.BrushStrength)
	if strength <= 0 {
		strength = 1
	}
	return &ScratchTracker{
		buf:           NewCoverageBuffer(surface.Width, surface.Height),
		regions:       NewRegionTracker(surface.Regions, cfg.SamplesPerAxis, cfg.SampleThreshold, cfg.CompletionRatio),
		brushRadius:   cfg.BrushRadius,
		brushShape:    shape,
		brushStrength: strength,
	}, nil
}

// SetProgressCallback sets the function receiving both progress signals.
func (s *ScratchTracker) SetProgressCallback(fn func(Progress)) {
	s.onProgress = fn
}

// SetPaintCallback sets a function called after every paint operation, for
// mirroring the brush onto a visual mask.
func (s *ScratchTracker) SetPaintCallback(fn func(p Vec2, radius int, shape BrushShape)) {
	s.onPaint = fn
}

// Buffer returns the coverage buffer. Callers must treat it as read-only.
func (s *ScratchTracker) Buffer() *CoverageBuffer {
	return s.buf
}

// Regions returns the region completion tracker.
func (s *ScratchTracker) Regions() *RegionTracker {
	return s.regions
}

// Paint scratches the brush neighbourhood around the normalized position p.
// Positions outside the surface are clamped to its edge.
func (s *ScratchTracker) Paint(p Vec2) int {
	n := s.buf.Paint(p, s.brushRadius, s.brushShape, s.brushStrength)
	if s.onPaint != nil {
		s.onPaint(Vec2{X: clamp01(p.X), Y: clamp01(p.Y)}, s.brushRadius, s.brushShape)
	}
	return n
}

// HandlePointer processes one pointer sample already known to be over the
// surface. While pressed it paints and then re-checks region completion.
func (s *ScratchTracker) HandlePointer(p Vec2, pressed bool) {
	if !pressed {
		return
	}
	s.Paint(p)
	s.regions.Check(s.buf, s.reportRegions)
}

// PercentCovered scans the whole buffer and returns the share of fully
// scratched cells. Prefer RequestProgressUpdate from per-frame code.
func (s *ScratchTracker) PercentCovered() float64 {
	return s.buf.PercentCovered()
}

// RequestProgressUpdate asks for a pixel-based progress report. The request
// is serviced on the next tick and cannot be cancelled.
func (s *ScratchTracker) RequestProgressUpdate() {
	if s.readback == readbackPending {
		return
	}
	s.readback = readbackPending
	s.readbackFrame = s.frame
}

// ReadbackPending reports whether a pixel readback is waiting for the next
// tick.
func (s *ScratchTracker) ReadbackPending() bool {
	return s.readback == readbackPending
}

// Update runs one tick: one queued synthetic pointer event is consumed and a
// readback requested during an earlier tick is serviced. A request made
// before or during this tick's Update is latched when the tick ends.
func (s *ScratchTracker) Update() {
	s.processInjectedInput()

	if s.readback == readbackPending && s.frame > s.readbackFrame {
		s.readback = readbackIdle
		s.report(Progress{Percent: s.PercentCovered(), Source: ProgressPixels})
	}
	s.frame++
}

func (s *ScratchTracker) reportRegions(percent float64) {
	s.report(Progress{Percent: percent, Source: ProgressRegions})
}

func (s *ScratchTracker) report(p Progress) {
	if s.onProgress != nil {
		s.onProgress(p)
	}
}
