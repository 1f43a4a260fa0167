package scratchroad

import (
	"fmt"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// ProgressSource tells which computation produced a progress value. The two
// signals are independent and may disagree; neither is authoritative.
type ProgressSource uint8

const (
	ProgressRegions ProgressSource = iota // completed regions / total regions
	ProgressPixels                        // fully scratched cells / total cells
)

func (s ProgressSource) String() string {
	if s == ProgressPixels {
		return "pixels"
	}
	return "regions"
}

// Progress is a single progress report in [0, 100].
type Progress struct {
	Percent float64
	Source  ProgressSource
}

// ProgressMeter eases a displayed percentage toward the latest reported
// value. Call Update(dt) each frame; there is no global animation manager.
type ProgressMeter struct {
	tween    *gween.Tween
	value    float64
	target   float64
	duration float32
	Done     bool
}

// NewProgressMeter creates a meter that takes seconds to settle on a new
// value. A zero duration snaps immediately.
func NewProgressMeter(seconds float64) *ProgressMeter {
	return &ProgressMeter{duration: float32(seconds), Done: true}
}

// Set retargets the meter. The displayed value eases from wherever it
// currently is.
func (m *ProgressMeter) Set(percent float64) {
	m.target = percent
	if m.duration <= 0 {
		m.value = percent
		m.tween = nil
		m.Done = true
		return
	}
	m.tween = gween.New(float32(m.value), float32(percent), m.duration, ease.OutQuad)
	m.Done = false
}

// Update advances the easing by dt seconds.
func (m *ProgressMeter) Update(dt float32) {
	if m.Done || m.tween == nil {
		return
	}
	val, finished := m.tween.Update(dt)
	m.value = float64(val)
	if finished {
		m.value = m.target
		m.tween = nil
		m.Done = true
	}
}

// Value returns the displayed percentage.
func (m *ProgressMeter) Value() float64 {
	return m.value
}

// Target returns the most recently reported percentage.
func (m *ProgressMeter) Target() float64 {
	return m.target
}

// Text formats the displayed percentage the way the HUD shows it.
func (m *ProgressMeter) Text() string {
	return fmt.Sprintf("%.1f%%", m.value)
}
