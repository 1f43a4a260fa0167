package scratchroad

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// LaneMarking is a pooled dashed-line segment painted on the road.
type LaneMarking struct {
	X, Y     float64
	ScaleX   float64
	ScaleY   float64
	Velocity float64
	active   bool
}

// Active reports whether the marking is visible.
func (m LaneMarking) Active() bool {
	return m.active
}

// LaneMarkings moves lane markings toward the viewer with the same
// progress-to-scale interpolation as obstacles. Velocity eases toward a
// scale-dependent target instead of being integrated directly, and markings
// are respawned at the top with spacing taken from a lookup table indexed by
// the current visible count.
type LaneMarkings struct {
	cfg    LaneConfig
	pool   []LaneMarking
	speed  float64
	target float64
	ramp   *gween.Tween
	emit   func(Event)
}

// NewLaneMarkings allocates the marking pool. Call SpawnInitial to lay out
// the first markings.
func NewLaneMarkings(cfg LaneConfig) *LaneMarkings {
	return &LaneMarkings{
		cfg:    cfg,
		pool:   make([]LaneMarking, cfg.PoolSize),
		speed:  cfg.InitialSpeed,
		target: cfg.InitialSpeed,
	}
}

// SetEventFunc sets the lifecycle event callback.
func (l *LaneMarkings) SetEventFunc(fn func(Event)) {
	l.emit = fn
}

// InitialPositions returns the Y of each marking in the starting layout.
// The first sits on the start line; each following one is placed
// FixedSpacing×Spacings[i-1]×3 further down.
func (l *LaneMarkings) InitialPositions() []float64 {
	pos := make([]float64, l.cfg.MaxVisible)
	pos[0] = l.cfg.StartY
	for i := 1; i < len(pos); i++ {
		pos[i] = pos[i-1] - l.cfg.FixedSpacing*l.spacing(i-1)*3
	}
	return pos
}

// SpawnInitial places one marking at each initial position.
func (l *LaneMarkings) SpawnInitial() {
	for _, y := range l.InitialPositions() {
		l.spawnAt(y)
	}
}

// Update advances every visible marking and tops the road back up to
// MaxVisible markings.
func (l *LaneMarkings) Update(dt float64) {
	l.updateSpeed(dt)

	visible := 0
	highestY := math.Inf(-1)
	smoothing := clamp01(dt * l.cfg.VelocitySmoothing)

	for i := range l.pool {
		m := &l.pool[i]
		if !m.active {
			continue
		}
		t := l.progress(m.Y)
		m.ScaleX = lerp(l.cfg.StartScale.X, l.cfg.EndScale.X, t)
		m.ScaleY = lerp(l.cfg.StartScale.Y, l.cfg.EndScale.Y, t)

		target := l.speed * m.ScaleY / l.cfg.StartScale.Y
		m.Velocity = lerp(m.Velocity, target, smoothing)
		m.Y -= m.Velocity * dt

		if m.Y < l.cfg.EndY {
			m.active = false
			l.event(EventLaneMarkingHidden, m)
			continue
		}
		highestY = max(highestY, m.Y)
		visible++
	}

	if visible >= l.cfg.MaxVisible {
		return
	}
	if visible == 0 {
		l.spawnAt(l.cfg.StartY)
		return
	}
	newY := highestY + l.cfg.FixedSpacing*l.spacing(visible-1)
	if newY <= l.cfg.StartY {
		l.spawnAt(newY)
	}
}

// spawnAt activates a free marking at y. Returns false, with a warning,
// when the pool is exhausted.
func (l *LaneMarkings) spawnAt(y float64) bool {
	for i := range l.pool {
		m := &l.pool[i]
		if m.active {
			continue
		}
		t := l.progress(y)
		m.X = l.cfg.StartX
		m.Y = y
		m.ScaleX = lerp(l.cfg.StartScale.X, l.cfg.EndScale.X, t)
		m.ScaleY = lerp(l.cfg.StartScale.Y, l.cfg.EndScale.Y, t)
		m.Velocity = l.speed * m.ScaleY / l.cfg.StartScale.Y
		m.active = true
		l.event(EventLaneMarkingSpawned, m)
		return true
	}
	logf("warning: lane marking pool empty (%d in use), spawn at y=%.2f skipped", len(l.pool), y)
	return false
}

func (l *LaneMarkings) progress(y float64) float64 {
	return clamp01((l.cfg.StartY - y) / (l.cfg.StartY - l.cfg.EndY))
}

// spacing looks up the spacing table, clamping the index to its ends.
func (l *LaneMarkings) spacing(i int) float64 {
	if len(l.cfg.Spacings) == 0 {
		return 1
	}
	i = max(0, min(i, len(l.cfg.Spacings)-1))
	return l.cfg.Spacings[i]
}

// VisibleCount returns the number of active markings.
func (l *LaneMarkings) VisibleCount() int {
	n := 0
	for i := range l.pool {
		if l.pool[i].active {
			n++
		}
	}
	return n
}

// AppendVisible appends the active markings to buf.
func (l *LaneMarkings) AppendVisible(buf []LaneMarking) []LaneMarking {
	for i := range l.pool {
		if l.pool[i].active {
			buf = append(buf, l.pool[i])
		}
	}
	return buf
}

// CurrentSpeed returns the base scroll speed.
func (l *LaneMarkings) CurrentSpeed() float64 {
	return l.speed
}

// TargetSpeed returns the speed the ramp is heading to.
func (l *LaneMarkings) TargetSpeed() float64 {
	return l.target
}

// IncreaseSpeed raises the base speed by one acceleration step, capped at
// MaxSpeed.
func (l *LaneMarkings) IncreaseSpeed() {
	l.setTarget(min(l.target+l.cfg.Acceleration, l.cfg.MaxSpeed))
}

// DecreaseSpeed lowers the base speed by one acceleration step, floored at
// InitialSpeed.
func (l *LaneMarkings) DecreaseSpeed() {
	l.setTarget(max(l.target-l.cfg.Acceleration, l.cfg.InitialSpeed))
}

// ResetSpeed returns to InitialSpeed.
func (l *LaneMarkings) ResetSpeed() {
	l.setTarget(l.cfg.InitialSpeed)
}

func (l *LaneMarkings) setTarget(v float64) {
	l.target = v
	if l.cfg.SpeedRampSeconds <= 0 {
		l.speed = v
		l.ramp = nil
		return
	}
	l.ramp = gween.New(float32(l.speed), float32(v), float32(l.cfg.SpeedRampSeconds), ease.OutQuad)
}

func (l *LaneMarkings) updateSpeed(dt float64) {
	if l.ramp == nil {
		return
	}
	val, finished := l.ramp.Update(float32(dt))
	l.speed = float64(val)
	if finished {
		l.speed = l.target
		l.ramp = nil
	}
}

func (l *LaneMarkings) event(t EventType, m *LaneMarking) {
	if l.emit == nil {
		return
	}
	l.emit(Event{Type: t, X: m.X, Y: m.Y, ScaleX: m.ScaleX, ScaleY: m.ScaleY})
}
