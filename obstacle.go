package scratchroad

import "math/rand/v2"

// TypeID identifies an obstacle type. It is assigned at creation from the
// index into ObstacleConfig.Types and is what recycle pools are keyed by.
type TypeID uint16

// ObstacleID is an obstacle's index in the field's arena.
type ObstacleID int

// Obstacle is the per-instance record kept alongside the pooled handle.
// Side and InitialX are written at spawn time and drive the motion model.
type Obstacle struct {
	ID       ObstacleID
	Type     TypeID
	Side     Side
	InitialX float64
	X, Y     float64
	Scale    float64
	active   bool
}

// Active reports whether the obstacle is in the active set.
func (o Obstacle) Active() bool {
	return o.active
}

// Rand is the random source used by the spawner. *rand.Rand from
// math/rand/v2 satisfies it.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// globalRand uses the math/rand/v2 top-level functions.
type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }
func (globalRand) IntN(n int) int   { return rand.IntN(n) }

// obstaclePools owns the obstacle arena and one FIFO free list per type.
type obstaclePools struct {
	arena []Obstacle
	free  [][]ObstacleID
	names []string
}

func newObstaclePools(types []string, perType int) obstaclePools {
	p := obstaclePools{
		arena: make([]Obstacle, 0, len(types)*perType),
		free:  make([][]ObstacleID, len(types)),
		names: append([]string(nil), types...),
	}
	for t := range types {
		p.free[t] = make([]ObstacleID, 0, perType)
		for j := 0; j < perType; j++ {
			id := ObstacleID(len(p.arena))
			p.arena = append(p.arena, Obstacle{ID: id, Type: TypeID(t)})
			p.free[t] = append(p.free[t], id)
		}
	}
	return p
}

// acquire takes the oldest free instance of type t.
func (p *obstaclePools) acquire(t TypeID) (ObstacleID, bool) {
	q := p.free[t]
	if len(q) == 0 {
		return 0, false
	}
	id := q[0]
	p.free[t] = q[1:]
	return id, true
}

// release deactivates id and returns it to the pool for its own type.
func (p *obstaclePools) release(id ObstacleID) {
	o := &p.arena[id]
	o.active = false
	p.free[o.Type] = append(p.free[o.Type], id)
}

// available returns the number of free instances of type t.
func (p *obstaclePools) available(t TypeID) int {
	return len(p.free[t])
}

// ObstacleField owns the obstacle arena, the recycle pools and the active
// set. The spawn scheduler (spawner.go) and the motion model (motion.go) both
// operate on it within the same tick.
type ObstacleField struct {
	cfg     ObstacleConfig
	rng     Rand
	pools   obstaclePools
	active  []ObstacleID
	elapsed float64
	history SpawnHistory
	stats   SpawnStats
	emit    func(Event)
}

// NewObstacleField creates a field with PoolSize instances per type. A nil
// rng uses the math/rand/v2 global source.
func NewObstacleField(cfg ObstacleConfig, rng Rand) *ObstacleField {
	if rng == nil {
		rng = globalRand{}
	}
	return &ObstacleField{
		cfg:    cfg,
		rng:    rng,
		pools:  newObstaclePools(cfg.Types, cfg.PoolSize),
		active: make([]ObstacleID, 0, cfg.MaxObstacles),
	}
}

// SetEventFunc sets the lifecycle event callback.
func (f *ObstacleField) SetEventFunc(fn func(Event)) {
	f.emit = fn
}

// Update runs one tick: the spawn check followed by the motion pass.
func (f *ObstacleField) Update(dt float64) {
	f.tick(dt)
	f.advance(dt)
}

// ActiveCount returns the number of active obstacles.
func (f *ObstacleField) ActiveCount() int {
	return len(f.active)
}

// AppendActive appends the active obstacles, oldest first, to buf.
func (f *ObstacleField) AppendActive(buf []Obstacle) []Obstacle {
	for _, id := range f.active {
		buf = append(buf, f.pools.arena[id])
	}
	return buf
}

// Obstacle returns the record for id.
func (f *ObstacleField) Obstacle(id ObstacleID) (Obstacle, bool) {
	if id < 0 || int(id) >= len(f.pools.arena) {
		return Obstacle{}, false
	}
	return f.pools.arena[id], true
}

// TypeName returns the configured name for t.
func (f *ObstacleField) TypeName(t TypeID) string {
	if int(t) >= len(f.pools.names) {
		return ""
	}
	return f.pools.names[t]
}

// Available returns the number of pooled instances of type t.
func (f *ObstacleField) Available(t TypeID) int {
	if int(t) >= len(f.pools.free) {
		return 0
	}
	return f.pools.available(t)
}

// History returns the anti-streak state.
func (f *ObstacleField) History() SpawnHistory {
	return f.history
}

// Stats returns the scheduler counters.
func (f *ObstacleField) Stats() SpawnStats {
	return f.stats
}

func (f *ObstacleField) event(t EventType, o *Obstacle) {
	if f.emit == nil {
		return
	}
	f.emit(Event{
		Type:       t,
		ObstacleID: o.ID,
		TypeID:     o.Type,
		TypeName:   f.TypeName(o.Type),
		Side:       o.Side,
		X:          o.X,
		Y:          o.Y,
		ScaleX:     o.Scale,
		ScaleY:     o.Scale,
	})
}
