package scratchroad

import (
	"fmt"

	"github.com/google/uuid"
)

// Road is the top-level object that owns the scratch tracker, the obstacle
// field, the lane markings and the progress meter, and drives them once per
// tick.
type Road struct {
	cfg   Config
	runID string
	store EventSink
	debug bool

	scratch   *ScratchTracker
	obstacles *ObstacleField
	lanes     *LaneMarkings
	meter     *ProgressMeter

	onProgress func(Progress)
	complete   bool
	statsAccum float64

	testRunner    *TestRunner
	snapshotQueue []string

	// SnapshotDir is the directory coverage snapshots are written to.
	SnapshotDir string
}

// NewRoad validates cfg and wires every component. A nil rng uses the
// math/rand/v2 global source. Configuration problems are returned here and
// nowhere else.
func NewRoad(cfg Config, rng Rand) (*Road, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	scratch, err := NewScratchTracker(SurfaceFromConfig(cfg.Scratch), cfg.Scratch)
	if err != nil {
		return nil, fmt.Errorf("new road: %w", err)
	}

	r := &Road{
		cfg:         cfg,
		runID:       "run-" + uuid.New().String()[:8],
		debug:       cfg.Debug,
		scratch:     scratch,
		obstacles:   NewObstacleField(cfg.Obstacles, rng),
		lanes:       NewLaneMarkings(cfg.Lanes),
		meter:       NewProgressMeter(cfg.Meter.Seconds),
		SnapshotDir: cfg.SnapshotDir,
	}
	scratch.SetProgressCallback(r.handleProgress)
	r.obstacles.SetEventFunc(r.emit)
	r.lanes.SetEventFunc(r.emit)
	r.lanes.SpawnInitial()
	return r, nil
}

// Update advances every component by dt seconds. Order: scripted test
// steps, scratch input and readback, obstacle spawn and motion, lane
// markings, progress meter, snapshots.
func (r *Road) Update(dt float64) {
	if r.testRunner != nil {
		r.testRunner.step(r)
	}
	r.scratch.Update()
	r.obstacles.Update(dt)
	r.lanes.Update(dt)
	r.meter.Update(float32(dt))

	if r.debug {
		r.statsAccum += dt
		if r.statsAccum >= debugStatsInterval {
			r.statsAccum = 0
			r.debugLog()
		}
	}
	r.flushSnapshots()
}

// handleProgress fans a progress report out to the meter, the event sink
// and the user callback, and detects scratch completion.
func (r *Road) handleProgress(p Progress) {
	r.meter.Set(p.Percent)
	r.emit(Event{Type: EventProgress, Percent: p.Percent, Source: p.Source})
	if r.onProgress != nil {
		r.onProgress(p)
	}
	if r.debug {
		logf("progress %.1f%% (%s)", p.Percent, p.Source)
	}

	if !r.complete && p.Source == ProgressRegions && r.scratch.Regions().Done() {
		r.complete = true
		r.emit(Event{Type: EventScratchComplete, Percent: p.Percent, Source: p.Source})
		if r.debug {
			logf("scratch complete")
		}
	}
}

func (r *Road) emit(e Event) {
	if r.store == nil {
		return
	}
	e.RunID = r.runID
	r.store.EmitEvent(e)
}

// RunID returns the identifier stamped on every event of this session.
func (r *Road) RunID() string {
	return r.runID
}

// Config returns the configuration the road was built with.
func (r *Road) Config() Config {
	return r.cfg
}

// Scratch returns the scratch tracker.
func (r *Road) Scratch() *ScratchTracker {
	return r.scratch
}

// Obstacles returns the obstacle field.
func (r *Road) Obstacles() *ObstacleField {
	return r.obstacles
}

// Lanes returns the lane markings.
func (r *Road) Lanes() *LaneMarkings {
	return r.lanes
}

// Meter returns the eased progress display.
func (r *Road) Meter() *ProgressMeter {
	return r.meter
}

// Complete reports whether every scratch region has been completed.
func (r *Road) Complete() bool {
	return r.complete
}

// SetEntityStore sets the optional event sink.
func (r *Road) SetEntityStore(store EventSink) {
	r.store = store
}

// SetProgressCallback sets the function receiving every progress report.
func (r *Road) SetProgressCallback(fn func(Progress)) {
	r.onProgress = fn
}

// SetDebugMode enables or disables debug mode. When enabled, progress
// reports are logged and spawn stats are printed once per second.
func (r *Road) SetDebugMode(enabled bool) {
	r.debug = enabled
}
