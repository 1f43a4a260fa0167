package scratchroad

import (
	"bytes"
	"math"
	"strings"
	"testing"
)

func TestLaneInitialPositions(t *testing.T) {
	l := NewLaneMarkings(DefaultConfig().Lanes)
	got := l.InitialPositions()
	// 5.7, then 1.8 × spacing × 3 further down each time.
	want := []float64{5.7, 1.38, -5.1, -14.82}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Errorf("pos[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestLaneSpawnInitialThenHide(t *testing.T) {
	l := NewLaneMarkings(DefaultConfig().Lanes)
	var hidden int
	l.SetEventFunc(func(e Event) {
		if e.Type == EventLaneMarkingHidden {
			hidden++
		}
	})
	l.SpawnInitial()
	if l.VisibleCount() != 4 {
		t.Fatalf("VisibleCount = %d, want 4", l.VisibleCount())
	}

	// The two markings below the end line are hidden on the first tick and
	// the top one is too close to the start line to make room for a respawn.
	l.Update(1.0 / 60)
	if l.VisibleCount() != 2 || hidden != 2 {
		t.Errorf("VisibleCount = %d hidden = %d, want 2 and 2", l.VisibleCount(), hidden)
	}
	for _, m := range l.AppendVisible(nil) {
		if m.Y > l.cfg.StartY {
			t.Errorf("marking above start line: %+v", m)
		}
	}
}

func TestLaneEmptyRoadSpawnsAtStart(t *testing.T) {
	l := NewLaneMarkings(DefaultConfig().Lanes)
	var spawned []Event
	l.SetEventFunc(func(e Event) {
		if e.Type == EventLaneMarkingSpawned {
			spawned = append(spawned, e)
		}
	})
	l.Update(1.0 / 60)
	if len(spawned) != 1 || spawned[0].Y != l.cfg.StartY {
		t.Fatalf("spawned = %+v", spawned)
	}
	m := l.AppendVisible(nil)[0]
	if m.X != 0.15 || m.ScaleX != 0.05 || m.ScaleY != 0.02 || m.Velocity != 5 {
		t.Errorf("marking = %+v", m)
	}
}

func TestLaneRespawnSpacing(t *testing.T) {
	cfg := DefaultConfig().Lanes
	cfg.StartY, cfg.EndY = 10, 0
	cfg.PoolSize, cfg.MaxVisible = 3, 3
	cfg.FixedSpacing = 1
	cfg.Spacings = []float64{2, 5}
	l := NewLaneMarkings(cfg)

	l.spawnAt(4)
	// dt=0 freezes motion so only the respawn rule acts.
	l.Update(0)
	ys := visibleYs(l)
	if len(ys) != 2 || ys[1] != 6 {
		t.Fatalf("after first update ys = %v, want [4 6]", ys)
	}
	// Next slot would be 6 + 5 = 11, above the start line.
	l.Update(0)
	if got := visibleYs(l); len(got) != 2 {
		t.Errorf("ys = %v, want no new marking", got)
	}
}

func visibleYs(l *LaneMarkings) []float64 {
	var ys []float64
	for _, m := range l.AppendVisible(nil) {
		ys = append(ys, m.Y)
	}
	return ys
}

func TestLaneSpacingClampsIndex(t *testing.T) {
	l := NewLaneMarkings(DefaultConfig().Lanes)
	if got := l.spacing(-3); got != 0.8 {
		t.Errorf("spacing(-3) = %v", got)
	}
	if got := l.spacing(50); got != 8.8 {
		t.Errorf("spacing(50) = %v", got)
	}
	l.cfg.Spacings = nil
	if got := l.spacing(2); got != 1 {
		t.Errorf("empty table spacing = %v", got)
	}
}

func TestLaneVelocityEasesTowardTarget(t *testing.T) {
	cfg := DefaultConfig().Lanes
	cfg.SpeedRampSeconds = 0
	l := NewLaneMarkings(cfg)
	l.spawnAt(2.35)
	before := l.AppendVisible(nil)[0]

	l.IncreaseSpeed()
	dt := 0.1
	l.Update(dt)
	after := l.AppendVisible(nil)[0]

	target := 7 * before.ScaleY / cfg.StartScale.Y
	want := lerp(before.Velocity, target, dt*cfg.VelocitySmoothing)
	if math.Abs(after.Velocity-want) > 1e-9 {
		t.Errorf("Velocity = %v, want %v", after.Velocity, want)
	}
	if math.Abs(after.Y-(before.Y-want*dt)) > 1e-9 {
		t.Errorf("Y = %v, want %v", after.Y, before.Y-want*dt)
	}
}

func TestLaneScaleMatchesProgress(t *testing.T) {
	cfg := DefaultConfig().Lanes
	l := NewLaneMarkings(cfg)
	l.spawnAt(cfg.EndY)
	m := l.AppendVisible(nil)[0]
	if m.ScaleX != cfg.EndScale.X || m.ScaleY != cfg.EndScale.Y {
		t.Errorf("scale at end line = %v,%v", m.ScaleX, m.ScaleY)
	}
}

func TestLaneSpeedControls(t *testing.T) {
	cfg := DefaultConfig().Lanes
	cfg.SpeedRampSeconds = 0
	l := NewLaneMarkings(cfg)

	l.IncreaseSpeed()
	if l.CurrentSpeed() != 7 {
		t.Fatalf("after increase = %v, want 7", l.CurrentSpeed())
	}
	for i := 0; i < 10; i++ {
		l.IncreaseSpeed()
	}
	if l.CurrentSpeed() != 15 {
		t.Errorf("capped speed = %v, want 15", l.CurrentSpeed())
	}
	l.DecreaseSpeed()
	if l.CurrentSpeed() != 13 {
		t.Errorf("after decrease = %v, want 13", l.CurrentSpeed())
	}
	l.ResetSpeed()
	l.DecreaseSpeed()
	if l.CurrentSpeed() != 5 {
		t.Errorf("floored speed = %v, want 5", l.CurrentSpeed())
	}
}

func TestLaneSpeedRamp(t *testing.T) {
	cfg := DefaultConfig().Lanes
	cfg.SpeedRampSeconds = 0.25
	l := NewLaneMarkings(cfg)

	l.IncreaseSpeed()
	if l.CurrentSpeed() != 5 || l.TargetSpeed() != 7 {
		t.Fatalf("speed %v target %v", l.CurrentSpeed(), l.TargetSpeed())
	}
	l.Update(0.125)
	if s := l.CurrentSpeed(); s <= 5 || s >= 7 {
		t.Errorf("mid-ramp speed = %v, want between 5 and 7", s)
	}
	l.Update(0.125)
	if l.CurrentSpeed() != 7 {
		t.Errorf("ramp end speed = %v, want 7", l.CurrentSpeed())
	}
}

func TestLaneSpawnPoolExhaustedIsLogged(t *testing.T) {
	var buf bytes.Buffer
	SetLogOutput(&buf)
	defer SetLogOutput(nil)

	cfg := DefaultConfig().Lanes
	cfg.PoolSize = 1
	l := NewLaneMarkings(cfg)
	if !l.spawnAt(cfg.StartY) {
		t.Fatal("first spawn failed")
	}
	if buf.Len() != 0 {
		t.Fatalf("unexpected log: %q", buf.String())
	}
	if l.spawnAt(0) {
		t.Fatal("spawn from an exhausted pool succeeded")
	}
	if !strings.Contains(buf.String(), "lane marking pool empty") {
		t.Errorf("missing warning, log = %q", buf.String())
	}
	if l.VisibleCount() != 1 {
		t.Errorf("VisibleCount = %d, want 1", l.VisibleCount())
	}
}
