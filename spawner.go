package scratchroad

// SpawnHistory is the rolling fairness state: the side of the last spawn
// decision and how many decisions in a row repeated it.
type SpawnHistory struct {
	LastSide    Side
	Consecutive int
}

// apply records a spawn decision for side. When the same side has repeated
// limit times the decision is flipped to the opposite side and the counter
// resets. Returns the final side and whether it was forced.
func (h *SpawnHistory) apply(side Side, limit int) (Side, bool) {
	forced := false
	if h.LastSide != SideNone && side == h.LastSide {
		h.Consecutive++
		if h.Consecutive >= limit {
			side = h.LastSide.Opposite()
			h.Consecutive = 0
			forced = true
		}
	} else {
		h.Consecutive = 0
	}
	h.LastSide = side
	return side, forced
}

// tick accumulates dt and, once the spawn interval has elapsed, rolls the
// spawn gate. The gate chance is the interval value itself, so changing the
// cadence also changes how often a check succeeds. Returns true when a spawn
// was attempted.
func (f *ObstacleField) tick(dt float64) bool {
	f.elapsed += dt
	if f.elapsed < f.cfg.SpawnInterval {
		return false
	}
	f.elapsed = 0
	f.stats.Checks++
	if f.rng.Float64() >= f.cfg.SpawnInterval {
		return false
	}
	f.stats.Attempts++
	f.trySpawn()
	return true
}

// trySpawn picks a side and type, then validates the candidate against the
// spacing rule. A full road rejects the attempt before any side is drawn,
// so the anti-streak history only sees decisions that can still spawn.
// Rejected candidates go straight back to their pool.
func (f *ObstacleField) trySpawn() (ObstacleID, bool) {
	if len(f.active) >= f.cfg.MaxObstacles {
		f.stats.RejectedCap++
		return 0, false
	}

	side := SideRight
	if f.rng.Float64() > 0.5 {
		side = SideLeft
	}
	side, forced := f.history.apply(side, f.cfg.StreakLimit)
	if forced {
		f.stats.ForcedSide++
	}

	typ := TypeID(f.rng.IntN(len(f.pools.free)))
	id, ok := f.pools.acquire(typ)
	if !ok {
		f.stats.PoolEmpty++
		logf("warning: obstacle pool %q empty, spawn skipped", f.TypeName(typ))
		return 0, false
	}

	// Spawn near the lane center, not the road edge.
	x := side.Sign() * f.cfg.RoadWidth * f.cfg.CenterBias
	if !f.validSpawnPosition(x, f.cfg.SpawnY) {
		f.pools.release(id)
		f.stats.RejectedSpacing++
		return 0, false
	}

	o := &f.pools.arena[id]
	o.Side = side
	o.InitialX = x
	o.X = x
	o.Y = f.cfg.SpawnY
	o.Scale = f.cfg.Scale.Min
	o.active = true
	f.active = append(f.active, id)
	f.stats.Spawned++
	f.event(EventObstacleSpawned, o)
	return id, true
}

// validSpawnPosition reports whether (x, y) keeps clear of every active
// obstacle. A spawn is invalid only when both the vertical and the horizontal
// gap to some obstacle are below their minimums.
func (f *ObstacleField) validSpawnPosition(x, y float64) bool {
	for _, id := range f.active {
		o := &f.pools.arena[id]
		if abs(o.Y-y) < f.cfg.MinHeightGap && abs(o.X-x) < f.cfg.MinHorizontalGap {
			return false
		}
	}
	return true
}
