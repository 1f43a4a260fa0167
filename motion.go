package scratchroad

import "slices"

// Progress returns how far along the road a Y position is, from 0 at the
// spawn line to 1 at the exit line.
func (f *ObstacleField) Progress(y float64) float64 {
	return clamp01((f.cfg.SpawnY - y) / (f.cfg.SpawnY - f.cfg.ExitY))
}

// ScaleAt interpolates the obstacle scale for progress p. ScaleAt(0) is the
// minimum scale and ScaleAt(1) the maximum, exactly.
func (f *ObstacleField) ScaleAt(p float64) float64 {
	return f.cfg.Scale.At(clamp01(p))
}

// SpeedAt returns the vertical speed for an obstacle at the given scale.
// Larger (closer) obstacles move faster.
func (f *ObstacleField) SpeedAt(scale float64) float64 {
	return f.cfg.Speed * (1 + (scale-f.cfg.Scale.Min)*f.cfg.Acceleration)
}

// advance moves every active obstacle toward the viewer and recycles the
// ones that pass the exit line. Iterates in reverse so removals do not
// disturb the indices still to visit.
func (f *ObstacleField) advance(dt float64) {
	for i := len(f.active) - 1; i >= 0; i-- {
		o := &f.pools.arena[f.active[i]]

		p := f.Progress(o.Y)
		o.Scale = f.ScaleAt(p)
		o.X = o.InitialX + o.Side.Sign()*p*f.cfg.LateralSpread*f.cfg.RoadWidth
		o.Y -= f.SpeedAt(o.Scale) * dt

		if o.Y < f.cfg.ExitY {
			f.pools.release(o.ID)
			f.active = slices.Delete(f.active, i, i+1)
			f.stats.Despawned++
			f.event(EventObstacleDespawned, o)
		}
	}
}
