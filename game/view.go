package game

import "github.com/phanxgames/scratchroad"

// obstacleSizeFactor converts an obstacle's scale into screen units.
const obstacleSizeFactor = 0.4

// roadView projects road coordinates (Y decreasing toward the viewer) into
// a screen rectangle. The highest spawn line maps to the top edge and the
// lowest exit line to the bottom edge.
type roadView struct {
	rect      scratchroad.Rect
	top       float64
	bottom    float64
	unitPx    float64
	centerPx  float64
	heightPer float64
}

func newRoadView(rect scratchroad.Rect, cfg scratchroad.Config) roadView {
	o, l := cfg.Obstacles, cfg.Lanes
	top := max(o.SpawnY, l.StartY)
	bottom := min(o.ExitY, l.EndY)
	halfWidth := o.RoadWidth * (o.CenterBias + o.LateralSpread)
	if halfWidth <= 0 {
		halfWidth = 1
	}
	v := roadView{
		rect:     rect,
		top:      top,
		bottom:   bottom,
		unitPx:   rect.Width / (2*halfWidth + 1),
		centerPx: rect.X + rect.Width/2,
	}
	if top > bottom {
		v.heightPer = rect.Height / (top - bottom)
	}
	return v
}

// toScreen maps a road position to screen pixels.
func (v roadView) toScreen(x, y float64) (float64, float64) {
	return v.centerPx + x*v.unitPx, v.rect.Y + (v.top-y)*v.heightPer
}

// obstacleRect returns the screen rect of an obstacle, standing on its
// road position.
func (v roadView) obstacleRect(o scratchroad.Obstacle) scratchroad.Rect {
	size := o.Scale * v.unitPx * obstacleSizeFactor
	x, y := v.toScreen(o.X, o.Y)
	return scratchroad.Rect{X: x - size/2, Y: y - size, Width: size, Height: size}
}

// laneRect returns the screen rect of a lane marking centered on its road
// position.
func (v roadView) laneRect(m scratchroad.LaneMarking) scratchroad.Rect {
	w := m.ScaleX * v.unitPx
	h := m.ScaleY * v.unitPx * 2
	x, y := v.toScreen(m.X, m.Y)
	return scratchroad.Rect{X: x - w/2, Y: y - h/2, Width: w, Height: h}
}
