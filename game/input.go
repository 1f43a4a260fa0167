package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/scratchroad"
)

// pointerPoller reads the primary pointer once per frame: the left mouse
// button, or the first active touch when the mouse is idle.
type pointerPoller struct {
	touchIDs []ebiten.TouchID
}

// poll returns the pointer position in screen pixels and whether it is down.
func (p *pointerPoller) poll() (x, y float64, pressed bool) {
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		return float64(mx), float64(my), true
	}

	p.touchIDs = ebiten.AppendTouchIDs(p.touchIDs[:0])
	if len(p.touchIDs) > 0 {
		tx, ty := ebiten.TouchPosition(p.touchIDs[0])
		return float64(tx), float64(ty), true
	}

	mx, my := ebiten.CursorPosition()
	return float64(mx), float64(my), false
}

// surfacePosition converts a screen point to normalized surface
// coordinates. ok is false when the point is outside the surface rect.
func surfacePosition(surface scratchroad.Rect, sx, sy float64) (pos scratchroad.Vec2, ok bool) {
	if surface.Width <= 0 || surface.Height <= 0 || !surface.Contains(sx, sy) {
		return scratchroad.Vec2{}, false
	}
	return scratchroad.Vec2{
		X: (sx - surface.X) / surface.Width,
		Y: (sy - surface.Y) / surface.Height,
	}, true
}
