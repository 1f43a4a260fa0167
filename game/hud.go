package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/phanxgames/scratchroad"
)

// hudRefresh is how often the HUD text is redrawn, in seconds.
const hudRefresh = 0.25

// hud draws progress, obstacle and speed readouts plus the "check" button.
// The text image is redrawn every hudRefresh seconds.
type hud struct {
	img        *ebiten.Image
	button     scratchroad.Rect
	buttonImg  *ebiten.Image
	lastUpdate float64
}

func newHUD(button scratchroad.Rect) *hud {
	h := &hud{
		img:       ebiten.NewImage(220, 72),
		button:    button,
		buttonImg: ebiten.NewImage(max(int(button.Width), 1), max(int(button.Height), 1)),
	}
	h.buttonImg.Fill(color.RGBA{R: 60, G: 60, B: 90, A: 255})
	ebitenutil.DebugPrintAt(h.buttonImg, "CHECK [P]", 6, 2)
	return h
}

// update refreshes the text once enough time has passed.
func (h *hud) update(dt float64, road *scratchroad.Road) {
	h.lastUpdate += dt
	if h.lastUpdate < hudRefresh {
		return
	}
	h.lastUpdate = 0

	h.img.Clear()
	// Semi-transparent background for readability
	h.img.Fill(color.RGBA{A: 128})
	ebitenutil.DebugPrint(h.img, hudText(road, ebiten.ActualFPS()))
}

func (h *hud) draw(screen *ebiten.Image) {
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(h.button.X, h.button.Y)
	screen.DrawImage(h.buttonImg, &op)

	op.GeoM.Reset()
	op.GeoM.Translate(4, 4)
	screen.DrawImage(h.img, &op)
}

// hudText formats the readout lines.
func hudText(road *scratchroad.Road, fps float64) string {
	status := ""
	if road.Complete() {
		status = " DONE"
	}
	return fmt.Sprintf("Scratch: %s%s\nObstacles: %d\nSpeed: %.1f\nFPS: %.1f",
		road.Meter().Text(), status,
		road.Obstacles().ActiveCount(),
		road.Lanes().CurrentSpeed(),
		fps)
}
