// Package game runs a scratchroad.Road inside an Ebitengine game loop. It
// polls the pointer, mirrors brush strokes onto a visible mask, draws the
// road and shows a small HUD.
package game

import (
	"errors"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/scratchroad"
)

// ErrNoRoad is returned when New is called without a road.
var ErrNoRoad = errors.New("game: road not assigned")

// Options controls the window and where the scratch card and the road are
// drawn, in screen pixels.
type Options struct {
	Title    string
	Width    int
	Height   int
	Surface  scratchroad.Rect
	RoadView scratchroad.Rect
	// CheckButton issues a pixel progress readback when clicked.
	CheckButton scratchroad.Rect
}

// DefaultOptions returns a portrait layout with the scratch card on top and
// the road below it.
func DefaultOptions() Options {
	return Options{
		Title:       "scratchroad",
		Width:       480,
		Height:      720,
		Surface:     scratchroad.Rect{X: 90, Y: 90, Width: 300, Height: 220},
		RoadView:    scratchroad.Rect{X: 0, Y: 330, Width: 480, Height: 390},
		CheckButton: scratchroad.Rect{X: 380, Y: 8, Width: 90, Height: 20},
	}
}

var (
	colorBackground = color.RGBA{R: 30, G: 30, B: 40, A: 255}
	colorPrize      = color.RGBA{R: 240, G: 200, B: 60, A: 255}
	colorMask       = color.RGBA{R: 150, G: 150, B: 160, A: 255}
	colorAsphalt    = color.RGBA{R: 55, G: 55, B: 60, A: 255}
	colorLane       = color.RGBA{R: 235, G: 235, B: 235, A: 255}
	obstacleColors  = []color.RGBA{
		{R: 255, G: 120, B: 40, A: 255},
		{R: 80, G: 180, B: 255, A: 255},
		{R: 160, G: 120, B: 90, A: 255},
	}
)

// Game implements ebiten.Game.
type Game struct {
	road    *scratchroad.Road
	opts    Options
	mask    *MaskTexture
	pointer pointerPoller
	hud     *hud
	view    roadView

	obstacleBuf []scratchroad.Obstacle
	laneBuf     []scratchroad.LaneMarking
}

// New creates a game around road. The road's paint callback is taken over
// to keep the visible mask in step with the coverage buffer.
func New(road *scratchroad.Road, opts Options) (*Game, error) {
	if road == nil {
		return nil, ErrNoRoad
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, errors.New("game: window size must be positive")
	}
	buf := road.Scratch().Buffer()
	g := &Game{
		road: road,
		opts: opts,
		mask: NewMaskTexture(buf.Width(), buf.Height(), colorMask),
		hud:  newHUD(opts.CheckButton),
		view: newRoadView(opts.RoadView, road.Config()),
	}
	road.Scratch().SetPaintCallback(func(p scratchroad.Vec2, radius int, shape scratchroad.BrushShape) {
		cx, cy := buf.CellAt(p)
		g.mask.EraseCell(cx, cy, radius, shape)
	})
	return g, nil
}

// Road returns the simulated road.
func (g *Game) Road() *scratchroad.Road {
	return g.road
}

// Update polls input and advances the road by one tick.
func (g *Game) Update() error {
	dt := 1.0 / float64(ebiten.TPS())

	sx, sy, pressed := g.pointer.poll()
	if pos, ok := surfacePosition(g.opts.Surface, sx, sy); ok {
		g.road.Scratch().HandlePointer(pos, pressed)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.road.Scratch().RequestProgressUpdate()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && g.opts.CheckButton.Contains(sx, sy) {
		g.road.Scratch().RequestProgressUpdate()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyUp) {
		g.road.Lanes().IncreaseSpeed()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDown) {
		g.road.Lanes().DecreaseSpeed()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.road.Lanes().ResetSpeed()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.road.Snapshot("manual")
	}

	g.road.Update(dt)
	g.hud.update(dt, g.road)
	return nil
}

// Draw renders the scratch card, the road and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	s := g.opts.Surface
	fillRect(screen, s, colorPrize)
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(s.Width/float64(g.mask.Width()), s.Height/float64(g.mask.Height()))
	op.GeoM.Translate(s.X, s.Y)
	screen.DrawImage(g.mask.Image(), &op)

	fillRect(screen, g.opts.RoadView, colorAsphalt)
	g.laneBuf = g.road.Lanes().AppendVisible(g.laneBuf[:0])
	for _, m := range g.laneBuf {
		fillRect(screen, g.view.laneRect(m), colorLane)
	}
	g.obstacleBuf = g.road.Obstacles().AppendActive(g.obstacleBuf[:0])
	for _, o := range g.obstacleBuf {
		fillRect(screen, g.view.obstacleRect(o), obstacleColors[int(o.Type)%len(obstacleColors)])
	}

	g.hud.draw(screen)
}

// Layout returns the fixed logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.opts.Width, g.opts.Height
}

// Run opens a window and blocks until it is closed.
func Run(g *Game) error {
	ebiten.SetWindowSize(g.opts.Width, g.opts.Height)
	ebiten.SetWindowTitle(g.opts.Title)
	return ebiten.RunGame(g)
}

// --- White pixel singleton (single-threaded, no sync.Once) ---

var whitePixelImage *ebiten.Image

func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}

// fillRect draws a solid rectangle by scaling the white pixel.
func fillRect(dst *ebiten.Image, r scratchroad.Rect, c color.RGBA) {
	if r.Width <= 0 || r.Height <= 0 {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Scale(r.Width, r.Height)
	op.GeoM.Translate(r.X, r.Y)
	op.ColorScale.ScaleWithColor(c)
	dst.DrawImage(ensureWhitePixel(), &op)
}
