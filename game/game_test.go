package game

import (
	"errors"
	"math"
	"testing"

	"github.com/phanxgames/scratchroad"
)

func TestSurfacePosition(t *testing.T) {
	surface := scratchroad.Rect{X: 100, Y: 50, Width: 200, Height: 100}
	tests := []struct {
		name   string
		sx, sy float64
		want   scratchroad.Vec2
		ok     bool
	}{
		{"top-left corner", 100, 50, scratchroad.Vec2{X: 0, Y: 0}, true},
		{"center", 200, 100, scratchroad.Vec2{X: 0.5, Y: 0.5}, true},
		{"bottom-right corner", 300, 150, scratchroad.Vec2{X: 1, Y: 1}, true},
		{"left of surface", 99, 100, scratchroad.Vec2{}, false},
		{"below surface", 200, 151, scratchroad.Vec2{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := surfacePosition(surface, tt.sx, tt.sy)
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("surfacePosition(%v, %v) = %v, want %v", tt.sx, tt.sy, got, tt.want)
			}
		})
	}
}

func TestSurfacePositionEmptyRect(t *testing.T) {
	if _, ok := surfacePosition(scratchroad.Rect{}, 0, 0); ok {
		t.Error("zero-size surface should never contain the pointer")
	}
}

func TestRoadViewMapsLinesToEdges(t *testing.T) {
	cfg := scratchroad.DefaultConfig()
	rect := scratchroad.Rect{X: 0, Y: 300, Width: 480, Height: 400}
	v := newRoadView(rect, cfg)

	top := math.Max(cfg.Obstacles.SpawnY, cfg.Lanes.StartY)
	bottom := math.Min(cfg.Obstacles.ExitY, cfg.Lanes.EndY)

	x, y := v.toScreen(0, top)
	if x != 240 || math.Abs(y-300) > 1e-9 {
		t.Errorf("top center = (%v, %v), want (240, 300)", x, y)
	}
	_, y = v.toScreen(0, bottom)
	if math.Abs(y-700) > 1e-9 {
		t.Errorf("bottom y = %v, want 700", y)
	}
}

func TestRoadViewObstacleGrowsWithScale(t *testing.T) {
	v := newRoadView(scratchroad.Rect{Width: 480, Height: 400}, scratchroad.DefaultConfig())
	small := v.obstacleRect(scratchroad.Obstacle{Scale: 0.1})
	big := v.obstacleRect(scratchroad.Obstacle{Scale: 3})
	if big.Width <= small.Width {
		t.Errorf("big obstacle width %v should exceed small %v", big.Width, small.Width)
	}
}

func TestBrushImageFootprint(t *testing.T) {
	sq := brushImage(2, scratchroad.BrushSquare)
	if sq.Bounds().Dx() != 5 || sq.Bounds().Dy() != 5 {
		t.Fatalf("square brush size = %v, want 5x5", sq.Bounds())
	}
	if sq.RGBAAt(0, 0).A != 255 {
		t.Error("square brush corner should be opaque")
	}

	c := brushImage(2, scratchroad.BrushCircle)
	if c.RGBAAt(0, 0).A != 0 {
		t.Error("circle brush corner should be transparent")
	}
	if c.RGBAAt(2, 2).A != 255 || c.RGBAAt(2, 0).A != 255 {
		t.Error("circle brush center and edge midpoint should be opaque")
	}
}

func TestNewRequiresRoad(t *testing.T) {
	_, err := New(nil, DefaultOptions())
	if !errors.Is(err, ErrNoRoad) {
		t.Errorf("err = %v, want ErrNoRoad", err)
	}
}

func TestNewMaskTextureDimensions(t *testing.T) {
	m := NewMaskTexture(64, 32, colorMask)
	defer m.Dispose()

	if m.Width() != 64 || m.Height() != 32 {
		t.Errorf("size = %dx%d, want 64x32", m.Width(), m.Height())
	}
	if m.Image() == nil {
		t.Error("Image() should not be nil")
	}
}
