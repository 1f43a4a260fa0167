package scratchroad

import (
	"image"
	"image/color"
)

// fullCoverage is the value at which a cell counts as scratched for the
// pixel-based progress signal.
const fullCoverage = 1.0

// BrushShape selects the neighbourhood a paint operation marks.
type BrushShape uint8

const (
	BrushSquare BrushShape = iota // (2r+1)×(2r+1) block, like the eraser quad
	BrushCircle                   // cells within r of the center
)

// ParseBrushShape maps a config name to a BrushShape. Unknown names return
// false.
func ParseBrushShape(name string) (BrushShape, bool) {
	switch name {
	case "", "square":
		return BrushSquare, true
	case "circle":
		return BrushCircle, true
	default:
		return BrushSquare, false
	}
}

// CoverageBuffer is a W×H grid of scratch coverage values in [0, 1].
// 0 means untouched, 1 means fully scratched. Values only ever increase.
type CoverageBuffer struct {
	w, h  int
	cells []float32
}

// NewCoverageBuffer creates an untouched buffer of the given resolution.
func NewCoverageBuffer(w, h int) *CoverageBuffer {
	return &CoverageBuffer{
		w:     w,
		h:     h,
		cells: make([]float32, w*h),
	}
}

// Width returns the buffer width in cells.
func (b *CoverageBuffer) Width() int {
	return b.w
}

// Height returns the buffer height in cells.
func (b *CoverageBuffer) Height() int {
	return b.h
}

// At returns the coverage of cell (x, y). Out-of-range cells read as 0.
func (b *CoverageBuffer) At(x, y int) float32 {
	if x < 0 || y < 0 || x >= b.w || y >= b.h {
		return 0
	}
	return b.cells[y*b.w+x]
}

// CellAt maps a normalized surface position to the nearest valid cell.
// Positions outside [0,1]² are clamped to the buffer edge.
func (b *CoverageBuffer) CellAt(p Vec2) (int, int) {
	x := int(clamp01(p.X) * float64(b.w))
	y := int(clamp01(p.Y) * float64(b.h))
	if x >= b.w {
		x = b.w - 1
	}
	if y >= b.h {
		y = b.h - 1
	}
	return x, y
}

// SampleNormalized returns the coverage under a normalized surface position.
func (b *CoverageBuffer) SampleNormalized(p Vec2) float32 {
	x, y := b.CellAt(p)
	return b.At(x, y)
}

// Paint adds strength to every cell in the brush neighbourhood around the
// normalized position p, clamping at 1. It returns the number of cells whose
// value changed; painting already-scratched cells changes nothing.
func (b *CoverageBuffer) Paint(p Vec2, radius int, shape BrushShape, strength float32) int {
	if radius < 0 {
		radius = 0
	}
	cx, cy := b.CellAt(p)
	x0, x1 := max(cx-radius, 0), min(cx+radius, b.w-1)
	y0, y1 := max(cy-radius, 0), min(cy+radius, b.h-1)
	r2 := radius * radius

	changed := 0
	for y := y0; y <= y1; y++ {
		row := y * b.w
		for x := x0; x <= x1; x++ {
			if shape == BrushCircle {
				dx, dy := x-cx, y-cy
				if dx*dx+dy*dy > r2 {
					continue
				}
			}
			c := &b.cells[row+x]
			if *c >= fullCoverage {
				continue
			}
			v := *c + strength
			if v > fullCoverage {
				v = fullCoverage
			}
			if v != *c {
				*c = v
				changed++
			}
		}
	}
	return changed
}

// ScratchedCells counts the cells at full coverage. This is a full scan.
func (b *CoverageBuffer) ScratchedCells() int {
	n := 0
	for _, c := range b.cells {
		if c >= fullCoverage {
			n++
		}
	}
	return n
}

// PercentCovered returns the share of fully scratched cells in [0, 100].
// This is a full O(W·H) scan; callers invoke it on demand only.
func (b *CoverageBuffer) PercentCovered() float64 {
	total := len(b.cells)
	if total == 0 {
		return 0
	}
	return float64(b.ScratchedCells()) * 100 / float64(total)
}

// Image renders the buffer as a grayscale image (white = scratched).
func (b *CoverageBuffer) Image() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, b.w, b.h))
	for y := 0; y < b.h; y++ {
		for x := 0; x < b.w; x++ {
			img.SetGray(x, y, color.Gray{Y: uint8(b.cells[y*b.w+x] * 255)})
		}
	}
	return img
}
