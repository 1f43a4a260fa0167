package game

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/scratchroad"
)

// MaskTexture is the visible scratch layer. It has the same resolution as
// the coverage buffer, so one texel covers one cell; brush strokes are
// punched out of it with destination-out blending.
type MaskTexture struct {
	image   *ebiten.Image
	w, h    int
	brushes map[brushKey]*ebiten.Image
}

type brushKey struct {
	radius int
	shape  scratchroad.BrushShape
}

// NewMaskTexture creates a mask of the given size filled with c.
func NewMaskTexture(w, h int, c color.Color) *MaskTexture {
	m := &MaskTexture{
		image:   ebiten.NewImage(w, h),
		w:       w,
		h:       h,
		brushes: make(map[brushKey]*ebiten.Image),
	}
	m.image.Fill(c)
	return m
}

// Image returns the underlying *ebiten.Image.
func (m *MaskTexture) Image() *ebiten.Image {
	return m.image
}

// Width returns the texture width in texels.
func (m *MaskTexture) Width() int {
	return m.w
}

// Height returns the texture height in texels.
func (m *MaskTexture) Height() int {
	return m.h
}

// EraseCell punches a brush-shaped hole centered on texel (cx, cy).
func (m *MaskTexture) EraseCell(cx, cy, radius int, shape scratchroad.BrushShape) {
	if radius < 0 {
		radius = 0
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(float64(cx-radius), float64(cy-radius))
	op.Blend = ebiten.BlendDestinationOut
	m.image.DrawImage(m.brush(radius, shape), &op)
}

// brush returns a cached opaque stamp for the radius and shape.
func (m *MaskTexture) brush(radius int, shape scratchroad.BrushShape) *ebiten.Image {
	key := brushKey{radius: radius, shape: shape}
	if img, ok := m.brushes[key]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(brushImage(radius, shape))
	m.brushes[key] = img
	return img
}

// Dispose deallocates the mask and cached brushes. The MaskTexture should
// not be used after calling Dispose.
func (m *MaskTexture) Dispose() {
	for k, b := range m.brushes {
		b.Deallocate()
		delete(m.brushes, k)
	}
	if m.image != nil {
		m.image.Deallocate()
		m.image = nil
	}
}

// brushImage rasterizes the brush footprint the coverage buffer uses: a
// (2r+1)² square, or the cells within r of the center for circles.
func brushImage(radius int, shape scratchroad.BrushShape) *image.RGBA {
	size := 2*radius + 1
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	r2 := radius * radius
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if shape == scratchroad.BrushCircle {
				dx, dy := x-radius, y-radius
				if dx*dx+dy*dy > r2 {
					continue
				}
			}
			img.SetRGBA(x, y, color.RGBA{R: 255, G: 255, B: 255, A: 255})
		}
	}
	return img
}
