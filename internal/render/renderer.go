//go:build ebiten

package render

import (
	"plasma/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// Painter uploads packed frames into a single ebiten image and draws the
// source region scaled to the frame's destination size.
type Painter struct {
	bitmap core.Size
	img    *ebiten.Image
	buf    []byte
}

// NewPainter allocates a painter for bitmaps of the given size.
func NewPainter(bitmap core.Size) *Painter {
	p := &Painter{bitmap: bitmap, buf: make([]byte, 4*bitmap.Area())}
	p.img = ebiten.NewImage(bitmap.W, bitmap.H)
	return p
}

// Blit uploads the frame pixels into the painter image and draws it.
func (p *Painter) Blit(dst *ebiten.Image, f Frame) {
	if f.Bitmap != p.bitmap || len(f.Pixels) != p.bitmap.Area() {
		return
	}
	FillRGBA(p.buf, f.Pixels)
	p.img.ReplacePixels(p.buf)

	src := f.SourceRect()
	if src.Empty() || f.Dst.Empty() {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(f.Dst.W)/float64(src.Dx()), float64(f.Dst.H)/float64(src.Dy()))
	dst.DrawImage(p.img.SubImage(src).(*ebiten.Image), op)
}

// Size returns the dimensions of the underlying image.
func (p *Painter) Size() core.Size { return p.bitmap }
