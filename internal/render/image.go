package render

import (
	"image"
	"image/color"
)

// PackedImage exposes a packed pixel buffer as a draw.Image so that the
// standard drawing and font packages can write into it directly.
type PackedImage struct {
	Pix []uint32
	W   int
	H   int
}

// NewPackedImage wraps pix as a w*h bitmap. It returns nil when the buffer is
// too small.
func NewPackedImage(pix []uint32, w, h int) *PackedImage {
	if w < 0 || h < 0 || len(pix) < w*h {
		return nil
	}
	return &PackedImage{Pix: pix, W: w, H: h}
}

// ColorModel implements image.Image.
func (p *PackedImage) ColorModel() color.Model { return color.RGBAModel }

// Bounds implements image.Image.
func (p *PackedImage) Bounds() image.Rectangle { return image.Rect(0, 0, p.W, p.H) }

// At implements image.Image.
func (p *PackedImage) At(x, y int) color.Color {
	return p.RGBAAt(x, y)
}

// RGBAAt returns the pixel at (x, y), or transparent black outside the bounds.
func (p *PackedImage) RGBAAt(x, y int) color.RGBA {
	if x < 0 || y < 0 || x >= p.W || y >= p.H {
		return color.RGBA{}
	}
	return Unpack(p.Pix[y*p.W+x])
}

// Set implements draw.Image.
func (p *PackedImage) Set(x, y int, c color.Color) {
	if x < 0 || y < 0 || x >= p.W || y >= p.H {
		return
	}
	p.Pix[y*p.W+x] = Pack(color.RGBAModel.Convert(c).(color.RGBA))
}

// RGBA copies the bitmap into a new *image.RGBA.
func (p *PackedImage) RGBA() *image.RGBA {
	img := image.NewRGBA(p.Bounds())
	FillRGBA(img.Pix, p.Pix[:p.W*p.H])
	return img
}
