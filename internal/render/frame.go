package render

import (
	"image"
	"image/draw"

	"plasma/internal/core"

	xdraw "golang.org/x/image/draw"
)

// Frame is one finished plasma buffer plus the sizes the presentation layer
// needs to display it.
type Frame struct {
	// Pixels holds Bitmap.W*Bitmap.H packed pixels in row-major order.
	Pixels []uint32
	// Bitmap is the pixel layout of Pixels. It is the raster size with width
	// and height swapped.
	Bitmap core.Size
	// Src is the logical raster size read from the bitmap.
	Src core.Size
	// Dst is the size the source region is scaled to on the surface.
	Dst core.Size
}

// DestinationSize returns the on-surface size for a raster. Unless noScale is
// set, the height is doubled as an aspect correction.
func DestinationSize(surface, raster core.Size, noScale bool) core.Size {
	if noScale {
		return raster
	}
	return core.Size{W: surface.W, H: surface.H * 2}
}

// Image wraps the frame pixels as a draw.Image.
func (f Frame) Image() *PackedImage {
	return NewPackedImage(f.Pixels, f.Bitmap.W, f.Bitmap.H)
}

// SourceRect returns the part of the bitmap that is presented.
func (f Frame) SourceRect() image.Rectangle {
	return image.Rect(0, 0, f.Src.W, f.Src.H).Intersect(image.Rect(0, 0, f.Bitmap.W, f.Bitmap.H))
}

// Compose scales the frame's source region into the top-left Dst rectangle of
// dst using nearest-neighbor sampling. Parts of Dst outside dst are clipped.
func Compose(dst draw.Image, f Frame) {
	img := f.Image()
	if img == nil || f.Dst.Empty() {
		return
	}
	src := f.SourceRect()
	if src.Empty() {
		return
	}
	target := image.Rect(0, 0, f.Dst.W, f.Dst.H).Add(dst.Bounds().Min)
	if src.Dx() == target.Dx() && src.Dy() == target.Dy() {
		draw.Draw(dst, target, img, src.Min, draw.Src)
		return
	}
	xdraw.NearestNeighbor.Scale(dst, target, img, src, xdraw.Src, nil)
}
