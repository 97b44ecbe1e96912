// Package present displays finished plasma frames on concrete surfaces.
package present

import (
	"image"
	"image/draw"

	"plasma/internal/core"
	"plasma/internal/render"
)

// Presenter displays frames on a surface of a fixed or changing size.
type Presenter interface {
	// Surface reports the current drawable size in pixels.
	Surface() core.Size
	// Present displays f, which stays valid only for the duration of the call.
	Present(f render.Frame) error
	Close() error
}

// canvas keeps one RGBA image sized to the surface and composes frames into it.
type canvas struct {
	img *image.RGBA
}

func (c *canvas) compose(surface core.Size, f render.Frame) *image.RGBA {
	if c.img == nil || c.img.Bounds().Dx() != surface.W || c.img.Bounds().Dy() != surface.H {
		c.img = image.NewRGBA(image.Rect(0, 0, surface.W, surface.H))
	}
	draw.Draw(c.img, c.img.Bounds(), image.Black, image.Point{}, draw.Src)
	render.Compose(c.img, f)
	return c.img
}
