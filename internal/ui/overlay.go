//go:build ebiten

package ui

import (
	"plasma/internal/core"
	"plasma/internal/plasma"
	"plasma/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// HeightSource exposes the height maps behind a session.
type HeightSource interface {
	Maps() *plasma.HeightMaps
}

// Overlay draws the ripple or chaos height map over the plasma as a grayscale
// debug view. Key 1 toggles the ripple map, key 2 the chaos map.
type Overlay struct {
	src        HeightSource
	showRipple bool
	showChaos  bool

	ripple *ebiten.Image
	chaos  *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(src HeightSource) *Overlay {
	return &Overlay{src: src}
}

// Update handles the toggle keys.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showRipple = !o.showRipple
		o.showChaos = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showChaos = !o.showChaos
		o.showRipple = false
	}
}

// Draw renders the active height view scaled to surface.
func (o *Overlay) Draw(screen *ebiten.Image, surface core.Size) {
	maps := o.src.Maps()
	if maps.Empty() || surface.Empty() {
		return
	}
	var img *ebiten.Image
	switch {
	case o.showRipple:
		if o.ripple == nil {
			o.ripple = heightImage(maps.Ripple, plasma.RippleMax)
		}
		img = o.ripple
	case o.showChaos:
		if o.chaos == nil {
			o.chaos = heightImage(maps.Chaos, plasma.ChaosMax)
		}
		img = o.chaos
	default:
		return
	}
	side := float64(maps.Size)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(surface.W)/side, float64(surface.H)/side)
	screen.DrawImage(img, op)
}

// heightImage uploads a grid once. Grid rows are x, so the image is drawn
// with rows as columns.
func heightImage(g *core.Grid, max float64) *ebiten.Image {
	buf := make([]byte, 4*g.Len())
	render.FillHeightRGBA(buf, g.Cells(), max)
	img := ebiten.NewImage(g.Side, g.Side)
	img.ReplacePixels(buf)
	return img
}
