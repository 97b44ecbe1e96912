//go:build linux

package present

import (
	"fmt"
	"image/color"

	"plasma/internal/core"
	"plasma/internal/render"

	fb "github.com/gonutz/framebuffer"
)

// Framebuffer presents frames on a Linux framebuffer device such as /dev/fb0.
type Framebuffer struct {
	dev    *fb.Device
	canvas canvas
}

// NewFramebuffer opens the framebuffer device at path.
func NewFramebuffer(path string) (*Framebuffer, error) {
	dev, err := fb.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open framebuffer %s: %w", path, err)
	}
	return &Framebuffer{dev: dev}, nil
}

// Surface implements Presenter.
func (f *Framebuffer) Surface() core.Size {
	b := f.dev.Bounds()
	return core.Size{W: b.Dx(), H: b.Dy()}
}

// Present implements Presenter.
func (f *Framebuffer) Present(frame render.Frame) error {
	surface := f.Surface()
	img := f.canvas.compose(surface, frame)
	bounds := f.dev.Bounds()
	for y := 0; y < surface.H; y++ {
		for x := 0; x < surface.W; x++ {
			p := img.RGBAAt(x, y)
			f.dev.Set(bounds.Min.X+x, bounds.Min.Y+y, color.RGBA{R: p.R, G: p.G, B: p.B, A: 0xff})
		}
	}
	return nil
}

// Close releases the device.
func (f *Framebuffer) Close() error {
	f.dev.Close()
	return nil
}
