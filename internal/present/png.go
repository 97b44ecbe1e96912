package present

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"plasma/internal/core"
	"plasma/internal/render"
)

// PNG writes every presented frame to a numbered file in a directory.
type PNG struct {
	dir     string
	surface core.Size
	canvas  canvas
	written int
}

// NewPNG creates dir if needed and presents onto a surface of the given size.
func NewPNG(dir string, surface core.Size) (*PNG, error) {
	if surface.Empty() {
		return nil, fmt.Errorf("png surface %dx%d must be positive", surface.W, surface.H)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	return &PNG{dir: dir, surface: surface}, nil
}

// Surface implements Presenter.
func (p *PNG) Surface() core.Size { return p.surface }

// Present implements Presenter.
func (p *PNG) Present(f render.Frame) error {
	img := p.canvas.compose(p.surface, f)
	path := filepath.Join(p.dir, fmt.Sprintf("frame_%05d.png", p.written))
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(out, img); err != nil {
		out.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	p.written++
	return nil
}

// Written reports how many frames were saved.
func (p *PNG) Written() int { return p.written }

// Close implements Presenter.
func (p *PNG) Close() error { return nil }
