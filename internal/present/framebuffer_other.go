//go:build !linux

package present

import (
	"errors"

	"plasma/internal/core"
	"plasma/internal/render"
)

// Framebuffer is unavailable outside Linux.
type Framebuffer struct{}

// NewFramebuffer always fails on this platform.
func NewFramebuffer(string) (*Framebuffer, error) {
	return nil, errors.New("framebuffer output requires linux")
}

// Surface implements Presenter.
func (f *Framebuffer) Surface() core.Size { return core.Size{} }

// Present implements Presenter.
func (f *Framebuffer) Present(render.Frame) error { return errors.New("framebuffer output requires linux") }

// Close implements Presenter.
func (f *Framebuffer) Close() error { return nil }
