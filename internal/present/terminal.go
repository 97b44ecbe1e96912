package present

import (
	"fmt"

	"plasma/internal/core"
	"plasma/internal/render"

	"github.com/gdamore/tcell/v2"
)

// upperHalf draws the top pixel as foreground and the bottom pixel as
// background, so each cell holds two vertically stacked pixels.
const upperHalf = '▀'

// Terminal presents frames on a tcell screen. The surface is one pixel per
// column and one per row; the frame's doubled destination height lands on the
// two half-blocks of each cell.
type Terminal struct {
	screen tcell.Screen
	canvas canvas
}

// NewTerminal initializes the terminal screen.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("open terminal: %w", err)
	}
	return NewTerminalWithScreen(screen)
}

// NewTerminalWithScreen wraps an uninitialized screen.
func NewTerminalWithScreen(screen tcell.Screen) (*Terminal, error) {
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init terminal: %w", err)
	}
	screen.HideCursor()
	screen.Clear()
	return &Terminal{screen: screen}, nil
}

// Screen exposes the underlying screen for event polling.
func (t *Terminal) Screen() tcell.Screen { return t.screen }

// Surface implements Presenter.
func (t *Terminal) Surface() core.Size {
	w, h := t.screen.Size()
	return core.Size{W: w, H: h}
}

// Present implements Presenter.
func (t *Terminal) Present(f render.Frame) error {
	cells := t.Surface()
	img := t.canvas.compose(core.Size{W: cells.W, H: cells.H * 2}, f)
	for row := 0; row < cells.H; row++ {
		for col := 0; col < cells.W; col++ {
			top := img.RGBAAt(col, row*2)
			bottom := img.RGBAAt(col, row*2+1)
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
				Background(tcell.NewRGBColor(int32(bottom.R), int32(bottom.G), int32(bottom.B)))
			t.screen.SetContent(col, row, upperHalf, nil, style)
		}
	}
	t.screen.Show()
	return nil
}

// Close restores the terminal.
func (t *Terminal) Close() error {
	t.screen.Fini()
	return nil
}
