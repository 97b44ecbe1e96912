package plasma

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Overlay draws the frame rate readout on top of a finished frame.
type Overlay struct {
	Face  font.Face
	Color color.Color
	// Dot is the baseline origin of the text in bitmap coordinates.
	Dot image.Point
}

// NewOverlay returns an overlay using face, or basicfont when face is nil.
func NewOverlay(face font.Face) *Overlay {
	if face == nil {
		face = basicfont.Face7x13
	}
	return &Overlay{Face: face, Color: color.White, Dot: image.Pt(20, 60)}
}

// LoadFace parses a TrueType font file for use as the overlay face.
func LoadFace(path string, size float64) (font.Face, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font: %w", err)
	}
	tt, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", path, err)
	}
	if size <= 0 {
		size = 48
	}
	return truetype.NewFace(tt, &truetype.Options{Size: size, DPI: 72, Hinting: font.HintingFull}), nil
}

// FPSLabel formats the readout text.
func FPSLabel(fps int) string { return fmt.Sprintf("%d FPS", fps) }

// DrawFPS writes the readout for fps into dst.
func (o *Overlay) DrawFPS(dst draw.Image, fps int) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(o.Color),
		Face: o.Face,
		Dot:  fixed.P(o.Dot.X, o.Dot.Y),
	}
	d.DrawString(FPSLabel(fps))
}
