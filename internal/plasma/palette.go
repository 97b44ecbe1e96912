package plasma

import (
	"image/color"
	"slices"

	"plasma/internal/render"
)

const (
	// PaletteSize is the number of gradient entries, one per combined height.
	PaletteSize = 256
	// PaletteStops is the number of input colors a palette is built from.
	PaletteStops = 5

	bandWidth = PaletteSize / (PaletteStops - 1)
)

// Palette is the gradient lookup table indexed by combined height.
type Palette struct {
	Colors [PaletteSize]color.RGBA
	Packed [PaletteSize]uint32

	stops []color.RGBA
}

// BuildPalette interpolates four 64-entry bands between five colors. Only the
// red, green and blue channels are interpolated; every entry is opaque. The
// fallback color seeds the table before the bands overwrite it.
func BuildPalette(colors []color.RGBA, fallback color.RGBA) (*Palette, error) {
	if len(colors) != PaletteStops {
		return nil, configErrorf("colors", "need exactly %d colors, got %d", PaletteStops, len(colors))
	}
	p := &Palette{stops: slices.Clone(colors)}
	for i := range p.Colors {
		p.Colors[i] = fallback
	}
	for band := 0; band < PaletteStops-1; band++ {
		start := band * bandWidth
		for i := start; i < start+bandWidth; i++ {
			factor := float32(i-start) / bandWidth
			p.Colors[i] = interpolate(colors[band], colors[band+1], factor)
		}
	}
	for i, c := range p.Colors {
		p.Packed[i] = render.Pack(c)
	}
	return p, nil
}

// Stops returns a copy of the colors the palette was built from.
func (p *Palette) Stops() []color.RGBA { return slices.Clone(p.stops) }

// Matches reports whether the palette was built from colors.
func (p *Palette) Matches(colors []color.RGBA) bool {
	return p != nil && slices.Equal(p.stops, colors)
}

func interpolate(c1, c2 color.RGBA, f float32) color.RGBA {
	return color.RGBA{
		R: lerpChannel(c1.R, c2.R, f),
		G: lerpChannel(c1.G, c2.G, f),
		B: lerpChannel(c1.B, c2.B, f),
		A: 0xff,
	}
}

func lerpChannel(a, b uint8, f float32) uint8 {
	fa := float32(a) / 255
	fb := float32(b) / 255
	return uint8(clamp01(fa+(fb-fa)*f)*255 + 0.5)
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
