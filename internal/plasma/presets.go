package plasma

import (
	"image/color"
	"math"
	"slices"
	"sort"

	"plasma/internal/core"

	"github.com/crazy3lf/colorconv"
)

// PresetFactory produces a five-color gradient. Deterministic presets ignore
// the seed.
type PresetFactory func(seed int64) []color.RGBA

var presets = map[string]PresetFactory{}

// RegisterPreset adds a palette preset under the provided name.
func RegisterPreset(name string, f PresetFactory) {
	if name == "" || f == nil {
		return
	}
	presets[name] = f
}

// Presets exposes the registry of palette presets.
func Presets() map[string]PresetFactory {
	return presets
}

// PresetNames returns the registered preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PresetColors resolves a preset to its colors.
func PresetColors(name string, seed int64) ([]color.RGBA, error) {
	f, ok := presets[name]
	if !ok {
		return nil, configErrorf("palette", "unknown preset %q", name)
	}
	return f(seed), nil
}

// hsvColors builds opaque colors from hue/saturation/value triples.
func hsvColors(hsv [][3]float64) []color.RGBA {
	out := make([]color.RGBA, 0, len(hsv))
	for _, c := range hsv {
		r, g, b, err := colorconv.HSVToRGB(math.Mod(c[0], 360), c[1], c[2])
		if err != nil {
			r, g, b = 0, 0, 0
		}
		out = append(out, color.RGBA{R: r, G: g, B: b, A: 0xff})
	}
	return out
}

func rainbow(int64) []color.RGBA {
	hsv := make([][3]float64, PaletteStops)
	for i := range hsv {
		hsv[i] = [3]float64{float64(i) * 300 / (PaletteStops - 1), 0.85, 1}
	}
	return hsvColors(hsv)
}

// random picks a base hue and walks around the color wheel from it, keeping
// saturation and value high enough for a bright field.
func random(seed int64) []color.RGBA {
	rng := core.NewRNG(seed)
	hue := rng.Range(0, 360)
	hsv := make([][3]float64, PaletteStops)
	for i := range hsv {
		hsv[i] = [3]float64{hue, rng.Range(0.45, 0.9), rng.Range(0.7, 1)}
		hue += rng.Range(40, 110)
	}
	return hsvColors(hsv)
}

func staticPreset(colors []color.RGBA) PresetFactory {
	return func(int64) []color.RGBA { return slices.Clone(colors) }
}

func init() {
	RegisterPreset("default", func(int64) []color.RGBA { return DefaultColors() })
	RegisterPreset("ocean", staticPreset([]color.RGBA{
		{R: 0x03, G: 0x04, B: 0x5e, A: 0xff},
		{R: 0x02, G: 0x3e, B: 0x8a, A: 0xff},
		{R: 0x00, G: 0x77, B: 0xb6, A: 0xff},
		{R: 0x48, G: 0xca, B: 0xe4, A: 0xff},
		{R: 0xca, G: 0xf0, B: 0xf8, A: 0xff},
	}))
	RegisterPreset("ember", staticPreset([]color.RGBA{
		{R: 0x1a, G: 0x05, B: 0x05, A: 0xff},
		{R: 0x6a, G: 0x04, B: 0x0f, A: 0xff},
		{R: 0xd0, G: 0x00, B: 0x00, A: 0xff},
		{R: 0xff, G: 0x8c, B: 0x1a, A: 0xff},
		{R: 0xff, G: 0xe3, B: 0x8a, A: 0xff},
	}))
	RegisterPreset("rainbow", rainbow)
	RegisterPreset("random", random)
}
