package plasma

import (
	"fmt"
	"image/color"
	"slices"
	"strconv"
	"strings"

	"plasma/internal/core"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// DefaultMaxFPS is the frame rate limit used when none is configured.
const DefaultMaxFPS = 20

// Config controls a plasma session.
type Config struct {
	// RenderWidth and RenderHeight are the logical raster size. Zero means
	// "use the surface size", see ForSurface.
	RenderWidth  int
	RenderHeight int
	MapSize      int

	Colors []color.RGBA
	MaxFPS int

	ShowFPS    bool
	DoNotScale bool
	// DebugColor seeds the palette and fills the frame when the height maps
	// could not be built.
	DebugColor color.RGBA

	// Workers bounds compositor parallelism; zero means GOMAXPROCS.
	Workers int
}

// DefaultColors returns the stock five-color gradient.
func DefaultColors() []color.RGBA {
	return []color.RGBA{
		{R: 0x22, G: 0x7c, B: 0x9d, A: 0xff},
		{R: 0x17, G: 0xc3, B: 0xb2, A: 0xff},
		{R: 0xff, G: 0xcb, B: 0x77, A: 0xff},
		{R: 0xfe, G: 0xf9, B: 0xef, A: 0xff},
		{R: 0xfe, G: 0x6d, B: 0x73, A: 0xff},
	}
}

// DefaultDebugColor is translucent magenta.
var DefaultDebugColor = color.RGBA{R: 0xff, G: 0x00, B: 0xfb, A: 0x4d}

// DefaultConfig returns the standard configuration with an automatic raster.
func DefaultConfig() Config {
	return Config{
		MapSize:    DefaultMapSize,
		Colors:     DefaultColors(),
		MaxFPS:     DefaultMaxFPS,
		DebugColor: DefaultDebugColor,
	}
}

// Raster returns the configured raster size.
func (c Config) Raster() core.Size { return core.Size{W: c.RenderWidth, H: c.RenderHeight} }

// MaxRaster returns the largest raster side the map size supports.
func (c Config) MaxRaster() int { return c.MapSize / 2 }

// ForSurface fills unset raster dimensions from the surface size, clamped to
// what the height maps can cover.
func (c Config) ForSurface(surface core.Size) Config {
	limit := c.MaxRaster()
	if c.RenderWidth <= 0 {
		c.RenderWidth = min(surface.W, limit)
	}
	if c.RenderHeight <= 0 {
		c.RenderHeight = min(surface.H, limit)
	}
	return c
}

// Validate rejects configurations that cannot produce frames. Raster sides
// above MapSize/2 are rejected because scrolled map reads would leave the map.
func (c Config) Validate() error {
	if c.MapSize <= 0 {
		return configErrorf("map_size", "must be positive, got %d", c.MapSize)
	}
	if c.RenderWidth <= 0 || c.RenderHeight <= 0 {
		return configErrorf("raster", "must be positive, got %dx%d", c.RenderWidth, c.RenderHeight)
	}
	if limit := c.MaxRaster(); c.RenderWidth > limit || c.RenderHeight > limit {
		return configErrorf("raster", "%dx%d exceeds half the map size (%d)", c.RenderWidth, c.RenderHeight, limit)
	}
	if len(c.Colors) != PaletteStops {
		return configErrorf("colors", "need exactly %d colors, got %d", PaletteStops, len(c.Colors))
	}
	if c.MaxFPS <= 0 {
		return configErrorf("max_fps", "must be positive, got %d", c.MaxFPS)
	}
	if c.Workers < 0 {
		return configErrorf("workers", "must not be negative, got %d", c.Workers)
	}
	return nil
}

// Clone returns a copy that does not share the color slice.
func (c Config) Clone() Config {
	c.Colors = slices.Clone(c.Colors)
	return c
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) (Config, error) {
	return DefaultConfig().WithOverrides(cfg)
}

// WithOverrides applies key/value overrides on top of c. Unparsable numbers and
// booleans are ignored; unparsable colors are reported.
func (c Config) WithOverrides(cfg map[string]string) (Config, error) {
	c = c.Clone()
	if cfg == nil {
		return c, nil
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.RenderWidth = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.RenderHeight = parsed
		}
	}
	if v, ok := cfg["map_size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.MapSize = parsed
		}
	}
	if v, ok := cfg["max_fps"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.MaxFPS = parsed
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Workers = parsed
		}
	}
	if v, ok := cfg["show_fps"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.ShowFPS = parsed
		}
	}
	if v, ok := cfg["no_scale"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.DoNotScale = parsed
		}
	}
	if v, ok := cfg["colors"]; ok {
		colors, err := ParseColors(v)
		if err != nil {
			return c, err
		}
		c.Colors = colors
	}
	if v, ok := cfg["debug_color"]; ok {
		col, err := ParseColor(v)
		if err != nil {
			return c, &ConfigError{Field: "debug_color", Reason: "cannot parse " + strconv.Quote(v), Err: err}
		}
		c.DebugColor = col
	}
	return c, nil
}

// ParseColors parses a comma-separated list of hex colors.
func ParseColors(list string) ([]color.RGBA, error) {
	var out []color.RGBA
	for _, part := range strings.Split(list, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		col, err := ParseColor(part)
		if err != nil {
			return nil, &ConfigError{Field: "colors", Reason: "cannot parse " + strconv.Quote(part), Err: err}
		}
		out = append(out, col)
	}
	return out, nil
}

// ParseColor accepts #rgb, #rrggbb and #aarrggbb, with or without the leading
// hash. Colors without an alpha byte are opaque.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	alpha := uint8(0xff)
	if len(s) == 8 {
		a, err := strconv.ParseUint(s[:2], 16, 8)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("alpha %q: %w", s[:2], err)
		}
		alpha = uint8(a)
		s = s[2:]
	}
	c, err := colorful.Hex("#" + s)
	if err != nil {
		return color.RGBA{}, err
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: alpha}, nil
}

// FormatColor renders c as #rrggbb, or #aarrggbb when it is not opaque.
func FormatColor(c color.RGBA) string {
	hex := colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}.Hex()
	if c.A == 0xff {
		return hex
	}
	return fmt.Sprintf("#%02x%s", c.A, hex[1:])
}
