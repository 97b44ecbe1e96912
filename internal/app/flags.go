package app

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"plasma/internal/plasma"

	"golang.org/x/image/font"
)

type kvList []string

func (l *kvList) String() string {
	return strings.Join(*l, ",")
}

func (l *kvList) Set(value string) error {
	*l = append(*l, value)
	return nil
}

// Config represents the command-line parameters for the application.
type Config struct {
	Width      int
	Height     int
	MapSize    int
	MaxFPS     int
	ShowFPS    bool
	NoScale    bool
	Colors     string
	Palette    string
	DebugColor string
	Seed       int64
	Workers    int

	Font     string
	FontSize float64

	RefreshHz int
	Output    string
	Device    string
	Dir       string
	Frames    int
	SurfaceW  int
	SurfaceH  int

	Set kvList
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		MapSize:    plasma.DefaultMapSize,
		MaxFPS:     plasma.DefaultMaxFPS,
		Palette:    "default",
		DebugColor: plasma.FormatColor(plasma.DefaultDebugColor),
		Seed:       42,
		FontSize:   48,
		RefreshHz:  60,
		Output:     "term",
		Device:     "/dev/fb0",
		Dir:        "frames",
		SurfaceW:   640,
		SurfaceH:   360,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "w", c.Width, "raster width in pixels (0 = surface width)")
	fs.IntVar(&c.Height, "h", c.Height, "raster height in pixels (0 = surface height)")
	fs.IntVar(&c.MapSize, "map-size", c.MapSize, "height map side length")
	fs.IntVar(&c.MaxFPS, "fps", c.MaxFPS, "maximum frames per second")
	fs.BoolVar(&c.ShowFPS, "show-fps", c.ShowFPS, "draw the observed frame rate")
	fs.BoolVar(&c.NoScale, "no-scale", c.NoScale, "present the raster 1:1 instead of scaling to the surface")
	fs.StringVar(&c.Colors, "colors", c.Colors, "five comma-separated hex colors (overrides -palette)")
	fs.StringVar(&c.Palette, "palette", c.Palette, "palette preset: "+strings.Join(plasma.PresetNames(), ", "))
	fs.StringVar(&c.DebugColor, "debug-color", c.DebugColor, "fallback color as #rrggbb or #aarrggbb")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random palette preset")
	fs.IntVar(&c.Workers, "workers", c.Workers, "compositor goroutines (0 = GOMAXPROCS)")
	fs.StringVar(&c.Font, "font", c.Font, "TrueType font for the FPS overlay")
	fs.Float64Var(&c.FontSize, "font-size", c.FontSize, "FPS overlay font size in points")
	fs.IntVar(&c.RefreshHz, "refresh", c.RefreshHz, "display refresh rate driving the frame clock")
	fs.StringVar(&c.Output, "output", c.Output, "output for plasma-cli: term, fb or png")
	fs.StringVar(&c.Device, "device", c.Device, "framebuffer device for -output fb")
	fs.StringVar(&c.Dir, "dir", c.Dir, "directory for -output png")
	fs.IntVar(&c.Frames, "frames", c.Frames, "stop after this many presented frames (0 = run until interrupted)")
	fs.IntVar(&c.SurfaceW, "surface-w", c.SurfaceW, "surface width for -output png")
	fs.IntVar(&c.SurfaceH, "surface-h", c.SurfaceH, "surface height for -output png")
	fs.Var(&c.Set, "set", "plasma override in key=value form (repeatable)")
}

// Overrides returns the -set values as a map.
func (c *Config) Overrides() (map[string]string, error) {
	out := make(map[string]string, len(c.Set))
	for _, kv := range c.Set {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("override %q is not key=value", kv)
		}
		out[strings.TrimSpace(key)] = strings.TrimSpace(value)
	}
	return out, nil
}

// Plasma builds the session configuration. The raster may still be automatic;
// resolve it with ForSurface before starting a session.
func (c *Config) Plasma() (plasma.Config, error) {
	cfg := plasma.DefaultConfig()
	cfg.RenderWidth = c.Width
	cfg.RenderHeight = c.Height
	cfg.MapSize = c.MapSize
	cfg.MaxFPS = c.MaxFPS
	cfg.ShowFPS = c.ShowFPS
	cfg.DoNotScale = c.NoScale
	cfg.Workers = c.Workers

	var err error
	if c.Colors != "" {
		cfg.Colors, err = plasma.ParseColors(c.Colors)
	} else {
		cfg.Colors, err = plasma.PresetColors(c.Palette, c.Seed)
	}
	if err != nil {
		return cfg, err
	}
	if c.DebugColor != "" {
		cfg.DebugColor, err = plasma.ParseColor(c.DebugColor)
		if err != nil {
			return cfg, &plasma.ConfigError{Field: "debug_color", Reason: "cannot parse " + strconv.Quote(c.DebugColor), Err: err}
		}
	}

	overrides, err := c.Overrides()
	if err != nil {
		return cfg, err
	}
	return cfg.WithOverrides(overrides)
}

// Face loads the overlay font, or returns nil for the built-in face.
func (c *Config) Face() (font.Face, error) {
	if c.Font == "" {
		return nil, nil
	}
	return plasma.LoadFace(c.Font, c.FontSize)
}
