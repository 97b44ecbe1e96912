package plasma

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"log"
	"slices"
	"strings"
	"testing"

	"plasma/internal/core"
	"plasma/internal/render"
)

var quiet = log.New(io.Discard, "", 0)

type recordLogger struct{ lines []string }

func (r *recordLogger) Printf(format string, args ...any) {
	r.lines = append(r.lines, fmt.Sprintf(format, args...))
}

func testConfig(w, h int) Config {
	cfg := DefaultConfig()
	cfg.RenderWidth = w
	cfg.RenderHeight = h
	return cfg
}

func newTestSession(t *testing.T, cfg Config, opts ...Option) *Session {
	t.Helper()
	opts = append([]Option{WithLogger(quiet), WithHeightMaps(testMaps())}, opts...)
	s, err := NewSession(cfg, opts...)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	return s
}

func TestSessionEndToEnd(t *testing.T) {
	cfg := testConfig(64, 64)
	cfg.MaxFPS = 20
	cfg.DoNotScale = true
	s := newTestSession(t, cfg)

	var frames [][]uint32
	for _, now := range []int64{0, 50, 100} {
		if !s.Tick(now) {
			t.Fatalf("tick at %d rejected", now)
		}
		off := ComputeOffsets(now, DefaultMapSize)
		if s.Offsets() != off {
			t.Fatalf("t=%d: offsets %+v, want %+v", now, s.Offsets(), off)
		}
		want := referenceFrame(s.Maps(), s.Palette(), off, cfg.Raster())
		if !slices.Equal(s.Pixels(), want) {
			t.Fatalf("t=%d: frame differs from the per-pixel formula", now)
		}
		f := s.Frame(core.Size{W: 1080, H: 1920})
		if len(f.Pixels) != 64*64 || f.Dst != (core.Size{W: 64, H: 64}) {
			t.Fatalf("t=%d: unexpected frame %d pixels dst %v", now, len(f.Pixels), f.Dst)
		}
		frames = append(frames, slices.Clone(s.Pixels()))
	}
	if slices.Equal(frames[0], frames[1]) || slices.Equal(frames[1], frames[2]) {
		t.Fatal("consecutive frames should differ as the maps scroll")
	}
	if s.Frames() != 3 {
		t.Fatalf("expected 3 rendered frames, got %d", s.Frames())
	}
}

func TestSessionSkipsEarlyTicks(t *testing.T) {
	s := newTestSession(t, testConfig(16, 16))
	s.Tick(0)
	before := slices.Clone(s.Pixels())
	if s.Tick(10) {
		t.Fatal("tick 10ms after an accepted frame must be dropped at 20 fps")
	}
	if !slices.Equal(before, s.Pixels()) || s.Frames() != 1 {
		t.Fatal("dropped tick must not touch the pixel buffer")
	}
}

func TestSessionFrameLayout(t *testing.T) {
	s := newTestSession(t, testConfig(80, 40))
	s.Tick(0)
	f := s.Frame(core.Size{W: 300, H: 200})
	if f.Bitmap != (core.Size{W: 40, H: 80}) {
		t.Fatalf("bitmap %v, want 40x80", f.Bitmap)
	}
	if f.Src != (core.Size{W: 80, H: 40}) {
		t.Fatalf("src %v, want 80x40", f.Src)
	}
	if f.Dst != (core.Size{W: 300, H: 400}) {
		t.Fatalf("dst %v, want 300x400", f.Dst)
	}
	if len(f.Pixels) != 3200 {
		t.Fatalf("expected 3200 pixels, got %d", len(f.Pixels))
	}
}

func TestNewSessionRejectsBadConfig(t *testing.T) {
	cases := map[string]func(*Config){
		"four colors":   func(c *Config) { c.Colors = c.Colors[:4] },
		"six colors":    func(c *Config) { c.Colors = append(c.Colors, color.RGBA{A: 255}) },
		"zero fps":      func(c *Config) { c.MaxFPS = 0 },
		"negative fps":  func(c *Config) { c.MaxFPS = -1 },
		"wide raster":   func(c *Config) { c.RenderWidth = DefaultMapSize/2 + 1 },
		"tall raster":   func(c *Config) { c.RenderHeight = DefaultMapSize },
		"empty raster":  func(c *Config) { c.RenderWidth = 0 },
		"zero map size": func(c *Config) { c.MapSize = 0 },
	}
	for name, mutate := range cases {
		cfg := testConfig(32, 32)
		mutate(&cfg)
		if _, err := NewSession(cfg, WithLogger(quiet)); !errors.Is(err, ErrConfig) {
			t.Fatalf("%s: err = %v, want ErrConfig", name, err)
		}
	}
}

func TestNewSessionRejectsMismatchedMaps(t *testing.T) {
	cfg := testConfig(16, 16)
	cfg.MapSize = 64
	_, err := NewSession(cfg, WithLogger(quiet), WithHeightMaps(testMaps()))
	if !errors.Is(err, ErrConfig) {
		t.Fatalf("err = %v, want ErrConfig", err)
	}
}

func TestSessionEmptyMapsFillDebugColor(t *testing.T) {
	logger := &recordLogger{}
	s, err := NewSession(testConfig(8, 8), WithLogger(logger), WithHeightMaps(&HeightMaps{}))
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	s.Tick(0)
	want := render.Pack(DefaultDebugColor)
	for i, v := range s.Pixels() {
		if v != want {
			t.Fatalf("pixel %d = %#08x, want debug color", i, v)
		}
	}
	if !slices.ContainsFunc(logger.lines, func(l string) bool { return strings.Contains(l, "debug color") }) {
		t.Fatalf("expected a log line about the debug color, got %q", logger.lines)
	}
}

func TestSessionSetColorsCachesPalette(t *testing.T) {
	s := newTestSession(t, testConfig(16, 16))
	p := s.Palette()
	if err := s.SetColors(DefaultColors()); err != nil {
		t.Fatalf("SetColors: %v", err)
	}
	if s.Palette() != p {
		t.Fatal("identical colors must not rebuild the palette")
	}

	ocean, _ := PresetColors("ocean", 0)
	if err := s.SetColors(ocean); err != nil {
		t.Fatalf("SetColors: %v", err)
	}
	if s.Palette() == p || s.Palette().Colors[0] != ocean[0] {
		t.Fatal("new colors must rebuild the palette")
	}
	if !slices.Equal(s.Config().Colors, ocean) {
		t.Fatal("config must track the active colors")
	}

	current := s.Palette()
	if err := s.SetColors(ocean[:3]); !errors.Is(err, ErrConfig) {
		t.Fatalf("SetColors with 3 colors: err = %v", err)
	}
	if s.Palette() != current {
		t.Fatal("rejected colors must keep the previous palette")
	}
}

func TestSessionFPSOverlay(t *testing.T) {
	plain := newTestSession(t, testConfig(128, 128))
	cfg := testConfig(128, 128)
	cfg.ShowFPS = true
	withFPS := newTestSession(t, cfg)

	plain.Tick(0)
	withFPS.Tick(0)
	diff := 0
	for i := range plain.Pixels() {
		if plain.Pixels()[i] != withFPS.Pixels()[i] {
			diff++
			if withFPS.Pixels()[i] != 0xffffffff {
				t.Fatalf("overlay pixel %d = %#08x, want white", i, withFPS.Pixels()[i])
			}
		}
	}
	if diff == 0 {
		t.Fatal("FPS overlay did not change any pixel")
	}

	withFPS.SetShowFPS(false)
	withFPS.Tick(50)
	plain.Tick(50)
	if !slices.Equal(plain.Pixels(), withFPS.Pixels()) {
		t.Fatal("disabling the overlay must restore the plain frame")
	}
}

func TestSessionSharesCachedMaps(t *testing.T) {
	cache := NewMapCache()
	cfg := testConfig(8, 8)
	cfg.MapSize = 32
	a, err := NewSession(cfg, WithLogger(quiet), WithMapCache(cache))
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	b, err := NewSession(cfg, WithLogger(quiet), WithMapCache(cache))
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	if a.Maps() != b.Maps() || cache.Len() != 1 {
		t.Fatal("sessions with one cache must share height maps")
	}
	a.Tick(0)
	b.Tick(0)
	if !slices.Equal(a.Pixels(), b.Pixels()) {
		t.Fatal("identical sessions must render identical frames")
	}
	if &a.Pixels()[0] == &b.Pixels()[0] {
		t.Fatal("sessions must own separate pixel buffers")
	}
}

func TestSessionParameters(t *testing.T) {
	s := newTestSession(t, testConfig(16, 16))
	if s.SetIntParameter("max_fps", 0) || s.SetIntParameter("max_fps", 61) {
		t.Fatal("out-of-range fps must be rejected")
	}
	if !s.SetIntParameter("max_fps", 30) || s.Config().MaxFPS != 30 {
		t.Fatal("expected max fps 30 to be accepted")
	}
	if s.SetIntParameter("unknown", 1) {
		t.Fatal("unknown keys must be rejected")
	}
	if !s.SetBoolParameter("show_fps", true) || !s.Config().ShowFPS {
		t.Fatal("expected show_fps toggle")
	}
	if !s.SetBoolParameter("no_scale", true) || !s.Config().DoNotScale {
		t.Fatal("expected no_scale toggle")
	}

	snap := s.Parameters()
	if p, ok := snap.Lookup("max_fps"); !ok || p.Value != "30" {
		t.Fatalf("snapshot max_fps = %+v", p)
	}
	if p, ok := snap.Lookup("raster"); !ok || p.Value != "16x16" {
		t.Fatalf("snapshot raster = %+v", p)
	}
	if len(s.ParameterControls()) == 0 {
		t.Fatal("expected HUD controls")
	}
	if err := s.SetMaxFPS(-3); !errors.Is(err, ErrConfig) {
		t.Fatalf("SetMaxFPS(-3) err = %v", err)
	}
}

func TestSessionRestart(t *testing.T) {
	s := newTestSession(t, testConfig(16, 16))
	s.Tick(1000)
	s.Restart()
	if !s.Tick(5) {
		t.Fatal("first tick after Restart must be accepted")
	}
	if s.Frames() != 1 {
		t.Fatalf("expected frame count to restart, got %d", s.Frames())
	}
}
