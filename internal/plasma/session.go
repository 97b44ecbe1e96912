package plasma

import (
	"image/color"
	"io"
	"log"
	"time"

	"plasma/internal/core"
	"plasma/internal/render"
)

// Logger is the subset of *log.Logger a session writes to.
type Logger interface {
	Printf(format string, args ...any)
}

// Option customizes a Session.
type Option func(*Session)

// WithLogger routes session logging to l.
func WithLogger(l Logger) Option {
	return func(s *Session) { s.log = l }
}

// WithMapCache makes the session take its height maps from c.
func WithMapCache(c *MapCache) Option {
	return func(s *Session) { s.cache = c }
}

// WithHeightMaps supplies prebuilt height maps.
func WithHeightMaps(m *HeightMaps) Option {
	return func(s *Session) { s.maps = m }
}

// WithOverlay replaces the default frame rate overlay.
func WithOverlay(o *Overlay) Option {
	return func(s *Session) { s.overlay = o }
}

// Session owns everything one animated surface needs: the shared read-only
// maps and palette, its own frame clock and its own pixel buffer. A session is
// driven from a single goroutine.
type Session struct {
	cfg     Config
	log     Logger
	cache   *MapCache
	maps    *HeightMaps
	palette *Palette
	clock   *core.FrameClock
	overlay *Overlay

	pixels  []uint32
	debug   uint32
	offsets Offsets
	frames  uint64
}

// NewSession validates cfg and prepares the maps, palette and pixel buffer.
func NewSession(cfg Config, opts ...Option) (*Session, error) {
	cfg = cfg.Clone()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Session{cfg: cfg, log: log.Default()}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = log.New(io.Discard, "", 0)
	}
	if s.overlay == nil {
		s.overlay = NewOverlay(nil)
	}

	clock, err := core.NewFrameClock(cfg.MaxFPS)
	if err != nil {
		return nil, &ConfigError{Field: "max_fps", Reason: "rejected by frame clock", Err: err}
	}
	s.clock = clock

	s.palette, err = BuildPalette(cfg.Colors, cfg.DebugColor)
	if err != nil {
		return nil, err
	}
	s.debug = render.Pack(cfg.DebugColor)

	switch {
	case s.maps != nil:
		if !s.maps.Empty() && s.maps.Size != cfg.MapSize {
			return nil, configErrorf("map_size", "height maps are %d wide, config wants %d", s.maps.Size, cfg.MapSize)
		}
	case s.cache != nil:
		s.maps = s.cache.Get(cfg.MapSize)
	default:
		start := time.Now()
		s.maps = Generate(cfg.MapSize)
		s.log.Printf("plasma: generated %dx%d height maps in %v", cfg.MapSize, cfg.MapSize, time.Since(start).Round(time.Millisecond))
	}
	if s.maps.Empty() {
		s.log.Printf("plasma: height maps unavailable, frames fall back to debug color %s", FormatColor(cfg.DebugColor))
	}

	s.pixels = make([]uint32, cfg.Raster().Area())
	s.log.Printf("plasma: draw %dx%d with maximum of %d FPS", cfg.RenderWidth, cfg.RenderHeight, cfg.MaxFPS)
	return s, nil
}

// Tick offers a timestamp to the frame clock and renders a new frame when it
// is accepted.
func (s *Session) Tick(nowMillis int64) bool {
	if !s.clock.Tick(nowMillis) {
		return false
	}
	s.Render(nowMillis)
	return true
}

// Render rasterizes the frame for nowMillis regardless of the frame clock.
func (s *Session) Render(nowMillis int64) {
	s.offsets = ComputeOffsets(nowMillis, s.cfg.MapSize)
	RenderFrame(s.pixels, s.maps, s.palette, s.offsets, s.cfg.Raster(), s.cfg.Workers, s.debug)
	if s.cfg.ShowFPS {
		if img := s.bitmap(); img != nil {
			s.overlay.DrawFPS(img, s.clock.ObservedFPS())
		}
	}
	s.frames++
}

func (s *Session) bitmap() *render.PackedImage {
	b := s.cfg.Raster().Transposed()
	return render.NewPackedImage(s.pixels, b.W, b.H)
}

// Frame describes the current pixel buffer for presentation on a surface.
// The buffer is reused by later frames.
func (s *Session) Frame(surface core.Size) render.Frame {
	raster := s.cfg.Raster()
	return render.Frame{
		Pixels: s.pixels,
		Bitmap: raster.Transposed(),
		Src:    raster,
		Dst:    render.DestinationSize(surface, raster, s.cfg.DoNotScale),
	}
}

// SetColors rebuilds the palette when colors differ from the current ones.
func (s *Session) SetColors(colors []color.RGBA) error {
	if s.palette.Matches(colors) {
		return nil
	}
	p, err := BuildPalette(colors, s.cfg.DebugColor)
	if err != nil {
		return err
	}
	s.palette = p
	s.cfg.Colors = p.Stops()
	s.log.Printf("plasma: palette rebuilt from %d colors", len(colors))
	return nil
}

// SetMaxFPS changes the frame rate limit.
func (s *Session) SetMaxFPS(fps int) error {
	if err := s.clock.SetMaxFPS(fps); err != nil {
		return &ConfigError{Field: "max_fps", Reason: "rejected by frame clock", Err: err}
	}
	s.cfg.MaxFPS = fps
	s.log.Printf("plasma: draw with maximum of %d FPS", fps)
	return nil
}

// SetShowFPS toggles the frame rate overlay.
func (s *Session) SetShowFPS(show bool) { s.cfg.ShowFPS = show }

// SetDoNotScale toggles 1:1 presentation.
func (s *Session) SetDoNotScale(v bool) { s.cfg.DoNotScale = v }

// Restart forgets frame timing, as when a surface is reattached. The maps and
// palette are kept.
func (s *Session) Restart() {
	s.clock.Reset()
	s.frames = 0
}

// Config returns a copy of the session configuration.
func (s *Session) Config() Config { return s.cfg.Clone() }

// Pixels exposes the pixel buffer. It is overwritten by every frame.
func (s *Session) Pixels() []uint32 { return s.pixels }

// Offsets returns the scroll offsets of the last rendered frame.
func (s *Session) Offsets() Offsets { return s.offsets }

// Maps returns the session's height maps.
func (s *Session) Maps() *HeightMaps { return s.maps }

// Palette returns the current palette.
func (s *Session) Palette() *Palette { return s.palette }

// ObservedFPS returns the frame rate measured over the last second.
func (s *Session) ObservedFPS() int { return s.clock.ObservedFPS() }

// Frames returns how many frames were rendered.
func (s *Session) Frames() uint64 { return s.frames }
