//go:build ebiten

package app

import (
	"time"

	"plasma/internal/core"
	"plasma/internal/plasma"
	"plasma/internal/render"
	"plasma/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a plasma session to the ebiten.Game interface.
type Game struct {
	session *plasma.Session
	painter *render.Painter
	hud     *ui.HUD
	overlay *ui.Overlay
	surface core.Size

	start     time.Time
	pausedAt  time.Time
	pausedFor time.Duration
	paused    bool
	showHUD   bool
}

// New constructs a Game for the provided session. A hudWidth of zero disables
// the parameter panel.
func New(session *plasma.Session, hudWidth int) *Game {
	cfg := session.Config()
	return &Game{
		session: session,
		painter: render.NewPainter(cfg.Raster().Transposed()),
		hud:     ui.NewHUD(session, hudWidth),
		overlay: ui.NewOverlay(session),
		start:   time.Now(),
	}
}

// elapsed is the animation time in milliseconds, excluding paused spans.
func (g *Game) elapsed(now time.Time) int64 {
	return (now.Sub(g.start) - g.pausedFor).Milliseconds()
}

func (g *Game) togglePause(now time.Time) {
	if g.paused {
		g.pausedFor += now.Sub(g.pausedAt)
	} else {
		g.pausedAt = now
	}
	g.paused = !g.paused
}

// Update handles input and advances the frame clock.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	now := time.Now()
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.togglePause(now)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.session.SetShowFPS(!g.session.Config().ShowFPS)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.showHUD = !g.showHUD
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		g.session.SetIntParameter("max_fps", g.session.Config().MaxFPS+1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		g.session.SetIntParameter("max_fps", g.session.Config().MaxFPS-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.session.Restart()
		g.start, g.pausedFor, g.paused = now, 0, false
	}

	g.overlay.Update()
	if g.showHUD {
		g.hud.Update(g.surface.W - g.hud.Width())
	}
	if !g.paused {
		g.session.Tick(g.elapsed(now))
	}
	return nil
}

// Draw presents the latest plasma frame. Frames the clock skipped show the
// previous pixels again.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.session.Frame(g.surface))
	g.overlay.Draw(screen, g.surface)
	if g.showHUD {
		g.hud.Draw(screen, g.surface.W-g.hud.Width())
	}
}

// Layout uses the window size as the surface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.surface = core.Size{W: outsideWidth, H: outsideHeight}
	return outsideWidth, outsideHeight
}
