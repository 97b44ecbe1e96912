// Command plasma-cli renders the plasma animation without a window system:
// into the terminal, onto a Linux framebuffer or into a directory of PNGs.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"plasma/internal/app"
	"plasma/internal/core"
	"plasma/internal/plasma"
	"plasma/internal/present"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := run(cfg); err != nil {
		log.Fatal(err)
	}
}

func run(cfg *app.Config) error {
	pc, err := cfg.Plasma()
	if err != nil {
		return err
	}
	face, err := cfg.Face()
	if err != nil {
		return fmt.Errorf("load font: %w", err)
	}

	out, err := openPresenter(cfg)
	if err != nil {
		return err
	}
	defer out.Close()

	opts := []plasma.Option{plasma.WithOverlay(plasma.NewOverlay(face))}
	if cfg.Output == "term" {
		// log lines would tear the terminal picture
		opts = append(opts, plasma.WithLogger(nil))
	}
	session, err := plasma.NewSession(pc.ForSurface(out.Surface()), opts...)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	keys := make(chan keyPress, 16)
	if term, ok := out.(*present.Terminal); ok {
		go pollKeys(ctx, term.Screen(), keys)
	}

	presented := 0
	err = core.NewTicker(cfg.RefreshHz).Run(ctx, func(now int64) error {
		for drained := false; !drained; {
			select {
			case k := <-keys:
				if applyKey(session, k) {
					cancel()
					return nil
				}
			default:
				drained = true
			}
		}
		if !session.Tick(now) {
			return nil
		}
		if err := out.Present(session.Frame(out.Surface())); err != nil {
			return err
		}
		presented++
		if cfg.Frames > 0 && presented >= cfg.Frames {
			cancel()
		}
		return nil
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func openPresenter(cfg *app.Config) (present.Presenter, error) {
	switch cfg.Output {
	case "term":
		return present.NewTerminal()
	case "fb":
		return present.NewFramebuffer(cfg.Device)
	case "png":
		return present.NewPNG(cfg.Dir, core.Size{W: cfg.SurfaceW, H: cfg.SurfaceH})
	default:
		return nil, fmt.Errorf("unknown output %q (want term, fb or png)", cfg.Output)
	}
}

type keyPress struct {
	key tcell.Key
	ch  rune
}

func pollKeys(ctx context.Context, screen tcell.Screen, keys chan<- keyPress) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			select {
			case keys <- keyPress{key: ev.Key(), ch: ev.Rune()}:
			case <-ctx.Done():
				return
			}
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}

// applyKey handles one key press and reports whether the user asked to quit.
func applyKey(s *plasma.Session, k keyPress) bool {
	switch k.key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
	default:
		return false
	}
	cfg := s.Config()
	switch k.ch {
	case 'q', 'Q':
		return true
	case 'f', 'F':
		s.SetShowFPS(!cfg.ShowFPS)
	case 's', 'S':
		s.SetDoNotScale(!cfg.DoNotScale)
	case '+', '=':
		s.SetIntParameter("max_fps", cfg.MaxFPS+1)
	case '-':
		s.SetIntParameter("max_fps", cfg.MaxFPS-1)
	case 'r', 'R':
		s.Restart()
	}
	return false
}
