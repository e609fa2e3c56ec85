// Package game wires the window, input, scene, and navigation into the
// main loop.
package game

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/lucarv/mezzanine/internal/config"
	"github.com/lucarv/mezzanine/internal/engine/camera"
	"github.com/lucarv/mezzanine/internal/engine/input"
	"github.com/lucarv/mezzanine/internal/engine/renderer"
	"github.com/lucarv/mezzanine/internal/engine/window"
	"github.com/lucarv/mezzanine/internal/game/world"
	"github.com/lucarv/mezzanine/internal/logger"
	"github.com/lucarv/mezzanine/internal/scene"
)

// Game is the main application instance.
type Game struct {
	cfg      *config.Config
	running  bool
	redraw   bool
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	registry *scene.Registry
	nav      *world.Navigator
}

// New creates the game: loads the scene registry, opens the window and
// GL context, and sets up the navigator at the start position.
func New(cfg *config.Config) (*Game, error) {
	slog.Info("initializing game",
		"width", cfg.Graphics.Width,
		"height", cfg.Graphics.Height,
	)

	g := &Game{
		cfg:    cfg,
		redraw: true,
	}

	// Scene geometry loads before any GL state exists; a missing or
	// invalid mesh is fatal here, not at draw time.
	var err error
	g.registry, err = scene.Load(cfg.Scene)
	if err != nil {
		return nil, fmt.Errorf("loading scene: %w", err)
	}

	g.window, err = window.New(window.Config{
		Title:      "Mezzanine",
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("creating window: %w", err)
	}

	g.renderer, err = renderer.New(renderer.Config{
		Width:  cfg.Graphics.Width,
		Height: cfg.Graphics.Height,
		FOV:    cfg.Graphics.FOV,
	})
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("creating renderer: %w", err)
	}

	g.input = input.New()
	g.nav = world.NewNavigator(camera.New(), cfg.Input, logger.Log)

	slog.Info("game initialized")
	return g, nil
}

// Run starts the main loop. Events are processed strictly in delivery
// order; each navigation step commits before the next event is seen.
func (g *Game) Run() error {
	g.running = true

	slog.Info("starting main loop")

	for g.running {
		if g.input.Update() {
			g.running = false
			break
		}

		for _, ev := range g.input.Events() {
			switch ev.Type {
			case input.EventWindowResize:
				g.renderer.Resize(ev.Width, ev.Height)
				g.redraw = true

			case input.EventKeyDown:
				out := g.nav.Step(commandFor(ev.Key), input.KeyName(ev.Key))
				if out.Quit {
					// Quit takes effect immediately.
					g.running = false
					return nil
				}
				if out.Redraw {
					g.redraw = true
				}

			case input.EventMouseMove:
				if g.nav.Look(ev.MouseX) {
					g.window.WarpPointer(g.cfg.Input.WarpHomeX, g.cfg.Input.WarpHomeY)
				}
				g.redraw = true
			}
		}

		if g.redraw {
			g.renderer.Draw(g.registry, g.nav.Camera().View)
			g.window.SwapBuffers()
			g.redraw = false
		} else {
			// Nothing changed; don't spin the CPU.
			time.Sleep(5 * time.Millisecond)
		}
	}

	return nil
}

// Close cleans up game resources.
func (g *Game) Close() {
	slog.Info("closing game")
	if g.window != nil {
		g.window.Close()
	}
}
