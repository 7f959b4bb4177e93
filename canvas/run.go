package canvas

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/sketchbook"
)

// RunConfig describes the window Run opens.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	ShowFPS bool
	// TPS is the tick rate; 0 keeps ebiten's default of 60.
	TPS int
	// ScreenshotDir receives PNGs queued with Runner.Screenshot.
	// Defaults to "screenshots".
	ScreenshotDir string
	// ExitOnScriptDone quits once an attached script has finished.
	ExitOnScriptDone bool
}

// RunConfigFrom builds a RunConfig from the YAML config.
func RunConfigFrom(cfg *sketchbook.Config) RunConfig {
	return RunConfig{
		Title:         cfg.Window.Title,
		Width:         cfg.Window.Width,
		Height:        cfg.Window.Height,
		ShowFPS:       cfg.Window.ShowFPS,
		TPS:           cfg.Window.TPS,
		ScreenshotDir: cfg.ScreenshotDir,
	}
}

// Game adapts a sketchbook.Runner to ebiten.Game. One Update is one tick.
type Game struct {
	runner *sketchbook.Runner
	canvas *Canvas
	poller pointerPoller
	fps    *fpsWidget
	script *sketchbook.ScriptRunner
	cfg    RunConfig
}

var _ ebiten.Game = (*Game)(nil)

// NewGame creates a game whose canvas starts at the configured size.
func NewGame(runner *sketchbook.Runner, cfg RunConfig) *Game {
	if cfg.ScreenshotDir == "" {
		cfg.ScreenshotDir = "screenshots"
	}
	g := &Game{
		runner: runner,
		canvas: New(max(cfg.Width, 1), max(cfg.Height, 1)),
		cfg:    cfg,
	}
	if cfg.ShowFPS {
		g.fps = newFPSWidget()
	}
	g.runner.SetViewport(g.canvas.Size())
	return g
}

// WatchScript lets ExitOnScriptDone stop the game when sr finishes.
func (g *Game) WatchScript(sr *sketchbook.ScriptRunner) {
	g.script = sr
}

// Update polls input, runs one tick, and renders it onto the layer, so
// accumulating sketches get exactly one draw per tick regardless of the
// display refresh rate.
func (g *Game) Update() error {
	g.runner.SetViewport(g.canvas.Size())
	g.runner.Step(g.poller.poll())

	g.canvas.BeginFrame()
	g.runner.Draw(g.canvas)
	flushScreenshots(g.canvas.Layer(), g.cfg.ScreenshotDir, g.runner.TakeScreenshots())

	if g.fps != nil {
		g.fps.update()
	}
	if g.cfg.ExitOnScriptDone && g.script != nil && g.script.Done() && g.runner.PendingInput() == 0 {
		return ebiten.Termination
	}
	return nil
}

// Draw presents the layer rendered by the last Update.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.canvas.Layer(), nil)
	if g.fps != nil {
		g.fps.draw(screen)
	}
}

// Layout resizes the canvas to follow the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := max(outsideWidth, 1), max(outsideHeight, 1)
	g.canvas.Resize(w, h)
	return w, h
}

// Run opens a resizable window and blocks until it is closed.
func Run(runner *sketchbook.Runner, cfg RunConfig) error {
	g := NewGame(runner, cfg)
	return RunGame(g)
}

// RunGame runs an already configured Game.
func RunGame(g *Game) error {
	cfg := g.cfg
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run %q: %w", cfg.Title, err)
	}
	return nil
}
