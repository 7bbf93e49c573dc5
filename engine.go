package easygame

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Engine owns the frame clock and runs the cooperative frame loop. Each tick
// it clears the canvas back to the background, polls for closure, and invokes
// the caller's per-frame callback exactly once; the canvas buffer is presented
// to the window on the display's own cadence, so every presented frame shows
// the last completed callback's draws. The frame budget (1/fps of a second)
// is enforced by ebiten's tick scheduler.
//
// One Engine per process. All entity mutation is expected to happen inside
// the per-frame callback; nothing in the core runs concurrently.
type Engine struct {
	ctx    *Context
	title  string
	fps    int
	canvas *Canvas

	script *ScriptRunner

	// ScreenshotDir is where queued screenshots are written. Defaults to
	// "screenshots" relative to the working directory.
	ScreenshotDir   string
	screenshotQueue []string

	stats frameStats
}

// NewEngine creates the engine, sets the window title, and defaults the
// canvas to a standard white 600x600 one when canvas is nil. fps <= 0
// defaults to 60.
func NewEngine(ctx *Context, gameTitle string, fps int, canvas *Canvas) *Engine {
	if fps <= 0 {
		fps = DefaultFPS
	}
	if canvas == nil {
		canvas = NewCanvas(ctx, DefaultScreenSize, DefaultBackground)
	}
	ebiten.SetWindowTitle(gameTitle)
	return &Engine{
		ctx:           ctx,
		title:         gameTitle,
		fps:           fps,
		canvas:        canvas,
		ScreenshotDir: "screenshots",
	}
}

// Canvas returns the engine's canvas.
func (e *Engine) Canvas() *Canvas {
	return e.canvas
}

// Title returns the window title.
func (e *Engine) Title() string {
	return e.title
}

// FPS returns the configured frame rate.
func (e *Engine) FPS() int {
	return e.fps
}

// SetScriptRunner attaches a ScriptRunner that drives synthetic input; its
// step runs at the start of every tick, before closure polling. Pass nil to
// detach.
func (e *Engine) SetScriptRunner(runner *ScriptRunner) {
	e.script = runner
}

// AwaitClosure polls for a close request exactly once. On a window-close
// request or the Escape key it shuts the Context down and exits the process
// immediately. This is an unconditional hard exit: caller cleanup inside the
// frame callback does not run.
func (e *Engine) AwaitClosure() {
	if device.windowClosing() || device.keyPressed(ebiten.KeyEscape) {
		e.ctx.terminate()
	}
}

// Run starts the frame loop with the given per-frame callback and does not
// return under normal operation (closure exits the process from inside the
// loop). The returned error is the platform loop failing to start or crashing.
//
// Ordering within a tick: clear, script step, closure poll, frame callback.
// The callback therefore always starts from a freshly cleared canvas.
// Presentation is decoupled from the tick: the display may refresh more often
// than the tick rate, and each refresh re-presents the last completed frame,
// never the bare background.
func (e *Engine) Run(frame func()) error {
	if frame == nil {
		panic("easygame: Engine.Run requires a frame callback")
	}
	ebiten.SetTPS(e.fps)
	ebiten.SetWindowClosingHandled(true)
	if err := ebiten.RunGame(&gameLoop{engine: e, frame: frame}); err != nil {
		return fmt.Errorf("run %q: %w", e.title, err)
	}
	return nil
}

// gameLoop adapts the engine's tick contract onto ebiten.Game.
type gameLoop struct {
	engine *Engine
	frame  func()
}

func (g *gameLoop) Update() error {
	e := g.engine
	var t0 time.Time
	if e.ctx.debug {
		t0 = time.Now()
	}

	e.canvas.Clear()
	if e.script != nil {
		e.script.step(e)
	}
	e.AwaitClosure()
	g.frame()

	if e.ctx.debug {
		e.stats.updateTime += time.Since(t0)
	}
	return nil
}

func (g *gameLoop) Draw(screen *ebiten.Image) {
	e := g.engine
	var t0 time.Time
	if e.ctx.debug {
		t0 = time.Now()
	}

	// Present the last completed frame. The canvas is cleared at the start of
	// the next tick, not here: a display refresh with no tick in between must
	// re-show this frame, not the background.
	screen.DrawImage(e.canvas.surface, nil)
	e.flushScreenshots()

	if e.ctx.debug {
		e.stats.drawTime += time.Since(t0)
		e.stats.frames++
		e.logStats()
	}
}

func (g *gameLoop) Layout(outsideWidth, outsideHeight int) (int, int) {
	size := g.engine.canvas.screenSize
	return size.Width, size.Height
}
