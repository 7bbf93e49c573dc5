package easygame

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestNewEngineDefaultCanvas(t *testing.T) {
	ctx, _ := newTestContext(t)
	e := NewEngine(ctx, "Test", 60, nil)

	if e.Canvas() == nil {
		t.Fatal("engine has no canvas")
	}
	if e.Canvas().Size() != DefaultScreenSize {
		t.Errorf("default canvas size = %v, want %v", e.Canvas().Size(), DefaultScreenSize)
	}
	if e.Canvas().Background() != DefaultBackground {
		t.Errorf("default canvas background = %v, want %v", e.Canvas().Background(), DefaultBackground)
	}
}

func TestNewEngineDefaults(t *testing.T) {
	ctx, _ := newTestContext(t)

	if e := NewEngine(ctx, "Test", 0, nil); e.FPS() != DefaultFPS {
		t.Errorf("FPS() = %d, want %d for fps 0", e.FPS(), DefaultFPS)
	}
	if e := NewEngine(ctx, "Test", 30, nil); e.FPS() != 30 {
		t.Errorf("FPS() = %d, want 30", e.FPS())
	}
	if e := NewEngine(ctx, "Pong", 60, nil); e.Title() != "Pong" {
		t.Errorf("Title() = %q, want %q", e.Title(), "Pong")
	}
}

func TestNewEngineKeepsSuppliedCanvas(t *testing.T) {
	ctx, _ := newTestContext(t)
	canvas := NewCanvas(ctx, Size{Width: 100, Height: 100}, Color{})
	e := NewEngine(ctx, "Test", 60, canvas)
	if e.Canvas() != canvas {
		t.Error("engine replaced the supplied canvas")
	}
}

func TestAwaitClosureNoRequest(t *testing.T) {
	ctx, exitCode := newTestContext(t)
	withSyntheticKeys(t) // nothing held, not closing
	e := NewEngine(ctx, "Test", 60, nil)

	e.AwaitClosure()

	if *exitCode != -1 {
		t.Errorf("exit called with %d, want no exit", *exitCode)
	}
	if ctx.Closed() {
		t.Error("context shut down without a close request")
	}
}

func TestAwaitClosureOnEscape(t *testing.T) {
	ctx, exitCode := newTestContext(t)
	withSyntheticKeys(t, ebiten.KeyEscape)
	e := NewEngine(ctx, "Test", 60, nil)

	e.AwaitClosure()

	if *exitCode != 0 {
		t.Errorf("exit code = %d, want 0", *exitCode)
	}
	if !ctx.Closed() {
		t.Error("context not shut down on Escape")
	}
}

func TestAwaitClosureOnWindowClose(t *testing.T) {
	ctx, exitCode := newTestContext(t)
	in := withSyntheticKeys(t)
	in.closing = true
	e := NewEngine(ctx, "Test", 60, nil)

	e.AwaitClosure()

	if *exitCode != 0 {
		t.Errorf("exit code = %d, want 0", *exitCode)
	}
}

func TestGameLoopUpdateInvokesFrameOnce(t *testing.T) {
	ctx, _ := newTestContext(t)
	withSyntheticKeys(t)
	e := NewEngine(ctx, "Test", 60, nil)

	calls := 0
	loop := &gameLoop{engine: e, frame: func() { calls++ }}

	for i := 0; i < 3; i++ {
		if err := loop.Update(); err != nil {
			t.Fatalf("Update returned error: %v", err)
		}
	}
	if calls != 3 {
		t.Errorf("frame callback ran %d times over 3 ticks, want 3", calls)
	}
}

func TestGameLoopUpdateStepsScriptBeforeFrame(t *testing.T) {
	ctx, _ := newTestContext(t)
	e := NewEngine(ctx, "Test", 60, nil)

	runner, err := LoadScript([]byte(`{"steps": [{"action": "press", "key": "d", "frames": 2}]}`))
	if err != nil {
		t.Fatal(err)
	}
	e.SetScriptRunner(runner)
	t.Cleanup(resetInput)

	// The scripted key must already be visible to the frame callback of the
	// same tick.
	var heldDuringFrame bool
	loop := &gameLoop{engine: e, frame: func() {
		heldDuringFrame = device.keyPressed(ebiten.KeyD)
	}}
	if err := loop.Update(); err != nil {
		t.Fatal(err)
	}
	if !heldDuringFrame {
		t.Error("scripted key not held during the frame callback")
	}
}

func TestGameLoopUpdateClearsBeforeFrame(t *testing.T) {
	ctx, _ := newTestContext(t)
	withSyntheticKeys(t)
	e := NewEngine(ctx, "Test", 60, nil)

	var clearsDuringFrame []int
	loop := &gameLoop{engine: e, frame: func() {
		clearsDuringFrame = append(clearsDuringFrame, e.canvas.clears)
	}}

	for i := 0; i < 2; i++ {
		if err := loop.Update(); err != nil {
			t.Fatal(err)
		}
	}

	// Each tick clears exactly once, before the callback runs.
	if len(clearsDuringFrame) != 2 || clearsDuringFrame[0] != 1 || clearsDuringFrame[1] != 2 {
		t.Errorf("clears observed by the frame callback = %v, want [1 2]", clearsDuringFrame)
	}
}

func TestGameLoopDrawDoesNotClearCanvas(t *testing.T) {
	ctx, _ := newTestContext(t)
	withSyntheticKeys(t)
	e := NewEngine(ctx, "Test", 60, nil)
	loop := &gameLoop{engine: e, frame: func() {}}

	if err := loop.Update(); err != nil {
		t.Fatal(err)
	}
	before := e.canvas.clears

	// A display refreshing faster than the tick rate presents the same frame
	// repeatedly; none of those presentations may wipe the canvas.
	screen := ebiten.NewImage(600, 600)
	loop.Draw(screen)
	loop.Draw(screen)

	if e.canvas.clears != before {
		t.Errorf("canvas cleared %d times during presentation, want 0; a refresh without a tick must re-show the last frame",
			e.canvas.clears-before)
	}
}

func TestGameLoopLayoutTracksCanvas(t *testing.T) {
	ctx, _ := newTestContext(t)
	canvas := NewCanvas(ctx, Size{Width: 320, Height: 200}, Color{})
	e := NewEngine(ctx, "Test", 60, canvas)
	loop := &gameLoop{engine: e, frame: func() {}}

	w, h := loop.Layout(1920, 1080)
	if w != 320 || h != 200 {
		t.Errorf("Layout = (%d, %d), want (320, 200)", w, h)
	}

	canvas.Reset(Size{Width: 640, Height: 480}, Color{})
	w, h = loop.Layout(1920, 1080)
	if w != 640 || h != 480 {
		t.Errorf("Layout after Reset = (%d, %d), want (640, 480)", w, h)
	}
}

func TestEngineRunNilFramePanics(t *testing.T) {
	ctx, _ := newTestContext(t)
	e := NewEngine(ctx, "Test", 60, nil)
	defer func() {
		if recover() == nil {
			t.Error("Run(nil) did not panic")
		}
	}()
	_ = e.Run(nil)
}
