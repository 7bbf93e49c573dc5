package easygame

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func scriptTestEngine(t *testing.T) *Engine {
	t.Helper()
	ctx, _ := newTestContext(t)
	return NewEngine(ctx, "script test", 60, nil)
}

func TestLoadScript(t *testing.T) {
	data := []byte(`{
		"steps": [
			{"action": "screenshot", "label": "initial"},
			{"action": "press", "key": "w", "frames": 5},
			{"action": "click", "x": 100, "y": 200},
			{"action": "move", "x": 50, "y": 60},
			{"action": "wait", "frames": 3}
		]
	}`)

	runner, err := LoadScript(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(runner.steps) != 5 {
		t.Fatalf("expected 5 steps, got %d", len(runner.steps))
	}
	if runner.steps[1].Action != "press" || runner.steps[1].Key != "w" || runner.steps[1].Frames != 5 {
		t.Error("press step mismatch")
	}
	if runner.steps[2].X != 100 || runner.steps[2].Y != 200 {
		t.Error("click step mismatch")
	}
}

func TestLoadScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"invalid json", `not json`},
		{"no steps", `{"steps": []}`},
		{"unknown action", `{"steps": [{"action": "teleport"}]}`},
		{"unknown key", `{"steps": [{"action": "press", "key": "q"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := LoadScript([]byte(tt.data)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestScriptPressHoldsKey(t *testing.T) {
	e := scriptTestEngine(t)
	t.Cleanup(resetInput)

	runner, err := LoadScript([]byte(`{"steps": [{"action": "press", "key": "w", "frames": 3}]}`))
	if err != nil {
		t.Fatal(err)
	}

	// Held for exactly 3 frames.
	for i := 0; i < 3; i++ {
		runner.step(e)
		if !device.keyPressed(ebiten.KeyW) {
			t.Fatalf("frame %d: key not held", i)
		}
	}

	// Next frame releases, the one after finishes the script.
	runner.step(e)
	if device.keyPressed(ebiten.KeyW) {
		t.Error("key still held after the press expired")
	}
	runner.step(e)
	if !runner.Done() {
		t.Error("runner should be done after all steps executed")
	}
	if _, ok := device.(realInput); !ok {
		t.Errorf("device after script end = %T, want realInput", device)
	}
}

func TestScriptClick(t *testing.T) {
	e := scriptTestEngine(t)
	t.Cleanup(resetInput)

	runner, err := LoadScript([]byte(`{"steps": [{"action": "click", "x": 120, "y": 80}]}`))
	if err != nil {
		t.Fatal(err)
	}

	runner.step(e)
	x, y := device.cursorPosition()
	if x != 120 || y != 80 {
		t.Errorf("cursor at (%d, %d), want (120, 80)", x, y)
	}
	if !device.buttonPressed(ebiten.MouseButtonLeft) {
		t.Error("primary button not held during click frame")
	}

	runner.step(e)
	if device.buttonPressed(ebiten.MouseButtonLeft) {
		t.Error("primary button still held after click frame")
	}
	// Cursor stays where the click left it.
	if x, y := device.cursorPosition(); x != 120 || y != 80 {
		t.Errorf("cursor moved to (%d, %d) on release", x, y)
	}
}

func TestScriptWaitCountsFrames(t *testing.T) {
	e := scriptTestEngine(t)
	t.Cleanup(resetInput)

	runner, err := LoadScript([]byte(`{"steps": [
		{"action": "wait", "frames": 3},
		{"action": "screenshot", "label": "after"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}

	// Frames 1-3: waiting.
	for i := 0; i < 3; i++ {
		runner.step(e)
		if len(e.screenshotQueue) != 0 {
			t.Fatalf("frame %d: screenshot queued during wait", i)
		}
	}

	// Frame 4: screenshot step executes.
	runner.step(e)
	if len(e.screenshotQueue) != 1 || e.screenshotQueue[0] != "after" {
		t.Errorf("screenshot queue = %v, want [after]", e.screenshotQueue)
	}

	runner.step(e)
	if !runner.Done() {
		t.Error("runner should be done")
	}
}

func TestScriptMoveIsInstant(t *testing.T) {
	e := scriptTestEngine(t)
	t.Cleanup(resetInput)

	runner, err := LoadScript([]byte(`{"steps": [
		{"action": "move", "x": 10, "y": 20},
		{"action": "move", "x": 30, "y": 40}
	]}`))
	if err != nil {
		t.Fatal(err)
	}

	runner.step(e)
	if x, y := device.cursorPosition(); x != 10 || y != 20 {
		t.Errorf("cursor at (%d, %d), want (10, 20)", x, y)
	}
	runner.step(e)
	if x, y := device.cursorPosition(); x != 30 || y != 40 {
		t.Errorf("cursor at (%d, %d), want (30, 40)", x, y)
	}
}

func TestScriptDoneBeforeAnySteps(t *testing.T) {
	runner, err := LoadScript([]byte(`{"steps": [{"action": "wait"}]}`))
	if err != nil {
		t.Fatal(err)
	}
	if runner.Done() {
		t.Error("runner done before any steps ran")
	}
}
