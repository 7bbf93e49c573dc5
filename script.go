package easygame

import (
	"encoding/json"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// scriptStep is a single action in an input script.
type scriptStep struct {
	Action string `json:"action"`
	Key    string `json:"key,omitempty"`
	Label  string `json:"label,omitempty"`
	X      int    `json:"x,omitempty"`
	Y      int    `json:"y,omitempty"`
	Frames int    `json:"frames,omitempty"`
}

// inputScript is the top-level JSON structure for an input script.
type inputScript struct {
	Steps []scriptStep `json:"steps"`
}

// keyByName maps script key names onto the keys the runtime samples.
var keyByName = map[string]ebiten.Key{
	"w":      ebiten.KeyW,
	"a":      ebiten.KeyA,
	"s":      ebiten.KeyS,
	"d":      ebiten.KeyD,
	"r":      ebiten.KeyR,
	"space":  ebiten.KeySpace,
	"escape": ebiten.KeyEscape,
}

// ScriptRunner sequences synthetic input and screenshots across frames for
// automated runs. Attach to an Engine with SetScriptRunner; while the script
// is live the engine and the controllers sample the scripted device instead
// of the real one, and the real device is restored when the script ends.
//
// Supported actions:
//
//	{"action": "press", "key": "w", "frames": 10}   hold a key
//	{"action": "click", "x": 100, "y": 200}         press primary at (x, y)
//	{"action": "move", "x": 100, "y": 200}          reposition the pointer
//	{"action": "wait", "frames": 30}                idle frames
//	{"action": "screenshot", "label": "start"}      queue a canvas capture
type ScriptRunner struct {
	steps      []scriptStep
	cursor     int
	holdFrames int
	input      *syntheticInput
	done       bool
}

// LoadScript parses a JSON input script and validates every step.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var script inputScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse input script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse input script: no steps")
	}
	for i, st := range script.Steps {
		switch st.Action {
		case "press":
			if _, ok := keyByName[st.Key]; !ok {
				return nil, fmt.Errorf("parse input script: step %d: unknown key %q", i, st.Key)
			}
		case "click", "move", "wait", "screenshot":
		default:
			return nil, fmt.Errorf("parse input script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &ScriptRunner{steps: script.Steps}, nil
}

// Done reports whether every step has been executed and the real input
// device restored.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step advances the script by one frame. Called from the engine at the start
// of each tick, before closure polling, so a scripted Escape press terminates
// the run the same way a real one would.
func (r *ScriptRunner) step(e *Engine) {
	if r.done {
		return
	}
	if r.input == nil {
		r.input = newSyntheticInput()
		installInput(r.input)
	}

	// A held key, held button, or wait consumes this frame.
	if r.holdFrames > 0 {
		r.holdFrames--
		return
	}
	r.input.release()

	if r.cursor >= len(r.steps) {
		resetInput()
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++
	frames := st.Frames
	if frames < 1 {
		frames = 1
	}

	switch st.Action {
	case "press":
		r.input.keys[keyByName[st.Key]] = true
		r.holdFrames = frames - 1
	case "click":
		r.input.cursorX, r.input.cursorY = st.X, st.Y
		r.input.buttons[ebiten.MouseButtonLeft] = true
		r.holdFrames = frames - 1
	case "move":
		r.input.cursorX, r.input.cursorY = st.X, st.Y
	case "wait":
		r.holdFrames = frames - 1
	case "screenshot":
		e.Screenshot(st.Label)
	}
}
