package easygame

import "github.com/hajimehoshi/ebiten/v2"

// inputSource is the seam between the controllers and the physical devices.
// Every instantaneous sample (key held, cursor position, button held, window
// closing) goes through the active source, so scripted runs and tests can
// substitute synthetic state for the real hardware.
type inputSource interface {
	keyPressed(key ebiten.Key) bool
	cursorPosition() (int, int)
	buttonPressed(button ebiten.MouseButton) bool
	windowClosing() bool
}

// realInput samples the live ebiten devices.
type realInput struct{}

func (realInput) keyPressed(key ebiten.Key) bool { return ebiten.IsKeyPressed(key) }
func (realInput) cursorPosition() (int, int)     { return ebiten.CursorPosition() }
func (realInput) buttonPressed(button ebiten.MouseButton) bool {
	return ebiten.IsMouseButtonPressed(button)
}
func (realInput) windowClosing() bool { return ebiten.IsWindowBeingClosed() }

// device is the active input source. Swapped for a syntheticInput while a
// script runner drives the engine, and restored on Context.Shutdown.
var device inputSource = realInput{}

func installInput(src inputSource) { device = src }
func resetInput()                  { device = realInput{} }

// syntheticInput is a scriptable input source. State persists across frames
// until changed, matching how held keys and buttons behave on real hardware.
type syntheticInput struct {
	keys    map[ebiten.Key]bool
	buttons map[ebiten.MouseButton]bool
	cursorX int
	cursorY int
	closing bool
}

func newSyntheticInput() *syntheticInput {
	return &syntheticInput{
		keys:    make(map[ebiten.Key]bool),
		buttons: make(map[ebiten.MouseButton]bool),
	}
}

func (s *syntheticInput) keyPressed(key ebiten.Key) bool { return s.keys[key] }
func (s *syntheticInput) cursorPosition() (int, int)     { return s.cursorX, s.cursorY }
func (s *syntheticInput) buttonPressed(button ebiten.MouseButton) bool {
	return s.buttons[button]
}
func (s *syntheticInput) windowClosing() bool { return s.closing }

// release clears all held keys and buttons. The cursor position is kept;
// a released pointer does not teleport.
func (s *syntheticInput) release() {
	clear(s.keys)
	clear(s.buttons)
}

// ebitenButton maps the fixed public button indices onto ebiten's buttons.
// The second return is false for out-of-range indices.
func ebitenButton(button MouseButton) (ebiten.MouseButton, bool) {
	switch button {
	case MouseButtonPrimary:
		return ebiten.MouseButtonLeft, true
	case MouseButtonMiddle:
		return ebiten.MouseButtonMiddle, true
	case MouseButtonSecondary:
		return ebiten.MouseButtonRight, true
	default:
		return ebiten.MouseButtonLeft, false
	}
}
