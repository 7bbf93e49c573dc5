package easygame

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// withSyntheticPointer installs a synthetic input source with the pointer at
// (x, y) and restores the real device when the test ends.
func withSyntheticPointer(t *testing.T, x, y int) *syntheticInput {
	t.Helper()
	in := newSyntheticInput()
	in.cursorX, in.cursorY = x, y
	installInput(in)
	t.Cleanup(resetInput)
	return in
}

func TestMousePosition(t *testing.T) {
	withSyntheticPointer(t, 123, 456)
	x, y := NewMouseController().Position()
	if x != 123 || y != 456 {
		t.Errorf("Position() = (%d, %d), want (123, 456)", x, y)
	}
}

func TestMouseIsOver(t *testing.T) {
	// Collider spans x in [50, 70), y in [80, 100).
	c := NewCharacter(Point{X: 50, Y: 80}, 20)
	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"top-left pixel", 50, 80, true},
		{"center", 60, 90, true},
		{"last pixel", 69, 99, true},
		{"one outside left", 49, 90, false},
		{"one outside right", 70, 90, false},
		{"one outside top", 60, 79, false},
		{"one outside bottom", 60, 100, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withSyntheticPointer(t, tt.x, tt.y)
			if got := NewMouseController().IsOver(c); got != tt.want {
				t.Errorf("IsOver at (%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestMouseIsPressedMapping(t *testing.T) {
	tests := []struct {
		name   string
		button MouseButton
		held   ebiten.MouseButton
	}{
		{"primary", MouseButtonPrimary, ebiten.MouseButtonLeft},
		{"middle", MouseButtonMiddle, ebiten.MouseButtonMiddle},
		{"secondary", MouseButtonSecondary, ebiten.MouseButtonRight},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := withSyntheticPointer(t, 0, 0)
			m := NewMouseController()

			if m.IsPressed(tt.button) {
				t.Error("IsPressed = true before the button is held")
			}
			in.buttons[tt.held] = true
			if !m.IsPressed(tt.button) {
				t.Error("IsPressed = false while the button is held")
			}
		})
	}
}

func TestMouseIsPressedOutOfRange(t *testing.T) {
	in := withSyntheticPointer(t, 0, 0)
	in.buttons[ebiten.MouseButtonLeft] = true
	if NewMouseController().IsPressed(MouseButton(7)) {
		t.Error("IsPressed(7) = true, want false for out-of-range index")
	}
}

func TestMouseLeftRightShorthand(t *testing.T) {
	in := withSyntheticPointer(t, 0, 0)
	m := NewMouseController()

	in.buttons[ebiten.MouseButtonLeft] = true
	if !m.IsLeftPressed() {
		t.Error("IsLeftPressed = false while primary held")
	}
	if m.IsRightPressed() {
		t.Error("IsRightPressed = true while only primary held")
	}

	in.release()
	in.buttons[ebiten.MouseButtonRight] = true
	if !m.IsRightPressed() {
		t.Error("IsRightPressed = false while secondary held")
	}
	if m.IsLeftPressed() {
		t.Error("IsLeftPressed = true while only secondary held")
	}
}

func TestMouseIsClicking(t *testing.T) {
	c := NewCharacter(Point{X: 50, Y: 80}, 20)
	tests := []struct {
		name    string
		x, y    int
		pressed bool
		want    bool
	}{
		{"over and pressed", 60, 90, true, true},
		{"over not pressed", 60, 90, false, false},
		{"pressed not over", 10, 10, true, false},
		{"neither", 10, 10, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := withSyntheticPointer(t, tt.x, tt.y)
			if tt.pressed {
				in.buttons[ebiten.MouseButtonLeft] = true
			}
			got := NewMouseController().IsClicking(c, MouseButtonPrimary)
			if got != tt.want {
				t.Errorf("IsClicking = %v, want %v", got, tt.want)
			}
		})
	}
}
