package easygame

// MouseController exposes pointer position, button state, and hit testing
// against character colliders. It holds no state: every call is a fresh
// sample of the device, so two reads in the same call (as in IsClicking) are
// independent reads, not an atomic snapshot. That is harmless in the
// single-threaded per-frame model this runtime assumes.
type MouseController struct{}

// NewMouseController returns the stateless mouse adapter.
func NewMouseController() *MouseController {
	return &MouseController{}
}

// Position returns the pointer coordinates in canvas space.
func (MouseController) Position() (int, int) {
	return device.cursorPosition()
}

// IsPressed reports whether the given button is currently held.
// Out-of-range button indices report false.
func (MouseController) IsPressed(button MouseButton) bool {
	eb, ok := ebitenButton(button)
	if !ok {
		return false
	}
	return device.buttonPressed(eb)
}

// IsLeftPressed reports whether the primary button is held.
func (m MouseController) IsLeftPressed() bool {
	return m.IsPressed(MouseButtonPrimary)
}

// IsRightPressed reports whether the secondary button is held.
func (m MouseController) IsRightPressed() bool {
	return m.IsPressed(MouseButtonSecondary)
}

// IsOver reports whether the pointer lies within the character's collider,
// with the collider's own contains-point semantics: left/top edges inclusive,
// right/bottom exclusive.
func (m MouseController) IsOver(c *Character) bool {
	x, y := m.Position()
	return c.Collider.Contains(x, y)
}

// IsClicking reports whether the pointer is over the character and the given
// button is held, evaluated in that order.
func (m MouseController) IsClicking(c *Character, button MouseButton) bool {
	return m.IsOver(c) && m.IsPressed(button)
}
