package easygame

import "github.com/hajimehoshi/ebiten/v2"

// The movement layout is fixed: W up, A left, S down, D right.
const (
	keyUp    = ebiten.KeyW
	keyLeft  = ebiten.KeyA
	keyDown  = ebiten.KeyS
	keyRight = ebiten.KeyD
)

// KeyboardController translates held directional keys into clamped collider
// movement. It keeps no state between calls beyond its speed.
type KeyboardController struct {
	// MovementSpeed is how far the collider shifts per tick per held
	// direction, in pixels.
	MovementSpeed int
}

// NewKeyboardController returns a controller moving movementSpeed pixels per
// tick. A non-positive speed falls back to the default of 2.
func NewKeyboardController(movementSpeed int) *KeyboardController {
	if movementSpeed <= 0 {
		movementSpeed = defaultMovementSpeed
	}
	return &KeyboardController{MovementSpeed: movementSpeed}
}

// HandleKeys samples the four directional keys once and applies each held
// direction independently, in the order down, up, right, left. A direction
// moves the collider only if the move keeps it fully inside the canvas on
// that axis; otherwise that direction is silently a no-op this tick.
//
// Opposite directions are deliberately not summed: holding up and down
// applies both checks in sequence, which nets to zero at interior positions
// but not necessarily at the edges.
func (k *KeyboardController) HandleKeys(c *Character, canvas *Canvas) {
	speed := k.MovementSpeed
	bounds := canvas.Size()

	if device.keyPressed(keyDown) && c.Collider.Y+speed <= bounds.Height-c.Collider.Height {
		c.Collider.Y += speed
	}
	if device.keyPressed(keyUp) && c.Collider.Y-speed >= 0 {
		c.Collider.Y -= speed
	}
	if device.keyPressed(keyRight) && c.Collider.X+speed <= bounds.Width-c.Collider.Width {
		c.Collider.X += speed
	}
	if device.keyPressed(keyLeft) && c.Collider.X-speed >= 0 {
		c.Collider.X -= speed
	}
}
