package easygame

// Controllable is the capability interface for entities that accept
// per-frame input. Games that mix controlled and uncontrolled entities in
// one collection should query this interface rather than concrete types.
type Controllable interface {
	HandleKeys(canvas *Canvas)
}

// Player is a Character composed with a KeyboardController. Composition
// rather than a hierarchy: an entity is a collider plus an image, and input
// is an attached capability.
type Player struct {
	*Character

	// Controller applies held-key movement. Replace it to change speed or
	// substitute a custom input scheme.
	Controller *KeyboardController
}

var _ Controllable = (*Player)(nil)

// NewPlayer builds a default-square character with an attached keyboard
// controller at the default player speed.
func NewPlayer(spawn Point, size int) *Player {
	return &Player{
		Character:  NewCharacter(spawn, size),
		Controller: NewKeyboardController(defaultPlayerSpeed),
	}
}

// NewPlayerFromSprite is NewPlayer with a sprite image; it fails like
// NewCharacterFromSprite when the sprite cannot be loaded.
func NewPlayerFromSprite(spawn Point, size int, path string) (*Player, error) {
	c, err := NewCharacterFromSprite(spawn, size, path)
	if err != nil {
		return nil, err
	}
	return &Player{
		Character:  c,
		Controller: NewKeyboardController(defaultPlayerSpeed),
	}, nil
}

// HandleKeys applies one tick of held-key movement, clamped to the canvas.
func (p *Player) HandleKeys(canvas *Canvas) {
	p.Controller.HandleKeys(p.Character, canvas)
}
