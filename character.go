package easygame

import (
	"fmt"
	"image"
	_ "image/gif" // sprite decoders
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	xdraw "golang.org/x/image/draw"
)

// Character is a positioned, drawable, collidable entity: an image plus an
// axis-aligned bounding box. The runtime keeps no registry of characters;
// games own their entity collections and mutate them from the frame callback.
//
// Invariant: the collider's dimensions always match the current image's
// dimensions. Collider position is the only field games mutate during play.
type Character struct {
	// Collider is the entity's bounding box. Move it by mutating X and Y;
	// its dimensions are derived from the image and must not be changed
	// directly (substitute an image with SetImage instead).
	Collider Rect

	// Spawn records the initial placement and never changes afterward.
	Spawn Point

	size  int
	image *ebiten.Image
}

// NewCharacter builds a character with the default visual: a filled
// size x size square in the fixed fallback color. Panics if size is not
// positive.
func NewCharacter(spawn Point, size int) *Character {
	if size <= 0 {
		panic(fmt.Sprintf("easygame: character size must be positive, got %d", size))
	}
	img := ebiten.NewImage(size, size)
	img.Fill(characterFill.toRGBA())
	return &Character{
		Collider: Rect{X: spawn.X, Y: spawn.Y, Width: size, Height: size},
		Spawn:    spawn,
		size:     size,
		image:    img,
	}
}

// NewCharacterFromSprite builds a character from the raster image at path,
// scaled to size x size. There is no fallback: an unresolvable or undecodable
// sprite aborts construction with an error.
func NewCharacterFromSprite(spawn Point, size int, path string) (*Character, error) {
	if size <= 0 {
		panic(fmt.Sprintf("easygame: character size must be positive, got %d", size))
	}
	img, err := loadSprite(path, size)
	if err != nil {
		return nil, err
	}
	return &Character{
		Collider: Rect{X: spawn.X, Y: spawn.Y, Width: size, Height: size},
		Spawn:    spawn,
		size:     size,
		image:    img,
	}, nil
}

// loadSprite decodes the image at path and scales it to a size x size square.
// Scaling happens CPU-side so the resulting texture is exactly collider-sized.
func loadSprite(path string, size int) (*ebiten.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("load sprite %s: %w", path, err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("load sprite %s: %w", path, err)
	}

	scaled := image.NewRGBA(image.Rect(0, 0, size, size))
	xdraw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), src, src.Bounds(), xdraw.Over, nil)
	return ebiten.NewImageFromImage(scaled), nil
}

// Image returns the character's current visual.
func (c *Character) Image() *ebiten.Image {
	return c.image
}

// SetImage substitutes a custom visual. The collider's dimensions are
// re-derived from the new image's rectangle; its position is preserved.
func (c *Character) SetImage(img *ebiten.Image) {
	c.image = img
	bounds := img.Bounds()
	c.Collider.Width = bounds.Dx()
	c.Collider.Height = bounds.Dy()
}

// Size returns the size the character was constructed with. The collider may
// be wider or taller if a custom image was substituted.
func (c *Character) Size() int {
	return c.size
}

// Draw composites the character's image onto target at the collider's
// current top-left position.
func (c *Character) Draw(target *ebiten.Image) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(c.Collider.X), float64(c.Collider.Y))
	target.DrawImage(c.image, op)
}

// CollidesWith reports whether this character's bounding box intersects any
// bounding box in others, short-circuiting on the first match. The scan is
// linear with no spatial index; fine for the tens of entities these games
// use, a known limit beyond that.
func (c *Character) CollidesWith(others []*Character) bool {
	for _, other := range others {
		if c.Collider.Intersects(other.Collider) {
			return true
		}
	}
	return false
}
