package easygame

import "image/color"

// Color is an opaque RGB color with 8-bit components, used for the canvas
// background and the default character fill. Alpha is always 255; translucent
// art belongs in sprite files.
type Color struct {
	R, G, B uint8
}

// toRGBA converts to the stdlib color type ebiten fills expect.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// Point is an integer pixel coordinate in canvas space. The origin is the
// top-left corner, with Y increasing downward.
type Point struct {
	X, Y int
}

// Size is a width/height pair in pixels.
type Size struct {
	Width, Height int
}

// Rect is an axis-aligned rectangle in canvas space. It is the collider type
// used for all intersection and hit testing.
type Rect struct {
	X, Y, Width, Height int
}

// Contains reports whether the pixel (x, y) lies inside the rectangle.
// The left and top edges are inclusive, the right and bottom edges exclusive,
// so a rectangle contains exactly Width*Height pixels.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width &&
		y >= r.Y && y < r.Y+r.Height
}

// Intersects reports whether r and other overlap by at least one pixel.
// Rectangles that merely share an edge do not intersect.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.Width &&
		other.X < r.X+r.Width &&
		r.Y < other.Y+other.Height &&
		other.Y < r.Y+r.Height
}

// Center returns the rectangle's center pixel.
func (r Rect) Center() (int, int) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// SetCenter moves the rectangle so its center lands on (x, y), preserving
// its dimensions.
func (r *Rect) SetCenter(x, y int) {
	r.X = x - r.Width/2
	r.Y = y - r.Height/2
}

// MouseButton identifies a mouse button. The indices are fixed:
// 0 is the primary button, 1 the middle, 2 the secondary.
type MouseButton uint8

const (
	MouseButtonPrimary   MouseButton = iota // primary (left) mouse button
	MouseButtonMiddle                       // middle mouse button (scroll wheel click)
	MouseButtonSecondary                    // secondary (right) mouse button
)

// Defaults used when constructors are given zero values or nil.
var (
	// DefaultScreenSize is the canvas size NewEngine falls back to when no
	// Canvas is supplied.
	DefaultScreenSize = Size{Width: 600, Height: 600}

	// DefaultBackground is the background fill of the fallback canvas.
	DefaultBackground = Color{R: 255, G: 255, B: 255}
)

const (
	// DefaultFPS is the frame rate used when NewEngine is given fps <= 0.
	DefaultFPS = 60

	// defaultMovementSpeed is the KeyboardController fallback, in pixels per tick.
	defaultMovementSpeed = 2

	// defaultPlayerSpeed is the movement speed of the controller NewPlayer attaches.
	defaultPlayerSpeed = 10
)

// characterFill is the fixed fallback color of the default character square.
var characterFill = Color{R: 128, G: 70, B: 128}
