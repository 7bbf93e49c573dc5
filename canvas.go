package easygame

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// Canvas owns the frame buffer the game draws into each frame, its fixed
// pixel dimensions, and the background fill color. The engine clears the
// buffer back to the background at the start of each tick and presents it to
// the window on every display refresh.
type Canvas struct {
	ctx        *Context
	screenSize Size
	background Color
	surface    *ebiten.Image

	// clears counts Clear calls since construction.
	clears int
}

// NewCanvas allocates a frame buffer of exactly screenSize filled with the
// background color. Side effect: resizes the platform window (process-wide).
// Panics if either dimension is not positive.
func NewCanvas(ctx *Context, screenSize Size, background Color) *Canvas {
	c := &Canvas{ctx: ctx}
	c.Reset(screenSize, background)
	return c
}

// Reset reallocates the frame buffer and replaces the size and background
// color as one operation, with the same window-resize side effect as
// NewCanvas.
//
// The previous surface is discarded: any caller that cached the old
// *ebiten.Image keeps drawing into an orphaned buffer. Cache the Canvas and
// call Surface each frame instead.
func (c *Canvas) Reset(screenSize Size, background Color) {
	if screenSize.Width <= 0 || screenSize.Height <= 0 {
		panic(fmt.Sprintf("easygame: canvas dimensions must be positive, got %dx%d",
			screenSize.Width, screenSize.Height))
	}
	c.screenSize = screenSize
	c.background = background
	c.surface = ebiten.NewImage(screenSize.Width, screenSize.Height)
	c.surface.Fill(background.toRGBA())
	ebiten.SetWindowSize(screenSize.Width, screenSize.Height)
}

// Surface returns the current frame buffer. The returned image is replaced
// wholesale by Reset; see the hazard note there.
func (c *Canvas) Surface() *ebiten.Image {
	return c.surface
}

// Size returns the canvas dimensions in pixels. The surface always has
// exactly these dimensions.
func (c *Canvas) Size() Size {
	return c.screenSize
}

// Background returns the background fill color.
func (c *Canvas) Background() Color {
	return c.background
}

// Clear fills the surface back to the background color. The engine calls
// this at the start of each tick, before the frame callback; games only need
// it when embedding the loop themselves.
func (c *Canvas) Clear() {
	c.clears++
	c.surface.Fill(c.background.toRGBA())
}
