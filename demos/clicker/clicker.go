// Package clicker is a reaction game: click targets to score, each hit
// respawns the target somewhere else. A short cooldown stops a held button
// from popping several targets at once.
//
// Controls: left click to score, Escape quits.
package clicker

import (
	"fmt"
	"image/color"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/rkeys/easygame"
)

const (
	screenWidth  = 800
	screenHeight = 600
	fps          = 60

	targetSize     = 50
	initialTargets = 5
	clickCooldown  = 10 // frames
)

var hoverOutline = color.RGBA{255, 255, 0, 255}

type game struct {
	canvas *easygame.Canvas
	mouse  *easygame.MouseController
	rng    *rand.Rand

	targets  []*easygame.Character
	score    int
	cooldown int
}

// spawnTarget places a fresh target at a random position, fully on screen,
// with a random bright fill.
func (g *game) spawnTarget() *easygame.Character {
	x := targetSize + g.rng.IntN(screenWidth-2*targetSize)
	y := targetSize + g.rng.IntN(screenHeight-2*targetSize)
	t := easygame.NewCharacter(easygame.Point{X: x, Y: y}, targetSize)
	t.Image().Fill(color.RGBA{
		R: uint8(100 + g.rng.IntN(156)),
		G: uint8(100 + g.rng.IntN(156)),
		B: uint8(100 + g.rng.IntN(156)),
		A: 255,
	})
	return t
}

// Run starts the game and blocks until the window is closed.
func Run() error {
	ctx := easygame.NewContext()
	canvas := easygame.NewCanvas(ctx,
		easygame.Size{Width: screenWidth, Height: screenHeight},
		easygame.Color{R: 30, G: 30, B: 40})
	engine := easygame.NewEngine(ctx, "Clicker Game", fps, canvas)

	g := &game{
		canvas: canvas,
		mouse:  easygame.NewMouseController(),
		rng:    rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	for i := 0; i < initialTargets; i++ {
		g.targets = append(g.targets, g.spawnTarget())
	}

	return engine.Run(g.frame)
}

func (g *game) frame() {
	if g.cooldown > 0 {
		g.cooldown--
	}

	if g.mouse.IsLeftPressed() && g.cooldown == 0 {
		for i, t := range g.targets {
			if g.mouse.IsClicking(t, easygame.MouseButtonPrimary) {
				g.targets[i] = g.spawnTarget()
				g.score++
				g.cooldown = clickCooldown
				break
			}
		}
	}

	surface := g.canvas.Surface()
	for _, t := range g.targets {
		if g.mouse.IsOver(t) {
			r := t.Collider
			vector.StrokeRect(surface,
				float32(r.X-3), float32(r.Y-3),
				float32(r.Width+6), float32(r.Height+6),
				3, hoverOutline, false)
		}
		t.Draw(surface)
	}

	ebitenutil.DebugPrintAt(surface, fmt.Sprintf("Score: %d", g.score), 10, 10)
}
