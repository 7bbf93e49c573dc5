// Package shooter combines keyboard movement with mouse aiming: WASD moves
// the player, left click fires a bullet toward the cursor.
//
// Controls: WASD move, left click shoot, Escape quits.
package shooter

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/rkeys/easygame"
)

const (
	screenWidth  = 800
	screenHeight = 600
	fps          = 60

	playerSize    = 40
	bulletSpeed   = 15.0
	bulletRadius  = 8
	shootCooldown = 10 // frames
)

var (
	playerFill     = color.RGBA{0, 200, 100, 255}
	bulletFill     = color.RGBA{255, 255, 0, 255}
	crosshairColor = color.RGBA{255, 100, 100, 255}
)

const infoText = "WASD: Move | Click: Shoot | ESC: Quit"

type bullet struct {
	x, y   float64
	vx, vy float64
}

// newBullet aims a bullet from (x, y) toward (tx, ty) at bulletSpeed.
// It returns nil when the target sits exactly on the origin.
func newBullet(x, y, tx, ty int) *bullet {
	dx := float64(tx - x)
	dy := float64(ty - y)
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return nil
	}
	return &bullet{
		x:  float64(x),
		y:  float64(y),
		vx: dx / dist * bulletSpeed,
		vy: dy / dist * bulletSpeed,
	}
}

// update moves the bullet one tick and reports whether it is still on screen.
func (b *bullet) update() bool {
	b.x += b.vx
	b.y += b.vy
	return b.x >= 0 && b.x <= screenWidth && b.y >= 0 && b.y <= screenHeight
}

type game struct {
	canvas *easygame.Canvas
	mouse  *easygame.MouseController
	player *easygame.Player

	bullets  []*bullet
	cooldown int
}

// Run starts the game and blocks until the window is closed.
func Run() error {
	ctx := easygame.NewContext()
	canvas := easygame.NewCanvas(ctx,
		easygame.Size{Width: screenWidth, Height: screenHeight},
		easygame.Color{R: 20, G: 20, B: 30})
	engine := easygame.NewEngine(ctx, "Shooter Demo", fps, canvas)

	player := easygame.NewPlayer(
		easygame.Point{X: screenWidth / 2, Y: screenHeight / 2}, playerSize)
	player.Image().Fill(playerFill)

	g := &game{
		canvas: canvas,
		mouse:  easygame.NewMouseController(),
		player: player,
	}
	return engine.Run(g.frame)
}

func (g *game) frame() {
	g.player.HandleKeys(g.canvas)

	if g.cooldown > 0 {
		g.cooldown--
	}
	if g.mouse.IsLeftPressed() && g.cooldown == 0 {
		mx, my := g.mouse.Position()
		px, py := g.player.Collider.Center()
		if b := newBullet(px, py, mx, my); b != nil {
			g.bullets = append(g.bullets, b)
			g.cooldown = shootCooldown
		}
	}

	live := g.bullets[:0]
	for _, b := range g.bullets {
		if b.update() {
			live = append(live, b)
		}
	}
	g.bullets = live

	g.draw()
}

func (g *game) draw() {
	surface := g.canvas.Surface()

	g.player.Draw(surface)

	for _, b := range g.bullets {
		vector.DrawFilledCircle(surface, float32(b.x), float32(b.y), bulletRadius, bulletFill, false)
	}

	// Crosshair at the cursor.
	mx, my := g.mouse.Position()
	x, y := float32(mx), float32(my)
	vector.StrokeLine(surface, x-10, y, x+10, y, 2, crosshairColor, false)
	vector.StrokeLine(surface, x, y-10, x, y+10, 2, crosshairColor, false)

	ebitenutil.DebugPrintAt(surface, fmt.Sprintf("Bullets: %d", len(g.bullets)), 10, 10)
	ebitenutil.DebugPrintAt(surface, infoText, 10, screenHeight-25)
}
