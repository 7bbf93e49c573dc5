// Package gyruss is a Gyruss-style arcade game: the ship orbits the screen
// perimeter while enemies spiral outward from the center, and every shot is
// fired inward along the ship's line to the center.
//
// Controls: A/D orbit counterclockwise/clockwise, W or Space fire, R restarts
// after game over, Escape quits.
package gyruss

import (
	"fmt"
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/rkeys/easygame"
)

const (
	screenWidth  = 800
	screenHeight = 600
	fps          = 60

	centerX = screenWidth / 2
	centerY = screenHeight / 2

	orbitRadius  = 250.0
	angularSpeed = 0.05 // radians per tick
	shipRadius   = 15

	bulletSpeed    = 12.0
	bulletRadius   = 4
	bulletLifetime = 60 // frames
	shotCooldown   = 60 // frames

	enemyStartRadius = 20.0
	enemySpiralSpeed = 1.0
	enemyTurnSpeed   = 0.025
	enemyRadius      = 16
	enemyMaxRadius   = 350.0
	spawnInterval    = 60 // frames

	killPoints       = 10
	centerKillRadius = 15.0 // bullets die this close to the center
	offscreenMargin  = 50
)

var (
	shipFill   = color.RGBA{0, 255, 100, 255}
	enemyFill  = color.RGBA{255, 50, 50, 255}
	bulletFill = color.RGBA{255, 255, 0, 255}
	orbitLine  = color.RGBA{30, 30, 50, 255}
	centerDot  = color.RGBA{50, 50, 80, 255}
)

// boxAround is the square collision footprint of a circle of the given
// radius, matching how the original boxes its round sprites.
func boxAround(x, y float64, radius int) easygame.Rect {
	return easygame.Rect{
		X:      int(x) - radius,
		Y:      int(y) - radius,
		Width:  2 * radius,
		Height: 2 * radius,
	}
}

// ship moves along a fixed orbit around the screen center; only its angle
// changes. It starts at the bottom of the orbit.
type ship struct {
	angle float64
}

func newShip() *ship {
	return &ship{angle: math.Pi / 2}
}

func (s *ship) x() float64 { return centerX + orbitRadius*math.Cos(s.angle) }
func (s *ship) y() float64 { return centerY + orbitRadius*math.Sin(s.angle) }

func (s *ship) rect() easygame.Rect {
	return boxAround(s.x(), s.y(), shipRadius)
}

// shotTrajectory returns the unit vector from the ship toward the screen
// center, the direction every shot travels.
func (s *ship) shotTrajectory() (float64, float64) {
	dx := float64(centerX) - s.x()
	dy := float64(centerY) - s.y()
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return 0, -1
	}
	return dx / dist, dy / dist
}

// bullet flies in a straight line from the ship toward the center and dies
// when it reaches the center, leaves the screen, or its lifetime runs out.
type bullet struct {
	x, y     float64
	vx, vy   float64
	lifetime int
}

func newBullet(x, y, dirX, dirY float64) *bullet {
	return &bullet{
		x:        x,
		y:        y,
		vx:       dirX * bulletSpeed,
		vy:       dirY * bulletSpeed,
		lifetime: bulletLifetime,
	}
}

// update advances the bullet one tick and reports whether it is still alive.
func (b *bullet) update() bool {
	b.x += b.vx
	b.y += b.vy
	b.lifetime--
	if b.lifetime <= 0 {
		return false
	}
	if math.Hypot(b.x-centerX, b.y-centerY) < centerKillRadius {
		return false
	}
	return b.x >= -offscreenMargin && b.x <= screenWidth+offscreenMargin &&
		b.y >= -offscreenMargin && b.y <= screenHeight+offscreenMargin
}

func (b *bullet) rect() easygame.Rect {
	return boxAround(b.x, b.y, bulletRadius)
}

// enemy spirals outward from the center, rotating as it grows its orbit.
type enemy struct {
	angle  float64
	radius float64
}

func newEnemy(spawnAngle float64) *enemy {
	return &enemy{angle: spawnAngle, radius: enemyStartRadius}
}

func (e *enemy) x() float64 { return centerX + e.radius*math.Cos(e.angle) }
func (e *enemy) y() float64 { return centerY + e.radius*math.Sin(e.angle) }

// update advances the spiral one tick and reports whether the enemy is still
// inside the playfield.
func (e *enemy) update() bool {
	e.radius += enemySpiralSpeed
	e.angle += enemyTurnSpeed
	return e.radius <= enemyMaxRadius
}

func (e *enemy) rect() easygame.Rect {
	return boxAround(e.x(), e.y(), enemyRadius)
}

type game struct {
	canvas *easygame.Canvas
	rng    *rand.Rand

	ship    *ship
	bullets []*bullet
	enemies []*enemy

	score      int
	spawnTimer int
	cooldown   int
	gameOver   bool
}

// Run starts the game and blocks until the window is closed.
func Run() error {
	ctx := easygame.NewContext()
	canvas := easygame.NewCanvas(ctx,
		easygame.Size{Width: screenWidth, Height: screenHeight},
		easygame.Color{R: 0, G: 0, B: 20})
	engine := easygame.NewEngine(ctx, "Gyruss Demo", fps, canvas)

	g := &game{
		canvas: canvas,
		rng:    rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	g.reset()

	return engine.Run(g.frame)
}

func (g *game) reset() {
	g.ship = newShip()
	g.bullets = g.bullets[:0]
	g.enemies = g.enemies[:0]
	g.score = 0
	g.spawnTimer = 0
	g.cooldown = 0
	g.gameOver = false
}

func (g *game) frame() {
	if g.gameOver {
		if ebiten.IsKeyPressed(ebiten.KeyR) {
			g.reset()
		}
	} else {
		g.tick()
	}
	g.draw()
}

func (g *game) tick() {
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		g.ship.angle -= angularSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		g.ship.angle += angularSpeed
	}

	if g.cooldown > 0 {
		g.cooldown--
	}
	if (ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeySpace)) && g.cooldown == 0 {
		dirX, dirY := g.ship.shotTrajectory()
		g.bullets = append(g.bullets, newBullet(g.ship.x(), g.ship.y(), dirX, dirY))
		g.cooldown = shotCooldown
	}

	liveBullets := g.bullets[:0]
	for _, b := range g.bullets {
		if b.update() {
			liveBullets = append(liveBullets, b)
		}
	}
	g.bullets = liveBullets

	g.spawnTimer++
	if g.spawnTimer >= spawnInterval {
		g.spawnTimer = 0
		g.enemies = append(g.enemies, newEnemy(g.rng.Float64()*2*math.Pi))
	}

	liveEnemies := g.enemies[:0]
	for _, e := range g.enemies {
		if e.update() {
			liveEnemies = append(liveEnemies, e)
		}
	}
	g.enemies = liveEnemies

	g.resolveHits()

	shipRect := g.ship.rect()
	for _, e := range g.enemies {
		if shipRect.Intersects(e.rect()) {
			g.gameOver = true
			break
		}
	}
}

// resolveHits removes every bullet/enemy pair whose boxes overlap, scoring
// each kill once.
func (g *game) resolveHits() {
	deadBullets := make(map[*bullet]bool)
	deadEnemies := make(map[*enemy]bool)
	for _, b := range g.bullets {
		for _, e := range g.enemies {
			if deadBullets[b] || deadEnemies[e] {
				continue
			}
			if b.rect().Intersects(e.rect()) {
				deadBullets[b] = true
				deadEnemies[e] = true
				g.score += killPoints
			}
		}
	}
	if len(deadBullets) == 0 {
		return
	}

	liveBullets := g.bullets[:0]
	for _, b := range g.bullets {
		if !deadBullets[b] {
			liveBullets = append(liveBullets, b)
		}
	}
	g.bullets = liveBullets

	liveEnemies := g.enemies[:0]
	for _, e := range g.enemies {
		if !deadEnemies[e] {
			liveEnemies = append(liveEnemies, e)
		}
	}
	g.enemies = liveEnemies
}

func (g *game) draw() {
	surface := g.canvas.Surface()

	// Orbit guide and center marker.
	vector.StrokeCircle(surface, centerX, centerY, orbitRadius, 1, orbitLine, false)
	vector.DrawFilledCircle(surface, centerX, centerY, 5, centerDot, false)

	for _, e := range g.enemies {
		vector.DrawFilledCircle(surface, float32(e.x()), float32(e.y()), enemyRadius, enemyFill, false)
	}
	for _, b := range g.bullets {
		vector.DrawFilledCircle(surface, float32(b.x), float32(b.y), bulletRadius, bulletFill, false)
	}
	vector.DrawFilledCircle(surface, float32(g.ship.x()), float32(g.ship.y()), shipRadius, shipFill, false)

	ebitenutil.DebugPrintAt(surface, fmt.Sprintf("Score: %d", g.score), 10, 10)

	if g.gameOver {
		ebitenutil.DebugPrintAt(surface, "GAME OVER", centerX-35, 240)
		ebitenutil.DebugPrintAt(surface, fmt.Sprintf("Final Score: %d", g.score), centerX-50, 320)
		ebitenutil.DebugPrintAt(surface, "Press R to restart", centerX-55, 380)
	}
}
