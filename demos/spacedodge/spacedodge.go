// Package spacedodge is a survival game: steer the ship between falling
// asteroids for as long as possible. Spawns accelerate as the run goes on,
// and a collision ends the game with a particle burst.
//
// Controls: WASD move, R restarts after game over, Escape quits.
package spacedodge

import (
	"fmt"
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/rkeys/easygame"
)

const (
	screenWidth  = 600
	screenHeight = 800
	fps          = 60

	shipSize  = 30
	shipSpeed = 6

	asteroidSizeMin  = 20
	asteroidSizeMax  = 50
	asteroidSpeedMin = 3.0
	asteroidSpeedMax = 8.0

	spawnIntervalInitial = 40.0
	spawnIntervalMin     = 15.0
	difficultyRate       = 0.02

	starCount     = 50
	particleCount = 30
)

var (
	shipFill  = color.RGBA{80, 200, 220, 255}
	burstFill = []color.RGBA{
		{220, 80, 80, 255},
		{255, 160, 60, 255},
		{255, 220, 80, 255},
		{255, 255, 255, 255},
	}
	asteroidFills = []color.RGBA{
		{120, 100, 80, 255},
		{100, 90, 70, 255},
		{90, 80, 60, 255},
	}
)

type asteroid struct {
	*easygame.Character
	y     float64
	speed float64
}

func newAsteroid(rng *rand.Rand) *asteroid {
	size := asteroidSizeMin + rng.IntN(asteroidSizeMax-asteroidSizeMin+1)
	x := size + rng.IntN(screenWidth-2*size)
	c := easygame.NewCharacter(easygame.Point{X: x, Y: -size}, size)
	c.Image().Fill(asteroidFills[rng.IntN(len(asteroidFills))])
	return &asteroid{Character: c, y: float64(-size)}
}

// update advances the asteroid and reports whether it is still above the
// bottom of the screen (with a margin so it leaves cleanly).
func (a *asteroid) update() bool {
	a.y += a.speed
	a.Collider.Y = int(a.y)
	return a.Collider.Y < screenHeight+50
}

// particle is one fragment of the explosion. Its alpha follows a tween from
// opaque to transparent over its lifetime.
type particle struct {
	x, y   float64
	vx, vy float64
	size   float32
	fill   color.RGBA
	fade   *gween.Tween
}

func newParticle(x, y float64, rng *rand.Rand) *particle {
	angle := rng.Float64() * 2 * math.Pi
	speed := 2 + rng.Float64()*6
	lifetime := float32(20+rng.IntN(21)) / fps // seconds
	return &particle{
		x:    x,
		y:    y,
		vx:   math.Cos(angle) * speed,
		vy:   math.Sin(angle) * speed,
		size: float32(2 + rng.IntN(4)),
		fill: burstFill[rng.IntN(len(burstFill))],
		fade: gween.New(255, 0, lifetime, ease.OutQuad),
	}
}

// update advances the particle one tick and reports whether it is still alive.
func (p *particle) update() bool {
	p.x += p.vx
	p.y += p.vy
	p.vy += 0.1 // gravity
	alpha, done := p.fade.Update(1.0 / fps)
	p.fill.A = uint8(alpha)
	return !done
}

func (p *particle) draw(surface *ebiten.Image) {
	vector.DrawFilledCircle(surface, float32(p.x), float32(p.y), p.size, p.fill, false)
}

type star struct {
	x, y       float64
	speed      float64
	brightness uint8
}

func newStar(rng *rand.Rand) *star {
	return &star{
		x:          float64(rng.IntN(screenWidth)),
		y:          float64(rng.IntN(screenHeight)),
		speed:      0.5 + rng.Float64()*1.5,
		brightness: uint8(50 + rng.IntN(101)),
	}
}

func (s *star) update(rng *rand.Rand) {
	s.y += s.speed
	if s.y > screenHeight {
		s.y = 0
		s.x = float64(rng.IntN(screenWidth))
	}
}

func (s *star) draw(surface *ebiten.Image) {
	c := color.RGBA{s.brightness, s.brightness, s.brightness, 255}
	vector.DrawFilledCircle(surface, float32(s.x), float32(s.y), 1, c, false)
}

type game struct {
	canvas *easygame.Canvas
	rng    *rand.Rand

	ship      *easygame.Player
	asteroids []*asteroid
	particles []*particle
	stars     []*star

	survival   float64 // seconds
	highScore  float64
	difficulty float64
	spawnEvery float64
	spawnTimer float64
	gameOver   bool
}

// Run starts the game and blocks until the window is closed.
func Run() error {
	ctx := easygame.NewContext()
	canvas := easygame.NewCanvas(ctx,
		easygame.Size{Width: screenWidth, Height: screenHeight},
		easygame.Color{R: 10, G: 12, B: 20})
	engine := easygame.NewEngine(ctx, "Space Dodge", fps, canvas)

	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	ship := easygame.NewPlayer(
		easygame.Point{X: screenWidth/2 - shipSize/2, Y: screenHeight - 80}, shipSize)
	ship.Image().Fill(shipFill)
	ship.Controller.MovementSpeed = shipSpeed

	g := &game{canvas: canvas, rng: rng, ship: ship}
	for i := 0; i < starCount; i++ {
		g.stars = append(g.stars, newStar(rng))
	}
	g.reset()

	return engine.Run(g.frame)
}

func (g *game) reset() {
	g.survival = 0
	g.gameOver = false
	g.difficulty = 1.0
	g.spawnEvery = spawnIntervalInitial
	g.spawnTimer = 0
	g.asteroids = g.asteroids[:0]
	g.particles = g.particles[:0]
	g.ship.Collider.SetCenter(screenWidth/2, screenHeight-80)
}

func (g *game) frame() {
	if g.gameOver {
		if ebiten.IsKeyPressed(ebiten.KeyR) {
			g.reset()
		}
	} else {
		g.tick()
	}

	// Particles and stars keep moving through the game-over screen.
	live := g.particles[:0]
	for _, p := range g.particles {
		if p.update() {
			live = append(live, p)
		}
	}
	g.particles = live
	for _, s := range g.stars {
		s.update(g.rng)
	}

	g.draw()
}

func (g *game) tick() {
	g.survival += 1.0 / fps
	g.difficulty = 1.0 + g.survival*difficultyRate
	g.spawnEvery = math.Max(spawnIntervalMin, spawnIntervalInitial/g.difficulty)

	g.ship.HandleKeys(g.canvas)

	g.spawnTimer++
	if g.spawnTimer >= g.spawnEvery {
		g.spawnTimer = 0
		a := newAsteroid(g.rng)
		speed := asteroidSpeedMin*g.difficulty +
			g.rng.Float64()*(asteroidSpeedMax-asteroidSpeedMin)*g.difficulty
		a.speed = math.Min(speed, asteroidSpeedMax*2)
		g.asteroids = append(g.asteroids, a)
	}

	live := g.asteroids[:0]
	for _, a := range g.asteroids {
		if a.update() {
			live = append(live, a)
		}
	}
	g.asteroids = live

	for _, a := range g.asteroids {
		if g.ship.CollidesWith([]*easygame.Character{a.Character}) {
			cx, cy := g.ship.Collider.Center()
			for i := 0; i < particleCount; i++ {
				g.particles = append(g.particles, newParticle(float64(cx), float64(cy), g.rng))
			}
			g.gameOver = true
			g.highScore = math.Max(g.highScore, g.survival)
			break
		}
	}
}

func formatTime(seconds float64) string {
	total := int(seconds)
	tenths := int(math.Mod(seconds, 1) * 10)
	return fmt.Sprintf("%d:%02d.%d", total/60, total%60, tenths)
}

func (g *game) draw() {
	surface := g.canvas.Surface()

	for _, s := range g.stars {
		s.draw(surface)
	}
	for _, a := range g.asteroids {
		a.Draw(surface)
	}
	if !g.gameOver {
		g.ship.Draw(surface)
	}
	for _, p := range g.particles {
		p.draw(surface)
	}

	ebitenutil.DebugPrintAt(surface, formatTime(g.survival), screenWidth/2-20, 20)
	if g.highScore > 0 {
		ebitenutil.DebugPrintAt(surface,
			fmt.Sprintf("Best: %s", formatTime(g.highScore)), screenWidth/2-30, 40)
	}

	if g.gameOver {
		ebitenutil.DebugPrintAt(surface, "GAME OVER", screenWidth/2-35, screenHeight/2-40)
		ebitenutil.DebugPrintAt(surface,
			fmt.Sprintf("You survived: %s", formatTime(g.survival)),
			screenWidth/2-65, screenHeight/2-10)
		if g.survival >= g.highScore {
			ebitenutil.DebugPrintAt(surface, "NEW BEST!", screenWidth/2-35, screenHeight/2+15)
		}
		ebitenutil.DebugPrintAt(surface, "Press R to try again", screenWidth/2-60, screenHeight/2+45)
	}
}
