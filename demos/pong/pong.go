// Package pong is a player-versus-AI paddle game: first to seven points
// wins, with ball deflection based on where the paddle is struck.
//
// Controls: W/S move, R restarts after game over, Escape quits.
package pong

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
	screenHeight = 500
	fps          = 60

	paddleWidth  = 12
	paddleHeight = 80
	paddleSpeed  = 7
	paddleMargin = 40

	ballSize           = 14
	ballSpeedInitial   = 5.0
	ballSpeedMax       = 10.0
	ballSpeedIncrement = 0.2

	winningScore = 7
)

var (
	white    = color.RGBA{255, 255, 255, 255}
	darkGray = color.RGBA{40, 40, 40, 255}
)

// paddle is a character with a tall rectangular image that moves vertically.
type paddle struct {
	*easygame.Character
	speed int
}

func newPaddle(x, y int) *paddle {
	c := easygame.NewCharacter(easygame.Point{X: x, Y: y}, paddleHeight)
	img := ebiten.NewImage(paddleWidth, paddleHeight)
	img.Fill(white)
	c.SetImage(img)
	return &paddle{Character: c, speed: paddleSpeed}
}

func (p *paddle) moveUp() {
	p.Collider.Y = max(0, p.Collider.Y-p.speed)
}

func (p *paddle) moveDown() {
	p.Collider.Y = min(screenHeight-paddleHeight, p.Collider.Y+p.speed)
}

// ball bounces between the paddles. Velocity is kept in floats so deflection
// angles survive integer collider positions.
type ball struct {
	*easygame.Character
	x, y   float64
	vx, vy float64
	rng    *rand.Rand
}

func newBall(rng *rand.Rand) *ball {
	c := easygame.NewCharacter(easygame.Point{X: screenWidth / 2, Y: screenHeight / 2}, ballSize)
	c.Image().Fill(white)
	b := &ball{Character: c, rng: rng}
	b.reset()
	return b
}

// reset recenters the ball with a fresh direction, biased toward horizontal.
func (b *ball) reset() {
	b.x = float64(screenWidth-ballSize) / 2
	b.y = float64(screenHeight-ballSize) / 2

	angle := b.rng.Float64() - 0.5 // [-0.5, 0.5)
	direction := 1.0
	if b.rng.IntN(2) == 0 {
		direction = -1.0
	}
	b.vx = direction * ballSpeedInitial
	b.vy = angle * ballSpeedInitial
	b.sync()
}

// sync writes the float position into the collider.
func (b *ball) sync() {
	b.Collider.X = int(b.x)
	b.Collider.Y = int(b.y)
}

// update advances the ball one tick, bouncing off the top and bottom walls.
// It returns "left" or "right" when the ball exits that side, else "".
func (b *ball) update() string {
	b.x += b.vx
	b.y += b.vy

	if b.y <= 0 {
		b.y = 0
		b.vy = math.Abs(b.vy)
	} else if b.y+ballSize >= screenHeight {
		b.y = float64(screenHeight - ballSize)
		b.vy = -math.Abs(b.vy)
	}
	b.sync()

	if b.x+ballSize < 0 {
		return "left"
	}
	if b.x > screenWidth {
		return "right"
	}
	return ""
}

// bounceOff reverses the ball off a paddle, deflecting by where it struck
// (center hits go straight, edge hits steep) and speeding up slightly until
// the cap.
func (b *ball) bounceOff(p *paddle) {
	_, paddleCenter := p.Collider.Center()
	_, ballCenter := b.Collider.Center()
	hit := float64(ballCenter-paddleCenter) / (paddleHeight / 2)
	hit = max(-1, min(1, hit))

	b.vx = -b.vx
	b.vy = hit * math.Abs(b.vx) * 0.8

	speed := math.Hypot(b.vx, b.vy)
	if speed < ballSpeedMax {
		factor := 1 + ballSpeedIncrement/speed
		b.vx *= factor
		b.vy *= factor
	}

	// Push the ball clear of the paddle so one hit is one bounce.
	if b.vx > 0 {
		b.x = float64(p.Collider.X + p.Collider.Width + 1)
	} else {
		b.x = float64(p.Collider.X - ballSize - 1)
	}
	b.sync()
}

// aiController follows the ball with deliberate imperfection: it reacts only
// when the ball is inbound and close, and skips a share of ticks.
type aiController struct {
	paddle       *paddle
	difficulty   float64
	reactionZone float64
	rng          *rand.Rand
}

func newAI(p *paddle, difficulty float64, rng *rand.Rand) *aiController {
	return &aiController{
		paddle:       p,
		difficulty:   difficulty,
		reactionZone: screenWidth * 0.6,
		rng:          rng,
	}
}

func (ai *aiController) update(b *ball) {
	if b.vx <= 0 {
		return
	}
	if float64(b.Collider.X) < ai.reactionZone {
		return
	}
	if ai.rng.Float64() > ai.difficulty {
		return
	}

	_, paddleCenter := ai.paddle.Collider.Center()
	_, ballCenter := b.Collider.Center()
	switch {
	case paddleCenter < ballCenter-10:
		ai.paddle.moveDown()
	case paddleCenter > ballCenter+10:
		ai.paddle.moveUp()
	}
}

type game struct {
	canvas *easygame.Canvas

	player   *paddle
	aiPaddle *paddle
	ball     *ball
	ai       *aiController

	playerScore int
	aiScore     int
	gameOver    bool
	playerWon   bool
}

// Run starts the game and blocks until the window is closed.
func Run() error {
	ctx := easygame.NewContext()
	canvas := easygame.NewCanvas(ctx,
		easygame.Size{Width: screenWidth, Height: screenHeight},
		easygame.Color{})
	engine := easygame.NewEngine(ctx, "Pong", fps, canvas)

	rng := rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	g := &game{
		canvas:   canvas,
		player:   newPaddle(paddleMargin, (screenHeight-paddleHeight)/2),
		aiPaddle: newPaddle(screenWidth-paddleMargin-paddleWidth, (screenHeight-paddleHeight)/2),
		ball:     newBall(rng),
	}
	g.ai = newAI(g.aiPaddle, 0.75, rng)

	return engine.Run(g.frame)
}

func (g *game) frame() {
	if g.gameOver {
		if ebiten.IsKeyPressed(ebiten.KeyR) {
			g.restart()
		}
	} else {
		g.tick()
	}
	g.draw()
}

func (g *game) restart() {
	g.playerScore, g.aiScore = 0, 0
	g.gameOver = false
	g.ball.reset()
	g.player.Collider.SetCenter(paddleMargin+paddleWidth/2, screenHeight/2)
	g.aiPaddle.Collider.SetCenter(screenWidth-paddleMargin-paddleWidth/2, screenHeight/2)
}

func (g *game) tick() {
	if ebiten.IsKeyPressed(ebiten.KeyW) {
		g.player.moveUp()
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) {
		g.player.moveDown()
	}

	g.ai.update(g.ball)

	switch g.ball.update() {
	case "left":
		g.aiScore++
		if g.aiScore >= winningScore {
			g.gameOver, g.playerWon = true, false
		} else {
			g.ball.reset()
		}
	case "right":
		g.playerScore++
		if g.playerScore >= winningScore {
			g.gameOver, g.playerWon = true, true
		} else {
			g.ball.reset()
		}
	}

	if g.ball.CollidesWith([]*easygame.Character{g.player.Character}) {
		g.ball.bounceOff(g.player)
	} else if g.ball.CollidesWith([]*easygame.Character{g.aiPaddle.Character}) {
		g.ball.bounceOff(g.aiPaddle)
	}
}

func (g *game) draw() {
	surface := g.canvas.Surface()

	// Dashed center line.
	for y := 0; y < screenHeight; y += 30 {
		vector.DrawFilledRect(surface, screenWidth/2-2, float32(y), 4, 15, darkGray, false)
	}

	ebitenutil.DebugPrintAt(surface, fmt.Sprintf("%d", g.playerScore), screenWidth/4, 30)
	ebitenutil.DebugPrintAt(surface, fmt.Sprintf("%d", g.aiScore), 3*screenWidth/4, 30)

	g.player.Draw(surface)
	g.aiPaddle.Draw(surface)
	g.ball.Draw(surface)

	if g.gameOver {
		msg := "AI WINS!"
		if g.playerWon {
			msg = "YOU WIN!"
		}
		ebitenutil.DebugPrintAt(surface, msg, screenWidth/2-30, screenHeight/2-20)
		ebitenutil.DebugPrintAt(surface, "Press R to restart or ESC to quit", screenWidth/2-100, screenHeight/2+10)
	}
}
