// Package targets is a timed target-shooting game: click targets before they
// shrink away, chain hits for a combo multiplier, and clear each round before
// the clock runs out. Rounds are defined in an embedded YAML file.
//
// Controls: left click shoots, R restarts after a round ends, Escape quits.
package targets

import (
	_ "embed"
	"fmt"
	"image/color"
	"math"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"gopkg.in/yaml.v3"

	"github.com/rkeys/easygame"
)

const (
	screenWidth  = 800
	screenHeight = 600
	fps          = 60

	uiMargin        = 80 // keep targets clear of the score/timer
	comboMultiplier = 0.1
	comboCap        = 3.0
	basePoints      = 10
	bonusPoints     = 40
)

var (
	ringRed   = color.RGBA{220, 60, 60, 255}
	ringWhite = color.RGBA{255, 255, 255, 255}
	crosshair = color.RGBA{200, 200, 200, 255}
)

//go:embed rounds.yaml
var roundsYAML []byte

// Round is one timed stage of the game, loaded from rounds.yaml.
type Round struct {
	Name          string  `yaml:"name"`
	Duration      float64 `yaml:"duration_seconds"`
	MaxTargets    int     `yaml:"max_targets"`
	SpawnInterval int     `yaml:"spawn_interval_frames"`
	SizeMax       int     `yaml:"target_size_max"`
	SizeMin       int     `yaml:"target_size_min"`
	ShrinkRate    float64 `yaml:"shrink_rate"`
}

type roundsFile struct {
	Rounds []Round `yaml:"rounds"`
}

// LoadRounds parses round definitions and validates the fields a round cannot
// run without.
func LoadRounds(data []byte) ([]Round, error) {
	var f roundsFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse rounds: %w", err)
	}
	if len(f.Rounds) == 0 {
		return nil, fmt.Errorf("parse rounds: no rounds defined")
	}
	for i, r := range f.Rounds {
		if r.Duration <= 0 {
			return nil, fmt.Errorf("parse rounds: round %d (%s): duration must be positive", i, r.Name)
		}
		if r.SizeMin <= 0 || r.SizeMax <= r.SizeMin {
			return nil, fmt.Errorf("parse rounds: round %d (%s): bad size range %d..%d", i, r.Name, r.SizeMin, r.SizeMax)
		}
		if r.MaxTargets <= 0 || r.SpawnInterval <= 0 || r.ShrinkRate <= 0 {
			return nil, fmt.Errorf("parse rounds: round %d (%s): counts and rates must be positive", i, r.Name)
		}
	}
	return f.Rounds, nil
}

// target is a shrinking circular target. The collider keeps its spawn
// footprint; the current diameter lives in its own field and hit detection
// is circular against it, not box-based.
type target struct {
	*easygame.Character
	diameter float64
	round    *Round
}

func newTarget(x, y int, round *Round) *target {
	c := easygame.NewCharacter(easygame.Point{X: x, Y: y}, round.SizeMax)
	c.Collider.SetCenter(x, y)
	return &target{Character: c, diameter: float64(round.SizeMax), round: round}
}

// update shrinks the target one tick and reports whether it is still big
// enough to stay in play.
func (t *target) update() bool {
	t.diameter -= t.round.ShrinkRate
	return t.diameter >= float64(t.round.SizeMin)
}

// points scales with how far the target has shrunk: small targets pay more.
func (t *target) points() int {
	span := float64(t.round.SizeMax - t.round.SizeMin)
	ratio := 1 - (t.diameter-float64(t.round.SizeMin))/span
	return basePoints + int(ratio*bonusPoints)
}

// containsPoint does circular hit detection against the current diameter.
func (t *target) containsPoint(x, y int) bool {
	cx, cy := t.Collider.Center()
	return math.Hypot(float64(x-cx), float64(y-cy)) <= t.diameter/2
}

// draw renders concentric rings, dropping inner rings as the target shrinks.
func (t *target) draw(surface *ebiten.Image) {
	cx, cy := t.Collider.Center()
	x, y := float32(cx), float32(cy)
	r := float32(t.diameter / 2)

	vector.DrawFilledCircle(surface, x, y, r, ringRed, false)
	if r > 10 {
		vector.DrawFilledCircle(surface, x, y, r*0.65, ringWhite, false)
	}
	if r > 15 {
		vector.DrawFilledCircle(surface, x, y, r*0.35, ringRed, false)
	}
	if r > 20 {
		vector.DrawFilledCircle(surface, x, y, r*0.15, ringWhite, false)
	}
}

// hitEffect is a floating score popup that drifts up and fades out.
type hitEffect struct {
	x, y     int
	text     string
	lifetime int
}

func (e *hitEffect) update() bool {
	e.lifetime--
	e.y -= 2
	return e.lifetime > 0
}

// score tracks points, streaks, and accuracy within a round.
type score struct {
	points   int
	combo    int
	maxCombo int
	hits     int
	misses   int
}

// registerHit applies the combo multiplier and returns the points earned.
func (s *score) registerHit(base int) int {
	s.hits++
	s.combo++
	s.maxCombo = max(s.maxCombo, s.combo)

	multiplier := math.Min(1+float64(s.combo)*comboMultiplier, comboCap)
	earned := int(float64(base) * multiplier)
	s.points += earned
	return earned
}

func (s *score) registerMiss() {
	s.misses++
	s.combo = 0
}

// accuracy is the hit percentage, 0 when nothing has been shot at.
func (s *score) accuracy() float64 {
	total := s.hits + s.misses
	if total == 0 {
		return 0
	}
	return float64(s.hits) / float64(total) * 100
}

type game struct {
	canvas *easygame.Canvas
	mouse  *easygame.MouseController
	rng    *rand.Rand

	rounds   []Round
	roundIdx int

	targets []*target
	effects []*hitEffect
	score   score

	timeLeft   float64
	spawnTimer int
	clickLatch bool
	gameOver   bool
	highScore  int
}

// Run starts the game and blocks until the window is closed.
func Run() error {
	rounds, err := LoadRounds(roundsYAML)
	if err != nil {
		return err
	}

	ctx := easygame.NewContext()
	canvas := easygame.NewCanvas(ctx,
		easygame.Size{Width: screenWidth, Height: screenHeight},
		easygame.Color{R: 20, G: 25, B: 35})
	engine := easygame.NewEngine(ctx, "Target Practice", fps, canvas)

	g := &game{
		canvas: canvas,
		mouse:  easygame.NewMouseController(),
		rng:    rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		rounds: rounds,
	}
	g.startRound(0)

	return engine.Run(g.frame)
}

func (g *game) round() *Round { return &g.rounds[g.roundIdx] }

func (g *game) startRound(idx int) {
	g.roundIdx = idx
	g.timeLeft = g.round().Duration
	g.targets = g.targets[:0]
	g.effects = g.effects[:0]
	g.spawnTimer = 0
	g.gameOver = false
}

// spawnTarget picks a spot that keeps clear of existing targets and the UI.
// It gives up after a bounded number of attempts when the field is crowded.
func (g *game) spawnTarget() *target {
	r := g.round()
	margin := r.SizeMax
	for attempt := 0; attempt < 20; attempt++ {
		x := margin + g.rng.IntN(screenWidth-2*margin)
		y := margin + uiMargin + g.rng.IntN(screenHeight-2*margin-uiMargin)

		tooClose := false
		for _, t := range g.targets {
			cx, cy := t.Collider.Center()
			if math.Hypot(float64(x-cx), float64(y-cy)) < float64(r.SizeMax)*1.5 {
				tooClose = true
				break
			}
		}
		if !tooClose {
			return newTarget(x, y, r)
		}
	}
	return nil
}

func (g *game) frame() {
	if g.gameOver {
		if ebiten.IsKeyPressed(ebiten.KeyR) {
			g.score = score{}
			g.startRound(0)
		}
	} else {
		g.tick()
	}

	live := g.effects[:0]
	for _, e := range g.effects {
		if e.update() {
			live = append(live, e)
		}
	}
	g.effects = live

	g.draw()
}

func (g *game) tick() {
	g.timeLeft -= 1.0 / fps
	if g.timeLeft <= 0 {
		g.timeLeft = 0
		if g.roundIdx+1 < len(g.rounds) {
			g.startRound(g.roundIdx + 1)
		} else {
			g.gameOver = true
			g.highScore = max(g.highScore, g.score.points)
		}
		return
	}

	g.spawnTimer++
	if g.spawnTimer >= g.round().SpawnInterval && len(g.targets) < g.round().MaxTargets {
		g.spawnTimer = 0
		if t := g.spawnTarget(); t != nil {
			g.targets = append(g.targets, t)
		}
	}

	liveTargets := g.targets[:0]
	for _, t := range g.targets {
		if t.update() {
			liveTargets = append(liveTargets, t)
		}
	}
	g.targets = liveTargets

	// One shot per press: the latch clears when the button is released.
	pressed := g.mouse.IsLeftPressed()
	if pressed && !g.clickLatch {
		g.clickLatch = true
		g.shoot()
	}
	if !pressed {
		g.clickLatch = false
	}
}

func (g *game) shoot() {
	mx, my := g.mouse.Position()
	for i, t := range g.targets {
		if t.containsPoint(mx, my) {
			earned := g.score.registerHit(t.points())
			cx, cy := t.Collider.Center()
			g.effects = append(g.effects, &hitEffect{
				x: cx, y: cy, text: fmt.Sprintf("+%d", earned), lifetime: 30,
			})
			g.targets = append(g.targets[:i], g.targets[i+1:]...)
			return
		}
	}
	g.score.registerMiss()
	g.effects = append(g.effects, &hitEffect{x: mx, y: my, text: "MISS", lifetime: 30})
}

func (g *game) draw() {
	surface := g.canvas.Surface()

	for _, t := range g.targets {
		t.draw(surface)
	}
	for _, e := range g.effects {
		ebitenutil.DebugPrintAt(surface, e.text, e.x-10, e.y)
	}

	ebitenutil.DebugPrintAt(surface, fmt.Sprintf("SCORE %d", g.score.points), 20, 15)
	if g.score.combo > 1 {
		ebitenutil.DebugPrintAt(surface, fmt.Sprintf("%dx COMBO", g.score.combo), 20, 35)
	}
	ebitenutil.DebugPrintAt(surface,
		fmt.Sprintf("%s  %d:%02d", g.round().Name, int(g.timeLeft)/60, int(g.timeLeft)%60),
		screenWidth-140, 15)

	mx, my := g.mouse.Position()
	x, y := float32(mx), float32(my)
	vector.StrokeCircle(surface, x, y, 15, 2, crosshair, false)
	vector.StrokeLine(surface, x-20, y, x-8, y, 2, crosshair, false)
	vector.StrokeLine(surface, x+8, y, x+20, y, 2, crosshair, false)
	vector.StrokeLine(surface, x, y-20, x, y-8, 2, crosshair, false)
	vector.StrokeLine(surface, x, y+8, x, y+20, 2, crosshair, false)
	vector.DrawFilledCircle(surface, x, y, 2, crosshair, false)

	if g.gameOver {
		cy := screenHeight/2 - 60
		ebitenutil.DebugPrintAt(surface, "TIME'S UP!", screenWidth/2-35, cy)
		ebitenutil.DebugPrintAt(surface, fmt.Sprintf("Score: %d", g.score.points), screenWidth/2-35, cy+25)
		ebitenutil.DebugPrintAt(surface,
			fmt.Sprintf("Hits: %d | Misses: %d | Accuracy: %.1f%%",
				g.score.hits, g.score.misses, g.score.accuracy()),
			screenWidth/2-115, cy+50)
		ebitenutil.DebugPrintAt(surface, fmt.Sprintf("Max Combo: %dx", g.score.maxCombo), screenWidth/2-50, cy+75)
		ebitenutil.DebugPrintAt(surface, fmt.Sprintf("High Score: %d", g.highScore), screenWidth/2-50, cy+100)
		ebitenutil.DebugPrintAt(surface, "Press R to play again", screenWidth/2-65, cy+135)
	}
}
