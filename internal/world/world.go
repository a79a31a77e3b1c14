package world

import (
	"image/color"
	"math/rand"
	"time"

	"golang.org/x/image/colornames"

	"dodge/internal/entity"
)

// --- Constants ---
const (
	DefaultWidth  = 800
	DefaultHeight = 600
	MinWidth      = 400
	MinHeight     = 300

	PlayerSize     = 50.0
	PlayerSpeed    = 5.0 // px per tick
	playerFloorGap = 100.0

	ObstacleSize     = 40.0
	MaxObstacles     = 12
	SpawnEvery       = 10 // score points between pool spawns
	ObstacleMinSpeed = 3.0
	ObstacleMaxSpeed = 7.0

	PowerUpSize     = 30.0
	MaxPowerUps     = 3
	PowerUpInterval = 8.0 // seconds of play between spawns
	PowerUpLifetime = 7.0

	InvincibleDuration = 5.0
	SlowDuration       = 4.0
	ShrinkDuration     = 6.0
	SlowFactor         = 0.5
	ShrinkScale        = 0.5

	MaxEffects = 24
)

// --- Colors ---
var (
	ColPlayer = colornames.Royalblue

	obstaclePalette = []color.RGBA{
		colornames.Crimson,
		colornames.Dimgray,
		colornames.Darkorange,
		colornames.Purple,
		colornames.Maroon,
	}

	PowerUpColors = map[entity.PowerKind]color.RGBA{
		entity.PowerInvincible: colornames.Gold,
		entity.PowerSlowMotion: colornames.Deepskyblue,
		entity.PowerShrink:     colornames.Limegreen,
	}
)

// Input is the per-tick key state. Directions are held keys; Pause and
// Restart are edge-triggered presses.
type Input struct {
	Left, Right, Up, Down bool
	Pause                 bool
	Restart               bool
}

// Options configures a new World.
type Options struct {
	Width, Height float64
	Variant       Variant
	Seed          int64 // 0 seeds from the clock
	HighScore     int
}

// World is the whole game state for one window.
type World struct {
	Width, Height float64

	Player    entity.GameObject
	Obstacles [MaxObstacles]entity.GameObject
	PowerUps  [MaxPowerUps]entity.PowerUp
	Effects   [MaxEffects]entity.FloorHitEffect

	TimePlayed float64
	Score      int
	HighScore  int
	Difficulty float64

	GameOver bool
	Paused   bool

	variant  Variant
	features Features
	rng      *rand.Rand
	broad    *broadPhase
	events   Events

	nextSpawn    int
	powerUpClock float64

	invincibleLeft float64
	slowLeft       float64
	shrinkLeft     float64
}

// New builds a world ready for its first tick.
func New(opts Options) *World {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	w := &World{
		Width:     opts.Width,
		Height:    opts.Height,
		HighScore: opts.HighScore,
		variant:   opts.Variant,
		features:  opts.Variant.Features(),
		rng:       rand.New(rand.NewSource(seed)),
	}
	if w.Width < MinWidth {
		w.Width = MinWidth
	}
	if w.Height < MinHeight {
		w.Height = MinHeight
	}
	w.Reset()
	return w
}

// Variant returns the rule set the world runs.
func (w *World) Variant() Variant { return w.variant }

// Features returns the rules enabled for this world.
func (w *World) Features() Features { return w.features }

// Reset starts a fresh run. The high score survives.
func (w *World) Reset() {
	w.TimePlayed = 0
	w.Score = 0
	w.Difficulty = 1
	w.GameOver = false
	w.Paused = false
	w.nextSpawn = SpawnEvery
	w.powerUpClock = 0
	w.invincibleLeft = 0
	w.slowLeft = 0
	w.shrinkLeft = 0

	w.Player = entity.GameObject{
		Rect: entity.Rect{
			X: w.Width/2 - PlayerSize/2,
			Y: w.Height - playerFloorGap,
			W: PlayerSize,
			H: PlayerSize,
		},
		Speed:  entity.Vec2{X: PlayerSpeed, Y: PlayerSpeed},
		Color:  ColPlayer,
		Active: true,
	}
	w.Player.Rect = w.Player.Rect.ClampTo(w.Width, w.Height)

	w.Obstacles = [MaxObstacles]entity.GameObject{}
	w.Obstacles[0] = entity.GameObject{
		Rect:   entity.Rect{X: min(100, w.Width-ObstacleSize), W: ObstacleSize, H: ObstacleSize},
		Speed:  entity.Vec2{Y: 4},
		Color:  colornames.Crimson,
		Active: true,
	}
	w.Obstacles[1] = entity.GameObject{
		Rect:   entity.Rect{X: min(400, w.Width-ObstacleSize), W: ObstacleSize, H: ObstacleSize},
		Speed:  entity.Vec2{Y: 6},
		Color:  colornames.Dimgray,
		Active: true,
	}

	w.PowerUps = [MaxPowerUps]entity.PowerUp{}
	w.Effects = [MaxEffects]entity.FloorHitEffect{}
	w.rebuild()
}

// Phase derives the state from the running / paused / game-over flags.
func (w *World) Phase() Phase {
	switch {
	case w.GameOver:
		return PhaseGameOver
	case w.Paused:
		return PhasePaused
	}
	return PhaseRunning
}

// Invincible reports whether obstacle hits are currently ignored.
func (w *World) Invincible() bool { return w.invincibleLeft > 0 }

// EffectLeft returns the seconds left on the effect of kind k.
func (w *World) EffectLeft(k entity.PowerKind) float64 {
	switch k {
	case entity.PowerInvincible:
		return max(w.invincibleLeft, 0)
	case entity.PowerSlowMotion:
		return max(w.slowLeft, 0)
	case entity.PowerShrink:
		return max(w.shrinkLeft, 0)
	}
	return 0
}

// Step advances the game by one tick of dt seconds.
func (w *World) Step(in Input, dt float64) Events {
	w.events = 0

	// 1. Pause toggle
	if in.Pause && !w.GameOver {
		w.Paused = !w.Paused
		if w.Paused {
			w.events |= EventPaused
		} else {
			w.events |= EventResumed
		}
	}

	// 2. Restart
	if w.GameOver && in.Restart {
		w.Reset()
		return w.events | EventRestart
	}

	if w.Paused || w.GameOver {
		return w.events
	}

	// 3. Time, score, difficulty
	w.TimePlayed += dt
	w.Score = int(w.TimePlayed)
	if w.features.Difficulty {
		w.Difficulty = DifficultyFor(w.Score)
	}

	// 4. Player
	w.movePlayer(in)

	// 5. Obstacles and floor effects
	if w.features.Pool {
		w.spawnObstacles()
	}
	w.advanceObstacles()
	for i := range w.Effects {
		w.Effects[i].Update(dt)
	}

	// 6. Power-ups and their timers
	if w.features.PowerUps {
		w.updatePowerUps(dt)
	}
	w.tickTimers(dt)

	// 7. Collisions
	w.collide()

	// 8. High score
	if w.features.HighScore && w.Score > w.HighScore {
		w.HighScore = w.Score
		w.events |= EventNewHighScore
	}

	return w.events
}

// Resize adopts a new play area, keeping everything reachable.
func (w *World) Resize(width, height float64) {
	width = max(width, MinWidth)
	height = max(height, MinHeight)
	if width == w.Width && height == w.Height {
		return
	}
	w.Width, w.Height = width, height

	w.Player.Rect = w.Player.Rect.ClampTo(w.Width, w.Height)
	for i := range w.Obstacles {
		o := &w.Obstacles[i]
		if o.Rect.X+o.Rect.W > w.Width {
			o.Rect.X = w.Width - o.Rect.W
		}
		// the floor moved up past it; restart above the screen without a floor hit
		if o.Below(w.Height) {
			o.Rect.Y = -o.Rect.H
		}
	}
	for i := range w.PowerUps {
		p := &w.PowerUps[i]
		if p.Active {
			p.Rect = p.Rect.ClampTo(w.Width, w.Height)
		}
	}
	w.rebuild()
}

func (w *World) movePlayer(in Input) {
	p := &w.Player
	if in.Right && p.Rect.X+p.Rect.W < w.Width {
		p.Rect.X += p.Speed.X
	}
	if in.Left && p.Rect.X > 0 {
		p.Rect.X -= p.Speed.X
	}
	if in.Up && p.Rect.Y > 0 {
		p.Rect.Y -= p.Speed.Y
	}
	if in.Down && p.Rect.Y+p.Rect.H < w.Height {
		p.Rect.Y += p.Speed.Y
	}
	p.Rect = p.Rect.ClampTo(w.Width, w.Height)
}

func (w *World) tickTimers(dt float64) {
	if w.invincibleLeft > 0 {
		w.invincibleLeft -= dt
	}
	if w.slowLeft > 0 {
		w.slowLeft -= dt
	}
	if w.shrinkLeft > 0 {
		w.shrinkLeft -= dt
		if w.shrinkLeft <= 0 {
			w.Player.Rect = w.Player.Rect.Resize(PlayerSize, PlayerSize).ClampTo(w.Width, w.Height)
		}
	}
}

// apply grants the effect of a picked-up power-up.
func (w *World) apply(p *entity.PowerUp) {
	switch p.Kind {
	case entity.PowerInvincible:
		w.invincibleLeft = p.Duration
	case entity.PowerSlowMotion:
		w.slowLeft = p.Duration
	case entity.PowerShrink:
		if w.shrinkLeft <= 0 {
			size := PlayerSize * ShrinkScale
			w.Player.Rect = w.Player.Rect.Resize(size, size)
		}
		w.shrinkLeft = p.Duration
	}
}

func (w *World) randX(width float64) float64 {
	span := w.Width - width
	if span <= 0 {
		return 0
	}
	return w.rng.Float64() * span
}

func (w *World) randSpeed() float64 {
	return ObstacleMinSpeed + w.rng.Float64()*(ObstacleMaxSpeed-ObstacleMinSpeed)
}
