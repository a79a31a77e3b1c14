package main

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"dodge/internal/assets"
	"dodge/internal/config"
	"dodge/internal/highscore"
	"dodge/internal/render"
	"dodge/internal/synth"
	"dodge/internal/world"
)

// Game holds global state
type Game struct {
	world    *world.World
	renderer *render.Renderer
	assets   *assets.Manager
	scores   *highscore.Store
	sound    bool
	debug    bool
	dt       float64
}

func NewGame(s *config.Settings, v world.Variant, ctx *audio.Context) *Game {
	f := v.Features()
	g := &Game{
		assets: assets.New(s.Assets.Dir, ctx),
		sound:  f.Sound && ctx != nil,
		dt:     1 / float64(s.Game.TPS),
	}

	// Persistence
	best := 0
	if f.HighScore {
		g.scores = highscore.NewStore(s.Storage.HighScoreFile)
		score, err := g.scores.Load()
		if err != nil {
			assets.Warnf("%v; starting from 0", err)
		}
		best = score
	}

	// Assets
	var tex *ebiten.Image
	if f.PowerUps {
		tex = g.assets.LoadImage(s.Assets.PowerUpTexture)
	}
	if g.sound {
		g.assets.SetSFXVolume(s.Audio.SFXVolume)
		g.assets.LoadSound(assets.SoundHit, s.Assets.HitSound, synth.Hit)
		g.assets.LoadSound(assets.SoundPickup, s.Assets.PickupSound, synth.Pickup)
		g.assets.LoadSound(assets.SoundFloor, s.Assets.FloorSound, synth.Floor)
		g.assets.LoadMusic(s.Assets.Music, s.Audio.MusicVolume)
		g.assets.PlayMusic()
	}

	g.renderer = render.New(tex)
	g.world = world.New(world.Options{
		Width:     float64(s.Window.Width),
		Height:    float64(s.Window.Height),
		Variant:   v,
		Seed:      s.Game.Seed,
		HighScore: best,
	})

	log.Printf("dodge: %s rules, high score %d", g.world.Variant(), best)
	return g
}

func readInput() world.Input {
	return world.Input{
		Left:    ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right:   ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Up:      ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW),
		Down:    ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS),
		Pause:   inpututil.IsKeyJustPressed(ebiten.KeyP),
		Restart: inpututil.IsKeyJustPressed(ebiten.KeyR),
	}
}

// Update: Logic (fixed TPS)
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.debug = !g.debug
	}

	ev := g.world.Step(readInput(), g.dt)
	g.handle(ev)
	return nil
}

// handle turns step events into sound and persistence.
func (g *Game) handle(ev world.Events) {
	if ev.Has(world.EventNewHighScore) && g.scores != nil {
		if err := g.scores.Save(g.world.HighScore); err != nil {
			assets.Warnf("%v", err)
		}
	}

	if !g.sound {
		return
	}
	switch {
	case ev.Has(world.EventGameOver):
		g.assets.Play(assets.SoundHit)
		g.assets.PauseMusic()
	case ev.Has(world.EventRestart):
		g.assets.RestartMusic()
	case ev.Has(world.EventPaused):
		g.assets.PauseMusic()
	case ev.Has(world.EventResumed):
		g.assets.PlayMusic()
	}
	if ev.Has(world.EventPowerUp) {
		g.assets.Play(assets.SoundPickup)
	}
	if ev.Has(world.EventFloorHit) {
		g.assets.Play(assets.SoundFloor)
	}
}

// Draw: Rendering (VSync)
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(screen, g.world)
	if g.debug {
		msg := fmt.Sprintf("TPS: %.0f  FPS: %.0f\n%s", ebiten.ActualTPS(), ebiten.ActualFPS(), g.world.DebugInfo())
		ebitenutil.DebugPrintAt(screen, msg, 10, int(g.world.Height)-74)
	}
}

// Layout: resizable rule sets follow the window, classic keeps its size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.world.Features().Resizable {
		g.world.Resize(float64(outsideWidth), float64(outsideHeight))
	}
	return int(g.world.Width), int(g.world.Height)
}

// Close releases audio resources.
func (g *Game) Close() {
	if err := g.assets.Close(); err != nil {
		log.Printf("close audio: %v", err)
	}
}
