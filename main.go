package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"dodge/internal/assets"
	"dodge/internal/config"
)

const SampleRate = 44100

func main() {
	configPath := flag.String("config", config.DefaultFile, "settings file")
	variant := flag.String("variant", "", "rule set: classic, scaled or deluxe")
	seed := flag.Int64("seed", 0, "random seed (0 = clock)")
	mute := flag.Bool("mute", false, "disable sound")
	writeConfig := flag.Bool("write-config", false, "write the effective settings to -config and exit")
	flag.Parse()

	// 1. Settings
	settings, err := config.Load(*configPath)
	if err != nil {
		assets.Warnf("%v; using defaults", err)
	}
	settings.ApplyEnv()
	if *variant != "" {
		settings.Game.Variant = *variant
	}
	if *seed != 0 {
		settings.Game.Seed = *seed
	}
	if *mute {
		settings.Audio.Enabled = false
	}
	if *writeConfig {
		if err := settings.Save(*configPath); err != nil {
			log.Fatal(err)
		}
		log.Printf("wrote %s", *configPath)
		return
	}

	v, err := settings.Variant()
	if err != nil {
		log.Fatal(err)
	}

	// 2. Window Setup
	ebiten.SetWindowSize(settings.Window.Width, settings.Window.Height)
	ebiten.SetWindowTitle(settings.Window.Title)
	ebiten.SetTPS(settings.Game.TPS)
	if v.Features().Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
		ebiten.SetWindowSizeLimits(settings.Window.MinWidth, settings.Window.MinHeight, -1, -1)
	}

	// 3. Initialize Game
	var ctx *audio.Context
	if settings.Audio.Enabled && v.Features().Sound {
		ctx = audio.NewContext(SampleRate)
	}
	game := NewGame(settings, v, ctx)
	defer game.Close()

	// 4. Run Loop
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
