package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"gopkg.in/ini.v1"

	"dodge/internal/highscore"
	"dodge/internal/world"
)

const DefaultFile = "dodge.ini"

// --- Settings Structure ---
type WindowSettings struct {
	Title     string `ini:"title"`
	Width     int    `ini:"width"`
	Height    int    `ini:"height"`
	MinWidth  int    `ini:"min_width"`
	MinHeight int    `ini:"min_height"`
}

type GameSettings struct {
	Variant string `ini:"variant"`
	TPS     int    `ini:"tps"`
	Seed    int64  `ini:"seed"`
}

type AssetSettings struct {
	Dir            string `ini:"dir"`
	PowerUpTexture string `ini:"powerup_texture"`
	HitSound       string `ini:"hit_sound"`
	PickupSound    string `ini:"pickup_sound"`
	FloorSound     string `ini:"floor_sound"`
	Music          string `ini:"music"`
}

type StorageSettings struct {
	HighScoreFile string `ini:"highscore_file"`
}

type AudioSettings struct {
	Enabled     bool    `ini:"enabled"`
	SFXVolume   float64 `ini:"sfx_volume"`
	MusicVolume float64 `ini:"music_volume"`
}

// Settings is everything read from dodge.ini.
type Settings struct {
	Window  WindowSettings
	Game    GameSettings
	Assets  AssetSettings
	Storage StorageSettings
	Audio   AudioSettings
}

func Default() *Settings {
	return &Settings{
		Window: WindowSettings{
			Title:     "Dodge Game",
			Width:     world.DefaultWidth,
			Height:    world.DefaultHeight,
			MinWidth:  world.MinWidth,
			MinHeight: world.MinHeight,
		},
		Game: GameSettings{
			Variant: world.Deluxe.String(),
			TPS:     60,
		},
		Assets: AssetSettings{
			Dir:            "assets",
			PowerUpTexture: "powerup.png",
			HitSound:       "hit.wav",
			PickupSound:    "pickup.wav",
			FloorSound:     "floor.wav",
			Music:          "music.mp3",
		},
		Storage: StorageSettings{
			HighScoreFile: highscore.DefaultFile,
		},
		Audio: AudioSettings{
			Enabled:     true,
			SFXVolume:   0.8,
			MusicVolume: 0.4,
		},
	}
}

type section struct {
	name string
	dst  any
}

// sections pairs each ini section with the struct it maps to, in file order.
func (s *Settings) sections() []section {
	return []section{
		{"window", &s.Window},
		{"game", &s.Game},
		{"assets", &s.Assets},
		{"storage", &s.Storage},
		{"audio", &s.Audio},
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (*Settings, error) {
	s := Default()

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		s.Validate()
		return s, nil
	}

	f, err := ini.Load(path)
	if err != nil {
		return s, fmt.Errorf("load %s: %w", path, err)
	}
	for _, sec := range s.sections() {
		if err := f.Section(sec.name).MapTo(sec.dst); err != nil {
			return s, fmt.Errorf("load %s [%s]: %w", path, sec.name, err)
		}
	}

	s.Validate()
	return s, nil
}

// Save writes every setting to path.
func (s *Settings) Save(path string) error {
	f := ini.Empty()
	for _, sec := range s.sections() {
		if err := f.Section(sec.name).ReflectFrom(sec.dst); err != nil {
			return fmt.Errorf("save %s [%s]: %w", path, sec.name, err)
		}
	}
	if err := f.SaveTo(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides settings from DODGE_* environment variables.
// Unparsable values are ignored.
func (s *Settings) ApplyEnv() {
	if v := os.Getenv("DODGE_VARIANT"); v != "" {
		s.Game.Variant = v
	}
	if v := os.Getenv("DODGE_AUDIO_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			s.Audio.Enabled = b
		}
	}
	if v := os.Getenv("DODGE_HIGHSCORE_FILE"); v != "" {
		s.Storage.HighScoreFile = v
	}
	if v := os.Getenv("DODGE_ASSETS_DIR"); v != "" {
		s.Assets.Dir = v
	}
	s.Validate()
}

// Validate clamps values into usable ranges.
func (s *Settings) Validate() {
	s.Window.MinWidth = max(s.Window.MinWidth, world.MinWidth)
	s.Window.MinHeight = max(s.Window.MinHeight, world.MinHeight)
	s.Window.Width = max(s.Window.Width, s.Window.MinWidth)
	s.Window.Height = max(s.Window.Height, s.Window.MinHeight)
	if s.Window.Title == "" {
		s.Window.Title = "Dodge Game"
	}

	if s.Game.TPS <= 0 {
		s.Game.TPS = 60
	}
	if s.Storage.HighScoreFile == "" {
		s.Storage.HighScoreFile = highscore.DefaultFile
	}

	s.Audio.SFXVolume = clamp01(s.Audio.SFXVolume)
	s.Audio.MusicVolume = clamp01(s.Audio.MusicVolume)
}

// Variant parses the configured rule set.
func (s *Settings) Variant() (world.Variant, error) {
	return world.ParseVariant(s.Game.Variant)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
