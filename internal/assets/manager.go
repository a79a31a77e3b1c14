package assets

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png" // Register PNG format
	"io"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/fatih/color"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"dodge/internal/synth"
)

// Sound names a one-shot cue.
type Sound int

const (
	SoundHit Sound = iota
	SoundPickup
	SoundFloor

	soundCount
)

var warnColor = color.New(color.FgYellow)

// Warnf reports a degraded asset on stderr without stopping the game.
func Warnf(format string, args ...any) {
	warnColor.Fprintf(color.Error, "warning: "+format+"\n", args...)
}

// Manager owns the texture and audio resources for one run. Everything is
// loaded once at startup; anything missing is reported and replaced.
type Manager struct {
	fsys fs.FS
	ctx  *audio.Context

	sfx       [soundCount][]byte
	sfxVolume float64
	music     *audio.Player
}

// New reads assets from dir. ctx may be nil to run without sound.
func New(dir string, ctx *audio.Context) *Manager {
	return NewFS(os.DirFS(dir), ctx)
}

func NewFS(fsys fs.FS, ctx *audio.Context) *Manager {
	return &Manager{fsys: fsys, ctx: ctx, sfxVolume: 1}
}

// LoadImage decodes a PNG into VRAM. It returns nil when the file is
// missing or unreadable; callers draw a plain shape instead.
func (m *Manager) LoadImage(name string) *ebiten.Image {
	if name == "" {
		return nil
	}
	fileData, err := fs.ReadFile(m.fsys, name)
	if err != nil {
		Warnf("texture %q not loaded: %v", name, err)
		return nil
	}

	img, _, err := image.Decode(bytes.NewReader(fileData))
	if err != nil {
		Warnf("texture %q not decoded: %v", name, err)
		return nil
	}

	return ebiten.NewImageFromImage(img)
}

// LoadSound decodes a WAV or MP3 cue, falling back to the synthesized
// tone when the file cannot be used.
func (m *Manager) LoadSound(s Sound, name string, fallback synth.Tone) {
	if m.ctx == nil {
		return
	}
	pcm, err := m.decode(name)
	if err != nil {
		Warnf("sound %q not loaded, using synthesized cue: %v", name, err)
		pcm = synth.Render(fallback, m.ctx.SampleRate())
	}
	m.sfx[s] = pcm
}

// LoadMusic prepares a looping background track. A missing track just
// means silence.
func (m *Manager) LoadMusic(name string, volume float64) {
	if m.ctx == nil || name == "" {
		return
	}
	stream, err := m.stream(name)
	if err != nil {
		Warnf("music %q not loaded: %v", name, err)
		return
	}
	loop := audio.NewInfiniteLoop(stream, stream.Length())
	player, err := m.ctx.NewPlayer(loop)
	if err != nil {
		Warnf("music %q not playable: %v", name, err)
		return
	}
	player.SetVolume(volume)
	m.music = player
}

// SetSFXVolume sets the gain for cues played from now on.
func (m *Manager) SetSFXVolume(v float64) { m.sfxVolume = v }

// Play starts a fresh player for s so overlapping cues do not cut
// each other off.
func (m *Manager) Play(s Sound) {
	if m.ctx == nil || len(m.sfx[s]) == 0 {
		return
	}
	p := m.ctx.NewPlayerFromBytes(m.sfx[s])
	p.SetVolume(m.sfxVolume)
	p.Play()
}

func (m *Manager) PlayMusic() {
	if m.music != nil && !m.music.IsPlaying() {
		m.music.Play()
	}
}

func (m *Manager) PauseMusic() {
	if m.music != nil {
		m.music.Pause()
	}
}

// RestartMusic rewinds the track for a new run.
func (m *Manager) RestartMusic() {
	if m.music == nil {
		return
	}
	if err := m.music.Rewind(); err != nil {
		Warnf("music rewind: %v", err)
	}
	m.music.Play()
}

// Close releases the audio players.
func (m *Manager) Close() error {
	if m.music != nil {
		return m.music.Close()
	}
	return nil
}

type lengthStream interface {
	io.ReadSeeker
	Length() int64
}

func (m *Manager) stream(name string) (lengthStream, error) {
	if name == "" {
		return nil, fmt.Errorf("no file configured")
	}
	data, err := fs.ReadFile(m.fsys, name)
	if err != nil {
		return nil, err
	}

	sr := m.ctx.SampleRate()
	switch strings.ToLower(path.Ext(name)) {
	case ".wav":
		return wav.DecodeWithSampleRate(sr, bytes.NewReader(data))
	case ".mp3":
		return mp3.DecodeWithSampleRate(sr, bytes.NewReader(data))
	}
	return nil, fmt.Errorf("unsupported audio format %q", path.Ext(name))
}

func (m *Manager) decode(name string) ([]byte, error) {
	s, err := m.stream(name)
	if err != nil {
		return nil, err
	}
	pcm, err := io.ReadAll(s)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return pcm, nil
}
