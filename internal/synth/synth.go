// Package synth renders short sound cues with beep so the game still has
// audio feedback when its sound files are missing.
package synth

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave defines oscillator wave shapes
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// Tone describes one cue.
type Tone struct {
	Freq     float64
	Sweep    float64 // Hz per second, negative falls
	Duration time.Duration
	Attack   time.Duration
	Release  time.Duration
	Wave     Wave
	Volume   float64 // 0..1
}

// Cues used when the matching file is missing.
var (
	Hit = Tone{Freq: 220, Sweep: -300, Duration: 350 * time.Millisecond,
		Attack: 5 * time.Millisecond, Release: 250 * time.Millisecond, Wave: WaveSaw, Volume: 0.7}
	Pickup = Tone{Freq: 660, Sweep: 1200, Duration: 180 * time.Millisecond,
		Attack: 10 * time.Millisecond, Release: 80 * time.Millisecond, Wave: WaveSquare, Volume: 0.5}
	Floor = Tone{Freq: 90, Duration: 80 * time.Millisecond,
		Attack: 2 * time.Millisecond, Release: 60 * time.Millisecond, Wave: WaveNoise, Volume: 0.25}
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	sweep    float64
	phase    float64
	duration int
	position int
	wave     Wave
	rate     beep.SampleRate
	rng      *rand.Rand
}

func newOscillator(t Tone, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     t.Freq,
		sweep:    t.Sweep,
		duration: rate.N(t.Duration),
		wave:     t.Wave,
		rate:     rate,
		rng:      rand.New(rand.NewSource(1)),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		freq := o.freq + o.sweep*float64(o.position)/float64(o.rate)
		if freq < 20 {
			freq = 20
		}
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies attack/release shaping to a stream
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func newEnvelope(s beep.Streamer, t Tone, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(t.Attack),
		release:  rate.N(t.Release),
		total:    rate.N(t.Duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.total - e.position; e.release > 0 && remaining < e.release {
			vol = math.Min(vol, float64(remaining)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume maps a linear 0..1 gain onto effects.Volume, silencing 0
// since log2(0) is -Inf.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Streamer builds the beep pipeline for t.
func Streamer(t Tone, sampleRate int) beep.Streamer {
	rate := beep.SampleRate(sampleRate)
	return newVolume(newEnvelope(newOscillator(t, rate), t, rate), t.Volume)
}

// Render plays t into signed 16-bit little-endian stereo PCM, the format
// ebiten's audio players take.
func Render(t Tone, sampleRate int) []byte {
	s := Streamer(t, sampleRate)
	out := make([]byte, 0, beep.SampleRate(sampleRate).N(t.Duration)*4)

	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			for _, v := range frame {
				v = math.Max(-1, math.Min(1, v))
				sample := int16(v * math.MaxInt16)
				out = append(out, byte(sample), byte(sample>>8))
			}
		}
		if !ok || n < len(buf) {
			break
		}
	}
	return out
}
