// Package sound turns simulation events into short generated tones.
package sound

import (
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"gscroll/sim"
)

const sampleRate = beep.SampleRate(44100)

// toneErrOnce keeps a bad tone from logging on every event.
var toneErrOnce sync.Once

type Config struct {
	Muted bool
}

// Player mixes event tones onto the speaker. A nil or muted Player is silent.
type Player struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	enabled bool
}

func New(cfg Config) (*Player, error) {
	p := &Player{mixer: &beep.Mixer{}}
	if cfg.Muted {
		return p, nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.enabled = true
	return p, nil
}

func (p *Player) Play(ev sim.Event) {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.enabled {
		return
	}
	s := Effect(ev.Kind, sampleRate)
	if s == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

func (p *Player) Close() {
	if p == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.enabled {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.enabled = false
}

// Effect builds the finite tone for an event kind, or nil if the event is
// silent.
func Effect(kind sim.EventKind, rate beep.SampleRate) beep.Streamer {
	switch kind {
	case sim.EventShot:
		return volume(tone(rate, 880, 40*time.Millisecond), -1.5)
	case sim.EventEnemyHit:
		return volume(noise(rate, 120*time.Millisecond), -2)
	case sim.EventEnemyDead:
		return volume(tone(rate, 220, 80*time.Millisecond), -1)
	case sim.EventWon:
		return beep.Seq(
			tone(rate, 523.25, 120*time.Millisecond),
			tone(rate, 659.25, 120*time.Millisecond),
			tone(rate, 783.99, 240*time.Millisecond),
		)
	case sim.EventLost:
		return beep.Seq(
			tone(rate, 392, 150*time.Millisecond),
			tone(rate, 311.13, 150*time.Millisecond),
			tone(rate, 261.63, 300*time.Millisecond),
		)
	}
	return nil
}

func tone(rate beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		toneErrOnce.Do(func() {
			log.Printf("sound: %.2f Hz tone at %d Hz, playing silence: %v", freq, rate, err)
		})
		return beep.Silence(rate.N(d))
	}
	return beep.Take(rate.N(d), sine)
}

func noise(rate beep.SampleRate, d time.Duration) beep.Streamer {
	remaining := rate.N(d)
	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		if remaining <= 0 {
			return 0, false
		}
		for i := range samples {
			if remaining == 0 {
				return i, true
			}
			v := rand.Float64()*2 - 1
			samples[i][0] = v
			samples[i][1] = v
			remaining--
		}
		return len(samples), true
	})
}

func volume(s beep.Streamer, v float64) beep.Streamer {
	return &effects.Volume{Streamer: s, Base: 2, Volume: v, Silent: false}
}
