// Package sound plays a short click for every impact reported by the
// simulation.
package sound

import (
	"fmt"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/projectile-simulation/internal/sim"
)

const (
	sampleRate = beep.SampleRate(44100)
	maxVoices  = 32

	// Impacts slower than this are resting contacts, not worth a click.
	minSpeed = 0.5
)

var pitch = map[sim.EventKind]float64{
	sim.EventWall:  330,
	sim.EventFloor: 220,
	sim.EventBall:  523,
}

type Player struct {
	mixer *Mixer
}

// Start opens the audio device and keeps a mixer playing on it.
func Start(volume float64) (*Player, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/20)); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	m := NewMixer(sampleRate, volume, maxVoices)
	speaker.Play(m)
	return &Player{mixer: m}, nil
}

// Play turns the impacts of one simulation step into clicks. A nil Player
// is silent.
func (p *Player) Play(events []sim.CollisionEvent) {
	if p == nil {
		return
	}
	for _, ev := range events {
		if ev.Speed < minSpeed {
			continue
		}
		p.mixer.Click(pitch[ev.Kind], ev.Speed)
	}
}

func (p *Player) Stop() {
	if p == nil {
		return
	}
	speaker.Lock()
	speaker.Clear()
	speaker.Unlock()
}
