package sound

import (
	"math"
	"sync"
	"time"

	"github.com/faiface/beep"
)

const (
	clickLength = 60 * time.Millisecond
	clickDecay  = 60.0
	// Impacts at or above this speed play at full volume.
	loudSpeed = 12.0
)

type voice struct {
	freq float64
	amp  float64
	pos  int
	n    int
}

// Mixer is an endless beep.Streamer summing short decaying clicks. Clicks are
// queued from the game loop while the speaker goroutine streams, so all
// access goes through mu.
type Mixer struct {
	sampleRate beep.SampleRate
	volume     float64
	maxVoices  int

	mu     sync.Mutex
	voices []voice
}

func NewMixer(sr beep.SampleRate, volume float64, maxVoices int) *Mixer {
	return &Mixer{
		sampleRate: sr,
		volume:     clamp01(volume),
		maxVoices:  maxVoices,
		voices:     make([]voice, 0, maxVoices),
	}
}

// Click queues one impact sound. Harder impacts are louder; clicks beyond the
// voice limit are dropped.
func (m *Mixer) Click(freq, speed float64) {
	amp := m.volume * clamp01(speed/loudSpeed)
	if amp == 0 {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.voices) >= m.maxVoices {
		return
	}
	m.voices = append(m.voices, voice{freq: freq, amp: amp, n: m.sampleRate.N(clickLength)})
}

// Playing returns the number of clicks still sounding.
func (m *Mixer) Playing() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.voices)
}

func (m *Mixer) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		samples[i] = [2]float64{}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	rate := float64(m.sampleRate)
	live := m.voices[:0]
	for _, v := range m.voices {
		for i := range samples {
			if v.pos >= v.n {
				break
			}
			t := float64(v.pos) / rate
			s := v.amp * math.Exp(-t*clickDecay) * math.Sin(2*math.Pi*v.freq*t)
			samples[i][0] += s
			samples[i][1] += s
			v.pos++
		}
		if v.pos < v.n {
			live = append(live, v)
		}
	}
	m.voices = live

	return len(samples), true
}

func (m *Mixer) Err() error { return nil }

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
