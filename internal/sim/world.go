package sim

import (
	"errors"
	"fmt"
)

var (
	ErrSlotOutOfRange = errors.New("slot out of range")
	ErrSlotOccupied   = errors.New("slot occupied")
)

// Ball is the state of one pool slot.
type Ball struct {
	Pos Vec2
	Vel Vec2

	Visible bool
	Idle    bool

	// RemainingLifetime counts down in milliseconds while the ball is idle.
	RemainingLifetime int
}

// BallState is the read-only view of an occupied slot handed to renderers.
type BallState struct {
	Slot              int
	Pos               Vec2
	Vel               Vec2
	Radius            float64
	Idle              bool
	RemainingLifetime int
}

// Alpha is the fade-out opacity in [0, 1]: fully opaque while the ball is
// in motion, shrinking linearly with the idle countdown.
func (s BallState) Alpha(idleLifetimeMS int) float64 {
	if !s.Idle || idleLifetimeMS <= 0 {
		return 1
	}
	a := 1 - float64(idleLifetimeMS-s.RemainingLifetime)/float64(idleLifetimeMS)
	switch {
	case a < 0:
		return 0
	case a > 1:
		return 1
	}
	return a
}

// World owns a fixed pool of ball slots and advances them one frame at a time.
// It is not safe for concurrent use.
type World struct {
	cfg    Config
	balls  []Ball
	events []CollisionEvent
}

func NewWorld(cfg Config) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	w := &World{
		cfg:    cfg,
		balls:  make([]Ball, cfg.Capacity),
		events: make([]CollisionEvent, 0, cfg.Capacity),
	}
	w.Reset()
	return w, nil
}

func (w *World) Config() Config {
	return w.cfg
}

// Reset frees every slot.
func (w *World) Reset() {
	for i := range w.balls {
		w.free(i)
	}
	w.events = w.events[:0]
}

func (w *World) free(i int) {
	w.balls[i] = Ball{RemainingLifetime: w.cfg.IdleLifetimeMS}
}

// FindFreeSlot returns the lowest index whose ball is not visible.
func (w *World) FindFreeSlot() (int, bool) {
	for i := range w.balls {
		if !w.balls[i].Visible {
			return i, true
		}
	}
	return -1, false
}

func (w *World) Available() bool {
	_, ok := w.FindFreeSlot()
	return ok
}

// Active returns the number of occupied slots.
func (w *World) Active() int {
	n := 0
	for i := range w.balls {
		if w.balls[i].Visible {
			n++
		}
	}
	return n
}

// LaunchAt places a ball in the given free slot at origin and fires it away
// from pointer. A zero-length drag leaves the ball at rest, to be picked up
// by gravity on the next step.
func (w *World) LaunchAt(slot int, origin, pointer Vec2) error {
	if slot < 0 || slot >= len(w.balls) {
		return fmt.Errorf("launch slot %d of %d: %w", slot, len(w.balls), ErrSlotOutOfRange)
	}
	if w.balls[slot].Visible {
		return fmt.Errorf("launch slot %d: %w", slot, ErrSlotOccupied)
	}

	w.balls[slot] = Ball{
		Pos:               origin,
		Vel:               w.cfg.LaunchVelocity(origin, pointer),
		Visible:           true,
		RemainingLifetime: w.cfg.IdleLifetimeMS,
	}
	return nil
}

// Launch fires a ball from the first free slot. It reports false, leaving
// the pool untouched, when every slot is occupied.
func (w *World) Launch(origin, pointer Vec2) (int, bool) {
	slot, ok := w.FindFreeSlot()
	if !ok {
		return -1, false
	}
	if err := w.LaunchAt(slot, origin, pointer); err != nil {
		return -1, false
	}
	return slot, true
}

// Ball returns a copy of the ball in slot.
func (w *World) Ball(slot int) (Ball, bool) {
	if slot < 0 || slot >= len(w.balls) {
		return Ball{}, false
	}
	return w.balls[slot], true
}

// Balls returns the state of every occupied slot in slot order.
func (w *World) Balls() []BallState {
	out := make([]BallState, 0, len(w.balls))
	for i, b := range w.balls {
		if !b.Visible {
			continue
		}
		out = append(out, BallState{
			Slot:              i,
			Pos:               b.Pos,
			Vel:               b.Vel,
			Radius:            w.cfg.Radius,
			Idle:              b.Idle,
			RemainingLifetime: b.RemainingLifetime,
		})
	}
	return out
}
