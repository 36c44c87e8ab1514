package sim

import "math"

// EventKind identifies what a ball hit during a step.
type EventKind string

const (
	EventWall  EventKind = "wall"
	EventFloor EventKind = "floor"
	EventBall  EventKind = "ball"
)

// CollisionEvent records one impact of the last step, for sound playback.
type CollisionEvent struct {
	Kind  EventKind
	Slot  int
	Other int     // slot of the other ball, -1 for walls
	Speed float64 // impact speed along the contact normal
}

// Impact describes the wall contacts resolved by one Walls call.
type Impact struct {
	Side    bool // left or right wall
	Top     bool
	Floor   bool
	Speed   float64
	Settled bool
}

func (i Impact) Hit() bool {
	return i.Side || i.Top || i.Floor
}

// Integrate applies one frame of gravity and moves the ball by its velocity.
func (c Config) Integrate(b *Ball) {
	b.Vel.Y += c.Gravity * c.FrameTime()
	b.Pos = b.Pos.Add(b.Vel)
}

// Walls reflects the ball off any wall it has crossed and clamps it back
// inside the world. A ball bouncing on the floor with almost no vertical
// speed is slowed by floor friction and settles into idle once its
// horizontal speed is negligible.
func (c Config) Walls(b *Ball) Impact {
	var hit Impact

	if b.Pos.X < c.Radius || b.Pos.X > c.Width-c.Radius {
		hit.Side = true
		hit.Speed = math.Abs(b.Vel.X)
		b.Vel.X = -b.Vel.X * c.Bounce
		b.Pos.X = clamp(b.Pos.X, c.Radius, c.Width-c.Radius)
	}

	if b.Pos.Y < c.Radius || b.Pos.Y > c.Height-c.Radius {
		hit.Floor = b.Pos.Y > c.Height-c.Radius
		hit.Top = !hit.Floor
		hit.Speed = math.Max(hit.Speed, math.Abs(b.Vel.Y))
		b.Vel.Y = -b.Vel.Y * c.Bounce
		b.Pos.Y = clamp(b.Pos.Y, c.Radius, c.Height-c.Radius)

		if hit.Floor && math.Abs(b.Vel.Y) < c.RestSpeedY {
			b.Vel.X *= c.Friction
			if math.Abs(b.Vel.X) < c.RestSpeedX {
				b.Vel.X = 0
				b.Idle = true
				hit.Settled = true
			}
		}
	}

	return hit
}

// Step advances every occupied slot by one frame. Balls are processed in
// slot order and each sees the positions already updated this frame.
func (w *World) Step() {
	w.events = w.events[:0]
	delay := w.cfg.FrameDelayMS()

	for i := range w.balls {
		b := &w.balls[i]
		if !b.Visible {
			continue
		}

		if b.Idle {
			b.RemainingLifetime -= delay
			if b.RemainingLifetime <= delay {
				w.free(i)
			}
			continue
		}

		w.cfg.Integrate(b)
		w.collide(i)

		if hit := w.cfg.Walls(b); hit.Hit() {
			kind := EventWall
			if hit.Floor {
				kind = EventFloor
			}
			w.events = append(w.events, CollisionEvent{Kind: kind, Slot: i, Other: -1, Speed: hit.Speed})
		}
	}
}

// collide resolves overlaps between ball i and every other moving ball as an
// elastic collision of equal masses, then pushes the pair apart.
func (w *World) collide(i int) {
	b := &w.balls[i]
	minDist := 2 * w.cfg.Radius

	for j := range w.balls {
		if j == i {
			continue
		}
		o := &w.balls[j]
		if !o.Visible || o.Idle {
			continue
		}

		delta := o.Pos.Sub(b.Pos)
		dist := delta.Len()
		if dist >= minDist || dist == 0 {
			continue
		}

		n := delta.Scale(1 / dist)
		rv := o.Vel.Sub(b.Vel).Dot(n)
		if rv > 0 {
			continue
		}

		impulse := -(1 + w.cfg.Bounce) * rv / 2
		b.Vel = b.Vel.Sub(n.Scale(impulse * 0.5))
		o.Vel = o.Vel.Add(n.Scale(impulse * 0.5))

		push := 0.5 * (minDist - dist)
		b.Pos = b.Pos.Sub(n.Scale(push))
		o.Pos = o.Pos.Add(n.Scale(push))

		w.events = append(w.events, CollisionEvent{Kind: EventBall, Slot: i, Other: j, Speed: -rv})
	}
}

// Events returns the impacts of the last Step. The slice is reused by the
// next Step.
func (w *World) Events() []CollisionEvent {
	return w.events
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
