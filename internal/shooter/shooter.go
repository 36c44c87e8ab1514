// Package shooter computes what the launcher overlay shows while the user
// drags: the power gradient, the dotted aim line and the predicted path.
package shooter

import (
	"image"
	"image/color"

	"github.com/iburimskiy/projectile-simulation/internal/sim"
)

// PowerColor fades from green to red as the drag approaches maxDrag.
func PowerColor(drag, maxDrag float64) color.RGBA {
	n := normalize(drag, maxDrag)
	s := n * n
	return color.RGBA{
		R: uint8(255 * s),
		G: uint8(255 * (1 - s)),
		B: 0,
		A: 255,
	}
}

func normalize(v, limit float64) float64 {
	if limit <= 0 {
		return 1
	}
	return clamp01(v / limit)
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

// DottedLine walks the pixel line from a to b and returns every step-th
// point, starting with a.
func DottedLine(a, b image.Point, step int) []image.Point {
	if step < 1 {
		step = 1
	}
	dx, dy := abs(b.X-a.X), abs(b.Y-a.Y)
	sx, sy := 1, 1
	if a.X > b.X {
		sx = -1
	}
	if a.Y > b.Y {
		sy = -1
	}
	err := dx - dy

	var out []image.Point
	p := a
	for n := 0; ; n++ {
		if n%step == 0 {
			out = append(out, p)
		}
		if p == b {
			break
		}
		e2 := err * 2
		if e2 > -dy {
			err -= dy
			p.X += sx
		}
		if e2 < dx {
			err += dx
			p.Y += sy
		}
	}
	return out
}

// Trajectory predicts where a ball launched from origin away from pointer
// will be over the next steps frames, ignoring other balls. It stops early
// once the ball would settle.
func Trajectory(cfg sim.Config, origin, pointer sim.Vec2, steps int) []sim.Vec2 {
	b := sim.Ball{
		Pos:     origin,
		Vel:     cfg.LaunchVelocity(origin, pointer),
		Visible: true,
	}
	out := make([]sim.Vec2, 0, steps)
	for i := 0; i < steps; i++ {
		cfg.Integrate(&b)
		cfg.Walls(&b)
		out = append(out, b.Pos)
		if b.Idle {
			break
		}
	}
	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
