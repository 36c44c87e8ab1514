package sim

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidConfig = errors.New("invalid simulation config")

// Config holds every tunable of the simulation. Velocities are expressed in
// world units per frame; only Gravity is scaled by the frame time.
type Config struct {
	Width  float64
	Height float64

	Capacity       int
	Radius         float64
	Speed          float64
	IdleLifetimeMS int

	// Drags longer than DistanceThreshold get a super-linear speed boost.
	DistanceThreshold float64
	DistanceExponent  float64

	Gravity  float64
	Bounce   float64
	Friction float64

	TargetFPS int

	// Below these speeds a ball resting on the floor settles.
	RestSpeedY float64
	RestSpeedX float64
}

func DefaultConfig() Config {
	return Config{
		Width:             800,
		Height:            600,
		Capacity:          16,
		Radius:            12,
		Speed:             10,
		IdleLifetimeMS:    3000,
		DistanceThreshold: 200,
		DistanceExponent:  1.25,
		Gravity:           9.81,
		Bounce:            0.75,
		Friction:          0.95,
		TargetFPS:         60,
		RestSpeedY:        1.0,
		RestSpeedX:        0.0125,
	}
}

// FrameDelayMS is the whole number of milliseconds between ticks.
func (c Config) FrameDelayMS() int {
	return 1000 / c.TargetFPS
}

// FrameTime is the tick length in seconds.
func (c Config) FrameTime() float64 {
	return 1.0 / float64(c.TargetFPS)
}

func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: world size %vx%v", ErrInvalidConfig, c.Width, c.Height)
	case c.Capacity <= 0:
		return fmt.Errorf("%w: capacity %d", ErrInvalidConfig, c.Capacity)
	case c.Radius <= 0 || 2*c.Radius > c.Width || 2*c.Radius > c.Height:
		return fmt.Errorf("%w: radius %v", ErrInvalidConfig, c.Radius)
	case c.TargetFPS <= 0 || c.TargetFPS > 1000:
		return fmt.Errorf("%w: target fps %d", ErrInvalidConfig, c.TargetFPS)
	case c.IdleLifetimeMS <= 0:
		return fmt.Errorf("%w: idle lifetime %dms", ErrInvalidConfig, c.IdleLifetimeMS)
	case c.Bounce < 0 || c.Bounce > 1:
		return fmt.Errorf("%w: bounce %v", ErrInvalidConfig, c.Bounce)
	case c.Friction < 0 || c.Friction > 1:
		return fmt.Errorf("%w: friction %v", ErrInvalidConfig, c.Friction)
	}
	return nil
}

// PowerScale is the launch speed multiplier for a drag of the given length.
// It is exactly 1 up to threshold and grows as a power of the excess beyond it.
func PowerScale(distance, threshold, exponent float64) float64 {
	return 1 + math.Pow(math.Max(distance-threshold, 0)/100, exponent)
}

// LaunchVelocity returns the initial velocity of a ball dragged from origin to
// pointer. The ball flies away from the pointer, back past the origin.
// A zero-length drag yields a zero velocity.
func (c Config) LaunchVelocity(origin, pointer Vec2) Vec2 {
	drag := pointer.Sub(origin)
	dist := drag.Len()
	if dist == 0 {
		return Vec2{}
	}
	scale := PowerScale(dist, c.DistanceThreshold, c.DistanceExponent)
	return drag.Scale(-c.Speed * scale / dist)
}
