package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/iburimskiy/projectile-simulation/internal/sim"
)

const (
	WindowTitle  = "Projectile Simulation"
	WindowWidth  = 800
	WindowHeight = 600
	TargetFPS    = 60

	MaxBalls = 16

	// Physics
	Gravity       = 9.81
	BallBounce    = 0.75
	FloorFriction = 0.95

	// Audio
	SoundVolume = 0.6

	// Shooter
	PreviewSteps = 90
)

type Config struct {
	WindowWidth  int
	WindowHeight int
	TargetFPS    int
	MaxBalls     int

	Gravity       float64
	BallBounce    float64
	FloorFriction float64

	SoundEnabled bool
	SoundVolume  float64

	TrajectoryPreview bool
	PreviewSteps      int
}

// Load reads overrides from the environment, after loading .env if present.
func Load() *Config {
	if err := godotenv.Load(); err == nil {
		log.Println("loaded settings from .env")
	}

	return &Config{
		WindowWidth:  getEnvInt("WINDOW_WIDTH", WindowWidth),
		WindowHeight: getEnvInt("WINDOW_HEIGHT", WindowHeight),
		TargetFPS:    getEnvInt("TARGET_FPS", TargetFPS),
		MaxBalls:     getEnvInt("MAX_BALLS", MaxBalls),

		Gravity:       getEnvFloat("GRAVITY", Gravity),
		BallBounce:    getEnvFloat("BALL_BOUNCE", BallBounce),
		FloorFriction: getEnvFloat("FLOOR_FRICTION", FloorFriction),

		SoundEnabled: getEnvBool("SOUND_ENABLED", true),
		SoundVolume:  getEnvFloat("SOUND_VOLUME", SoundVolume),

		TrajectoryPreview: getEnvBool("TRAJECTORY_PREVIEW", true),
		PreviewSteps:      getEnvInt("PREVIEW_STEPS", PreviewSteps),
	}
}

// Simulation builds the physics settings for a world matching the window.
func (c *Config) Simulation() (sim.Config, error) {
	s := sim.DefaultConfig()
	s.Width = float64(c.WindowWidth)
	s.Height = float64(c.WindowHeight)
	s.TargetFPS = c.TargetFPS
	s.Capacity = c.MaxBalls
	s.Gravity = c.Gravity
	s.Bounce = c.BallBounce
	s.Friction = c.FloorFriction
	if err := s.Validate(); err != nil {
		return sim.Config{}, err
	}
	return s, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
		log.Printf("ignoring %s=%q: not an integer", key, value)
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
		log.Printf("ignoring %s=%q: not a number", key, value)
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	switch strings.ToLower(getEnv(key, "")) {
	case "1", "true", "yes", "on":
		return true
	case "0", "false", "no", "off":
		return false
	}
	return defaultValue
}
