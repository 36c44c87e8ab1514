package config

import (
	"errors"
	"os"
	"testing"

	"github.com/iburimskiy/projectile-simulation/internal/sim"
)

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg := Load()

	if cfg.WindowWidth != WindowWidth || cfg.WindowHeight != WindowHeight {
		t.Errorf("window = %dx%d, want %dx%d", cfg.WindowWidth, cfg.WindowHeight, WindowWidth, WindowHeight)
	}
	if cfg.MaxBalls != MaxBalls || cfg.TargetFPS != TargetFPS {
		t.Errorf("unexpected pool/fps defaults: %+v", cfg)
	}
	if !cfg.SoundEnabled || !cfg.TrajectoryPreview {
		t.Errorf("sound and preview should default on: %+v", cfg)
	}
}

func TestLoadOverridesFromEnvironment(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("WINDOW_WIDTH", "1024")
	t.Setenv("MAX_BALLS", "4")
	t.Setenv("GRAVITY", "3.5")
	t.Setenv("SOUND_ENABLED", "off")
	t.Setenv("TARGET_FPS", "sixty")

	cfg := Load()

	if cfg.WindowWidth != 1024 {
		t.Errorf("WindowWidth = %d, want 1024", cfg.WindowWidth)
	}
	if cfg.MaxBalls != 4 {
		t.Errorf("MaxBalls = %d, want 4", cfg.MaxBalls)
	}
	if cfg.Gravity != 3.5 {
		t.Errorf("Gravity = %v, want 3.5", cfg.Gravity)
	}
	if cfg.SoundEnabled {
		t.Error("SoundEnabled should be false")
	}
	if cfg.TargetFPS != TargetFPS {
		t.Errorf("malformed TARGET_FPS should fall back to %d, got %d", TargetFPS, cfg.TargetFPS)
	}
}

func TestSimulationMatchesWindow(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("WINDOW_HEIGHT", "480")

	s, err := Load().Simulation()
	if err != nil {
		t.Fatalf("Simulation: %v", err)
	}
	if s.Width != WindowWidth || s.Height != 480 || s.Capacity != MaxBalls {
		t.Errorf("unexpected simulation config %+v", s)
	}
}

func TestSimulationRejectsBadOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("BALL_BOUNCE", "1.8")

	if _, err := Load().Simulation(); !errors.Is(err, sim.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains: it changes
// the working directory for the duration of the test and restores it after.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
