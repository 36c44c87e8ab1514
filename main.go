package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/projectile-simulation/internal/config"
	"github.com/iburimskiy/projectile-simulation/internal/game"
	"github.com/iburimskiy/projectile-simulation/internal/sim"
	"github.com/iburimskiy/projectile-simulation/internal/sound"
)

func main() {
	log.SetPrefix("[projectile] ")

	if err := run(config.Load()); err != nil {
		log.Printf("fatal: %v", err)
		if derr := zenity.Error(err.Error(), zenity.Title(config.WindowTitle)); derr != nil {
			log.Printf("error dialog: %v", derr)
		}
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	simCfg, err := cfg.Simulation()
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	world, err := sim.NewWorld(simCfg)
	if err != nil {
		return fmt.Errorf("create world: %w", err)
	}

	var player *sound.Player
	if cfg.SoundEnabled {
		player, err = sound.Start(cfg.SoundVolume)
		if err != nil {
			log.Printf("sound disabled: %v", err)
		}
	}
	defer player.Stop()

	ebiten.SetWindowSize(cfg.WindowWidth, cfg.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetTPS(cfg.TargetFPS)

	log.Printf("starting %dx%d, %d balls at %d tps", cfg.WindowWidth, cfg.WindowHeight, cfg.MaxBalls, cfg.TargetFPS)
	if err := ebiten.RunGame(game.New(cfg, world, player)); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
