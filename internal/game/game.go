package game

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/projectile-simulation/internal/config"
	"github.com/iburimskiy/projectile-simulation/internal/shooter"
	"github.com/iburimskiy/projectile-simulation/internal/sim"
	"github.com/iburimskiy/projectile-simulation/internal/sound"
)

var (
	background   = color.RGBA{R: 64, G: 63, B: 64, A: 255}
	previewColor = color.NRGBA{R: 255, G: 255, B: 255, A: 60}
)

type Game struct {
	cfg      *config.Config
	world    *sim.World
	launcher *shooter.Launcher
	sound    *sound.Player

	// input edge detection
	prevKey map[ebiten.Key]bool

	paused bool
}

// New wires a world to ebiten. player may be nil to run muted.
func New(cfg *config.Config, world *sim.World, player *sound.Player) *Game {
	return &Game{
		cfg:      cfg,
		world:    world,
		launcher: shooter.NewLauncher(world),
		sound:    player,
		prevKey:  map[ebiten.Key]bool{},
	}
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	mouseX, mouseY := ebiten.CursorPosition()
	cursor := image.Pt(mouseX, mouseY)

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.launcher.Press(cursor)
	}
	g.launcher.Move(cursor)
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.launcher.Release()
	}

	if justPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if justPressed(ebiten.KeyR) {
		g.world.Reset()
	}
	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	if g.paused {
		return nil
	}
	g.world.Step()
	g.sound.Play(g.world.Events())

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	lifetime := g.world.Config().IdleLifetimeMS
	for _, b := range g.world.Balls() {
		a := uint8(255 * b.Alpha(lifetime))
		vector.DrawFilledCircle(screen, float32(b.Pos.X), float32(b.Pos.Y), float32(b.Radius), color.NRGBA{R: 255, G: 255, B: 255, A: a}, true)
	}

	if g.launcher.Aiming() {
		g.drawShooter(screen)
	}

	status := fmt.Sprintf("Balls: %d/%d  Drag to shoot, Space: pause, R: clear, Q: quit", g.world.Active(), g.cfg.MaxBalls)
	if g.paused {
		status = "Paused - " + status
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
}

func (g *Game) drawShooter(screen *ebiten.Image) {
	r := float32(g.world.Config().Radius)
	anchor, cursor := g.launcher.Anchor(), g.launcher.Cursor()

	if g.cfg.TrajectoryPreview {
		for _, p := range g.launcher.Preview(g.cfg.PreviewSteps) {
			vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), r/4, previewColor, true)
		}
	}

	// Quadratic falloff keeps short drags green for longer.
	power := shooter.PowerColor(g.launcher.Drag(), float64(g.cfg.WindowHeight))
	for _, p := range shooter.DottedLine(cursor, anchor, int(2*r)) {
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), r/2, power, true)
	}
	vector.DrawFilledCircle(screen, float32(anchor.X), float32(anchor.Y), r, power, true)
	vector.DrawFilledCircle(screen, float32(cursor.X), float32(cursor.Y), r*0.75, color.White, true)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.WindowWidth, g.cfg.WindowHeight
}
