package shooter

import (
	"image"

	"github.com/iburimskiy/projectile-simulation/internal/sim"
)

// Launcher turns a press-drag-release gesture into a launch. The press point
// is the anchor the ball spawns at; releasing fires it away from the cursor.
type Launcher struct {
	world    *sim.World
	anchor   image.Point
	cursor   image.Point
	dragging bool
}

func NewLauncher(world *sim.World) *Launcher {
	return &Launcher{world: world}
}

func (l *Launcher) Press(p image.Point) {
	l.anchor = p
	l.cursor = p
	l.dragging = true
}

func (l *Launcher) Move(p image.Point) {
	l.cursor = p
}

// Release ends the drag and launches a ball if a slot is free.
func (l *Launcher) Release() (int, bool) {
	if !l.dragging {
		return -1, false
	}
	l.dragging = false
	return l.world.Launch(toVec(l.anchor), toVec(l.cursor))
}

// Aiming reports whether the overlay should be drawn: a drag is in progress
// and the pool can take another ball.
func (l *Launcher) Aiming() bool {
	return l.dragging && l.world.Available()
}

func (l *Launcher) Anchor() image.Point { return l.anchor }
func (l *Launcher) Cursor() image.Point { return l.cursor }

// Drag is the distance between anchor and cursor.
func (l *Launcher) Drag() float64 {
	return toVec(l.cursor).Sub(toVec(l.anchor)).Len()
}

// Preview predicts the path of the ball the current drag would launch.
func (l *Launcher) Preview(steps int) []sim.Vec2 {
	return Trajectory(l.world.Config(), toVec(l.anchor), toVec(l.cursor), steps)
}

func toVec(p image.Point) sim.Vec2 {
	return sim.Vec2{X: float64(p.X), Y: float64(p.Y)}
}
