package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// ObstacleID identifies an obstacle for the lifetime of a run.
// IDs increase monotonically and are never reused.
type ObstacleID uint64

// Obstacle is one half of a gap pair. The two halves are independent
// after creation; collision and scoring look at each one alone.
type Obstacle struct {
	ID    ObstacleID
	Pos   core.Vec2
	HalfW float64
	HalfH float64
}

// Hitbox returns the collision box, shrunk from the sprite by the insets.
func (o Obstacle) Hitbox(insetX, insetY float64) core.Box {
	return core.NewBox(o.Pos, o.HalfW-insetX, o.HalfH-insetY)
}

// Hanging reports whether the obstacle hangs from the top of the screen.
func (o Obstacle) Hanging() bool {
	return o.Pos.Y > 0
}

// ObstacleField holds the live obstacles and scrolls them left.
type ObstacleField struct {
	obstacles   []Obstacle
	nextID      ObstacleID
	scrollSpeed float64
	halfW       float64
	halfH       float64
}

// NewObstacleField creates an empty field from configuration.
func NewObstacleField(obs config.FlappyObstacles, scrollSpeed float64) *ObstacleField {
	return &ObstacleField{
		obstacles:   make([]Obstacle, 0, 16),
		nextID:      1,
		scrollSpeed: scrollSpeed,
		halfW:       obs.Width / 2,
		halfH:       obs.Height / 2,
	}
}

// SpawnPair adds two obstacles sharing x, one centered at topY and one at bottomY.
func (f *ObstacleField) SpawnPair(x, topY, bottomY float64) (top, bottom Obstacle) {
	top = f.add(core.Vec2{X: x, Y: topY})
	bottom = f.add(core.Vec2{X: x, Y: bottomY})
	return top, bottom
}

func (f *ObstacleField) add(pos core.Vec2) Obstacle {
	o := Obstacle{
		ID:    f.nextID,
		Pos:   pos,
		HalfW: f.halfW,
		HalfH: f.halfH,
	}
	f.nextID++
	f.obstacles = append(f.obstacles, o)
	return o
}

// Scroll moves every obstacle left by the scroll speed and drops those whose
// right edge has left the viewport. Inert unless the run is active.
func (f *ObstacleField) Scroll(state GameState, dt float64, vp core.Viewport) {
	if !state.Running() {
		return
	}

	dx := f.scrollSpeed * dt
	for i := range f.obstacles {
		f.obstacles[i].Pos.X -= dx
	}

	// Remove obstacles that have moved off the left side
	left := -vp.HalfW()
	kept := f.obstacles[:0]
	for _, o := range f.obstacles {
		if o.Pos.X+o.HalfW >= left {
			kept = append(kept, o)
		}
	}
	f.obstacles = kept
}

// Obstacles returns the live obstacles in spawn order.
// The slice is owned by the field and valid until the next Scroll.
func (f *ObstacleField) Obstacles() []Obstacle {
	return f.obstacles
}

// Len returns the number of live obstacles.
func (f *ObstacleField) Len() int {
	return len(f.obstacles)
}
