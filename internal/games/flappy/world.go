package flappy

import (
	"math"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Input is what the frame driver supplies for one tick.
type Input struct {
	Dt       float64       // Elapsed seconds
	Flap     bool          // Jump pressed this frame (rising edge)
	Viewport core.Viewport // Current viewport, read fresh every tick
}

// World is the simulation context. It owns every piece of run state and
// runs the systems in a fixed order each tick:
// flap input, spawn, body physics, scroll, collision and scoring.
type World struct {
	state   GameState
	body    Body
	physics BodyPhysics
	spawner *Spawner
	field   *ObstacleField
	scorer  *Scorer
	ticks   int
}

// NewWorld creates a world in the NotStarted phase.
func NewWorld(cfg config.FlappyConfig, rng RandSource) *World {
	if rng == nil {
		panic("flappy: NewWorld requires a RandSource")
	}
	return &World{
		body: Body{
			Pos:    core.Vec2{X: cfg.Body.X},
			Width:  cfg.Body.Width,
			Height: cfg.Body.Height,
		},
		physics: NewBodyPhysics(cfg.Physics),
		spawner: NewSpawner(cfg.Spawn, rng),
		field:   NewObstacleField(cfg.Obstacles, cfg.Physics.ScrollSpeed),
		scorer:  NewScorer(cfg.Obstacles),
	}
}

// Step advances the simulation by one tick and returns the resulting state.
func (w *World) Step(in Input) GameState {
	if w.spawner == nil || w.field == nil || w.scorer == nil {
		panic("flappy: World.Step on a world not built by NewWorld")
	}

	dt := in.Dt
	if dt < 0 || math.IsNaN(dt) {
		dt = 0
	}
	w.ticks++

	if in.Flap {
		w.physics.Flap(&w.body, &w.state)
	}
	w.spawner.Tick(w.state, dt, in.Viewport, w.field)
	w.physics.Integrate(&w.body, &w.state, dt, in.Viewport.Floor())
	w.field.Scroll(w.state, dt, in.Viewport)
	w.scorer.Check(w.body, w.field.Obstacles(), &w.state)

	return w.state
}

// State returns the current game state flags.
func (w *World) State() GameState {
	return w.state
}

// Body returns a copy of the controlled body.
func (w *World) Body() Body {
	return w.body
}

// Obstacles returns a snapshot of the live obstacles.
func (w *World) Obstacles() []Obstacle {
	out := make([]Obstacle, w.field.Len())
	copy(out, w.field.Obstacles())
	return out
}

// Score returns the number of obstacles passed.
func (w *World) Score() int {
	return w.scorer.Score()
}

// DisplayScore returns the score in gap pairs.
func (w *World) DisplayScore() int {
	return w.scorer.DisplayScore()
}

// Ticks returns how many ticks have been stepped.
func (w *World) Ticks() int {
	return w.ticks
}

// HitboxInsets returns the obstacle hitbox insets in use.
func (w *World) HitboxInsets() (x, y float64) {
	return w.scorer.InsetX, w.scorer.InsetY
}
