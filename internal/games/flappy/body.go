package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Body is the controlled body. Exactly one exists per run.
type Body struct {
	Pos    core.Vec2
	VelY   float64 // Vertical velocity, positive is up
	Width  float64 // Sprite width in world units
	Height float64 // Sprite height in world units
}

// Circle returns the body's enclosing circle, whose diameter is the sprite diagonal.
func (b Body) Circle() core.Circle {
	return core.EnclosingCircle(b.Pos, b.Width, b.Height)
}

// Radius returns the enclosing circle radius.
func (b Body) Radius() float64 {
	return b.Circle().Radius
}

// BodyPhysics integrates the body under gravity and flap impulses.
type BodyPhysics struct {
	Gravity     float64
	FlapImpulse float64
}

// NewBodyPhysics builds the physics system from configuration.
func NewBodyPhysics(cfg config.FlappyPhysics) BodyPhysics {
	return BodyPhysics{
		Gravity:     cfg.Gravity,
		FlapImpulse: cfg.FlapImpulse,
	}
}

// Flap applies a flap edge: the vertical velocity is set (not added) to the
// impulse and a not-started run begins. Flaps after the run ended are ignored.
func (p BodyPhysics) Flap(b *Body, s *GameState) {
	if s.Ended() {
		return
	}
	b.VelY = p.FlapImpulse
	s.start()
}

// Integrate advances the body by dt seconds while the run is active.
// A step that would carry the body below floor ends the run, zeroes the
// velocity and leaves the position where it was.
// Gravity is applied to the velocity before the displacement.
func (p BodyPhysics) Integrate(b *Body, s *GameState, dt, floor float64) {
	if !s.Running() {
		return
	}

	d := b.VelY * dt
	if b.Pos.Y+d < floor {
		b.VelY = 0
		s.end()
		return
	}

	b.VelY -= p.Gravity * dt
	b.Pos.Y += b.VelY * dt
}
