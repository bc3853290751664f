// Package config provides YAML-based game configuration loading for the
// flappy simulation and its terminal host.
package config

import (
	"errors"
	"fmt"
	"time"
)

// FlappyConfig contains all configuration for the Flappy Bird game.
type FlappyConfig struct {
	Physics   FlappyPhysics   `yaml:"physics"`
	Spawn     FlappySpawn     `yaml:"spawn"`
	Body      FlappyBody      `yaml:"body"`
	Obstacles FlappyObstacles `yaml:"obstacles"`
	Display   FlappyDisplay   `yaml:"display"`
}

// FlappyPhysics defines physics parameters in world units and seconds.
type FlappyPhysics struct {
	Gravity     float64 `yaml:"gravity"`      // Downward acceleration, units/s²
	FlapImpulse float64 `yaml:"flap_impulse"` // Vertical velocity set by a flap, units/s
	ScrollSpeed float64 `yaml:"scroll_speed"` // Leftward obstacle speed, units/s
}

// FlappySpawn defines the obstacle spawn cadence.
type FlappySpawn struct {
	Interval  time.Duration `yaml:"interval"`   // Period between pair spawns
	MaxOffset float64       `yaml:"max_offset"` // Vertical offsets are drawn from [0, MaxOffset)
}

// FlappyBody defines the controlled body's sprite extents.
type FlappyBody struct {
	X      float64 `yaml:"x"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// FlappyObstacles defines obstacle sprite extents and hitbox insets.
type FlappyObstacles struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	InsetX float64 `yaml:"inset_x"` // Subtracted from the half width for the hitbox
	InsetY float64 `yaml:"inset_y"` // Subtracted from the half height for the hitbox
}

// FlappyDisplay defines how the terminal host maps cells to world units.
type FlappyDisplay struct {
	UnitsPerCol float64       `yaml:"units_per_col"`
	UnitsPerRow float64       `yaml:"units_per_row"`
	MaxFrame    time.Duration `yaml:"max_frame"` // Cap on wall time consumed per frame
}

// Validate reports configuration values the simulation cannot run with.
func (c FlappyConfig) Validate() error {
	var errs []error
	if c.Physics.Gravity <= 0 {
		errs = append(errs, fmt.Errorf("physics.gravity must be positive, got %v", c.Physics.Gravity))
	}
	if c.Physics.FlapImpulse <= 0 {
		errs = append(errs, fmt.Errorf("physics.flap_impulse must be positive, got %v", c.Physics.FlapImpulse))
	}
	if c.Physics.ScrollSpeed < 0 {
		errs = append(errs, fmt.Errorf("physics.scroll_speed must not be negative, got %v", c.Physics.ScrollSpeed))
	}
	if c.Spawn.Interval <= 0 {
		errs = append(errs, fmt.Errorf("spawn.interval must be positive, got %v", c.Spawn.Interval))
	}
	if c.Spawn.MaxOffset < 0 {
		errs = append(errs, fmt.Errorf("spawn.max_offset must not be negative, got %v", c.Spawn.MaxOffset))
	}
	if c.Body.Width <= 0 || c.Body.Height <= 0 {
		errs = append(errs, fmt.Errorf("body size must be positive, got %vx%v", c.Body.Width, c.Body.Height))
	}
	if c.Obstacles.Width/2 <= c.Obstacles.InsetX {
		errs = append(errs, fmt.Errorf("obstacles.inset_x %v leaves no hitbox for width %v", c.Obstacles.InsetX, c.Obstacles.Width))
	}
	if c.Obstacles.Height/2 <= c.Obstacles.InsetY {
		errs = append(errs, fmt.Errorf("obstacles.inset_y %v leaves no hitbox for height %v", c.Obstacles.InsetY, c.Obstacles.Height))
	}
	if c.Display.UnitsPerCol <= 0 || c.Display.UnitsPerRow <= 0 {
		errs = append(errs, errors.New("display units per cell must be positive"))
	}
	if c.Display.MaxFrame <= 0 {
		errs = append(errs, fmt.Errorf("display.max_frame must be positive, got %v", c.Display.MaxFrame))
	}
	return errors.Join(errs...)
}
