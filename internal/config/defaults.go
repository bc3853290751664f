package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the default Flappy Bird configuration.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Physics: FlappyPhysics{
			Gravity:     800,
			FlapImpulse: 300,
			ScrollSpeed: 200,
		},
		Spawn: FlappySpawn{
			Interval:  time.Second,
			MaxOffset: 90,
		},
		Body: FlappyBody{
			X:      0,
			Width:  34,
			Height: 24,
		},
		Obstacles: FlappyObstacles{
			Width:  160,
			Height: 500,
			InsetX: 60,
			InsetY: 30,
		},
		Display: FlappyDisplay{
			UnitsPerCol: 15,
			UnitsPerRow: 30,
			MaxFrame:    250 * time.Millisecond,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "flappy":
		return defaultFlappyYAML
	default:
		return nil
	}
}
