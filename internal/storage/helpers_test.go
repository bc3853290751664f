package storage

import "github.com/vovakirdan/tui-flappy/internal/config"

func flappyDefaults() config.FlappyConfig {
	return config.DefaultFlappyConfig()
}
