package flappy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

func TestScrollMovesAllObstaclesUniformly(t *testing.T) {
	field := NewObstacleField(config.DefaultFlappyConfig().Obstacles, 200)
	field.SpawnPair(400, 250, -250)
	field.SpawnPair(100, 280, -280)

	field.Scroll(runningState(), 0.5, testViewport)

	obs := field.Obstacles()
	require.Len(t, obs, 4)
	assert.Equal(t, 300.0, obs[0].Pos.X)
	assert.Equal(t, 300.0, obs[1].Pos.X)
	assert.Equal(t, 0.0, obs[2].Pos.X)
	assert.Equal(t, 0.0, obs[3].Pos.X)
	assert.Equal(t, 250.0, obs[0].Pos.Y, "scrolling is horizontal only")
}

func TestScrollInertUnlessRunning(t *testing.T) {
	field := NewObstacleField(config.DefaultFlappyConfig().Obstacles, 200)
	field.SpawnPair(400, 250, -250)

	field.Scroll(GameState{}, 1, testViewport)
	field.Scroll(endedState(), 1, testViewport)

	for _, o := range field.Obstacles() {
		assert.Equal(t, 400.0, o.Pos.X)
	}
}

func TestScrollDespawnsOffscreenObstacles(t *testing.T) {
	field := NewObstacleField(config.DefaultFlappyConfig().Obstacles, 200)
	// Half width is 80; the left edge of an 800 wide viewport is -400.
	field.SpawnPair(-450, 250, -250) // right edge at -390 after 0.1s scroll: still visible
	field.SpawnPair(-490, 250, -250) // right edge at -430 after 0.1s scroll: gone

	field.Scroll(runningState(), 0.1, testViewport)

	obs := field.Obstacles()
	require.Len(t, obs, 2)
	assert.Equal(t, ObstacleID(1), obs[0].ID)
	assert.Equal(t, ObstacleID(2), obs[1].ID)
}

func TestObstacleIDsAreNeverReused(t *testing.T) {
	field := NewObstacleField(config.DefaultFlappyConfig().Obstacles, 200)
	seen := make(map[ObstacleID]bool)

	for i := 0; i < 5; i++ {
		top, bottom := field.SpawnPair(-1000, 250, -250)
		assert.False(t, seen[top.ID])
		assert.False(t, seen[bottom.ID])
		seen[top.ID] = true
		seen[bottom.ID] = true
		field.Scroll(runningState(), 0, testViewport) // despawns everything
		assert.Zero(t, field.Len())
	}
}

func TestObstacleHitbox(t *testing.T) {
	o := Obstacle{HalfW: 80, HalfH: 250}
	o.Pos.X, o.Pos.Y = 10, 200

	box := o.Hitbox(60, 30)
	assert.Equal(t, 20.0, box.Half.X)
	assert.Equal(t, 220.0, box.Half.Y)
	assert.Equal(t, o.Pos, box.Center)
	assert.True(t, o.Hanging())
}
