package flappy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// playScripted drives a game with a fixed input script and one resize.
func playScripted(g *Game, ticks int) {
	w, h := 80, 24
	for i := 0; i < ticks && !g.State().GameOver; i++ {
		if i == 200 {
			w, h = 90, 26
		}
		b := g.World().Body()
		if i == 0 || (b.Pos.Y < -40 && b.VelY <= 0) || i%97 == 0 {
			g.Step(jumpTick(w, h))
		} else {
			g.Step(idleTick(w, h))
		}
	}
}

func TestSimulateReproducesRun(t *testing.T) {
	for _, seed := range []int64{1, 42, 12345} {
		g := newTestGame(seed)
		playScripted(g, 1500)
		replay := g.Replay()

		result := Simulate(testConfig(), replay, 0)

		assert.Equal(t, replay.RunID, result.RunID)
		assert.Equal(t, replay.Ticks, result.Ticks, "seed %d", seed)
		assert.Equal(t, g.World().Score(), result.Obstacles, "seed %d", seed)
		assert.Equal(t, g.State().Score, result.Pairs, "seed %d", seed)
		assert.Equal(t, g.State().GameOver, result.Ended, "seed %d", seed)
	}
}

func TestSimulateHonoursMaxTicks(t *testing.T) {
	g := newTestGame(1)
	playScripted(g, 400)
	replay := g.Replay()
	require.Greater(t, replay.Ticks, 30)

	result := Simulate(testConfig(), replay, 30)
	assert.Equal(t, 30, result.Ticks)
	assert.False(t, result.Ended)
}

func TestSimulateWithoutInputNeverStarts(t *testing.T) {
	r := Replay{Seed: 1, TickRate: 60, Width: 80, Height: 24, Ticks: 500}

	result := Simulate(testConfig(), r, 0)
	assert.Equal(t, 500, result.Ticks)
	assert.Zero(t, result.Obstacles)
	assert.False(t, result.Ended)
}

func TestSimulateUsesRecordedConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Physics.Gravity = 400
	g := NewWithConfig(cfg)
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 9})
	playScripted(g, 1500)
	replay := g.Replay()
	require.NotNil(t, replay.Config)
	assert.Equal(t, 400.0, replay.Config.Physics.Gravity)

	// Replayed under the defaults, the recorded gravity still applies.
	result := Simulate(testConfig(), replay, 0)
	assert.True(t, result.Recorded)
	assert.Equal(t, replay.Ticks, result.Ticks)
	assert.Equal(t, g.World().Score(), result.Obstacles)
	assert.Equal(t, g.State().GameOver, result.Ended)

	// Without the recorded config the same inputs play out differently.
	legacy := replay
	legacy.Config = nil
	other := Simulate(testConfig(), legacy, 0)
	assert.False(t, other.Recorded)
	assert.NotEqual(t, result.Ticks, other.Ticks)
}

func TestReplayConfigIsACopy(t *testing.T) {
	g := newTestGame(3)
	r := g.Replay()
	require.NotNil(t, r.Config)

	r.Config.Physics.Gravity = 1
	assert.Equal(t, testConfig().Physics.Gravity, g.Replay().Config.Physics.Gravity)
}

func TestReplayConfigOr(t *testing.T) {
	fallback := testConfig()
	assert.Equal(t, fallback, Replay{}.ConfigOr(fallback))

	recorded := testConfig()
	recorded.Spawn.MaxOffset = 10
	assert.Equal(t, recorded, Replay{Config: &recorded}.ConfigOr(fallback))
}
