package flappy

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

func newTestGame(seed int64) *Game {
	g := NewWithConfig(testConfig())
	g.Reset(core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	})
	return g
}

func jumpTick(w, h int) core.Tick {
	in := core.NewInputFrame()
	in.Set(core.ActionJump)
	return core.Tick{Input: in, Dt: tick60, ScreenW: w, ScreenH: h}
}

func idleTick(w, h int) core.Tick {
	return core.Tick{Input: core.NewInputFrame(), Dt: tick60, ScreenW: w, ScreenH: h}
}

func TestGameRegistered(t *testing.T) {
	require.True(t, registry.Exists("flappy"))
	g, err := registry.Create("flappy")
	require.NoError(t, err)
	assert.Equal(t, "Flappy Bird", g.Title())
}

func TestGameViewportFromScreen(t *testing.T) {
	g := newTestGame(1)
	vp := g.Viewport()
	assert.Equal(t, 80*15.0, vp.W)
	assert.Equal(t, 23*30.0, vp.H, "bottom row is the ground line")
}

func TestGameStartsOnFirstJump(t *testing.T) {
	g := newTestGame(1)
	assert.Equal(t, core.GameState{}, g.State())

	result := g.Step(idleTick(80, 24))
	assert.False(t, result.State.Started)

	result = g.Step(jumpTick(80, 24))
	assert.True(t, result.State.Started)
	assert.False(t, result.State.GameOver)
}

func TestGameOverFreezesAndStopsRecording(t *testing.T) {
	g := newTestGame(1)
	g.Step(jumpTick(80, 24))
	for i := 0; i < 600 && !g.State().GameOver; i++ {
		g.Step(idleTick(80, 24))
	}
	require.True(t, g.State().GameOver, "body should hit the ground")

	ticks := g.World().Ticks()
	events := len(g.Replay().Events)
	for i := 0; i < 20; i++ {
		result := g.Step(jumpTick(80, 24))
		assert.True(t, result.State.GameOver)
	}
	assert.Equal(t, ticks, g.World().Ticks())
	assert.Len(t, g.Replay().Events, events)
}

func TestGameRecordsFlapsAndResizes(t *testing.T) {
	g := newTestGame(9)
	g.Step(idleTick(80, 24))
	g.Step(jumpTick(80, 24))
	g.Step(idleTick(100, 30))
	g.Step(jumpTick(100, 30))

	r := g.Replay()
	assert.Equal(t, int64(9), r.Seed)
	assert.Equal(t, 60, r.TickRate)
	assert.Equal(t, 4, r.Ticks)
	assert.Equal(t, 2, r.Flaps())
	assert.Equal(t, []Event{
		{Tick: 1, Kind: EventFlap},
		{Tick: 2, Kind: EventResize, Width: 100, Height: 30},
		{Tick: 3, Kind: EventFlap},
	}, r.Events)
	assert.Equal(t, 100*15.0, g.Viewport().W)
}

func TestGameResetStartsNewRun(t *testing.T) {
	g := newTestGame(1)
	first := g.RunID()
	g.Step(jumpTick(80, 24))

	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 2})

	assert.NotEqual(t, first, g.RunID())
	assert.Equal(t, core.GameState{}, g.State())
	assert.Zero(t, g.World().Ticks())
	assert.Empty(t, g.Replay().Events)
}

func TestGameStepBeforeResetPanics(t *testing.T) {
	g := NewWithConfig(testConfig())
	assert.Panics(t, func() { g.Step(idleTick(80, 24)) })
}

func TestGameRenderBeforeStart(t *testing.T) {
	g := newTestGame(1)
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	assert.Equal(t, GroundChar, screen.Get(0, 23), "ground on the bottom row")
	assert.Contains(t, screen.Row(0), "Score: 0")
	assert.Contains(t, screen.String(), "FLAPPY BIRD")

	// The body sits at world (0, 0): the middle of the field.
	row := screen.Row(11)
	assert.True(t, strings.ContainsRune(row, PlayerChar), "body should be drawn on row 11, got %q", row)
}

func TestGameRenderObstaclesAndGameOver(t *testing.T) {
	g := newTestGame(5)
	g.Step(jumpTick(80, 24))
	for i := 0; i < 600 && !g.State().GameOver; i++ {
		g.Step(idleTick(80, 24))
	}
	require.True(t, g.State().GameOver)
	require.NotEmpty(t, g.World().Obstacles(), "a pair spawns before the body lands")

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	assert.Contains(t, out, "GAME OVER")
	assert.True(t, strings.ContainsRune(out, PipeChar), "obstacles should be drawn")
	assert.True(t, strings.ContainsRune(out, PipeCapTop))
	assert.True(t, strings.ContainsRune(out, PipeCapBottom))
}

func TestGameRenderEmptyScreen(t *testing.T) {
	g := newTestGame(1)
	assert.NotPanics(t, func() { g.Render(core.NewScreen(0, 0)) })
}
