package flappy

import (
	"time"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// EventKind is the type of a recorded input event.
type EventKind string

const (
	EventFlap   EventKind = "flap"
	EventResize EventKind = "resize"
)

// Event is an input that happened before the given tick was stepped.
type Event struct {
	Tick   int       `json:"tick"`
	Kind   EventKind `json:"kind"`
	Width  int       `json:"w,omitempty"`
	Height int       `json:"h,omitempty"`
}

// Replay is everything needed to re-run a game exactly: the seed, the
// fixed tick rate, the starting screen size, the game configuration and the
// input events. Scores are not stored; they are recomputed by Simulate.
type Replay struct {
	RunID     string
	Seed      int64
	TickRate  int
	Width     int
	Height    int
	Ticks     int
	Events    []Event
	Config    *config.FlappyConfig // Nil for runs recorded without one
	CreatedAt time.Time
}

// ConfigOr returns the recorded configuration, or fallback if there is none.
func (r Replay) ConfigOr(fallback config.FlappyConfig) config.FlappyConfig {
	if r.Config == nil {
		return fallback
	}
	return *r.Config
}

// Flaps returns the number of flap events.
func (r Replay) Flaps() int {
	n := 0
	for _, e := range r.Events {
		if e.Kind == EventFlap {
			n++
		}
	}
	return n
}

// Result is the outcome of a simulated replay.
type Result struct {
	RunID     string
	Ticks     int
	Obstacles int
	Pairs     int
	Ended     bool
	Recorded  bool // Whether the run's own configuration was used
}

// Simulate re-runs a replay headlessly at its fixed tick rate until the run
// ends, the recorded tick count is reached, or maxTicks (when positive) is hit.
// The configuration recorded with the run is used; fallback only applies to
// replays that carry none.
func Simulate(fallback config.FlappyConfig, r Replay, maxTicks int) Result {
	cfg := r.ConfigOr(fallback)
	rt := core.RuntimeConfig{
		ScreenW:  r.Width,
		ScreenH:  r.Height,
		TickRate: r.TickRate,
		Seed:     r.Seed,
	}
	g := NewWithConfig(cfg)
	g.Reset(rt)

	limit := r.Ticks
	if maxTicks > 0 && maxTicks < limit {
		limit = maxTicks
	}

	step := rt.StepSeconds()
	w, h := r.Width, r.Height
	next := 0
	for g.world.Ticks() < limit && !g.world.State().Ended() {
		tick := g.world.Ticks()
		in := core.NewInputFrame()
		for next < len(r.Events) && r.Events[next].Tick <= tick {
			switch e := r.Events[next]; e.Kind {
			case EventFlap:
				in.Set(core.ActionJump)
			case EventResize:
				w, h = e.Width, e.Height
			}
			next++
		}
		g.Step(core.Tick{Input: in, Dt: step, ScreenW: w, ScreenH: h})
	}

	return Result{
		RunID:     r.RunID,
		Ticks:     g.world.Ticks(),
		Obstacles: g.world.Score(),
		Pairs:     g.world.DisplayScore(),
		Ended:     g.world.State().Ended(),
		Recorded:  r.Config != nil,
	}
}
