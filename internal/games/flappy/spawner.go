package flappy

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// RandSource supplies the randomness used for obstacle placement.
type RandSource interface {
	// Float64Range returns a uniform value in [lo, hi).
	Float64Range(lo, hi float64) float64
}

type seededRand struct {
	rng *rand.Rand
}

// NewRandSource returns a deterministic RandSource for the given seed.
func NewRandSource(seed int64) RandSource {
	return seededRand{rng: rand.New(rand.NewSource(seed))}
}

func (s seededRand) Float64Range(lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Float64()*(hi-lo)
}

// SpawnTimer is a repeating interval timer measured in seconds.
type SpawnTimer struct {
	Period  float64
	Elapsed float64
}

// Advance moves the timer forward and reports whether it fired.
// It fires at most once per call; the time past the period carries over
// so the cadence does not drift with frame jitter.
func (t *SpawnTimer) Advance(dt float64) bool {
	t.Elapsed += dt
	if t.Elapsed < t.Period {
		return false
	}
	t.Elapsed = math.Mod(t.Elapsed-t.Period, t.Period)
	return true
}

// Spawner requests obstacle pairs at a fixed cadence while the run is active.
type Spawner struct {
	Timer     SpawnTimer
	MaxOffset float64
	rng       RandSource
}

// NewSpawner builds a spawner from configuration.
func NewSpawner(cfg config.FlappySpawn, rng RandSource) *Spawner {
	return &Spawner{
		Timer:     SpawnTimer{Period: cfg.Interval.Seconds()},
		MaxOffset: cfg.MaxOffset,
		rng:       rng,
	}
}

// Tick advances the timer and, when it fires, adds a mirrored pair just past
// the right edge: one hanging from the top, one rising from the bottom, each
// pushed inwards by an independent draw in [0, MaxOffset).
// Returns true if a pair was spawned.
func (s *Spawner) Tick(state GameState, dt float64, vp core.Viewport, field *ObstacleField) bool {
	if !state.Running() {
		return false
	}
	if !s.Timer.Advance(dt) {
		return false
	}

	u1 := s.rng.Float64Range(0, s.MaxOffset)
	u2 := s.rng.Float64Range(0, s.MaxOffset)
	field.SpawnPair(vp.HalfW(), vp.HalfH()-u1, -vp.HalfH()+u2)
	return true
}
