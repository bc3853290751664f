// Package flappy implements a Flappy Bird-style game.
// The player flaps a falling body through a stream of gap obstacles, scoring
// a point per obstacle cleared. The simulation lives in World; Game adapts
// it to the terminal platform.
package flappy

// Phase is the run lifecycle: NotStarted -> Running -> Ended.
type Phase int

const (
	PhaseNotStarted Phase = iota
	PhaseRunning
	PhaseEnded
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not-started"
	case PhaseRunning:
		return "running"
	case PhaseEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// GameState is the pair of flags gating every system.
// Nothing moves the flags backwards; only a full reset does.
type GameState struct {
	started bool
	ended   bool
}

// Started reports whether the first flap has been received.
func (s GameState) Started() bool {
	return s.started
}

// Ended reports whether the run is over.
func (s GameState) Ended() bool {
	return s.ended
}

// Running reports whether systems should act this tick.
func (s GameState) Running() bool {
	return s.started && !s.ended
}

// Phase returns the lifecycle phase derived from the flags.
func (s GameState) Phase() Phase {
	switch {
	case s.ended:
		return PhaseEnded
	case s.started:
		return PhaseRunning
	default:
		return PhaseNotStarted
	}
}

// start marks the run as started. Ignored once ended.
func (s *GameState) start() {
	if !s.ended {
		s.started = true
	}
}

// end marks the run as over. Sticky.
func (s *GameState) end() {
	s.ended = true
}
