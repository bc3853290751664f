package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// scriptedRand returns queued values in order, then repeats the last one.
type scriptedRand struct {
	values []float64
	calls  int
}

func (s *scriptedRand) Float64Range(lo, hi float64) float64 {
	s.calls++
	if len(s.values) == 0 {
		return lo
	}
	v := s.values[0]
	if len(s.values) > 1 {
		s.values = s.values[1:]
	}
	return v
}

// testViewport is an 800x600 world.
var testViewport = core.Viewport{W: 800, H: 600}

func testConfig() config.FlappyConfig {
	return config.DefaultFlappyConfig()
}

// runningState returns a state that has been started and not ended.
func runningState() GameState {
	var s GameState
	s.start()
	return s
}

// endedState returns a state that has started and ended.
func endedState() GameState {
	s := runningState()
	s.end()
	return s
}
