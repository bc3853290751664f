package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
)

// PassedSet records obstacles already credited to the score.
type PassedSet map[ObstacleID]struct{}

// Has reports whether id was already credited.
func (p PassedSet) Has(id ObstacleID) bool {
	_, ok := p[id]
	return ok
}

// Mark records id and reports whether it was newly inserted.
func (p PassedSet) Mark(id ObstacleID) bool {
	if p.Has(id) {
		return false
	}
	p[id] = struct{}{}
	return true
}

// Scorer tests the body against every obstacle each tick. An overlap ends
// the run; an obstacle the body has fully cleared scores once.
type Scorer struct {
	InsetX float64
	InsetY float64
	passed PassedSet
	score  int
}

// NewScorer creates a scorer with an empty passed set.
func NewScorer(obs config.FlappyObstacles) *Scorer {
	return &Scorer{
		InsetX: obs.InsetX,
		InsetY: obs.InsetY,
		passed: make(PassedSet),
	}
}

// Check runs collision and scoring for one tick and returns the number of
// obstacles newly credited. Inert unless the run is active.
func (s *Scorer) Check(body Body, obstacles []Obstacle, state *GameState) int {
	if !state.Running() {
		return 0
	}

	circle := body.Circle()
	credited := 0
	for _, o := range obstacles {
		if circle.IntersectsBox(o.Hitbox(s.InsetX, s.InsetY)) {
			state.end()
			return credited
		}
		if body.Pos.X-circle.Radius > o.Pos.X && s.passed.Mark(o.ID) {
			s.score++
			credited++
		}
	}
	return credited
}

// Passed reports whether the obstacle has been credited.
func (s *Scorer) Passed(id ObstacleID) bool {
	return s.passed.Has(id)
}

// Score returns the number of obstacles passed.
func (s *Scorer) Score() int {
	return s.score
}

// DisplayScore returns the score in pairs, since every gap is two obstacles.
func (s *Scorer) DisplayScore() int {
	return s.score / 2
}
