package ui

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// thumbSpring smooths the scrollbar thumb so it trails the committed
// offset instead of teleporting on jumps.
type thumbSpring struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
}

func newThumbSpring(fps int) thumbSpring {
	return thumbSpring{spring: harmonica.NewSpring(harmonica.FPS(fps), 7.0, 1.0)}
}

// step advances the spring one frame toward target (a ratio in [0,1])
// and returns the new position.
func (s *thumbSpring) step(target float64) float64 {
	s.pos, s.vel = s.spring.Update(s.pos, s.vel, target)
	return s.pos
}

// snap moves the spring to target instantly, killing any velocity.
func (s *thumbSpring) snap(target float64) {
	s.pos = target
	s.vel = 0
}

// settled reports whether the thumb has effectively reached target.
func (s *thumbSpring) settled(target float64) bool {
	return math.Abs(s.pos-target) < 0.001 && math.Abs(s.vel) < 0.001
}
