package ui

import "github.com/olivier-w/glide/internal/scroll"

// contentSurface adapts the pager's document/viewport geometry to the
// animator's Surface contract. It never owns a timer: frame requests
// from the animator are parked in frameWanted and the pager's Update
// loop converts them into tea.Tick commands.
type contentSurface struct {
	contentW, contentH float64
	viewW, viewH       float64
	animate            bool

	frameWanted bool
	dirty       bool
}

func (s *contentSurface) setContentSize(w, h int) {
	s.contentW = float64(w)
	s.contentH = float64(h)
}

func (s *contentSurface) setViewportSize(w, h int) {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	s.viewW = float64(w)
	s.viewH = float64(h)
}

// maxOffset is the scroll extent along an axis: content size minus
// viewport size, never negative.
func (s *contentSurface) maxOffset(o scroll.Orientation) float64 {
	var m float64
	if o == scroll.Horizontal {
		m = s.contentW - s.viewW
	} else {
		m = s.contentH - s.viewH
	}
	if m < 0 {
		m = 0
	}
	return m
}

func (s *contentSurface) ClampAxis(o scroll.Orientation, v float64) float64 {
	if v < 0 {
		return 0
	}
	if m := s.maxOffset(o); v > m {
		return m
	}
	return v
}

func (s *contentSurface) ClampOffset(p scroll.Offset) scroll.Offset {
	return scroll.Offset{
		X: s.ClampAxis(scroll.Horizontal, p.X),
		Y: s.ClampAxis(scroll.Vertical, p.Y),
	}
}

func (s *contentSurface) ScrollAnimatorEnabled() bool { return s.animate }
func (s *contentSurface) RegisterForAnimation()       { s.frameWanted = true }
func (s *contentSurface) ScheduleAnimation()          { s.frameWanted = true }
func (s *contentSurface) NotifyPositionChanged()      { s.dirty = true }

// takeFrameRequest consumes the pending frame request, if any.
func (s *contentSurface) takeFrameRequest() bool {
	wanted := s.frameWanted
	s.frameWanted = false
	return wanted
}
