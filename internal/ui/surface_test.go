package ui

import (
	"testing"

	"github.com/olivier-w/glide/internal/scroll"
)

func TestSurfaceClampAgainstContentAndViewport(t *testing.T) {
	s := &contentSurface{}
	s.setContentSize(200, 500)
	s.setViewportSize(80, 24)

	if got := s.maxOffset(scroll.Vertical); got != 476 {
		t.Fatalf("expected vertical extent 476, got %v", got)
	}
	if got := s.maxOffset(scroll.Horizontal); got != 120 {
		t.Fatalf("expected horizontal extent 120, got %v", got)
	}
	if got := s.ClampAxis(scroll.Vertical, -5); got != 0 {
		t.Fatalf("expected clamp to 0, got %v", got)
	}
	if got := s.ClampOffset(scroll.Offset{X: 999, Y: 999}); got != (scroll.Offset{X: 120, Y: 476}) {
		t.Fatalf("expected clamp to extents, got %+v", got)
	}
}

func TestSurfaceExtentNeverNegative(t *testing.T) {
	s := &contentSurface{}
	s.setContentSize(10, 5)
	s.setViewportSize(80, 24)

	if got := s.maxOffset(scroll.Vertical); got != 0 {
		t.Fatalf("expected zero extent for short content, got %v", got)
	}
	if got := s.ClampAxis(scroll.Vertical, 3); got != 0 {
		t.Fatalf("expected everything clamped to 0, got %v", got)
	}
}

func TestSurfaceFrameRequestIsConsumedOnce(t *testing.T) {
	s := &contentSurface{}
	s.RegisterForAnimation()
	if !s.takeFrameRequest() {
		t.Fatal("expected a pending frame request")
	}
	if s.takeFrameRequest() {
		t.Fatal("expected the request to be consumed")
	}
	s.ScheduleAnimation()
	if !s.takeFrameRequest() {
		t.Fatal("expected re-scheduling to raise the request again")
	}
}
