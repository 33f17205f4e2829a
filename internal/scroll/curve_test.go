package scroll

import (
	"math"
	"testing"
	"time"
)

func testPolicy() DurationPolicy {
	return DurationPolicy{Mode: DurationConstant, Fixed: 200 * time.Millisecond}
}

func offsetsClose(a, b Offset) bool {
	return math.Abs(a.X-b.X) < 1e-9 && math.Abs(a.Y-b.Y) < 1e-9
}

func TestCurveEndpoints(t *testing.T) {
	c := NewCurve(Offset{X: 30, Y: 100}, EaseInOut, testPolicy())
	c.SetInitialValue(Offset{X: 10, Y: 20})

	if got := c.Value(0); !offsetsClose(got, Offset{X: 10, Y: 20}) {
		t.Fatalf("expected start value at t=0, got %+v", got)
	}
	if got := c.Value(c.Duration()); !offsetsClose(got, Offset{X: 30, Y: 100}) {
		t.Fatalf("expected target value at t=duration, got %+v", got)
	}
	if got := c.Target(); got != (Offset{X: 30, Y: 100}) {
		t.Fatalf("expected target (30,100), got %+v", got)
	}
}

func TestCurveRetargetHasNoPositionalDiscontinuity(t *testing.T) {
	c := NewCurve(Offset{Y: 100}, EaseInOut, testPolicy())
	c.SetInitialValue(Offset{})

	elapsed := 70 * time.Millisecond
	before := c.Value(elapsed)
	c.UpdateTarget(elapsed, Offset{Y: 400})
	after := c.Value(elapsed)

	if !offsetsClose(before, after) {
		t.Fatalf("expected continuity at retarget: before %+v, after %+v", before, after)
	}
	if got := c.Target(); got != (Offset{Y: 400}) {
		t.Fatalf("expected new target (0,400), got %+v", got)
	}
}

func TestCurveDurationGrowsAcrossRetargets(t *testing.T) {
	c := NewCurve(Offset{Y: 100}, EaseInOut, testPolicy())
	c.SetInitialValue(Offset{})

	if got := c.Duration(); got != 200*time.Millisecond {
		t.Fatalf("expected initial duration 200ms, got %v", got)
	}

	c.UpdateTarget(70*time.Millisecond, Offset{Y: 200})
	if got := c.Duration(); got != 270*time.Millisecond {
		t.Fatalf("expected duration 270ms after retarget at 70ms, got %v", got)
	}

	c.UpdateTarget(150*time.Millisecond, Offset{Y: 300})
	if got := c.Duration(); got != 350*time.Millisecond {
		t.Fatalf("expected duration 350ms after retarget at 150ms, got %v", got)
	}
}

func TestCurveRetargetReversesDirection(t *testing.T) {
	c := NewCurve(Offset{Y: 100}, EaseLinear, testPolicy())
	c.SetInitialValue(Offset{})

	c.UpdateTarget(100*time.Millisecond, Offset{})
	mid := c.Value(100 * time.Millisecond)
	if !offsetsClose(mid, Offset{Y: 50}) {
		t.Fatalf("expected anchor at (0,50), got %+v", mid)
	}
	if got := c.Value(c.Duration()); !offsetsClose(got, Offset{}) {
		t.Fatalf("expected return to origin, got %+v", got)
	}
}

func TestCurveZeroDurationSnapsToTarget(t *testing.T) {
	c := NewCurve(Offset{Y: 40}, EaseInOut, DurationPolicy{Mode: DurationConstant})
	c.SetInitialValue(Offset{})
	if got := c.Value(0); !offsetsClose(got, Offset{Y: 40}) {
		t.Fatalf("expected instant snap to target, got %+v", got)
	}
}

func TestDistancePolicyScalesAndClamps(t *testing.T) {
	p := DurationPolicy{
		Mode:   DurationDistance,
		PerLen: 100 * time.Millisecond,
		Min:    50 * time.Millisecond,
		Max:    400 * time.Millisecond,
	}
	if got := p.segment(200); got != 200*time.Millisecond {
		t.Fatalf("expected 200ms for 200 cells, got %v", got)
	}
	if got := p.segment(10); got != 50*time.Millisecond {
		t.Fatalf("expected min clamp, got %v", got)
	}
	if got := p.segment(5000); got != 400*time.Millisecond {
		t.Fatalf("expected max clamp, got %v", got)
	}
}

func TestEasingShapes(t *testing.T) {
	for _, e := range []Easing{EaseLinear, EaseInOut, EaseOutCubic, EaseSmoothstep} {
		if got := e(0); math.Abs(got) > 1e-9 {
			t.Fatalf("expected easing(0)=0, got %v", got)
		}
		if got := e(1); math.Abs(got-1) > 1e-9 {
			t.Fatalf("expected easing(1)=1, got %v", got)
		}
	}
	if got := EaseOutCubic(0.5); got <= 0.5 {
		t.Fatalf("expected ease-out past halfway at t=0.5, got %v", got)
	}
	if got := EaseInOut(0.5); math.Abs(got-0.5) > 1e-9 {
		t.Fatalf("expected ease-in-out symmetric at t=0.5, got %v", got)
	}
}
