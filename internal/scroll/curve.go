package scroll

import (
	"math"
	"time"
)

// Easing maps animation progress in [0,1] to eased progress in [0,1].
type Easing func(t float64) float64

var (
	// EaseLinear interpolates at constant speed.
	EaseLinear Easing = func(t float64) float64 { return t }

	// EaseInOut accelerates then decelerates; the default profile.
	EaseInOut Easing = func(t float64) float64 {
		if t < 0.5 {
			return 4.0 * t * t * t
		}
		u := 2.0*t - 2.0
		return 1.0 + u*u*u*0.5
	}

	// EaseOutCubic starts fast and decelerates to a stop.
	EaseOutCubic Easing = func(t float64) float64 {
		u := t - 1.0
		return u*u*u + 1.0
	}

	// EaseSmoothstep is the classic S-curve with zero slope at both ends.
	EaseSmoothstep Easing = func(t float64) float64 {
		return t * t * (3.0 - 2.0*t)
	}
)

// DurationMode selects how a curve segment's duration relates to the
// distance it covers.
type DurationMode int

const (
	// DurationConstant gives every segment the same fixed duration.
	DurationConstant DurationMode = iota
	// DurationDistance scales the duration with the segment's length,
	// clamped between Min and Max.
	DurationDistance
)

// DurationPolicy decides the duration of each curve segment. The
// animator is duration-agnostic; the policy lives with the curve.
type DurationPolicy struct {
	Mode   DurationMode
	Fixed  time.Duration // DurationConstant: duration of every segment
	PerLen time.Duration // DurationDistance: time per 100 cells of travel
	Min    time.Duration // DurationDistance: lower clamp
	Max    time.Duration // DurationDistance: upper clamp
}

// DefaultDurationPolicy matches the stock animation profile.
func DefaultDurationPolicy() DurationPolicy {
	return DurationPolicy{Mode: DurationConstant, Fixed: 220 * time.Millisecond}
}

func (p DurationPolicy) segment(distance float64) time.Duration {
	if p.Mode == DurationConstant {
		return p.Fixed
	}
	d := time.Duration(distance / 100.0 * float64(p.PerLen))
	if d < p.Min {
		d = p.Min
	}
	if d > p.Max {
		d = p.Max
	}
	return d
}

// Curve interpolates a 2D offset from a start value toward a target
// value over a fixed duration, and can be retargeted mid-flight without
// a positional discontinuity.
//
// A retarget begins a fresh segment anchored at the value the previous
// segment had at that instant. The consumed elapsed time is folded into
// base so Duration keeps growing and the caller's elapsed-vs-duration
// finish test stays valid across any number of retargets.
type Curve struct {
	start       Offset
	target      Offset
	base        time.Duration // elapsed time at which the current segment began
	segment     time.Duration
	easing      Easing
	policy      DurationPolicy
	initialized bool
}

// NewCurve creates a curve easing toward target. The start value is
// undefined until SetInitialValue is called.
func NewCurve(target Offset, easing Easing, policy DurationPolicy) *Curve {
	if easing == nil {
		easing = EaseInOut
	}
	return &Curve{target: target, easing: easing, policy: policy}
}

// SetInitialValue fixes the curve's start point. Must be called once,
// before the first Value or UpdateTarget.
func (c *Curve) SetInitialValue(v Offset) {
	c.start = v
	c.segment = c.policy.segment(distance(v, c.target))
	c.initialized = true
}

// Value returns the interpolated offset at the given elapsed time.
// Defined for 0 <= elapsed <= Duration().
func (c *Curve) Value(elapsed time.Duration) Offset {
	if c.segment <= 0 {
		return c.target
	}
	t := elapsed - c.base
	if t <= 0 {
		return c.start
	}
	if t >= c.segment {
		return c.target
	}
	p := c.easing(float64(t) / float64(c.segment))
	return Offset{
		X: c.start.X + (c.target.X-c.start.X)*p,
		Y: c.start.Y + (c.target.Y-c.start.Y)*p,
	}
}

// Target returns the offset the curve is currently easing toward.
func (c *Curve) Target() Offset {
	return c.target
}

// Duration returns the total animation duration, measured from the
// elapsed-time origin the caller has been sampling with. Grows on each
// retarget by the elapsed time the retarget consumed.
func (c *Curve) Duration() time.Duration {
	return c.base + c.segment
}

// UpdateTarget re-parameterizes the curve so that it still passes
// through its current interpolated value at elapsed, then eases toward
// target over a new segment. The caller's start-time reference is not
// disturbed.
func (c *Curve) UpdateTarget(elapsed time.Duration, target Offset) {
	c.start = c.Value(elapsed)
	c.base = elapsed
	c.target = target
	c.segment = c.policy.segment(distance(c.start, target))
}

func distance(a, b Offset) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}
