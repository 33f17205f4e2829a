package scroll

import "time"

// Clock supplies monotonic current time. Injectable so tests can drive
// deterministic elapsed-time sequences.
type Clock func() time.Time

// Surface is the scrollable surface the animator drives. The animator
// never owns a timer: it asks the surface for frame callbacks and the
// host calls ServiceScrollAnimations once per granted frame.
type Surface interface {
	// ClampOffset returns the nearest in-bounds offset. Bounds may
	// change between calls (live content resize).
	ClampOffset(Offset) Offset

	// ClampAxis clamps a single component against the same bounds.
	ClampAxis(Orientation, float64) float64

	// ScrollAnimatorEnabled gates animated vs. immediate scrolling.
	ScrollAnimatorEnabled() bool

	// RegisterForAnimation requests the first frame callback after an
	// animation starts.
	RegisterForAnimation()

	// ScheduleAnimation requests the next frame callback while an
	// animation is still in flight.
	ScheduleAnimation()

	// NotifyPositionChanged informs observers that the committed
	// offset changed. Called on every animation frame, even when
	// clamping left the offset where it was.
	NotifyPositionChanged()
}

// runningAnimation is the animator's in-flight state. The explicit
// active tag makes "no animation" a state of its own rather than a nil
// check on the curve.
type runningAnimation struct {
	active    bool
	startedAt time.Time
	curve     *Curve
}

// Animator converts discrete scroll requests into a single continuously
// interpolated offset animation, sampled once per host frame.
//
// At most one animation is in flight at any time: requests that arrive
// mid-animation retarget the running curve instead of stacking. All
// delta math is anchored at the animation's target rather than the
// transient interpolated position, so repeated wheel ticks accumulate
// the way the user expects.
//
// Not safe for concurrent use; the host serializes UserScroll and
// ServiceScrollAnimations on its event loop.
type Animator struct {
	surface Surface
	now     Clock
	easing  Easing
	policy  DurationPolicy

	offset Offset
	anim   runningAnimation
}

// NewAnimator creates an animator for the given surface. A nil clock
// defaults to time.Now.
func NewAnimator(surface Surface, clock Clock, easing Easing, policy DurationPolicy) *Animator {
	if clock == nil {
		clock = time.Now
	}
	if easing == nil {
		easing = EaseInOut
	}
	return &Animator{surface: surface, now: clock, easing: easing, policy: policy}
}

// CurrentOffset returns the last committed offset.
func (a *Animator) CurrentOffset() Offset {
	return a.offset
}

// HasRunningAnimation reports whether an animation is in flight.
func (a *Animator) HasRunningAnimation() bool {
	return a.anim.active
}

// DesiredTargetOffset is where the user thinks they are: the running
// animation's target while animating, the committed offset otherwise.
// All request deltas are applied relative to this point.
func (a *Animator) DesiredTargetOffset() Offset {
	if a.anim.active {
		return a.anim.curve.Target()
	}
	return a.offset
}

// deltaToConsume clamps the desired target moved by pixelDelta and
// returns the portion of the delta that would actually move it. Zero
// when already at a bound in that direction. Side-effect free.
func (a *Animator) deltaToConsume(orientation Orientation, pixelDelta float64) float64 {
	cur := a.DesiredTargetOffset().Component(orientation)
	clamped := a.surface.ClampAxis(orientation, cur+pixelDelta)
	return clamped - cur
}

// UserScroll handles one scroll request of delta units of the given
// granularity, where step is the unit size in cells.
//
// Precise-pixel input, and all input while the surface has animation
// disabled, is consumed immediately with no curve. Otherwise the
// request retargets the running animation, starts a new one, or — when
// the move would be zero-length and nothing is animating — latches:
// DidScroll is false and the entire delta is handed back for the caller
// to chain to an enclosing surface.
func (a *Animator) UserScroll(orientation Orientation, granularity Granularity, step, delta float64) Result {
	if !a.surface.ScrollAnimatorEnabled() || granularity == ByPrecisePixel {
		return a.scrollWithoutAnimation(orientation, step, delta)
	}

	used := a.deltaToConsume(orientation, step*delta)
	target := a.DesiredTargetOffset().Moved(orientation, used)

	if a.anim.active {
		if target != a.anim.curve.Target() {
			a.anim.curve.UpdateTarget(a.now().Sub(a.anim.startedAt), target)
		}
		// Consumed in full either way: while animating, this surface
		// keeps the latch even for requests that cannot move the
		// target any further.
		return Result{DidScroll: true}
	}

	if target == a.offset {
		// Zero-length move and nothing in flight: refuse to start the
		// animation and report the whole delta unused so it can chain
		// to an ancestor instead of dying at this boundary.
		return Result{DidScroll: false, UnusedDelta: delta}
	}

	curve := NewCurve(target, a.easing, a.policy)
	curve.SetInitialValue(a.offset)
	a.anim = runningAnimation{active: true, startedAt: a.now(), curve: curve}

	a.surface.RegisterForAnimation()
	// First frame runs synchronously so the response to the request is
	// not delayed by a scheduler round-trip.
	a.animationTick()
	return Result{DidScroll: true}
}

// scrollWithoutAnimation is the immediate path: single-axis clamp,
// commit, notify. Unused delta is the request units the clamp refused.
func (a *Animator) scrollWithoutAnimation(orientation Orientation, step, delta float64) Result {
	cur := a.offset.Component(orientation)
	clamped := a.surface.ClampAxis(orientation, cur+step*delta)
	if clamped == cur {
		return Result{DidScroll: false, UnusedDelta: delta}
	}
	used := clamped - cur
	a.offset = a.offset.WithComponent(orientation, clamped)
	a.surface.NotifyPositionChanged()
	unused := delta
	if step != 0 {
		unused = delta - used/step
	}
	return Result{DidScroll: true, UnusedDelta: unused}
}

// ScrollToOffsetWithoutAnimation jumps straight to offset, discarding
// any in-flight animation together with its target. The offset is
// committed as given; callers pass in-bounds values or accept the
// consequences.
func (a *Animator) ScrollToOffsetWithoutAnimation(offset Offset) {
	a.offset = offset
	a.CancelAnimations()
	a.surface.NotifyPositionChanged()
}

// CancelAnimations discards the running animation, if any, without
// sampling it first. The committed offset is untouched. Idempotent.
func (a *Animator) CancelAnimations() {
	a.anim = runningAnimation{}
}

// ServiceScrollAnimations advances the animation by one frame. Called
// by the host once per granted frame callback; a call while idle is a
// harmless no-op.
func (a *Animator) ServiceScrollAnimations() {
	if a.anim.active {
		a.animationTick()
	}
}

func (a *Animator) animationTick() {
	elapsed := a.now().Sub(a.anim.startedAt)
	finished := elapsed > a.anim.curve.Duration()

	sample := a.anim.curve.Target()
	if !finished {
		sample = a.anim.curve.Value(elapsed)
	}

	// Bounds may have shrunk since the animation started; the curve's
	// value is re-clamped at every commit.
	a.offset = a.surface.ClampOffset(sample)

	if finished {
		a.anim = runningAnimation{}
	} else {
		a.surface.ScheduleAnimation()
	}

	a.surface.NotifyPositionChanged()
}
