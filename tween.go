package lilt

import "math"

// tweenIDCounter is not atomic: tweens are created on one goroutine.
var tweenIDCounter uint32

func nextTweenID() uint32 {
	tweenIDCounter++
	if tweenIDCounter == 0 {
		tweenIDCounter++
	}
	return tweenIDCounter
}

// Tween animates a value of type T from a start to an end over a duration.
//
// Tweens come from a Pool (see FloatTween, Vec2Tween and friends, or
// Pool.Acquire), are configured with the chainable Set* methods, and start
// advancing after Play. Call Advance each frame yourself or register the tween
// with a Runner.
//
// With autokill enabled (the default), a tween returns to its pool when it
// completes or is killed; the pointer must not be used after that. Keep a
// Handle and resolve it through Pool.Lookup when a reference may outlive the
// tween.
type Tween[T any] struct {
	// ID is unique per acquisition and zero while the tween sits in its pool.
	ID uint32
	// Tag is free-form user data forwarded with lifecycle events.
	Tag any

	interp Interpolator[T]
	pool   *Pool[T]
	index  uint32
	gen    uint32
	pooled bool

	// Configuration
	start    T
	end      T
	hasStart bool
	duration float64
	delay    float64
	relative bool
	autoKill bool
	unscaled bool
	ease     Ease
	curve    Curve

	// Binding
	get    func() T
	set    func(T)
	target *Node

	// Runtime
	state     State
	resolved  bool
	origFrom  T
	origTo    T
	from      T
	to        T
	current   T
	elapsed   float64
	delayLeft float64
	loop      loopState
	step      stepper

	// Listeners, invoked in registration order.
	onUpdate   []func(T)
	onComplete []func()
	onKill     []func()
	onRewind   []func()
	onStep     []func(step int, value T)
	onLoop     []func(cycle int)

	sink EventSink
}

// reset returns the tween to the state of a fresh acquisition, keeping its
// pool slot and generation. Listener slices keep their capacity.
func (tw *Tween[T]) reset() {
	var zero T
	tw.ID = 0
	tw.Tag = nil
	tw.interp = tw.pool.interp

	tw.start, tw.end = zero, zero
	tw.hasStart = false
	tw.duration = 0
	tw.delay = 0
	tw.relative = false
	tw.autoKill = defaults.DefaultAutoKill
	tw.unscaled = false
	tw.ease = defaults.DefaultEase
	tw.curve = nil

	tw.get, tw.set, tw.target = nil, nil, nil

	tw.state = StateIdle
	tw.resolved = false
	tw.origFrom, tw.origTo = zero, zero
	tw.from, tw.to, tw.current = zero, zero, zero
	tw.elapsed = 0
	tw.delayLeft = 0
	tw.loop = loopState{}
	tw.step = stepper{}

	tw.onUpdate = clearListeners(tw.onUpdate)
	tw.onComplete = clearListeners(tw.onComplete)
	tw.onKill = clearListeners(tw.onKill)
	tw.onRewind = clearListeners(tw.onRewind)
	tw.onStep = clearListeners(tw.onStep)
	tw.onLoop = clearListeners(tw.onLoop)

	tw.sink = nil
}

// clearListeners drops every listener reference but keeps the backing array.
func clearListeners[F any](s []F) []F {
	clear(s)
	return s[:0]
}

// --- Configuration ---

// SetFrom sets an explicit start value. Without one, the start is read from
// the bound getter when Play is first called, or is the interpolator's
// default.
func (tw *Tween[T]) SetFrom(v T) *Tween[T] {
	tw.start = v
	tw.hasStart = true
	return tw
}

// SetTo sets the end value, or the offset from the start in relative mode.
func (tw *Tween[T]) SetTo(v T) *Tween[T] {
	tw.end = v
	return tw
}

// SetDuration sets the length of one cycle in seconds. It must be > 0 by the
// time Play is called.
func (tw *Tween[T]) SetDuration(seconds float64) *Tween[T] {
	tw.duration = seconds
	return tw
}

// SetDelay sets the seconds to wait after Play before the first cycle.
func (tw *Tween[T]) SetDelay(seconds float64) *Tween[T] {
	tw.delay = math.Max(seconds, 0)
	if !tw.resolved {
		tw.delayLeft = tw.delay
	}
	return tw
}

// SetEase selects a catalog curve and clears any custom curve.
func (tw *Tween[T]) SetEase(e Ease) *Tween[T] {
	tw.ease = e
	tw.curve = nil
	return tw
}

// SetCurve installs a custom curve that overrides the catalog ease. A nil
// curve reverts to the configured ease.
func (tw *Tween[T]) SetCurve(c Curve) *Tween[T] {
	tw.curve = c
	return tw
}

// SetLoops sets how many extra cycles follow the first (LoopInfinite repeats
// forever) and how each new cycle continues. On a tween already in flight the
// cycles run so far count against the new total.
func (tw *Tween[T]) SetLoops(count int, kind LoopType) *Tween[T] {
	if count < 0 {
		count = LoopInfinite
	}
	tw.loop.kind = kind
	if !tw.resolved {
		tw.loop.count = count
		tw.loop.remaining = count
		return tw
	}
	tw.loop.recount(count)
	return tw
}

// SetLoopDelay sets the pause in seconds between cycles.
func (tw *Tween[T]) SetLoopDelay(seconds float64) *Tween[T] {
	tw.loop.delay = math.Max(seconds, 0)
	return tw
}

// SetRelative makes the end value an offset from the start resolved at the
// first Play.
func (tw *Tween[T]) SetRelative(relative bool) *Tween[T] {
	tw.relative = relative
	return tw
}

// SetAutoKill controls whether the tween kills itself on completion and
// returns to its pool when killed.
func (tw *Tween[T]) SetAutoKill(autoKill bool) *Tween[T] {
	tw.autoKill = autoKill
	return tw
}

// SetUnscaledTime makes a Runner drive this tween with the unscaled delta.
func (tw *Tween[T]) SetUnscaledTime(unscaled bool) *Tween[T] {
	tw.unscaled = unscaled
	return tw
}

// SetStep configures step callbacks. interval is seconds for StepTimeInterval
// and a progress fraction for StepProgress; it is ignored for
// StepEveryFrame. A non-positive interval disables stepping with a warning.
func (tw *Tween[T]) SetStep(mode StepMode, interval float64) *Tween[T] {
	if !tw.step.configure(mode, interval) {
		warnf("tween %d: step interval %v must be > 0; step callbacks disabled", tw.ID, interval)
	}
	return tw
}

// SetInterpolator replaces the pool's default interpolator, e.g. to switch a
// rotation tween to spherical blending.
func (tw *Tween[T]) SetInterpolator(i Interpolator[T]) *Tween[T] {
	if i != nil {
		tw.interp = i
	}
	return tw
}

// Bind attaches the animated property. get supplies the start value when no
// explicit start is set; set receives every computed value. Either may be nil.
func (tw *Tween[T]) Bind(get func() T, set func(T)) *Tween[T] {
	tw.get = get
	tw.set = set
	return tw
}

// SetTarget ties the tween to a node. If the node is disposed the tween
// kills itself on its next advance without writing.
func (tw *Tween[T]) SetTarget(n *Node) *Tween[T] {
	tw.target = n
	return tw
}

// SetTag attaches free-form data reported with lifecycle events.
func (tw *Tween[T]) SetTag(tag any) *Tween[T] {
	tw.Tag = tag
	return tw
}

// --- Listeners ---

// OnUpdate registers fn to receive the value after every advance.
func (tw *Tween[T]) OnUpdate(fn func(value T)) *Tween[T] {
	tw.onUpdate = append(tw.onUpdate, fn)
	return tw
}

// OnComplete registers fn to run once when the final cycle finishes.
func (tw *Tween[T]) OnComplete(fn func()) *Tween[T] {
	tw.onComplete = append(tw.onComplete, fn)
	return tw
}

// OnKill registers fn to run once when the tween is killed.
func (tw *Tween[T]) OnKill(fn func()) *Tween[T] {
	tw.onKill = append(tw.onKill, fn)
	return tw
}

// OnRewind registers fn to run every time the tween is rewound.
func (tw *Tween[T]) OnRewind(fn func()) *Tween[T] {
	tw.onRewind = append(tw.onRewind, fn)
	return tw
}

// OnStep registers fn to run once per crossed step boundary. value is the
// tween's value at the boundary.
func (tw *Tween[T]) OnStep(fn func(step int, value T)) *Tween[T] {
	tw.onStep = append(tw.onStep, fn)
	return tw
}

// OnLoop registers fn to run when a new cycle begins.
func (tw *Tween[T]) OnLoop(fn func(cycle int)) *Tween[T] {
	tw.onLoop = append(tw.onLoop, fn)
	return tw
}

// --- Accessors ---

// State returns the lifecycle state. A tween back in its pool reports
// StateKilled.
func (tw *Tween[T]) State() State {
	if tw.pooled {
		return StateKilled
	}
	return tw.state
}

// Value returns the most recently computed value.
func (tw *Tween[T]) Value() T { return tw.current }

// From returns the start of the current cycle.
func (tw *Tween[T]) From() T { return tw.from }

// To returns the end of the current cycle.
func (tw *Tween[T]) To() T { return tw.to }

// Duration returns the configured cycle length in seconds.
func (tw *Tween[T]) Duration() float64 { return tw.duration }

// Elapsed returns the seconds advanced within the current cycle.
func (tw *Tween[T]) Elapsed() float64 { return tw.elapsed }

// Progress returns the raw (un-eased) progress of the current cycle.
func (tw *Tween[T]) Progress() float64 {
	if tw.duration <= 0 {
		return 0
	}
	return tw.elapsed / tw.duration
}

// Cycle returns the zero-based index of the current cycle.
func (tw *Tween[T]) Cycle() int { return tw.loop.cycle }

// StepIndex returns how many step callbacks have fired since Play or Rewind.
func (tw *Tween[T]) StepIndex() int { return tw.step.index }

// IsPlaying reports whether the tween advances on the next tick.
func (tw *Tween[T]) IsPlaying() bool { return tw.state == StatePlaying }

// UnscaledTime reports whether a Runner drives this tween with unscaled time.
func (tw *Tween[T]) UnscaledTime() bool { return tw.unscaled }

// Handle returns a generation-checked reference to this tween.
func (tw *Tween[T]) Handle() Handle { return Handle{index: tw.index, gen: tw.gen} }

// --- Lifecycle ---

// Play starts an idle tween or resumes a paused one. A tween with a
// non-positive duration is not started and a warning is reported.
func (tw *Tween[T]) Play() *Tween[T] {
	switch tw.state {
	case StateIdle:
		if tw.duration <= 0 || math.IsNaN(tw.duration) {
			warnf("tween %d: duration %v must be > 0; Play ignored", tw.ID, tw.duration)
			return tw
		}
		tw.resolve()
		tw.state = StatePlaying
	case StatePaused:
		tw.state = StatePlaying
	}
	return tw
}

// resolve fixes the start and end values at the first Play.
func (tw *Tween[T]) resolve() {
	start := tw.interp.Default()
	switch {
	case tw.hasStart:
		start = tw.start
	case tw.get != nil:
		start = tw.get()
	}
	end := tw.end
	if tw.relative {
		end = tw.interp.Add(start, tw.end)
	}
	tw.origFrom, tw.origTo = start, end
	tw.from, tw.to = start, end
	tw.current = start
	tw.elapsed = 0
	tw.delayLeft = tw.delay
	tw.loop.rewind()
	tw.step.rewind()
	tw.resolved = true
}

// Pause holds a playing tween.
func (tw *Tween[T]) Pause() {
	if tw.state == StatePlaying {
		tw.state = StatePaused
	}
}

// Resume continues a paused tween.
func (tw *Tween[T]) Resume() {
	if tw.state == StatePaused {
		tw.state = StatePlaying
	}
}

// Rewind returns a playing, paused or completed tween to timeline position
// zero, before its delay, and leaves it paused. The bound property receives
// the start value and OnRewind listeners run, whether or not the tween ever
// completed.
func (tw *Tween[T]) Rewind() {
	switch tw.state {
	case StatePlaying, StatePaused, StateCompleted:
	default:
		return
	}
	gen := tw.gen
	tw.elapsed = 0
	tw.delayLeft = tw.delay
	tw.loop.rewind()
	tw.step.rewind()
	tw.from, tw.to = tw.origFrom, tw.origTo
	tw.current = tw.from
	tw.state = StatePaused
	if tw.set != nil && !tw.targetGone() {
		tw.set(tw.current)
	}
	for _, fn := range tw.onRewind {
		fn()
		if tw.gen != gen {
			return
		}
	}
	tw.emit(EventRewind, 0)
}

// Restart rewinds and plays again.
func (tw *Tween[T]) Restart() {
	tw.Rewind()
	tw.Play()
}

// Kill stops the tween for good. OnKill listeners run exactly once; further
// calls are no-ops. With autokill set the tween then returns to its pool.
func (tw *Tween[T]) Kill() {
	if tw.state == StateKilled || tw.pooled {
		return
	}
	gen := tw.gen
	tw.state = StateKilled
	for _, fn := range tw.onKill {
		fn()
		if tw.gen != gen {
			return
		}
	}
	tw.emit(EventKill, 0)
	if tw.autoKill {
		tw.Release()
	}
}

// Complete jumps to the end of the final cycle and completes. Tweens that
// loop forever cannot complete; the call is ignored with a warning.
func (tw *Tween[T]) Complete() {
	if tw.state != StatePlaying && tw.state != StatePaused {
		return
	}
	if tw.loop.infinite() {
		warnf("tween %d: Complete ignored on an infinite loop", tw.ID)
		return
	}
	for tw.loop.next() {
		tw.applyCycle()
	}
	tw.loop.gap = 0
	tw.delayLeft = 0
	tw.elapsed = tw.duration
	tw.state = StatePlaying
	gen := tw.gen
	if !tw.update(0, gen) {
		return
	}
	tw.finish()
}

// Release returns the tween to its pool immediately. The pointer must not be
// used afterwards.
func (tw *Tween[T]) Release() {
	if tw.pool != nil {
		tw.pool.Release(tw)
	}
}

// --- Advance ---

// Advance moves the tween forward by dt seconds. It does nothing unless the
// tween is playing. Within one call listeners fire in the order OnUpdate,
// OnStep, then OnLoop or OnComplete; a listener that kills, pauses, rewinds or
// releases the tween stops the rest of the advance.
func (tw *Tween[T]) Advance(dt float64) {
	if tw.state != StatePlaying {
		return
	}
	if dt < 0 || math.IsNaN(dt) {
		dt = 0
	}
	if tw.targetGone() {
		tw.Kill()
		return
	}
	gen := tw.gen

	if tw.delayLeft > 0 {
		if dt < tw.delayLeft {
			tw.delayLeft -= dt
			return
		}
		dt -= tw.delayLeft
		tw.delayLeft = 0
	}

	for {
		if tw.loop.gap > 0 {
			if dt < tw.loop.gap {
				tw.loop.gap -= dt
				return
			}
			dt -= tw.loop.gap
			tw.loop.gap = 0
		}

		before := tw.elapsed
		tw.elapsed += dt
		overflow := 0.0
		done := tw.elapsed >= tw.duration
		if done {
			overflow = tw.elapsed - tw.duration
			tw.elapsed = tw.duration
		}

		if !tw.update(tw.elapsed-before, gen) {
			return
		}
		if !done {
			return
		}
		if !tw.nextCycle() {
			tw.finish()
			return
		}
		for _, fn := range tw.onLoop {
			fn(tw.loop.cycle)
			if !tw.alive(gen) {
				return
			}
		}
		tw.emit(EventLoop, tw.loop.cycle)

		dt = overflow
		if dt <= 0 {
			return
		}
	}
}

// update computes the value at the current elapsed time, writes it, and
// dispatches update and step listeners. delta is the elapsed time added in
// this portion of the advance. It reports whether advancing may continue.
func (tw *Tween[T]) update(delta float64, gen uint32) bool {
	tw.current = tw.sample(tw.elapsed / tw.duration)
	if tw.set != nil {
		tw.set(tw.current)
	}
	for _, fn := range tw.onUpdate {
		fn(tw.current)
		if !tw.alive(gen) {
			return false
		}
	}

	amount := delta
	if tw.step.mode == StepProgress {
		amount = delta / tw.duration
	}
	tw.step.advance(amount, func(index int, behind float64) bool {
		value := tw.current
		if behind > 0 {
			if tw.step.mode == StepProgress {
				behind *= tw.duration
			}
			value = tw.sample(math.Max(tw.elapsed-behind, 0) / tw.duration)
		}
		for _, fn := range tw.onStep {
			fn(index, value)
			if !tw.alive(gen) {
				return false
			}
		}
		tw.emit(EventStep, index)
		return true
	})
	return tw.alive(gen)
}

// sample evaluates the tween at raw progress p of the current cycle. It has
// no side effects.
func (tw *Tween[T]) sample(p float64) T {
	var eased float64
	if tw.curve != nil {
		eased = tw.curve.Evaluate(p)
	} else {
		eased = tw.ease.Evaluate(p)
	}
	return tw.interp.Lerp(tw.from, tw.to, eased)
}

// finish marks the tween completed, runs OnComplete once and applies
// autokill.
func (tw *Tween[T]) finish() {
	gen := tw.gen
	tw.state = StateCompleted
	for _, fn := range tw.onComplete {
		fn()
		if tw.gen != gen {
			return
		}
	}
	tw.emit(EventComplete, 0)
	if tw.autoKill && tw.state == StateCompleted {
		tw.Kill()
	}
}

func (tw *Tween[T]) alive(gen uint32) bool {
	return tw.gen == gen && tw.state == StatePlaying
}

func (tw *Tween[T]) targetGone() bool {
	return tw.target != nil && tw.target.IsDisposed()
}

func (tw *Tween[T]) emit(typ EventType, step int) {
	if tw.sink != nil {
		tw.sink.EmitEvent(TweenEvent{Type: typ, TweenID: tw.ID, Tag: tw.Tag, Step: step})
	}
}

// --- Animation ---

func (tw *Tween[T]) generation() uint32 { return tw.gen }

func (tw *Tween[T]) attach(sink EventSink) { tw.sink = sink }
