package lilt

// Animation is anything a Runner can drive: every *Tween[T], *Frame,
// *Timeline and *PathTween.
type Animation interface {
	// Advance moves the animation forward by dt seconds.
	Advance(dt float64)
	// State reports the lifecycle state.
	State() State
	// UnscaledTime reports whether the animation ignores the runner's time scale.
	UnscaledTime() bool

	generation() uint32
	attach(sink EventSink)
}

type runnerEntry struct {
	anim Animation
	gen  uint32
}

// Runner advances registered animations once per host tick, in registration
// order. It is optional: tweens can be advanced directly with Advance.
type Runner struct {
	// TimeScale multiplies dt for animations that use scaled time.
	TimeScale float64

	entries []runnerEntry
	sink    EventSink
}

// NewRunner creates a runner with the configured default time scale.
func NewRunner() *Runner {
	return &Runner{TimeScale: defaults.TimeScale}
}

// Add registers a. Animations added while the runner is updating start
// advancing on the next tick. A nil animation is ignored.
func (r *Runner) Add(a Animation) {
	if a == nil {
		return
	}
	if r.sink != nil {
		a.attach(r.sink)
	}
	r.entries = append(r.entries, runnerEntry{anim: a, gen: a.generation()})
}

// SetEventSink forwards lifecycle events of every registered animation to
// sink. Pass nil to stop forwarding.
func (r *Runner) SetEventSink(sink EventSink) {
	r.sink = sink
	for _, e := range r.entries {
		if r.live(e) {
			e.anim.attach(sink)
		}
	}
}

// Update advances all animations by dt seconds: scaled animations by
// dt*TimeScale, unscaled ones by dt.
func (r *Runner) Update(dt float64) {
	r.Advance(dt*r.TimeScale, dt)
}

// Advance advances scaled animations by scaled and unscaled ones by
// unscaled, then drops animations that were killed or returned to their pool.
func (r *Runner) Advance(scaled, unscaled float64) {
	var stats runnerStats
	n := len(r.entries)
	for i := 0; i < n; i++ {
		e := r.entries[i]
		if !r.live(e) {
			continue
		}
		if e.anim.UnscaledTime() {
			e.anim.Advance(unscaled)
		} else {
			e.anim.Advance(scaled)
		}
		stats.advanced++
	}
	stats.swept = r.sweep()
	stats.live = len(r.entries)
	r.debugLog(stats)
}

// live reports whether an entry still refers to the animation it registered.
func (r *Runner) live(e runnerEntry) bool {
	return e.anim.generation() == e.gen && e.anim.State() != StateKilled
}

// sweep compacts entries in place, keeping order. Returns the number removed.
func (r *Runner) sweep() int {
	kept := r.entries[:0]
	for _, e := range r.entries {
		if r.live(e) {
			kept = append(kept, e)
		}
	}
	removed := len(r.entries) - len(kept)
	clear(r.entries[len(kept):])
	r.entries = kept
	return removed
}

// KillAll kills every registered animation and empties the runner.
func (r *Runner) KillAll() {
	entries := r.entries
	r.entries = nil
	for _, e := range entries {
		if e.anim.generation() != e.gen {
			continue
		}
		if k, ok := e.anim.(interface{ Kill() }); ok {
			k.Kill()
		}
	}
}

// Len returns the number of registered animations still alive.
func (r *Runner) Len() int {
	count := 0
	for _, e := range r.entries {
		if r.live(e) {
			count++
		}
	}
	return count
}
