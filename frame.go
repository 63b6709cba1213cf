package lilt

// Frame is a discrete, reversible timeline event: at offset seconds after Play
// it opens every scope it holds in the same tick, and Rewind closes them
// again in reverse order.
//
// Internally a Frame is driven by a FloatPool tween whose duration is the
// configured near-zero FrameDuration and whose delay is the offset.
type Frame struct {
	// Tag is reported with the driver's lifecycle events.
	Tag any

	offset    float64
	unscaled  bool
	scopes    []Reversible
	handles   []*ScopeHandle
	driver    *Tween[float64]
	sink      EventSink
	destroyed bool
}

// NewFrame creates a frame that fires offset seconds after Play.
func NewFrame(offset float64) *Frame {
	f := &Frame{offset: offset}
	f.driver = f.newDriver()
	return f
}

func (f *Frame) newDriver() *Tween[float64] {
	tw := FloatPool.Acquire().
		SetFrom(0).
		SetTo(1).
		SetDuration(defaults.FrameDuration).
		SetDelay(f.offset).
		SetAutoKill(false).
		SetUnscaledTime(f.unscaled).
		SetTag(f).
		OnComplete(f.open).
		OnRewind(f.close)
	if f.sink != nil {
		tw.attach(f.sink)
	}
	return tw
}

// Offset returns the frame's delay from Play in seconds.
func (f *Frame) Offset() float64 { return f.offset }

// Add appends a scope. Scopes added after the frame opened take effect the
// next time it opens.
func (f *Frame) Add(s Reversible) *Frame {
	if s != nil {
		f.scopes = append(f.scopes, s)
	}
	return f
}

// AddScope appends a scope on target's prop to f and returns it.
func AddScope[T any](f *Frame, target *Node, prop Property[T], end T, relative bool) *Scope[T] {
	s := NewScope(target, prop, end, relative)
	f.Add(s)
	return s
}

// AddPosition jumps target's local position to end.
func (f *Frame) AddPosition(target *Node, end Vec2, relative bool) *Frame {
	AddScope(f, target, PropPosition, end, relative)
	return f
}

// AddWorldPosition jumps target's world position to end.
func (f *Frame) AddWorldPosition(target *Node, end Vec2, relative bool) *Frame {
	AddScope(f, target, PropWorldPosition, end, relative)
	return f
}

// AddScale jumps target's scale to end.
func (f *Frame) AddScale(target *Node, end Vec2, relative bool) *Frame {
	AddScope(f, target, PropScale, end, relative)
	return f
}

// AddOpacity jumps target's opacity to end.
func (f *Frame) AddOpacity(target *Node, end float64, relative bool) *Frame {
	AddScope(f, target, PropOpacity, end, relative)
	return f
}

// AddColor jumps target's color to end.
func (f *Frame) AddColor(target *Node, end Color, relative bool) *Frame {
	AddScope(f, target, PropColor, end, relative)
	return f
}

// AddActive shows or hides target.
func (f *Frame) AddActive(target *Node, visible bool) *Frame {
	AddScope(f, target, PropActive, visible, false)
	return f
}

// open applies every scope once per activation.
func (f *Frame) open() {
	if len(f.handles) > 0 {
		return
	}
	for _, s := range f.scopes {
		f.handles = append(f.handles, s.Open())
	}
}

// close restores every applied scope in reverse order.
func (f *Frame) close() {
	for i := len(f.handles) - 1; i >= 0; i-- {
		f.handles[i].Close()
	}
	f.handles = clearListeners(f.handles)
}

// IsOpen reports whether the frame's scopes are applied.
func (f *Frame) IsOpen() bool { return len(f.handles) > 0 }

// Play starts or resumes the frame.
func (f *Frame) Play() *Frame {
	if !f.destroyed {
		f.driver.Play()
	}
	return f
}

// Pause holds the frame.
func (f *Frame) Pause() {
	if !f.destroyed {
		f.driver.Pause()
	}
}

// Rewind restores every applied scope and returns the frame to before its
// offset, paused.
func (f *Frame) Rewind() {
	if f.destroyed {
		return
	}
	if f.driver.State() == StateIdle {
		f.close()
		return
	}
	f.driver.Rewind()
}

// Kill stops the frame. Applied scopes stay applied.
func (f *Frame) Kill() {
	if !f.destroyed {
		f.driver.Kill()
	}
}

// Advance moves the frame forward by dt seconds.
func (f *Frame) Advance(dt float64) {
	if !f.destroyed {
		f.driver.Advance(dt)
	}
}

// State reports the driver's lifecycle state; destroyed frames are killed.
func (f *Frame) State() State {
	if f.destroyed {
		return StateKilled
	}
	return f.driver.State()
}

// SetUnscaledTime makes a Runner drive this frame with the unscaled delta.
func (f *Frame) SetUnscaledTime(unscaled bool) *Frame {
	f.unscaled = unscaled
	if !f.destroyed {
		f.driver.SetUnscaledTime(unscaled)
	}
	return f
}

// UnscaledTime reports whether a Runner drives this frame with unscaled time.
func (f *Frame) UnscaledTime() bool { return f.unscaled }

// Regenerate replaces the driver with a fresh idle one keeping the same
// scopes and offset. Applied scopes are restored first. It also revives a
// destroyed frame.
func (f *Frame) Regenerate() *Frame {
	f.close()
	if f.driver != nil {
		f.driver.Release()
	}
	f.destroyed = false
	f.driver = f.newDriver()
	return f
}

// Destroy returns the driver to its pool and drops the scopes without
// restoring them. The frame reports StateKilled afterwards.
func (f *Frame) Destroy() {
	if f.destroyed {
		return
	}
	f.destroyed = true
	f.driver.Release()
	f.driver = nil
	f.handles = nil
	f.scopes = nil
}

func (f *Frame) generation() uint32 { return 1 }

func (f *Frame) attach(sink EventSink) {
	f.sink = sink
	if !f.destroyed {
		f.driver.attach(sink)
	}
}
