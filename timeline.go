package lilt

import "slices"

// Timeline sequences frames on a shared clock. Frames fire in order of their
// time on that clock, however they were added, and rewinding closes them in
// exactly the reverse of the order they opened.
type Timeline struct {
	frames   []*Frame  // sorted by fireAt, stable for ties
	fireAt   []float64 // timeline time at which frames[i] fires
	opened   []*Frame  // frames in the order they opened
	state    State
	elapsed  float64
	unscaled bool
	sink     EventSink
}

// NewTimeline creates an idle timeline holding frames.
func NewTimeline(frames ...*Frame) *Timeline {
	tl := &Timeline{}
	for _, f := range frames {
		tl.Add(f)
	}
	return tl
}

// Add inserts a frame. A frame added to a playing timeline starts playing
// immediately, with its offset counted from now.
func (tl *Timeline) Add(f *Frame) *Timeline {
	if f == nil {
		return tl
	}
	if tl.sink != nil {
		f.attach(tl.sink)
	}
	tl.insert(f, tl.elapsed+f.offset)
	if tl.state == StatePlaying {
		f.Play()
	}
	return tl
}

// insert places f after every frame firing at or before at.
func (tl *Timeline) insert(f *Frame, at float64) {
	i := slices.IndexFunc(tl.fireAt, func(t float64) bool { return t > at })
	if i < 0 {
		i = len(tl.frames)
	}
	tl.frames = slices.Insert(tl.frames, i, f)
	tl.fireAt = slices.Insert(tl.fireAt, i, at)
}

// Frames returns the frames in firing order. The slice must not be
// modified.
func (tl *Timeline) Frames() []*Frame { return tl.frames }

// Duration returns the time at which the last frame fires.
func (tl *Timeline) Duration() float64 {
	d := 0.0
	for _, f := range tl.frames {
		d = max(d, f.offset+defaults.FrameDuration)
	}
	return d
}

// Elapsed returns the seconds advanced since Play or the last Rewind.
func (tl *Timeline) Elapsed() float64 { return tl.elapsed }

// Play starts or resumes every frame.
func (tl *Timeline) Play() *Timeline {
	if tl.state == StateKilled {
		return tl
	}
	for _, f := range tl.frames {
		f.Play()
	}
	tl.state = StatePlaying
	tl.settle()
	return tl
}

// Pause holds every frame.
func (tl *Timeline) Pause() {
	if tl.state != StatePlaying {
		return
	}
	for _, f := range tl.frames {
		f.Pause()
	}
	tl.state = StatePaused
}

// Rewind closes every applied frame in reverse opening order and leaves the
// timeline paused at zero. On replay every frame fires at its own offset.
func (tl *Timeline) Rewind() {
	if tl.state == StateKilled {
		return
	}
	for i := len(tl.opened) - 1; i >= 0; i-- {
		tl.opened[i].Rewind()
	}
	tl.opened = clearListeners(tl.opened)
	for i := len(tl.frames) - 1; i >= 0; i-- {
		tl.frames[i].Rewind()
	}
	tl.elapsed = 0
	tl.resort()
	if tl.state != StateIdle {
		tl.state = StatePaused
	}
}

// Seek rewinds and replays the timeline up to t seconds, applying every frame
// whose offset has passed. The play state is kept: a timeline that was not
// playing is paused at t.
func (tl *Timeline) Seek(t float64) {
	if tl.state == StateKilled {
		return
	}
	wasPlaying := tl.state == StatePlaying
	tl.Rewind()
	tl.Play()
	tl.Advance(max(t, 0))
	if !wasPlaying {
		tl.Pause()
	}
}

// Advance moves every frame forward by dt seconds. The timeline completes
// once all frames have fired.
func (tl *Timeline) Advance(dt float64) {
	if tl.state != StatePlaying {
		return
	}
	if dt > 0 {
		tl.elapsed += dt
	}
	// Frames crossed by one large dt still open in clock order.
	for _, f := range tl.frames {
		wasOpen := f.IsOpen()
		f.Advance(dt)
		if !wasOpen && f.IsOpen() {
			tl.opened = append(tl.opened, f)
		}
	}
	tl.settle()
}

// resort re-keys every frame by its own offset, as after a rewind.
func (tl *Timeline) resort() {
	frames := slices.Clone(tl.frames)
	tl.frames, tl.fireAt = tl.frames[:0], tl.fireAt[:0]
	for _, f := range frames {
		tl.insert(f, f.offset)
	}
}

// settle marks the timeline completed when no frame is left to fire.
func (tl *Timeline) settle() {
	if tl.state != StatePlaying {
		return
	}
	for _, f := range tl.frames {
		if s := f.State(); s == StatePlaying || s == StatePaused {
			return
		}
	}
	if len(tl.frames) > 0 {
		tl.state = StateCompleted
	}
}

// Kill stops every frame and the timeline for good.
func (tl *Timeline) Kill() {
	if tl.state == StateKilled {
		return
	}
	for _, f := range tl.frames {
		f.Kill()
	}
	tl.state = StateKilled
}

// State returns the lifecycle state.
func (tl *Timeline) State() State { return tl.state }

// SetUnscaledTime makes a Runner drive this timeline with the unscaled delta.
func (tl *Timeline) SetUnscaledTime(unscaled bool) *Timeline {
	tl.unscaled = unscaled
	return tl
}

// UnscaledTime reports whether a Runner drives this timeline with unscaled
// time.
func (tl *Timeline) UnscaledTime() bool { return tl.unscaled }

func (tl *Timeline) generation() uint32 { return 1 }

func (tl *Timeline) attach(sink EventSink) {
	tl.sink = sink
	for _, f := range tl.frames {
		f.attach(sink)
	}
}
