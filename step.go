package lilt

// stepEpsilon absorbs float drift when a boundary lands exactly on the end of
// an advance (e.g. ten ticks of 0.1 reaching 1.0).
const stepEpsilon = 1e-9

// stepper tracks step-callback boundaries for one tween. The clock is active
// seconds in StepTimeInterval mode and accumulated raw progress (cycles count
// whole units) in StepProgress mode.
type stepper struct {
	mode     StepMode
	interval float64
	enabled  bool
	clock    float64
	last     float64
	index    int
}

// configure sets the mode and interval. A non-positive interval disables
// interval-based modes.
func (s *stepper) configure(mode StepMode, interval float64) bool {
	s.mode = mode
	s.interval = interval
	s.enabled = mode == StepEveryFrame || interval > 0
	s.rewind()
	return s.enabled
}

// rewind clears the counters but keeps the configuration.
func (s *stepper) rewind() {
	s.clock = 0
	s.last = 0
	s.index = 0
}

// advance moves the clock forward by amount and calls fire once for every
// boundary crossed, oldest first. behind is how far the boundary lies before
// the end of this advance, in clock units. fire returns false to stop
// dispatching (the tween was killed or recycled by a listener).
func (s *stepper) advance(amount float64, fire func(index int, behind float64) bool) {
	if !s.enabled {
		return
	}
	if s.mode == StepEveryFrame {
		s.index++
		fire(s.index, 0)
		return
	}
	s.clock += amount
	for s.clock+stepEpsilon >= s.last+s.interval {
		s.last += s.interval
		s.index++
		behind := s.clock - s.last
		if behind < 0 {
			behind = 0
		}
		if !fire(s.index, behind) {
			return
		}
	}
}
