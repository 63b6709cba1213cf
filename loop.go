package lilt

// loopState is the loop controller for one tween.
type loopState struct {
	count     int // configured repeats: LoopInfinite, 0, or N
	kind      LoopType
	delay     float64
	remaining int
	cycle     int
	reversed  bool
	gap       float64 // loop delay left before the current cycle starts
}

func (l *loopState) rewind() {
	l.remaining = l.count
	l.cycle = 0
	l.reversed = false
	l.gap = 0
}

// recount changes the repeat count mid-flight, keeping the cycles already run.
func (l *loopState) recount(count int) {
	l.count = count
	if count < 0 {
		l.remaining = LoopInfinite
		return
	}
	l.remaining = max(count-l.cycle, 0)
}

func (l *loopState) infinite() bool {
	return l.count < 0
}

// next moves to the following cycle. It reports false when no repeats remain.
func (l *loopState) next() bool {
	if l.remaining == 0 {
		return false
	}
	if l.remaining > 0 {
		l.remaining--
	}
	l.cycle++
	l.reversed = l.kind == LoopYoyo && l.cycle%2 == 1
	return true
}

// nextCycle runs the loop transition after a cycle finishes. The new cycle's
// endpoints are chosen immediately; the loop delay gap runs afterwards, while
// current still holds the finished cycle's end value. It reports false when
// the tween has no cycles left.
func (tw *Tween[T]) nextCycle() bool {
	if !tw.loop.next() {
		return false
	}
	tw.applyCycle()
	tw.elapsed = 0
	tw.loop.gap = tw.loop.delay
	return true
}

// offsetChecker is implemented by interpolators whose Sub is only defined for
// some pairs of values.
type offsetChecker[T any] interface {
	CanOffset(a, b T) bool
}

// canOffset reports whether Add(b, Sub(a, b)) == a holds for a and b under
// interp.
func canOffset[T any](interp Interpolator[T], a, b T) bool {
	if c, ok := interp.(offsetChecker[T]); ok {
		return c.CanOffset(a, b)
	}
	return true
}

// applyCycle picks from/to for the cycle the loop controller just entered.
func (tw *Tween[T]) applyCycle() {
	switch tw.loop.kind {
	case LoopYoyo:
		if tw.loop.reversed {
			tw.from, tw.to = tw.origTo, tw.origFrom
		} else {
			tw.from, tw.to = tw.origFrom, tw.origTo
		}
	case LoopIncremental:
		if !canOffset(tw.interp, tw.origTo, tw.origFrom) {
			warnf("incremental loop: end %v is not an offset of start %v; restarting instead", tw.origTo, tw.origFrom)
			tw.loop.kind = LoopRestart
			tw.from, tw.to = tw.origFrom, tw.origTo
			return
		}
		delta := tw.interp.Sub(tw.origTo, tw.origFrom)
		tw.from = tw.to
		tw.to = tw.interp.Add(tw.to, delta)
	default:
		tw.from, tw.to = tw.origFrom, tw.origTo
	}
}
