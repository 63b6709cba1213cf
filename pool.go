package lilt

// Handle is a generation-checked reference to a pooled tween. A handle taken
// before a tween was released never resolves to the slot's next occupant.
// The zero Handle never resolves.
type Handle struct {
	index uint32
	gen   uint32
}

// IsZero reports whether h is the zero Handle.
func (h Handle) IsZero() bool {
	return h.gen == 0
}

// Pool recycles tweens of one value type. Slots are created on demand and
// never freed; a released slot is reused by index with its generation bumped.
//
// After warmup, Acquire and Release do not allocate. The caller must not
// release a tween that another part of the program still uses; the pool
// cannot detect that.
type Pool[T any] struct {
	interp Interpolator[T]
	slots  []*Tween[T]
	free   []uint32
}

// PoolStats reports pool occupancy.
type PoolStats struct {
	Slots int // slots ever created
	Free  int // slots waiting for reuse
	Live  int // slots handed out
}

// NewPool creates an empty pool whose tweens use interp by default.
func NewPool[T any](interp Interpolator[T]) *Pool[T] {
	return &Pool[T]{interp: interp}
}

// Acquire returns a tween in the Idle state with no listeners and default
// configuration. The caller sets its values, duration and ease before Play.
func (p *Pool[T]) Acquire() *Tween[T] {
	var tw *Tween[T]
	if n := len(p.free); n > 0 {
		tw = p.slots[p.free[n-1]]
		p.free = p.free[:n-1]
	} else {
		tw = p.newSlot()
	}
	tw.pooled = false
	tw.ID = nextTweenID()
	// Config may have changed while the slot sat on the free list.
	tw.ease = defaults.DefaultEase
	tw.autoKill = defaults.DefaultAutoKill
	return tw
}

func (p *Pool[T]) newSlot() *Tween[T] {
	tw := &Tween[T]{pool: p, index: uint32(len(p.slots)), gen: 1}
	tw.reset()
	p.slots = append(p.slots, tw)
	return tw
}

// Release resets tw and makes its slot available again. Releasing a tween a
// second time, or one from another pool, is ignored.
func (p *Pool[T]) Release(tw *Tween[T]) {
	if tw == nil || tw.pool != p || tw.pooled {
		return
	}
	tw.reset()
	tw.gen++
	if tw.gen == 0 {
		tw.gen = 1
	}
	tw.pooled = true
	p.free = append(p.free, tw.index)
}

// Lookup resolves a handle. It returns false if the tween behind h has been
// released since the handle was taken.
func (p *Pool[T]) Lookup(h Handle) (*Tween[T], bool) {
	if h.gen == 0 || int(h.index) >= len(p.slots) {
		return nil, false
	}
	tw := p.slots[h.index]
	if tw.pooled || tw.gen != h.gen {
		return nil, false
	}
	return tw, true
}

// Prewarm creates slots until at least n are free.
func (p *Pool[T]) Prewarm(n int) {
	for len(p.free) < n {
		tw := p.newSlot()
		tw.pooled = true
		p.free = append(p.free, tw.index)
	}
}

// Stats returns the pool's current occupancy.
func (p *Pool[T]) Stats() PoolStats {
	return PoolStats{
		Slots: len(p.slots),
		Free:  len(p.free),
		Live:  len(p.slots) - len(p.free),
	}
}

// Process-wide pools, one per built-in value type.
var (
	FloatPool  = NewPool[float64](Float)
	Vec2Pool   = NewPool[Vec2](Vec2Lerp{})
	Vec3Pool   = NewPool[Vec3](Vec3Lerp{})
	Vec4Pool   = NewPool[Vec4](Vec4Lerp{})
	QuatPool   = NewPool[Quat](QuatLerp{})
	ColorPool  = NewPool[Color](ColorLerp{})
	StringPool = NewPool[string](Typewriter{})
)

// FloatTween acquires a scalar tween from from to to over duration seconds.
func FloatTween(from, to, duration float64) *Tween[float64] {
	return FloatPool.Acquire().SetFrom(from).SetTo(to).SetDuration(duration)
}

// Vec2Tween acquires a 2D vector tween.
func Vec2Tween(from, to Vec2, duration float64) *Tween[Vec2] {
	return Vec2Pool.Acquire().SetFrom(from).SetTo(to).SetDuration(duration)
}

// Vec3Tween acquires a 3D vector tween.
func Vec3Tween(from, to Vec3, duration float64) *Tween[Vec3] {
	return Vec3Pool.Acquire().SetFrom(from).SetTo(to).SetDuration(duration)
}

// Vec4Tween acquires a 4D vector tween.
func Vec4Tween(from, to Vec4, duration float64) *Tween[Vec4] {
	return Vec4Pool.Acquire().SetFrom(from).SetTo(to).SetDuration(duration)
}

// QuatTween acquires a rotation tween. It blends component-wise; pass
// QuatLerp{Spherical: true} to SetInterpolator for slerp.
func QuatTween(from, to Quat, duration float64) *Tween[Quat] {
	return QuatPool.Acquire().SetFrom(from).SetTo(to).SetDuration(duration)
}

// ColorTween acquires an RGB color tween.
func ColorTween(from, to Color, duration float64) *Tween[Color] {
	return ColorPool.Acquire().SetFrom(from).SetTo(to).SetDuration(duration)
}

// StringTween acquires a typewriter tween that reveals to over from.
func StringTween(from, to string, duration float64) *Tween[string] {
	return StringPool.Acquire().SetFrom(from).SetTo(to).SetDuration(duration)
}
