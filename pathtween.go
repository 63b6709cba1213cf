package lilt

// Orientation selects how a PathTween rotates its target.
type Orientation uint8

const (
	OrientNone           Orientation = iota // position only
	OrientFollowPath                        // face along the tangent
	OrientLookAtTarget                      // face another node
	OrientLookAtPosition                    // face a fixed point
)

// PathTween moves a node along a Path. It drives a FloatPool tween from 0 to
// 1 and evaluates the path at the eased progress, so every loop mode, ease,
// delay and step setting of Tween applies.
type PathTween struct {
	path   *Path
	target *Node

	orient   Orientation
	lookNode *Node
	lookAt   Vec2
	relative bool

	// Relative-mode frame, captured at the first Play.
	base     Vec2
	baseRot  float64
	resolved bool

	pos     Vec2
	tangent Vec2
	onMove  []func(pos, tangent Vec2)

	driver *Tween[float64]
	handle Handle
	killed bool
}

// NewPathTween creates an idle tween that moves target along path over
// duration seconds. target may be nil; OnMove listeners still receive every
// evaluated position.
func NewPathTween(target *Node, path *Path, duration float64) *PathTween {
	pt := &PathTween{path: path, target: target}
	pt.driver = FloatPool.Acquire().
		SetFrom(0).
		SetTo(1).
		SetDuration(duration).
		SetTarget(target).
		SetTag(pt).
		Bind(nil, pt.apply).
		OnKill(func() { pt.killed = true })
	pt.handle = pt.driver.Handle()
	return pt
}

// tween returns the driver while it is still ours.
func (pt *PathTween) tween() (*Tween[float64], bool) {
	if pt.killed {
		return nil, false
	}
	return FloatPool.Lookup(pt.handle)
}

// Driver exposes the underlying progress tween for further configuration
// (ease, loops, delay, step callbacks). It returns nil once the path tween
// has been killed.
func (pt *PathTween) Driver() *Tween[float64] {
	tw, _ := pt.tween()
	return tw
}

// SetEase sets the progress ease.
func (pt *PathTween) SetEase(e Ease) *PathTween {
	if tw, ok := pt.tween(); ok {
		tw.SetEase(e)
	}
	return pt
}

// SetDelay sets the seconds to wait after Play.
func (pt *PathTween) SetDelay(seconds float64) *PathTween {
	if tw, ok := pt.tween(); ok {
		tw.SetDelay(seconds)
	}
	return pt
}

// SetLoops sets the repeat count and loop mode. Incremental loops shift the
// path by its end-to-start offset every cycle.
func (pt *PathTween) SetLoops(count int, kind LoopType) *PathTween {
	if tw, ok := pt.tween(); ok {
		tw.SetLoops(count, kind)
	}
	return pt
}

// SetRelative treats waypoints as offsets from the target's position at the
// first Play, rotated by the target's rotation at that moment.
func (pt *PathTween) SetRelative(relative bool) *PathTween {
	pt.relative = relative
	return pt
}

// SetUnscaledTime makes a Runner drive this tween with the unscaled delta.
func (pt *PathTween) SetUnscaledTime(unscaled bool) *PathTween {
	if tw, ok := pt.tween(); ok {
		tw.SetUnscaledTime(unscaled)
	}
	return pt
}

// SetOrientation selects how the target is rotated. Use LookAt or LookAtPoint
// for the look-at modes.
func (pt *PathTween) SetOrientation(o Orientation) *PathTween {
	pt.orient = o
	return pt
}

// LookAt keeps the target facing node.
func (pt *PathTween) LookAt(node *Node) *PathTween {
	pt.orient = OrientLookAtTarget
	pt.lookNode = node
	return pt
}

// LookAtPoint keeps the target facing p, given in the target's parent space.
func (pt *PathTween) LookAtPoint(p Vec2) *PathTween {
	pt.orient = OrientLookAtPosition
	pt.lookAt = p
	return pt
}

// OnMove registers fn to receive every evaluated position and tangent.
func (pt *PathTween) OnMove(fn func(pos, tangent Vec2)) *PathTween {
	pt.onMove = append(pt.onMove, fn)
	return pt
}

// OnComplete registers fn to run when the final cycle finishes.
func (pt *PathTween) OnComplete(fn func()) *PathTween {
	if tw, ok := pt.tween(); ok {
		tw.OnComplete(fn)
	}
	return pt
}

// Position returns the most recently evaluated position.
func (pt *PathTween) Position() Vec2 { return pt.pos }

// Tangent returns the most recently evaluated tangent.
func (pt *PathTween) Tangent() Vec2 { return pt.tangent }

// Play starts or resumes the tween. The relative frame is captured on the
// first Play.
func (pt *PathTween) Play() *PathTween {
	tw, ok := pt.tween()
	if !ok {
		return pt
	}
	if !pt.resolved && tw.State() == StateIdle {
		pt.resolved = true
		if pt.target != nil {
			pt.base = Vec2{pt.target.X, pt.target.Y}
			pt.baseRot = pt.target.Rotation
		}
	}
	tw.Play()
	return pt
}

// Pause holds the tween.
func (pt *PathTween) Pause() {
	if tw, ok := pt.tween(); ok {
		tw.Pause()
	}
}

// Resume continues a paused tween.
func (pt *PathTween) Resume() {
	if tw, ok := pt.tween(); ok {
		tw.Resume()
	}
}

// Rewind moves the target back to the start of the path and pauses.
func (pt *PathTween) Rewind() {
	if tw, ok := pt.tween(); ok {
		tw.Rewind()
	}
}

// Complete jumps to the end of the final cycle.
func (pt *PathTween) Complete() {
	if tw, ok := pt.tween(); ok {
		tw.Complete()
	}
}

// Kill stops the tween for good.
func (pt *PathTween) Kill() {
	if tw, ok := pt.tween(); ok {
		tw.Kill()
	}
	pt.killed = true
}

// Advance moves the tween forward by dt seconds.
func (pt *PathTween) Advance(dt float64) {
	if tw, ok := pt.tween(); ok {
		tw.Advance(dt)
	}
}

// State reports the lifecycle state.
func (pt *PathTween) State() State {
	tw, ok := pt.tween()
	if !ok {
		return StateKilled
	}
	return tw.State()
}

// UnscaledTime reports whether a Runner drives this tween with unscaled time.
func (pt *PathTween) UnscaledTime() bool {
	tw, ok := pt.tween()
	return ok && tw.UnscaledTime()
}

func (pt *PathTween) generation() uint32 { return 1 }

func (pt *PathTween) attach(sink EventSink) {
	if tw, ok := pt.tween(); ok {
		tw.attach(sink)
	}
}

// apply evaluates the path at driver value t and writes the target.
func (pt *PathTween) apply(t float64) {
	tw, ok := pt.tween()
	if !ok {
		return
	}
	var shift Vec2
	if cycle := tw.Cycle(); cycle > 0 && tw.loop.kind == LoopIncremental {
		// The driver runs cycle..cycle+1 on incremental loops.
		t -= float64(cycle)
		if n := len(pt.path.Points); n > 1 {
			shift = pt.path.Points[n-1].Sub(pt.path.Points[0]).Mul(float64(cycle))
		}
	}

	pos, tangent := pt.path.Evaluate(t)
	pos = pos.Add(shift)
	if pt.relative {
		pos = pt.base.Add(RotateOffset(pos, pt.baseRot))
		tangent = RotateOffset(tangent, pt.baseRot)
	}
	pt.pos, pt.tangent = pos, tangent

	if n := pt.target; n != nil {
		n.SetPosition(pos.X, pos.Y)
		switch pt.orient {
		case OrientFollowPath:
			if tangent != (Vec2{}) {
				n.SetRotation(tangent.Angle())
			}
		case OrientLookAtTarget:
			if pt.lookNode != nil && !pt.lookNode.IsDisposed() {
				look := pt.lookNode.WorldPosition()
				if n.Parent != nil {
					look.X, look.Y = n.Parent.WorldToLocal(look.X, look.Y)
				}
				pt.face(n, look)
			}
		case OrientLookAtPosition:
			pt.face(n, pt.lookAt)
		}
	}

	for _, fn := range pt.onMove {
		fn(pos, tangent)
	}
}

// face rotates n toward p, both in n's parent space.
func (pt *PathTween) face(n *Node, p Vec2) {
	d := p.Sub(pt.pos)
	if d != (Vec2{}) {
		n.SetRotation(d.Angle())
	}
}
