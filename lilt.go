package lilt

import (
	"fmt"
	"math"

	"golang.org/x/image/math/f64"
)

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Interpolated values may leave [0, 1] under overshoot eases; clamping is the
// consumer's job.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1, 1}

// Vec2 is a 2D vector used for positions, offsets, scales, and path points.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Mul returns v scaled by s.
func (v Vec2) Mul(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// Angle returns the direction of v in radians, measured from +X toward +Y.
func (v Vec2) Angle() float64 { return math.Atan2(v.Y, v.X) }

// Vec3 is a 3D vector. It shares its layout with f64.Vec3 so values convert
// freely to and from golang.org/x/image/math/f64.
type Vec3 f64.Vec3

// Vec4 is a 4D vector, laid out like f64.Vec4.
type Vec4 f64.Vec4

// Quat is a rotation quaternion (X, Y, Z imaginary, W real).
type Quat struct {
	X, Y, Z, W float64
}

// QuatIdentity is the zero rotation.
var QuatIdentity = Quat{0, 0, 0, 1}

// QuatFromAxisAngle builds a rotation of angle radians around axis. The axis
// does not need to be normalized.
func QuatFromAxisAngle(axis Vec3, angle float64) Quat {
	l := math.Sqrt(axis[0]*axis[0] + axis[1]*axis[1] + axis[2]*axis[2])
	if l == 0 {
		return QuatIdentity
	}
	s, c := math.Sincos(angle / 2)
	s /= l
	return Quat{axis[0] * s, axis[1] * s, axis[2] * s, c}
}

// Mul returns the Hamilton product q*o (apply o first, then q).
func (q Quat) Mul(o Quat) Quat {
	return Quat{
		X: q.W*o.X + q.X*o.W + q.Y*o.Z - q.Z*o.Y,
		Y: q.W*o.Y - q.X*o.Z + q.Y*o.W + q.Z*o.X,
		Z: q.W*o.Z + q.X*o.Y - q.Y*o.X + q.Z*o.W,
		W: q.W*o.W - q.X*o.X - q.Y*o.Y - q.Z*o.Z,
	}
}

// Conj returns the conjugate of q, which is its inverse for unit quaternions.
func (q Quat) Conj() Quat { return Quat{-q.X, -q.Y, -q.Z, q.W} }

// Dot returns the 4D dot product of q and o.
func (q Quat) Dot(o Quat) float64 { return q.X*o.X + q.Y*o.Y + q.Z*o.Z + q.W*o.W }

// Len returns the 4D length of q.
func (q Quat) Len() float64 { return math.Sqrt(q.Dot(q)) }

// Normalize returns q scaled to unit length. The zero quaternion maps to
// QuatIdentity.
func (q Quat) Normalize() Quat {
	l := q.Len()
	if l == 0 {
		return QuatIdentity
	}
	return Quat{q.X / l, q.Y / l, q.Z / l, q.W / l}
}

// NodeType distinguishes how a Node stores its opacity. Containers carry a
// group alpha that multiplies into descendants; renderables carry their own
// color alpha.
type NodeType uint8

const (
	NodeTypeContainer NodeType = iota // group node with no visual output
	NodeTypeSprite                    // renderable quad or image
	NodeTypeLabel                     // renderable text
)

// State is the lifecycle state of a tween.
type State uint8

const (
	StateIdle      State = iota // acquired, not yet played
	StatePlaying                // advancing on each tick
	StatePaused                 // holding; Play or Resume continues
	StateCompleted              // final cycle finished
	StateKilled                 // terminal; returned to the pool when autokill is set
)

// String returns the lower-case state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateCompleted:
		return "completed"
	case StateKilled:
		return "killed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// LoopType selects how a tween continues after a cycle finishes.
type LoopType uint8

const (
	LoopRestart     LoopType = iota // jump back to the start each cycle
	LoopYoyo                        // reverse direction every cycle
	LoopIncremental                 // keep moving forward by the same delta
)

// LoopInfinite as a loop count repeats forever.
const LoopInfinite = -1

// StepMode selects when step callbacks fire.
type StepMode uint8

const (
	StepEveryFrame   StepMode = iota // once per advance
	StepTimeInterval                 // once per fixed span of active seconds
	StepProgress                     // once per fixed fraction of progress
)

// EventType identifies a tween lifecycle event forwarded to an EventSink.
type EventType uint8

const (
	EventComplete EventType = iota // final cycle finished
	EventKill                      // tween killed
	EventRewind                    // tween rewound
	EventStep                      // step callback boundary crossed
	EventLoop                      // a new cycle began
)

// TweenEvent carries lifecycle data for the EventSink bridge.
type TweenEvent struct {
	Type    EventType
	TweenID uint32
	Tag     any
	// Step is the step index for EventStep and the cycle index for EventLoop.
	Step int
}

// EventSink is the interface for optional lifecycle forwarding. When set on a
// Runner, every animation it drives reports its events to the sink after the
// tween's own listeners have run.
type EventSink interface {
	EmitEvent(event TweenEvent)
}
