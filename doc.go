// Package lilt is a pooled, frame-driven tween engine for [Ebitengine]
// games, with reversible timeline frames.
//
// # Tweens
//
// A [Tween] animates a value from a start to an end over a duration under an
// [Ease]. Tweens come from per-type pools and are configured with chainable
// setters:
//
//	tw := lilt.FloatTween(0, 100, 1).
//		SetEase(lilt.EaseOutQuad).
//		SetLoops(2, lilt.LoopYoyo).
//		OnComplete(func() { fmt.Println("done") }).
//		Play()
//
// Supported value types are float64, [Vec2], [Vec3], [Vec4], [Quat], [Color]
// and string (typewriter reveal). Any other type works through a [Pool] with
// a custom [Interpolator].
//
// Tweens do nothing on their own: call [Tween.Advance] each frame, or
// register them with a [Runner]. A [Scene] owns a runner and advances it from
// [Scene.Update]:
//
//	type Game struct{ scene *lilt.Scene }
//
//	func (g *Game) Update() error { g.scene.Update(); return nil }
//
// Within one advance a tween fires OnUpdate, then OnStep, then OnLoop or
// OnComplete. Tweens in a runner advance in registration order.
//
// # Pooling
//
// With autokill (the default) a finished or killed tween returns to its pool
// and the pointer must not be used again. Keep a [Handle] and resolve it with
// [Pool.Lookup] when a reference may outlive the tween; a handle to a
// recycled slot never resolves.
//
// # Node tweens and paths
//
// [TweenPosition], [TweenScale], [TweenOpacity], [TweenRotation],
// [TweenColor] and [TweenText] bind a tween to a [Node]. A [PathTween] moves a
// node along a [Path] of linear or bezier segments, optionally rotating it to
// follow the path or face a point.
//
// # Frames and timelines
//
// A [Frame] is a set of [Scope] values that jump node properties at a
// timeline offset and restore them on rewind:
//
//	f := lilt.NewFrame(0.5).
//		AddOpacity(a, 1, false).
//		AddPosition(b, lilt.Vec2{X: 10}, true)
//	scene.Runner().Add(f.Play())
//	// ... later
//	f.Rewind() // both properties restored in the same tick
//
// A [Timeline] sequences frames and supports [Timeline.Seek].
//
// # Configuration and diagnostics
//
// Package defaults (ease, autokill, time scale, pool prewarm) load from YAML
// with [LoadConfig] and apply with [Configure]. Misconfiguration never panics
// on the per-tick path; it is reported on stderr with a "[lilt] warning:"
// prefix, redirectable with [SetWarningOutput].
//
// Lifecycle events can be forwarded to a Donburi world through the adapter in
// lilt/ecs.
//
// [Ebitengine]: https://ebitengine.org
package lilt
