package lilt

// Node-bound tween constructors. Each returns an idle tween from the matching
// pool whose start is read from the node when Play is first called and whose
// values are written back to the node every advance. If the node is disposed
// the tween kills itself without writing.
//
//	tw := lilt.TweenPosition(hero, lilt.Vec2{X: 100, Y: 50}, 0.5, lilt.EaseOutCubic)
//	scene.Runner().Add(tw.Play())

// TweenProperty binds a tween from pool to prop on node.
func TweenProperty[T any](pool *Pool[T], node *Node, prop Property[T], to T, duration float64, e Ease) *Tween[T] {
	tw := pool.Acquire().
		SetTo(to).
		SetDuration(duration).
		SetEase(e).
		SetTarget(node)
	if node == nil {
		warnf("tween %d: nil %s target", tw.ID, prop.Name)
		return tw
	}
	return tw.Bind(
		func() T { return prop.get(node) },
		func(v T) { prop.set(node, v) },
	)
}

// propRotation reads and writes Node.Rotation in radians.
var propRotation = NewProperty("rotation",
	func(n *Node) float64 { return n.Rotation },
	(*Node).SetRotation,
	func(a, b float64) float64 { return a + b },
)

// propText reads and writes a label's text.
var propText = NewProperty("text",
	func(n *Node) string { return n.Text },
	func(n *Node, s string) { n.Text = s },
	Typewriter{}.Add,
)

// TweenPosition animates the node's local position to to.
func TweenPosition(node *Node, to Vec2, duration float64, e Ease) *Tween[Vec2] {
	return TweenProperty(Vec2Pool, node, PropPosition, to, duration, e)
}

// TweenWorldPosition animates the node's world-space origin to to.
func TweenWorldPosition(node *Node, to Vec2, duration float64, e Ease) *Tween[Vec2] {
	return TweenProperty(Vec2Pool, node, PropWorldPosition, to, duration, e)
}

// TweenScale animates ScaleX and ScaleY to to.
func TweenScale(node *Node, to Vec2, duration float64, e Ease) *Tween[Vec2] {
	return TweenProperty(Vec2Pool, node, PropScale, to, duration, e)
}

// TweenOpacity animates the node's opacity: group alpha on containers, color
// alpha on sprites and labels.
func TweenOpacity(node *Node, to, duration float64, e Ease) *Tween[float64] {
	return TweenProperty(FloatPool, node, PropOpacity, to, duration, e)
}

// TweenRotation animates Rotation (radians) to to.
func TweenRotation(node *Node, to, duration float64, e Ease) *Tween[float64] {
	return TweenProperty(FloatPool, node, propRotation, to, duration, e)
}

// TweenColor animates all four components of the node's color to to in RGB.
// Use SetInterpolator(ColorLerp{Space: ColorSpaceLab}) for perceptual blends.
func TweenColor(node *Node, to Color, duration float64, e Ease) *Tween[Color] {
	return TweenProperty(ColorPool, node, PropColor, to, duration, e)
}

// TweenText types text into a label rune by rune, starting from empty.
func TweenText(node *Node, text string, duration float64) *Tween[string] {
	return TweenProperty(StringPool, node, propText, text, duration, EaseLinear).SetFrom("")
}
