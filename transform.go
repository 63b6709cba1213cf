package lilt

import "github.com/hajimehoshi/ebiten/v2"

// localGeoM builds n's transform in its parent's space. Composition order is
// pivot, scale, skew, rotation, then position.
func localGeoM(n *Node) ebiten.GeoM {
	var g ebiten.GeoM
	g.Translate(-n.PivotX, -n.PivotY)
	g.Scale(n.ScaleX, n.ScaleY)
	if n.SkewX != 0 || n.SkewY != 0 {
		g.Skew(n.SkewX, n.SkewY)
	}
	g.Rotate(n.Rotation)
	g.Translate(n.X, n.Y)
	return g
}

// liveWorldGeoM walks the ancestor chain and returns n's current world
// transform without touching the cache. Scopes and path tweens need it
// because they write between scene refreshes.
func liveWorldGeoM(n *Node) ebiten.GeoM {
	g := localGeoM(n)
	for p := n.Parent; p != nil; p = p.Parent {
		g.Concat(localGeoM(p))
	}
	return g
}

// parentGeoM is the live world transform of n's parent, identity for a root.
func parentGeoM(n *Node) ebiten.GeoM {
	if n.Parent == nil {
		return ebiten.GeoM{}
	}
	return liveWorldGeoM(n.Parent)
}

// inverted returns the inverse of g, or identity when g is singular.
func inverted(g ebiten.GeoM) ebiten.GeoM {
	if !g.IsInvertible() {
		return ebiten.GeoM{}
	}
	g.Invert()
	return g
}

// refreshWorld recomputes the cached world transform and alpha of every
// dirty node in the subtree. force propagates a recomputed ancestor.
func refreshWorld(n *Node, parent ebiten.GeoM, parentAlpha float64, force bool) {
	if n.transformDirty || force {
		g := localGeoM(n)
		g.Concat(parent)
		n.world = g
		n.worldAlpha = parentAlpha * n.Alpha
		n.transformDirty = false
		force = true
	}
	for _, child := range n.children {
		refreshWorld(child, n.world, n.worldAlpha, force)
	}
}

// RotateOffset rotates offset by rotation radians. It depends on nothing but
// its arguments; path tweens use it to carry offsets authored in a node's
// frame into its parent's frame.
func RotateOffset(offset Vec2, rotation float64) Vec2 {
	var g ebiten.GeoM
	g.Rotate(rotation)
	x, y := g.Apply(offset.X, offset.Y)
	return Vec2{x, y}
}

// --- Setters ---
//
// Writing the exported fields directly also works; call MarkDirty afterwards
// so the next scene refresh picks the change up.

// SetPosition moves the node within its parent.
func (n *Node) SetPosition(x, y float64) {
	n.X, n.Y = x, y
	n.transformDirty = true
}

// SetScale sets both scale factors.
func (n *Node) SetScale(sx, sy float64) {
	n.ScaleX, n.ScaleY = sx, sy
	n.transformDirty = true
}

// SetRotation sets the rotation in radians.
func (n *Node) SetRotation(r float64) {
	n.Rotation = r
	n.transformDirty = true
}

// SetAlpha sets the group alpha.
func (n *Node) SetAlpha(a float64) {
	n.Alpha = a
	n.transformDirty = true
}

// MarkDirty flags the node for recomputation on the next scene refresh.
func (n *Node) MarkDirty() {
	n.transformDirty = true
}

// --- World space ---

// WorldPosition returns the node's origin in world space, read from the live
// hierarchy.
func (n *Node) WorldPosition() Vec2 {
	g := parentGeoM(n)
	x, y := g.Apply(n.X, n.Y)
	return Vec2{x, y}
}

// SetWorldPosition moves the node so its origin lands on p in world space.
func (n *Node) SetWorldPosition(p Vec2) {
	g := inverted(parentGeoM(n))
	n.SetPosition(g.Apply(p.X, p.Y))
}

// WorldGeoM returns the cached world transform for drawing. Scene.Update
// refreshes it after animations advance.
func (n *Node) WorldGeoM() ebiten.GeoM {
	return n.world
}

// WorldAlpha returns the cached product of the group alphas from the root
// down to this node.
func (n *Node) WorldAlpha() float64 {
	return n.worldAlpha
}

// WorldToLocal converts a world-space point into this node's space.
func (n *Node) WorldToLocal(wx, wy float64) (lx, ly float64) {
	g := inverted(liveWorldGeoM(n))
	return g.Apply(wx, wy)
}

// LocalToWorld converts a point in this node's space into world space.
func (n *Node) LocalToWorld(lx, ly float64) (wx, wy float64) {
	g := liveWorldGeoM(n)
	return g.Apply(lx, ly)
}
