package lilt

import (
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

const epsilon = 1e-9

func assertNear(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > epsilon {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

func assertVec2(t *testing.T, name string, got, want Vec2) {
	t.Helper()
	if math.Abs(got.X-want.X) > 1e-6 || math.Abs(got.Y-want.Y) > 1e-6 {
		t.Errorf("%s = %+v, want %+v", name, got, want)
	}
}

func assertGeoM(t *testing.T, name string, got, want ebiten.GeoM) {
	t.Helper()
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			if g, w := got.Element(i, j), want.Element(i, j); math.Abs(g-w) > epsilon {
				t.Errorf("%s(%d,%d) = %v, want %v", name, i, j, g, w)
			}
		}
	}
}

func TestLocalGeoMIdentity(t *testing.T) {
	n := NewContainer("test")
	assertGeoM(t, "identity", localGeoM(n), ebiten.GeoM{})
}

func TestLocalGeoMRotationAndPivot(t *testing.T) {
	n := NewContainer("test")
	n.Rotation = math.Pi / 2
	n.PivotX = 10
	n.X = 5

	// The pivot (10, 0) lands on the node's position.
	g := localGeoM(n)
	x, y := g.Apply(10, 0)
	assertNear(t, "x", x, 5)
	assertNear(t, "y", y, 0)
}

func TestLocalGeoMSkew(t *testing.T) {
	n := NewContainer("test")
	n.SkewX = math.Pi / 4

	// A 45 degree horizontal skew shifts x by y.
	g := localGeoM(n)
	x, y := g.Apply(0, 10)
	assertNear(t, "x", x, 10)
	assertNear(t, "y", y, 10)
}

func TestInvertedRoundTrip(t *testing.T) {
	n := NewContainer("test")
	n.X, n.Y = 3, -7
	n.ScaleX, n.ScaleY = 2, 0.5
	n.Rotation = 0.3
	m := localGeoM(n)
	m.Concat(inverted(m))
	assertGeoM(t, "m*inv", m, ebiten.GeoM{})
}

func TestInvertedSingularReturnsIdentity(t *testing.T) {
	var g ebiten.GeoM
	g.Scale(0, 0)
	g.Translate(5, 5)
	assertGeoM(t, "singular", inverted(g), ebiten.GeoM{})
}

func TestWorldTransformParentChild(t *testing.T) {
	parent := NewContainer("parent")
	parent.X = 100
	parent.ScaleX = 2
	child := NewSprite("child")
	child.X = 10
	parent.AddChild(child)

	refreshWorld(parent, ebiten.GeoM{}, 1, false)
	x, y := child.world.Apply(0, 0)
	assertNear(t, "world x", x, 120)
	assertNear(t, "world y", y, 0)
}

func TestAlphaPropagation(t *testing.T) {
	parent := NewContainer("parent")
	parent.Alpha = 0.5
	child := NewSprite("child")
	child.Alpha = 0.5
	parent.AddChild(child)

	refreshWorld(parent, ebiten.GeoM{}, 1, false)
	assertNear(t, "worldAlpha", child.WorldAlpha(), 0.25)
}

func TestDirtyFlagSkipsClean(t *testing.T) {
	n := NewContainer("n")
	refreshWorld(n, ebiten.GeoM{}, 1, false)

	// Changing X without marking dirty leaves the cached matrix alone.
	n.X = 50
	refreshWorld(n, ebiten.GeoM{}, 1, false)
	assertNear(t, "tx", n.world.Element(0, 2), 0)

	n.MarkDirty()
	refreshWorld(n, ebiten.GeoM{}, 1, false)
	assertNear(t, "tx", n.world.Element(0, 2), 50)
}

func TestDirtyParentForcesChildren(t *testing.T) {
	parent := NewContainer("parent")
	child := NewSprite("child")
	parent.AddChild(child)
	refreshWorld(parent, ebiten.GeoM{}, 1, false)

	parent.SetPosition(30, 0)
	if child.transformDirty {
		t.Fatal("child should be clean before the refresh")
	}
	refreshWorld(parent, ebiten.GeoM{}, 1, false)
	assertNear(t, "child tx", child.world.Element(0, 2), 30)
}

func TestRotateOffset(t *testing.T) {
	assertVec2(t, "quarter turn", RotateOffset(Vec2{10, 0}, math.Pi/2), Vec2{0, 10})
	assertVec2(t, "half turn", RotateOffset(Vec2{1, 2}, math.Pi), Vec2{-1, -2})
	assertVec2(t, "none", RotateOffset(Vec2{3, 4}, 0), Vec2{3, 4})
}

func TestWorldPositionUsesAncestors(t *testing.T) {
	root := NewContainer("root")
	root.X = 100
	root.Rotation = math.Pi / 2
	child := NewSprite("child")
	child.X = 10
	root.AddChild(child)

	// No Scene update has run; WorldPosition reads the live hierarchy.
	assertVec2(t, "world", child.WorldPosition(), Vec2{100, 10})
}

func TestSetWorldPositionRoundTrip(t *testing.T) {
	root := NewContainer("root")
	root.X, root.Y = 40, 20
	root.ScaleX, root.ScaleY = 2, 2
	child := NewSprite("child")
	root.AddChild(child)

	child.SetWorldPosition(Vec2{60, 60})
	assertVec2(t, "local", Vec2{child.X, child.Y}, Vec2{10, 20})
	assertVec2(t, "world", child.WorldPosition(), Vec2{60, 60})
}

func TestWorldGeoMMatchesLiveTransform(t *testing.T) {
	n := NewSprite("n")
	n.X, n.Y = 7, 9
	n.Rotation = 0.5
	refreshWorld(n, ebiten.GeoM{}, 1, false)

	g := n.WorldGeoM()
	gx, gy := g.Apply(3, 4)
	live := liveWorldGeoM(n)
	wx, wy := live.Apply(3, 4)
	assertNear(t, "x", gx, wx)
	assertNear(t, "y", gy, wy)
}

func TestWorldToLocalRoundtrip(t *testing.T) {
	parent := NewContainer("parent")
	parent.X, parent.Y = 10, 10
	parent.Rotation = 1
	child := NewSprite("child")
	child.ScaleX = 3
	parent.AddChild(child)

	wx, wy := child.LocalToWorld(5, 6)
	lx, ly := child.WorldToLocal(wx, wy)
	assertNear(t, "lx", lx, 5)
	assertNear(t, "ly", ly, 6)
}

func TestSettersDirty(t *testing.T) {
	n := NewContainer("n")
	setters := map[string]func(){
		"SetPosition": func() { n.SetPosition(1, 2) },
		"SetScale":    func() { n.SetScale(2, 2) },
		"SetRotation": func() { n.SetRotation(1) },
		"SetAlpha":    func() { n.SetAlpha(0.5) },
	}
	for name, set := range setters {
		n.transformDirty = false
		set()
		if !n.transformDirty {
			t.Errorf("%s did not mark the node dirty", name)
		}
	}
}
