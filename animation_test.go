package lilt

import (
	"math"
	"strings"
	"testing"
)

func TestTweenPositionReachesTarget(t *testing.T) {
	node := NewContainer("pos")
	node.X = 10
	node.Y = 20

	tw := TweenPosition(node, Vec2{100, 200}, 1.0, EaseLinear).Play()

	tw.Advance(0.5)
	assertVec2(t, "halfway", Vec2{node.X, node.Y}, Vec2{55, 110})
	tw.Advance(0.5)

	if tw.State() != StateKilled {
		t.Fatalf("state = %v, want killed after autokill", tw.State())
	}
	assertVec2(t, "end", Vec2{node.X, node.Y}, Vec2{100, 200})
}

func TestTweenPositionMarksDirty(t *testing.T) {
	node := NewSprite("dirty")
	node.transformDirty = false

	tw := TweenPosition(node, Vec2{5, 5}, 1, EaseLinear).Play()
	defer tw.Kill()
	tw.Advance(0.25)

	if !node.transformDirty {
		t.Error("position tween should mark the node dirty")
	}
}

func TestTweenWorldPosition(t *testing.T) {
	parent := NewContainer("parent")
	parent.X = 50
	parent.ScaleX = 2
	child := NewSprite("child")
	parent.AddChild(child)

	tw := TweenWorldPosition(child, Vec2{150, 40}, 1, EaseLinear).Play()
	tw.Advance(1)

	assertVec2(t, "world", child.WorldPosition(), Vec2{150, 40})
	assertVec2(t, "local", Vec2{child.X, child.Y}, Vec2{50, 40})
}

func TestTweenScaleReachesTarget(t *testing.T) {
	node := NewContainer("scale")

	tw := TweenScale(node, Vec2{2, 3}, 0.5, EaseLinear).Play()
	tw.Advance(0.25)
	assertNear(t, "ScaleX mid", node.ScaleX, 1.5)
	assertNear(t, "ScaleY mid", node.ScaleY, 2)
	tw.Advance(0.25)

	assertNear(t, "ScaleX", node.ScaleX, 2)
	assertNear(t, "ScaleY", node.ScaleY, 3)
}

func TestTweenOpacityContainerVsSprite(t *testing.T) {
	group := NewContainer("group")
	sprite := NewSprite("sprite")

	a := TweenOpacity(group, 0, 1, EaseLinear).Play()
	b := TweenOpacity(sprite, 0, 1, EaseLinear).Play()
	defer a.Kill()
	defer b.Kill()
	a.Advance(0.5)
	b.Advance(0.5)

	if group.Alpha != 0.5 || group.Color.A != 1 {
		t.Errorf("container: Alpha=%v Color.A=%v, want 0.5 and 1", group.Alpha, group.Color.A)
	}
	if sprite.Color.A != 0.5 || sprite.Alpha != 1 {
		t.Errorf("sprite: Alpha=%v Color.A=%v, want 1 and 0.5", sprite.Alpha, sprite.Color.A)
	}
}

func TestTweenRotationRelative(t *testing.T) {
	node := NewSprite("rot")
	node.Rotation = math.Pi / 4

	tw := TweenRotation(node, math.Pi/2, 1, EaseLinear).SetRelative(true).Play()
	tw.Advance(1)

	assertNear(t, "Rotation", node.Rotation, 3*math.Pi/4)
}

func TestTweenColorAllComponents(t *testing.T) {
	node := NewContainer("color")
	node.Color = Color{R: 1, G: 0, B: 0, A: 1}
	target := Color{R: 0, G: 1, B: 0.5, A: 0.5}

	tw := TweenColor(node, target, 1.0, EaseLinear).Play()
	tw.Advance(0.5)

	want := Color{R: 0.5, G: 0.5, B: 0.25, A: 0.75}
	c := node.Color
	if math.Abs(c.R-want.R) > 1e-9 || math.Abs(c.G-want.G) > 1e-9 ||
		math.Abs(c.B-want.B) > 1e-9 || math.Abs(c.A-want.A) > 1e-9 {
		t.Errorf("Color = %+v, want %+v", c, want)
	}

	tw.Advance(0.5)
	if node.Color != target {
		t.Errorf("Color = %+v, want %+v", node.Color, target)
	}
}

func TestTweenTextTypesRunes(t *testing.T) {
	label := NewLabel("label", "old")

	tw := TweenText(label, "héllo", 1).Play()
	if label.Text != "old" {
		t.Errorf("Text = %q before first advance, want unchanged", label.Text)
	}
	tw.Advance(0.4)
	if label.Text != "hé" {
		t.Errorf("Text = %q, want %q", label.Text, "hé")
	}
	tw.Advance(0.6)
	if label.Text != "héllo" {
		t.Errorf("Text = %q, want %q", label.Text, "héllo")
	}
}

func TestTweenDisposedNodeStopsWriting(t *testing.T) {
	node := NewContainer("disposed")

	tw := TweenPosition(node, Vec2{100, 0}, 1.0, EaseLinear).Play()
	tw.Advance(0.5)
	xBefore := node.X

	node.Dispose()
	tw.Advance(0.25)

	if tw.State() != StateKilled {
		t.Errorf("state = %v, want killed", tw.State())
	}
	if node.X != xBefore {
		t.Errorf("X changed after dispose: %v -> %v", xBefore, node.X)
	}
}

func TestTweenNilNodeWarns(t *testing.T) {
	buf := captureWarnings(t)
	tw := TweenOpacity(nil, 1, 1, EaseLinear).SetAutoKill(false)
	defer tw.Release()

	if !strings.Contains(buf.String(), "nil opacity target") {
		t.Errorf("warning output = %q", buf.String())
	}
	tw.Play()
	tw.Advance(0.5) // unbound; must not panic
	assertNear(t, "value", tw.Value(), 0.5)
}
