package lilt

import "testing"

func TestNodeConstructorDefaults(t *testing.T) {
	for _, n := range []*Node{NewContainer("c"), NewSprite("s"), NewLabel("l", "hi")} {
		if n.ScaleX != 1 || n.ScaleY != 1 {
			t.Errorf("%s: scale = (%v, %v), want (1, 1)", n.Name, n.ScaleX, n.ScaleY)
		}
		if n.Alpha != 1 || n.Color != ColorWhite || !n.Visible {
			t.Errorf("%s: appearance defaults wrong: %+v", n.Name, n)
		}
		if n.ID == 0 {
			t.Errorf("%s: ID should be assigned", n.Name)
		}
	}
}

func TestIsRenderable(t *testing.T) {
	if NewContainer("c").IsRenderable() {
		t.Error("container should not be renderable")
	}
	if !NewSprite("s").IsRenderable() {
		t.Error("sprite should be renderable")
	}
	if l := NewLabel("l", "hi"); !l.IsRenderable() || l.Text != "hi" {
		t.Errorf("label: renderable=%v text=%q", l.IsRenderable(), l.Text)
	}
}

func TestUniqueIDs(t *testing.T) {
	seen := map[uint32]bool{}
	for i := 0; i < 100; i++ {
		id := NewContainer("n").ID
		if seen[id] {
			t.Fatalf("duplicate ID %d", id)
		}
		seen[id] = true
	}
}

func TestAddChildReparent(t *testing.T) {
	a := NewContainer("a")
	b := NewContainer("b")
	c := NewSprite("c")
	a.AddChild(c)
	b.AddChild(c)

	if c.Parent != b {
		t.Error("child should belong to b")
	}
	if a.NumChildren() != 0 || b.NumChildren() != 1 {
		t.Errorf("children: a=%d b=%d, want 0 and 1", a.NumChildren(), b.NumChildren())
	}
}

func TestHierarchyMisusePanics(t *testing.T) {
	cases := []struct {
		name string
		f    func()
	}{
		{"cycle", func() {
			a, b := NewContainer("a"), NewContainer("b")
			a.AddChild(b)
			b.AddChild(a)
		}},
		{"self", func() {
			a := NewContainer("a")
			a.AddChild(a)
		}},
		{"nil child", func() { NewContainer("a").AddChild(nil) }},
		{"wrong parent", func() { NewContainer("a").RemoveChild(NewSprite("orphan")) }},
	}
	for _, tc := range cases {
		if _, ok := panicMessage(tc.f); !ok {
			t.Errorf("%s: expected a panic", tc.name)
		}
	}
}

func TestRemoveFromParent(t *testing.T) {
	p := NewContainer("p")
	c := NewSprite("c")
	p.AddChild(c)
	c.RemoveFromParent()
	if c.Parent != nil || p.NumChildren() != 0 {
		t.Error("child should be detached")
	}
	c.RemoveFromParent() // no-op
}

func TestDisposeSubtree(t *testing.T) {
	root := NewContainer("root")
	mid := NewContainer("mid")
	leaf := NewSprite("leaf")
	root.AddChild(mid)
	mid.AddChild(leaf)

	mid.Dispose()
	if !mid.IsDisposed() || !leaf.IsDisposed() {
		t.Error("subtree should be disposed")
	}
	if root.NumChildren() != 0 {
		t.Error("disposed node should be removed from its parent")
	}
	mid.Dispose() // idempotent
}

func TestDisposeKeepsLastValues(t *testing.T) {
	n := NewSprite("n")
	n.SetPosition(3, 4)
	n.UserData = "payload"
	n.Dispose()
	if n.X != 3 || n.Y != 4 {
		t.Errorf("position = (%v, %v), want last values kept", n.X, n.Y)
	}
	if n.UserData != nil || n.ID != 0 {
		t.Errorf("UserData = %v ID = %d, want both cleared", n.UserData, n.ID)
	}
}

func TestDirtyPropagationOnAddChild(t *testing.T) {
	p := NewContainer("p")
	c := NewContainer("c")
	g := NewSprite("g")
	c.AddChild(g)
	c.transformDirty = false
	g.transformDirty = false

	p.AddChild(c)
	if !c.transformDirty || !g.transformDirty {
		t.Error("AddChild should mark the whole subtree dirty")
	}
}
