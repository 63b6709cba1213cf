package lilt

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
)

// lastNodeID is not atomic: nodes are created and animated on one goroutine.
var lastNodeID uint32

func nextNodeID() uint32 {
	lastNodeID++
	return lastNodeID
}

// Node is what tweens, scopes and path tweens animate. Every kind of node
// shares this one struct; Type only decides where opacity is stored.
type Node struct {
	ID   uint32
	Name string
	Type NodeType

	Parent   *Node
	children []*Node

	// Local transform, relative to Parent.
	X, Y           float64
	ScaleX, ScaleY float64
	Rotation       float64 // radians
	SkewX, SkewY   float64 // radians
	PivotX, PivotY float64 // pixels

	// Cached by Scene.Update. WorldPosition and friends bypass the cache.
	world          ebiten.GeoM
	worldAlpha     float64
	transformDirty bool

	// Alpha is a group alpha that multiplies into descendants. Color.A is the
	// node's own alpha and only affects renderable nodes.
	Alpha   float64
	Color   Color
	Visible bool

	// Text is what a label shows.
	Text string

	UserData any

	disposed bool
}

func newNode(name string, typ NodeType) *Node {
	return &Node{
		ID:             nextNodeID(),
		Name:           name,
		Type:           typ,
		ScaleX:         1,
		ScaleY:         1,
		Alpha:          1,
		Color:          ColorWhite,
		Visible:        true,
		worldAlpha:     1,
		transformDirty: true,
	}
}

// NewContainer creates a grouping node. Its opacity is the group alpha.
func NewContainer(name string) *Node {
	return newNode(name, NodeTypeContainer)
}

// NewSprite creates a renderable node. Its opacity is Color.A.
func NewSprite(name string) *Node {
	return newNode(name, NodeTypeSprite)
}

// NewLabel creates a renderable node that carries text.
func NewLabel(name, text string) *Node {
	n := newNode(name, NodeTypeLabel)
	n.Text = text
	return n
}

// IsRenderable reports whether the node draws itself rather than only
// grouping children.
func (n *Node) IsRenderable() bool {
	return n.Type != NodeTypeContainer
}

// --- Hierarchy ---

// AddChild appends child, detaching it from any previous parent. It panics
// on a nil child or when child is n or one of n's ancestors.
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("lilt: cannot add nil child")
	}
	if globalDebug {
		debugCheckDisposed(n, "AddChild (parent)")
		debugCheckDisposed(child, "AddChild (child)")
	}
	for p := n; p != nil; p = p.Parent {
		if p == child {
			panic("lilt: adding child would create a cycle")
		}
	}
	if child.Parent != nil {
		child.Parent.detach(child)
	}
	child.Parent = n
	n.children = append(n.children, child)
	child.markSubtreeDirty()
	if globalDebug {
		debugCheckTreeDepth(child)
	}
}

// RemoveChild detaches child. It panics if child is not a child of n.
func (n *Node) RemoveChild(child *Node) {
	if child.Parent != n {
		panic("lilt: child's parent is not this node")
	}
	n.detach(child)
	child.Parent = nil
	child.markSubtreeDirty()
}

// RemoveFromParent detaches n from its parent, if it has one.
func (n *Node) RemoveFromParent() {
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}

// Children returns the child list. Callers must not modify it.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// detach drops child from the child list, leaving child.Parent alone.
func (n *Node) detach(child *Node) {
	if i := slices.Index(n.children, child); i >= 0 {
		n.children = slices.Delete(n.children, i, i+1)
	}
}

func (n *Node) markSubtreeDirty() {
	n.transformDirty = true
	for _, c := range n.children {
		c.markSubtreeDirty()
	}
}

// --- Disposal ---

// Dispose detaches the node and disposes it and its whole subtree. Tweens
// targeting a disposed node kill themselves on their next advance, and
// scopes skip it when they close.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.disposeTree()
}

func (n *Node) disposeTree() {
	for _, c := range n.children {
		c.Parent = nil
		c.disposeTree()
	}
	// Property values stay as they were so a disposed node reads back its
	// last animated state.
	n.disposed = true
	n.ID = 0
	n.Parent = nil
	n.children = nil
	n.UserData = nil
}

// IsDisposed reports whether Dispose has been called on the node or an
// ancestor.
func (n *Node) IsDisposed() bool {
	return n.disposed
}
