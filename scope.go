package lilt

// PropertyKind names the node property a Property descriptor reads and
// writes.
type PropertyKind uint8

const (
	PropKindPosition      PropertyKind = iota // local X, Y
	PropKindWorldPosition                     // origin in world space
	PropKindScale                             // ScaleX, ScaleY
	PropKindOpacity                           // group alpha or own color alpha
	PropKindColor                             // Color
	PropKindActive                            // Visible
	PropKindCustom                            // user-defined via NewProperty
)

// Property describes how to read, write and offset one property of a Node.
type Property[T any] struct {
	Kind PropertyKind
	Name string

	get    func(n *Node) T
	set    func(n *Node, v T)
	offset func(start, by T) T
}

// NewProperty builds a custom property descriptor. offset resolves relative
// scope values against the captured start; if nil, relative scopes write
// their end value as is.
func NewProperty[T any](name string, get func(n *Node) T, set func(n *Node, v T), offset func(start, by T) T) Property[T] {
	return Property[T]{Kind: PropKindCustom, Name: name, get: get, set: set, offset: offset}
}

// Built-in property descriptors.
var (
	PropPosition = Property[Vec2]{
		Kind:   PropKindPosition,
		Name:   "position",
		get:    func(n *Node) Vec2 { return Vec2{n.X, n.Y} },
		set:    func(n *Node, v Vec2) { n.SetPosition(v.X, v.Y) },
		offset: Vec2.Add,
	}
	PropWorldPosition = Property[Vec2]{
		Kind:   PropKindWorldPosition,
		Name:   "world position",
		get:    (*Node).WorldPosition,
		set:    (*Node).SetWorldPosition,
		offset: Vec2.Add,
	}
	PropScale = Property[Vec2]{
		Kind:   PropKindScale,
		Name:   "scale",
		get:    func(n *Node) Vec2 { return Vec2{n.ScaleX, n.ScaleY} },
		set:    func(n *Node, v Vec2) { n.SetScale(v.X, v.Y) },
		offset: Vec2.Add,
	}
	// PropOpacity writes the group alpha of containers and the color alpha
	// of renderable nodes.
	PropOpacity = Property[float64]{
		Kind:   PropKindOpacity,
		Name:   "opacity",
		get:    nodeOpacity,
		set:    setNodeOpacity,
		offset: func(a, b float64) float64 { return a + b },
	}
	PropColor = Property[Color]{
		Kind:   PropKindColor,
		Name:   "color",
		get:    func(n *Node) Color { return n.Color },
		set:    func(n *Node, c Color) { n.Color = c },
		offset: ColorLerp{}.Add,
	}
	// PropActive toggles visibility. It has no relative form.
	PropActive = Property[bool]{
		Kind: PropKindActive,
		Name: "active",
		get:  func(n *Node) bool { return n.Visible },
		set:  func(n *Node, v bool) { n.Visible = v },
	}
)

func nodeOpacity(n *Node) float64 {
	if n.IsRenderable() {
		return n.Color.A
	}
	return n.Alpha
}

func setNodeOpacity(n *Node, a float64) {
	if n.IsRenderable() {
		n.Color.A = a
		return
	}
	n.SetAlpha(a)
}

// Reversible is a discrete property change that can be applied and undone.
// *Scope[T] implements it; Frame drives a list of them.
type Reversible interface {
	Open() *ScopeHandle
	Close()
}

// ScopeHandle is the guard for one activation of a Scope. Close restores the
// captured value exactly once; later calls do nothing. A nil handle is valid
// and closes to nothing.
type ScopeHandle struct {
	restore func()
	closed  bool
}

// Close restores the value captured when the handle was opened.
func (h *ScopeHandle) Close() {
	if h == nil || h.closed {
		return
	}
	h.closed = true
	h.restore()
	h.restore = nil
}

// Closed reports whether the handle has been closed.
func (h *ScopeHandle) Closed() bool {
	return h == nil || h.closed
}

// Scope jumps a node property to an end value on Open and puts it back on
// Close. The relative flag is the scope's own: a relative end is an offset
// from the value captured at Open.
type Scope[T any] struct {
	Target   *Node
	Prop     Property[T]
	End      T
	Relative bool

	handle *ScopeHandle
}

// NewScope creates a closed scope.
func NewScope[T any](target *Node, prop Property[T], end T, relative bool) *Scope[T] {
	return &Scope[T]{Target: target, Prop: prop, End: end, Relative: relative}
}

// Open captures the current value and writes the end value. While the scope
// is open, further calls return the same handle without writing again. A nil
// target is reported and ignored; a disposed target is skipped.
func (s *Scope[T]) Open() *ScopeHandle {
	if s.handle != nil && !s.handle.closed {
		return s.handle
	}
	if s.Target == nil {
		warnf("scope %s: nil target; Open ignored", s.Prop.Name)
		return nil
	}
	if s.Target.IsDisposed() || s.Prop.get == nil || s.Prop.set == nil {
		return nil
	}
	target := s.Target
	prop := s.Prop
	start := prop.get(target)
	end := s.End
	if s.Relative && prop.offset != nil {
		end = prop.offset(start, end)
	}
	prop.set(target, end)

	s.handle = &ScopeHandle{restore: func() {
		if target.IsDisposed() {
			return
		}
		prop.set(target, start)
	}}
	return s.handle
}

// Close restores the value captured by the most recent Open. Without an open
// activation it does nothing.
func (s *Scope[T]) Close() {
	h := s.handle
	s.handle = nil
	h.Close()
}

// IsOpen reports whether the scope holds an unrestored activation.
func (s *Scope[T]) IsOpen() bool {
	return s.handle != nil && !s.handle.closed
}
