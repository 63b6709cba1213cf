package lilt

import "github.com/hajimehoshi/ebiten/v2"

// Scene is the top-level object that owns the node tree and the runner that
// animates it. Call Update from ebiten.Game.Update.
type Scene struct {
	root   *Node
	runner *Runner
	debug  bool
}

// NewScene creates a new scene with a pre-created root container.
func NewScene() *Scene {
	return &Scene{
		root:   NewContainer("root"),
		runner: NewRunner(),
	}
}

// Root returns the scene's root container node.
func (s *Scene) Root() *Node {
	return s.root
}

// Runner returns the runner advanced by Update. Register tweens, frames,
// timelines and path tweens with it.
func (s *Scene) Runner() *Runner {
	return s.runner
}

// Update advances one ebiten tick: dt is 1/TPS.
func (s *Scene) Update() {
	s.Step(1.0 / float64(ebiten.TPS()))
}

// Step advances animations by dt seconds, then refreshes world transforms so
// drawing code sees this tick's values.
func (s *Scene) Step(dt float64) {
	s.runner.Update(dt)
	refreshWorld(s.root, ebiten.GeoM{}, 1, false)
}

// SetEventSink sets the optional ECS bridge for tween lifecycle events.
func (s *Scene) SetEventSink(sink EventSink) {
	s.runner.SetEventSink(sink)
}

// SetDebugMode enables or disables debug mode. When enabled, disposed-node
// access panics, tree depth warnings are printed, and per-tick runner stats
// are logged to the warning output.
//
// The flag is package-wide; with several scenes the last call wins.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}
