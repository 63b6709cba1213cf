package ecs

import (
	"github.com/phanxgames/lilt"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// TweenEventType is the Donburi event type for lilt tween lifecycle events.
// Subscribe to this in your ECS systems to receive completion, kill, rewind,
// step and loop events.
var TweenEventType = events.NewEventType[lilt.TweenEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Tween events are published to TweenEventType and can be consumed with
// events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) lilt.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event lilt.TweenEvent) {
	TweenEventType.Publish(s.world, event)
}

// EntityOf returns the entity a tween was tagged with via SetTag, if any.
// Events whose entity has been removed from world report false.
func EntityOf(world donburi.World, event lilt.TweenEvent) (donburi.Entity, bool) {
	e, ok := event.Tag.(donburi.Entity)
	if !ok || !world.Valid(e) {
		var none donburi.Entity
		return none, false
	}
	return e, true
}
