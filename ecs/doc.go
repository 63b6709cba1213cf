// Package ecs provides ECS adapters for lilt's tween lifecycle events.
//
// The primary adapter is [NewDonburiSink], which bridges lilt tween events
// (complete, kill, rewind, step, loop) into a [Donburi] world as typed events.
// Subscribe to [TweenEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	scene.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
