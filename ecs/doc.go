// Package ecs provides ECS adapters for sketchbook's event system.
//
// The primary adapter is [NewDonburiSink], which bridges sketch lifecycle
// events (bubble spawn and cull, star departure and arrival, jump start and
// landing) into a [Donburi] world as typed events. Subscribe to
// [SketchEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	runner.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
