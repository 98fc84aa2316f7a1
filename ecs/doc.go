// Package ecs provides ECS adapters for transit's transition events.
//
// The primary adapter is [NewDonburiSink], which bridges transition events
// (started, completed, target lost, aborted) into a [Donburi] world as typed
// events. Subscribe to [TransitionEventType] in your ECS systems to receive
// them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	manager.SetEventSink(sink)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
