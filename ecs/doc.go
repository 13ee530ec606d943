// Package ecs provides ECS adapters for usedrag's drag hooks.
//
// The primary adapter is [NewDonburiSink], which bridges drag reports
// (move and end) into a [Donburi] world as typed events. Subscribe to
// [DragEventType] in your ECS systems to receive them.
//
// Usage:
//
//	sink := ecs.NewDonburiSink(world)
//	usedrag.UseDrag(scene, node, handler, usedrag.HookConfig{Sink: sink})
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
