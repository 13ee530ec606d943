package ecs

import (
	"github.com/phanxgames/usedrag"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// DragEventType is the Donburi event type for usedrag drag events.
var DragEventType = events.NewEventType[usedrag.DragEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Drag events
// are published to DragEventType and can be consumed with events.Subscribe
// and ProcessEvents.
func NewDonburiSink(world donburi.World) usedrag.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitDrag(event usedrag.DragEvent) {
	DragEventType.Publish(s.world, event)
}
