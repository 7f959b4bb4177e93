package ecs

import (
	"github.com/phanxgames/sketchbook"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// SketchEventType is the Donburi event type for sketchbook lifecycle events.
var SketchEventType = events.NewEventType[sketchbook.Event]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Events are queued on SketchEventType and delivered by ProcessEvents.
func NewDonburiSink(world donburi.World) sketchbook.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event sketchbook.Event) {
	SketchEventType.Publish(s.world, event)
}
