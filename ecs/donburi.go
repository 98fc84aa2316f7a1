package ecs

import (
	"github.com/phanxgames/transit"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// TransitionEventType is the Donburi event type for transit transition events.
// Subscribe to this in your ECS systems to react to widgets being shown,
// hidden or lost mid-transition.
var TransitionEventType = events.NewEventType[transit.TransitionEvent]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world.
// Transition events are published to TransitionEventType and can be
// consumed with events.Subscribe and ProcessEvents.
func NewDonburiSink(world donburi.World) transit.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitEvent(event transit.TransitionEvent) {
	TransitionEventType.Publish(s.world, event)
}
