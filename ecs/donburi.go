package ecs

import (
	"github.com/phanxgames/scratchroad"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// ObstacleEventType carries EventObstacleSpawned and EventObstacleDespawned.
var ObstacleEventType = events.NewEventType[scratchroad.Event]()

// LaneEventType carries EventLaneMarkingSpawned and EventLaneMarkingHidden.
var LaneEventType = events.NewEventType[scratchroad.Event]()

// ProgressEventType carries EventProgress and EventScratchComplete.
var ProgressEventType = events.NewEventType[scratchroad.Event]()

type donburiStore struct {
	world donburi.World
}

// NewDonburiStore creates an EventSink backed by a Donburi world.
// Events are queued on the matching event type and delivered by
// ProcessEvents or events.ProcessAllEvents.
func NewDonburiStore(world donburi.World) scratchroad.EventSink {
	return &donburiStore{world: world}
}

func (s *donburiStore) EmitEvent(event scratchroad.Event) {
	switch event.Type {
	case scratchroad.EventObstacleSpawned, scratchroad.EventObstacleDespawned:
		ObstacleEventType.Publish(s.world, event)
	case scratchroad.EventLaneMarkingSpawned, scratchroad.EventLaneMarkingHidden:
		LaneEventType.Publish(s.world, event)
	default:
		ProgressEventType.Publish(s.world, event)
	}
}
