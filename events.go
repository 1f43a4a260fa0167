package scratchroad

// EventSink is the interface for optional ECS or renderer integration.
// When set on a Road, lifecycle events are forwarded to it.
type EventSink interface {
	EmitEvent(event Event)
}

// Event carries lifecycle data to the rendering collaborator.
type Event struct {
	Type  EventType
	RunID string
	// Obstacle fields (valid for EventObstacleSpawned, EventObstacleDespawned)
	ObstacleID ObstacleID
	TypeID     TypeID
	TypeName   string
	Side       Side
	// Position and scale of the obstacle or lane marking
	X, Y   float64
	ScaleX float64
	ScaleY float64
	// Progress fields (valid for EventProgress, EventScratchComplete)
	Percent float64
	Source  ProgressSource
}

// EventFunc adapts a plain function to EventSink.
type EventFunc func(Event)

// EmitEvent calls f(event).
func (f EventFunc) EmitEvent(event Event) {
	f(event)
}
