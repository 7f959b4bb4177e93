package sketchbook

// EventType identifies a lifecycle change inside a sketch.
type EventType uint8

const (
	EventBubbleSpawned EventType = iota // a bubble joined the field
	EventBubbleCulled                   // a bubble left the top of the viewport
	EventStarDeparted                   // a resting star started a transition
	EventStarArrived                    // a star finished its transition
	EventJumpStarted                    // the character left the ground
	EventJumpLanded                     // the character came back to rest
)

var eventNames = [...]string{
	EventBubbleSpawned: "bubble-spawned",
	EventBubbleCulled:  "bubble-culled",
	EventStarDeparted:  "star-departed",
	EventStarArrived:   "star-arrived",
	EventJumpStarted:   "jump-started",
	EventJumpLanded:    "jump-landed",
}

func (t EventType) String() string {
	if int(t) < len(eventNames) {
		return eventNames[t]
	}
	return "unknown"
}

// Event describes one lifecycle change. Pos is in normalized coordinates for
// particles and zero for jump events.
type Event struct {
	Type  EventType
	Tick  int
	Index int
	Pos   Vec2
}

// EventSink is the interface for optional event consumers such as the ECS
// bridge in sketchbook/ecs. When set on a Runner, every event is forwarded.
type EventSink interface {
	EmitEvent(event Event)
}

// EventRecorder is an EventSink that keeps every event in order.
type EventRecorder struct {
	Events []Event
}

// EmitEvent appends the event.
func (r *EventRecorder) EmitEvent(event Event) {
	r.Events = append(r.Events, event)
}

// Count returns how many recorded events have the given type.
func (r *EventRecorder) Count(t EventType) int {
	n := 0
	for _, e := range r.Events {
		if e.Type == t {
			n++
		}
	}
	return n
}
