package ecs

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

// CollisionEventKind identifies collision event types.
type CollisionEventKind string

const (
	CollisionEventLanded CollisionEventKind = "landed"
)

const CollisionEventType = "collision"

// CollisionEvent is emitted when an entity's contact state changes.
type CollisionEvent struct {
	Entity Entity
	Kind   CollisionEventKind
}

// EventQueue is a FIFO queue cleared at the end of every tick.
type EventQueue struct {
	items []Event
}

func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

// DrainCollisions removes and returns collision events of the given kind,
// leaving everything else queued.
func (q *EventQueue) DrainCollisions(kind CollisionEventKind) []CollisionEvent {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	var out []CollisionEvent
	kept := q.items[:0]
	for _, evt := range q.items {
		if ce, ok := evt.Data.(CollisionEvent); ok && evt.Type == CollisionEventType && ce.Kind == kind {
			out = append(out, ce)
			continue
		}
		kept = append(kept, evt)
	}
	q.items = kept
	return out
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
