package ecs

// EventType names a world event.
type EventType string

const (
	EventPlayerAttack     EventType = "player_attack"
	EventAdversaryHit     EventType = "adversary_hit"
	EventAdversaryKilled  EventType = "adversary_killed"
	EventAdversaryRemoved EventType = "adversary_removed"
	EventPlayerHit        EventType = "player_hit"
	EventPlayerDefeated   EventType = "player_defeated"
)

// Event is a world event payload.
type Event struct {
	Type   EventType
	Entity Entity
	Amount float64
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
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
