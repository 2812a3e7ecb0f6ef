package ecs

type EventType string

const (
	EventPause       EventType = "pause"
	EventInteract    EventType = "interact"
	EventEnemyKilled EventType = "enemy_killed"
	EventPlayerDied  EventType = "player_died"
)

// Event is a world-level notification drained by the game loop.
type Event struct {
	Type   EventType
	Entity Entity
	Data   any
}

// EventQueue is a FIFO of events raised during a frame.
type EventQueue struct {
	items []Event
}

func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all queued events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
