package core

// EventType distinguishes input events.
type EventType int

const (
	EventKeyDown EventType = iota
	EventQuit
)

// Key is a directional key recognized by the game.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyUp:
		return "Up"
	case KeyDown:
		return "Down"
	case KeyLeft:
		return "Left"
	case KeyRight:
		return "Right"
	default:
		return "None"
	}
}

// Direction maps a directional key to its movement direction.
// ok is false for keys that carry no direction.
func (k Key) Direction() (d Direction, ok bool) {
	switch k {
	case KeyUp:
		return DirUp, true
	case KeyDown:
		return DirDown, true
	case KeyLeft:
		return DirLeft, true
	case KeyRight:
		return DirRight, true
	}
	return 0, false
}

// Event is a single input event delivered by a frontend.
type Event struct {
	Type EventType
	Key  Key // Set for EventKeyDown
}

// KeyPress returns a key-press event.
func KeyPress(k Key) Event {
	return Event{Type: EventKeyDown, Key: k}
}

// Quit returns a quit event.
func Quit() Event {
	return Event{Type: EventQuit}
}

// Input is the input collaborator. PollEvents returns every event received
// since the previous call without blocking.
type Input interface {
	PollEvents() []Event
}

// EventQueue is an Input backed by an in-memory buffer.
// Frontends that receive events asynchronously push into it and the game drains it.
type EventQueue struct {
	events []Event
}

// Push appends an event to the queue.
func (q *EventQueue) Push(e Event) {
	q.events = append(q.events, e)
}

// PollEvents returns and clears all queued events.
func (q *EventQueue) PollEvents() []Event {
	events := q.events
	q.events = nil
	return events
}

// Len returns the number of queued events.
func (q *EventQueue) Len() int {
	return len(q.events)
}
