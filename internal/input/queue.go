package input

import (
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"
)

type EventKind int

const (
	EventKeyUp EventKind = iota
	EventResize
	EventFocus
)

// Event is a window notification captured by a glfw callback and applied
// later by the frame loop.
type Event struct {
	Kind EventKind

	Key glfw.Key // EventKeyUp

	Width  int // EventResize, framebuffer pixels
	Height int

	Focused bool // EventFocus
}

func KeyUp(key glfw.Key) Event {
	return Event{Kind: EventKeyUp, Key: key}
}

func Resize(width, height int) Event {
	return Event{Kind: EventResize, Width: width, Height: height}
}

func Focus(focused bool) Event {
	return Event{Kind: EventFocus, Focused: focused}
}

// Queue buffers events between glfw.PollEvents and the next tick.
type Queue struct {
	mu     sync.Mutex
	events []Event
}

func NewQueue() *Queue {
	return &Queue{events: make([]Event, 0, 16)}
}

// Push appends an event in arrival order.
func (q *Queue) Push(e Event) {
	q.mu.Lock()
	q.events = append(q.events, e)
	q.mu.Unlock()
}

// Drain returns all pending events in arrival order and empties the queue.
func (q *Queue) Drain() []Event {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.events) == 0 {
		return nil
	}
	out := make([]Event, len(q.events))
	copy(out, q.events)
	q.events = q.events[:0]
	return out
}

// Len returns the number of pending events.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}
