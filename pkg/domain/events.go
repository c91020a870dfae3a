package domain

import (
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventNodeEnter EventType = "node_enter"
	EventNodeLeave EventType = "node_leave"
	EventHandler   EventType = "handler"
	EventRemove    EventType = "remove"
	EventBuild     EventType = "build"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// NodeEvent represents entry into or exit from an entity node (block or element).
type NodeEvent struct {
	EventBase
	Block        string `json:"block"` // Governing block name, empty when none
	Elem         string `json:"elem,omitempty"`
	Position     int    `json:"position"`
	SiblingCount int    `json:"sibling_count"`
	Handlers     int    `json:"handlers"` // Length of the resolved chain
}

// HandlerEvent represents one entry of a handler chain.
type HandlerEvent struct {
	EventBase
	Block      string `json:"block"`
	Elem       string `json:"elem,omitempty"`
	Descriptor string `json:"descriptor"`
	Skipped    bool   `json:"skipped,omitempty"` // Modifier guard did not match
	Stopped    bool   `json:"stopped,omitempty"` // Handler called Stop
}

// BuildEvent summarizes a whole build pass.
type BuildEvent struct {
	EventBase
	Duration time.Duration `json:"duration"`
}

// LifecycleHooks defines callbacks for engine observability.
// Any field may be nil.
type LifecycleHooks struct {
	OnNodeEnter func(*NodeEvent)
	OnNodeLeave func(*NodeEvent)
	OnHandler   func(*HandlerEvent)
	OnRemove    func(*NodeEvent)
	OnBuild     func(*BuildEvent)
}

// ChainHooks combines several hook sets; callbacks run in argument order.
func ChainHooks(sets ...LifecycleHooks) LifecycleHooks {
	var out LifecycleHooks
	for _, s := range sets {
		out.OnNodeEnter = chain(out.OnNodeEnter, s.OnNodeEnter)
		out.OnNodeLeave = chain(out.OnNodeLeave, s.OnNodeLeave)
		out.OnHandler = chain(out.OnHandler, s.OnHandler)
		out.OnRemove = chain(out.OnRemove, s.OnRemove)
		out.OnBuild = chain(out.OnBuild, s.OnBuild)
	}
	return out
}

func chain[E any](a, b func(*E)) func(*E) {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return func(e *E) {
		a(e)
		b(e)
	}
}
