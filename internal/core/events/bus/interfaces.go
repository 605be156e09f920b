package bus

import "time"

// EventBus is a synchronous, in-process pub/sub bus for race events.
//
// Handlers subscribe by Event.Type() or to every event with Wildcard. Publish
// calls handlers in the caller goroutine, in subscription order, and joins the
// errors they return. All methods are safe for concurrent use.
type EventBus interface {
	// Publish delivers the event to every active subscriber of its type and to
	// wildcard subscribers.
	Publish(event Event) error
	// Subscribe registers a handler for an event type, or Wildcard.
	Subscribe(eventType string, handler EventHandler) (Subscription, error)
	// Unsubscribe cancels the given Subscription. Nil is a no-op.
	Unsubscribe(Subscription) error
	// Published reports how many events went through the bus.
	Published() uint64
}

// Wildcard subscribes a handler to every event type.
const Wildcard = "*"

// Event is an immutable message transported by the EventBus.
type Event interface {
	Type() string
	Source() string
	Timestamp() time.Time
	Data() any
}

// EventHandler is invoked per delivered event. Returned errors are joined and
// handed back to the publisher.
type EventHandler func(event Event) error

// Subscription is a registered handler bound to an event type.
type Subscription interface {
	ID() string
	EventType() string
	IsActive() bool
	// Cancel de-registers the handler. Multiple calls are safe.
	Cancel() error
}
