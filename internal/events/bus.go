package events

import "sync"

// Handler consumes one delivered event.
type Handler func(Event)

type subscription struct {
	id int
	fn Handler
}

// Bus is a synchronous publish/subscribe dispatcher. Delivery happens on the
// emitting goroutine, in subscription order within one event name. Emitting
// an event nobody subscribed to is a no-op. Handlers may emit further events;
// a nested emit runs its handlers to completion before control returns to the
// outer handler.
type Bus struct {
	mu       sync.Mutex
	nextID   int
	handlers map[Name][]subscription
}

// NewBus creates an empty bus.
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[Name][]subscription),
	}
}

// Subscribe registers a handler for one event name and returns a function
// that removes it again. Handlers registered first are delivered to first.
func (b *Bus) Subscribe(name Name, fn Handler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.handlers[name] = append(b.handlers[name], subscription{id: id, fn: fn})

	return func() {
		b.unsubscribe(name, id)
	}
}

func (b *Bus) unsubscribe(name Name, id int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.handlers[name]
	for i, sub := range subs {
		if sub.id == id {
			b.handlers[name] = append(subs[:i:i], subs[i+1:]...)
			return
		}
	}
}

// Emit delivers the event to every current subscriber of its name. The
// subscriber list is snapshotted before delivery, so handlers are free to
// subscribe, unsubscribe or emit while the bus is dispatching.
func (b *Bus) Emit(event Event) {
	b.mu.Lock()
	subs := b.handlers[event.EventName()]
	snapshot := make([]subscription, len(subs))
	copy(snapshot, subs)
	b.mu.Unlock()

	for _, sub := range snapshot {
		sub.fn(event)
	}
}
