// internal/event/event.go
package event

import (
	"fmt"
	"log"
)

// Payload is implemented by every event payload. The payload decides its own
// type, so an event can never be published under the wrong topic.
type Payload interface {
	EventType() EventType
}

// Event — структура события.
type Event struct {
	Type    EventType
	Time    float64 // game time of publication
	Payload Payload
}

// Listener — интерфейс для подписчиков на события.
type Listener interface {
	OnEvent(e Event)
}

// ListenerFunc adapts a function to Listener.
type ListenerFunc func(e Event)

// OnEvent calls f(e).
func (f ListenerFunc) OnEvent(e Event) { f(e) }

// Subscription identifies one Subscribe call for Unsubscribe.
type Subscription int

type subscriber struct {
	id       Subscription
	listener Listener
}

// Dispatcher — синхронный диспетчер событий. Subscribers of a topic run in
// subscription order before Dispatch returns.
type Dispatcher struct {
	listeners map[EventType][]subscriber
	nextID    Subscription
}

// NewDispatcher — создаёт новый диспетчер.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]subscriber),
		nextID:    1,
	}
}

// Subscribe — подписка на событие. Panics on a type outside the closed set.
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) Subscription {
	if !eventType.Valid() {
		panic(fmt.Sprintf("event: subscribe to undefined event type %d", int(eventType)))
	}
	id := d.nextID
	d.nextID++
	d.listeners[eventType] = append(d.listeners[eventType], subscriber{id: id, listener: listener})
	return id
}

// SubscribeMany subscribes one listener to several types and returns the subscriptions.
func (d *Dispatcher) SubscribeMany(listener Listener, types ...EventType) []Subscription {
	subs := make([]Subscription, 0, len(types))
	for _, t := range types {
		subs = append(subs, d.Subscribe(t, listener))
	}
	return subs
}

// Unsubscribe — отписка. Unknown ids are ignored.
func (d *Dispatcher) Unsubscribe(id Subscription) {
	for t, subs := range d.listeners {
		for i, s := range subs {
			if s.id == id {
				d.listeners[t] = append(subs[:i:i], subs[i+1:]...)
				return
			}
		}
	}
}

// Publish dispatches a payload at the given game time.
func (d *Dispatcher) Publish(at float64, p Payload) {
	d.Dispatch(Event{Type: p.EventType(), Time: at, Payload: p})
}

// Dispatch — отправка события всем подписчикам. A panicking subscriber is
// logged and skipped so it cannot break the simulation tick.
func (d *Dispatcher) Dispatch(e Event) {
	if !e.Type.Valid() {
		panic(fmt.Sprintf("event: dispatch of undefined event type %d", int(e.Type)))
	}
	// Снимок списка: подписка во время рассылки не влияет на текущее событие.
	subs := d.listeners[e.Type]
	if len(subs) == 0 {
		return
	}
	snapshot := make([]subscriber, len(subs))
	copy(snapshot, subs)
	for _, s := range snapshot {
		d.deliver(s, e)
	}
}

func (d *Dispatcher) deliver(s subscriber, e Event) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("event: subscriber %d panicked on %s: %v", s.id, e.Type, r)
		}
	}()
	s.listener.OnEvent(e)
}

// HandlerCount returns the number of subscribers for a type.
func (d *Dispatcher) HandlerCount(t EventType) int {
	return len(d.listeners[t])
}
