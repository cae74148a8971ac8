package eventbus

import (
	"log"
	"runtime/debug"
	"sync"

	"grouplist/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventGroupInserted   = domain.EventGroupInserted
	EventGroupRemoved    = domain.EventGroupRemoved
	EventGroupToggled    = domain.EventGroupToggled
	EventBulkExpansion   = domain.EventBulkExpansion
	EventInvalidPosition = domain.EventInvalidPosition
	EventSurfaceMissing  = domain.EventSurfaceMissing
	EventNotify          = domain.EventNotify
)

// Re-export domain event types
type GroupInsertedEvent = domain.GroupInsertedEvent
type GroupRemovedEvent = domain.GroupRemovedEvent
type GroupToggledEvent = domain.GroupToggledEvent
type BulkExpansionEvent = domain.BulkExpansionEvent
type InvalidPositionEvent = domain.InvalidPositionEvent
type SurfaceMissingEvent = domain.SurfaceMissingEvent
type NotifyEvent = domain.NotifyEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus carries the adapter's diagnostic events. It is the observability
// hook: the core publishes notable transitions (bounds violations, missing
// nested surfaces, notification dispatches) and never depends on whether
// anyone listens.
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
	Stop()
}

type subscription struct {
	id      int
	handler EventHandler
}

// bus is the concrete implementation of EventBus
type bus struct {
	mu        sync.RWMutex
	handlers  map[EventType][]subscription
	nextID    int
	eventChan chan DomainEvent
	wg        sync.WaitGroup
	quit      chan struct{}
	quitOnce  sync.Once
}

// New creates a new event bus and starts its dispatcher
func New() EventBus {
	b := &bus{
		handlers:  make(map[EventType][]subscription),
		eventChan: make(chan DomainEvent, 256),
		quit:      make(chan struct{}),
	}

	b.wg.Add(1)
	go b.dispatch()

	return b
}

// Publish publishes an event to all subscribers. Never blocks: when the
// buffer is full the event is dropped with a log line.
func (b *bus) Publish(event DomainEvent) {
	select {
	case b.eventChan <- event:
	default:
		log.Printf("eventbus: channel full, dropping %s", event.Type())
	}
}

// Subscribe subscribes to events of a specific type
// Returns an unsubscribe function
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		subs := b.handlers[eventType]
		for i, s := range subs {
			if s.id == id {
				b.handlers[eventType] = append(subs[:i], subs[i+1:]...)
				break
			}
		}
	}
}

// Stop shuts the dispatcher down, discarding anything still queued
func (b *bus) Stop() {
	b.quitOnce.Do(func() { close(b.quit) })
	b.wg.Wait()
}

// dispatch handles event distribution to subscribers
func (b *bus) dispatch() {
	defer b.wg.Done()

	for {
		select {
		case event := <-b.eventChan:
			b.mu.RLock()
			subs := b.handlers[event.Type()]
			subsCopy := make([]subscription, len(subs))
			copy(subsCopy, subs)
			b.mu.RUnlock()

			for _, sub := range subsCopy {
				func(h EventHandler, eventType EventType) {
					defer func() {
						if r := recover(); r != nil {
							log.Printf("eventbus: handler panic for %s: %v\n%s", eventType, r, debug.Stack())
						}
					}()
					h(event)
				}(sub.handler, event.Type())
			}

		case <-b.quit:
			for {
				select {
				case <-b.eventChan:
					// Discard event
				default:
					return
				}
			}
		}
	}
}
