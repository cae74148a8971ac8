package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventGroupInserted   EventType = "GroupInserted"
	EventGroupRemoved    EventType = "GroupRemoved"
	EventGroupToggled    EventType = "GroupToggled"
	EventBulkExpansion   EventType = "BulkExpansion"
	EventInvalidPosition EventType = "InvalidPosition"
	EventSurfaceMissing  EventType = "SurfaceMissing"
	EventNotify          EventType = "Notify"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// GroupInsertedEvent is emitted when a group is inserted into the collection
type GroupInsertedEvent struct {
	Position int
}

func (e GroupInsertedEvent) Type() EventType { return EventGroupInserted }

// GroupRemovedEvent is emitted when a group is removed from the collection
type GroupRemovedEvent struct {
	Position int
}

func (e GroupRemovedEvent) Type() EventType { return EventGroupRemoved }

// GroupToggledEvent is emitted when a header interaction flips a group's
// expansion flag
type GroupToggledEvent struct {
	Position int
	Expanded bool
}

func (e GroupToggledEvent) Type() EventType { return EventGroupToggled }

// BulkExpansionEvent is emitted when a bulk expand/collapse pass completes
type BulkExpansionEvent struct {
	Expanded bool
	Groups   int
	Notified bool // false when the adapter was detached at completion time
}

func (e BulkExpansionEvent) Type() EventType { return EventBulkExpansion }

// InvalidPositionEvent is emitted when a structural operation is rejected or
// fails on position bounds
type InvalidPositionEvent struct {
	Op       string // "add" or "remove"
	Position int
	Size     int
}

func (e InvalidPositionEvent) Type() EventType { return EventInvalidPosition }

// SurfaceMissingEvent is emitted when a parent cell's view subtree contains
// no nested list surface
type SurfaceMissingEvent struct {
	Position int
}

func (e SurfaceMissingEvent) Type() EventType { return EventSurfaceMissing }

// NotifyKind distinguishes the structural notifications forwarded to the
// attached rendering surface
type NotifyKind string

const (
	NotifyChanged      NotifyKind = "changed"
	NotifyInserted     NotifyKind = "inserted"
	NotifyRemoved      NotifyKind = "removed"
	NotifyRangeChanged NotifyKind = "range"
)

// NotifyEvent mirrors every notification dispatched to the attached surface
type NotifyEvent struct {
	Kind     NotifyKind
	Position int
	Count    int // only meaningful for range notifications
}

func (e NotifyEvent) Type() EventType { return EventNotify }
