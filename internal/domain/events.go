package domain

import "time"

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventQueryComposed      EventType = "QueryComposed"
	EventEmptyQueryRejected EventType = "EmptyQueryRejected"
	EventSearchDispatched   EventType = "SearchDispatched"
	EventDispatchFailed     EventType = "DispatchFailed"
	EventBackendChanged     EventType = "BackendChanged"
	EventConfigLoaded       EventType = "ConfigLoaded"
	EventConfigSaved        EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// QueryComposedEvent is emitted when a submit produced a request
type QueryComposedEvent struct {
	Request Request
}

func (e QueryComposedEvent) Type() EventType { return EventQueryComposed }

// EmptyQueryRejectedEvent is emitted when a submit was withheld for lack of query text
type EmptyQueryRejectedEvent struct {
	Backend Backend
}

func (e EmptyQueryRejectedEvent) Type() EventType { return EventEmptyQueryRejected }

// SearchDispatchedEvent is emitted once a request was handed to a dispatcher
type SearchDispatchedEvent struct {
	Request Request
	Via     string // dispatcher name
	At      time.Time
}

func (e SearchDispatchedEvent) Type() EventType { return EventSearchDispatched }

// DispatchFailedEvent is emitted when a dispatcher could not hand off a request
type DispatchFailedEvent struct {
	Request Request
	Via     string
	Err     error
	At      time.Time
}

func (e DispatchFailedEvent) Type() EventType { return EventDispatchFailed }

// BackendChangedEvent is emitted when the selected backend is replaced
type BackendChangedEvent struct {
	From Backend
	To   Backend
}

func (e BackendChangedEvent) Type() EventType { return EventBackendChanged }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path           string
	DefaultBackend string
	Categories     int
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is written
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
