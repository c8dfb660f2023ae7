package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventPersonSelected   EventType = "PersonSelected"
	EventSelectionCleared EventType = "SelectionCleared"
	EventQueryDebounced   EventType = "QueryDebounced"
	EventConfigLoaded     EventType = "ConfigLoaded"
	EventError            EventType = "Error"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// PersonSelectedEvent is emitted when a candidate is picked
type PersonSelectedEvent struct {
	Person Person
}

func (e PersonSelectedEvent) Type() EventType { return EventPersonSelected }

// SelectionClearedEvent is emitted when the input is edited away from the selected name
type SelectionClearedEvent struct {
	Query string
}

func (e SelectionClearedEvent) Type() EventType { return EventSelectionCleared }

// QueryDebouncedEvent is emitted when the effective query settles
type QueryDebouncedEvent struct {
	Query   string
	Matches int
}

func (e QueryDebouncedEvent) Type() EventType { return EventQueryDebounced }

// ConfigLoadedEvent is emitted after configuration is read
type ConfigLoadedEvent struct {
	Path       string
	DebounceMs int
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
