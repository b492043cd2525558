package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventDatasetLoadStarted EventType = "DatasetLoadStarted"
	EventDatasetLoaded      EventType = "DatasetLoaded"
	EventDatasetLoadFailed  EventType = "DatasetLoadFailed"
	EventConfigLoaded       EventType = "ConfigLoaded"
	EventConfigSaved        EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// DatasetLoadStartedEvent is emitted when the catalog fetch begins
type DatasetLoadStartedEvent struct {
	Source string
}

func (e DatasetLoadStartedEvent) Type() EventType { return EventDatasetLoadStarted }

// DatasetLoadedEvent is emitted once the catalog has been fetched and decoded
type DatasetLoadedEvent struct {
	Source   string
	Projects []Project
}

func (e DatasetLoadedEvent) Type() EventType { return EventDatasetLoaded }

// DatasetLoadFailedEvent is emitted when the fetch fails. It is diagnostic
// only; the dataset stays empty.
type DatasetLoadFailedEvent struct {
	Source string
	Err    error
}

func (e DatasetLoadFailedEvent) Type() EventType { return EventDatasetLoadFailed }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path   string
	Source string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
