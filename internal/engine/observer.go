package engine

import "time"

// EventType represents different lifecycle phases of an exercise run
type EventType string

const (
	EventRunStart EventType = "run_start"
	EventRunEnd   EventType = "run_end"
	EventRunError EventType = "run_error"
)

// Event represents a lifecycle event of a run
type Event struct {
	Type      EventType     // Type of event
	RunID     string        // Run ID for tracing
	Exercise  string        // Exercise ID
	Timestamp time.Time     // When the event occurred
	Duration  time.Duration // Time spent running (end and error events)
	Rows      int           // Result cardinality (end events)
	Err       error         // Failure (error events)
}

// Observer interface for event subscribers
// Observers receive events at the start and end of every run
type Observer interface {
	OnEvent(event Event)
}
