// Package feed - the Messenger abstraction lets controllers publish events
// without knowing about connections, and lets tests swap in a recorder.
// file: feed/messenger.go
package feed

import (
	"encoding/json"

	"street-scan/logger"
)

// Event types pushed over the feed.
const (
	EventReportCreated = "report_created"
	EventReportDeleted = "report_deleted"
	EventStatusChanged = "status_changed"
	EventUpvoteChanged = "upvote_changed"
	EventCommentAdded  = "comment_added"
)

// Event is the wire envelope for one feed message.
type Event struct {
	Type    string `json:"type"`
	Payload any    `json:"payload,omitempty"`
}

// Messenger is an interface for broadcasting events to all feed clients.
type Messenger interface {
	Publish(eventType string, payload any)
}

type realMessenger struct{}

// NewMessenger returns the production messenger backed by the broadcast loop.
func NewMessenger() Messenger {
	return &realMessenger{}
}

// Publish marshals the event and queues it for every connected client.
func (r *realMessenger) Publish(eventType string, payload any) {
	m, err := json.Marshal(Event{Type: eventType, Payload: payload})
	if err != nil {
		logger.Error.Printf("[Publish] could not marshal %s event: %v", eventType, err)
		return
	}
	select {
	case broadcast <- m:
		logger.Debug.Printf("[Publish] %s event queued", eventType)
	default:
		logger.Warn.Printf("[Publish] broadcast queue full, %s event dropped", eventType)
	}
}

// MockMessenger records published events for tests.
type MockMessenger struct {
	Events []Event
}

// Publish appends the event to the recorded list.
func (m *MockMessenger) Publish(eventType string, payload any) {
	m.Events = append(m.Events, Event{Type: eventType, Payload: payload})
}
