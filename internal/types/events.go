package types

import "time"

// EventType represents the type of real-time event
type EventType string

const (
	EventInquiryReceived EventType = "inquiry.received"
	EventContentChanged  EventType = "content.changed"
)

// Event represents a real-time event that can be sent over WebSocket
type Event struct {
	Type      EventType   `json:"type"`
	Data      interface{} `json:"data"`
	Timestamp string      `json:"timestamp"`
}

// ContentChangedEvent tells other open admin sessions that a section was edited
type ContentChangedEvent struct {
	Section string `json:"section"`
	ItemID  int64  `json:"item_id"`
	Action  string `json:"action"`
	AdminID int64  `json:"admin_id"`
}

// NewEvent creates a new event with the current timestamp
func NewEvent(eventType EventType, data interface{}) *Event {
	return &Event{
		Type:      eventType,
		Data:      data,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}
