package events

import (
	"log/slog"

	"github.com/mgfilms/site-service/internal/types"
)

// Publisher interface for publishing events
type Publisher interface {
	PublishInquiryReceived(inquiry types.Inquiry) error
	PublishContentChanged(change types.ContentChangedEvent) error
}

// EventPublisher implements the Publisher interface
type EventPublisher struct {
	hub WebSocketHub
}

// WebSocketHub interface for the WebSocket hub
type WebSocketHub interface {
	BroadcastAll(event *types.Event)
	BroadcastToAdmins(adminIDs []int64, event *types.Event)
	ConnectedAdmins() []int64
	ClientCount() int
}

// NewEventPublisher creates a new event publisher
func NewEventPublisher(hub WebSocketHub) *EventPublisher {
	return &EventPublisher{
		hub: hub,
	}
}

// PublishInquiryReceived tells every open dashboard about a new inquiry
func (p *EventPublisher) PublishInquiryReceived(inquiry types.Inquiry) error {
	if p.hub.ClientCount() == 0 {
		return nil
	}

	p.hub.BroadcastAll(types.NewEvent(types.EventInquiryReceived, inquiry))
	slog.Debug("Published inquiry event", slog.Int64("inquiry_id", inquiry.ID))
	return nil
}

// PublishContentChanged tells the other open dashboards that a section was
// edited. The admin who made the change is skipped.
func (p *EventPublisher) PublishContentChanged(change types.ContentChangedEvent) error {
	recipients := make([]int64, 0)
	for _, id := range p.hub.ConnectedAdmins() {
		if id != change.AdminID {
			recipients = append(recipients, id)
		}
	}
	if len(recipients) == 0 {
		return nil
	}

	p.hub.BroadcastToAdmins(recipients, types.NewEvent(types.EventContentChanged, change))
	return nil
}

// NopPublisher drops every event. Handlers use it when no hub is wired.
type NopPublisher struct{}

func (NopPublisher) PublishInquiryReceived(types.Inquiry) error            { return nil }
func (NopPublisher) PublishContentChanged(types.ContentChangedEvent) error { return nil }
