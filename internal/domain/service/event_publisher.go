package service

import (
	"context"
)

// ContentKind names what kind of content an event announces.
type ContentKind string

const (
	ContentKindMeditation ContentKind = "meditation"
	ContentKindManna      ContentKind = "manna"
)

// ContentEvent announces newly published content to the notifier.
type ContentEvent struct {
	RequestID string      `json:"request_id,omitempty"` // For distributed tracing
	EventID   string      `json:"event_id"`
	Kind      ContentKind `json:"kind"`
	ContentID string      `json:"content_id"`
	Title     string      `json:"title"`
	Category  string      `json:"category,omitempty"` // Category slug, meditations only
	Date      string      `json:"date,omitempty"`     // YYYY-MM-DD, manna only
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishContentEvent publishes a content event for async fan-out
	PublishContentEvent(ctx context.Context, event *ContentEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
