package outbox

import (
	"context"
	"time"
)

// Event is one pending kitchen notification. A row is written in the
// same transaction as its meal order and later published by the
// worker; the order row itself is never touched again.
type Event struct {
	ID        string    `json:"id"`
	OrderID   int64     `json:"order_id"`
	EventType string    `json:"event_type"`
	Payload   []byte    `json:"payload"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const (
	StatusNew        = "new"
	StatusProcessing = "processing"
	StatusPublished  = "published"
)

const EventTypeOrderReceived = "meal_order.received"

type Repository interface {
	Create(ctx context.Context, event *Event) error
	FetchBatch(ctx context.Context, limit int) ([]*Event, error)
	MarkPublished(ctx context.Context, ids []string) error
	MarkFailed(ctx context.Context, ids []string) error
}
