package event

import (
	"encoding/json"
	"time"
)

// Message is the envelope published to the kitchen topic.
// Payload is the order record as raw JSON, exactly as persisted.
type Message struct {
	ID         string          `json:"id"`
	Type       string          `json:"type"`
	OrderID    int64           `json:"order_id"`
	Producer   string          `json:"producer"`
	OccurredAt time.Time       `json:"occurred_at"`
	Payload    json.RawMessage `json:"payload"`
}
