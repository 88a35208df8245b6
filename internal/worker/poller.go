package worker

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/aydogmusserhat/monte-pine-meal-orders/internal/domain/event"
	"github.com/aydogmusserhat/monte-pine-meal-orders/internal/domain/outbox"
)

var (
	eventsPublished = promauto.NewCounter(prometheus.CounterOpts{
		Name: "kitchen_events_published_total",
		Help: "The total number of kitchen notifications published to Kafka",
	})
	publishErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "kitchen_events_publish_errors_total",
		Help: "The total number of failed publish attempts",
	})
)

const producerName = "meal-orders-api"

// Publisher is the slice of the Kafka producer the poller needs.
type Publisher interface {
	SendMessage(ctx context.Context, key, value []byte) error
	Topic() string
}

// OutboxPoller drains pending kitchen notifications and publishes
// them to the kitchen topic. Published rows are marked so they are
// sent at least once; failed rows return to the queue for the next
// tick.
type OutboxPoller struct {
	outboxRepo   outbox.Repository
	publisher    Publisher
	pollInterval time.Duration
	batchSize    int
}

func NewOutboxPoller(outboxRepo outbox.Repository, publisher Publisher, pollInterval time.Duration, batchSize int) *OutboxPoller {
	return &OutboxPoller{
		outboxRepo:   outboxRepo,
		publisher:    publisher,
		pollInterval: pollInterval,
		batchSize:    batchSize,
	}
}

func (p *OutboxPoller) Run(ctx context.Context) error {
	ticker := time.NewTicker(p.pollInterval)
	defer ticker.Stop()

	slog.Info("outbox poller started", "topic", p.publisher.Topic(), "interval", p.pollInterval)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := p.ProcessBatch(ctx); err != nil {
				slog.Error("failed to process batch", "error", err)
			}
		}
	}
}

// ProcessBatch claims one batch of pending notifications and pushes
// them to Kafka.
func (p *OutboxPoller) ProcessBatch(ctx context.Context) error {
	events, err := p.outboxRepo.FetchBatch(ctx, p.batchSize)
	if err != nil {
		return err
	}

	if len(events) == 0 {
		return nil
	}

	var publishedIDs []string
	var failedIDs []string

	for _, e := range events {
		msg := event.Message{
			ID:         e.ID,
			Type:       e.EventType,
			OrderID:    e.OrderID,
			Producer:   producerName,
			OccurredAt: time.Now().UTC(),
			Payload:    e.Payload,
		}

		value, err := json.Marshal(msg)
		if err != nil {
			slog.Error("failed to marshal event", "event_id", e.ID, "error", err)
			publishErrors.Inc()
			failedIDs = append(failedIDs, e.ID)
			continue
		}

		sendCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		err = p.publisher.SendMessage(sendCtx, []byte(strconv.FormatInt(e.OrderID, 10)), value)
		cancel()

		if err != nil {
			slog.Error("failed to publish event", "event_id", e.ID, "error", err)
			publishErrors.Inc()
			failedIDs = append(failedIDs, e.ID)
			continue
		}

		eventsPublished.Inc()
		publishedIDs = append(publishedIDs, e.ID)
	}

	if len(publishedIDs) > 0 {
		if err := p.outboxRepo.MarkPublished(ctx, publishedIDs); err != nil {
			return err
		}
		slog.Info("published kitchen notifications", "count", len(publishedIDs))
	}

	if len(failedIDs) > 0 {
		if err := p.outboxRepo.MarkFailed(ctx, failedIDs); err != nil {
			slog.Error("failed to requeue events", "error", err)
		}
	}

	return nil
}
