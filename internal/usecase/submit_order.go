package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/aydogmusserhat/monte-pine-meal-orders/internal/domain/order"
	"github.com/aydogmusserhat/monte-pine-meal-orders/internal/domain/outbox"
	"github.com/aydogmusserhat/monte-pine-meal-orders/internal/infrastructure/postgres"
)

var (
	ordersAccepted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "meal_orders_accepted_total",
		Help: "The total number of accepted meal order submissions",
	}, []string{"meal_type"})
	ordersRejected = promauto.NewCounter(prometheus.CounterOpts{
		Name: "meal_orders_rejected_total",
		Help: "The total number of submissions rejected by validation",
	})
)

// SubmitOrder validates one guest submission and appends it to the
// store, together with a kitchen notification, in one transaction.
type SubmitOrder struct {
	txManager  postgres.Transactor
	orderRepo  order.Repository
	outboxRepo outbox.Repository
}

func NewSubmitOrder(
	txManager postgres.Transactor,
	orderRepo order.Repository,
	outboxRepo outbox.Repository,
) *SubmitOrder {
	return &SubmitOrder{
		txManager:  txManager,
		orderRepo:  orderRepo,
		outboxRepo: outboxRepo,
	}
}

// Execute parses and validates the raw form fields for the given meal
// category and persists the resulting order. On a validation error
// nothing is written. The returned id is the one assigned by the
// store.
func (uc *SubmitOrder) Execute(ctx context.Context, meal order.MealType, fields map[string]string) (int64, error) {
	newOrder, err := order.ParseSubmission(meal, fields)
	if err != nil {
		ordersRejected.Inc()
		return 0, err
	}

	newOrder.StampCreatedAt(time.Now())

	err = uc.txManager.WithinTransaction(ctx, func(txCtx context.Context) error {
		if _, err := uc.orderRepo.Insert(txCtx, newOrder); err != nil {
			return err
		}

		// Payload carries the store-assigned id, so marshal after insert.
		payload, err := json.Marshal(newOrder)
		if err != nil {
			return fmt.Errorf("marshal order: %w", err)
		}

		notification := &outbox.Event{
			ID:        uuid.New().String(),
			OrderID:   newOrder.ID,
			EventType: outbox.EventTypeOrderReceived,
			Payload:   payload,
			Status:    outbox.StatusNew,
			CreatedAt: time.Now(),
		}

		return uc.outboxRepo.Create(txCtx, notification)
	})
	if err != nil {
		return 0, fmt.Errorf("transaction failed: %w", err)
	}

	ordersAccepted.WithLabelValues(string(meal)).Inc()
	return newOrder.ID, nil
}
