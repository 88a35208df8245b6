package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aydogmusserhat/monte-pine-meal-orders/internal/domain/outbox"
)

type OutboxRepository struct {
	pool *pgxpool.Pool
}

func NewOutboxRepository(pool *pgxpool.Pool) *OutboxRepository {
	return &OutboxRepository{pool: pool}
}

func (r *OutboxRepository) Create(ctx context.Context, e *outbox.Event) error {
	const sql = `
		INSERT INTO kitchen_outbox (id, order_id, event_type, payload, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
	`

	var executor interface {
		Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	} = r.pool

	if tx := GetTx(ctx); tx != nil {
		executor = tx
	}

	_, err := executor.Exec(ctx, sql,
		e.ID, e.OrderID, e.EventType, e.Payload, e.Status, e.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert kitchen outbox event: %w", err)
	}

	return nil
}

// FetchBatch claims up to limit pending notifications. SKIP LOCKED
// keeps concurrent workers from claiming the same rows.
func (r *OutboxRepository) FetchBatch(ctx context.Context, limit int) ([]*outbox.Event, error) {
	const sql = `
		WITH claimed_events AS (
			SELECT id
			FROM kitchen_outbox
			WHERE status = 'new'
			ORDER BY created_at ASC
			LIMIT $1
			FOR UPDATE SKIP LOCKED
		)
		UPDATE kitchen_outbox
		SET status = 'processing', updated_at = NOW()
		WHERE id IN (SELECT id FROM claimed_events)
		RETURNING id, order_id, event_type, payload, status, created_at, updated_at
	`

	rows, err := r.pool.Query(ctx, sql, limit)
	if err != nil {
		return nil, fmt.Errorf("query kitchen outbox: %w", err)
	}
	defer rows.Close()

	var events []*outbox.Event
	for rows.Next() {
		e := &outbox.Event{}
		if err := rows.Scan(&e.ID, &e.OrderID, &e.EventType, &e.Payload, &e.Status, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan kitchen outbox event: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read kitchen outbox: %w", err)
	}

	return events, nil
}

func (r *OutboxRepository) MarkPublished(ctx context.Context, ids []string) error {
	const sql = `
		UPDATE kitchen_outbox
		SET status = 'published', updated_at = NOW()
		WHERE id = ANY($1)
	`
	if _, err := r.pool.Exec(ctx, sql, ids); err != nil {
		return fmt.Errorf("mark published: %w", err)
	}
	return nil
}

// MarkFailed returns claimed rows to 'new' so the next poll retries them.
func (r *OutboxRepository) MarkFailed(ctx context.Context, ids []string) error {
	const sql = `
		UPDATE kitchen_outbox
		SET status = 'new', updated_at = NOW()
		WHERE id = ANY($1)
	`
	if _, err := r.pool.Exec(ctx, sql, ids); err != nil {
		return fmt.Errorf("mark failed: %w", err)
	}
	return nil
}
