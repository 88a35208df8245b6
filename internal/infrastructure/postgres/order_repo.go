package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/aydogmusserhat/monte-pine-meal-orders/internal/domain/order"
)

type OrderRepository struct {
	pool *pgxpool.Pool
}

func NewOrderRepository(pool *pgxpool.Pool) *OrderRepository {
	return &OrderRepository{pool: pool}
}

// Insert appends one meal order and returns the id the store assigned.
// The row is never updated afterwards.
func (r *OrderRepository) Insert(ctx context.Context, o *order.Order) (int64, error) {
	const sql = `
		INSERT INTO meal_orders (
			meal_type, room_number, guest_name, guests_count,
			service_date, preferred_time, main_option, extra_option,
			notes, created_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`

	// Check for transaction in context
	var querier interface {
		QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	} = r.pool

	if tx := GetTx(ctx); tx != nil {
		querier = tx
	}

	var id int64
	err := querier.QueryRow(ctx, sql,
		o.MealType, o.RoomNumber, o.GuestName, o.GuestsCount,
		o.ServiceDate, o.PreferredTime, o.MainOption, o.ExtraOption,
		o.Notes, o.CreatedAt,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("insert meal order: %w", err)
	}

	o.ID = id
	return id, nil
}

// ListAll returns every order in the staff listing order. The COLLATE
// clauses force byte-wise text comparison so the result matches
// order.Less regardless of database locale.
func (r *OrderRepository) ListAll(ctx context.Context) ([]order.Order, error) {
	const sql = `
		SELECT
			id, meal_type, room_number, guest_name, guests_count,
			service_date, preferred_time, main_option, extra_option,
			notes, created_at
		FROM meal_orders
		ORDER BY
			service_date COLLATE "C" ASC,
			preferred_time COLLATE "C" ASC,
			meal_type COLLATE "C" ASC,
			room_number COLLATE "C" ASC
	`

	rows, err := r.pool.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("query meal orders: %w", err)
	}
	defer rows.Close()

	var orders []order.Order
	for rows.Next() {
		var o order.Order
		if err := rows.Scan(
			&o.ID, &o.MealType, &o.RoomNumber, &o.GuestName, &o.GuestsCount,
			&o.ServiceDate, &o.PreferredTime, &o.MainOption, &o.ExtraOption,
			&o.Notes, &o.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan meal order: %w", err)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read meal orders: %w", err)
	}

	return orders, nil
}
