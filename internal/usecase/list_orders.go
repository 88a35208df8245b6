package usecase

import (
	"context"
	"fmt"

	"github.com/aydogmusserhat/monte-pine-meal-orders/internal/domain/order"
)

// ListOrders reads the complete listing for staff review. The result
// is computed fresh on every call; there is deliberately no cache in
// front of it.
type ListOrders struct {
	orderRepo order.Repository
}

func NewListOrders(orderRepo order.Repository) *ListOrders {
	return &ListOrders{orderRepo: orderRepo}
}

// Execute returns every order sorted by service date, preferred time,
// meal type and room number, ascending, as plain text comparisons.
func (uc *ListOrders) Execute(ctx context.Context) ([]order.Order, error) {
	orders, err := uc.orderRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}
