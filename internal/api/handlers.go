package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aydogmusserhat/monte-pine-meal-orders/internal/domain/menu"
	"github.com/aydogmusserhat/monte-pine-meal-orders/internal/domain/order"
	"github.com/aydogmusserhat/monte-pine-meal-orders/internal/usecase"
)

type Handlers struct {
	submitOrderUC *usecase.SubmitOrder
	listOrdersUC  *usecase.ListOrders
}

func NewHandlers(submitOrderUC *usecase.SubmitOrder, listOrdersUC *usecase.ListOrders) *Handlers {
	return &Handlers{
		submitOrderUC: submitOrderUC,
		listOrdersUC:  listOrdersUC,
	}
}

// SubmitOrder accepts one guest form submission. The meal category
// comes from the route, never from the form body.
func (h *Handlers) SubmitOrder(w http.ResponseWriter, r *http.Request) {
	meal, err := order.ParseMealType(chi.URLParam(r, "mealType"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form body", http.StatusBadRequest)
		return
	}

	fields := make(map[string]string, len(r.PostForm))
	for name := range r.PostForm {
		fields[name] = r.PostForm.Get(name)
	}

	id, err := h.submitOrderUC.Execute(r.Context(), meal, fields)
	if err != nil {
		var vErr *order.ValidationError
		if errors.As(err, &vErr) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]string{"error": vErr.Error()})
			return
		}
		slog.Error("failed to submit order", "meal_type", meal, "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]any{
		"status":   "received",
		"order_id": id,
	})
}

// ListOrders returns the full staff listing, freshly read on every
// call.
func (h *Handlers) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.listOrdersUC.Execute(r.Context())
	if err != nil {
		slog.Error("failed to list orders", "error", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if orders == nil {
		orders = []order.Order{}
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.Header().Set("Pragma", "no-cache")
	w.Header().Set("Expires", "0")
	json.NewEncoder(w).Encode(orders)
}

// GetMenu serves the static catalog the presentation layer renders
// into the guest form for one meal category.
func (h *Handlers) GetMenu(w http.ResponseWriter, r *http.Request) {
	meal, err := order.ParseMealType(chi.URLParam(r, "mealType"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	m, ok := menu.ForMealType(meal)
	if !ok {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(m)
}
