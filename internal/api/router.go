package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/aydogmusserhat/monte-pine-meal-orders/internal/api/middleware"
)

func NewRouter(h *Handlers, redisClient *redis.Client) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Guest-facing: menu catalogs and the three submission endpoints
	r.Get("/menus/{mealType}", h.GetMenu)
	r.With(middleware.Idempotency(redisClient)).Post("/orders/{mealType}", h.SubmitOrder)

	// Staff-facing
	r.Get("/admin/orders", h.ListOrders)

	r.Handle("/metrics", promhttp.Handler())

	return r
}
