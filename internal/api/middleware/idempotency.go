package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
)

// statusRecorder captures the status code the handler wrote so the
// middleware can decide whether the request actually succeeded.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// Idempotency guards the submission endpoints against double-posts
// (guests refreshing after a slow submit). Requests without an
// Idempotency-Key header pass through untouched, as does everything
// when Redis is unreachable: a lost dedupe key is preferable to a
// lost dinner order.
//
// Only a 2xx outcome marks the key as completed. A rejected or failed
// submission releases the key so the guest can retry the corrected
// form with the same key.
func Idempotency(redisClient *redis.Client) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				next.ServeHTTP(w, r)
				return
			}

			key := r.Header.Get("Idempotency-Key")
			if key == "" {
				next.ServeHTTP(w, r)
				return
			}

			idemKey := fmt.Sprintf("meal-orders:idem:%s", key)
			ctx := r.Context()

			_, err := redisClient.Get(ctx, idemKey).Result()
			if err == nil {
				// Already processed
				w.Header().Set("X-Idempotency-Hit", "true")
				w.WriteHeader(http.StatusConflict)
				w.Write([]byte(`{"error": "request already processed"}`))
				return
			} else if err != redis.Nil {
				next.ServeHTTP(w, r)
				return
			}

			// Short TTL lock so a crashed request does not wedge the key
			acquired, err := redisClient.SetNX(ctx, idemKey, "PROCESSING", 10*time.Second).Result()
			if err != nil || !acquired {
				w.WriteHeader(http.StatusConflict)
				w.Write([]byte(`{"error": "concurrent request"}`))
				return
			}

			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			if rec.status >= 200 && rec.status < 300 {
				redisClient.Set(ctx, idemKey, `"COMPLETED"`, 24*time.Hour)
			} else {
				redisClient.Del(ctx, idemKey)
			}
		})
	}
}
