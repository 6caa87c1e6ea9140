package middleware

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"strconv"
	"time"

	"gocrew/internal/domain"
	"gocrew/internal/pkg/cache"
)

// RateLimiter limita a quantidade de requisições por IP dentro de uma
// janela, usando o cache como contador compartilhado. Quando o cache está
// indisponível a requisição é deixada passar: o limite é proteção, não
// requisito funcional.
func RateLimiter(client cache.Client, limit int, window time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, _ := net.SplitHostPort(r.RemoteAddr)
			key := "rate-limit:" + ip
			ctx := context.Background()

			count, err := client.GetInt(ctx, key)
			switch {
			case err == cache.ErrCacheMiss:
				// Primeira requisição da janela: abre o contador.
				client.Set(ctx, key, 1, window)
				w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(limit-1))
				next.ServeHTTP(w, r)
				return
			case err != nil:
				next.ServeHTTP(w, r)
				return
			}

			if count >= limit {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				json.NewEncoder(w).Encode(domain.ErrorResponse{
					Code:     http.StatusTooManyRequests,
					Kind:     "RATE_LIMITED",
					Category: "RATE_LIMIT",
					Message:  "Limite de requisições excedido. Tente novamente em instantes.",
				})
				return
			}

			client.Incr(ctx, key)
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(limit-count-1))
			next.ServeHTTP(w, r)
		})
	}
}
