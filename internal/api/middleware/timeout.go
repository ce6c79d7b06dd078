package middleware

import (
	"context"
	"net/http"
	"time"
)

// Timeout ограничивает обработку запроса бюджетом времени
// Запрос, превысивший бюджет, завершается ошибкой вместо бесконечного ожидания
func Timeout(budget time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), budget)
			defer cancel()

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
