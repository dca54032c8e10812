package graceful_shutdown

import (
	"net/http"
	"sync/atomic"
)

const shuttingDownBody = `{"error":"Service is shutting down"}`

// Middleware отвечает 503 на новые запросы, пока сервер останавливается.
func Middleware(isShuttingDown *atomic.Bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isShuttingDown.Load() {
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("Connection", "close")
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte(shuttingDownBody))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
