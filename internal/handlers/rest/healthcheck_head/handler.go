package healthcheck_head

import (
	"net/http"
	"sync/atomic"
)

type Handler struct {
	isShuttingDown *atomic.Bool
	store          storeProber
}

// New без prober проверяет только флаг остановки.
func New(isShuttingDown *atomic.Bool, store storeProber) *Handler {
	return &Handler{
		isShuttingDown: isShuttingDown,
		store:          store,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.isShuttingDown.Load() {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	if h.store != nil {
		if err := h.store.Probe(r.Context()); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
	}
	w.WriteHeader(http.StatusNoContent)
}
