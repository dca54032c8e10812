package views_get

import (
	"encoding/json"
	"net/http"

	"storefront/pkg/logger"
)

// Handler отдает снимок состояния обоих представлений для отладки.
type Handler struct {
	log     handlerLogger
	catalog CatalogState
	admin   AdminState
}

func New(log handlerLogger, catalog CatalogState, admin AdminState) *Handler {
	handlerLog := log.With(logger.NewField("handler", "views_get"))

	return &Handler{
		log:     handlerLog,
		catalog: catalog,
		admin:   admin,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	res := viewsResponse{
		Catalog: catalogState{
			Products: len(h.catalog.Products()),
		},
		Admin: adminState{
			Orders: len(h.admin.Orders()),
			Drafts: make(map[int64]string),
		},
	}

	if lookup := h.catalog.Lookup(); lookup.OrderID != "" {
		res.Catalog.Lookup = &lookupState{OrderID: lookup.OrderID, Status: lookup.Status}
	}

	for id, status := range h.admin.Drafts() {
		res.Admin.Drafts[id] = status.String()
	}

	w.Header().Set("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(res)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
