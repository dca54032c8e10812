package storestub

import (
	"bytes"
	"io"
	"net/http"

	"github.com/gorilla/mux"
)

// Router exposes the store over HTTP. Middlewares run after the journal and failure injection.
func (s *Store) Router(middlewares ...mux.MiddlewareFunc) *mux.Router {
	router := mux.NewRouter()
	router.Use(s.journal, s.injectFailures)
	router.Use(middlewares...)

	router.HandleFunc("/", s.welcome).Methods(http.MethodGet)
	router.HandleFunc("/healthcheck", healthcheck).Methods(http.MethodHead)

	router.HandleFunc("/products", s.handleListProducts).Methods(http.MethodGet)
	router.HandleFunc("/products", s.handleCreateProduct).Methods(http.MethodPost)
	router.HandleFunc("/products/{id:[0-9]+}", s.handleGetProduct).Methods(http.MethodGet)
	router.HandleFunc("/products/{id:[0-9]+}", s.handleDeleteProduct).Methods(http.MethodDelete)

	router.HandleFunc("/order", s.handleListOrders).Methods(http.MethodGet)
	router.HandleFunc("/order", s.handleCreateOrder).Methods(http.MethodPost)
	router.HandleFunc("/order/{id:[0-9]+}", s.handleGetOrder).Methods(http.MethodGet)
	router.HandleFunc("/order/{id:[0-9]+}", s.handleUpdateOrder).Methods(http.MethodPut)
	router.HandleFunc("/order/{id:[0-9]+}", s.handleDeleteOrder).Methods(http.MethodDelete)

	return router
}

func (s *Store) journal(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body []byte
		if r.Body != nil {
			body, _ = io.ReadAll(r.Body)
			r.Body = io.NopCloser(bytes.NewReader(body))
		}

		s.record(Request{Method: r.Method, Path: r.URL.Path, Body: string(body)})

		next.ServeHTTP(w, r)
	})
}

func (s *Store) injectFailures(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if code, ok := s.takeFailure(r.Method, r.URL.Path); ok {
			s.writeJSON(w, code, errorResponse{Error: http.StatusText(code)})
			return
		}

		next.ServeHTTP(w, r)
	})
}

func healthcheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}
