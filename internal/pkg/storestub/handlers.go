package storestub

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"storefront/internal/entities"
	"storefront/pkg/logger"
)

func (s *Store) welcome(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, messageResponse{Message: "Welcome to the bakery store API!"})
}

func (s *Store) handleListProducts(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.listProducts())
}

func (s *Store) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	var req productCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Name == nil || req.Price == nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Missing product name or price"})
		return
	}

	s.mu.Lock()
	p := s.addProduct(*req.Name, *req.Price)
	s.mu.Unlock()

	s.log.Info("product created", logger.NewField("product_id", p.ID))

	s.writeJSON(w, http.StatusCreated, productCreateResponse{Message: "Product added!", Product: p})
}

func (s *Store) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid product id"})
		return
	}

	p, ok := s.getProduct(id)
	if !ok {
		s.writeJSON(w, http.StatusNotFound, messageResponse{Message: "Product not found!"})
		return
	}

	s.writeJSON(w, http.StatusOK, p)
}

func (s *Store) handleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid product id"})
		return
	}

	if !s.deleteProduct(id) {
		s.writeJSON(w, http.StatusNotFound, errorResponse{Error: "Product not found"})
		return
	}

	s.log.Info("product deleted", logger.NewField("product_id", id))

	s.writeJSON(w, http.StatusOK, messageResponse{Message: "Product deleted successfully"})
}

func (s *Store) handleListOrders(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, s.listOrders())
}

func (s *Store) handleCreateOrder(w http.ResponseWriter, r *http.Request) {
	var req orderCreate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ProductID == nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Missing product_id"})
		return
	}

	o, ok := s.placeOrder(*req.ProductID)
	if !ok {
		s.writeJSON(w, http.StatusNotFound, errorResponse{Error: "Product not found"})
		return
	}

	s.log.Info("order placed",
		logger.NewField("order_id", o.OrderID),
		logger.NewField("product_id", o.ProductID),
	)

	s.writeJSON(w, http.StatusCreated, orderCreateResponse{Message: "Order placed successfully!", OrderID: o.OrderID})
}

func (s *Store) handleGetOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid order id"})
		return
	}

	o, ok := s.getOrder(id)
	if !ok {
		s.writeJSON(w, http.StatusNotFound, errorResponse{Error: "Order not found"})
		return
	}

	s.writeJSON(w, http.StatusOK, orderStatusResponse{OrderID: o.OrderID, Status: o.Status})
}

func (s *Store) handleUpdateOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid order id"})
		return
	}

	var req orderUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Status == "" {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Missing new status"})
		return
	}

	status := entities.OrderStatusType(req.Status)
	if !status.IsValid() {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid status"})
		return
	}

	if !s.updateOrder(id, status) {
		s.writeJSON(w, http.StatusNotFound, errorResponse{Error: "Order not found"})
		return
	}

	s.log.Info("order updated",
		logger.NewField("order_id", id),
		logger.NewField("status", status),
	)

	s.writeJSON(w, http.StatusOK, messageResponse{Message: fmt.Sprintf("Order %d updated to status '%s'", id, status)})
}

func (s *Store) handleDeleteOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "Invalid order id"})
		return
	}

	if !s.deleteOrder(id) {
		s.writeJSON(w, http.StatusNotFound, messageResponse{Message: "Order not found"})
		return
	}

	s.log.Info("order deleted", logger.NewField("order_id", id))

	s.writeJSON(w, http.StatusOK, messageResponse{Message: "Order deleted successfully"})
}

func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	return id, err == nil
}

func (s *Store) writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
