package storestub

import (
	"maps"
	"slices"
	"sync"

	"storefront/internal/entities"
)

// Request is one journaled call as the store received it.
type Request struct {
	Method string
	Path   string
	Body   string
}

type failure struct {
	method string
	path   string
	code   int
}

// Store is an in-memory product and order store speaking the storefront REST contract.
type Store struct {
	log handlerLogger

	mu            sync.Mutex
	products      map[int64]product
	orders        map[int64]order
	nextProductID int64
	nextOrderID   int64
	failures      []failure
	requests      []Request
}

func New(log handlerLogger) *Store {
	return &Store{
		log:      log,
		products: make(map[int64]product),
		orders:   make(map[int64]order),
	}
}

// Seed fills the menu with a few products.
func (s *Store) Seed() {
	s.AddProduct("Croissant", 3.50)
	s.AddProduct("Baguette", 2.10)
	s.AddProduct("Bagel", 1.25)
}

func (s *Store) AddProduct(name string, price float64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.addProduct(name, price).ID
}

func (s *Store) addProduct(name string, price float64) product {
	s.nextProductID++
	p := product{ID: s.nextProductID, Name: name, Price: price}
	s.products[p.ID] = p
	return p
}

// AddOrder stores an order without checking that the product exists.
func (s *Store) AddOrder(productID int64, status entities.OrderStatusType) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.addOrder(productID, status).OrderID
}

func (s *Store) addOrder(productID int64, status entities.OrderStatusType) order {
	s.nextOrderID++
	o := order{OrderID: s.nextOrderID, ProductID: productID, Status: status.String()}
	s.orders[o.OrderID] = o
	return o
}

func (s *Store) OrderStatus(orderID int64) (entities.OrderStatusType, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[orderID]
	return entities.OrderStatusType(o.Status), ok
}

// FailNext makes the next request matching method and path answer with code.
// An empty method or path matches anything.
func (s *Store) FailNext(method, path string, code int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.failures = append(s.failures, failure{method: method, path: path, code: code})
}

func (s *Store) takeFailure(method, path string) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, f := range s.failures {
		if (f.method == "" || f.method == method) && (f.path == "" || f.path == path) {
			s.failures = slices.Delete(s.failures, i, i+1)
			return f.code, true
		}
	}
	return 0, false
}

func (s *Store) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.requests)
}

func (s *Store) ResetRequests() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.requests = nil
}

func (s *Store) record(req Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.requests = append(s.requests, req)
}

func (s *Store) listProducts() []product {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := make([]product, 0, len(s.products))
	for _, id := range slices.Sorted(maps.Keys(s.products)) {
		list = append(list, s.products[id])
	}
	return list
}

func (s *Store) getProduct(id int64) (product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[id]
	return p, ok
}

// deleteProduct removes the product together with its orders.
func (s *Store) deleteProduct(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[id]; !ok {
		return false
	}
	delete(s.products, id)
	maps.DeleteFunc(s.orders, func(_ int64, o order) bool {
		return o.ProductID == id
	})
	return true
}

func (s *Store) listOrders() []order {
	s.mu.Lock()
	defer s.mu.Unlock()

	list := make([]order, 0, len(s.orders))
	for _, id := range slices.Sorted(maps.Keys(s.orders)) {
		list = append(list, s.orders[id])
	}
	return list
}

// placeOrder creates a pending order. It reports false when the product is unknown.
func (s *Store) placeOrder(productID int64) (order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[productID]; !ok {
		return order{}, false
	}
	return s.addOrder(productID, entities.OrderPending), true
}

func (s *Store) getOrder(id int64) (order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[id]
	return o, ok
}

func (s *Store) updateOrder(id int64, status entities.OrderStatusType) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[id]
	if !ok {
		return false
	}
	o.Status = status.String()
	s.orders[id] = o
	return true
}

func (s *Store) deleteOrder(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.orders[id]; !ok {
		return false
	}
	delete(s.orders, id)
	return true
}
