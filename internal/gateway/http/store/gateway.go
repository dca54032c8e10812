package store

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"storefront/internal/entities"
	retrierconfig "storefront/pkg/retrier"
	"storefront/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "store"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 1 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
	maxRetries      = 3
)

const maxBodySize = 1 << 20

type StoreGateway struct {
	baseURL string
	client  client
	retrier retrier
	limiter limiter
}

// New builds the store gateway. limiter may be nil, then requests are not throttled.
func New(baseURL string, client client, limiter limiter) *StoreGateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		MaxRetries:      maxRetries,
		ShouldRetry:     isRetryable,
	}

	return &StoreGateway{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		retrier: backoff_adapter.New(retryConfig),
		limiter: limiter,
	}
}

type call struct {
	name   string
	method string
	path   string
	body   any
	out    any
}

func (s *StoreGateway) ListProducts(ctx context.Context) ([]entities.Product, error) {
	var resp []productDTO

	err := s.executeWithMetrics(ctx, call{
		name:   "ListProducts",
		method: http.MethodGet,
		path:   "/products",
		out:    &resp,
	})
	if err != nil {
		return nil, fmt.Errorf("gateway store, list products: %w", err)
	}

	return toProductList(resp), nil
}

func (s *StoreGateway) CreateProduct(ctx context.Context, modify entities.ProductModify) (*entities.Product, error) {
	if modify.Name == nil || modify.Price == nil {
		return nil, fmt.Errorf("gateway store, create product: %w", ErrMissingRequiredFields)
	}

	var resp createProductResponse

	err := s.executeWithMetrics(ctx, call{
		name:   "CreateProduct",
		method: http.MethodPost,
		path:   "/products",
		body:   fromProductModify(modify),
		out:    &resp,
	})
	if err != nil {
		return nil, fmt.Errorf("gateway store, create product: %w", err)
	}

	dto := resp.productDTO
	if resp.Product != nil {
		dto = *resp.Product
	}
	product := toProduct(dto)

	return &product, nil
}

func (s *StoreGateway) DeleteProduct(ctx context.Context, productID int64) error {
	err := s.executeWithMetrics(ctx, call{
		name:   "DeleteProduct",
		method: http.MethodDelete,
		path:   "/products/" + strconv.FormatInt(productID, 10),
	})
	if err != nil {
		return fmt.Errorf("gateway store, delete product %d: %w", productID, err)
	}

	return nil
}

func (s *StoreGateway) ListOrders(ctx context.Context) ([]entities.Order, error) {
	var resp []orderDTO

	err := s.executeWithMetrics(ctx, call{
		name:   "ListOrders",
		method: http.MethodGet,
		path:   "/order",
		out:    &resp,
	})
	if err != nil {
		return nil, fmt.Errorf("gateway store, list orders: %w", err)
	}

	return toOrderList(resp), nil
}

func (s *StoreGateway) CreateOrder(ctx context.Context, productID int64) (int64, error) {
	var resp createOrderResponse

	err := s.executeWithMetrics(ctx, call{
		name:   "CreateOrder",
		method: http.MethodPost,
		path:   "/order",
		body:   createOrderRequest{ProductID: productID},
		out:    &resp,
	})
	if err != nil {
		return 0, fmt.Errorf("gateway store, create order for product %d: %w", productID, err)
	}

	if resp.OrderID == 0 {
		return 0, fmt.Errorf("gateway store, create order for product %d: %w", productID, ErrEmptyResponse)
	}

	return resp.OrderID, nil
}

func (s *StoreGateway) GetOrder(ctx context.Context, orderID int64) (*entities.Order, error) {
	var resp orderDTO

	err := s.executeWithMetrics(ctx, call{
		name:   "GetOrder",
		method: http.MethodGet,
		path:   "/order/" + strconv.FormatInt(orderID, 10),
		out:    &resp,
	})
	if err != nil {
		return nil, fmt.Errorf("gateway store, get order %d: %w", orderID, err)
	}

	if resp.Status == "" {
		return nil, fmt.Errorf("gateway store, get order %d: %w", orderID, ErrEmptyResponse)
	}
	if resp.OrderID == 0 {
		resp.OrderID = orderID
	}

	order := toOrder(resp)
	return &order, nil
}

func (s *StoreGateway) UpdateOrderStatus(ctx context.Context, modify entities.OrderModify) error {
	if modify.ID == nil || modify.Status == nil {
		return fmt.Errorf("gateway store, update order status: %w", ErrMissingRequiredFields)
	}
	if !modify.Status.IsValid() {
		return fmt.Errorf("gateway store, update order %d status %q: %w", *modify.ID, *modify.Status, ErrInvalidStatus)
	}

	err := s.executeWithMetrics(ctx, call{
		name:   "UpdateOrderStatus",
		method: http.MethodPut,
		path:   "/order/" + strconv.FormatInt(*modify.ID, 10),
		body:   updateOrderRequest{Status: modify.Status.String()},
	})
	if err != nil {
		return fmt.Errorf("gateway store, update order %d status: %w", *modify.ID, err)
	}

	return nil
}

func (s *StoreGateway) DeleteOrder(ctx context.Context, orderID int64) error {
	err := s.executeWithMetrics(ctx, call{
		name:   "DeleteOrder",
		method: http.MethodDelete,
		path:   "/order/" + strconv.FormatInt(orderID, 10),
	})
	if err != nil {
		return fmt.Errorf("gateway store, delete order %d: %w", orderID, err)
	}

	return nil
}

// Повторяется только GET, остальные методы отправляются один раз.
func (s *StoreGateway) executeWithMetrics(ctx context.Context, c call) error {
	var payload []byte
	if c.body != nil {
		var err error
		payload, err = json.Marshal(c.body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
	}

	var (
		attempt uint64
		code    int
	)
	start := time.Now()

	send := func(ctx context.Context) error {
		attempt++
		var err error
		code, err = s.send(ctx, c, payload)
		return err
	}

	var err error
	if c.method != http.MethodGet {
		err = send(ctx)
	} else {
		err = s.retrier.ExecuteWithContext(ctx, send)
	}

	label := codeLabel(code, err)
	GatewayRequestDuration.WithLabelValues(serviceName, c.name, label).Observe(time.Since(start).Seconds())

	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(serviceName, c.name, label).Add(float64(attempt - 1))
	}

	return err
}

func (s *StoreGateway) send(ctx context.Context, c call, payload []byte) (int, error) {
	if s.limiter != nil {
		if err := s.limiter.Wait(ctx); err != nil {
			GatewayThrottledTotal.WithLabelValues(serviceName, c.name).Inc()
			return 0, fmt.Errorf("rate limit: %w", err)
		}
	}

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, c.method, s.baseURL+c.path, body)
	if err != nil {
		return 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return resp.StatusCode, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return resp.StatusCode, newStatusError(resp.StatusCode, raw)
	}

	if c.out != nil && len(bytes.TrimSpace(raw)) > 0 {
		if err := json.Unmarshal(raw, c.out); err != nil {
			return resp.StatusCode, fmt.Errorf("decode response: %w", err)
		}
	}

	return resp.StatusCode, nil
}

func codeLabel(code int, err error) string {
	var statusErr *StatusError
	switch {
	case errors.As(err, &statusErr):
		return strconv.Itoa(statusErr.Code)
	case err != nil && code == 0:
		return "UNKNOWN"
	default:
		return strconv.Itoa(code)
	}
}
