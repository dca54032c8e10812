package httpclient

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"storefront/internal/pkg/config"
	"storefront/pkg/logger"
	retrierconfig "storefront/pkg/retrier"
	"storefront/pkg/retrier/backoff_adapter"
)

const (
	DialTimeout         = 5 * time.Second
	KeepaliveTime       = 30 * time.Second
	IdleConnTimeout     = 90 * time.Second
	MaxIdleConnsPerHost = 4

	initialInterval = 500 * time.Millisecond
	maxInterval     = 5 * time.Second
	randomization   = 0.5
	multiplier      = 2
)

var ErrStoreUnavailable = errors.New("store unavailable")

// New собирает клиент к стору. При ConnectTimeout > 0 дожидается, пока стор начнет отвечать.
func New(ctx context.Context, log logger.Logger, cfg *config.Store) (*http.Client, error) {
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.DialContext = (&net.Dialer{
		Timeout:   DialTimeout,
		KeepAlive: KeepaliveTime,
	}).DialContext
	transport.IdleConnTimeout = IdleConnTimeout
	transport.MaxIdleConnsPerHost = MaxIdleConnsPerHost

	client := &http.Client{
		Transport: transport,
		Timeout:   cfg.RequestTimeout,
	}

	if cfg.ConnectTimeout <= 0 {
		return client, nil
	}

	httpLog := log.With(
		logger.NewField("component", "http-client"),
		logger.NewField("base_url", cfg.BaseURL),
	)

	err := waitForStore(ctx, httpLog, NewProber(client, cfg.BaseURL), cfg.ConnectTimeout)
	if err != nil {
		transport.CloseIdleConnections()
		return nil, fmt.Errorf("store connection: %w", err)
	}

	return client, nil
}

func waitForStore(ctx context.Context, log logger.Logger, prober *Prober, timeout time.Duration) error {
	retrier := backoff_adapter.New(retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  timeout,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     nil, // все ошибки ретраим
	})

	var attempt uint64
	err := retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		log.With(
			logger.NewField("attempt", attempt),
		).Info("probing store")

		return prober.Probe(ctx)
	})
	if err != nil {
		log.With(
			logger.NewField("error", err),
			logger.NewField("attempts", attempt),
		).Error("store is not reachable after retries")
		return err
	}

	log.With(
		logger.NewField("attempts", attempt),
	).Info("store is reachable")
	return nil
}

// Prober проверяет, что стор принимает запросы.
type Prober struct {
	client  *http.Client
	baseURL string
}

func NewProber(client *http.Client, baseURL string) *Prober {
	return &Prober{
		client:  client,
		baseURL: baseURL,
	}
}

// Probe считает стор живым при любом ответе, кроме 5xx.
func (p *Prober) Probe(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, p.baseURL, http.NoBody)
	if err != nil {
		return fmt.Errorf("create probe request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusInternalServerError {
		return fmt.Errorf("%w: status %d", ErrStoreUnavailable, resp.StatusCode)
	}
	return nil
}
