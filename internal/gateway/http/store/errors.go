package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"storefront/internal/entities"
)

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidStatus         = errors.New("invalid order status")
	ErrEmptyResponse         = errors.New("empty response from store")
)

// StatusError is a non-2xx answer of the store. A 404 unwraps to entities.ErrNotFound.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("store responded %d: %s", e.Code, e.Message)
}

func (e *StatusError) Unwrap() error {
	if e.Code == http.StatusNotFound {
		return entities.ErrNotFound
	}
	return nil
}

func newStatusError(code int, body []byte) *StatusError {
	return &StatusError{
		Code:    code,
		Message: errorMessage(body, http.StatusText(code)),
	}
}

func errorMessage(body []byte, fallback string) string {
	var resp errorResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return fallback
	}
	if msg := strings.TrimSpace(resp.Error); msg != "" {
		return msg
	}
	if msg := strings.TrimSpace(resp.Message); msg != "" {
		return msg
	}
	return fallback
}

func isRetryable(err error) bool {
	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		return false
	}

	switch statusErr.Code {
	case http.StatusTooManyRequests,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}
