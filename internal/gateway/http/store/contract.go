//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=store_test
package store

import (
	"context"
	"net/http"
)

type client interface {
	Do(req *http.Request) (*http.Response, error)
}

type retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

type limiter interface {
	Wait(ctx context.Context) error
}
