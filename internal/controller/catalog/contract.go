//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=catalog_test
package catalog

import (
	"context"

	"storefront/internal/entities"
	"storefront/pkg/logger"
)

type Gateway interface {
	ListProducts(ctx context.Context) ([]entities.Product, error)
	CreateProduct(ctx context.Context, modify entities.ProductModify) (*entities.Product, error)
	DeleteProduct(ctx context.Context, productID int64) error
	CreateOrder(ctx context.Context, productID int64) (int64, error)
	GetOrder(ctx context.Context, orderID int64) (*entities.Order, error)
}

type notifier interface {
	Notify(msg string)
	Alert(msg string)
}

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
