//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shell_test
package shell

import (
	"context"

	"storefront/internal/controller/admin"
	"storefront/internal/controller/catalog"
	"storefront/internal/entities"
	"storefront/pkg/logger"
)

type CatalogView interface {
	Initialize(ctx context.Context) error
	Dispose()
	Poll(ctx context.Context) error

	Products() []entities.Product
	Form() catalog.ProductForm
	Lookup() entities.OrderLookup

	RefreshCatalog(ctx context.Context) error
	AddProduct(ctx context.Context, name, price string) error
	PlaceOrder(ctx context.Context, productID int64) error
	CheckOrderStatus(ctx context.Context, orderID string) error
	DeleteProduct(ctx context.Context, productID int64) error
}

type AdminView interface {
	Initialize(ctx context.Context) error
	Dispose()

	Rows() []admin.Row

	RefreshOrders(ctx context.Context) error
	SetDraftStatus(orderID int64, status entities.OrderStatusType) error
	CommitStatus(ctx context.Context, orderID int64) error
	DeleteOrder(ctx context.Context, orderID int64) error
}

type terminal interface {
	ReadLine(ctx context.Context) (string, error)
	Printf(format string, args ...any)
	Alert(msg string)
	Write(p []byte) (int, error)
}

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
