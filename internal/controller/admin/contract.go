//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=admin_test
package admin

import (
	"context"

	"storefront/internal/entities"
	"storefront/pkg/logger"
)

type Gateway interface {
	ListOrders(ctx context.Context) ([]entities.Order, error)
	UpdateOrderStatus(ctx context.Context, modify entities.OrderModify) error
	DeleteOrder(ctx context.Context, orderID int64) error
}

type notifier interface {
	Notify(msg string)
	Alert(msg string)
}

type confirmer interface {
	Confirm(ctx context.Context, prompt string) bool
}

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
