//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=views_get_test
package views_get

import (
	"storefront/internal/entities"
	"storefront/pkg/logger"
)

type CatalogState interface {
	Products() []entities.Product
	Lookup() entities.OrderLookup
}

type AdminState interface {
	Orders() []entities.Order
	Drafts() map[int64]entities.OrderStatusType
}

type handlerLogger interface {
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
