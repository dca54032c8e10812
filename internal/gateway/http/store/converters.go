package store

import (
	"github.com/shopspring/decimal"
	"storefront/internal/entities"
)

func toProductList(dtos []productDTO) []entities.Product {
	products := make([]entities.Product, 0, len(dtos))
	for _, dto := range dtos {
		products = append(products, toProduct(dto))
	}
	return products
}

func toProduct(dto productDTO) entities.Product {
	return entities.Product{
		ID:    dto.ID,
		Name:  dto.Name,
		Price: decimal.NewFromFloat(dto.Price),
	}
}

func toOrderList(dtos []orderDTO) []entities.Order {
	orders := make([]entities.Order, 0, len(dtos))
	for _, dto := range dtos {
		orders = append(orders, toOrder(dto))
	}
	return orders
}

func toOrder(dto orderDTO) entities.Order {
	return entities.Order{
		ID:        dto.OrderID,
		ProductID: dto.ProductID,
		Status:    entities.OrderStatusType(dto.Status),
	}
}

func fromProductModify(modify entities.ProductModify) createProductRequest {
	return createProductRequest{
		Name:  *modify.Name,
		Price: modify.Price.InexactFloat64(),
	}
}
