package catalog

import (
	"fmt"

	"storefront/internal/controller/viewstate"
)

var (
	ErrInvalidName    = fmt.Errorf("invalid product name: %w", viewstate.ErrValidation)
	ErrInvalidPrice   = fmt.Errorf("invalid price: %w", viewstate.ErrValidation)
	ErrEmptyOrderID   = fmt.Errorf("empty order id: %w", viewstate.ErrValidation)
	ErrInvalidOrderID = fmt.Errorf("invalid order id: %w", viewstate.ErrValidation)
)

const (
	msgInvalidPrice   = "Please enter a valid price greater than zero"
	msgInvalidName    = "Please enter a product name"
	msgEmptyOrderID   = "Please enter an Order ID"
	msgProductAdded   = "Product added!"
	msgAddFailed      = "Failed to add product!"
	msgOrderPlaced    = "Order placed! Your Order ID is %d"
	msgProductMissing = "Product not found!"
	msgOrderFailed    = "Failed to place order!"
	msgProductDeleted = "Product deleted successfully!"
	msgDeleteFailed   = "An error occurred while deleting the product."
)
