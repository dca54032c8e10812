package admin

import (
	"fmt"

	"storefront/internal/controller/viewstate"
)

var (
	ErrInvalidStatus     = fmt.Errorf("invalid order status: %w", viewstate.ErrValidation)
	ErrOrderNotDisplayed = fmt.Errorf("order is not displayed: %w", viewstate.ErrValidation)
)

const (
	msgInvalidStatus     = "Please choose pending, completed or cancelled"
	msgOrderNotDisplayed = "Order %d is not in the list"
	msgStatusUpdated     = "Order status updated!"
	msgUpdateFailed      = "Failed to update order status!"
	msgConfirmDelete     = "Are you sure you want to delete this order?"
	msgOrderDeleted      = "Order deleted!"
	msgOrderMissing      = "Order not found"
	msgDeleteFailed      = "Failed to delete the order"
)
