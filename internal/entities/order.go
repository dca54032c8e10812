package entities

type Order struct {
	ID        int64
	ProductID int64
	Status    OrderStatusType
}

type OrderStatusType string

const (
	OrderPending   OrderStatusType = "pending"
	OrderCompleted OrderStatusType = "completed"
	OrderCancelled OrderStatusType = "cancelled"
)

// OrderStatuses lists every status the client may send, in display order.
var OrderStatuses = []OrderStatusType{OrderPending, OrderCompleted, OrderCancelled}

func (s OrderStatusType) String() string {
	return string(s)
}

func (s OrderStatusType) IsValid() bool {
	switch s {
	case OrderPending, OrderCompleted, OrderCancelled:
		return true
	default:
		return false
	}
}

type OrderModify struct {
	ID        *int64
	ProductID *int64
	Status    *OrderStatusType
}

// OrderLookup is the customer's last status check. Status stays nil until
// the order is checked; a failed check stores LookupNotFound.
type OrderLookup struct {
	OrderID string
	Status  *string
}

const LookupNotFound = "Order not found"
