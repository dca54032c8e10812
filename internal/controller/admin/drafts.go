package admin

import "storefront/internal/entities"

// RowState is the edit state of one displayed order.
type RowState int

const (
	// Synced: the draft equals the last fetched server status.
	Synced RowState = iota
	// Drafted: the user picked a status that is not committed yet.
	Drafted
)

func (s RowState) String() string {
	if s == Drafted {
		return "drafted"
	}
	return "synced"
}

type Row struct {
	Order entities.Order
	Draft entities.OrderStatusType
	State RowState
}

func newRow(order entities.Order, drafts map[int64]entities.OrderStatusType) Row {
	draft, ok := drafts[order.ID]
	if !ok {
		draft = order.Status
	}

	state := Synced
	if draft != order.Status {
		state = Drafted
	}

	return Row{Order: order, Draft: draft, State: state}
}

// resetDrafts rebuilds the draft map from a fetched snapshot: exactly one key per displayed order.
func resetDrafts(orders []entities.Order) map[int64]entities.OrderStatusType {
	drafts := make(map[int64]entities.OrderStatusType, len(orders))
	for _, order := range orders {
		drafts[order.ID] = order.Status
	}
	return drafts
}
