package admin

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"sync"

	"storefront/internal/controller/viewstate"
	"storefront/internal/entities"
	"storefront/pkg/logger"
)

type Controller struct {
	gateway   Gateway
	confirmer confirmer
	reporter  *viewstate.Reporter
	log       handlerLogger

	orders viewstate.Tracker

	mu       sync.Mutex
	snapshot []entities.Order
	drafts   map[int64]entities.OrderStatusType
}

func New(gateway Gateway, notifier notifier, confirmer confirmer, log handlerLogger) *Controller {
	log = log.With(logger.NewField("view", "admin"))

	return &Controller{
		gateway:   gateway,
		confirmer: confirmer,
		reporter:  viewstate.NewReporter(notifier, log),
		log:       log,
	}
}

func (c *Controller) Initialize(ctx context.Context) error {
	c.log.Debug("initialize")
	return c.RefreshOrders(ctx)
}

func (c *Controller) Dispose() {
	c.orders.Invalidate()

	c.mu.Lock()
	defer c.mu.Unlock()

	c.snapshot = nil
	c.drafts = nil

	c.log.Debug("dispose")
}

func (c *Controller) Orders() []entities.Order {
	c.mu.Lock()
	defer c.mu.Unlock()

	return slices.Clone(c.snapshot)
}

func (c *Controller) Drafts() map[int64]entities.OrderStatusType {
	c.mu.Lock()
	defer c.mu.Unlock()

	return maps.Clone(c.drafts)
}

func (c *Controller) Draft(orderID int64) (entities.OrderStatusType, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	draft, ok := c.drafts[orderID]
	return draft, ok
}

func (c *Controller) Rows() []Row {
	c.mu.Lock()
	defer c.mu.Unlock()

	rows := make([]Row, 0, len(c.snapshot))
	for _, order := range c.snapshot {
		rows = append(rows, newRow(order, c.drafts))
	}
	return rows
}

// RefreshOrders replaces the snapshot and resets every draft to the fetched server
// status. Uncommitted drafts are discarded.
func (c *Controller) RefreshOrders(ctx context.Context) error {
	applied, err := viewstate.Fetch(ctx, &c.orders, c.gateway.ListOrders, c.setOrders)
	return c.ordersRefreshed(applied, err)
}

func (c *Controller) setOrders(orders []entities.Order) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.snapshot = orders
	c.drafts = resetDrafts(orders)
}

func (c *Controller) ordersRefreshed(applied bool, err error) error {
	if err != nil {
		c.log.Error("refresh orders", logger.NewField("error", err))
		return fmt.Errorf("refresh orders: %w", err)
	}

	if !applied {
		c.log.Debug("stale orders response discarded")
	}
	return nil
}

func (c *Controller) SetDraftStatus(orderID int64, status entities.OrderStatusType) error {
	if !status.IsValid() {
		c.reporter.Reject(msgInvalidStatus, ErrInvalidStatus)
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	c.mu.Lock()
	_, displayed := c.drafts[orderID]
	if displayed {
		c.drafts[orderID] = status
	}
	c.mu.Unlock()

	if !displayed {
		c.reporter.Reject(fmt.Sprintf(msgOrderNotDisplayed, orderID), ErrOrderNotDisplayed)
		return fmt.Errorf("order %d: %w", orderID, ErrOrderNotDisplayed)
	}

	c.log.Debug("draft status set",
		logger.NewField("order_id", orderID),
		logger.NewField("status", status),
	)
	return nil
}

// CommitStatus sends the draft of orderID. Without a draft it does nothing.
// On failure the draft is kept so the commit can be retried.
func (c *Controller) CommitStatus(ctx context.Context, orderID int64) error {
	draft, ok := c.Draft(orderID)
	if !ok {
		c.log.Debug("no draft to commit", logger.NewField("order_id", orderID))
		return nil
	}

	base := c.orders.Current()

	err := c.gateway.UpdateOrderStatus(ctx, entities.OrderModify{
		ID:     &orderID,
		Status: &draft,
	})
	if err != nil {
		c.reporter.Fail("CommitStatus", err, viewstate.Messages{
			NotFound: msgOrderMissing,
			Generic:  msgUpdateFailed,
		})
		return fmt.Errorf("commit order %d status: %w", orderID, err)
	}

	c.log.Info("order status committed",
		logger.NewField("order_id", orderID),
		logger.NewField("status", draft),
	)

	c.reporter.Success(msgStatusUpdated)
	c.refreshAfterMutation(ctx, base)

	return nil
}

// DeleteOrder asks for confirmation first. A declined confirmation sends nothing and is not an error.
func (c *Controller) DeleteOrder(ctx context.Context, orderID int64) error {
	if !c.confirmer.Confirm(ctx, msgConfirmDelete) {
		c.log.Debug("delete declined", logger.NewField("order_id", orderID))
		return nil
	}

	base := c.orders.Current()

	if err := c.gateway.DeleteOrder(ctx, orderID); err != nil {
		c.reporter.Fail("DeleteOrder", err, viewstate.Messages{
			NotFound: msgOrderMissing,
			Generic:  msgDeleteFailed,
		})
		return fmt.Errorf("delete order %d: %w", orderID, err)
	}

	c.log.Info("order deleted", logger.NewField("order_id", orderID))

	c.reporter.Success(msgOrderDeleted)
	c.refreshAfterMutation(ctx, base)

	return nil
}

// Мутация уже прошла: ошибка обновления только логируется, прежний снимок остается.
// После Dispose обновление не запускается.
func (c *Controller) refreshAfterMutation(ctx context.Context, base viewstate.Ticket) {
	applied, err := viewstate.FetchSince(ctx, &c.orders, base, c.gateway.ListOrders, c.setOrders)
	_ = c.ordersRefreshed(applied, err)
}
