package catalog

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"sync"

	"github.com/AlekSi/pointer"
	"storefront/internal/controller/viewstate"
	"storefront/internal/entities"
	"storefront/pkg/logger"
)

// ProductForm holds the raw text of the add-product inputs.
type ProductForm struct {
	Name  string
	Price string
}

type Controller struct {
	gateway  Gateway
	reporter *viewstate.Reporter
	log      handlerLogger

	// catalog и lookup независимы: ответ на поиск заказа не отменяет обновление каталога.
	catalog viewstate.Tracker
	lookup  viewstate.Tracker

	mu       sync.Mutex
	products []entities.Product
	form     ProductForm
	order    entities.OrderLookup
}

func New(gateway Gateway, notifier notifier, log handlerLogger) *Controller {
	log = log.With(logger.NewField("view", "catalog"))

	return &Controller{
		gateway:  gateway,
		reporter: viewstate.NewReporter(notifier, log),
		log:      log,
	}
}

func (c *Controller) Initialize(ctx context.Context) error {
	c.log.Debug("initialize")
	return c.RefreshCatalog(ctx)
}

// Dispose drops all view state. Responses still in flight are discarded when they arrive.
func (c *Controller) Dispose() {
	c.catalog.Invalidate()
	c.lookup.Invalidate()

	c.mu.Lock()
	defer c.mu.Unlock()

	c.products = nil
	c.form = ProductForm{}
	c.order = entities.OrderLookup{}

	c.log.Debug("dispose")
}

func (c *Controller) Products() []entities.Product {
	c.mu.Lock()
	defer c.mu.Unlock()

	return slices.Clone(c.products)
}

func (c *Controller) Form() ProductForm {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.form
}

func (c *Controller) Lookup() entities.OrderLookup {
	c.mu.Lock()
	defer c.mu.Unlock()

	lookup := c.order
	if lookup.Status != nil {
		lookup.Status = pointer.ToString(*lookup.Status)
	}
	return lookup
}

// RefreshCatalog replaces the product snapshot with the fetched list. On failure
// the previous snapshot stays.
func (c *Controller) RefreshCatalog(ctx context.Context) error {
	applied, err := viewstate.Fetch(ctx, &c.catalog, c.gateway.ListProducts, c.setProducts)
	return c.catalogRefreshed(applied, err)
}

func (c *Controller) setProducts(products []entities.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.products = products
}

func (c *Controller) catalogRefreshed(applied bool, err error) error {
	if err != nil {
		c.log.Error("refresh catalog", logger.NewField("error", err))
		return fmt.Errorf("refresh catalog: %w", err)
	}

	if !applied {
		c.log.Debug("stale catalog response discarded")
	}
	return nil
}

func (c *Controller) AddProduct(ctx context.Context, name, price string) error {
	base := c.catalog.Current()

	c.mu.Lock()
	c.form = ProductForm{Name: name, Price: price}
	c.mu.Unlock()

	// Цена проверяется первой: отрицательная цена отклоняется независимо от имени.
	value, ok := parsePrice(price)
	if !ok {
		c.reporter.Reject(msgInvalidPrice, ErrInvalidPrice)
		return ErrInvalidPrice
	}
	if !isValidName(name) {
		c.reporter.Reject(msgInvalidName, ErrInvalidName)
		return ErrInvalidName
	}

	product, err := c.gateway.CreateProduct(ctx, entities.ProductModify{
		Name:  pointer.ToString(strings.TrimSpace(name)),
		Price: &value,
	})
	if err != nil {
		c.reporter.Fail("AddProduct", err, viewstate.Messages{Generic: msgAddFailed})
		return fmt.Errorf("add product: %w", err)
	}

	c.log.Info("product added", logger.NewField("product_id", product.ID))

	c.mu.Lock()
	c.form = ProductForm{}
	c.mu.Unlock()

	c.reporter.Success(msgProductAdded)
	c.refreshAfterMutation(ctx, base)

	return nil
}

// PlaceOrder records the new order id in the lookup with an unknown status.
// The lookup is claimed only after the order exists, so a failed order leaves
// an in-flight status check alone.
func (c *Controller) PlaceOrder(ctx context.Context, productID int64) error {
	base := c.lookup.Current()

	orderID, err := c.gateway.CreateOrder(ctx, productID)
	if err != nil {
		c.reporter.Fail("PlaceOrder", err, viewstate.Messages{
			NotFound: msgProductMissing,
			Generic:  msgOrderFailed,
		})
		return fmt.Errorf("place order for product %d: %w", productID, err)
	}

	c.log.Info("order placed",
		logger.NewField("order_id", orderID),
		logger.NewField("product_id", productID),
	)

	if ticket, ok := c.lookup.Resume(base); ok {
		c.lookup.Apply(ticket, func() {
			c.mu.Lock()
			defer c.mu.Unlock()
			c.order = entities.OrderLookup{OrderID: strconv.FormatInt(orderID, 10)}
		})
	} else {
		c.log.Debug("view disposed, order id not recorded", logger.NewField("order_id", orderID))
	}
	c.reporter.Success(fmt.Sprintf(msgOrderPlaced, orderID))

	return nil
}

// CheckOrderStatus fetches the status of orderID into the lookup. Any failure stores
// entities.LookupNotFound instead of keeping the previous status.
func (c *Controller) CheckOrderStatus(ctx context.Context, orderID string) error {
	orderID = strings.TrimSpace(orderID)
	if orderID == "" {
		c.reporter.Reject(msgEmptyOrderID, ErrEmptyOrderID)
		return ErrEmptyOrderID
	}

	ticket := c.lookup.Begin()

	order, err := c.fetchOrder(ctx, orderID)
	if err != nil {
		if viewstate.Classify(err) == viewstate.KindGeneric {
			c.log.Error("check order status", logger.NewField("order_id", orderID), logger.NewField("error", err))
		} else {
			c.log.Warn("check order status", logger.NewField("order_id", orderID), logger.NewField("error", err))
		}

		c.setLookup(ticket, orderID, entities.LookupNotFound)
		return fmt.Errorf("check order %s: %w", orderID, err)
	}

	c.setLookup(ticket, orderID, order.Status.String())
	return nil
}

func (c *Controller) fetchOrder(ctx context.Context, orderID string) (*entities.Order, error) {
	id, err := strconv.ParseInt(orderID, 10, 64)
	if err != nil || id <= 0 {
		// Такой id не может существовать на сервере.
		return nil, fmt.Errorf("%w: %w", ErrInvalidOrderID, entities.ErrNotFound)
	}

	return c.gateway.GetOrder(ctx, id)
}

func (c *Controller) setLookup(ticket viewstate.Ticket, orderID, status string) {
	applied := c.lookup.Apply(ticket, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.order = entities.OrderLookup{OrderID: orderID, Status: pointer.ToString(status)}
	})
	if !applied {
		c.log.Debug("stale order status discarded", logger.NewField("order_id", orderID))
	}
}

func (c *Controller) DeleteProduct(ctx context.Context, productID int64) error {
	base := c.catalog.Current()

	if err := c.gateway.DeleteProduct(ctx, productID); err != nil {
		c.reporter.Fail("DeleteProduct", err, viewstate.Messages{
			NotFound: msgProductMissing,
			Generic:  msgDeleteFailed,
		})
		return fmt.Errorf("delete product %d: %w", productID, err)
	}

	c.log.Info("product deleted", logger.NewField("product_id", productID))

	c.reporter.Success(msgProductDeleted)
	c.refreshAfterMutation(ctx, base)

	return nil
}

// Poll refreshes the catalog and re-checks the looked-up order when it has a known status.
func (c *Controller) Poll(ctx context.Context) error {
	errs := []error{c.RefreshCatalog(ctx)}

	// Билет берется до чтения lookup: любое действие пользователя после этого вытеснит фоновую проверку.
	ticket := c.lookup.Current()
	lookup := c.Lookup()
	if lookup.OrderID != "" && lookup.Status != nil && *lookup.Status != entities.LookupNotFound {
		errs = append(errs, c.recheckOrder(ctx, ticket, lookup.OrderID))
	}

	return errors.Join(errs...)
}

// recheckOrder обновляет статус уже проверенного заказа, не выпуская новый билет.
// Сбой транспорта статус не трогает.
func (c *Controller) recheckOrder(ctx context.Context, ticket viewstate.Ticket, orderID string) error {
	var status string

	order, err := c.fetchOrder(ctx, orderID)
	switch {
	case err == nil:
		status = order.Status.String()
	case errors.Is(err, entities.ErrNotFound):
		status = entities.LookupNotFound
	default:
		c.log.Warn("recheck order status", logger.NewField("order_id", orderID), logger.NewField("error", err))
		return fmt.Errorf("recheck order %s: %w", orderID, err)
	}

	applied := c.lookup.Apply(ticket, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.order.OrderID != orderID {
			return
		}
		c.order.Status = pointer.ToString(status)
	})
	if !applied {
		c.log.Debug("recheck superseded by user action", logger.NewField("order_id", orderID))
	}
	return nil
}

// Мутация уже прошла: ошибка обновления только логируется, прежний снимок остается.
// После Dispose обновление не запускается.
func (c *Controller) refreshAfterMutation(ctx context.Context, base viewstate.Ticket) {
	applied, err := viewstate.FetchSince(ctx, &c.catalog, base, c.gateway.ListProducts, c.setProducts)
	_ = c.catalogRefreshed(applied, err)
}
