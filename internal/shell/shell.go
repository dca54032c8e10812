package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"storefront/internal/entities"
	"storefront/internal/handlers/tasks/view_refresh"
	"storefront/pkg/background"
	"storefront/pkg/logger"
)

const (
	ViewCatalog = "catalog"
	ViewAdmin   = "admin"
)

var routes = map[string]string{
	ViewCatalog: "/",
	ViewAdmin:   "/admin",
}

type Options struct {
	// 0 - автообновление выключено
	AutoRefreshInterval time.Duration
}

// Shell hosts the two views and keeps exactly one of them active.
type Shell struct {
	term    terminal
	catalog CatalogView
	admin   AdminView
	log     handlerLogger
	opts    Options

	active     string
	stopPoller func()
}

func New(term terminal, catalog CatalogView, admin AdminView, log handlerLogger, opts Options) *Shell {
	return &Shell{
		term:    term,
		catalog: catalog,
		admin:   admin,
		log:     log.With(logger.NewField("component", "shell")),
		opts:    opts,
	}
}

func (s *Shell) Active() string {
	return s.active
}

// Run reads commands until quit, end of input or ctx cancellation.
func (s *Shell) Run(ctx context.Context) error {
	defer s.Close()

	if err := s.Switch(ctx, ViewCatalog); err != nil {
		s.log.Warn("initial view load failed", logger.NewField("error", err))
	}
	s.printHelp()
	s.render()

	for {
		s.term.Printf("%s> ", routes[s.active])

		line, err := s.term.ReadLine(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				return nil
			}
			return fmt.Errorf("read command: %w", err)
		}

		err = s.Execute(ctx, line)
		switch {
		case errors.Is(err, ErrQuit):
			return nil
		case errors.Is(err, ErrUsage),
			errors.Is(err, ErrUnknownCommand),
			errors.Is(err, ErrUnknownView):
			s.term.Alert(err.Error())
		case err != nil:
			// контроллер уже показал ошибку пользователю
			s.log.Debug("command failed", logger.NewField("command", line), logger.NewField("error", err))
		}
	}
}

// Switch disposes the active view and initializes the named one. The new view
// stays active even when its first load fails.
func (s *Shell) Switch(ctx context.Context, view string) error {
	if _, ok := routes[view]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownView, view)
	}
	if view == s.active {
		return nil
	}

	s.disposeActive()
	s.active = view
	s.log.Info("view activated", logger.NewField("view", view))

	var err error
	switch view {
	case ViewCatalog:
		err = s.catalog.Initialize(ctx)
		s.startPoller(ctx)
	case ViewAdmin:
		err = s.admin.Initialize(ctx)
	}

	if err != nil {
		return fmt.Errorf("initialize %s view: %w", view, err)
	}
	return nil
}

// Close disposes the active view.
func (s *Shell) Close() {
	s.disposeActive()
	s.active = ""
}

func (s *Shell) disposeActive() {
	if s.stopPoller != nil {
		s.stopPoller()
		s.stopPoller = nil
	}

	switch s.active {
	case ViewCatalog:
		s.catalog.Dispose()
	case ViewAdmin:
		s.admin.Dispose()
	}
}

// Админка не обновляется в фоне: каждое обновление сбрасывает черновики.
func (s *Shell) startPoller(ctx context.Context) {
	if s.opts.AutoRefreshInterval <= 0 {
		return
	}

	pollCtx, cancel := context.WithCancel(ctx)
	task := view_refresh.NewViewRefresh(s.log, s.catalog, ViewCatalog, s.opts.AutoRefreshInterval)
	worker := background.New(s.log, []background.Task{task})

	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := worker.Run(pollCtx); err != nil {
			s.log.Error("view poller stopped", logger.NewField("error", err))
		}
	}()

	s.stopPoller = func() {
		cancel()
		<-done
	}
}

// Execute runs one command line against the active view.
func (s *Shell) Execute(ctx context.Context, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "help", "?":
		s.printHelp()
		return nil
	case "quit", "exit":
		return ErrQuit
	case "view":
		if len(args) != 1 {
			return usage("view <catalog|admin>")
		}
		return s.switchAndRender(ctx, resolveView(args[0]))
	case "/", "/admin":
		return s.switchAndRender(ctx, resolveView(cmd))
	}

	var err error
	if s.active == ViewAdmin {
		err = s.executeAdmin(ctx, cmd, args)
	} else {
		err = s.executeCatalog(ctx, cmd, args)
	}
	if errors.Is(err, ErrUsage) || errors.Is(err, ErrUnknownCommand) {
		return err
	}

	s.render()
	return err
}

func (s *Shell) switchAndRender(ctx context.Context, view string) error {
	err := s.Switch(ctx, view)
	if errors.Is(err, ErrUnknownView) {
		return err
	}

	s.render()
	return err
}

func (s *Shell) executeCatalog(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "products":
		return s.catalog.RefreshCatalog(ctx)
	case "add":
		if len(args) < 2 {
			return usage("add <name...> <price>")
		}
		last := len(args) - 1
		return s.catalog.AddProduct(ctx, strings.Join(args[:last], " "), args[last])
	case "order":
		id, err := parseID(args, "order <productID>")
		if err != nil {
			return err
		}
		return s.catalog.PlaceOrder(ctx, id)
	case "status":
		if len(args) > 1 {
			return usage("status [orderID]")
		}
		orderID := s.catalog.Lookup().OrderID
		if len(args) == 1 {
			orderID = args[0]
		}
		return s.catalog.CheckOrderStatus(ctx, orderID)
	case "delete":
		id, err := parseID(args, "delete <productID>")
		if err != nil {
			return err
		}
		return s.catalog.DeleteProduct(ctx, id)
	default:
		return fmt.Errorf("%w %q in catalog view, type help", ErrUnknownCommand, cmd)
	}
}

func (s *Shell) executeAdmin(ctx context.Context, cmd string, args []string) error {
	switch cmd {
	case "orders":
		return s.admin.RefreshOrders(ctx)
	case "draft":
		if len(args) != 2 {
			return usage("draft <orderID> <status>")
		}
		id, err := parseID(args[:1], "draft <orderID> <status>")
		if err != nil {
			return err
		}
		return s.admin.SetDraftStatus(id, toStatus(args[1]))
	case "commit":
		id, err := parseID(args, "commit <orderID>")
		if err != nil {
			return err
		}
		return s.admin.CommitStatus(ctx, id)
	case "delete":
		id, err := parseID(args, "delete <orderID>")
		if err != nil {
			return err
		}
		return s.admin.DeleteOrder(ctx, id)
	default:
		return fmt.Errorf("%w %q in admin view, type help", ErrUnknownCommand, cmd)
	}
}

func resolveView(name string) string {
	switch strings.ToLower(name) {
	case "/", "home", ViewCatalog:
		return ViewCatalog
	case "/admin", ViewAdmin:
		return ViewAdmin
	default:
		return name
	}
}

func toStatus(status string) entities.OrderStatusType {
	return entities.OrderStatusType(strings.ToLower(status))
}

func usage(syntax string) error {
	return fmt.Errorf("%w: %s", ErrUsage, syntax)
}

func parseID(args []string, syntax string) (int64, error) {
	if len(args) != 1 {
		return 0, usage(syntax)
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, usage(syntax)
	}
	return id, nil
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
