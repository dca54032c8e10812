package app

import (
	"net/http"

	"storefront/internal/controller/admin"
	"storefront/internal/controller/catalog"
	"storefront/internal/gateway/http/store"
	"storefront/internal/pkg/config"
	"storefront/internal/pkg/console"
	"storefront/internal/pkg/httpclient"
	"storefront/internal/shell"
	"storefront/pkg/logger"
	"storefront/pkg/token_bucket"
)

type Application struct {
	Shell   *shell.Shell
	Catalog *catalog.Controller
	Admin   *admin.Controller
	Prober  *httpclient.Prober
}

func provideStoreGateway(cfg *config.Config, client *http.Client) *store.StoreGateway {
	qps := cfg.Store.RateLimitQPS
	if qps == 0 {
		return store.New(cfg.Store.BaseURL, client, nil)
	}

	burst := cfg.Store.RateLimitBurst
	if burst == 0 {
		burst = qps
	}
	return store.New(cfg.Store.BaseURL, client, token_bucket.NewTokenBucket(burst, float64(qps)))
}

func provideProber(cfg *config.Config, client *http.Client) *httpclient.Prober {
	return httpclient.NewProber(client, cfg.Store.BaseURL)
}

func provideCatalog(gateway catalog.Gateway, term *console.Console, log logger.Logger) *catalog.Controller {
	return catalog.New(gateway, term, log)
}

func provideAdmin(gateway admin.Gateway, term *console.Console, log logger.Logger) *admin.Controller {
	return admin.New(gateway, term, term, log)
}

func provideShellOptions(cfg *config.Config) shell.Options {
	return shell.Options{
		AutoRefreshInterval: cfg.Shell.AutoRefreshInterval,
	}
}

func provideShell(
	term *console.Console,
	catalogView shell.CatalogView,
	adminView shell.AdminView,
	log logger.Logger,
	opts shell.Options,
) *shell.Shell {
	return shell.New(term, catalogView, adminView, log, opts)
}
