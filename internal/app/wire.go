//go:build wireinject
// +build wireinject

package app

import (
	"net/http"

	"github.com/google/wire"
	"storefront/internal/controller/admin"
	"storefront/internal/controller/catalog"
	"storefront/internal/gateway/http/store"
	"storefront/internal/pkg/config"
	"storefront/internal/pkg/console"
	"storefront/internal/shell"
	"storefront/pkg/logger"
)

// InitializeApplication собирает оболочку с обоими представлениями поверх одного клиента стора.
func InitializeApplication(
	log logger.Logger,
	client *http.Client,
	term *console.Console,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideStoreGateway,
		provideProber,

		provideCatalog,
		provideAdmin,

		provideShellOptions,
		provideShell,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(catalog.Gateway), new(*store.StoreGateway)),
		wire.Bind(new(admin.Gateway), new(*store.StoreGateway)),
		wire.Bind(new(shell.CatalogView), new(*catalog.Controller)),
		wire.Bind(new(shell.AdminView), new(*admin.Controller)),
	)
	return &Application{}, nil
}
