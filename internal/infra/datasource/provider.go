// Package datasource selects the repository implementations backing the
// storefront: canned fixtures for local development or the upstream API.
package datasource

import (
	"log/slog"

	"petsfeed/config"
	"petsfeed/internal/domain/repository"
	"petsfeed/internal/infra/datasource/api"
	"petsfeed/internal/infra/datasource/fixture"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for the data-source provider, injected by Fx
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// Repositories bundles the repository implementations selected by config.
type Repositories struct {
	fx.Out

	Catalog repository.CatalogRepository
	Stores  repository.StoreRepository
	Orders  repository.OrderRepository
}

// NewRepositories creates the repository set for the configured provider.
func NewRepositories(params Params) (Repositories, error) {
	cfg := params.Config
	logger := params.Logger

	provider := config.DataSourceFixture
	if cfg.DataSource != nil && cfg.DataSource.Provider != "" {
		provider = cfg.DataSource.Provider
	}

	switch provider {
	case config.DataSourceFixture:
		logger.Info("Using fixture data source")

		return Repositories{
			Catalog: fixture.NewCatalogRepository(cfg),
			Stores:  fixture.NewStoreRepository(cfg),
			Orders:  fixture.NewOrderRepository(cfg),
		}, nil

	case config.DataSourceAPI:
		client, err := api.NewClient(cfg, logger)
		if err != nil {
			return Repositories{}, err
		}
		logger.Info("Using upstream API data source",
			slog.String("base_url", cfg.Upstream.BaseURL),
		)

		return Repositories{
			Catalog: api.NewCatalogRepository(client),
			Stores:  api.NewStoreRepository(client),
			Orders:  api.NewOrderRepository(client),
		}, nil

	default:
		return Repositories{}, errors.Errorf("unknown data source provider: %s", provider)
	}
}

// Module provides the data-source FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewRepositories),
)
