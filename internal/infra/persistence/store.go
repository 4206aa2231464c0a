// Package persistence selects the credential store backend from configuration
// and exposes it to the rest of the application as repository ports.
package persistence

import (
	"context"
	"log/slog"

	"ogfinder/config"
	"ogfinder/internal/domain/constants"
	"ogfinder/internal/domain/lifecycle"
	"ogfinder/internal/domain/repository"
	"ogfinder/internal/errors"
	"ogfinder/internal/infra/persistence/memory"
	"ogfinder/internal/infra/persistence/postgres"
	"ogfinder/internal/infra/persistence/sqlite"

	"go.uber.org/fx"
)

// StoreParams holds dependencies for the store, injected by Fx.
type StoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// Store is the set of ports backed by one store handle.
type Store struct {
	fx.Out

	UserRepo  repository.UserRepository
	StatsRepo repository.StatsRepository
	Health    repository.HealthChecker
}

type storeBackend interface {
	repository.UserRepository
	repository.StatsRepository
	repository.HealthChecker
}

// NewStore opens the backend named by store.driver and ties its lifetime to the application.
func NewStore(params StoreParams) (Store, error) {
	driver := params.Config.Store.Driver
	logger := params.Logger.With(slog.String("store_driver", driver))

	var backend storeBackend

	switch driver {
	case constants.StoreDriverMemory:
		mem := memory.NewStore()
		params.Lc.Append(fx.Hook{
			OnStop: func(context.Context) error { return mem.Close() },
		})
		backend = mem

	case constants.StoreDriverSQLite:
		path := ":memory:"
		if params.Config.SQLite != nil && params.Config.SQLite.Path != "" {
			path = params.Config.SQLite.Path
		}

		db, err := sqlite.Open(path)
		if err != nil {
			return Store{}, err
		}
		params.Lc.Append(fx.Hook{
			OnStart: func(startCtx context.Context) error {
				ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
				defer cancel()

				return sqlite.Init(ctx, db)
			},
			OnStop: func(context.Context) error {
				return errors.WithStack(db.Close())
			},
		})
		logger = logger.With(slog.String("path", path))
		backend = sqlite.NewUserRepository(db)

	case constants.StoreDriverPostgres:
		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lc,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Store{}, err
		}
		backend = postgres.NewUserRepository(db)

	default:
		return Store{}, errors.Errorf("unknown store driver: %s", driver)
	}

	logger.Info("Credential store selected")

	return Store{
		UserRepo:  backend,
		StatsRepo: backend,
		Health:    backend,
	}, nil
}

// Module provides the persistence FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewStore),
)
