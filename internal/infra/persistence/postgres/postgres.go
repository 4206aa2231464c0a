package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"ogfinder/config"
	"ogfinder/internal/domain/lifecycle"
	"ogfinder/internal/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
	migrateRetryInterval        = 5 * time.Second
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the PostgreSQL pool. database.url wins over the structured postgres
// section. The pool is pinged (and migrated when database.autoMigrate is set) on
// start and closed on stop.
func New(params Params) (*gorm.DB, error) {
	db, err := open(params.Config, params.Logger)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}
	applyPoolSettings(sqlDB, params.Config.Database)

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	// Add lifecycle management
	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			autoMigrate := params.Config.Database != nil && params.Config.Database.AutoMigrate
			migrateUp := func() error { return NewMigrator(sqlDB, params.Logger).Up() }

			// The API still serves /api/status while the database is down.
			// Pending migrations then run once it answers.
			if err := sqlDB.PingContext(ctx); err != nil {
				params.Logger.Warn("PostgreSQL unreachable at startup", slog.Any("error", err))
				if autoMigrate {
					go migrateWhenReachable(monitorCtx, params.Logger, sqlDB.PingContext, migrateUp, migrateRetryInterval)
				}
			} else if autoMigrate {
				if err := migrateUp(); err != nil {
					return err
				}
			}

			go monitorDBPool(monitorCtx, params.Logger, sqlDB, dbPoolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// Open connects without lifecycle hooks. Used by one-shot commands.
func Open(cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	return open(cfg, logger)
}

func open(cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	session := &gorm.Session{
		// Every write in this service is a single statement.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(logger, cfg),
	}

	if cfg.Database != nil && cfg.Database.URL != "" {
		db, err := gorm.Open(gormpostgres.Open(cfg.Database.URL), &gorm.Config{
			TranslateError:       true,
			DisableAutomaticPing: true,
			Logger:               session.Logger,
		})
		if err != nil {
			return nil, errors.Wrap(err, "failed to open PostgreSQL from database.url")
		}

		if err := registerReplicas(db, cfg.Database.ReplicaURLs); err != nil {
			return nil, err
		}

		return db.Session(session), nil
	}

	if cfg.Postgres == nil {
		return nil, errors.New("postgres store selected but neither database.url nor postgres is configured")
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}

	return db.Session(session), nil
}

// registerReplicas routes reads (FindByEmail, Count, Aggregate) to replicas.
func registerReplicas(db *gorm.DB, replicaURLs []string) error {
	if len(replicaURLs) == 0 {
		return nil
	}

	replicas := make([]gorm.Dialector, 0, len(replicaURLs))
	for _, url := range replicaURLs {
		replicas = append(replicas, gormpostgres.Open(url))
	}

	if err := db.Use(dbresolver.Register(dbresolver.Config{
		Replicas: replicas,
		Policy:   dbresolver.RandomPolicy{},
	})); err != nil {
		return errors.Wrap(err, "failed to register PostgreSQL replicas")
	}

	return nil
}

func applyPoolSettings(sqlDB *sql.DB, cfg *config.DatabaseConfig) {
	if cfg == nil {
		return
	}
	if cfg.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}
}

// migrateWhenReachable pings every interval and applies migrations after the
// first successful ping. A failed migration is retried on the next tick.
func migrateWhenReachable(
	ctx context.Context,
	logger *slog.Logger,
	ping func(context.Context) error,
	migrateUp func() error,
	interval time.Duration,
) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(ctx, interval)
			err := ping(pingCtx)
			cancel()
			if err != nil {
				logger.Debug("PostgreSQL still unreachable, migrations pending", slog.Any("error", err))

				continue
			}

			if err := migrateUp(); err != nil {
				logger.Error("Deferred migrations failed", slog.Any("error", err))

				continue
			}

			logger.Info("Deferred migrations applied")

			return
		}
	}
}

func monitorDBPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			waitDelta := cur.WaitCount - prev.WaitCount
			waitDurationDelta := cur.WaitDuration - prev.WaitDuration

			if waitDelta > 0 {
				attrs := []slog.Attr{
					slog.Int64("waitCountDelta", waitDelta),
					slog.Duration("waitDurationDelta", waitDurationDelta),
					slog.Duration("avgWait", waitDurationDelta/time.Duration(waitDelta)),
					slog.Int("maxOpenConns", cur.MaxOpenConnections),
					slog.Int("openConns", cur.OpenConnections),
					slog.Int("inUseConns", cur.InUse),
					slog.Int("idleConns", cur.Idle),
				}
				if waitDurationDelta >= dbPoolWarnDurationThreshold {
					logger.LogAttrs(ctx, slog.LevelWarn, "Postgres pool wait detected", attrs...)
				} else {
					logger.LogAttrs(ctx, slog.LevelDebug, "Postgres pool wait observed", attrs...)
				}
			}

			prev = cur
		}
	}
}
