package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"keycard/config"
	"keycard/internal/domain/lifecycle"
	"keycard/internal/infra/persistence/model"

	"github.com/pkg/errors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the PostgreSQL connection backing the user store. The schema is migrated on
// start when storage.autoMigrate is set.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	// Driver errors map onto gorm sentinels such as gorm.ErrDuplicatedKey.
	db.Config.TranslateError = true
	db = db.Session(&gorm.Session{
		// Every repository call is a single statement.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})
	autoMigrate := params.Config.Storage != nil && params.Config.Storage.AutoMigrate

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	// Add lifecycle management
	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			if autoMigrate {
				if err := db.WithContext(ctx).AutoMigrate(&model.UserModel{}); err != nil {
					return errors.Wrap(err, "failed to migrate users table")
				}
				params.Logger.Info("Users table migrated")
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

// monitorDBPool logs when requests had to wait for a pooled connection since the last tick.
func monitorDBPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			stats := sqlDB.Stats()
			waits := stats.WaitCount - last.WaitCount
			waited := stats.WaitDuration - last.WaitDuration
			last = stats

			if waits <= 0 {
				continue
			}

			level := slog.LevelDebug
			if waited >= dbPoolWarnDurationThreshold {
				level = slog.LevelWarn
			}
			logger.LogAttrs(ctx, level, "User store waited for database connections",
				slog.Int64("waits", waits),
				slog.Duration("waited", waited),
				slog.Duration("avgWait", waited/time.Duration(waits)),
				slog.Int("inUse", stats.InUse),
				slog.Int("idle", stats.Idle),
				slog.Int("maxOpen", stats.MaxOpenConnections),
			)
		}
	}
}
