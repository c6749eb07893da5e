// Package sqlite contains the concrete implementation of the persistence layer using GORM and SQLite.
package sqlite

import (
	"context"
	"log/slog"

	"tabiptv/config"
	"tabiptv/internal/domain/lifecycle"
	"tabiptv/internal/errors"
	"tabiptv/internal/infra/persistence/model"

	"go.uber.org/fx"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the SQLite client mapping
func New(params Params) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(params.Config.SQLite.Path), &gorm.Config{
		// Disable GORM's per-statement implicit transaction.
		// We keep explicit transactions via txManager.Execute for multi-step atomic operations.
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open SQLite database")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get SQLite sql.DB")
	}

	// SQLite handles one writer at a time; a single connection avoids
	// SQLITE_BUSY errors under concurrent writes.
	sqlDB.SetMaxOpenConns(1)

	// Add lifecycle management
	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping SQLite")
			}

			if err := db.WithContext(ctx).AutoMigrate(
				&model.ChannelModel{},
				&model.AccountModel{},
				&model.PlaylistPathModel{},
			); err != nil {
				return errors.Wrap(err, "failed to migrate schema")
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return sqlDB.Close()
		},
	})

	return db, nil
}
