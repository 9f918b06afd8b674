package main

import (
	"context"
	"fmt"
	"time"

	"github.com/Spok95/techvault/internal/config"
	"github.com/Spok95/techvault/internal/domain/expiry"
	"github.com/Spok95/techvault/internal/domain/inventory"
	"github.com/Spok95/techvault/internal/infra/db"
	"github.com/Spok95/techvault/internal/store"
)

// openStore накатывает миграции и открывает хранилище выбранного драйвера.
// Возвращённую функцию закрытия надо вызвать при выходе.
func openStore(ctx context.Context, c config.Config) (store.KV, func(), error) {
	switch c.Storage.Driver {
	case config.DriverPostgres:
		if err := db.MigratePostgres(c.Postgres.DSN); err != nil {
			return nil, nil, fmt.Errorf("migrations: %w", err)
		}
		pool, err := db.Connect(ctx, c.Postgres.DSN)
		if err != nil {
			return nil, nil, fmt.Errorf("db connect: %w", err)
		}
		log.Info("db connected", "driver", c.Storage.Driver)
		return store.NewPostgres(pool), pool.Close, nil

	case config.DriverSQLite:
		sqlDB, err := db.OpenSQLite(c.SQLite.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite: %w", err)
		}
		if err := db.MigrateSQLite(sqlDB); err != nil {
			_ = sqlDB.Close()
			return nil, nil, fmt.Errorf("migrations: %w", err)
		}
		log.Info("db opened", "driver", c.Storage.Driver, "path", c.SQLite.Path)
		return store.NewSQLite(sqlDB), func() { _ = sqlDB.Close() }, nil

	case config.DriverMemory:
		log.Warn("using in-memory storage, data is lost on exit")
		return store.NewMemory(), func() {}, nil
	}
	return nil, nil, fmt.Errorf("unknown storage driver %q", c.Storage.Driver)
}

func newInventory(kv store.KV, c config.Config) *inventory.Inventory {
	return inventory.New(kv, expiry.New(c.Expiry.SoonDays, c.Location()), time.Now)
}
