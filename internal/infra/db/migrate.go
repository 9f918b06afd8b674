package db

import (
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/Spok95/techvault/migrations"
)

// MigratePostgres накатывает миграции из migrations/postgres.
func MigratePostgres(dsn string) error {
	sqlDB, err := goose.OpenDBWithDriver("pgx", dsn)
	if err != nil {
		return err
	}
	defer func() { _ = sqlDB.Close() }()
	return up(sqlDB, "postgres", "postgres")
}

// MigrateSQLite накатывает миграции из migrations/sqlite на уже открытую базу.
func MigrateSQLite(sqlDB *sql.DB) error {
	return up(sqlDB, "sqlite3", "sqlite")
}

func up(sqlDB *sql.DB, dialect, dir string) error {
	goose.SetBaseFS(migrations.FS)
	defer goose.SetBaseFS(nil)
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := goose.Up(sqlDB, dir); err != nil {
		return fmt.Errorf("goose up %s: %w", dir, err)
	}
	return nil
}
