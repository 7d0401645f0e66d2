package storage

import (
	"context"
	"embed"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Drivers soportados por Open.
const (
	DriverPgx      = "pgx"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite3"
)

// Open abre la conexión con el driver pedido y verifica health.
func Open(ctx context.Context, driver, url string) (*sqlx.DB, error) {
	if _, err := dialectFor(driver); err != nil {
		return nil, err
	}
	db, err := sqlx.Open(driver, url)
	if err != nil {
		return nil, err
	}
	if driver == DriverSQLite {
		// sqlite serializa escrituras; con :memory: cada conexión sería otra base
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(1 * time.Hour)
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping: %w", err)
	}
	return db, nil
}

// Migrate aplica todas las migraciones embebidas.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	dialect, err := dialectFor(db.DriverName())
	if err != nil {
		return err
	}
	goose.SetBaseFS(migrations)
	if err := goose.SetDialect(dialect); err != nil {
		return err
	}
	return goose.UpContext(ctx, db.DB, "migrations")
}

func dialectFor(driver string) (string, error) {
	switch driver {
	case DriverPgx, DriverPostgres:
		return "postgres", nil
	case DriverSQLite:
		return "sqlite3", nil
	default:
		return "", fmt.Errorf("unsupported database driver %q", driver)
	}
}
