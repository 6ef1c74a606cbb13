package config

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// OpenDB opens and pings the SQL store selected by env.DBDriver.
func OpenDB(ctx context.Context, env Env) (*sql.DB, error) {
	dsn, err := normalizeDSN(env.DBDriver, env.DBDSN)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(env.DBDriver, dsn)
	if err != nil {
		return nil, fmt.Errorf("gagal open DB: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(10 * time.Minute)
	db.SetConnMaxIdleTime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("gagal ping DB: %w", err)
	}
	return db, nil
}

// normalizeDSN turns on clientFoundRows for MySQL so UPDATE reports matched
// rows, not changed rows; an update that rewrites identical values must not
// look like a missing id.
func normalizeDSN(driver, dsn string) (string, error) {
	if driver != "mysql" {
		return dsn, nil
	}
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return "", fmt.Errorf("DB_DSN mysql tidak valid: %w", err)
	}
	cfg.ClientFoundRows = true
	return cfg.FormatDSN(), nil
}
