package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"cucisepatu/internal/domain"
)

// hasTable reports whether table exists in the connection's current schema.
func (r *OrderRepository) hasTable(ctx context.Context, table string) (bool, error) {
	schemaFn := "DATABASE()"
	if r.d.driver == DriverPgx {
		schemaFn = "current_schema()"
	}

	var name sql.NullString
	err := r.DB.QueryRowContext(ctx, `
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = `+schemaFn+`
		  AND table_name = `+r.d.placeholder(1)+`
		LIMIT 1
	`, table).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return name.Valid && name.String != "", nil
}

// Ping checks connectivity and that the items table is reachable.
func (r *OrderRepository) Ping(ctx context.Context) error {
	if err := r.DB.PingContext(ctx); err != nil {
		return domain.WrapStore("ping", err)
	}
	ok, err := r.hasTable(ctx, r.table())
	if err != nil {
		return domain.WrapStore("ping", err)
	}
	if !ok {
		return domain.StoreError{Op: "ping", Err: fmt.Errorf("tabel %s tidak ditemukan", r.table())}
	}
	return nil
}
