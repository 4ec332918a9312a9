package pgstore

// Package pgstore implements the access core's store ports over the portal's
// PostgreSQL schema. Repositories hold a *sql.DB and use the pgx stdlib
// bridge for typed row collection.

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
)

// TimeProvider abstracts time.Now for deterministic tests.
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider returns the actual current time.
type RealTimeProvider struct{}

// Now returns the current time.
func (RealTimeProvider) Now() time.Time { return time.Now() }

// withPgxConn acquires a *pgx.Conn via the stdlib bridge and executes fn with it.
func withPgxConn(ctx context.Context, db *sql.DB, fn func(*pgx.Conn) error) error {
	conn, err := db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("get conn from pool: %w", err)
	}
	defer func() {
		if closeErr := conn.Close(); closeErr != nil {
			// connection close failure is best-effort and ignored
			_ = closeErr
		}
	}()

	return conn.Raw(func(dc any) error {
		std, ok := dc.(*stdlib.Conn)
		if !ok {
			return errors.New("unexpected driver connection type; expected *stdlib.Conn")
		}
		return fn(std.Conn())
	})
}
