package pgstore

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrConstraintViolation marks writes rejected by a database integrity
// constraint, such as a dangling organization reference.
var ErrConstraintViolation = errors.New("constraint violation")

// mapWriteErr translates Postgres integrity errors into the package sentinel
// so callers can branch without inspecting driver types.
func mapWriteErr(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgerrcode.IsIntegrityConstraintViolation(pgErr.Code) {
		return fmt.Errorf("%w: %s", ErrConstraintViolation, pgErr.ConstraintName)
	}
	return err
}
