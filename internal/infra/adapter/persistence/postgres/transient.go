package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"article-filter/internal/domain/entity"
	"article-filter/internal/resilience/retry"
)

// IsTransient reports whether a FetchAll error is worth retrying against
// PostgreSQL. Bad rows are never retried.
func IsTransient(err error) bool {
	if err == nil || errors.Is(err, entity.ErrValidationFailed) {
		return false
	}
	if retry.IsRetryable(err) || pgconn.SafeToRetry(err) {
		return true
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	switch {
	case len(pgErr.Code) == 5 && pgErr.Code[:2] == "08": // connection exception
		return true
	case pgErr.Code == "40001", pgErr.Code == "40P01": // serialization failure, deadlock
		return true
	case pgErr.Code == "53300", pgErr.Code == "57P01": // too many connections, admin shutdown
		return true
	}
	return false
}
