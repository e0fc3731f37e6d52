package sqlite

import (
	"errors"

	moderncsqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"article-filter/internal/domain/entity"
	"article-filter/internal/resilience/retry"
)

// IsTransient reports whether a FetchAll error is worth retrying against
// SQLite. Lock contention is the usual transient cause.
func IsTransient(err error) bool {
	if err == nil || errors.Is(err, entity.ErrValidationFailed) {
		return false
	}
	if retry.IsRetryable(err) {
		return true
	}

	var liteErr *moderncsqlite.Error
	if errors.As(err, &liteErr) {
		// extended result codes keep the primary code in the low byte
		switch liteErr.Code() & 0xff {
		case sqlite3.SQLITE_BUSY, sqlite3.SQLITE_LOCKED:
			return true
		}
	}
	return false
}
