package entity

import (
	"database/sql"
	"fmt"
	"strings"
)

// ValidateViews checks that a view count is non-negative.
func ValidateViews(views int) error {
	if views < 0 {
		return &ValidationError{
			Field:   "views",
			Message: fmt.Sprintf("must be non-negative, got %d", views),
		}
	}
	return nil
}

// ParseTags splits the persisted tag blob into its ordered tokens.
// Tokens are separated by whitespace and empty tokens are dropped,
// so a blank blob yields an empty, non-nil slice.
func ParseTags(raw string) []string {
	fields := strings.Fields(raw)
	if fields == nil {
		return []string{}
	}
	return fields
}

// ParseNullableTags is ParseTags for a column that may be NULL.
// NULL maps to an empty slice.
func ParseNullableTags(raw sql.NullString) []string {
	if !raw.Valid {
		return []string{}
	}
	return ParseTags(raw.String)
}
