// Package repository declares the storage contracts the use cases depend on.
package repository

import (
	"context"
	"errors"

	"article-filter/internal/domain/entity"
)

// ErrStoreUnavailable is wrapped by every error an ArticleRepository returns
// when the backing store could not be reached or queried.
var ErrStoreUnavailable = errors.New("article store unavailable")

// ArticleRepository produces the complete current collection of articles.
//
// FetchAll performs no filtering. The order of the returned slice is whatever
// the backing source yields. On failure it returns a nil slice and an error
// wrapping ErrStoreUnavailable, never a partially filled collection.
// Implementations must be safe for concurrent use.
type ArticleRepository interface {
	FetchAll(ctx context.Context) ([]entity.Article, error)
}
