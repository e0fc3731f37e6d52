// Package article implements the article filtering use case: it loads the
// full collection from the store and keeps the articles that meet a view
// threshold and an optional keyword.
package article

import "article-filter/internal/repository"

// ErrStoreUnavailable is returned by Filter when the store could not
// produce the article collection. It is the same value as
// repository.ErrStoreUnavailable.
var ErrStoreUnavailable = repository.ErrStoreUnavailable
