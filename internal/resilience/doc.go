// Package resilience groups the fault tolerance helpers wrapped around the
// article store.
//
//   - retry: exponential backoff with jitter for transient database errors
//   - circuitbreaker: gobreaker-based fail-fast guard for the store
//
// Usage Example:
//
//	cb := circuitbreaker.New(circuitbreaker.DBConfig())
//	err := retry.WithBackoff(ctx, retry.DBConfig(), func() error {
//	    _, err := cb.Execute(func() (any, error) {
//	        return store.FetchAll(ctx)
//	    })
//	    return err
//	})
package resilience
