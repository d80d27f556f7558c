package catalog

import "context"

// Feed provides read access to a product feed. The feed has a single read
// operation: it always returns the full dataset, and callers paginate
// client-side by slicing the result.
type Feed interface {
	// Products returns every product in the feed.
	Products(ctx context.Context) ([]Product, error)
}

// Invalidator is implemented by feeds that memoize the dataset in memory.
// Callers that need fresh data (a refresh gesture) invalidate before the
// next Products call.
type Invalidator interface {
	// Invalidate drops any memoized dataset.
	Invalidate()
}
