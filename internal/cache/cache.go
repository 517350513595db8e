package cache

// options holds all possible settings for a Set operation.
type options struct {
	skipExisting       bool
	updateExistingOnly bool
}

func Options() *options {
	return &options{}
}

// WithUpdateExistingOnly makes Set a no-op for keys that are not cached yet.
func (o *options) WithUpdateExistingOnly(updateOnly bool) *options {
	o.updateExistingOnly = updateOnly
	return o
}

// WithSkipExisting makes Set a no-op for keys that are already cached.
func (o *options) WithSkipExisting(skipExisting bool) *options {
	o.skipExisting = skipExisting
	return o
}

// Cache is the interface of the dictionary lookup cache.
type Cache[K comparable, V any] interface {
	// Get retrieves a value from the cache.
	Get(key K) (V, bool)
	// Set adds a value to the cache, applying any provided options.
	// It reports whether the cache was modified.
	Set(key K, value V, opts *options) bool
	// Remove drops key from the cache.
	Remove(key K)
	// Purge drops every cached entry.
	Purge()
	// Len returns the number of cached entries.
	Len() int
}
