package ports

// Cache is the abstraction for any kind of volatile storage holding data
// derived from the persisted one.
type Cache interface {
	Get(key string) (interface{}, bool)
	Set(key string, value interface{})
	// Clear invalidates every cached entry.
	Clear()
}
