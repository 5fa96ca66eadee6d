package repository

// Store is the durable per-profile key-value store: string keys, JSON-encoded
// values. Get reports false when the key is absent or its stored value cannot
// be decoded, so callers fall back to their defaults instead of failing.
type Store interface {
	Get(key string, dest any) bool
	Put(key string, value any) error
	Delete(key string) error
}
