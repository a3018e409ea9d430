// Package storage provides the key-value persistence layer: a byte-level
// Store interface with in-memory, file and Redis adapters, and a typed KV
// wrapper that owns serialization and error containment.
package storage

// Store is the injected backend the key-value layer writes through. Get
// reports ok=false when the key is absent; an error means the backend itself
// failed. Set must make the value durable before returning.
type Store interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
	Delete(key string) error
}
