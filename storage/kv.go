package storage

import (
	"fmt"

	"github.com/bytedance/sonic"
	log "github.com/sirupsen/logrus"
)

// WriteError reports a value that was not persisted. Callers that receive
// one must not assume the store still holds the previous value for the key.
type WriteError struct {
	Key string
	Err error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write %q: %v", e.Key, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// KV is the typed wrapper over a Store. Reads fail soft: a missing key,
// unparsable payload or broken backend yields the caller's default. Writes
// report whether the value was persisted.
type KV struct {
	store  Store
	logger *log.Logger
}

// NewKV wraps a Store. A nil logger falls back to the standard logger.
func NewKV(store Store, logger *log.Logger) *KV {
	if store == nil {
		panic("storage.NewKV: store is nil")
	}
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &KV{store: store, logger: logger}
}

// Read returns the value stored under key, or def when the key is absent,
// the payload does not decode, or the backend fails. It never panics and
// never surfaces an error.
func Read[T any](kv *KV, key string, def T) T {
	data, ok, err := kv.store.Get(key)
	if err != nil {
		kv.logger.Warnf("storage: read %q: %v", key, err)
		return def
	}
	if !ok {
		return def
	}
	var v T
	if err := sonic.Unmarshal(data, &v); err != nil {
		kv.logger.Warnf("storage: decode %q: %v", key, err)
		return def
	}
	return v
}

// Write serializes v and stores it under key. The caller learns about a
// failed write through the returned error but is never panicked.
func (kv *KV) Write(key string, v any) error {
	data, err := sonic.Marshal(v)
	if err != nil {
		kv.logger.Errorf("storage: encode %q: %v", key, err)
		return &WriteError{Key: key, Err: err}
	}
	if err := kv.store.Set(key, data); err != nil {
		kv.logger.Errorf("storage: write %q: %v", key, err)
		return &WriteError{Key: key, Err: err}
	}
	return nil
}

// Remove deletes the key. Removing an absent key is not an error.
func (kv *KV) Remove(key string) error {
	if err := kv.store.Delete(key); err != nil {
		kv.logger.Errorf("storage: delete %q: %v", key, err)
		return &WriteError{Key: key, Err: err}
	}
	return nil
}

// Has reports whether the key currently holds a value.
func (kv *KV) Has(key string) bool {
	_, ok, err := kv.store.Get(key)
	if err != nil {
		kv.logger.Warnf("storage: probe %q: %v", key, err)
		return false
	}
	return ok
}
