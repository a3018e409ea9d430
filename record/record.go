// Package record binds storage keys to typed values. A Record is the Go
// counterpart of the dashboard's per-key hook: it initializes from the
// store, writes through on update, and re-reads whenever the bus announces
// that another binding changed the same key.
package record

import (
	"sync"

	"github.com/ErickIraizos/v2trello/bus"
	"github.com/ErickIraizos/v2trello/storage"
)

// Record ties one storage key to a value of type T.
type Record[T any] struct {
	kv      *storage.KV
	bus     *bus.Bus
	initial T

	mu    sync.Mutex
	key   string
	value T
	stop  func()
}

// New reads the current value for key (falling back to initial) and
// subscribes to the bus so external writes to the key are picked up.
func New[T any](kv *storage.KV, b *bus.Bus, key string, initial T) *Record[T] {
	r := &Record[T]{kv: kv, bus: b, initial: initial, key: key}
	r.value = storage.Read(kv, key, initial)
	r.stop = b.SubscribeKey(key, func(bus.Event) { r.reload() })
	return r
}

// Get returns the record's current value. After any synchronous Publish for
// the key, the value already reflects the stored state.
func (r *Record[T]) Get() T {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.value
}

// Set writes v through the store, announces the change, then updates the
// local copy. The write completes before the publish fires so every other
// binding re-reading on notification observes v.
func (r *Record[T]) Set(v T) error {
	r.mu.Lock()
	key := r.key
	r.mu.Unlock()

	if err := r.kv.Write(key, v); err != nil {
		return err
	}
	r.bus.Publish(key)
	r.mu.Lock()
	if r.key == key {
		r.value = v
	}
	r.mu.Unlock()
	return nil
}

// Update applies fn to the stored value and writes the result. Reading the
// store first, rather than the local copy, keeps two bindings on one key
// from clobbering each other; prefer Update over Set for read-modify-write.
func (r *Record[T]) Update(fn func(T) T) error {
	r.mu.Lock()
	key := r.key
	r.mu.Unlock()

	next := fn(storage.Read(r.kv, key, r.initial))
	return r.Set(next)
}

// Rebind points the record at a different key, re-initializing the value
// from that key's stored state instead of carrying the old value over.
func (r *Record[T]) Rebind(key string) {
	r.mu.Lock()
	if r.key == key {
		r.mu.Unlock()
		return
	}
	old := r.stop
	r.key = key
	r.value = storage.Read(r.kv, key, r.initial)
	r.stop = r.bus.SubscribeKey(key, func(bus.Event) { r.reload() })
	r.mu.Unlock()
	if old != nil {
		old()
	}
}

// Close detaches the record from the bus. Closing twice is safe.
func (r *Record[T]) Close() {
	r.mu.Lock()
	stop := r.stop
	r.stop = nil
	r.mu.Unlock()
	if stop != nil {
		stop()
	}
}

func (r *Record[T]) reload() {
	r.mu.Lock()
	r.value = storage.Read(r.kv, r.key, r.initial)
	r.mu.Unlock()
}
