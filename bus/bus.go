// Package bus carries in-process key-change announcements between the views
// holding records on shared storage keys. It replaces the ad hoc custom DOM
// event of the original dashboard with a constructible object owned by the
// application root.
package bus

import "sync"

// Event announces that the value stored under Key changed.
type Event struct {
	Key string
}

type subscriber struct {
	id  uint64
	key string // empty matches every key
	fn  func(Event)
}

// Bus broadcasts key-change events to subscribers in registration order.
// Publish is synchronous: it returns only after every matching subscriber
// has run, so by the time a mutation returns, every bound view has already
// observed the new value.
type Bus struct {
	mu     sync.Mutex
	nextID uint64
	subs   []subscriber
}

// New creates an empty bus.
func New() *Bus {
	return &Bus{}
}

// Publish notifies all current subscribers for key. The subscriber list is
// snapshotted first: a subscriber added while the event is being delivered
// is not invoked for this publish.
func (b *Bus) Publish(key string) {
	b.mu.Lock()
	snapshot := make([]subscriber, len(b.subs))
	copy(snapshot, b.subs)
	b.mu.Unlock()

	for _, s := range snapshot {
		if s.key == "" || s.key == key {
			s.fn(Event{Key: key})
		}
	}
}

// Subscribe registers fn for every published key. The returned func removes
// the subscription; calling it more than once is safe.
func (b *Bus) Subscribe(fn func(Event)) (unsubscribe func()) {
	return b.add("", fn)
}

// SubscribeKey registers fn for publishes matching exactly key.
func (b *Bus) SubscribeKey(key string, fn func(Event)) (unsubscribe func()) {
	return b.add(key, fn)
}

func (b *Bus) add(key string, fn func(Event)) func() {
	b.mu.Lock()
	b.nextID++
	id := b.nextID
	b.subs = append(b.subs, subscriber{id: id, key: key, fn: fn})
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()
		for i, s := range b.subs {
			if s.id == id {
				b.subs = append(b.subs[:i], b.subs[i+1:]...)
				return
			}
		}
	}
}
