// Package activity keeps the append-only journal of domain mutations.
package activity

import (
	"time"

	"github.com/ErickIraizos/v2trello/bus"
	"github.com/ErickIraizos/v2trello/domain"
	"github.com/ErickIraizos/v2trello/storage"
)

// Key is the storage key holding the journal, newest entry first.
const Key = "activity_logs"

// Log appends immutable activity entries to storage and announces each
// write. There is no retention cap; the only supported removal is Clear.
type Log struct {
	kv  *storage.KV
	bus *bus.Bus
	now func() time.Time
}

// New creates a journal writing through kv and announcing on b. Entries are
// stamped with a strictly increasing clock so two appends within one clock
// tick still order deterministically in the newest-first list.
func New(kv *storage.KV, b *bus.Bus) *Log {
	if b == nil {
		panic("activity.New: bus is nil")
	}
	return &Log{kv: kv, bus: b, now: func() time.Time {
		return time.Unix(0, domain.NextTimestamp())
	}}
}

// Append prepends a new entry and persists the journal. The created entry is
// returned even when persisting fails so callers can still display it.
func (l *Log) Append(action domain.Action, entity domain.Entity, entityName, entityID string, details map[string]any) (domain.ActivityEntry, error) {
	entry := domain.ActivityEntry{
		ID:         domain.NewID("log"),
		Timestamp:  l.now(),
		Action:     action,
		Entity:     entity,
		EntityID:   entityID,
		EntityName: entityName,
		Details:    details,
	}
	entries := storage.Read(l.kv, Key, []domain.ActivityEntry{})
	entries = append([]domain.ActivityEntry{entry}, entries...)
	if err := l.kv.Write(Key, entries); err != nil {
		return entry, err
	}
	l.bus.Publish(Key)
	return entry, nil
}

// Entries returns the journal, newest first.
func (l *Log) Entries() []domain.ActivityEntry {
	return storage.Read(l.kv, Key, []domain.ActivityEntry{})
}

// Clear replaces the journal with an empty list.
func (l *Log) Clear() error {
	if err := l.kv.Write(Key, []domain.ActivityEntry{}); err != nil {
		return err
	}
	l.bus.Publish(Key)
	return nil
}
