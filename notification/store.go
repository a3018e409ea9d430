// Package notification manages the user-facing notification list.
package notification

import (
	"time"

	"github.com/ErickIraizos/v2trello/bus"
	"github.com/ErickIraizos/v2trello/domain"
	"github.com/ErickIraizos/v2trello/storage"
)

// Key is the storage key holding the notification list, newest first.
const Key = "crm_notifications"

// Store persists notifications and keeps the unread count honest by always
// recomputing it from the stored list instead of caching a counter.
type Store struct {
	kv  *storage.KV
	bus *bus.Bus
	now func() time.Time
}

// New creates a notification store writing through kv.
func New(kv *storage.KV, b *bus.Bus) *Store {
	if b == nil {
		panic("notification.New: bus is nil")
	}
	return &Store{kv: kv, bus: b, now: time.Now}
}

// Add assigns id, creation time and read=false, then prepends n to the list.
// An empty Type defaults to info.
func (s *Store) Add(n domain.Notification) (domain.Notification, error) {
	n.ID = domain.NewID("notif")
	n.CreatedAt = s.now()
	n.Read = false
	if n.Type == "" {
		n.Type = domain.NotificationInfo
	}
	list := append([]domain.Notification{n}, s.List()...)
	if err := s.kv.Write(Key, list); err != nil {
		return domain.Notification{}, err
	}
	s.bus.Publish(Key)
	return n, nil
}

// List returns all notifications, newest first.
func (s *Store) List() []domain.Notification {
	return storage.Read(s.kv, Key, []domain.Notification{})
}

// UnreadCount counts entries with read=false, recomputed on every call.
func (s *Store) UnreadCount() int {
	var count int
	for _, n := range s.List() {
		if !n.Read {
			count++
		}
	}
	return count
}

// MarkRead flips one notification to read. Unknown ids are a no-op; read
// never reverts to unread.
func (s *Store) MarkRead(id string) error {
	list := s.List()
	changed := false
	for i := range list {
		if list[i].ID == id && !list[i].Read {
			list[i].Read = true
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return s.write(list)
}

// MarkAllRead flips every notification to read.
func (s *Store) MarkAllRead() error {
	list := s.List()
	for i := range list {
		list[i].Read = true
	}
	return s.write(list)
}

// Remove deletes one notification. Unknown ids are a no-op.
func (s *Store) Remove(id string) error {
	list := s.List()
	kept := list[:0]
	for _, n := range list {
		if n.ID != id {
			kept = append(kept, n)
		}
	}
	if len(kept) == len(list) {
		return nil
	}
	return s.write(kept)
}

// ClearAll empties the list.
func (s *Store) ClearAll() error {
	return s.write([]domain.Notification{})
}

func (s *Store) write(list []domain.Notification) error {
	if err := s.kv.Write(Key, list); err != nil {
		return err
	}
	s.bus.Publish(Key)
	return nil
}
