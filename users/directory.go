// Package users manages the user directory backing attribution and avatars.
package users

import (
	"strings"

	"github.com/ErickIraizos/v2trello/activity"
	"github.com/ErickIraizos/v2trello/bus"
	"github.com/ErickIraizos/v2trello/domain"
	"github.com/ErickIraizos/v2trello/storage"
)

// Key is the storage key holding the user list.
const Key = "crm_users"

// Directory is the CRUD surface over the stored user list. Cards reference
// users by name; FindByName is that weak lookup.
type Directory struct {
	kv      *storage.KV
	bus     *bus.Bus
	journal *activity.Log
}

// New creates a directory. journal may be nil when mutations should not be
// recorded.
func New(kv *storage.KV, b *bus.Bus, journal *activity.Log) *Directory {
	if b == nil {
		panic("users.New: bus is nil")
	}
	return &Directory{kv: kv, bus: b, journal: journal}
}

// List returns all users in stored order.
func (d *Directory) List() []domain.User {
	return storage.Read(d.kv, Key, []domain.User{})
}

// Add validates and appends a new user with a fresh id.
func (d *Directory) Add(u domain.User) (domain.User, error) {
	u.Name = strings.TrimSpace(u.Name)
	if u.Name == "" {
		return domain.User{}, &domain.ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if strings.TrimSpace(u.Email) == "" {
		return domain.User{}, &domain.ValidationError{Field: "email", Reason: "must not be empty"}
	}
	if u.Avatar == "" {
		u.Avatar = initials(u.Name)
	}
	u.ID = domain.NewID("user")
	list := append(d.List(), u)
	if err := d.kv.Write(Key, list); err != nil {
		return domain.User{}, err
	}
	d.bus.Publish(Key)
	d.record(domain.ActionCreate, u)
	return u, nil
}

// Edit replaces the stored fields of an existing user. The same rules as
// Add apply: an edit cannot blank the name or email.
func (d *Directory) Edit(id string, u domain.User) error {
	u.Name = strings.TrimSpace(u.Name)
	if u.Name == "" {
		return &domain.ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if strings.TrimSpace(u.Email) == "" {
		return &domain.ValidationError{Field: "email", Reason: "must not be empty"}
	}
	if u.Avatar == "" {
		u.Avatar = initials(u.Name)
	}
	list := d.List()
	for i := range list {
		if list[i].ID == id {
			u.ID = id
			list[i] = u
			if err := d.kv.Write(Key, list); err != nil {
				return err
			}
			d.bus.Publish(Key)
			d.record(domain.ActionEdit, u)
			return nil
		}
	}
	return &domain.NotFoundError{Entity: domain.EntityUser, ID: id}
}

// Delete removes a user. Deleting an unknown id is a no-op.
func (d *Directory) Delete(id string) error {
	list := d.List()
	kept := make([]domain.User, 0, len(list))
	var removed *domain.User
	for _, u := range list {
		if u.ID == id {
			removed = &u
			continue
		}
		kept = append(kept, u)
	}
	if removed == nil {
		return nil
	}
	if err := d.kv.Write(Key, kept); err != nil {
		return err
	}
	d.bus.Publish(Key)
	d.record(domain.ActionDelete, *removed)
	return nil
}

// FindByName resolves a user by exact name. The reference is weak: renamed
// or colliding names simply fail to resolve, ok=false.
func (d *Directory) FindByName(name string) (domain.User, bool) {
	for _, u := range d.List() {
		if u.Name == name {
			return u, true
		}
	}
	return domain.User{}, false
}

func (d *Directory) record(action domain.Action, u domain.User) {
	if d.journal == nil {
		return
	}
	// Journal failures never fail the directory operation itself.
	_, _ = d.journal.Append(action, domain.EntityUser, u.Name, u.ID, nil)
}

func initials(name string) string {
	var out []rune
	for _, part := range strings.Fields(name) {
		out = append(out, []rune(part)[0])
		if len(out) == 2 {
			break
		}
	}
	return strings.ToUpper(string(out))
}
