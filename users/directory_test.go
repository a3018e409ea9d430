package users

import (
	"testing"

	"github.com/ErickIraizos/v2trello/activity"
	"github.com/ErickIraizos/v2trello/bus"
	"github.com/ErickIraizos/v2trello/domain"
	"github.com/ErickIraizos/v2trello/storage"
)

func newDirectory(t *testing.T) (*Directory, *activity.Log) {
	t.Helper()
	kv := storage.NewKV(storage.NewMemory(), nil)
	b := bus.New()
	journal := activity.New(kv, b)
	return New(kv, b, journal), journal
}

func TestNewNilBusPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	New(storage.NewKV(storage.NewMemory(), nil), nil, nil)
}

func TestAddValidatesAndAssigns(t *testing.T) {
	d, journal := newDirectory(t)

	if _, err := d.Add(domain.User{Name: "  ", Email: "x@y.z"}); !domain.IsValidation(err) {
		t.Fatalf("empty name: %v", err)
	}
	if _, err := d.Add(domain.User{Name: "María García"}); !domain.IsValidation(err) {
		t.Fatalf("empty email: %v", err)
	}

	u, err := d.Add(domain.User{Name: "María García", Email: "maria@acme.test", Department: "Ventas"})
	if err != nil {
		t.Fatal(err)
	}
	if u.ID == "" || u.Avatar != "MG" {
		t.Fatalf("assigned fields: %#v", u)
	}
	entries := journal.Entries()
	if len(entries) != 1 || entries[0].Entity != domain.EntityUser {
		t.Fatalf("journal: %#v", entries)
	}
}

func TestEditUnknownUser(t *testing.T) {
	d, _ := newDirectory(t)
	err := d.Edit("user-missing", domain.User{Name: "X", Email: "x@y.z"})
	if !domain.IsNotFound(err) {
		t.Fatalf("got %v", err)
	}
}

func TestEditKeepsID(t *testing.T) {
	d, _ := newDirectory(t)
	u, err := d.Add(domain.User{Name: "Juan López", Email: "juan@acme.test"})
	if err != nil {
		t.Fatal(err)
	}
	if err := d.Edit(u.ID, domain.User{ID: "user-spoofed", Name: "Juan L.", Email: u.Email}); err != nil {
		t.Fatal(err)
	}
	list := d.List()
	if len(list) != 1 || list[0].ID != u.ID || list[0].Name != "Juan L." {
		t.Fatalf("after edit: %#v", list)
	}
}

func TestEditValidatesLikeAdd(t *testing.T) {
	d, _ := newDirectory(t)
	u, err := d.Add(domain.User{Name: "Ana Torres", Email: "ana@acme.test"})
	if err != nil {
		t.Fatal(err)
	}

	if err := d.Edit(u.ID, domain.User{Name: "Ana Torres"}); !domain.IsValidation(err) {
		t.Fatalf("blank email accepted: %v", err)
	}
	if err := d.Edit(u.ID, domain.User{Name: " ", Email: u.Email}); !domain.IsValidation(err) {
		t.Fatalf("blank name accepted: %v", err)
	}

	if err := d.Edit(u.ID, domain.User{Name: "Ana T. Rivas", Email: u.Email}); err != nil {
		t.Fatal(err)
	}
	list := d.List()
	if list[0].Avatar != "AT" {
		t.Fatalf("avatar not defaulted on edit: %q", list[0].Avatar)
	}
}

func TestDeleteIdempotent(t *testing.T) {
	d, _ := newDirectory(t)
	u, err := d.Add(domain.User{Name: "Ana", Email: "ana@acme.test"})
	if err != nil {
		t.Fatal(err)
	}
	if err := d.Delete(u.ID); err != nil {
		t.Fatal(err)
	}
	if err := d.Delete(u.ID); err != nil {
		t.Fatal(err)
	}
	if got := d.List(); len(got) != 0 {
		t.Fatalf("after delete: %#v", got)
	}
}

func TestFindByName(t *testing.T) {
	d, _ := newDirectory(t)
	if _, ok := d.FindByName("Nadie"); ok {
		t.Fatal("resolved missing name")
	}
	u, err := d.Add(domain.User{Name: "María García", Email: "maria@acme.test"})
	if err != nil {
		t.Fatal(err)
	}
	got, ok := d.FindByName("María García")
	if !ok || got.ID != u.ID {
		t.Fatalf("lookup: ok=%v %#v", ok, got)
	}
}
