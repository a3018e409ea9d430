package storage

import (
	"errors"
	"reflect"
	"testing"
)

type brokenStore struct {
	err error
}

func (b *brokenStore) Get(string) ([]byte, bool, error) { return nil, false, b.err }
func (b *brokenStore) Set(string, []byte) error         { return b.err }
func (b *brokenStore) Delete(string) error              { return b.err }

func TestKVRoundTrip(t *testing.T) {
	kv := NewKV(NewMemory(), nil)

	type payload struct {
		Foo  int               `json:"foo"`
		Tags []string          `json:"tags"`
		Meta map[string]string `json:"meta"`
	}
	in := payload{Foo: 1, Tags: []string{"a", "b"}, Meta: map[string]string{"k": "v"}}

	if err := kv.Write("key", in); err != nil {
		t.Fatalf("write: %v", err)
	}
	got := Read(kv, "key", payload{})
	if !reflect.DeepEqual(got, in) {
		t.Fatalf("round trip mismatch: %#v", got)
	}
}

func TestKVReadMissingKeyReturnsDefault(t *testing.T) {
	kv := NewKV(NewMemory(), nil)
	def := map[string]int{"foo": 1}
	got := Read(kv, "nonexistent_key", def)
	if !reflect.DeepEqual(got, def) {
		t.Fatalf("got %#v", got)
	}
}

func TestKVReadCorruptPayloadReturnsDefault(t *testing.T) {
	mem := NewMemory()
	if err := mem.Set("key", []byte("{not json")); err != nil {
		t.Fatal(err)
	}
	kv := NewKV(mem, nil)
	if got := Read(kv, "key", 42); got != 42 {
		t.Fatalf("got %d", got)
	}
}

func TestKVFailsSoftWhenBackendUnavailable(t *testing.T) {
	kv := NewKV(&brokenStore{err: errors.New("quota exceeded")}, nil)

	if got := Read(kv, "key", "fallback"); got != "fallback" {
		t.Fatalf("read: got %q", got)
	}

	err := kv.Write("key", "value")
	if err == nil {
		t.Fatal("write on broken backend must report failure")
	}
	var we *WriteError
	if !errors.As(err, &we) || we.Key != "key" {
		t.Fatalf("unexpected error: %v", err)
	}
	if kv.Has("key") {
		t.Fatal("broken backend probed as present")
	}
}

func TestKVRemove(t *testing.T) {
	kv := NewKV(NewMemory(), nil)
	if err := kv.Write("key", 1); err != nil {
		t.Fatal(err)
	}
	if err := kv.Remove("key"); err != nil {
		t.Fatal(err)
	}
	if kv.Has("key") {
		t.Fatal("key survived removal")
	}
	// Removing again is a no-op.
	if err := kv.Remove("key"); err != nil {
		t.Fatal(err)
	}
}
