package store

import (
	"context"
	"errors"
	"testing"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	if _, err := st.Get(ctx, "p1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get on empty store err = %v, want ErrNotFound", err)
	}

	blob := []byte(`{"pairCount":3}`)
	if err := st.Save(ctx, "p1", blob); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := st.Get(ctx, "p1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if string(got) != string(blob) {
		t.Errorf("Get = %q, want %q", got, blob)
	}

	// Other players see nothing.
	if _, err := st.Get(ctx, "p2"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get for other player err = %v, want ErrNotFound", err)
	}
}

func TestMemoryStoreSaveReplaces(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	_ = st.Save(ctx, "p1", []byte("first"))
	_ = st.Save(ctx, "p1", []byte("second"))

	got, err := st.Get(ctx, "p1")
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "second" {
		t.Errorf("Get = %q, want %q", got, "second")
	}
}

func TestMemoryStoreDelete(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()
	_ = st.Save(ctx, "p1", []byte("blob"))

	if err := st.Delete(ctx, "p1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := st.Get(ctx, "p1"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get after delete err = %v, want ErrNotFound", err)
	}

	// Deleting again is a no-op.
	if err := st.Delete(ctx, "p1"); err != nil {
		t.Errorf("second Delete: %v", err)
	}
}

func TestMemoryStoreCopiesBlobs(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	in := []byte("original")
	_ = st.Save(ctx, "p1", in)
	in[0] = 'X'

	got, _ := st.Get(ctx, "p1")
	if string(got) != "original" {
		t.Error("Save aliased the caller's slice")
	}

	got[0] = 'Y'
	again, _ := st.Get(ctx, "p1")
	if string(again) != "original" {
		t.Error("Get exposed the stored slice")
	}
}
