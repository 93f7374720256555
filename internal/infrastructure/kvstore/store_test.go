package kvstore

import (
	"context"
	"path/filepath"
	"testing"

	"solar_quote/internal/usecase/interfaces"
)

func exerciseStore(t *testing.T, s interfaces.IKeyValueStore) {
	t.Helper()
	ctx := context.Background()

	if _, found, err := s.Get(ctx, "missing"); err != nil || found {
		t.Fatalf("expected missing key, got found=%v err=%v", found, err)
	}

	if err := s.Set(ctx, "k", []byte(`{"v":1}`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Set(ctx, "k", []byte(`{"v":2}`)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, found, err := s.Get(ctx, "k")
	if err != nil || !found || string(got) != `{"v":2}` {
		t.Fatalf("expected last write to win, got %q found=%v err=%v", got, found, err)
	}

	if err := s.Delete(ctx, "k"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, found, _ := s.Get(ctx, "k"); found {
		t.Fatalf("expected key to be deleted")
	}
	if err := s.Delete(ctx, "k"); err != nil {
		t.Fatalf("deleting a missing key must not fail: %v", err)
	}
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore())

	t.Run("values are copied", func(t *testing.T) {
		s := NewMemoryStore()
		v := []byte("abc")
		_ = s.Set(context.Background(), "k", v)
		v[0] = 'x'
		got, _, _ := s.Get(context.Background(), "k")
		if string(got) != "abc" {
			t.Fatalf("store shares caller memory: %q", got)
		}
	})
}

func TestSQLiteStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "snapshots.db")
	s, err := NewSQLiteStore(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	exerciseStore(t, s)

	t.Run("survives reopen", func(t *testing.T) {
		ctx := context.Background()
		if err := s.Set(ctx, "persisted", []byte("payload")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := s.Close(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		reopened, err := NewSQLiteStore(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer func() { _ = reopened.Close() }()
		got, found, err := reopened.Get(ctx, "persisted")
		if err != nil || !found || string(got) != "payload" {
			t.Fatalf("expected persisted value, got %q found=%v err=%v", got, found, err)
		}
		if reopened.Path() != path {
			t.Fatalf("unexpected path %s", reopened.Path())
		}
	})
}
