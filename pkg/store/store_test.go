package store

import (
	"context"
	"errors"
	"slices"
	"testing"
)

func TestNullStore(t *testing.T) {
	ctx := context.Background()
	s := NewNullStore()
	defer s.Close()

	// Get always returns miss
	data, hit, err := s.Get(ctx, "default")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("NullStore.Get should always return miss")
	}
	if data != nil {
		t.Error("NullStore.Get should return nil data")
	}

	// Set does nothing (no error)
	if err := s.Set(ctx, "default", []byte("layout")); err != nil {
		t.Errorf("Set error: %v", err)
	}

	// Still a miss after Set
	_, hit, _ = s.Get(ctx, "default")
	if hit {
		t.Error("NullStore should not store data")
	}

	// Delete does nothing (no error)
	if err := s.Delete(ctx, "default"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	defer s.Close()

	payload := []byte(`{"version":1}`)
	if err := s.Set(ctx, "workspace", payload); err != nil {
		t.Fatalf("Set: %v", err)
	}

	data, hit, err := s.Get(ctx, "workspace")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !hit {
		t.Fatal("Get should hit after Set")
	}
	if string(data) != string(payload) {
		t.Errorf("Get = %s, want %s", data, payload)
	}

	// Overwrite replaces
	if err := s.Set(ctx, "workspace", []byte("v2")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	data, _, _ = s.Get(ctx, "workspace")
	if string(data) != "v2" {
		t.Errorf("Get after overwrite = %s, want v2", data)
	}
}

func TestFileStoreMissAndDelete(t *testing.T) {
	ctx := context.Background()
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	if _, hit, err := s.Get(ctx, "absent"); err != nil || hit {
		t.Errorf("Get(absent) = hit %v, err %v; want miss", hit, err)
	}

	// Deleting a missing name is not an error
	if err := s.Delete(ctx, "absent"); err != nil {
		t.Errorf("Delete(absent) = %v", err)
	}

	if err := s.Set(ctx, "gone", []byte("x")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := s.Delete(ctx, "gone"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, hit, _ := s.Get(ctx, "gone"); hit {
		t.Error("Get should miss after Delete")
	}
}

func TestFileStoreList(t *testing.T) {
	ctx := context.Background()
	s, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	for _, name := range []string{"coding", "debugging", "review"} {
		if err := s.Set(ctx, name, []byte(name)); err != nil {
			t.Fatalf("Set(%q): %v", name, err)
		}
	}

	names, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	slices.Sort(names)
	want := []string{"coding", "debugging", "review"}
	if !slices.Equal(names, want) {
		t.Errorf("List = %v, want %v", names, want)
	}
}

func TestScopedStoreIsolation(t *testing.T) {
	ctx := context.Background()
	backend, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	alice := NewScopedStore(backend, "user:alice:")
	bob := NewScopedStore(backend, "user:bob:")

	if err := alice.Set(ctx, "default", []byte("alice-layout")); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := bob.Set(ctx, "default", []byte("bob-layout")); err != nil {
		t.Fatalf("Set: %v", err)
	}

	data, hit, err := alice.Get(ctx, "default")
	if err != nil || !hit {
		t.Fatalf("Get = hit %v, err %v", hit, err)
	}
	if string(data) != "alice-layout" {
		t.Errorf("alice sees %s", data)
	}

	names, err := alice.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if !slices.Equal(names, []string{"default"}) {
		t.Errorf("alice List = %v, want [default]", names)
	}
}

func TestHash(t *testing.T) {
	// Test determinism
	h1 := Hash([]byte("hello"))
	h2 := Hash([]byte("hello"))
	if h1 != h2 {
		t.Error("Hash should be deterministic")
	}

	// Test different inputs produce different hashes
	h3 := Hash([]byte("world"))
	if h1 == h3 {
		t.Error("Different inputs should produce different hashes")
	}

	// Test hash length (SHA-256 produces 64 hex chars)
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestRetryableError(t *testing.T) {
	// Retryable(nil) returns nil
	if Retryable(nil) != nil {
		t.Error("Retryable(nil) should return nil")
	}

	base := errors.New("connection reset")
	wrapped := Retryable(base)
	if !IsRetryable(wrapped) {
		t.Error("wrapped error should be retryable")
	}
	if !errors.Is(wrapped, base) {
		t.Error("wrapped error should unwrap to base")
	}
	if IsRetryable(base) {
		t.Error("bare error should not be retryable")
	}
}

func TestRetryWithBackoffStopsOnPermanentError(t *testing.T) {
	ctx := context.Background()
	calls := 0
	err := RetryWithBackoff(ctx, func() error {
		calls++
		return errors.New("permanent")
	})
	if err == nil {
		t.Fatal("expected error")
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1 for non-retryable error", calls)
	}
}
