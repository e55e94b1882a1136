package storage

import (
	"context"
	"testing"
)

func TestFileAdapterRoundTrip(t *testing.T) {
	adapter, err := NewFileAdapter(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileAdapter: %v", err)
	}
	ctx := context.Background()

	if _, ok, err := adapter.Get(ctx, KeyMatches); err != nil || ok {
		t.Fatalf("Get on empty dir = (ok=%v, err=%v), want absent", ok, err)
	}

	if err := adapter.Set(ctx, KeyMatches, `{"version":1,"data":[]}`); err != nil {
		t.Fatalf("Set: %v", err)
	}
	v, ok, err := adapter.Get(ctx, KeyMatches)
	if err != nil || !ok {
		t.Fatalf("Get after Set = (ok=%v, err=%v)", ok, err)
	}
	if v != `{"version":1,"data":[]}` {
		t.Errorf("Get = %q", v)
	}

	if err := adapter.Delete(ctx, KeyMatches); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := adapter.Get(ctx, KeyMatches); ok {
		t.Error("key survives Delete")
	}
	// Deleting a missing key is not an error.
	if err := adapter.Delete(ctx, KeyMatches); err != nil {
		t.Errorf("Delete on missing key: %v", err)
	}
}

func TestFileAdapterClear(t *testing.T) {
	adapter, err := NewFileAdapter(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileAdapter: %v", err)
	}
	ctx := context.Background()

	for _, key := range []string{KeyMatches, KeyChats, KeySession} {
		if err := adapter.Set(ctx, key, "{}"); err != nil {
			t.Fatalf("Set(%s): %v", key, err)
		}
	}
	if err := adapter.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	for _, key := range []string{KeyMatches, KeyChats, KeySession} {
		if _, ok, _ := adapter.Get(ctx, key); ok {
			t.Errorf("key %s survives Clear", key)
		}
	}
}

func TestFileAdapterRejectsPathKeys(t *testing.T) {
	adapter, err := NewFileAdapter(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileAdapter: %v", err)
	}
	ctx := context.Background()

	for _, key := range []string{"", "../escape", "a/b", `a\b`, "dotted.key"} {
		if err := adapter.Set(ctx, key, "x"); err == nil {
			t.Errorf("Set(%q) accepted an invalid key", key)
		}
	}
}

func TestMemoryAdapter(t *testing.T) {
	adapter := NewMemoryAdapter()
	ctx := context.Background()

	if _, ok, _ := adapter.Get(ctx, "missing"); ok {
		t.Error("missing key reported present")
	}
	if err := adapter.Set(ctx, "k", "v"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if v, ok, _ := adapter.Get(ctx, "k"); !ok || v != "v" {
		t.Errorf("Get = (%q, %v)", v, ok)
	}
	if err := adapter.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, ok, _ := adapter.Get(ctx, "k"); ok {
		t.Error("key survives Clear")
	}
}
