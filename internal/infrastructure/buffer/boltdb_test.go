package buffer

import (
	"encoding/json"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "buffer.db"), "buffer")
	if err != nil {
		t.Fatalf("Open error: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestEnqueueAndDrainOrder(t *testing.T) {
	store := openTestStore(t)

	base := time.Now()
	for i, id := range []string{"first", "second", "third"} {
		item := Item{
			ID:        id,
			Operation: "create",
			Data:      json.RawMessage(`{}`),
			Timestamp: base.Add(time.Duration(i) * time.Millisecond),
		}
		if err := store.Enqueue(item); err != nil {
			t.Fatalf("Enqueue error: %v", err)
		}
	}

	size, err := store.Size()
	if err != nil {
		t.Fatalf("Size error: %v", err)
	}
	if size != 3 {
		t.Fatalf("Size = %d, want 3", size)
	}

	items, err := store.GetBatch(10)
	if err != nil {
		t.Fatalf("GetBatch error: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("GetBatch returned %d items, want 3", len(items))
	}
	for i, want := range []string{"first", "second", "third"} {
		if items[i].ID != want {
			t.Errorf("items[%d].ID = %q, want %q", i, items[i].ID, want)
		}
	}
}

func TestRemoveAndRequeue(t *testing.T) {
	store := openTestStore(t)

	if err := store.Enqueue(Item{ID: "a", Operation: "create", Data: json.RawMessage(`{}`)}); err != nil {
		t.Fatalf("Enqueue error: %v", err)
	}
	if err := store.Enqueue(Item{ID: "b", Operation: "delete", Data: json.RawMessage(`{}`)}); err != nil {
		t.Fatalf("Enqueue error: %v", err)
	}

	items, err := store.GetBatch(10)
	if err != nil {
		t.Fatalf("GetBatch error: %v", err)
	}
	if err := store.Remove(items[0]); err != nil {
		t.Fatalf("Remove error: %v", err)
	}

	size, _ := store.Size()
	if size != 1 {
		t.Fatalf("Size after Remove = %d, want 1", size)
	}

	// requeue moves the survivor to a fresh key without duplicating it
	if err := store.Remove(items[1]); err != nil {
		t.Fatalf("Remove error: %v", err)
	}
	items[1].Retries++
	if err := store.Requeue(items[1]); err != nil {
		t.Fatalf("Requeue error: %v", err)
	}

	items, err = store.GetBatch(10)
	if err != nil {
		t.Fatalf("GetBatch error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("GetBatch returned %d items, want 1", len(items))
	}
	if items[0].ID != "b" || items[0].Retries != 1 {
		t.Fatalf("unexpected requeued item: %+v", items[0])
	}
}

func TestCleanup(t *testing.T) {
	store := openTestStore(t)

	old := Item{ID: "old", Operation: "create", Data: json.RawMessage(`{}`), Timestamp: time.Now().Add(-48 * time.Hour)}
	fresh := Item{ID: "fresh", Operation: "create", Data: json.RawMessage(`{}`)}
	if err := store.Enqueue(old); err != nil {
		t.Fatalf("Enqueue error: %v", err)
	}
	if err := store.Enqueue(fresh); err != nil {
		t.Fatalf("Enqueue error: %v", err)
	}

	if err := store.Cleanup(time.Now().Add(-24 * time.Hour)); err != nil {
		t.Fatalf("Cleanup error: %v", err)
	}

	items, err := store.GetBatch(10)
	if err != nil {
		t.Fatalf("GetBatch error: %v", err)
	}
	if len(items) != 1 || items[0].ID != "fresh" {
		t.Fatalf("expected only the fresh item to survive, got %+v", items)
	}
}
