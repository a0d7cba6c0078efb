package commands

import (
	"context"
	"testing"

	"linkhoard/internal/domain"
)

func TestIngestDropExternalPaths(t *testing.T) {
	store := newFakeStore()
	mustStoreAdd(t, store, "existing", "/tmp/existing")

	cmd := NewIngestDropCommand(store, domain.DropPayload{
		Text: "\"X:\\a.txt\"\n\"X:\\b\"",
	})
	cmd.DefaultTags = "dropped"
	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if result.Gesture.Kind != domain.GestureAddPaths {
		t.Fatalf("gesture = %v, want GestureAddPaths", result.Gesture.Kind)
	}
	if len(result.Added) != 2 {
		t.Fatalf("added %d links, want 2", len(result.Added))
	}
	// Appended behind the existing row, in payload order
	if result.Added[0].Path != `X:\a.txt` || result.Added[0].Position != 1 {
		t.Errorf("first added = %q at %d", result.Added[0].Path, result.Added[0].Position)
	}
	if result.Added[1].Path != `X:\b` || result.Added[1].Position != 2 {
		t.Errorf("second added = %q at %d", result.Added[1].Path, result.Added[1].Position)
	}
	if result.Added[0].Name != "a.txt" || result.Added[1].Name != "b" {
		t.Errorf("names = %q, %q", result.Added[0].Name, result.Added[1].Name)
	}
	if result.Added[0].Tags != "dropped" {
		t.Errorf("tags = %q, want %q", result.Added[0].Tags, "dropped")
	}
	if store.reorderCalls != 0 {
		t.Errorf("external drop issued %d reorders", store.reorderCalls)
	}
}

func TestIngestDropInternalBeatsExternal(t *testing.T) {
	store := newFakeStore()
	a := mustStoreAdd(t, store, "a", "/tmp/a")
	mustStoreAdd(t, store, "b", "/tmp/b")

	cmd := NewIngestDropCommand(store, domain.DropPayload{
		HasInternal: true,
		InternalID:  a.ID,
		TargetIndex: 1,
		Text:        "/tmp/stray",
	})
	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if result.Gesture.Kind != domain.GestureReorder {
		t.Fatalf("gesture = %v, want GestureReorder", result.Gesture.Kind)
	}
	if store.reorderCalls != 1 {
		t.Errorf("reorder calls = %d, want 1", store.reorderCalls)
	}
	if store.addCalls != 2 {
		t.Errorf("add calls = %d, stray text must not be ingested", store.addCalls)
	}

	links, _ := store.List("")
	if links[0].Path != "/tmp/b" || links[1].Path != "/tmp/a" {
		t.Errorf("order after reorder: %s, %s", links[0].Path, links[1].Path)
	}
}

func TestIngestDropCancelled(t *testing.T) {
	store := newFakeStore()
	mustStoreAdd(t, store, "a", "/tmp/a")

	cmd := NewIngestDropCommand(store, domain.DropPayload{
		Cancelled:   true,
		HasInternal: true,
		InternalID:  1,
	})
	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if result.Gesture.Kind != domain.GestureCancel {
		t.Errorf("gesture = %v, want GestureCancel", result.Gesture.Kind)
	}
	if store.reorderCalls != 0 || store.addCalls != 1 {
		t.Errorf("cancelled drop touched the store: %d reorders, %d adds", store.reorderCalls, store.addCalls)
	}
}

func TestIngestDropEmptyPayload(t *testing.T) {
	store := newFakeStore()

	result, err := NewIngestDropCommand(store, domain.DropPayload{}).Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if result.Gesture.Kind != domain.GestureCancel {
		t.Errorf("gesture = %v, want GestureCancel", result.Gesture.Kind)
	}
}

func mustStoreAdd(t *testing.T, store *fakeStore, name, path string) *domain.Link {
	t.Helper()
	link, err := store.Add(name, path, "")
	if err != nil {
		t.Fatalf("Add(%q) failed: %v", path, err)
	}
	return link
}
