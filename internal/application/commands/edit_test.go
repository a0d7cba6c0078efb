package commands

import (
	"context"
	"errors"
	"testing"

	"linkhoard/internal/application"
	"linkhoard/internal/ports"
)

func TestEditLinkCommand(t *testing.T) {
	store := newFakeStore()
	link := mustStoreAdd(t, store, "old", "/tmp/a")

	name := "renamed"
	cmd := NewEditLinkCommand(store, link.ID, ports.UpdateFields{Name: &name})
	if _, err := cmd.Execute(context.Background()); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	got, _ := store.Get(link.ID)
	if got.Name != "renamed" {
		t.Errorf("name = %q, want %q", got.Name, "renamed")
	}
	if got.Path != "/tmp/a" {
		t.Errorf("path changed: %q", got.Path)
	}
}

func TestEditLinkCommandValidation(t *testing.T) {
	store := newFakeStore()
	link := mustStoreAdd(t, store, "a", "/tmp/a")

	var verr *application.ValidationError

	empty := ""
	cmd := NewEditLinkCommand(store, link.ID, ports.UpdateFields{Path: &empty})
	if _, err := cmd.Execute(context.Background()); !errors.As(err, &verr) {
		t.Errorf("blank path error = %v, want ValidationError", err)
	}

	name := "x"
	cmd = NewEditLinkCommand(store, 0, ports.UpdateFields{Name: &name})
	if _, err := cmd.Execute(context.Background()); !errors.As(err, &verr) {
		t.Errorf("zero id error = %v, want ValidationError", err)
	}

	cmd = NewEditLinkCommand(store, 9999, ports.UpdateFields{Name: &name})
	if _, err := cmd.Execute(context.Background()); !errors.Is(err, application.ErrNotFound) {
		t.Errorf("absent id error = %v, want ErrNotFound", err)
	}
}

func TestRemoveLinkCommand(t *testing.T) {
	store := newFakeStore()
	a := mustStoreAdd(t, store, "a", "/tmp/a")
	b := mustStoreAdd(t, store, "b", "/tmp/b")

	cmd := NewRemoveLinkCommand(store, a.ID)
	if _, err := cmd.Execute(context.Background()); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	links, _ := store.List("")
	if len(links) != 1 || links[0].ID != b.ID || links[0].Position != 0 {
		t.Errorf("links after remove = %+v", links)
	}

	if _, err := cmd.Execute(context.Background()); !errors.Is(err, application.ErrNotFound) {
		t.Errorf("second remove error = %v, want ErrNotFound", err)
	}
}

func TestMoveLinkCommandValidation(t *testing.T) {
	store := newFakeStore()

	var verr *application.ValidationError
	if _, err := NewMoveLinkCommand(store, 0, 0).Execute(context.Background()); !errors.As(err, &verr) {
		t.Errorf("zero id error = %v, want ValidationError", err)
	}
	if _, err := NewMoveLinkCommand(store, 1, -1).Execute(context.Background()); !errors.As(err, &verr) {
		t.Errorf("negative position error = %v, want ValidationError", err)
	}
	if store.reorderCalls != 0 {
		t.Errorf("store touched despite validation failure")
	}
}

func TestListLinksCommand(t *testing.T) {
	store := newFakeStore()
	mustStoreAdd(t, store, "work notes", "/tmp/a")
	mustStoreAdd(t, store, "other", "/tmp/b")

	links, err := NewListLinksCommand(store, "WORK").Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if len(links) != 1 || links[0].Name != "work notes" {
		t.Errorf("filtered links = %+v", links)
	}
}
