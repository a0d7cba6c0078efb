package commands

import (
	"context"
	"errors"
	"testing"

	"linkhoard/internal/application"
)

func TestAddLinkCommandValidate(t *testing.T) {
	store := newFakeStore()

	cmd := NewAddLinkCommand(store, "name", "", "")
	err := cmd.Validate()
	var verr *application.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Validate() = %v, want ValidationError", err)
	}
	if verr.Field != "path" {
		t.Errorf("field = %q, want %q", verr.Field, "path")
	}

	if _, err := cmd.Execute(context.Background()); !errors.As(err, &verr) {
		t.Errorf("Execute without path = %v, want ValidationError", err)
	}
	if store.addCalls != 0 {
		t.Errorf("store touched despite validation failure")
	}
}

func TestAddLinkCommandDefaultsName(t *testing.T) {
	store := newFakeStore()

	cmd := NewAddLinkCommand(store, "", "/home/user/report.pdf", "work")
	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if result.Link.Name != "report.pdf" {
		t.Errorf("name = %q, want %q", result.Link.Name, "report.pdf")
	}
	if result.Link.Tags != "work" {
		t.Errorf("tags = %q, want %q", result.Link.Tags, "work")
	}
	if result.Message == "" {
		t.Error("empty result message")
	}
}

func TestAddLinkCommandExplicitName(t *testing.T) {
	store := newFakeStore()

	cmd := NewAddLinkCommand(store, "My report", "/home/user/report.pdf", "")
	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if result.Link.Name != "My report" {
		t.Errorf("name = %q, want %q", result.Link.Name, "My report")
	}
}

func TestAddLinkCommandAutoTag(t *testing.T) {
	store := newFakeStore()

	dir := t.TempDir()
	cmd := NewAddLinkCommand(store, "", dir, "work")
	cmd.AutoTag = true
	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if result.Link.Tags != "work, folder" {
		t.Errorf("tags = %q, want %q", result.Link.Tags, "work, folder")
	}
}
