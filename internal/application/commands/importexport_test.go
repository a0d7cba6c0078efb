package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"linkhoard/internal/application"
)

func TestExportImportRoundTrip(t *testing.T) {
	src := newFakeStore()
	mustStoreAdd(t, src, "My report", `X:\docs\report.pdf`)
	if _, err := src.Add("", "/tmp/b", "work, urgent"); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	exported, err := NewExportLinksCommand(src, &buf).Execute(context.Background())
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if exported.Count != 2 {
		t.Fatalf("exported %d, want 2", exported.Count)
	}

	var file ExportFile
	if err := json.Unmarshal(buf.Bytes(), &file); err != nil {
		t.Fatalf("export is not valid JSON: %v", err)
	}
	if file.Version != ExportVersion {
		t.Errorf("version = %q, want %q", file.Version, ExportVersion)
	}

	dst := newFakeStore()
	imported, err := NewImportLinksCommand(dst, &buf).Execute(context.Background())
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}
	if imported.Count != 2 {
		t.Fatalf("imported %d, want 2", imported.Count)
	}

	links, _ := dst.List("")
	if links[0].Name != "My report" || links[0].Path != `X:\docs\report.pdf` {
		t.Errorf("first link = %+v", links[0])
	}
	if links[1].Path != "/tmp/b" || links[1].Tags != "work, urgent" {
		t.Errorf("second link = %+v", links[1])
	}
	if links[0].Position != 0 || links[1].Position != 1 {
		t.Errorf("positions = %d, %d", links[0].Position, links[1].Position)
	}
}

func TestImportAppendsByDefault(t *testing.T) {
	store := newFakeStore()
	mustStoreAdd(t, store, "existing", "/tmp/existing")

	in := strings.NewReader(`{"version":"1.0","links":[{"name":"n","path":"/tmp/new","tags":""}]}`)
	if _, err := NewImportLinksCommand(store, in).Execute(context.Background()); err != nil {
		t.Fatalf("import failed: %v", err)
	}

	links, _ := store.List("")
	if len(links) != 2 {
		t.Fatalf("len = %d, want 2", len(links))
	}
	if links[0].Path != "/tmp/existing" || links[1].Path != "/tmp/new" {
		t.Errorf("order: %s, %s", links[0].Path, links[1].Path)
	}
	if store.replaceCalls != 0 {
		t.Errorf("append mode called ReplaceAll")
	}
}

func TestImportReplace(t *testing.T) {
	store := newFakeStore()
	mustStoreAdd(t, store, "existing", "/tmp/existing")

	in := strings.NewReader(`{"version":"1.0","links":[{"name":"n","path":"/tmp/new","tags":""}]}`)
	cmd := NewImportLinksCommand(store, in)
	cmd.Replace = true
	if _, err := cmd.Execute(context.Background()); err != nil {
		t.Fatalf("import failed: %v", err)
	}

	links, _ := store.List("")
	if len(links) != 1 || links[0].Path != "/tmp/new" {
		t.Errorf("replace left %+v", links)
	}
	if store.replaceCalls != 1 {
		t.Errorf("ReplaceAll calls = %d, want 1", store.replaceCalls)
	}
}

func TestImportSkipsPathlessAndDerivesNames(t *testing.T) {
	store := newFakeStore()

	in := strings.NewReader(`{"version":"1.0","links":[
		{"name":"no path","path":"","tags":""},
		{"name":"","path":"/tmp/report.pdf","tags":""}
	]}`)
	result, err := NewImportLinksCommand(store, in).Execute(context.Background())
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}
	if result.Count != 1 {
		t.Errorf("count = %d, want 1", result.Count)
	}

	links, _ := store.List("")
	if len(links) != 1 || links[0].Name != "report.pdf" {
		t.Errorf("imported links = %+v", links)
	}
}

func TestImportRejectsBadInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not json", "not json at all"},
		{"missing version", `{"links":[]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeStore()
			_, err := NewImportLinksCommand(store, strings.NewReader(tt.input)).Execute(context.Background())
			var verr *application.ValidationError
			if !errors.As(err, &verr) {
				t.Errorf("error = %v, want ValidationError", err)
			}
			if store.addCalls != 0 || store.replaceCalls != 0 {
				t.Errorf("store touched on rejected input")
			}
		})
	}
}

func TestExportFilter(t *testing.T) {
	store := newFakeStore()
	mustStoreAdd(t, store, "work notes", "/tmp/a")
	mustStoreAdd(t, store, "other", "/tmp/b")

	var buf bytes.Buffer
	cmd := NewExportLinksCommand(store, &buf)
	cmd.Filter = "work"
	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if result.Count != 1 {
		t.Errorf("count = %d, want 1", result.Count)
	}

	var file ExportFile
	if err := json.Unmarshal(buf.Bytes(), &file); err != nil {
		t.Fatal(err)
	}
	if len(file.Links) != 1 || file.Links[0].Name != "work notes" {
		t.Errorf("filtered export = %+v", file.Links)
	}
}
