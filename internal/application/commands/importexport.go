package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"linkhoard/internal/application"
	"linkhoard/internal/domain"
	"linkhoard/internal/ports"
)

// ExportVersion is the envelope version written by export and accepted by
// import.
const ExportVersion = "1.0"

// ExportFile is the JSON envelope for link exchange. Ids and positions are
// deliberately omitted; import re-derives both.
type ExportFile struct {
	Version string       `json:"version"`
	Links   []ExportLink `json:"links"`
}

// ExportLink is one link record in the exchange format
type ExportLink struct {
	Name string `json:"name"`
	Path string `json:"path"`
	Tags string `json:"tags"`
}

// ExportLinksResult contains the result of an export
type ExportLinksResult struct {
	Count   int
	Message string
}

// ExportLinksCommand writes the current (optionally filtered) list as JSON
type ExportLinksCommand struct {
	store  ports.LinkStore
	Out    io.Writer
	Filter string
}

// NewExportLinksCommand creates a new ExportLinksCommand
func NewExportLinksCommand(store ports.LinkStore, out io.Writer) *ExportLinksCommand {
	return &ExportLinksCommand{store: store, Out: out}
}

// Execute runs the export links command
func (c *ExportLinksCommand) Execute(ctx context.Context) (*ExportLinksResult, error) {
	links, err := c.store.List(c.Filter)
	if err != nil {
		return nil, err
	}

	file := ExportFile{Version: ExportVersion, Links: make([]ExportLink, 0, len(links))}
	for _, l := range links {
		file.Links = append(file.Links, ExportLink{Name: l.Name, Path: l.Path, Tags: l.Tags})
	}

	enc := json.NewEncoder(c.Out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(file); err != nil {
		return nil, fmt.Errorf("failed to write export: %w", err)
	}

	return &ExportLinksResult{
		Count:   len(file.Links),
		Message: fmt.Sprintf("Exported %d link(s)", len(file.Links)),
	}, nil
}

// ImportLinksResult contains the result of an import
type ImportLinksResult struct {
	Count   int
	Message string
}

// ImportLinksCommand reads an export envelope and stores its links.
// Records without a path are skipped. Append mode adds behind the existing
// rows; Replace swaps the whole table in one transaction.
type ImportLinksCommand struct {
	store   ports.LinkStore
	In      io.Reader
	Replace bool
}

// NewImportLinksCommand creates a new ImportLinksCommand
func NewImportLinksCommand(store ports.LinkStore, in io.Reader) *ImportLinksCommand {
	return &ImportLinksCommand{store: store, In: in}
}

// Execute runs the import links command
func (c *ImportLinksCommand) Execute(ctx context.Context) (*ImportLinksResult, error) {
	var file ExportFile
	if err := json.NewDecoder(c.In).Decode(&file); err != nil {
		return nil, &application.ValidationError{
			Field:   "file",
			Message: fmt.Sprintf("not a valid export file: %v", err),
		}
	}
	if file.Version == "" {
		return nil, &application.ValidationError{
			Field:   "file",
			Message: "missing version field",
		}
	}

	var imported []domain.Link
	for _, rec := range file.Links {
		if rec.Path == "" {
			continue
		}
		name := rec.Name
		if name == "" {
			name = domain.BaseName(rec.Path)
		}
		imported = append(imported, domain.Link{Name: name, Path: rec.Path, Tags: rec.Tags})
	}

	if c.Replace {
		if err := c.store.ReplaceAll(imported); err != nil {
			return nil, err
		}
	} else {
		for _, l := range imported {
			if _, err := c.store.Add(l.Name, l.Path, l.Tags); err != nil {
				return nil, err
			}
		}
	}

	return &ImportLinksResult{
		Count:   len(imported),
		Message: fmt.Sprintf("Imported %d link(s)", len(imported)),
	}, nil
}
