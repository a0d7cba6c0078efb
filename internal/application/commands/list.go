package commands

import (
	"context"

	"linkhoard/internal/domain"
	"linkhoard/internal/ports"
)

// ListLinksCommand returns links in position order, optionally filtered by
// a case-insensitive substring match over name, path and tags.
type ListLinksCommand struct {
	store  ports.LinkStore
	Filter string
}

// NewListLinksCommand creates a new ListLinksCommand
func NewListLinksCommand(store ports.LinkStore, filter string) *ListLinksCommand {
	return &ListLinksCommand{store: store, Filter: filter}
}

// Execute runs the list links command
func (c *ListLinksCommand) Execute(ctx context.Context) ([]domain.Link, error) {
	return c.store.List(c.Filter)
}
