package commands

import (
	"context"
	"fmt"

	"linkhoard/internal/application"
	"linkhoard/internal/domain"
	"linkhoard/internal/ports"
)

// AddLinkResult contains the result of adding a link
type AddLinkResult struct {
	Link    *domain.Link
	Message string
}

// AddLinkCommand appends a new link at the end of the ordering
type AddLinkCommand struct {
	store ports.LinkStore
	Name  string
	Path  string
	Tags  string

	// AutoTag merges tags derived from the target (folder, extension)
	// into Tags before storing.
	AutoTag bool
}

// NewAddLinkCommand creates a new AddLinkCommand
func NewAddLinkCommand(store ports.LinkStore, name, path, tags string) *AddLinkCommand {
	return &AddLinkCommand{
		store: store,
		Name:  name,
		Path:  path,
		Tags:  tags,
	}
}

// Validate checks if the add operation is valid
func (c *AddLinkCommand) Validate() error {
	return application.ValidateRequired("path", c.Path)
}

// Execute runs the add link command
func (c *AddLinkCommand) Execute(ctx context.Context) (*AddLinkResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	name := c.Name
	if name == "" {
		name = domain.BaseName(c.Path)
	}
	tags := c.Tags
	if c.AutoTag {
		tags = domain.MergeTags(tags, domain.AutoTags(c.Path))
	}

	link, err := c.store.Add(name, c.Path, tags)
	if err != nil {
		return nil, err
	}

	return &AddLinkResult{
		Link:    link,
		Message: fmt.Sprintf("Added %s at position %d", link.DisplayName(), link.Position),
	}, nil
}
