package commands

import (
	"context"
	"fmt"

	"linkhoard/internal/application"
	"linkhoard/internal/ports"
)

// EditLinkResult contains the result of editing a link
type EditLinkResult struct {
	Message string
}

// EditLinkCommand mutates only the supplied fields of an existing link
type EditLinkCommand struct {
	store  ports.LinkStore
	ID     int64
	Fields ports.UpdateFields
}

// NewEditLinkCommand creates a new EditLinkCommand
func NewEditLinkCommand(store ports.LinkStore, id int64, fields ports.UpdateFields) *EditLinkCommand {
	return &EditLinkCommand{
		store:  store,
		ID:     id,
		Fields: fields,
	}
}

// Validate checks if the edit operation is valid
func (c *EditLinkCommand) Validate() error {
	if err := application.ValidateID("id", c.ID); err != nil {
		return err
	}
	if c.Fields.Path != nil {
		if err := application.ValidateRequired("path", *c.Fields.Path); err != nil {
			return err
		}
	}
	return nil
}

// Execute runs the edit link command
func (c *EditLinkCommand) Execute(ctx context.Context) (*EditLinkResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if err := c.store.Update(c.ID, c.Fields); err != nil {
		return nil, err
	}

	return &EditLinkResult{
		Message: fmt.Sprintf("Updated link %d", c.ID),
	}, nil
}
