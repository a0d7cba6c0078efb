package commands

import (
	"context"
	"fmt"

	"linkhoard/internal/application"
	"linkhoard/internal/ports"
)

// RemoveLinkResult contains the result of removing a link
type RemoveLinkResult struct {
	Message string
}

// RemoveLinkCommand deletes a link; the store compacts the positions of
// every row behind it.
type RemoveLinkCommand struct {
	store ports.LinkStore
	ID    int64
}

// NewRemoveLinkCommand creates a new RemoveLinkCommand
func NewRemoveLinkCommand(store ports.LinkStore, id int64) *RemoveLinkCommand {
	return &RemoveLinkCommand{store: store, ID: id}
}

// Validate checks if the remove operation is valid
func (c *RemoveLinkCommand) Validate() error {
	return application.ValidateID("id", c.ID)
}

// Execute runs the remove link command
func (c *RemoveLinkCommand) Execute(ctx context.Context) (*RemoveLinkResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if err := c.store.Delete(c.ID); err != nil {
		return nil, err
	}

	return &RemoveLinkResult{
		Message: fmt.Sprintf("Removed link %d", c.ID),
	}, nil
}
