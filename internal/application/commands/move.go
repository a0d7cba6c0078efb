package commands

import (
	"context"
	"fmt"

	"linkhoard/internal/application"
	"linkhoard/internal/ports"
)

// MoveLinkResult contains the result of moving a link
type MoveLinkResult struct {
	Message string
}

// MoveLinkCommand moves a link to a new position in the ordering
type MoveLinkCommand struct {
	store    ports.LinkStore
	ID       int64
	Position int
}

// NewMoveLinkCommand creates a new MoveLinkCommand
func NewMoveLinkCommand(store ports.LinkStore, id int64, position int) *MoveLinkCommand {
	return &MoveLinkCommand{
		store:    store,
		ID:       id,
		Position: position,
	}
}

// Validate checks if the move operation is valid
func (c *MoveLinkCommand) Validate() error {
	if err := application.ValidateID("id", c.ID); err != nil {
		return err
	}
	return application.ValidatePosition("position", c.Position)
}

// Execute runs the move link command
func (c *MoveLinkCommand) Execute(ctx context.Context) (*MoveLinkResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if err := c.store.Reorder(c.ID, c.Position); err != nil {
		return nil, err
	}

	return &MoveLinkResult{
		Message: fmt.Sprintf("Moved link %d to position %d", c.ID, c.Position),
	}, nil
}
