package commands

import (
	"context"
	"fmt"

	"linkhoard/internal/domain"
	"linkhoard/internal/ports"
)

// IngestDropResult contains the result of committing a drop gesture
type IngestDropResult struct {
	Gesture domain.Gesture
	Added   []domain.Link
	Message string
}

// IngestDropCommand is the single commit point for drag-and-drop: it
// classifies the payload and issues either one Reorder, one Add per
// external path (in payload order), or nothing at all.
type IngestDropCommand struct {
	store   ports.LinkStore
	Payload domain.DropPayload

	// Applied to external adds only
	DefaultTags string
	AutoTag     bool
}

// NewIngestDropCommand creates a new IngestDropCommand
func NewIngestDropCommand(store ports.LinkStore, payload domain.DropPayload) *IngestDropCommand {
	return &IngestDropCommand{store: store, Payload: payload}
}

// Execute runs the ingest drop command
func (c *IngestDropCommand) Execute(ctx context.Context) (*IngestDropResult, error) {
	gesture := domain.ClassifyDrop(c.Payload)
	result := &IngestDropResult{Gesture: gesture}

	switch gesture.Kind {
	case domain.GestureCancel:
		result.Message = "Drop cancelled"
		return result, nil

	case domain.GestureReorder:
		move := NewMoveLinkCommand(c.store, gesture.ID, gesture.Index)
		moved, err := move.Execute(ctx)
		if err != nil {
			return nil, err
		}
		result.Message = moved.Message
		return result, nil

	case domain.GestureAddPaths:
		for _, path := range gesture.Paths {
			add := NewAddLinkCommand(c.store, "", path, c.DefaultTags)
			add.AutoTag = c.AutoTag
			added, err := add.Execute(ctx)
			if err != nil {
				return nil, err
			}
			result.Added = append(result.Added, *added.Link)
		}
		result.Message = fmt.Sprintf("Added %d link(s)", len(result.Added))
		return result, nil

	default:
		return nil, fmt.Errorf("unknown gesture kind: %d", gesture.Kind)
	}
}
