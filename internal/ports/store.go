package ports

import "linkhoard/internal/domain"

// UpdateFields carries the optional column updates for LinkStore.Update.
// A nil field is left untouched.
type UpdateFields struct {
	Name *string
	Path *string
	Tags *string
}

// LinkStore is the persistence boundary for links. Positions are a dense
// zero-based range at all times: every mutation that returns nil has
// already renumbered whatever rows it displaced and committed durably.
type LinkStore interface {
	// Mutations
	Add(name, path, tags string) (*domain.Link, error)
	Update(id int64, fields UpdateFields) error
	Delete(id int64) error
	Reorder(id int64, newPosition int) error
	ReplaceAll(links []domain.Link) error

	// Queries
	Get(id int64) (*domain.Link, error)
	List(filter string) ([]domain.Link, error)
	Count() (int, error)

	// Lifecycle
	Close() error
}
