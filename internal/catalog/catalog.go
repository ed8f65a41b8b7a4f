package catalog

import (
	"context"
	"fmt"

	"github.com/gearhub/gearhub/internal/model"
)

// Catalog is the persistence gateway for items. Exactly one
// implementation is active per deployment; both assign the item's ID
// and timestamps on create and list newest-first.
type Catalog interface {
	// Create persists a new item built from the draft and returns it
	// with its assigned ID and timestamps.
	Create(ctx context.Context, draft model.Draft) (*model.Item, error)

	// List returns all items ordered by creation time descending.
	// An empty catalog yields an empty slice, not an error.
	List(ctx context.Context) ([]model.Item, error)
}

// PersistenceError is a transport or storage fault raised by a Catalog
// implementation. Callers log it and degrade to an error display.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("catalog %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
