package history

import "context"

// Repository is append-only: there is no update or delete.
type Repository interface {
	Append(ctx context.Context, e *Entry) error
	ListByOwner(ctx context.Context, ownerType string, ownerID uint64) ([]Entry, error)
}
