package document

import "context"

type Repository interface {
	Create(ctx context.Context, d *Document) error
	GetByDocID(ctx context.Context, docID string) (*Document, error)
	Save(ctx context.Context, d *Document) error
	ListByOwner(ctx context.Context, ownerType OwnerType, ownerID uint64) ([]Document, error)
	// ListUnverified returns documents of the owner (optionally scoped to a
	// category) whose verification status is not approved.
	ListUnverified(ctx context.Context, ownerType OwnerType, ownerID uint64, category Category) ([]Document, error)
}
