package documentmock

import (
	"context"

	domain "egov-portal-backend/internal/domain/document"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn         func(ctx context.Context, d *domain.Document) error
	GetByDocIDFn     func(ctx context.Context, docID string) (*domain.Document, error)
	SaveFn           func(ctx context.Context, d *domain.Document) error
	ListByOwnerFn    func(ctx context.Context, ownerType domain.OwnerType, ownerID uint64) ([]domain.Document, error)
	ListUnverifiedFn func(ctx context.Context, ownerType domain.OwnerType, ownerID uint64, category domain.Category) ([]domain.Document, error)
}

func (m *Repo) Create(ctx context.Context, d *domain.Document) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, d)
	}
	return nil
}

func (m *Repo) GetByDocID(ctx context.Context, docID string) (*domain.Document, error) {
	if m.GetByDocIDFn != nil {
		return m.GetByDocIDFn(ctx, docID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) Save(ctx context.Context, d *domain.Document) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, d)
	}
	return nil
}

func (m *Repo) ListByOwner(ctx context.Context, ownerType domain.OwnerType, ownerID uint64) ([]domain.Document, error) {
	if m.ListByOwnerFn != nil {
		return m.ListByOwnerFn(ctx, ownerType, ownerID)
	}
	return nil, nil
}

func (m *Repo) ListUnverified(ctx context.Context, ownerType domain.OwnerType, ownerID uint64, category domain.Category) ([]domain.Document, error) {
	if m.ListUnverifiedFn != nil {
		return m.ListUnverifiedFn(ctx, ownerType, ownerID, category)
	}
	return nil, nil
}
