package zoningmock

import (
	"context"

	domain "egov-portal-backend/internal/domain/zoning"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
// Only methods you need are included; add more as tests require.
type Repo struct {
	CreateFn                      func(ctx context.Context, a *domain.Application) error
	GetByApplicationNoFn          func(ctx context.Context, no string) (*domain.Application, error)
	GetByApplicationNoForUpdateFn func(ctx context.Context, no string) (*domain.Application, error)
	SaveFn                        func(ctx context.Context, a *domain.Application) error
	ListFn                        func(ctx context.Context, f domain.ListFilter) ([]domain.Application, error)
}

func (m *Repo) Create(ctx context.Context, a *domain.Application) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, a)
	}
	return nil
}

func (m *Repo) GetByApplicationNo(ctx context.Context, no string) (*domain.Application, error) {
	if m.GetByApplicationNoFn != nil {
		return m.GetByApplicationNoFn(ctx, no)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) GetByApplicationNoForUpdate(ctx context.Context, no string) (*domain.Application, error) {
	if m.GetByApplicationNoForUpdateFn != nil {
		return m.GetByApplicationNoForUpdateFn(ctx, no)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) Save(ctx context.Context, a *domain.Application) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, a)
	}
	return nil
}

func (m *Repo) List(ctx context.Context, f domain.ListFilter) ([]domain.Application, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, f)
	}
	return nil, nil
}
