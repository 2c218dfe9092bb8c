package housingmock

import (
	"context"

	"gorm.io/gorm"

	domain "egov-portal-backend/internal/domain/housing"
)

var _ domain.Repository = (*Repo)(nil)

// Repo is a function-backed mock that satisfies domain.Repository.
type Repo struct {
	CreateFn                      func(ctx context.Context, a *domain.Application) error
	GetByApplicationNoFn          func(ctx context.Context, no string) (*domain.Application, error)
	GetByApplicationNoForUpdateFn func(ctx context.Context, no string) (*domain.Application, error)
	SaveFn                        func(ctx context.Context, a *domain.Application) error
	ListFn                        func(ctx context.Context, f domain.ListFilter) ([]domain.Application, error)

	CreateInspectionFn  func(ctx context.Context, i *domain.Inspection) error
	GetOpenInspectionFn func(ctx context.Context, applicationID uint64) (*domain.Inspection, error)
	SaveInspectionFn    func(ctx context.Context, i *domain.Inspection) error
	ListInspectionsFn   func(ctx context.Context, applicationID uint64) ([]domain.Inspection, error)

	CreateOccupancyFn           func(ctx context.Context, o *domain.OccupancyRecord) error
	GetOccupancyByApplicationFn func(ctx context.Context, applicationID uint64) (*domain.OccupancyRecord, error)
	SaveOccupancyFn             func(ctx context.Context, o *domain.OccupancyRecord) error
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

func (m *Repo) CreateInspection(ctx context.Context, i *domain.Inspection) error {
	if m.CreateInspectionFn != nil {
		return m.CreateInspectionFn(ctx, i)
	}
	return nil
}

func (m *Repo) GetOpenInspection(ctx context.Context, applicationID uint64) (*domain.Inspection, error) {
	if m.GetOpenInspectionFn != nil {
		return m.GetOpenInspectionFn(ctx, applicationID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) SaveInspection(ctx context.Context, i *domain.Inspection) error {
	if m.SaveInspectionFn != nil {
		return m.SaveInspectionFn(ctx, i)
	}
	return nil
}

func (m *Repo) ListInspections(ctx context.Context, applicationID uint64) ([]domain.Inspection, error) {
	if m.ListInspectionsFn != nil {
		return m.ListInspectionsFn(ctx, applicationID)
	}
	return nil, nil
}

func (m *Repo) CreateOccupancy(ctx context.Context, o *domain.OccupancyRecord) error {
	if m.CreateOccupancyFn != nil {
		return m.CreateOccupancyFn(ctx, o)
	}
	return nil
}

func (m *Repo) GetOccupancyByApplication(ctx context.Context, applicationID uint64) (*domain.OccupancyRecord, error) {
	if m.GetOccupancyByApplicationFn != nil {
		return m.GetOccupancyByApplicationFn(ctx, applicationID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *Repo) SaveOccupancy(ctx context.Context, o *domain.OccupancyRecord) error {
	if m.SaveOccupancyFn != nil {
		return m.SaveOccupancyFn(ctx, o)
	}
	return nil
}
