package housing

import "context"

type ListFilter struct {
	Status          Status
	ApplicantUserID uint64
	Limit           int
	Offset          int
}

type Repository interface {
	Create(ctx context.Context, a *Application) error
	GetByApplicationNo(ctx context.Context, no string) (*Application, error)
	GetByApplicationNoForUpdate(ctx context.Context, no string) (*Application, error)
	Save(ctx context.Context, a *Application) error
	List(ctx context.Context, f ListFilter) ([]Application, error)

	CreateInspection(ctx context.Context, i *Inspection) error
	// GetOpenInspection returns the scheduled inspection for an application,
	// or gorm.ErrRecordNotFound when none is open.
	GetOpenInspection(ctx context.Context, applicationID uint64) (*Inspection, error)
	SaveInspection(ctx context.Context, i *Inspection) error
	ListInspections(ctx context.Context, applicationID uint64) ([]Inspection, error)

	CreateOccupancy(ctx context.Context, o *OccupancyRecord) error
	GetOccupancyByApplication(ctx context.Context, applicationID uint64) (*OccupancyRecord, error)
	SaveOccupancy(ctx context.Context, o *OccupancyRecord) error
}
