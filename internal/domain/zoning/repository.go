package zoning

import "context"

type ListFilter struct {
	Status          Status
	AssignedStaffID uint64
	ApplicantUserID uint64
	Limit           int
	Offset          int
}

type Repository interface {
	Create(ctx context.Context, a *Application) error
	GetByApplicationNo(ctx context.Context, no string) (*Application, error)
	// GetByApplicationNoForUpdate locks the row (SELECT ... FOR UPDATE);
	// only meaningful inside a transaction.
	GetByApplicationNoForUpdate(ctx context.Context, no string) (*Application, error)
	Save(ctx context.Context, a *Application) error
	List(ctx context.Context, f ListFilter) ([]Application, error)
}
