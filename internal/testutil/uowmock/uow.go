package uowmock

import (
	"context"
	"errors"

	"egov-portal-backend/internal/domain/housing"
	"egov-portal-backend/internal/domain/uow"
	"egov-portal-backend/internal/domain/zoning"
)

// Ensure compile-time compliance
var _ uow.UnitOfWork = (*UoW)(nil)

var errUnimplemented = errors.New("uowmock: method not implemented")

// UoW is a function-backed mock that satisfies uow.UnitOfWork.
// Fill in the function fields you need in a test; unfilled ones return errUnimplemented.
type UoW struct {
	WithinTxFn        func(ctx context.Context, fn func(r uow.Repos) error) error
	WithinZoningTxFn  func(ctx context.Context, applicationNo string, fn func(r uow.Repos, a *zoning.Application) error) error
	WithinHousingTxFn func(ctx context.Context, applicationNo string, fn func(r uow.Repos, a *housing.Application) error) error
}

func New() *UoW { return &UoW{} }

// Passthrough wires all three methods to run the callback immediately against
// the given repos, with the provided loaders standing in for the row locks.
func Passthrough(r uow.Repos) *UoW {
	return &UoW{
		WithinTxFn: func(ctx context.Context, fn func(uow.Repos) error) error {
			return fn(r)
		},
		WithinZoningTxFn: func(ctx context.Context, no string, fn func(uow.Repos, *zoning.Application) error) error {
			a, err := r.Zoning.GetByApplicationNoForUpdate(ctx, no)
			if err != nil {
				return err
			}
			return fn(r, a)
		},
		WithinHousingTxFn: func(ctx context.Context, no string, fn func(uow.Repos, *housing.Application) error) error {
			a, err := r.Housing.GetByApplicationNoForUpdate(ctx, no)
			if err != nil {
				return err
			}
			return fn(r, a)
		},
	}
}

func (m *UoW) Reset() { *m = UoW{} }

// Methods implementing UnitOfWork
func (m *UoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	if m.WithinTxFn != nil {
		return m.WithinTxFn(ctx, fn)
	}
	return errUnimplemented
}

func (m *UoW) WithinZoningTx(ctx context.Context, applicationNo string, fn func(r uow.Repos, a *zoning.Application) error) error {
	if m.WithinZoningTxFn != nil {
		return m.WithinZoningTxFn(ctx, applicationNo, fn)
	}
	return errUnimplemented
}

func (m *UoW) WithinHousingTx(ctx context.Context, applicationNo string, fn func(r uow.Repos, a *housing.Application) error) error {
	if m.WithinHousingTxFn != nil {
		return m.WithinHousingTxFn(ctx, applicationNo, fn)
	}
	return errUnimplemented
}
