package uow

import (
	"context"

	"egov-portal-backend/internal/domain/document"
	"egov-portal-backend/internal/domain/history"
	"egov-portal-backend/internal/domain/housing"
	"egov-portal-backend/internal/domain/zoning"
)

type Repos struct {
	Zoning    zoning.Repository
	Housing   housing.Repository
	Documents document.Repository
	History   history.Repository
}

// UnitOfWork binds the repositories to a single database transaction. The
// application row is the unit of mutual exclusion: the *Tx variants lock it
// first so at most one transition wins per concurrent pair of requests.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	WithinZoningTx(ctx context.Context, applicationNo string, fn func(r Repos, a *zoning.Application) error) error
	WithinHousingTx(ctx context.Context, applicationNo string, fn func(r Repos, a *housing.Application) error) error
}
