package mysql

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"egov-portal-backend/internal/domain/housing"
	"egov-portal-backend/internal/domain/uow"
	"egov-portal-backend/internal/domain/zoning"
)

type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func reposFor(tx *gorm.DB) uow.Repos {
	return uow.Repos{
		Zoning:    &ZoningRepository{db: tx},
		Housing:   &HousingRepository{db: tx},
		Documents: &DocumentRepository{db: tx},
		History:   &HistoryRepository{db: tx},
	}
}

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(reposFor(tx))
	})
}

func (u *GormUoW) WithinZoningTx(ctx context.Context, applicationNo string, fn func(r uow.Repos, a *zoning.Application) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := reposFor(tx)
		// lock the application row up-front to prevent races
		a, err := r.Zoning.GetByApplicationNoForUpdate(ctx, applicationNo)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return zoning.ErrNotFound
			}
			return err
		}
		return fn(r, a)
	})
}

func (u *GormUoW) WithinHousingTx(ctx context.Context, applicationNo string, fn func(r uow.Repos, a *housing.Application) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		r := reposFor(tx)
		a, err := r.Housing.GetByApplicationNoForUpdate(ctx, applicationNo)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return housing.ErrNotFound
			}
			return err
		}
		return fn(r, a)
	})
}
