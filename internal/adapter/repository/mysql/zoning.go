package mysql

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	zoningDomain "egov-portal-backend/internal/domain/zoning"
)

type ZoningRepository struct{ db *gorm.DB }

func NewZoningRepository(db *gorm.DB) *ZoningRepository { return &ZoningRepository{db: db} }

func (r *ZoningRepository) Create(ctx context.Context, a *zoningDomain.Application) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *ZoningRepository) Save(ctx context.Context, a *zoningDomain.Application) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *ZoningRepository) GetByApplicationNo(ctx context.Context, no string) (*zoningDomain.Application, error) {
	var out zoningDomain.Application
	res := r.db.WithContext(ctx).Where("application_no = ?", no).First(&out)
	return &out, res.Error
}

func (r *ZoningRepository) GetByApplicationNoForUpdate(ctx context.Context, no string) (*zoningDomain.Application, error) {
	var out zoningDomain.Application
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("application_no = ?", no).
		First(&out)
	return &out, res.Error
}

func (r *ZoningRepository) List(ctx context.Context, f zoningDomain.ListFilter) ([]zoningDomain.Application, error) {
	q := r.db.WithContext(ctx).Model(&zoningDomain.Application{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.AssignedStaffID != 0 {
		q = q.Where("assigned_staff_id = ?", f.AssignedStaffID)
	}
	if f.ApplicantUserID != 0 {
		q = q.Where("applicant_user_id = ?", f.ApplicantUserID)
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit).Offset(f.Offset)
	}
	var out []zoningDomain.Application
	err := q.Order("submitted_at DESC, id DESC").Find(&out).Error
	return out, err
}
