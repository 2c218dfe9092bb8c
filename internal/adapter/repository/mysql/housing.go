package mysql

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	housingDomain "egov-portal-backend/internal/domain/housing"
)

type HousingRepository struct{ db *gorm.DB }

func NewHousingRepository(db *gorm.DB) *HousingRepository { return &HousingRepository{db: db} }

func (r *HousingRepository) Create(ctx context.Context, a *housingDomain.Application) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *HousingRepository) Save(ctx context.Context, a *housingDomain.Application) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *HousingRepository) GetByApplicationNo(ctx context.Context, no string) (*housingDomain.Application, error) {
	var out housingDomain.Application
	res := r.db.WithContext(ctx).Where("application_no = ?", no).First(&out)
	return &out, res.Error
}

func (r *HousingRepository) GetByApplicationNoForUpdate(ctx context.Context, no string) (*housingDomain.Application, error) {
	var out housingDomain.Application
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("application_no = ?", no).
		First(&out)
	return &out, res.Error
}

func (r *HousingRepository) List(ctx context.Context, f housingDomain.ListFilter) ([]housingDomain.Application, error) {
	q := r.db.WithContext(ctx).Model(&housingDomain.Application{})
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.ApplicantUserID != 0 {
		q = q.Where("applicant_user_id = ?", f.ApplicantUserID)
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit).Offset(f.Offset)
	}
	var out []housingDomain.Application
	err := q.Order("created_at DESC, id DESC").Find(&out).Error
	return out, err
}

func (r *HousingRepository) CreateInspection(ctx context.Context, i *housingDomain.Inspection) error {
	return r.db.WithContext(ctx).Create(i).Error
}

func (r *HousingRepository) GetOpenInspection(ctx context.Context, applicationID uint64) (*housingDomain.Inspection, error) {
	var out housingDomain.Inspection
	res := r.db.WithContext(ctx).
		Where("application_id = ? AND status = ?", applicationID, housingDomain.InspectionScheduled).
		Order("id DESC").
		First(&out)
	return &out, res.Error
}

func (r *HousingRepository) SaveInspection(ctx context.Context, i *housingDomain.Inspection) error {
	return r.db.WithContext(ctx).Save(i).Error
}

func (r *HousingRepository) ListInspections(ctx context.Context, applicationID uint64) ([]housingDomain.Inspection, error) {
	var out []housingDomain.Inspection
	err := r.db.WithContext(ctx).
		Where("application_id = ?", applicationID).
		Order("id ASC").
		Find(&out).Error
	return out, err
}

func (r *HousingRepository) CreateOccupancy(ctx context.Context, o *housingDomain.OccupancyRecord) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *HousingRepository) GetOccupancyByApplication(ctx context.Context, applicationID uint64) (*housingDomain.OccupancyRecord, error) {
	var out housingDomain.OccupancyRecord
	res := r.db.WithContext(ctx).
		Where("application_id = ?", applicationID).
		Order("id DESC").
		First(&out)
	return &out, res.Error
}

func (r *HousingRepository) SaveOccupancy(ctx context.Context, o *housingDomain.OccupancyRecord) error {
	return r.db.WithContext(ctx).Save(o).Error
}
