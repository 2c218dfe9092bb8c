package mysql

import (
	"context"

	"gorm.io/gorm"

	projectDomain "egov-portal-backend/internal/domain/project"
)

type ProjectRepository struct{ db *gorm.DB }

func NewProjectRepository(db *gorm.DB) *ProjectRepository { return &ProjectRepository{db: db} }

func (r *ProjectRepository) ListProjects(ctx context.Context) ([]projectDomain.InfrastructureProject, error) {
	var out []projectDomain.InfrastructureProject
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&out).Error
	return out, err
}

func (r *ProjectRepository) GetProject(ctx context.Context, id uint64) (*projectDomain.InfrastructureProject, error) {
	var out projectDomain.InfrastructureProject
	res := r.db.WithContext(ctx).First(&out, id)
	return &out, res.Error
}

func (r *ProjectRepository) ListAnnouncements(ctx context.Context) ([]projectDomain.Announcement, error) {
	var out []projectDomain.Announcement
	err := r.db.WithContext(ctx).
		Where("published_at IS NOT NULL").
		Order("published_at DESC").
		Find(&out).Error
	return out, err
}
