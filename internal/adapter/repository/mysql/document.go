package mysql

import (
	"context"

	"gorm.io/gorm"

	documentDomain "egov-portal-backend/internal/domain/document"
)

type DocumentRepository struct{ db *gorm.DB }

func NewDocumentRepository(db *gorm.DB) *DocumentRepository { return &DocumentRepository{db: db} }

func (r *DocumentRepository) Create(ctx context.Context, d *documentDomain.Document) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *DocumentRepository) Save(ctx context.Context, d *documentDomain.Document) error {
	return r.db.WithContext(ctx).Save(d).Error
}

func (r *DocumentRepository) GetByDocID(ctx context.Context, docID string) (*documentDomain.Document, error) {
	var out documentDomain.Document
	res := r.db.WithContext(ctx).Where("doc_id = ?", docID).First(&out)
	return &out, res.Error
}

func (r *DocumentRepository) ListByOwner(ctx context.Context, ownerType documentDomain.OwnerType, ownerID uint64) ([]documentDomain.Document, error) {
	var out []documentDomain.Document
	err := r.db.WithContext(ctx).
		Where("owner_type = ? AND owner_id = ?", ownerType, ownerID).
		Order("id ASC").
		Find(&out).Error
	return out, err
}

func (r *DocumentRepository) ListUnverified(ctx context.Context, ownerType documentDomain.OwnerType, ownerID uint64, category documentDomain.Category) ([]documentDomain.Document, error) {
	q := r.db.WithContext(ctx).
		Where("owner_type = ? AND owner_id = ?", ownerType, ownerID).
		Where("verification_status <> ?", documentDomain.VerificationApproved)
	if category != "" {
		q = q.Where("category = ?", category)
	}
	var out []documentDomain.Document
	err := q.Order("id ASC").Find(&out).Error
	return out, err
}
