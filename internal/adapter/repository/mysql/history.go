package mysql

import (
	"context"

	"gorm.io/gorm"

	historyDomain "egov-portal-backend/internal/domain/history"
)

// HistoryRepository is append-only by construction: it exposes no update or
// delete path.
type HistoryRepository struct{ db *gorm.DB }

func NewHistoryRepository(db *gorm.DB) *HistoryRepository { return &HistoryRepository{db: db} }

func (r *HistoryRepository) Append(ctx context.Context, e *historyDomain.Entry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *HistoryRepository) ListByOwner(ctx context.Context, ownerType string, ownerID uint64) ([]historyDomain.Entry, error) {
	var out []historyDomain.Entry
	err := r.db.WithContext(ctx).
		Where("owner_type = ? AND owner_id = ?", ownerType, ownerID).
		Order("created_at ASC, id ASC").
		Find(&out).Error
	return out, err
}
