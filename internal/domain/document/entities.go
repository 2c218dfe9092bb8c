package document

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound        = errors.New("document not found")
	ErrNotPending      = errors.New("document is not pending verification")
	ErrNotRejected     = errors.New("only rejected documents may be re-uploaded")
	ErrRemarksRequired = errors.New("rejection remarks are required")
	ErrOwnerMismatch   = errors.New("document does not belong to this application")
)

// OwnerType discriminates the polymorphic owner of a document.
type OwnerType string

const (
	OwnerZoning  OwnerType = "zoning"
	OwnerHousing OwnerType = "housing"
)

type Category string

const (
	CategoryInitialReview   Category = "initial_review"
	CategoryTechnicalReview Category = "technical_review"
)

type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationApproved VerificationStatus = "approved"
	VerificationRejected VerificationStatus = "rejected"
)

type Document struct {
	ID        uint64    `gorm:"primaryKey;column:id"`
	DocID     string    `gorm:"column:doc_id;type:char(32);not null;uniqueIndex:ux_documents_doc_id"`
	OwnerType OwnerType `gorm:"column:owner_type;type:enum('zoning','housing');not null;index:idx_documents_owner"`
	OwnerID   uint64    `gorm:"column:owner_id;not null;index:idx_documents_owner"`

	DocType  string   `gorm:"column:doc_type;size:64;not null"`
	Category Category `gorm:"column:category;type:enum('initial_review','technical_review');default:'initial_review'"`

	FileName string `gorm:"column:file_name;size:255;not null"`
	FilePath string `gorm:"column:file_path;type:text;not null"`
	FileSize int64  `gorm:"column:file_size"`
	MimeType string `gorm:"column:mime_type;size:128"`

	VerificationStatus VerificationStatus `gorm:"column:verification_status;type:enum('pending','approved','rejected');default:'pending'"`
	ReviewedBy         *uint64            `gorm:"column:reviewed_by"`
	ReviewedAt         *time.Time         `gorm:"column:reviewed_at"`
	ReviewRemarks      string             `gorm:"column:review_remarks;type:text"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Document) TableName() string { return "documents" }

// PendingError blocks a forward transition and names the documents that are
// still unverified.
type PendingError struct {
	Names []string
}

func (e *PendingError) Error() string {
	return fmt.Sprintf("documents pending verification: %s", strings.Join(e.Names, ", "))
}
