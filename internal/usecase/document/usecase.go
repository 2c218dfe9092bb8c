package document

import (
	"context"
	"strings"
	"time"

	"egov-portal-backend/internal/domain/document"
	"egov-portal-backend/internal/domain/history"
	"egov-portal-backend/internal/domain/housing"
	"egov-portal-backend/internal/domain/uow"
	"egov-portal-backend/internal/domain/user"
	"egov-portal-backend/internal/domain/workflow"
	"egov-portal-backend/internal/domain/zoning"
	"egov-portal-backend/pkg/id"
)

type Usecase struct {
	uow uow.UnitOfWork
}

func NewUsecase(tx uow.UnitOfWork) *Usecase { return &Usecase{uow: tx} }

type Decision string

const (
	DecisionApproved Decision = "approved"
	DecisionRejected Decision = "rejected"
)

// FileMeta is what the upload layer hands over after writing the blob.
type FileMeta struct {
	FileName string
	FilePath string
	FileSize int64
	MimeType string
}

type UploadInput struct {
	DocType  string
	Category document.Category
	File     FileMeta
}

type DocumentDTO struct {
	DocID              string     `json:"doc_id"`
	DocType            string     `json:"doc_type"`
	Category           string     `json:"category"`
	FileName           string     `json:"file_name"`
	FileSize           int64      `json:"file_size"`
	MimeType           string     `json:"mime_type"`
	VerificationStatus string     `json:"verification_status"`
	ReviewRemarks      string     `json:"review_remarks,omitempty"`
	ReviewedAt         *time.Time `json:"reviewed_at,omitempty"`
}

// Upload attaches a new document to an application. Zoning uploads carry a
// category routing hint; housing documents all verify in one pass.
func (u *Usecase) Upload(ctx context.Context, actor user.Actor, owner document.OwnerType, applicationNo string, in UploadInput) (*DocumentDTO, error) {
	action := workflow.ZoningUploadDocument
	if owner == document.OwnerHousing {
		action = workflow.HousingUploadDocument
	}
	if err := workflow.Check(actor, action); err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.DocType) == "" || in.File.FileName == "" {
		return nil, document.ErrNotFound
	}
	if in.Category == "" {
		in.Category = document.CategoryInitialReview
	}

	var dto *DocumentDTO
	err := u.withOwner(ctx, owner, applicationNo, func(r uow.Repos, ownerID uint64, _ func() error) error {
		d := &document.Document{
			DocID:              id.NewID32(),
			OwnerType:          owner,
			OwnerID:            ownerID,
			DocType:            in.DocType,
			Category:           in.Category,
			FileName:           in.File.FileName,
			FilePath:           in.File.FilePath,
			FileSize:           in.File.FileSize,
			MimeType:           in.File.MimeType,
			VerificationStatus: document.VerificationPending,
		}
		if err := r.Documents.Create(ctx, d); err != nil {
			return err
		}
		dto = toDTO(d)
		return r.History.Append(ctx, &history.Entry{
			OwnerType: string(owner),
			OwnerID:   ownerID,
			Action:    history.ActionDocumentUploaded,
			NewValue:  d.FileName,
			ActorID:   &actor.ID,
		})
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// Verify records a staff decision on a pending document. It is only allowed
// while the owning application is in a status that expects review.
func (u *Usecase) Verify(ctx context.Context, actor user.Actor, owner document.OwnerType, applicationNo, docID string, decision Decision, remarks string) (*DocumentDTO, error) {
	action := workflow.ZoningVerifyDocument
	if owner == document.OwnerHousing {
		action = workflow.HousingVerifyDocument
	}
	if err := workflow.Check(actor, action); err != nil {
		return nil, err
	}
	if decision == DecisionRejected && strings.TrimSpace(remarks) == "" {
		return nil, document.ErrRemarksRequired
	}
	if decision != DecisionApproved && decision != DecisionRejected {
		return nil, document.ErrNotPending
	}

	var dto *DocumentDTO
	err := u.withOwner(ctx, owner, applicationNo, func(r uow.Repos, ownerID uint64, reviewable func() error) error {
		if err := reviewable(); err != nil {
			return err
		}
		d, err := r.Documents.GetByDocID(ctx, docID)
		if err != nil {
			return document.ErrNotFound
		}
		if d.OwnerType != owner || d.OwnerID != ownerID {
			return document.ErrOwnerMismatch
		}
		if d.VerificationStatus != document.VerificationPending {
			return document.ErrNotPending
		}

		now := time.Now().UTC()
		d.ReviewedBy = &actor.ID
		d.ReviewedAt = &now
		d.ReviewRemarks = remarks
		histAction := history.ActionDocumentVerified
		if decision == DecisionApproved {
			d.VerificationStatus = document.VerificationApproved
		} else {
			d.VerificationStatus = document.VerificationRejected
			histAction = history.ActionDocumentRejected
		}
		if err := r.Documents.Save(ctx, d); err != nil {
			return err
		}
		dto = toDTO(d)
		return r.History.Append(ctx, &history.Entry{
			OwnerType: string(owner),
			OwnerID:   ownerID,
			Action:    histAction,
			OldValue:  string(document.VerificationPending),
			NewValue:  string(d.VerificationStatus),
			Remarks:   remarks,
			ActorID:   &actor.ID,
		})
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// Reupload replaces a rejected document's file and resets it to pending.
func (u *Usecase) Reupload(ctx context.Context, actor user.Actor, owner document.OwnerType, applicationNo, docID string, file FileMeta) (*DocumentDTO, error) {
	action := workflow.ZoningUploadDocument
	if owner == document.OwnerHousing {
		action = workflow.HousingUploadDocument
	}
	if err := workflow.Check(actor, action); err != nil {
		return nil, err
	}

	var dto *DocumentDTO
	err := u.withOwner(ctx, owner, applicationNo, func(r uow.Repos, ownerID uint64, _ func() error) error {
		d, err := r.Documents.GetByDocID(ctx, docID)
		if err != nil {
			return document.ErrNotFound
		}
		if d.OwnerType != owner || d.OwnerID != ownerID {
			return document.ErrOwnerMismatch
		}
		if d.VerificationStatus != document.VerificationRejected {
			return document.ErrNotRejected
		}

		old := d.FileName
		d.FileName = file.FileName
		d.FilePath = file.FilePath
		d.FileSize = file.FileSize
		d.MimeType = file.MimeType
		d.VerificationStatus = document.VerificationPending
		d.ReviewedBy = nil
		d.ReviewedAt = nil
		d.ReviewRemarks = ""
		if err := r.Documents.Save(ctx, d); err != nil {
			return err
		}
		dto = toDTO(d)
		return r.History.Append(ctx, &history.Entry{
			OwnerType: string(owner),
			OwnerID:   ownerID,
			Action:    history.ActionDocumentReuploaded,
			OldValue:  old,
			NewValue:  d.FileName,
			ActorID:   &actor.ID,
		})
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// withOwner locks the owning application row and exposes its numeric id plus
// a closure that checks the application is in a reviewing status.
func (u *Usecase) withOwner(ctx context.Context, owner document.OwnerType, applicationNo string, fn func(r uow.Repos, ownerID uint64, reviewable func() error) error) error {
	switch owner {
	case document.OwnerZoning:
		return u.uow.WithinZoningTx(ctx, applicationNo, func(r uow.Repos, a *zoning.Application) error {
			reviewable := func() error {
				if a.Status != zoning.StatusInitialReview && a.Status != zoning.StatusTechnicalReview {
					return zoning.ErrInvalidTransition
				}
				return nil
			}
			return fn(r, a.ID, reviewable)
		})
	case document.OwnerHousing:
		return u.uow.WithinHousingTx(ctx, applicationNo, func(r uow.Repos, a *housing.Application) error {
			reviewable := func() error {
				if a.Status != housing.StatusDocumentVerification {
					return housing.ErrInvalidTransition
				}
				return nil
			}
			return fn(r, a.ID, reviewable)
		})
	}
	return document.ErrNotFound
}

func toDTO(d *document.Document) *DocumentDTO {
	return &DocumentDTO{
		DocID:              d.DocID,
		DocType:            d.DocType,
		Category:           string(d.Category),
		FileName:           d.FileName,
		FileSize:           d.FileSize,
		MimeType:           d.MimeType,
		VerificationStatus: string(d.VerificationStatus),
		ReviewRemarks:      d.ReviewRemarks,
		ReviewedAt:         d.ReviewedAt,
	}
}
