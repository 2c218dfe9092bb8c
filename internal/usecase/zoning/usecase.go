package zoning

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"egov-portal-backend/internal/domain/document"
	"egov-portal-backend/internal/domain/history"
	"egov-portal-backend/internal/domain/uow"
	"egov-portal-backend/internal/domain/user"
	"egov-portal-backend/internal/domain/workflow"
	"egov-portal-backend/internal/domain/zoning"
	"egov-portal-backend/pkg/id"
)

type Usecase struct {
	repo zoning.Repository
	docs document.Repository
	hist history.Repository
	uow  uow.UnitOfWork
}

func NewUsecase(repo zoning.Repository, docs document.Repository, hist history.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{repo: repo, docs: docs, hist: hist, uow: tx}
}

// Create submits a new zoning clearance application. Fees are computed once
// here and never recomputed afterwards.
func (u *Usecase) Create(ctx context.Context, actor user.Actor, in CreateInput) (*ApplicationDTO, error) {
	if err := workflow.Check(actor, workflow.ZoningSubmit); err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.ApplicantName) == "" || strings.TrimSpace(in.ApplicantEmail) == "" || in.TotalFloorAreaSqm <= 0 {
		return nil, zoning.ErrInvalidInput
	}

	area := decimal.NewFromFloat(in.TotalFloorAreaSqm)
	processing, total := zoning.ComputeFees(area)

	a := &zoning.Application{
		ApplicationNo:      id.NewRef("ZC"),
		ApplicantUserID:    actor.ID,
		ApplicantName:      in.ApplicantName,
		ApplicantEmail:     in.ApplicantEmail,
		ApplicantPhone:     in.ApplicantPhone,
		ApplicantAddr:      in.ApplicantAddress,
		ProjectDescription: in.ProjectDescription,
		ProjectAddress:     in.ProjectAddress,
		TotalFloorAreaSqm:  area,
		ApplicationFee:     zoning.ApplicationFee,
		BaseFee:            zoning.BaseFee,
		ProcessingFee:      processing,
		TotalFee:           total,
		Status:             zoning.StatusPending,
		SubmittedAt:        time.Now().UTC(),
	}

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Zoning.Create(ctx, a); err != nil {
			return err
		}
		return r.History.Append(ctx, &history.Entry{
			OwnerType: string(document.OwnerZoning),
			OwnerID:   a.ID,
			Action:    history.ActionStatusChanged,
			NewValue:  string(zoning.StatusPending),
			ActorID:   &actor.ID,
		})
	})
	if err != nil {
		return nil, err
	}
	return toDTO(a), nil
}

// StartReview moves pending -> initial_review and assigns the acting staff.
func (u *Usecase) StartReview(ctx context.Context, actor user.Actor, applicationNo string) (*ApplicationDTO, error) {
	if err := workflow.Check(actor, workflow.ZoningStartReview); err != nil {
		return nil, err
	}
	return u.mutate(ctx, actor, applicationNo, func(r uow.Repos, a *zoning.Application) error {
		if a.Status != zoning.StatusPending {
			return zoning.ErrInvalidTransition
		}
		a.AssignedStaffID = &actor.ID
		return u.setStatus(ctx, r, a, actor, zoning.StatusInitialReview, "", history.ActionStatusChanged)
	})
}

// ForwardToTechnical moves initial_review -> technical_review; every
// initial-review document must already be approved.
func (u *Usecase) ForwardToTechnical(ctx context.Context, actor user.Actor, applicationNo string, technicalStaffID uint64) (*ApplicationDTO, error) {
	if err := workflow.Check(actor, workflow.ZoningForwardTech); err != nil {
		return nil, err
	}
	return u.mutate(ctx, actor, applicationNo, func(r uow.Repos, a *zoning.Application) error {
		if a.Status != zoning.StatusInitialReview {
			return zoning.ErrInvalidTransition
		}
		if err := allVerified(ctx, r.Documents, a.ID, document.CategoryInitialReview); err != nil {
			return err
		}
		now := time.Now().UTC()
		a.TechnicalStaffID = &technicalStaffID
		a.ForwardedToTechnicalAt = &now
		return u.setStatus(ctx, r, a, actor, zoning.StatusTechnicalReview, "", history.ActionForwarded)
	})
}

// ReturnFromTechnical moves technical_review -> awaiting_approval once all
// technical-review documents are approved.
func (u *Usecase) ReturnFromTechnical(ctx context.Context, actor user.Actor, applicationNo string) (*ApplicationDTO, error) {
	if err := workflow.Check(actor, workflow.ZoningReturnTech); err != nil {
		return nil, err
	}
	return u.mutate(ctx, actor, applicationNo, func(r uow.Repos, a *zoning.Application) error {
		if a.Status != zoning.StatusTechnicalReview {
			return zoning.ErrInvalidTransition
		}
		if err := allVerified(ctx, r.Documents, a.ID, document.CategoryTechnicalReview); err != nil {
			return err
		}
		now := time.Now().UTC()
		a.ReturnedFromTechnicalAt = &now
		return u.setStatus(ctx, r, a, actor, zoning.StatusAwaitingApproval, "", history.ActionReturned)
	})
}

// RequireChanges is available from any pre-terminal state and must carry
// remarks for the citizen.
func (u *Usecase) RequireChanges(ctx context.Context, actor user.Actor, applicationNo, remarks string) (*ApplicationDTO, error) {
	if err := workflow.Check(actor, workflow.ZoningRequireChanges); err != nil {
		return nil, err
	}
	if strings.TrimSpace(remarks) == "" {
		return nil, zoning.ErrRemarksRequired
	}
	return u.mutate(ctx, actor, applicationNo, func(r uow.Repos, a *zoning.Application) error {
		if a.Status.Terminal() || a.Status == zoning.StatusRequiresChanges {
			return zoning.ErrInvalidTransition
		}
		return u.setStatus(ctx, r, a, actor, zoning.StatusRequiresChanges, remarks, history.ActionStatusChanged)
	})
}

// ResumeReview brings a requires_changes application back into initial_review
// after the citizen re-uploaded the flagged documents.
func (u *Usecase) ResumeReview(ctx context.Context, actor user.Actor, applicationNo string) (*ApplicationDTO, error) {
	if err := workflow.Check(actor, workflow.ZoningResumeReview); err != nil {
		return nil, err
	}
	return u.mutate(ctx, actor, applicationNo, func(r uow.Repos, a *zoning.Application) error {
		if a.Status != zoning.StatusRequiresChanges {
			return zoning.ErrInvalidTransition
		}
		return u.setStatus(ctx, r, a, actor, zoning.StatusInitialReview, "", history.ActionStatusChanged)
	})
}

// Approve is terminal and requires a non-empty decision note.
func (u *Usecase) Approve(ctx context.Context, actor user.Actor, applicationNo, note string) (*ApplicationDTO, error) {
	if err := workflow.Check(actor, workflow.ZoningApprove); err != nil {
		return nil, err
	}
	if strings.TrimSpace(note) == "" {
		return nil, zoning.ErrRemarksRequired
	}
	return u.mutate(ctx, actor, applicationNo, func(r uow.Repos, a *zoning.Application) error {
		if a.Status != zoning.StatusAwaitingApproval {
			return zoning.ErrInvalidTransition
		}
		now := time.Now().UTC()
		a.ReviewedAt = &now
		a.ApprovedAt = &now
		a.DecisionNote = note
		return u.setStatus(ctx, r, a, actor, zoning.StatusApproved, note, history.ActionStatusChanged)
	})
}

// Reject is terminal and requires a reason.
func (u *Usecase) Reject(ctx context.Context, actor user.Actor, applicationNo, reason string) (*ApplicationDTO, error) {
	if err := workflow.Check(actor, workflow.ZoningReject); err != nil {
		return nil, err
	}
	if strings.TrimSpace(reason) == "" {
		return nil, zoning.ErrRemarksRequired
	}
	return u.mutate(ctx, actor, applicationNo, func(r uow.Repos, a *zoning.Application) error {
		if a.Status != zoning.StatusAwaitingApproval {
			return zoning.ErrInvalidTransition
		}
		now := time.Now().UTC()
		a.ReviewedAt = &now
		a.RejectedAt = &now
		a.DecisionNote = reason
		return u.setStatus(ctx, r, a, actor, zoning.StatusRejected, reason, history.ActionStatusChanged)
	})
}

// Get returns the full detail. Citizens only ever see their own applications;
// staff roles read any.
func (u *Usecase) Get(ctx context.Context, actor user.Actor, applicationNo string) (*DetailDTO, error) {
	a, err := u.repo.GetByApplicationNo(ctx, applicationNo)
	if err != nil {
		return nil, zoning.ErrNotFound
	}
	if actor.Role == user.RoleCitizen && a.ApplicantUserID != actor.ID {
		return nil, zoning.ErrNotOwner
	}
	docs, err := u.docs.ListByOwner(ctx, document.OwnerZoning, a.ID)
	if err != nil {
		return nil, err
	}
	entries, err := u.hist.ListByOwner(ctx, string(document.OwnerZoning), a.ID)
	if err != nil {
		return nil, err
	}
	return &DetailDTO{
		ApplicationDTO: *toDTO(a),
		Documents:      toDocumentDTOs(docs),
		History:        toHistoryDTOs(entries),
	}, nil
}

func (u *Usecase) List(ctx context.Context, actor user.Actor, f zoning.ListFilter) ([]ApplicationDTO, error) {
	// Citizens only ever see their own applications.
	if actor.Role == user.RoleCitizen {
		f.ApplicantUserID = actor.ID
	}
	apps, err := u.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]ApplicationDTO, 0, len(apps))
	for i := range apps {
		out = append(out, *toDTO(&apps[i]))
	}
	return out, nil
}

// mutate runs fn under a row lock on the application and returns the fresh DTO.
func (u *Usecase) mutate(ctx context.Context, actor user.Actor, applicationNo string, fn func(r uow.Repos, a *zoning.Application) error) (*ApplicationDTO, error) {
	if u.uow == nil {
		return nil, zoning.ErrInvalidTransition
	}
	var dto *ApplicationDTO
	err := u.uow.WithinZoningTx(ctx, applicationNo, func(r uow.Repos, a *zoning.Application) error {
		if err := fn(r, a); err != nil {
			return err
		}
		dto = toDTO(a)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto, nil
}

// setStatus performs the status write plus exactly one history entry.
func (u *Usecase) setStatus(ctx context.Context, r uow.Repos, a *zoning.Application, actor user.Actor, next zoning.Status, remarks string, action history.Action) error {
	old := a.Status
	a.Status = next
	if err := r.Zoning.Save(ctx, a); err != nil {
		return err
	}
	return r.History.Append(ctx, &history.Entry{
		OwnerType: string(document.OwnerZoning),
		OwnerID:   a.ID,
		Action:    action,
		OldValue:  string(old),
		NewValue:  string(next),
		Remarks:   remarks,
		ActorID:   &actor.ID,
	})
}

// allVerified gates forward progression on the given document category.
func allVerified(ctx context.Context, docs document.Repository, ownerID uint64, cat document.Category) error {
	unverified, err := docs.ListUnverified(ctx, document.OwnerZoning, ownerID, cat)
	if err != nil {
		return err
	}
	if len(unverified) == 0 {
		return nil
	}
	names := make([]string, 0, len(unverified))
	for _, d := range unverified {
		names = append(names, d.FileName)
	}
	return &document.PendingError{Names: names}
}

func toDTO(a *zoning.Application) *ApplicationDTO {
	return &ApplicationDTO{
		ApplicationNo:      a.ApplicationNo,
		Status:             string(a.Status),
		ApplicantName:      a.ApplicantName,
		ApplicantEmail:     a.ApplicantEmail,
		ApplicantPhone:     a.ApplicantPhone,
		ApplicantAddress:   a.ApplicantAddr,
		ProjectDescription: a.ProjectDescription,
		ProjectAddress:     a.ProjectAddress,
		TotalFloorAreaSqm:  a.TotalFloorAreaSqm.StringFixed(2),
		ApplicationFee:     a.ApplicationFee.StringFixed(2),
		BaseFee:            a.BaseFee.StringFixed(2),
		ProcessingFee:      a.ProcessingFee.StringFixed(2),
		TotalFee:           a.TotalFee.StringFixed(2),
		DecisionNote:       a.DecisionNote,
		SubmittedAt:        a.SubmittedAt,
		ReviewedAt:         a.ReviewedAt,
		ApprovedAt:         a.ApprovedAt,
		RejectedAt:         a.RejectedAt,
		CreatedAt:          a.CreatedAt,
	}
}
