package housing

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"egov-portal-backend/internal/domain/document"
	"egov-portal-backend/internal/domain/history"
	"egov-portal-backend/internal/domain/housing"
	"egov-portal-backend/internal/domain/uow"
	"egov-portal-backend/internal/domain/user"
	"egov-portal-backend/internal/domain/workflow"
	"egov-portal-backend/pkg/id"
)

type Usecase struct {
	repo housing.Repository
	docs document.Repository
	hist history.Repository
	uow  uow.UnitOfWork
}

func NewUsecase(repo housing.Repository, docs document.Repository, hist history.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{repo: repo, docs: docs, hist: hist, uow: tx}
}

// Create opens a draft beneficiary application for the citizen.
func (u *Usecase) Create(ctx context.Context, actor user.Actor, in CreateInput) (*ApplicationDTO, error) {
	if err := workflow.Check(actor, workflow.HousingSubmit); err != nil {
		return nil, err
	}
	if strings.TrimSpace(in.ApplicantName) == "" || strings.TrimSpace(in.ApplicantEmail) == "" || in.HouseholdSize <= 0 {
		return nil, housing.ErrInvalidInput
	}

	a := &housing.Application{
		ApplicationNo:   id.NewRef("HB"),
		ApplicantUserID: actor.ID,
		ApplicantName:   in.ApplicantName,
		ApplicantEmail:  in.ApplicantEmail,
		ApplicantPhone:  in.ApplicantPhone,
		ApplicantAddr:   in.ApplicantAddress,
		HouseholdSize:   in.HouseholdSize,
		MonthlyIncome:   decimal.NewFromFloat(in.MonthlyIncome),
		CurrentDwelling: in.CurrentDwelling,
		Status:          housing.StatusDraft,
	}

	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Housing.Create(ctx, a); err != nil {
			return err
		}
		return r.History.Append(ctx, &history.Entry{
			OwnerType: string(document.OwnerHousing),
			OwnerID:   a.ID,
			Action:    history.ActionStatusChanged,
			NewValue:  string(housing.StatusDraft),
			ActorID:   &actor.ID,
		})
	})
	if err != nil {
		return nil, err
	}
	return toDTO(a), nil
}

// Submit moves draft -> submitted; only the owning citizen may submit.
func (u *Usecase) Submit(ctx context.Context, actor user.Actor, applicationNo string) (*ApplicationDTO, error) {
	if err := workflow.Check(actor, workflow.HousingSubmit); err != nil {
		return nil, err
	}
	return u.mutate(ctx, applicationNo, func(r uow.Repos, a *housing.Application) error {
		if err := u.mustOwn(actor, a); err != nil {
			return err
		}
		if a.Status != housing.StatusDraft {
			return housing.ErrInvalidTransition
		}
		now := time.Now().UTC()
		a.SubmittedAt = &now
		return u.setStatus(ctx, r, a, actor, housing.StatusSubmitted, "", history.ActionStatusChanged, nil)
	})
}

// StartReview moves submitted -> document_verification.
func (u *Usecase) StartReview(ctx context.Context, actor user.Actor, applicationNo string) (*ApplicationDTO, error) {
	if err := workflow.Check(actor, workflow.HousingStartReview); err != nil {
		return nil, err
	}
	return u.mutate(ctx, applicationNo, func(r uow.Repos, a *housing.Application) error {
		if a.Status != housing.StatusSubmitted {
			return housing.ErrInvalidTransition
		}
		a.AssignedStaffID = &actor.ID
		return u.setStatus(ctx, r, a, actor, housing.StatusDocumentVerification, "", history.ActionStatusChanged, nil)
	})
}

// ScheduleInspection moves document_verification -> field_inspection once
// every attached document is verified, opening an Inspection as a side effect.
func (u *Usecase) ScheduleInspection(ctx context.Context, actor user.Actor, applicationNo string, in ScheduleInspectionInput) (*ApplicationDTO, error) {
	if err := workflow.Check(actor, workflow.HousingScheduleInspect); err != nil {
		return nil, err
	}
	if in.InspectorID == 0 || in.ScheduledDate.IsZero() {
		return nil, fmt.Errorf("%w: inspector and scheduled date are required", housing.ErrInvalidInput)
	}
	return u.mutate(ctx, applicationNo, func(r uow.Repos, a *housing.Application) error {
		if a.Status != housing.StatusDocumentVerification {
			return housing.ErrInvalidTransition
		}
		// A hold can bounce the application back here with its inspection
		// still scheduled: that one must complete before another is opened.
		if _, err := r.Housing.GetOpenInspection(ctx, a.ID); err == nil {
			return housing.ErrInspectionOpen
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		if err := allVerified(ctx, r.Documents, a.ID); err != nil {
			return err
		}
		insp := &housing.Inspection{
			ApplicationID: a.ID,
			InspectorID:   in.InspectorID,
			ScheduledDate: in.ScheduledDate,
			Status:        housing.InspectionScheduled,
		}
		if err := r.Housing.CreateInspection(ctx, insp); err != nil {
			return err
		}
		return u.setStatus(ctx, r, a, actor, housing.StatusFieldInspection, "", history.ActionInspectionScheduled, nil)
	})
}

// CompleteInspection finishes the open inspection and moves
// field_inspection -> final_review. Unreachable while no inspection is open.
func (u *Usecase) CompleteInspection(ctx context.Context, actor user.Actor, applicationNo, findings string) (*ApplicationDTO, error) {
	if err := workflow.Check(actor, workflow.HousingCompleteInspect); err != nil {
		return nil, err
	}
	return u.mutate(ctx, applicationNo, func(r uow.Repos, a *housing.Application) error {
		if a.Status != housing.StatusFieldInspection {
			return housing.ErrInvalidTransition
		}
		insp, err := r.Housing.GetOpenInspection(ctx, a.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return housing.ErrNoOpenInspection
			}
			return err
		}
		now := time.Now().UTC()
		insp.Status = housing.InspectionCompleted
		insp.Findings = findings
		insp.CompletedAt = &now
		if err := r.Housing.SaveInspection(ctx, insp); err != nil {
			return err
		}
		return u.setStatus(ctx, r, a, actor, housing.StatusFinalReview, findings, history.ActionInspectionCompleted, nil)
	})
}

// RequestInfo pauses forward progress so the citizen can upload more material.
func (u *Usecase) RequestInfo(ctx context.Context, actor user.Actor, applicationNo, remarks string) (*ApplicationDTO, error) {
	if err := workflow.Check(actor, workflow.HousingRequestInfo); err != nil {
		return nil, err
	}
	if strings.TrimSpace(remarks) == "" {
		return nil, housing.ErrRemarksRequired
	}
	return u.mutate(ctx, applicationNo, func(r uow.Repos, a *housing.Application) error {
		if a.Status != housing.StatusDocumentVerification {
			return housing.ErrInvalidTransition
		}
		return u.setStatus(ctx, r, a, actor, housing.StatusInfoRequested, remarks, history.ActionInfoRequested, nil)
	})
}

// ResumeReview re-enters document_verification from info_requested or on_hold.
func (u *Usecase) ResumeReview(ctx context.Context, actor user.Actor, applicationNo string) (*ApplicationDTO, error) {
	if err := workflow.Check(actor, workflow.HousingResumeReview); err != nil {
		return nil, err
	}
	return u.mutate(ctx, applicationNo, func(r uow.Repos, a *housing.Application) error {
		if a.Status != housing.StatusInfoRequested && a.Status != housing.StatusOnHold {
			return housing.ErrInvalidTransition
		}
		return u.setStatus(ctx, r, a, actor, housing.StatusDocumentVerification, "", history.ActionStatusChanged, nil)
	})
}

// Hold parks an in-review application.
func (u *Usecase) Hold(ctx context.Context, actor user.Actor, applicationNo, remarks string) (*ApplicationDTO, error) {
	if err := workflow.Check(actor, workflow.HousingHold); err != nil {
		return nil, err
	}
	if strings.TrimSpace(remarks) == "" {
		return nil, housing.ErrRemarksRequired
	}
	return u.mutate(ctx, applicationNo, func(r uow.Repos, a *housing.Application) error {
		switch a.Status {
		case housing.StatusDocumentVerification, housing.StatusFieldInspection, housing.StatusFinalReview:
		default:
			return housing.ErrInvalidTransition
		}
		return u.setStatus(ctx, r, a, actor, housing.StatusOnHold, remarks, history.ActionStatusChanged, nil)
	})
}

// Approve is a final decision; request metadata is captured in the audit log.
func (u *Usecase) Approve(ctx context.Context, actor user.Actor, applicationNo, note string, meta history.Meta) (*ApplicationDTO, error) {
	if err := workflow.Check(actor, workflow.HousingApprove); err != nil {
		return nil, err
	}
	if strings.TrimSpace(note) == "" {
		return nil, housing.ErrRemarksRequired
	}
	return u.mutate(ctx, applicationNo, func(r uow.Repos, a *housing.Application) error {
		if a.Status != housing.StatusFinalReview {
			return housing.ErrInvalidTransition
		}
		now := time.Now().UTC()
		a.ReviewedAt = &now
		a.ApprovedAt = &now
		a.DecisionNote = note
		return u.setStatus(ctx, r, a, actor, housing.StatusApproved, note, history.ActionStatusChanged, &meta)
	})
}

func (u *Usecase) Reject(ctx context.Context, actor user.Actor, applicationNo, reason string, meta history.Meta) (*ApplicationDTO, error) {
	if err := workflow.Check(actor, workflow.HousingReject); err != nil {
		return nil, err
	}
	if strings.TrimSpace(reason) == "" {
		return nil, housing.ErrRemarksRequired
	}
	return u.mutate(ctx, applicationNo, func(r uow.Repos, a *housing.Application) error {
		if a.Status != housing.StatusFinalReview {
			return housing.ErrInvalidTransition
		}
		now := time.Now().UTC()
		a.ReviewedAt = &now
		a.RejectedAt = &now
		a.DecisionNote = reason
		return u.setStatus(ctx, r, a, actor, housing.StatusRejected, reason, history.ActionStatusChanged, &meta)
	})
}

// Withdraw is citizen-initiated and available from any state that has not yet
// reached a terminal or beneficiary_assigned status.
func (u *Usecase) Withdraw(ctx context.Context, actor user.Actor, applicationNo, reason string, meta history.Meta) (*ApplicationDTO, error) {
	if err := workflow.Check(actor, workflow.HousingWithdraw); err != nil {
		return nil, err
	}
	return u.mutate(ctx, applicationNo, func(r uow.Repos, a *housing.Application) error {
		if err := u.mustOwn(actor, a); err != nil {
			return err
		}
		if a.Status.Terminal() || a.Status == housing.StatusBeneficiaryAssigned {
			return housing.ErrInvalidTransition
		}
		now := time.Now().UTC()
		a.WithdrawnAt = &now
		return u.setStatus(ctx, r, a, actor, housing.StatusWithdrawn, reason, history.ActionWithdrawn, &meta)
	})
}

// Appeal is the single modeled exception out of the rejected terminal state.
func (u *Usecase) Appeal(ctx context.Context, actor user.Actor, applicationNo, grounds string) (*ApplicationDTO, error) {
	if err := workflow.Check(actor, workflow.HousingAppeal); err != nil {
		return nil, err
	}
	if strings.TrimSpace(grounds) == "" {
		return nil, housing.ErrRemarksRequired
	}
	return u.mutate(ctx, applicationNo, func(r uow.Repos, a *housing.Application) error {
		if err := u.mustOwn(actor, a); err != nil {
			return err
		}
		if a.Status != housing.StatusRejected {
			return housing.ErrInvalidTransition
		}
		return u.setStatus(ctx, r, a, actor, housing.StatusAppeal, grounds, history.ActionAppealed, nil)
	})
}

// ReopenAppeal sends an appealed application back to final review.
func (u *Usecase) ReopenAppeal(ctx context.Context, actor user.Actor, applicationNo string) (*ApplicationDTO, error) {
	if err := workflow.Check(actor, workflow.HousingReopenAppeal); err != nil {
		return nil, err
	}
	return u.mutate(ctx, applicationNo, func(r uow.Repos, a *housing.Application) error {
		if a.Status != housing.StatusAppeal {
			return housing.ErrInvalidTransition
		}
		return u.setStatus(ctx, r, a, actor, housing.StatusFinalReview, "", history.ActionStatusChanged, nil)
	})
}

func (u *Usecase) IssueOffer(ctx context.Context, actor user.Actor, applicationNo string) (*ApplicationDTO, error) {
	if err := workflow.Check(actor, workflow.HousingIssueOffer); err != nil {
		return nil, err
	}
	return u.mutate(ctx, applicationNo, func(r uow.Repos, a *housing.Application) error {
		if a.Status != housing.StatusApproved {
			return housing.ErrInvalidTransition
		}
		return u.setStatus(ctx, r, a, actor, housing.StatusOfferIssued, "", history.ActionOfferIssued, nil)
	})
}

// AssignBeneficiary opens the occupancy record alongside the status change.
func (u *Usecase) AssignBeneficiary(ctx context.Context, actor user.Actor, applicationNo, unitIdentifier string) (*ApplicationDTO, error) {
	if err := workflow.Check(actor, workflow.HousingAssignBeneficiary); err != nil {
		return nil, err
	}
	if strings.TrimSpace(unitIdentifier) == "" {
		return nil, fmt.Errorf("%w: unit identifier is required", housing.ErrInvalidInput)
	}
	return u.mutate(ctx, applicationNo, func(r uow.Repos, a *housing.Application) error {
		if a.Status != housing.StatusOfferIssued {
			return housing.ErrInvalidTransition
		}
		occ := &housing.OccupancyRecord{
			ApplicationID:  a.ID,
			BeneficiaryID:  a.ApplicantUserID,
			UnitIdentifier: unitIdentifier,
			Status:         housing.OccupancyActive,
			StartedAt:      time.Now().UTC(),
		}
		if err := r.Housing.CreateOccupancy(ctx, occ); err != nil {
			return err
		}
		return u.setStatus(ctx, r, a, actor, housing.StatusBeneficiaryAssigned, unitIdentifier, history.ActionBeneficiaryAssigned, nil)
	})
}

func (u *Usecase) Close(ctx context.Context, actor user.Actor, applicationNo string) (*ApplicationDTO, error) {
	if err := workflow.Check(actor, workflow.HousingClose); err != nil {
		return nil, err
	}
	return u.mutate(ctx, applicationNo, func(r uow.Repos, a *housing.Application) error {
		if a.Status != housing.StatusBeneficiaryAssigned {
			return housing.ErrInvalidTransition
		}
		now := time.Now().UTC()
		a.ClosedAt = &now
		return u.setStatus(ctx, r, a, actor, housing.StatusClosed, "", history.ActionStatusChanged, nil)
	})
}

// EndOccupancy moves the occupancy record out of active, with its own
// audit entry; the application itself is untouched.
func (u *Usecase) EndOccupancy(ctx context.Context, actor user.Actor, applicationNo string, next housing.OccupancyStatus, reason string) error {
	if err := workflow.Check(actor, workflow.HousingAssignBeneficiary); err != nil {
		return err
	}
	switch next {
	case housing.OccupancyEnded, housing.OccupancyTerminated, housing.OccupancyTransferred:
	default:
		return fmt.Errorf("%w: invalid occupancy end status", housing.ErrInvalidInput)
	}
	return u.uow.WithinHousingTx(ctx, applicationNo, func(r uow.Repos, a *housing.Application) error {
		occ, err := r.Housing.GetOccupancyByApplication(ctx, a.ID)
		if err != nil {
			return err
		}
		if occ.Status != housing.OccupancyActive {
			return housing.ErrInvalidTransition
		}
		old := occ.Status
		now := time.Now().UTC()
		occ.Status = next
		occ.EndedAt = &now
		occ.EndReason = reason
		if err := r.Housing.SaveOccupancy(ctx, occ); err != nil {
			return err
		}
		return r.History.Append(ctx, &history.Entry{
			OwnerType: string(document.OwnerHousing),
			OwnerID:   a.ID,
			Action:    history.ActionOccupancyChanged,
			OldValue:  string(old),
			NewValue:  string(next),
			Remarks:   reason,
			ActorID:   &actor.ID,
		})
	})
}

// Get returns the full detail. Citizens only ever see their own applications.
func (u *Usecase) Get(ctx context.Context, actor user.Actor, applicationNo string) (*DetailDTO, error) {
	a, err := u.repo.GetByApplicationNo(ctx, applicationNo)
	if err != nil {
		return nil, housing.ErrNotFound
	}
	if err := u.mustOwn(actor, a); err != nil {
		return nil, err
	}
	docs, err := u.docs.ListByOwner(ctx, document.OwnerHousing, a.ID)
	if err != nil {
		return nil, err
	}
	inspections, err := u.repo.ListInspections(ctx, a.ID)
	if err != nil {
		return nil, err
	}
	entries, err := u.hist.ListByOwner(ctx, string(document.OwnerHousing), a.ID)
	if err != nil {
		return nil, err
	}
	return &DetailDTO{
		ApplicationDTO: *toDTO(a),
		Documents:      toDocumentDTOs(docs),
		Inspections:    toInspectionDTOs(inspections),
		History:        toHistoryDTOs(entries),
	}, nil
}

func (u *Usecase) List(ctx context.Context, actor user.Actor, f housing.ListFilter) ([]ApplicationDTO, error) {
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

func (u *Usecase) mutate(ctx context.Context, applicationNo string, fn func(r uow.Repos, a *housing.Application) error) (*ApplicationDTO, error) {
	if u.uow == nil {
		return nil, housing.ErrInvalidTransition
	}
	var dto *ApplicationDTO
	err := u.uow.WithinHousingTx(ctx, applicationNo, func(r uow.Repos, a *housing.Application) error {
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

func (u *Usecase) mustOwn(actor user.Actor, a *housing.Application) error {
	if actor.Role == user.RoleCitizen && a.ApplicantUserID != actor.ID {
		return housing.ErrNotOwner
	}
	return nil
}

func (u *Usecase) setStatus(ctx context.Context, r uow.Repos, a *housing.Application, actor user.Actor, next housing.Status, remarks string, action history.Action, meta *history.Meta) error {
	old := a.Status
	a.Status = next
	if err := r.Housing.Save(ctx, a); err != nil {
		return err
	}
	e := &history.Entry{
		OwnerType: string(document.OwnerHousing),
		OwnerID:   a.ID,
		Action:    action,
		OldValue:  string(old),
		NewValue:  string(next),
		Remarks:   remarks,
		ActorID:   &actor.ID,
	}
	if meta != nil {
		e.IPAddress = meta.IP
		e.UserAgent = meta.UserAgent
	}
	return r.History.Append(ctx, e)
}

// allVerified gates field inspection on every attached document being approved.
func allVerified(ctx context.Context, docs document.Repository, ownerID uint64) error {
	unverified, err := docs.ListUnverified(ctx, document.OwnerHousing, ownerID, "")
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

func toDTO(a *housing.Application) *ApplicationDTO {
	return &ApplicationDTO{
		ApplicationNo:    a.ApplicationNo,
		Status:           string(a.Status),
		ApplicantName:    a.ApplicantName,
		ApplicantEmail:   a.ApplicantEmail,
		ApplicantPhone:   a.ApplicantPhone,
		ApplicantAddress: a.ApplicantAddr,
		HouseholdSize:    a.HouseholdSize,
		MonthlyIncome:    a.MonthlyIncome.StringFixed(2),
		CurrentDwelling:  a.CurrentDwelling,
		DecisionNote:     a.DecisionNote,
		SubmittedAt:      a.SubmittedAt,
		ReviewedAt:       a.ReviewedAt,
		ApprovedAt:       a.ApprovedAt,
		RejectedAt:       a.RejectedAt,
		WithdrawnAt:      a.WithdrawnAt,
		ClosedAt:         a.ClosedAt,
		CreatedAt:        a.CreatedAt,
	}
}
