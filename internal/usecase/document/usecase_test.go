package document

import (
	"context"
	"errors"
	"strings"
	"testing"

	"egov-portal-backend/internal/domain/document"
	"egov-portal-backend/internal/domain/history"
	"egov-portal-backend/internal/domain/housing"
	"egov-portal-backend/internal/domain/uow"
	"egov-portal-backend/internal/domain/user"
	"egov-portal-backend/internal/domain/workflow"
	"egov-portal-backend/internal/domain/zoning"
	"egov-portal-backend/internal/testutil/documentmock"
	"egov-portal-backend/internal/testutil/historymock"
	"egov-portal-backend/internal/testutil/housingmock"
	"egov-portal-backend/internal/testutil/uowmock"
	"egov-portal-backend/internal/testutil/zoningmock"
)

var (
	citizen = user.Actor{ID: 10, UserID: strings.Repeat("a", 32), Role: user.RoleCitizen}
	staff   = user.Actor{ID: 20, UserID: strings.Repeat("b", 32), Role: user.RoleZoningStaff}
	hsStaff = user.Actor{ID: 21, UserID: strings.Repeat("f", 32), Role: user.RoleHousingStaff}
)

const (
	zoningNo  = "ZC-4F2A9C1B3D0E"
	housingNo = "HB-7A1C9B2D4E0F"
)

var pdfFile = FileMeta{FileName: "deed.pdf", FilePath: "/uploads/deed.pdf", FileSize: 2048, MimeType: "application/pdf"}

type fixture struct {
	uc   *Usecase
	docs *documentmock.Repo
	hist *historymock.Repo

	zoningApp  *zoning.Application
	housingApp *housing.Application
}

func newFixture(zStatus zoning.Status, hStatus housing.Status) *fixture {
	zApp := &zoning.Application{ID: 1, ApplicationNo: zoningNo, ApplicantUserID: citizen.ID, Status: zStatus}
	hApp := &housing.Application{ID: 2, ApplicationNo: housingNo, ApplicantUserID: citizen.ID, Status: hStatus}

	zr := &zoningmock.Repo{
		GetByApplicationNoForUpdateFn: func(_ context.Context, no string) (*zoning.Application, error) {
			if no != zApp.ApplicationNo {
				return nil, zoning.ErrNotFound
			}
			return zApp, nil
		},
	}
	hr := &housingmock.Repo{
		GetByApplicationNoForUpdateFn: func(_ context.Context, no string) (*housing.Application, error) {
			if no != hApp.ApplicationNo {
				return nil, housing.ErrNotFound
			}
			return hApp, nil
		},
	}
	docs := &documentmock.Repo{}
	hist := &historymock.Repo{}
	unit := uowmock.Passthrough(uow.Repos{Zoning: zr, Housing: hr, Documents: docs, History: hist})
	return &fixture{
		uc:         NewUsecase(unit),
		docs:       docs,
		hist:       hist,
		zoningApp:  zApp,
		housingApp: hApp,
	}
}

func pendingDoc(owner document.OwnerType, ownerID uint64) *document.Document {
	return &document.Document{
		ID:                 7,
		DocID:              strings.Repeat("d", 32),
		OwnerType:          owner,
		OwnerID:            ownerID,
		DocType:            "land_deed",
		Category:           document.CategoryInitialReview,
		FileName:           "deed.pdf",
		VerificationStatus: document.VerificationPending,
	}
}

func TestUpload(t *testing.T) {
	t.Run("zoning upload defaults to initial review category", func(t *testing.T) {
		f := newFixture(zoning.StatusPending, housing.StatusDraft)
		var created *document.Document
		f.docs.CreateFn = func(_ context.Context, d *document.Document) error {
			created = d
			return nil
		}
		dto, err := f.uc.Upload(context.Background(), citizen, document.OwnerZoning, zoningNo, UploadInput{
			DocType: "land_deed",
			File:    pdfFile,
		})
		if err != nil {
			t.Fatalf("Upload: %v", err)
		}
		if dto.VerificationStatus != string(document.VerificationPending) {
			t.Fatalf("status = %s", dto.VerificationStatus)
		}
		if created.Category != document.CategoryInitialReview || created.OwnerID != f.zoningApp.ID {
			t.Fatalf("created = %+v", created)
		}
		if len(created.DocID) != 32 {
			t.Fatalf("doc id = %q", created.DocID)
		}
		rec := f.hist.Recorded()
		if len(rec) != 1 || rec[0].Action != history.ActionDocumentUploaded || rec[0].NewValue != "deed.pdf" {
			t.Fatalf("unexpected history: %+v", rec)
		}
	})

	t.Run("staff cannot upload", func(t *testing.T) {
		f := newFixture(zoning.StatusPending, housing.StatusDraft)
		if _, err := f.uc.Upload(context.Background(), staff, document.OwnerZoning, zoningNo, UploadInput{
			DocType: "land_deed", File: pdfFile,
		}); !errors.Is(err, workflow.ErrForbidden) {
			t.Fatalf("want ErrForbidden, got %v", err)
		}
	})

	t.Run("housing upload binds to the housing application", func(t *testing.T) {
		f := newFixture(zoning.StatusPending, housing.StatusDraft)
		var created *document.Document
		f.docs.CreateFn = func(_ context.Context, d *document.Document) error {
			created = d
			return nil
		}
		if _, err := f.uc.Upload(context.Background(), citizen, document.OwnerHousing, housingNo, UploadInput{
			DocType: "income_statement", File: pdfFile,
		}); err != nil {
			t.Fatalf("Upload: %v", err)
		}
		if created.OwnerType != document.OwnerHousing || created.OwnerID != f.housingApp.ID {
			t.Fatalf("created = %+v", created)
		}
	})
}

func TestVerify(t *testing.T) {
	t.Run("approves a pending document", func(t *testing.T) {
		f := newFixture(zoning.StatusInitialReview, housing.StatusDraft)
		d := pendingDoc(document.OwnerZoning, f.zoningApp.ID)
		f.docs.GetByDocIDFn = func(context.Context, string) (*document.Document, error) { return d, nil }

		dto, err := f.uc.Verify(context.Background(), staff, document.OwnerZoning, zoningNo, d.DocID, DecisionApproved, "")
		if err != nil {
			t.Fatalf("Verify: %v", err)
		}
		if dto.VerificationStatus != string(document.VerificationApproved) {
			t.Fatalf("status = %s", dto.VerificationStatus)
		}
		if d.ReviewedBy == nil || *d.ReviewedBy != staff.ID || d.ReviewedAt == nil {
			t.Fatalf("review fields = %+v", d)
		}
		rec := f.hist.Recorded()
		if len(rec) != 1 || rec[0].Action != history.ActionDocumentVerified {
			t.Fatalf("unexpected history: %+v", rec)
		}
	})

	t.Run("rejection requires remarks", func(t *testing.T) {
		f := newFixture(zoning.StatusInitialReview, housing.StatusDraft)
		if _, err := f.uc.Verify(context.Background(), staff, document.OwnerZoning, zoningNo, "x", DecisionRejected, " "); !errors.Is(err, document.ErrRemarksRequired) {
			t.Fatalf("want ErrRemarksRequired, got %v", err)
		}
	})

	t.Run("rejection stores remarks", func(t *testing.T) {
		f := newFixture(zoning.StatusInitialReview, housing.StatusDraft)
		d := pendingDoc(document.OwnerZoning, f.zoningApp.ID)
		f.docs.GetByDocIDFn = func(context.Context, string) (*document.Document, error) { return d, nil }

		dto, err := f.uc.Verify(context.Background(), staff, document.OwnerZoning, zoningNo, d.DocID, DecisionRejected, "scan is cropped")
		if err != nil {
			t.Fatalf("Verify: %v", err)
		}
		if dto.VerificationStatus != string(document.VerificationRejected) || dto.ReviewRemarks != "scan is cropped" {
			t.Fatalf("dto = %+v", dto)
		}
		rec := f.hist.Recorded()
		if len(rec) != 1 || rec[0].Action != history.ActionDocumentRejected {
			t.Fatalf("unexpected history: %+v", rec)
		}
	})

	t.Run("only pending documents", func(t *testing.T) {
		f := newFixture(zoning.StatusInitialReview, housing.StatusDraft)
		d := pendingDoc(document.OwnerZoning, f.zoningApp.ID)
		d.VerificationStatus = document.VerificationApproved
		f.docs.GetByDocIDFn = func(context.Context, string) (*document.Document, error) { return d, nil }

		if _, err := f.uc.Verify(context.Background(), staff, document.OwnerZoning, zoningNo, d.DocID, DecisionApproved, ""); !errors.Is(err, document.ErrNotPending) {
			t.Fatalf("want ErrNotPending, got %v", err)
		}
	})

	t.Run("application must be in a reviewing status", func(t *testing.T) {
		f := newFixture(zoning.StatusPending, housing.StatusDraft)
		d := pendingDoc(document.OwnerZoning, f.zoningApp.ID)
		f.docs.GetByDocIDFn = func(context.Context, string) (*document.Document, error) { return d, nil }

		if _, err := f.uc.Verify(context.Background(), staff, document.OwnerZoning, zoningNo, d.DocID, DecisionApproved, ""); !errors.Is(err, zoning.ErrInvalidTransition) {
			t.Fatalf("want ErrInvalidTransition, got %v", err)
		}
	})

	t.Run("document owned by a different application", func(t *testing.T) {
		f := newFixture(zoning.StatusInitialReview, housing.StatusDraft)
		d := pendingDoc(document.OwnerZoning, 999)
		f.docs.GetByDocIDFn = func(context.Context, string) (*document.Document, error) { return d, nil }

		if _, err := f.uc.Verify(context.Background(), staff, document.OwnerZoning, zoningNo, d.DocID, DecisionApproved, ""); !errors.Is(err, document.ErrOwnerMismatch) {
			t.Fatalf("want ErrOwnerMismatch, got %v", err)
		}
	})

	t.Run("housing documents verify in document_verification", func(t *testing.T) {
		f := newFixture(zoning.StatusPending, housing.StatusDocumentVerification)
		d := pendingDoc(document.OwnerHousing, f.housingApp.ID)
		f.docs.GetByDocIDFn = func(context.Context, string) (*document.Document, error) { return d, nil }

		dto, err := f.uc.Verify(context.Background(), hsStaff, document.OwnerHousing, housingNo, d.DocID, DecisionApproved, "")
		if err != nil {
			t.Fatalf("Verify: %v", err)
		}
		if dto.VerificationStatus != string(document.VerificationApproved) {
			t.Fatalf("status = %s", dto.VerificationStatus)
		}
	})
}

func TestReupload(t *testing.T) {
	t.Run("rejected document resets to pending", func(t *testing.T) {
		f := newFixture(zoning.StatusRequiresChanges, housing.StatusDraft)
		d := pendingDoc(document.OwnerZoning, f.zoningApp.ID)
		d.VerificationStatus = document.VerificationRejected
		d.ReviewedBy = &staff.ID
		d.ReviewRemarks = "scan is cropped"
		f.docs.GetByDocIDFn = func(context.Context, string) (*document.Document, error) { return d, nil }

		dto, err := f.uc.Reupload(context.Background(), citizen, document.OwnerZoning, zoningNo, d.DocID, FileMeta{
			FileName: "deed-v2.pdf", FilePath: "/uploads/deed-v2.pdf", FileSize: 4096, MimeType: "application/pdf",
		})
		if err != nil {
			t.Fatalf("Reupload: %v", err)
		}
		if dto.VerificationStatus != string(document.VerificationPending) || dto.FileName != "deed-v2.pdf" {
			t.Fatalf("dto = %+v", dto)
		}
		if d.ReviewedBy != nil || d.ReviewedAt != nil || d.ReviewRemarks != "" {
			t.Fatalf("review fields not cleared: %+v", d)
		}
		rec := f.hist.Recorded()
		if len(rec) != 1 || rec[0].Action != history.ActionDocumentReuploaded || rec[0].OldValue != "deed.pdf" {
			t.Fatalf("unexpected history: %+v", rec)
		}
	})

	t.Run("only rejected documents", func(t *testing.T) {
		f := newFixture(zoning.StatusRequiresChanges, housing.StatusDraft)
		d := pendingDoc(document.OwnerZoning, f.zoningApp.ID)
		f.docs.GetByDocIDFn = func(context.Context, string) (*document.Document, error) { return d, nil }

		if _, err := f.uc.Reupload(context.Background(), citizen, document.OwnerZoning, zoningNo, d.DocID, pdfFile); !errors.Is(err, document.ErrNotRejected) {
			t.Fatalf("want ErrNotRejected, got %v", err)
		}
	})

	t.Run("unknown application", func(t *testing.T) {
		f := newFixture(zoning.StatusRequiresChanges, housing.StatusDraft)
		if _, err := f.uc.Reupload(context.Background(), citizen, document.OwnerZoning, "ZC-NOPE", "x", pdfFile); !errors.Is(err, zoning.ErrNotFound) {
			t.Fatalf("want ErrNotFound, got %v", err)
		}
	})
}
