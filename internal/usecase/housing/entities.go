package housing

import (
	"time"

	"egov-portal-backend/internal/domain/document"
	"egov-portal-backend/internal/domain/history"
	"egov-portal-backend/internal/domain/housing"
)

type CreateInput struct {
	ApplicantName    string  `json:"applicant_name"`
	ApplicantEmail   string  `json:"applicant_email"`
	ApplicantPhone   string  `json:"applicant_phone"`
	ApplicantAddress string  `json:"applicant_address"`
	HouseholdSize    int     `json:"household_size"`
	MonthlyIncome    float64 `json:"monthly_income"`
	CurrentDwelling  string  `json:"current_dwelling"`
}

type ScheduleInspectionInput struct {
	InspectorID   uint64    `json:"inspector_id"`
	ScheduledDate time.Time `json:"scheduled_date"`
}

type ApplicationDTO struct {
	ApplicationNo    string     `json:"application_no"`
	Status           string     `json:"status"`
	ApplicantName    string     `json:"applicant_name"`
	ApplicantEmail   string     `json:"applicant_email"`
	ApplicantPhone   string     `json:"applicant_phone"`
	ApplicantAddress string     `json:"applicant_address"`
	HouseholdSize    int        `json:"household_size"`
	MonthlyIncome    string     `json:"monthly_income"`
	CurrentDwelling  string     `json:"current_dwelling"`
	DecisionNote     string     `json:"decision_note,omitempty"`
	SubmittedAt      *time.Time `json:"submitted_at,omitempty"`
	ReviewedAt       *time.Time `json:"reviewed_at,omitempty"`
	ApprovedAt       *time.Time `json:"approved_at,omitempty"`
	RejectedAt       *time.Time `json:"rejected_at,omitempty"`
	WithdrawnAt      *time.Time `json:"withdrawn_at,omitempty"`
	ClosedAt         *time.Time `json:"closed_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
}

type InspectionDTO struct {
	InspectorID   uint64     `json:"inspector_id"`
	ScheduledDate time.Time  `json:"scheduled_date"`
	Status        string     `json:"status"`
	Findings      string     `json:"findings,omitempty"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
}

type DocumentDTO struct {
	DocID              string     `json:"doc_id"`
	DocType            string     `json:"doc_type"`
	FileName           string     `json:"file_name"`
	FileSize           int64      `json:"file_size"`
	MimeType           string     `json:"mime_type"`
	VerificationStatus string     `json:"verification_status"`
	ReviewRemarks      string     `json:"review_remarks,omitempty"`
	ReviewedAt         *time.Time `json:"reviewed_at,omitempty"`
	UploadedAt         time.Time  `json:"uploaded_at"`
}

type HistoryDTO struct {
	Action    string    `json:"action"`
	OldValue  string    `json:"old_value,omitempty"`
	NewValue  string    `json:"new_value,omitempty"`
	Remarks   string    `json:"remarks,omitempty"`
	ActorID   *uint64   `json:"actor_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type DetailDTO struct {
	ApplicationDTO
	Documents   []DocumentDTO   `json:"documents"`
	Inspections []InspectionDTO `json:"inspections"`
	History     []HistoryDTO    `json:"history"`
}

func toDocumentDTOs(docs []document.Document) []DocumentDTO {
	out := make([]DocumentDTO, 0, len(docs))
	for _, d := range docs {
		out = append(out, DocumentDTO{
			DocID:              d.DocID,
			DocType:            d.DocType,
			FileName:           d.FileName,
			FileSize:           d.FileSize,
			MimeType:           d.MimeType,
			VerificationStatus: string(d.VerificationStatus),
			ReviewRemarks:      d.ReviewRemarks,
			ReviewedAt:         d.ReviewedAt,
			UploadedAt:         d.CreatedAt,
		})
	}
	return out
}

func toInspectionDTOs(list []housing.Inspection) []InspectionDTO {
	out := make([]InspectionDTO, 0, len(list))
	for _, i := range list {
		out = append(out, InspectionDTO{
			InspectorID:   i.InspectorID,
			ScheduledDate: i.ScheduledDate,
			Status:        string(i.Status),
			Findings:      i.Findings,
			CompletedAt:   i.CompletedAt,
		})
	}
	return out
}

func toHistoryDTOs(entries []history.Entry) []HistoryDTO {
	out := make([]HistoryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, HistoryDTO{
			Action:    string(history.ParseAction(string(e.Action))),
			OldValue:  e.OldValue,
			NewValue:  e.NewValue,
			Remarks:   e.Remarks,
			ActorID:   e.ActorID,
			CreatedAt: e.CreatedAt,
		})
	}
	return out
}
