package zoning

import (
	"time"

	"egov-portal-backend/internal/domain/document"
	"egov-portal-backend/internal/domain/history"
)

type CreateInput struct {
	ApplicantName      string  `json:"applicant_name"`
	ApplicantEmail     string  `json:"applicant_email"`
	ApplicantPhone     string  `json:"applicant_phone"`
	ApplicantAddress   string  `json:"applicant_address"`
	ProjectDescription string  `json:"project_description"`
	ProjectAddress     string  `json:"project_address"`
	TotalFloorAreaSqm  float64 `json:"total_floor_area_sqm"`
}

type ApplicationDTO struct {
	ApplicationNo      string     `json:"application_no"`
	Status             string     `json:"status"`
	ApplicantName      string     `json:"applicant_name"`
	ApplicantEmail     string     `json:"applicant_email"`
	ApplicantPhone     string     `json:"applicant_phone"`
	ApplicantAddress   string     `json:"applicant_address"`
	ProjectDescription string     `json:"project_description"`
	ProjectAddress     string     `json:"project_address"`
	TotalFloorAreaSqm  string     `json:"total_floor_area_sqm"`
	ApplicationFee     string     `json:"application_fee"`
	BaseFee            string     `json:"base_fee"`
	ProcessingFee      string     `json:"processing_fee"`
	TotalFee           string     `json:"total_fee"`
	DecisionNote       string     `json:"decision_note,omitempty"`
	SubmittedAt        time.Time  `json:"submitted_at"`
	ReviewedAt         *time.Time `json:"reviewed_at,omitempty"`
	ApprovedAt         *time.Time `json:"approved_at,omitempty"`
	RejectedAt         *time.Time `json:"rejected_at,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
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
	Documents []DocumentDTO `json:"documents"`
	History   []HistoryDTO  `json:"history"`
}

func toDocumentDTOs(docs []document.Document) []DocumentDTO {
	out := make([]DocumentDTO, 0, len(docs))
	for _, d := range docs {
		out = append(out, DocumentDTO{
			DocID:              d.DocID,
			DocType:            d.DocType,
			Category:           string(d.Category),
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
