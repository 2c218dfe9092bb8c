package housing

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrNotFound          = errors.New("housing application not found")
	ErrInvalidTransition = errors.New("status does not permit this action")
	ErrRemarksRequired   = errors.New("remarks are required")
	ErrInspectionOpen    = errors.New("an inspection is still scheduled")
	ErrNoOpenInspection  = errors.New("no scheduled inspection to complete")
	ErrNotOwner          = errors.New("application belongs to another citizen")
	ErrInvalidInput      = errors.New("invalid input")
)

type Status string

// Canonical status set. eligibility_check was removed from the workflow and
// is treated as an import concern, not a runtime status.
const (
	StatusDraft                Status = "draft"
	StatusSubmitted            Status = "submitted"
	StatusDocumentVerification Status = "document_verification"
	StatusFieldInspection      Status = "field_inspection"
	StatusFinalReview          Status = "final_review"
	StatusApproved             Status = "approved"
	StatusRejected             Status = "rejected"
	StatusInfoRequested        Status = "info_requested"
	StatusOnHold               Status = "on_hold"
	StatusAppeal               Status = "appeal"
	StatusWithdrawn            Status = "withdrawn"
	StatusOfferIssued          Status = "offer_issued"
	StatusBeneficiaryAssigned  Status = "beneficiary_assigned"
	StatusClosed               Status = "closed"
)

// Terminal statuses admit no staff transition, with appeal as the single
// modeled exception from rejected.
func (s Status) Terminal() bool {
	return s == StatusRejected || s == StatusWithdrawn || s == StatusClosed
}

func (s Status) Valid() bool {
	switch s {
	case StatusDraft, StatusSubmitted, StatusDocumentVerification,
		StatusFieldInspection, StatusFinalReview, StatusApproved, StatusRejected,
		StatusInfoRequested, StatusOnHold, StatusAppeal, StatusWithdrawn,
		StatusOfferIssued, StatusBeneficiaryAssigned, StatusClosed:
		return true
	}
	return false
}

type Application struct {
	ID            uint64 `gorm:"primaryKey;column:id"`
	ApplicationNo string `gorm:"column:application_no;size:32;not null;uniqueIndex:ux_housing_application_no"`

	ApplicantUserID uint64 `gorm:"column:applicant_user_id;not null;index"`
	ApplicantName   string `gorm:"column:applicant_name;size:255;not null"`
	ApplicantEmail  string `gorm:"column:applicant_email;size:255;not null"`
	ApplicantPhone  string `gorm:"column:applicant_phone;size:32"`
	ApplicantAddr   string `gorm:"column:applicant_address;type:text"`

	HouseholdSize   int             `gorm:"column:household_size"`
	MonthlyIncome   decimal.Decimal `gorm:"column:monthly_income;type:decimal(12,2)"`
	CurrentDwelling string          `gorm:"column:current_dwelling;type:text"`

	Status          Status  `gorm:"column:status;type:enum('draft','submitted','document_verification','field_inspection','final_review','approved','rejected','info_requested','on_hold','appeal','withdrawn','offer_issued','beneficiary_assigned','closed');default:'draft'"`
	AssignedStaffID *uint64 `gorm:"column:assigned_staff_id;index"`
	DecisionNote    string  `gorm:"column:decision_note;type:text"`

	SubmittedAt *time.Time `gorm:"column:submitted_at"`
	ReviewedAt  *time.Time `gorm:"column:reviewed_at"`
	ApprovedAt  *time.Time `gorm:"column:approved_at"`
	RejectedAt  *time.Time `gorm:"column:rejected_at"`
	WithdrawnAt *time.Time `gorm:"column:withdrawn_at"`
	ClosedAt    *time.Time `gorm:"column:closed_at"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Application) TableName() string { return "housing_applications" }

type InspectionStatus string

const (
	InspectionScheduled InspectionStatus = "scheduled"
	InspectionCompleted InspectionStatus = "completed"
	InspectionCancelled InspectionStatus = "cancelled"
)

type Inspection struct {
	ID            uint64           `gorm:"primaryKey;column:id"`
	ApplicationID uint64           `gorm:"column:application_id;not null;index"`
	InspectorID   uint64           `gorm:"column:inspector_id;not null"`
	ScheduledDate time.Time        `gorm:"column:scheduled_date;type:date;not null"`
	Status        InspectionStatus `gorm:"column:status;type:enum('scheduled','completed','cancelled');default:'scheduled'"`
	Findings      string           `gorm:"column:findings;type:text"`
	CompletedAt   *time.Time       `gorm:"column:completed_at"`
	CreatedAt     time.Time        `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time        `gorm:"column:updated_at;autoUpdateTime"`
}

func (Inspection) TableName() string { return "inspections" }

type OccupancyStatus string

const (
	OccupancyActive      OccupancyStatus = "active"
	OccupancyEnded       OccupancyStatus = "ended"
	OccupancyTerminated  OccupancyStatus = "terminated"
	OccupancyTransferred OccupancyStatus = "transferred"
)

// OccupancyRecord tracks a beneficiary's tenure once an application reaches
// beneficiary_assigned. It has its own lifecycle, independent of the
// application's.
type OccupancyRecord struct {
	ID            uint64          `gorm:"primaryKey;column:id"`
	ApplicationID uint64          `gorm:"column:application_id;not null;index"`
	BeneficiaryID uint64          `gorm:"column:beneficiary_id;not null"`
	UnitIdentifier string         `gorm:"column:unit_identifier;size:64;not null"`
	Status        OccupancyStatus `gorm:"column:status;type:enum('active','ended','terminated','transferred');default:'active'"`
	StartedAt     time.Time       `gorm:"column:started_at"`
	EndedAt       *time.Time      `gorm:"column:ended_at"`
	EndReason     string          `gorm:"column:end_reason;type:text"`
	CreatedAt     time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}

func (OccupancyRecord) TableName() string { return "occupancy_records" }
