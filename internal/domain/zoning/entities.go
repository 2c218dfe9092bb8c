package zoning

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrNotFound          = errors.New("zoning application not found")
	ErrInvalidTransition = errors.New("status does not permit this action")
	ErrRemarksRequired   = errors.New("remarks are required")
	ErrInvalidInput      = errors.New("invalid input")
	ErrNotOwner          = errors.New("application belongs to another citizen")
)

type Status string

const (
	StatusPending          Status = "pending"
	StatusInitialReview    Status = "initial_review"
	StatusTechnicalReview  Status = "technical_review"
	StatusAwaitingApproval Status = "awaiting_approval"
	StatusApproved         Status = "approved"
	StatusRejected         Status = "rejected"
	StatusRequiresChanges  Status = "requires_changes"
)

// Terminal reports whether no further staff transition is defined.
func (s Status) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInitialReview, StatusTechnicalReview,
		StatusAwaitingApproval, StatusApproved, StatusRejected, StatusRequiresChanges:
		return true
	}
	return false
}

// Flat fee schedule plus the per-sqm processing rate. Fee fields are computed
// once at submission and never recomputed afterwards.
var (
	ApplicationFee = decimal.NewFromInt(250)
	BaseFee        = decimal.NewFromInt(400)
	ProcessingRate = decimal.NewFromInt(3)
)

// ComputeFees derives the processing and total fee from the floor area.
func ComputeFees(floorAreaSqm decimal.Decimal) (processing, total decimal.Decimal) {
	processing = floorAreaSqm.Mul(ProcessingRate).Round(2)
	total = ApplicationFee.Add(BaseFee).Add(processing).Round(2)
	return processing, total
}

type Application struct {
	ID            uint64 `gorm:"primaryKey;column:id"`
	ApplicationNo string `gorm:"column:application_no;size:32;not null;uniqueIndex:ux_zoning_application_no"`

	ApplicantUserID uint64 `gorm:"column:applicant_user_id;not null;index"`
	ApplicantName   string `gorm:"column:applicant_name;size:255;not null"`
	ApplicantEmail  string `gorm:"column:applicant_email;size:255;not null"`
	ApplicantPhone  string `gorm:"column:applicant_phone;size:32"`
	ApplicantAddr   string `gorm:"column:applicant_address;type:text"`

	ProjectDescription string          `gorm:"column:project_description;type:text"`
	ProjectAddress     string          `gorm:"column:project_address;type:text"`
	TotalFloorAreaSqm  decimal.Decimal `gorm:"column:total_floor_area_sqm;type:decimal(10,2)"`

	ApplicationFee decimal.Decimal `gorm:"column:application_fee;type:decimal(10,2)"`
	BaseFee        decimal.Decimal `gorm:"column:base_fee;type:decimal(10,2)"`
	ProcessingFee  decimal.Decimal `gorm:"column:processing_fee;type:decimal(10,2)"`
	TotalFee       decimal.Decimal `gorm:"column:total_fee;type:decimal(10,2)"`

	Status           Status  `gorm:"column:status;type:enum('pending','initial_review','technical_review','awaiting_approval','approved','rejected','requires_changes');default:'pending'"`
	AssignedStaffID  *uint64 `gorm:"column:assigned_staff_id;index"`
	TechnicalStaffID *uint64 `gorm:"column:technical_staff_id"`
	DecisionNote     string  `gorm:"column:decision_note;type:text"`

	SubmittedAt            time.Time  `gorm:"column:submitted_at"`
	ForwardedToTechnicalAt *time.Time `gorm:"column:forwarded_to_technical_at"`
	ReturnedFromTechnicalAt *time.Time `gorm:"column:returned_from_technical_at"`
	ReviewedAt             *time.Time `gorm:"column:reviewed_at"`
	ApprovedAt             *time.Time `gorm:"column:approved_at"`
	RejectedAt             *time.Time `gorm:"column:rejected_at"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Application) TableName() string { return "zoning_applications" }
