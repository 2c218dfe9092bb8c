package history

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Action is the closed set of audit-log event kinds. Values read from storage
// that are not recognized parse to ActionUnknown rather than failing.
type Action string

const (
	ActionStatusChanged       Action = "status_changed"
	ActionDocumentUploaded    Action = "document_uploaded"
	ActionDocumentVerified    Action = "document_verified"
	ActionDocumentRejected    Action = "document_rejected"
	ActionDocumentReuploaded  Action = "document_reuploaded"
	ActionInspectionScheduled Action = "inspection_scheduled"
	ActionInspectionCompleted Action = "inspection_completed"
	ActionInfoRequested       Action = "info_requested"
	ActionForwarded           Action = "forwarded"
	ActionReturned            Action = "returned"
	ActionNoteAdded           Action = "note_added"
	ActionWithdrawn           Action = "withdrawn"
	ActionAppealed            Action = "appealed"
	ActionOfferIssued         Action = "offer_issued"
	ActionBeneficiaryAssigned Action = "beneficiary_assigned"
	ActionOccupancyChanged    Action = "occupancy_changed"
	ActionUnknown             Action = "unknown"
)

func ParseAction(s string) Action {
	switch a := Action(s); a {
	case ActionStatusChanged, ActionDocumentUploaded, ActionDocumentVerified,
		ActionDocumentRejected, ActionDocumentReuploaded, ActionInspectionScheduled,
		ActionInspectionCompleted, ActionInfoRequested, ActionForwarded,
		ActionReturned, ActionNoteAdded, ActionWithdrawn, ActionAppealed,
		ActionOfferIssued, ActionBeneficiaryAssigned, ActionOccupancyChanged:
		return a
	}
	return ActionUnknown
}

// Meta carries request metadata captured on some actions (final decisions,
// withdrawals).
type Meta struct {
	IP        string
	UserAgent string
}

// Entry is one append-only audit row per meaningful state change. Rows are
// never updated or deleted after creation.
type Entry struct {
	ID        uuid.UUID `gorm:"column:id;type:char(36);primaryKey"`
	OwnerType string    `gorm:"column:owner_type;size:16;not null;index:idx_history_owner"`
	OwnerID   uint64    `gorm:"column:owner_id;not null;index:idx_history_owner"`
	Action    Action    `gorm:"column:action;size:32;not null"`
	OldValue  string    `gorm:"column:old_value;size:64"`
	NewValue  string    `gorm:"column:new_value;size:64"`
	Remarks   string    `gorm:"column:remarks;type:text"`
	ActorID   *uint64   `gorm:"column:actor_id"`
	IPAddress string    `gorm:"column:ip_address;size:50"`
	UserAgent string    `gorm:"column:user_agent;type:text"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Entry) TableName() string { return "application_history" }

func (e *Entry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
