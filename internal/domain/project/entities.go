package project

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrNotFound = errors.New("project not found")

// InfrastructureProject is disclosure content with no workflow attached.
type InfrastructureProject struct {
	ID                uint64          `gorm:"primaryKey;column:id"`
	Name              string          `gorm:"column:name;size:255;not null"`
	Description       string          `gorm:"column:description;type:text"`
	Location          string          `gorm:"column:location;size:255"`
	Contractor        string          `gorm:"column:contractor;size:255"`
	Budget            decimal.Decimal `gorm:"column:budget;type:decimal(14,2)"`
	StartDate         *time.Time      `gorm:"column:start_date;type:date"`
	EndDate           *time.Time      `gorm:"column:end_date;type:date"`
	CompletionPercent int             `gorm:"column:completion_percent;default:0"`
	StatusTag         string          `gorm:"column:status_tag;size:32"`
	CreatedAt         time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt         time.Time       `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt         gorm.DeletedAt  `gorm:"column:deleted_at;index"`
}

func (InfrastructureProject) TableName() string { return "infrastructure_projects" }

type Announcement struct {
	ID          uint64         `gorm:"primaryKey;column:id"`
	Title       string         `gorm:"column:title;size:255;not null"`
	Body        string         `gorm:"column:body;type:text"`
	PublishedAt *time.Time     `gorm:"column:published_at"`
	CreatedAt   time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time      `gorm:"column:updated_at;autoUpdateTime"`
	DeletedAt   gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Announcement) TableName() string { return "announcements" }
