package mysql

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	domain "egov-portal-backend/internal/domain/project"
)

type projectSQLite struct {
	ID                uint64         `gorm:"primaryKey;column:id"`
	Name              string         `gorm:"column:name"`
	Description       string         `gorm:"column:description"`
	Location          string         `gorm:"column:location"`
	Contractor        string         `gorm:"column:contractor"`
	Budget            string         `gorm:"column:budget"`
	StartDate         *time.Time     `gorm:"column:start_date"`
	EndDate           *time.Time     `gorm:"column:end_date"`
	CompletionPercent int            `gorm:"column:completion_percent"`
	StatusTag         string         `gorm:"column:status_tag"`
	CreatedAt         time.Time      `gorm:"column:created_at"`
	UpdatedAt         time.Time      `gorm:"column:updated_at"`
	DeletedAt         gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (projectSQLite) TableName() string { return "infrastructure_projects" }

type announcementSQLite struct {
	ID          uint64         `gorm:"primaryKey;column:id"`
	Title       string         `gorm:"column:title"`
	Body        string         `gorm:"column:body"`
	PublishedAt *time.Time     `gorm:"column:published_at"`
	CreatedAt   time.Time      `gorm:"column:created_at"`
	UpdatedAt   time.Time      `gorm:"column:updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"column:deleted_at"`
}

func (announcementSQLite) TableName() string { return "announcements" }

func openProjectTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&projectSQLite{}, &announcementSQLite{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func TestProjectRepo_ListAndGet(t *testing.T) {
	db := openProjectTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	p := &domain.InfrastructureProject{
		Name:              "Drainage upgrade phase 2",
		Description:       "storm drains along the river belt",
		Location:          "North district",
		Contractor:        "PT Karya Bangun",
		Budget:            decimal.NewFromInt(1_250_000),
		CompletionPercent: 40,
		StatusTag:         "ongoing",
	}
	if err := db.Create(p).Error; err != nil {
		t.Fatalf("seed project: %v", err)
	}

	list, err := repo.ListProjects(ctx)
	if err != nil || len(list) != 1 {
		t.Fatalf("list projects: n=%d err=%v", len(list), err)
	}

	got, err := repo.GetProject(ctx, p.ID)
	if err != nil {
		t.Fatalf("get project: %v", err)
	}
	if got.Name != p.Name || got.CompletionPercent != 40 {
		t.Fatalf("unexpected project: %+v", got)
	}
}

func TestProjectRepo_ListAnnouncements_OnlyPublished(t *testing.T) {
	db := openProjectTestDB(t)
	repo := NewProjectRepository(db)
	ctx := context.Background()

	now := time.Now().UTC()
	published := &domain.Announcement{Title: "Water outage notice", Body: "Sat 9-12", PublishedAt: &now}
	draft := &domain.Announcement{Title: "Draft notice", Body: "tbd"}
	for _, a := range []*domain.Announcement{published, draft} {
		if err := db.Create(a).Error; err != nil {
			t.Fatalf("seed announcement: %v", err)
		}
	}

	list, err := repo.ListAnnouncements(ctx)
	if err != nil {
		t.Fatalf("list announcements: %v", err)
	}
	if len(list) != 1 || list[0].Title != "Water outage notice" {
		t.Fatalf("want only the published announcement, got %+v", list)
	}
}
