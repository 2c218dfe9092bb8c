package project

import (
	"context"
	"time"

	"egov-portal-backend/internal/domain/project"
)

// Usecase serves the read-only infrastructure disclosure pages.
type Usecase struct {
	repo project.Repository
}

func NewUsecase(repo project.Repository) *Usecase { return &Usecase{repo: repo} }

type ProjectDTO struct {
	ID                uint64     `json:"id"`
	Name              string     `json:"name"`
	Description       string     `json:"description"`
	Location          string     `json:"location"`
	Contractor        string     `json:"contractor"`
	Budget            string     `json:"budget"`
	StartDate         *time.Time `json:"start_date,omitempty"`
	EndDate           *time.Time `json:"end_date,omitempty"`
	CompletionPercent int        `json:"completion_percent"`
	StatusTag         string     `json:"status_tag"`
}

type AnnouncementDTO struct {
	ID          uint64     `json:"id"`
	Title       string     `json:"title"`
	Body        string     `json:"body"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
}

func (u *Usecase) ListProjects(ctx context.Context) ([]ProjectDTO, error) {
	list, err := u.repo.ListProjects(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]ProjectDTO, 0, len(list))
	for i := range list {
		out = append(out, toProjectDTO(&list[i]))
	}
	return out, nil
}

func (u *Usecase) GetProject(ctx context.Context, id uint64) (*ProjectDTO, error) {
	p, err := u.repo.GetProject(ctx, id)
	if err != nil {
		return nil, project.ErrNotFound
	}
	dto := toProjectDTO(p)
	return &dto, nil
}

func (u *Usecase) ListAnnouncements(ctx context.Context) ([]AnnouncementDTO, error) {
	list, err := u.repo.ListAnnouncements(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]AnnouncementDTO, 0, len(list))
	for _, a := range list {
		out = append(out, AnnouncementDTO{ID: a.ID, Title: a.Title, Body: a.Body, PublishedAt: a.PublishedAt})
	}
	return out, nil
}

func toProjectDTO(p *project.InfrastructureProject) ProjectDTO {
	return ProjectDTO{
		ID:                p.ID,
		Name:              p.Name,
		Description:       p.Description,
		Location:          p.Location,
		Contractor:        p.Contractor,
		Budget:            p.Budget.StringFixed(2),
		StartDate:         p.StartDate,
		EndDate:           p.EndDate,
		CompletionPercent: p.CompletionPercent,
		StatusTag:         p.StatusTag,
	}
}
