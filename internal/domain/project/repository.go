package project

import "context"

type Repository interface {
	ListProjects(ctx context.Context) ([]InfrastructureProject, error)
	GetProject(ctx context.Context, id uint64) (*InfrastructureProject, error)
	ListAnnouncements(ctx context.Context) ([]Announcement, error)
}
