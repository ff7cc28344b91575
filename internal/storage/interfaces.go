package storage

import (
	"context"

	"github.com/MKhiriev/axle-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/storage_mock.go -package=mock

// Page selects a window of an ordered listing.
type Page struct {
	Offset uint64
	Limit  uint64
}

// ProjectRepository stores projects ordered by creation time.
type ProjectRepository interface {
	ListProjects(ctx context.Context, page Page) ([]models.Project, int32, error)
	GetProject(ctx context.Context, id string) (models.Project, error)
	CreateProject(ctx context.Context, project models.Project) (models.Project, error)
	// UpdateProject overwrites the mutable columns of an existing project.
	UpdateProject(ctx context.Context, project models.Project) (models.Project, error)
	DeleteProject(ctx context.Context, id string) error
}

// UserRepository stores users ordered by name.
type UserRepository interface {
	ListUsers(ctx context.Context, page Page) ([]models.User, int32, error)
	GetUser(ctx context.Context, id string) (models.User, error)
	// UpdateUser overwrites the mutable columns of an existing user.
	UpdateUser(ctx context.Context, user models.User) (models.User, error)
}
