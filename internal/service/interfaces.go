package service

import (
	"context"

	"github.com/MKhiriev/axle-client/models"
)

// ProjectService implements bff.v1.ProjectService.
type ProjectService interface {
	ListProjects(ctx context.Context, req *models.ListProjectsRequest) (*models.ListProjectsResponse, error)
	GetProject(ctx context.Context, req *models.GetProjectRequest) (*models.GetProjectResponse, error)
	CreateProject(ctx context.Context, req *models.CreateProjectRequest) (*models.CreateProjectResponse, error)
	UpdateProject(ctx context.Context, req *models.UpdateProjectRequest) (*models.UpdateProjectResponse, error)
	DeleteProject(ctx context.Context, req *models.DeleteProjectRequest) (*models.DeleteProjectResponse, error)
}

// UserService implements bff.v1.UserService.
type UserService interface {
	ListUsers(ctx context.Context, req *models.ListUsersRequest) (*models.ListUsersResponse, error)
	GetUser(ctx context.Context, req *models.GetUserRequest) (*models.GetUserResponse, error)
	GetMe(ctx context.Context, req *models.GetMeRequest) (*models.GetMeResponse, error)
	UpdateUser(ctx context.Context, req *models.UpdateUserRequest) (*models.UpdateUserResponse, error)
}

// StreamingService implements gateway.v1.StreamingService. Subscribe calls
// send for every matching event until ctx ends, the hub closes or send
// fails.
type StreamingService interface {
	Subscribe(ctx context.Context, req *models.SubscribeRequest, send func(*models.Event) error) error
}

// EventPublisher accepts domain events for fan-out.
type EventPublisher interface {
	Publish(ctx context.Context, event models.Event)
}

// IDGenerator produces unique string ids.
type IDGenerator interface {
	Generate() string
}

// ProjectServiceWrapper decorates a ProjectService, e.g. with validation.
type ProjectServiceWrapper interface {
	Wrap(ProjectService) ProjectService
}

// UserServiceWrapper decorates a UserService.
type UserServiceWrapper interface {
	Wrap(UserService) UserService
}
