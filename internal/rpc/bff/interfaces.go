package bff

import (
	"context"

	"github.com/MKhiriev/axle-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../../mock/bff_clients_mock.go -package=mock

// ProjectServiceClient is a client for the bff.v1.ProjectService service.
type ProjectServiceClient interface {
	ListProjects(ctx context.Context, req *models.ListProjectsRequest) (*models.ListProjectsResponse, error)
	GetProject(ctx context.Context, req *models.GetProjectRequest) (*models.GetProjectResponse, error)
	CreateProject(ctx context.Context, req *models.CreateProjectRequest) (*models.CreateProjectResponse, error)
	UpdateProject(ctx context.Context, req *models.UpdateProjectRequest) (*models.UpdateProjectResponse, error)
	DeleteProject(ctx context.Context, req *models.DeleteProjectRequest) (*models.DeleteProjectResponse, error)
}

// UserServiceClient is a client for the bff.v1.UserService service.
type UserServiceClient interface {
	ListUsers(ctx context.Context, req *models.ListUsersRequest) (*models.ListUsersResponse, error)
	GetUser(ctx context.Context, req *models.GetUserRequest) (*models.GetUserResponse, error)
	GetMe(ctx context.Context, req *models.GetMeRequest) (*models.GetMeResponse, error)
	UpdateUser(ctx context.Context, req *models.UpdateUserRequest) (*models.UpdateUserResponse, error)
}
