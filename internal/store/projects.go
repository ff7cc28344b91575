package store

import (
	"github.com/MKhiriev/axle-client/internal/rpc/bff"
	"github.com/MKhiriev/axle-client/models"
)

// ProjectsStore is the list store behind the projects screen.
type ProjectsStore = ListStore[models.ListProjectsRequest, models.ListProjectsResponse, models.ProjectView]

func NewProjectsStore(client bff.ProjectServiceClient, opts ...Option) *ProjectsStore {
	return NewListStore(ListQuery[models.ListProjectsRequest, models.ListProjectsResponse, models.ProjectView]{
		Name: "projects",
		Call: client.ListProjects,
		Request: func(page, pageSize int32) *models.ListProjectsRequest {
			return &models.ListProjectsRequest{Page: page, PageSize: pageSize}
		},
		Items: func(resp *models.ListProjectsResponse) []models.ProjectView {
			return projectViews(resp.Projects)
		},
	}, opts...)
}
