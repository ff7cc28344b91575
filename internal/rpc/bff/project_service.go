package bff

import (
	"context"
	"errors"

	"github.com/MKhiriev/axle-client/internal/rpc"
	"github.com/MKhiriev/axle-client/internal/transport"
	"github.com/MKhiriev/axle-client/models"
)

const ProjectServiceName = "bff.v1.ProjectService"

// Fully qualified procedure paths of bff.v1.ProjectService.
const (
	ProjectServiceListProjectsProcedure  = "/bff.v1.ProjectService/ListProjects"
	ProjectServiceGetProjectProcedure    = "/bff.v1.ProjectService/GetProject"
	ProjectServiceCreateProjectProcedure = "/bff.v1.ProjectService/CreateProject"
	ProjectServiceUpdateProjectProcedure = "/bff.v1.ProjectService/UpdateProject"
	ProjectServiceDeleteProjectProcedure = "/bff.v1.ProjectService/DeleteProject"
)

var ProjectServiceDesc = rpc.ServiceDesc{
	Name: ProjectServiceName,
	Methods: []rpc.MethodDesc{
		{Name: "ListProjects", Kind: rpc.MethodUnary},
		{Name: "GetProject", Kind: rpc.MethodUnary},
		{Name: "CreateProject", Kind: rpc.MethodUnary},
		{Name: "UpdateProject", Kind: rpc.MethodUnary},
		{Name: "DeleteProject", Kind: rpc.MethodUnary},
	},
}

type projectServiceClient struct {
	listProjects  rpc.UnaryFunc[models.ListProjectsRequest, models.ListProjectsResponse]
	getProject    rpc.UnaryFunc[models.GetProjectRequest, models.GetProjectResponse]
	createProject rpc.UnaryFunc[models.CreateProjectRequest, models.CreateProjectResponse]
	updateProject rpc.UnaryFunc[models.UpdateProjectRequest, models.UpdateProjectResponse]
	deleteProject rpc.UnaryFunc[models.DeleteProjectRequest, models.DeleteProjectResponse]
}

// NewProjectServiceClient binds bff.v1.ProjectService to t. The transport
// stays owned by the caller.
func NewProjectServiceClient(t transport.Transport) (ProjectServiceClient, error) {
	c, err := rpc.NewClient(ProjectServiceDesc, t)
	if err != nil {
		return nil, err
	}

	var (
		pc   projectServiceClient
		errs [5]error
	)
	pc.listProjects, errs[0] = rpc.NewUnary[models.ListProjectsRequest, models.ListProjectsResponse](c, "ListProjects")
	pc.getProject, errs[1] = rpc.NewUnary[models.GetProjectRequest, models.GetProjectResponse](c, "GetProject")
	pc.createProject, errs[2] = rpc.NewUnary[models.CreateProjectRequest, models.CreateProjectResponse](c, "CreateProject")
	pc.updateProject, errs[3] = rpc.NewUnary[models.UpdateProjectRequest, models.UpdateProjectResponse](c, "UpdateProject")
	pc.deleteProject, errs[4] = rpc.NewUnary[models.DeleteProjectRequest, models.DeleteProjectResponse](c, "DeleteProject")
	if err = errors.Join(errs[:]...); err != nil {
		return nil, err
	}
	return &pc, nil
}

func (c *projectServiceClient) ListProjects(ctx context.Context, req *models.ListProjectsRequest) (*models.ListProjectsResponse, error) {
	return c.listProjects(ctx, req)
}

func (c *projectServiceClient) GetProject(ctx context.Context, req *models.GetProjectRequest) (*models.GetProjectResponse, error) {
	return c.getProject(ctx, req)
}

func (c *projectServiceClient) CreateProject(ctx context.Context, req *models.CreateProjectRequest) (*models.CreateProjectResponse, error) {
	return c.createProject(ctx, req)
}

func (c *projectServiceClient) UpdateProject(ctx context.Context, req *models.UpdateProjectRequest) (*models.UpdateProjectResponse, error) {
	return c.updateProject(ctx, req)
}

func (c *projectServiceClient) DeleteProject(ctx context.Context, req *models.DeleteProjectRequest) (*models.DeleteProjectResponse, error) {
	return c.deleteProject(ctx, req)
}
