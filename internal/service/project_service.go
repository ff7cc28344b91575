package service

import (
	"context"
	"time"

	"github.com/MKhiriev/axle-client/internal/logger"
	"github.com/MKhiriev/axle-client/internal/storage"
	"github.com/MKhiriev/axle-client/models"
)

type projectService struct {
	projectRepository storage.ProjectRepository
	events            eventFactory
	ids               IDGenerator
	now               func() time.Time

	logger *logger.Logger
}

func NewProjectService(repo storage.ProjectRepository, publisher EventPublisher, ids IDGenerator, logger *logger.Logger) ProjectService {
	now := func() time.Time { return time.Now().UTC() }
	return &projectService{
		projectRepository: repo,
		events:            eventFactory{publisher: publisher, ids: ids, now: now},
		ids:               ids,
		now:               now,
		logger:            logger,
	}
}

func (s *projectService) ListProjects(ctx context.Context, req *models.ListProjectsRequest) (*models.ListProjectsResponse, error) {
	projects, total, err := s.projectRepository.ListProjects(ctx, pageWindow(req.Page, req.PageSize))
	if err != nil {
		return nil, err
	}

	resp := &models.ListProjectsResponse{Projects: make([]*models.Project, 0, len(projects)), Total: total}
	for i := range projects {
		resp.Projects = append(resp.Projects, &projects[i])
	}
	return resp, nil
}

func (s *projectService) GetProject(ctx context.Context, req *models.GetProjectRequest) (*models.GetProjectResponse, error) {
	p, err := s.projectRepository.GetProject(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	return &models.GetProjectResponse{Project: &p}, nil
}

// CreateProject stores a new active project with a server-assigned id and
// publishes project.created.
func (s *projectService) CreateProject(ctx context.Context, req *models.CreateProjectRequest) (*models.CreateProjectResponse, error) {
	now := s.now()
	p, err := s.projectRepository.CreateProject(ctx, models.Project{
		ID:          s.ids.Generate(),
		Name:        req.Name,
		Description: req.Description,
		Status:      models.ProjectStatusActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Debug().Str("project_id", p.ID).Msg("project created")
	s.events.publish(ctx, EventProjectCreated, p.ID, p)
	return &models.CreateProjectResponse{Project: &p}, nil
}

// UpdateProject applies the non-empty fields of req and publishes
// project.updated.
func (s *projectService) UpdateProject(ctx context.Context, req *models.UpdateProjectRequest) (*models.UpdateProjectResponse, error) {
	p, err := s.projectRepository.GetProject(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		p.Name = req.Name
	}
	if req.Description != "" {
		p.Description = req.Description
	}
	if req.Status != models.ProjectStatusUnspecified {
		p.Status = req.Status
	}
	p.UpdatedAt = s.now()

	p, err = s.projectRepository.UpdateProject(ctx, p)
	if err != nil {
		return nil, err
	}

	s.events.publish(ctx, EventProjectUpdated, p.ID, p)
	return &models.UpdateProjectResponse{Project: &p}, nil
}

func (s *projectService) DeleteProject(ctx context.Context, req *models.DeleteProjectRequest) (*models.DeleteProjectResponse, error) {
	if err := s.projectRepository.DeleteProject(ctx, req.ID); err != nil {
		return nil, err
	}

	s.events.publish(ctx, EventProjectDeleted, req.ID, models.DeleteProjectRequest{ID: req.ID})
	return &models.DeleteProjectResponse{}, nil
}
