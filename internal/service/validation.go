package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/axle-client/internal/validators"
	"github.com/MKhiriev/axle-client/models"
)

type ProjectValidationService struct {
	inner     ProjectService
	validator validators.Validator
}

func NewProjectValidationService(validator validators.Validator) ProjectServiceWrapper {
	return &ProjectValidationService{validator: validator}
}

func (v *ProjectValidationService) Wrap(inner ProjectService) ProjectService {
	v.inner = inner
	return v
}

func (v *ProjectValidationService) ListProjects(ctx context.Context, req *models.ListProjectsRequest) (*models.ListProjectsResponse, error) {
	if err := v.validate(ctx, req); err != nil {
		return nil, err
	}
	return v.inner.ListProjects(ctx, req)
}

func (v *ProjectValidationService) GetProject(ctx context.Context, req *models.GetProjectRequest) (*models.GetProjectResponse, error) {
	if err := v.validate(ctx, req); err != nil {
		return nil, err
	}
	return v.inner.GetProject(ctx, req)
}

func (v *ProjectValidationService) CreateProject(ctx context.Context, req *models.CreateProjectRequest) (*models.CreateProjectResponse, error) {
	if err := v.validate(ctx, req); err != nil {
		return nil, err
	}
	return v.inner.CreateProject(ctx, req)
}

func (v *ProjectValidationService) UpdateProject(ctx context.Context, req *models.UpdateProjectRequest) (*models.UpdateProjectResponse, error) {
	if err := v.validate(ctx, req); err != nil {
		return nil, err
	}
	return v.inner.UpdateProject(ctx, req)
}

func (v *ProjectValidationService) DeleteProject(ctx context.Context, req *models.DeleteProjectRequest) (*models.DeleteProjectResponse, error) {
	if err := v.validate(ctx, req); err != nil {
		return nil, err
	}
	return v.inner.DeleteProject(ctx, req)
}

func (v *ProjectValidationService) validate(ctx context.Context, req any) error {
	if err := v.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}

type UserValidationService struct {
	inner     UserService
	validator validators.Validator
}

func NewUserValidationService(validator validators.Validator) UserServiceWrapper {
	return &UserValidationService{validator: validator}
}

func (v *UserValidationService) Wrap(inner UserService) UserService {
	v.inner = inner
	return v
}

func (v *UserValidationService) ListUsers(ctx context.Context, req *models.ListUsersRequest) (*models.ListUsersResponse, error) {
	if err := v.validate(ctx, req); err != nil {
		return nil, err
	}
	return v.inner.ListUsers(ctx, req)
}

func (v *UserValidationService) GetUser(ctx context.Context, req *models.GetUserRequest) (*models.GetUserResponse, error) {
	if err := v.validate(ctx, req); err != nil {
		return nil, err
	}
	return v.inner.GetUser(ctx, req)
}

// GetMe has no input to validate.
func (v *UserValidationService) GetMe(ctx context.Context, req *models.GetMeRequest) (*models.GetMeResponse, error) {
	return v.inner.GetMe(ctx, req)
}

func (v *UserValidationService) UpdateUser(ctx context.Context, req *models.UpdateUserRequest) (*models.UpdateUserResponse, error) {
	if err := v.validate(ctx, req); err != nil {
		return nil, err
	}
	return v.inner.UpdateUser(ctx, req)
}

func (v *UserValidationService) validate(ctx context.Context, req any) error {
	if err := v.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}
