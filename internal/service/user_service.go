package service

import (
	"context"
	"time"

	"github.com/MKhiriev/axle-client/internal/logger"
	"github.com/MKhiriev/axle-client/internal/storage"
	"github.com/MKhiriev/axle-client/models"
)

type userService struct {
	userRepository storage.UserRepository
	events         eventFactory
	currentUserID  string

	logger *logger.Logger
}

// NewUserService returns a UserService whose GetMe resolves to
// [storage.DemoUser].
func NewUserService(repo storage.UserRepository, publisher EventPublisher, ids IDGenerator, logger *logger.Logger) UserService {
	return &userService{
		userRepository: repo,
		events: eventFactory{
			publisher: publisher,
			ids:       ids,
			now:       func() time.Time { return time.Now().UTC() },
		},
		currentUserID: storage.DemoUser.ID,
		logger:        logger,
	}
}

func (s *userService) ListUsers(ctx context.Context, req *models.ListUsersRequest) (*models.ListUsersResponse, error) {
	users, total, err := s.userRepository.ListUsers(ctx, pageWindow(req.Page, req.PageSize))
	if err != nil {
		return nil, err
	}

	resp := &models.ListUsersResponse{Users: make([]*models.User, 0, len(users)), Total: total}
	for i := range users {
		resp.Users = append(resp.Users, &users[i])
	}
	return resp, nil
}

func (s *userService) GetUser(ctx context.Context, req *models.GetUserRequest) (*models.GetUserResponse, error) {
	u, err := s.userRepository.GetUser(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	return &models.GetUserResponse{User: &u}, nil
}

func (s *userService) GetMe(ctx context.Context, _ *models.GetMeRequest) (*models.GetMeResponse, error) {
	u, err := s.userRepository.GetUser(ctx, s.currentUserID)
	if err != nil {
		return nil, err
	}
	return &models.GetMeResponse{User: &u}, nil
}

func (s *userService) UpdateUser(ctx context.Context, req *models.UpdateUserRequest) (*models.UpdateUserResponse, error) {
	u, err := s.userRepository.GetUser(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.Name != "" {
		u.Name = req.Name
	}
	if req.Email != "" {
		u.Email = req.Email
	}

	u, err = s.userRepository.UpdateUser(ctx, u)
	if err != nil {
		return nil, err
	}

	s.events.publish(ctx, EventUserUpdated, "", u)
	return &models.UpdateUserResponse{User: &u}, nil
}
