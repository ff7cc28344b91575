package service

import (
	"github.com/MKhiriev/axle-client/internal/logger"
	"github.com/MKhiriev/axle-client/internal/storage"
	"github.com/MKhiriev/axle-client/internal/utils"
	"github.com/MKhiriev/axle-client/internal/validators"
)

type Services struct {
	ProjectService   ProjectService
	UserService      UserService
	StreamingService StreamingService
	Hub              *Hub
}

// NewServices wires the validated services around storages and a shared
// event hub.
func NewServices(storages *storage.Storages, logger *logger.Logger) *Services {
	hub := NewHub(logger)
	ids := utils.NewUUIDGenerator()
	validator := validators.NewRequestValidator()

	return &Services{
		ProjectService: NewProjectValidationService(validator).
			Wrap(NewProjectService(storages.ProjectRepository, hub, ids, logger)),
		UserService: NewUserValidationService(validator).
			Wrap(NewUserService(storages.UserRepository, hub, ids, logger)),
		StreamingService: NewStreamingService(hub, ids),
		Hub:              hub,
	}
}

// Close ends all open event streams.
func (s *Services) Close() {
	s.Hub.Close()
}
