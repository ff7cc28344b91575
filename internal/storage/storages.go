package storage

import (
	"context"
	"fmt"

	"github.com/MKhiriev/axle-client/internal/config"
	"github.com/MKhiriev/axle-client/internal/logger"
	"github.com/MKhiriev/axle-client/models"
)

// DemoUser is the single account the development server knows before any
// authentication exists. GetMe always resolves to it.
var DemoUser = models.User{
	ID:    "00000000-0000-0000-0000-000000000000",
	Name:  "Demo User",
	Email: "demo@axle.local",
	Role:  models.UserRoleAdmin,
}

// Storages aggregates the repositories of one backend.
type Storages struct {
	ProjectRepository ProjectRepository
	UserRepository    UserRepository

	db *DB
}

// NewStorages opens the backend selected by cfg.Driver and, for SQL
// backends, applies migrations.
func NewStorages(ctx context.Context, cfg config.DevServerDB, log *logger.Logger) (*Storages, error) {
	if cfg.Driver == "" || cfg.Driver == DriverMemory {
		log.Info().Msg("using in-memory storage")
		return &Storages{
			ProjectRepository: NewMemoryProjectRepository(),
			UserRepository:    NewMemoryUserRepository(DemoUser),
		}, nil
	}

	db, err := Open(ctx, cfg.Driver, cfg.DSN, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate %s database: %w", cfg.Driver, err)
	}

	return &Storages{
		ProjectRepository: NewProjectRepository(db, log),
		UserRepository:    NewUserRepository(db, log),
		db:                db,
	}, nil
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
