package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/axle-client/internal/logger"
	"github.com/MKhiriev/axle-client/models"
)

type userRepository struct {
	*DB
	logger *logger.Logger
}

func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{DB: db, logger: logger}
}

func (r *userRepository) ListUsers(ctx context.Context, page Page) ([]models.User, int32, error) {
	log := logger.FromContext(ctx)

	total, err := r.count(ctx, usersTable)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("failed to count users")
		return nil, 0, err
	}

	query, args, err := buildListUsersQuery(r.builder, page)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.ListUsers").Msg("failed to execute query")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	users := make([]models.User, 0, page.Limit)
	for rows.Next() {
		u, scanErr := scanUser(rows)
		if scanErr != nil {
			return nil, 0, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		users = append(users, u)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, total, nil
}

func (r *userRepository) GetUser(ctx context.Context, id string) (models.User, error) {
	query, args, err := buildGetUserQuery(r.builder, id)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	u, err := scanUser(r.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*userRepository.GetUser").Str("user_id", id).Msg("failed to get user")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return u, nil
}

func (r *userRepository) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	query, args, err := buildUpdateUserQuery(r.builder, user)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.execAffectingOne(ctx, query, args...); err != nil {
		return models.User{}, err
	}

	return r.GetUser(ctx, user.ID)
}

func scanUser(row rowScanner) (models.User, error) {
	var u models.User
	err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Role)
	return u, err
}
