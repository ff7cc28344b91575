package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/axle-client/internal/logger"
	"github.com/MKhiriev/axle-client/models"
)

// projectRepository is the SQL implementation of [ProjectRepository]. It
// works against the "projects" table on both dialects.
type projectRepository struct {
	*DB
	logger *logger.Logger
}

func NewProjectRepository(db *DB, logger *logger.Logger) ProjectRepository {
	logger.Debug().Msg("creating project repository")
	return &projectRepository{DB: db, logger: logger}
}

func (r *projectRepository) ListProjects(ctx context.Context, page Page) ([]models.Project, int32, error) {
	log := logger.FromContext(ctx)

	total, err := r.count(ctx, projectsTable)
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.ListProjects").Msg("failed to count projects")
		return nil, 0, err
	}

	query, args, err := buildListProjectsQuery(r.builder, page)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*projectRepository.ListProjects").Msg("failed to execute query")
		return nil, 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	projects := make([]models.Project, 0, page.Limit)
	for rows.Next() {
		p, scanErr := scanProject(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*projectRepository.ListProjects").Msg("failed to scan project row")
			return nil, 0, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		projects = append(projects, p)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return projects, total, nil
}

func (r *projectRepository) GetProject(ctx context.Context, id string) (models.Project, error) {
	query, args, err := buildGetProjectQuery(r.builder, id)
	if err != nil {
		return models.Project{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	p, err := scanProject(r.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Project{}, ErrNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*projectRepository.GetProject").Str("project_id", id).Msg("failed to get project")
		return models.Project{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return p, nil
}

func (r *projectRepository) CreateProject(ctx context.Context, project models.Project) (models.Project, error) {
	query, args, err := buildInsertProjectQuery(r.builder, project)
	if err != nil {
		return models.Project{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*projectRepository.CreateProject").Msg("failed to insert project")
		return models.Project{}, r.classify(err)
	}

	return project, nil
}

func (r *projectRepository) UpdateProject(ctx context.Context, project models.Project) (models.Project, error) {
	query, args, err := buildUpdateProjectQuery(r.builder, project)
	if err != nil {
		return models.Project{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = r.execAffectingOne(ctx, query, args...); err != nil {
		return models.Project{}, err
	}

	return r.GetProject(ctx, project.ID)
}

func (r *projectRepository) DeleteProject(ctx context.Context, id string) error {
	query, args, err := buildDeleteProjectQuery(r.builder, id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execAffectingOne(ctx, query, args...)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (models.Project, error) {
	var p models.Project
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Status, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func (db *DB) count(ctx context.Context, table string) (int32, error) {
	query, args, err := buildCountQuery(db.builder, table)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var total int32
	if err = db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return total, nil
}

// execAffectingOne runs a DML statement and reports [ErrNotFound] when no
// row matched.
func (db *DB) execAffectingOne(ctx context.Context, query string, args ...any) error {
	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, db.classify(err))
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
