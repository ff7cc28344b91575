package storage

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/MKhiriev/axle-client/models"
)

type memoryProjectRepository struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]models.Project
}

// NewMemoryProjectRepository returns a process-local [ProjectRepository].
// Projects are listed in insertion order.
func NewMemoryProjectRepository() ProjectRepository {
	return &memoryProjectRepository{byID: make(map[string]models.Project)}
}

func (r *memoryProjectRepository) ListProjects(_ context.Context, page Page) ([]models.Project, int32, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := pageOf(r.order, page)
	projects := make([]models.Project, 0, len(ids))
	for _, id := range ids {
		projects = append(projects, r.byID[id])
	}
	return projects, int32(len(r.order)), nil
}

func (r *memoryProjectRepository) GetProject(_ context.Context, id string) (models.Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return models.Project{}, ErrNotFound
	}
	return p, nil
}

func (r *memoryProjectRepository) CreateProject(_ context.Context, project models.Project) (models.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[project.ID]; ok {
		return models.Project{}, ErrAlreadyExists
	}
	r.byID[project.ID] = project
	r.order = append(r.order, project.ID)
	return project, nil
}

func (r *memoryProjectRepository) UpdateProject(_ context.Context, project models.Project) (models.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.byID[project.ID]
	if !ok {
		return models.Project{}, ErrNotFound
	}
	stored.Name = project.Name
	stored.Description = project.Description
	stored.Status = project.Status
	stored.UpdatedAt = project.UpdatedAt
	r.byID[project.ID] = stored
	return stored, nil
}

func (r *memoryProjectRepository) DeleteProject(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	r.order = slices.DeleteFunc(r.order, func(v string) bool { return v == id })
	return nil
}

type memoryUserRepository struct {
	mu   sync.RWMutex
	byID map[string]models.User
}

// NewMemoryUserRepository returns a process-local [UserRepository] holding
// seed. Users are listed by name.
func NewMemoryUserRepository(seed ...models.User) UserRepository {
	r := &memoryUserRepository{byID: make(map[string]models.User, len(seed))}
	for _, u := range seed {
		r.byID[u.ID] = u
	}
	return r
}

func (r *memoryUserRepository) ListUsers(_ context.Context, page Page) ([]models.User, int32, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]models.User, 0, len(r.byID))
	for _, u := range r.byID {
		all = append(all, u)
	}
	slices.SortFunc(all, func(a, b models.User) int {
		if c := strings.Compare(a.Name, b.Name); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})

	return pageOf(all, page), int32(len(all)), nil
}

func (r *memoryUserRepository) GetUser(_ context.Context, id string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return models.User{}, ErrNotFound
	}
	return u, nil
}

func (r *memoryUserRepository) UpdateUser(_ context.Context, user models.User) (models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.byID[user.ID]
	if !ok {
		return models.User{}, ErrNotFound
	}
	stored.Name = user.Name
	stored.Email = user.Email
	stored.Role = user.Role
	r.byID[user.ID] = stored
	return stored, nil
}

// pageOf returns a copy of the page window of items.
func pageOf[T any](items []T, page Page) []T {
	if page.Limit == 0 {
		return slices.Clone(items)
	}
	start := min(page.Offset, uint64(len(items)))
	end := min(start+page.Limit, uint64(len(items)))
	return slices.Clone(items[start:end])
}
