package storage

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/axle-client/models"
)

const (
	projectsTable = "projects"
	usersTable    = "users"
)

var (
	projectColumns = []string{"id", "name", "description", "status", "created_at", "updated_at"}
	userColumns    = []string{"id", "name", "email", "role"}
)

func buildListProjectsQuery(b sq.StatementBuilderType, page Page) (string, []any, error) {
	return withPage(b.Select(projectColumns...).
		From(projectsTable).
		OrderBy("created_at", "id"), page).
		ToSql()
}

func buildCountQuery(b sq.StatementBuilderType, table string) (string, []any, error) {
	return b.Select("COUNT(*)").From(table).ToSql()
}

func buildGetProjectQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	return b.Select(projectColumns...).
		From(projectsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildInsertProjectQuery(b sq.StatementBuilderType, p models.Project) (string, []any, error) {
	return b.Insert(projectsTable).
		Columns(projectColumns...).
		Values(p.ID, p.Name, p.Description, int32(p.Status), p.CreatedAt, p.UpdatedAt).
		ToSql()
}

func buildUpdateProjectQuery(b sq.StatementBuilderType, p models.Project) (string, []any, error) {
	return b.Update(projectsTable).
		Set("name", p.Name).
		Set("description", p.Description).
		Set("status", int32(p.Status)).
		Set("updated_at", p.UpdatedAt).
		Where(sq.Eq{"id": p.ID}).
		ToSql()
}

func buildDeleteProjectQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	return b.Delete(projectsTable).Where(sq.Eq{"id": id}).ToSql()
}

func buildListUsersQuery(b sq.StatementBuilderType, page Page) (string, []any, error) {
	return withPage(b.Select(userColumns...).
		From(usersTable).
		OrderBy("name", "id"), page).
		ToSql()
}

func buildGetUserQuery(b sq.StatementBuilderType, id string) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildUpdateUserQuery(b sq.StatementBuilderType, u models.User) (string, []any, error) {
	return b.Update(usersTable).
		Set("name", u.Name).
		Set("email", u.Email).
		Set("role", int32(u.Role)).
		Where(sq.Eq{"id": u.ID}).
		ToSql()
}

// withPage applies LIMIT/OFFSET. A zero limit lists everything.
func withPage(q sq.SelectBuilder, page Page) sq.SelectBuilder {
	if page.Limit == 0 {
		return q
	}
	return q.Limit(page.Limit).Offset(page.Offset)
}
