package models

// ProjectView is the UI-facing projection of [Project]. Every field is a
// plain string so that changes to the wire schema do not leak into views.
type ProjectView struct {
	ID          string
	Name        string
	Description string
	Status      string
}

// UserView is the UI-facing projection of [User].
type UserView struct {
	ID    string
	Name  string
	Email string
	Role  string
}
