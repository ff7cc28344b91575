package store

import (
	"strconv"

	"github.com/MKhiriev/axle-client/models"
)

// ProjectFromWire copies identifiers and text verbatim and renders the
// status as its decimal code ("1" for ACTIVE).
func ProjectFromWire(p *models.Project) models.ProjectView {
	if p == nil {
		return models.ProjectView{}
	}
	return models.ProjectView{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Status:      strconv.FormatInt(int64(p.Status), 10),
	}
}

// UserFromWire renders the role the same way ProjectFromWire renders status.
func UserFromWire(u *models.User) models.UserView {
	if u == nil {
		return models.UserView{}
	}
	return models.UserView{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  strconv.FormatInt(int64(u.Role), 10),
	}
}

func projectViews(ps []*models.Project) []models.ProjectView {
	out := make([]models.ProjectView, len(ps))
	for i, p := range ps {
		out[i] = ProjectFromWire(p)
	}
	return out
}

func userViews(us []*models.User) []models.UserView {
	out := make([]models.UserView, len(us))
	for i, u := range us {
		out[i] = UserFromWire(u)
	}
	return out
}
