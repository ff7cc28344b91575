package tui

import (
	"github.com/MKhiriev/axle-client/internal/store"
	"github.com/MKhiriev/axle-client/models"
)

type projectsStateMsg store.State[models.ProjectView]

type usersStateMsg store.State[models.UserView]

type refreshDoneMsg struct {
	screen screen
	err    error
}

type meLoadedMsg struct {
	user models.UserView
	err  error
}

type eventMsg struct {
	event models.Event
}

// feedStatusMsg reports a change of the event stream. Exactly one of
// started, ended and err is set.
type feedStatusMsg struct {
	started bool
	ended   bool
	err     error
}

type projectSavedMsg struct {
	action string
	err    error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
