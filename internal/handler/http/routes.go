package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/axle-client/internal/rpc/bff"
	"github.com/MKhiriev/axle-client/internal/rpc/gateway"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withRequestID, withTracing, withLogging, middleware.Recoverer)

	router.Get("/healthz", h.healthz)

	// unary procedures
	router.Group(func(r chi.Router) {
		r.Use(withGZip)

		projects := h.services.ProjectService
		r.Post(bff.ProjectServiceListProjectsProcedure, unary(projects.ListProjects))
		r.Post(bff.ProjectServiceGetProjectProcedure, unary(projects.GetProject))
		r.Post(bff.ProjectServiceCreateProjectProcedure, unary(projects.CreateProject))
		r.Post(bff.ProjectServiceUpdateProjectProcedure, unary(projects.UpdateProject))
		r.Post(bff.ProjectServiceDeleteProjectProcedure, unary(projects.DeleteProject))

		users := h.services.UserService
		r.Post(bff.UserServiceListUsersProcedure, unary(users.ListUsers))
		r.Post(bff.UserServiceGetUserProcedure, unary(users.GetUser))
		r.Post(bff.UserServiceGetMeProcedure, unary(users.GetMe))
		r.Post(bff.UserServiceUpdateUserProcedure, unary(users.UpdateUser))
	})

	// streaming procedures, never compressed so every frame can be flushed
	router.Post(gateway.StreamingServiceSubscribeProcedure, h.subscribe)

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
