package http

import (
	"net/http"

	"github.com/MKhiriev/axle-client/internal/utils"
)

type healthResponse struct {
	Status      string `json:"status"`
	Subscribers int    `json:"subscribers"`
}

func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	_, _ = utils.WriteJSON(w, healthResponse{Status: "ok", Subscribers: h.services.Hub.Len()}, http.StatusOK)
}
