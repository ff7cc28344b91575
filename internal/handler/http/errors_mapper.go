package http

import (
	"net/http"

	"github.com/MKhiriev/axle-client/internal/logger"
	"github.com/MKhiriev/axle-client/internal/transport"
	"github.com/MKhiriev/axle-client/internal/utils"
)

// errorBody is the Connect unary error payload.
type errorBody struct {
	Code    transport.Code `json:"code"`
	Message string         `json:"message,omitempty"`
}

// writeError answers with ce as a Connect error, choosing the HTTP status
// from its code.
func writeError(w http.ResponseWriter, r *http.Request, ce *transport.CallError) {
	log := logger.FromContext(r.Context())

	event := log.Warn()
	if ce.Code == transport.CodeInternal || ce.Code == transport.CodeUnknown {
		event = log.Error()
	}
	event.Err(ce.Err).Str("code", string(ce.Code)).Str("procedure", r.URL.Path).Msg("request failed")

	if _, err := utils.WriteJSON(w, errorBody{Code: ce.Code, Message: ce.Message}, transport.HTTPStatusFromCode(ce.Code)); err != nil {
		log.Err(err).Msg("failed to write error response")
	}
}

func notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, &transport.CallError{
		Kind:    transport.KindProtocol,
		Code:    transport.CodeUnimplemented,
		Message: "unknown procedure " + r.URL.Path,
	})
}
