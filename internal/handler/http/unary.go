package http

import (
	"context"
	"mime"
	"net/http"

	"github.com/MKhiriev/axle-client/internal/handler/rpcerr"
	"github.com/MKhiriev/axle-client/internal/logger"
	"github.com/MKhiriev/axle-client/internal/transport"
	"github.com/MKhiriev/axle-client/internal/utils"
)

const contentTypeJSON = "application/json"

// unary adapts a service method to a Connect unary procedure.
func unary[Req, Resp any](call func(context.Context, *Req) (*Resp, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if mediaType(r) != contentTypeJSON {
			w.WriteHeader(http.StatusUnsupportedMediaType)
			return
		}

		req := new(Req)
		if err := utils.ReadJSON(r, req); err != nil {
			writeError(w, r, &transport.CallError{
				Kind:    transport.KindDecode,
				Code:    transport.CodeInvalidArgument,
				Message: err.Error(),
				Err:     err,
			})
			return
		}

		resp, err := call(r.Context(), req)
		if err != nil {
			writeError(w, r, rpcerr.CallError(err))
			return
		}

		if _, err = utils.WriteJSON(w, resp, http.StatusOK); err != nil {
			logger.FromContext(r.Context()).Err(err).Msg("failed to write response")
		}
	}
}

func mediaType(r *http.Request) string {
	mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil {
		return ""
	}
	return mt
}
