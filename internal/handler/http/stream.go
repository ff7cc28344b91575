// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/axle-client/internal/handler/rpcerr"
	"github.com/MKhiriev/axle-client/internal/logger"
	"github.com/MKhiriev/axle-client/internal/transport"
	"github.com/MKhiriev/axle-client/models"
)

// subscribe serves gateway.v1.StreamingService/Subscribe. The request is a
// single envelope; every event is written and flushed as its own envelope.
func (h *Handler) subscribe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromContext(ctx)

	if mediaType(r) != transport.ContentTypeStream {
		w.WriteHeader(http.StatusUnsupportedMediaType)
		return
	}

	data, err := transport.ReadEnvelope(r.Body)
	if err != nil {
		writeError(w, r, &transport.CallError{Kind: transport.KindDecode, Code: transport.CodeInvalidArgument, Message: err.Error(), Err: err})
		return
	}
	req := new(models.SubscribeRequest)
	if err = h.codec.Unmarshal(data, req); err != nil {
		writeError(w, r, &transport.CallError{Kind: transport.KindDecode, Code: transport.CodeInvalidArgument, Message: err.Error(), Err: err})
		return
	}

	rc := http.NewResponseController(w)
	w.Header().Set("Content-Type", transport.ContentTypeStream)
	w.WriteHeader(http.StatusOK)
	if err = rc.Flush(); err != nil {
		log.Err(err).Msg("response writer does not support streaming")
		return
	}

	send := func(e *models.Event) error {
		payload, err := h.codec.Marshal(e)
		if err != nil {
			return err
		}
		if err = transport.WriteEnvelope(w, payload); err != nil {
			return err
		}
		return rc.Flush()
	}

	var endErr *transport.CallError
	if err = h.services.StreamingService.Subscribe(ctx, req, send); err != nil {
		endErr = rpcerr.CallError(err)
	}
	if ctx.Err() != nil {
		// client went away
		return
	}

	if err = transport.WriteEndStream(w, h.codec, endErr); err != nil {
		log.Err(err).Msg("failed to write end-stream frame")
		return
	}
	_ = rc.Flush()
}
