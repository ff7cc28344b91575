// Package rpcerr maps service and storage errors onto RPC status codes
// shared by the Connect and gRPC handlers.
package rpcerr

import (
	"context"
	"errors"

	"github.com/MKhiriev/axle-client/internal/app"
	"github.com/MKhiriev/axle-client/internal/service"
	"github.com/MKhiriev/axle-client/internal/storage"
	"github.com/MKhiriev/axle-client/internal/transport"
)

var errorCodeMap = []struct {
	target error
	code   transport.Code
}{
	{service.ErrInvalidDataProvided, transport.CodeInvalidArgument},
	{service.ErrHubClosed, transport.CodeUnavailable},
	{storage.ErrNotFound, transport.CodeNotFound},
	{storage.ErrAlreadyExists, transport.CodeAlreadyExists},
	{context.Canceled, transport.CodeCanceled},
	{context.DeadlineExceeded, transport.CodeDeadlineExceeded},
}

// Code returns the RPC code for err. Unknown errors are internal.
func Code(err error) transport.Code {
	for _, e := range errorCodeMap {
		if errors.Is(err, e.target) {
			return e.code
		}
	}
	return transport.CodeInternal
}

// CallError converts err into the error shape written to clients.
func CallError(err error) *transport.CallError {
	code := Code(err)
	msg := err.Error()
	if code == transport.CodeInternal {
		msg = app.MsgInternalServerError
	}
	return &transport.CallError{Kind: transport.KindProtocol, Code: code, Message: msg, Err: err}
}
