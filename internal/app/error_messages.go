// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app holds user-facing wording shared by the axle devserver and
// the terminal client.
package app

import "github.com/MKhiriev/axle-client/internal/transport"

const (
	// MsgInvalidDataProvided is shown when the server rejected the request
	// fields.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError replaces the text of internal server failures.
	MsgInternalServerError = "internal server error"

	MsgNotFound          = "not found, it may have been deleted"
	MsgAlreadyExists     = "already exists"
	MsgServerUnavailable = "server is unavailable, check that the devserver is running"
	MsgTimedOut          = "request timed out"
	MsgCanceled          = "request canceled"
	MsgAccessDenied      = "access denied"
	MsgUnimplemented     = "the server does not support this call"
	MsgMalformedResponse = "the server sent a response the client could not read"
)

var codeMessages = map[transport.Code]string{
	transport.CodeInvalidArgument:    MsgInvalidDataProvided,
	transport.CodeOutOfRange:         MsgInvalidDataProvided,
	transport.CodeInternal:           MsgInternalServerError,
	transport.CodeNotFound:           MsgNotFound,
	transport.CodeAlreadyExists:      MsgAlreadyExists,
	transport.CodeUnavailable:        MsgServerUnavailable,
	transport.CodeDeadlineExceeded:   MsgTimedOut,
	transport.CodeCanceled:           MsgCanceled,
	transport.CodePermissionDenied:   MsgAccessDenied,
	transport.CodeUnauthenticated:    MsgAccessDenied,
	transport.CodeUnimplemented:      MsgUnimplemented,
	transport.CodeDataLoss:           MsgMalformedResponse,
	transport.CodeFailedPrecondition: MsgInvalidDataProvided,
}

// MessageForCode returns the sentence shown for a failed call with code c,
// or "" when there is none.
func MessageForCode(c transport.Code) string {
	return codeMessages[c]
}
