// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/axle-client/internal/app"
	"github.com/MKhiriev/axle-client/internal/transport"
)

// ErrMissingDependency is returned by New when a required client or store
// is nil.
var ErrMissingDependency = errors.New("tui: missing dependency")

// humanizeError turns a call failure into the sentence shown to the user.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}
	if msg := app.MessageForCode(transport.CodeOf(err)); msg != "" {
		if detail := transport.MessageOf(err); detail != "" && transport.CodeOf(err) == transport.CodeInvalidArgument {
			return msg + ": " + detail
		}
		return msg
	}
	return err.Error()
}
