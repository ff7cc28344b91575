package app

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/axle-client/internal/transport"
)

func TestMessageForCode(t *testing.T) {
	tests := []struct {
		code transport.Code
		want string
	}{
		{transport.CodeInvalidArgument, MsgInvalidDataProvided},
		{transport.CodeUnavailable, MsgServerUnavailable},
		{transport.CodeInternal, MsgInternalServerError},
		{transport.CodeNotFound, MsgNotFound},
		{transport.CodeUnknown, ""},
		{transport.Code("bogus"), ""},
	}
	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.want, MessageForCode(tt.code))
		})
	}
}
