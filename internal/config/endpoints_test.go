package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEndpoints_Resolve(t *testing.T) {
	e := Endpoints{BFF: "http://bff:1", Gateway: "http://gw:2"}

	tests := []struct {
		name string
		want string
	}{
		{name: "bff", want: "http://bff:1"},
		{name: "gateway", want: "http://gw:2"},
		{name: " BFF ", want: "http://bff:1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.Resolve(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEndpoints_Resolve_Unknown(t *testing.T) {
	_, err := Endpoints{}.Resolve("billing")
	assert.ErrorIs(t, err, ErrUnknownEndpoint)
}

func TestEndpoints_Names(t *testing.T) {
	assert.Equal(t, []string{"bff", "gateway"}, Endpoints{}.Names())
}
