package rpc

import (
	"context"
	"testing"

	"github.com/MKhiriev/axle-client/internal/transport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testServiceDesc = ServiceDesc{
	Name: "test.v1.ThingService",
	Methods: []MethodDesc{
		{Name: "GetThing", Kind: MethodUnary},
		{Name: "WatchThings", Kind: MethodServerStream},
	},
}

// ── ServiceDesc ─────────────────────────────────────────────────────────────

func TestServiceDesc_Validate(t *testing.T) {
	tests := []struct {
		name string
		desc ServiceDesc
	}{
		{name: "empty name", desc: ServiceDesc{Methods: testServiceDesc.Methods}},
		{name: "no methods", desc: ServiceDesc{Name: "x.v1.S"}},
		{name: "slash in method", desc: ServiceDesc{Name: "x.v1.S", Methods: []MethodDesc{{Name: "a/b", Kind: MethodUnary}}}},
		{name: "missing kind", desc: ServiceDesc{Name: "x.v1.S", Methods: []MethodDesc{{Name: "A"}}}},
		{name: "duplicate", desc: ServiceDesc{Name: "x.v1.S", Methods: []MethodDesc{
			{Name: "A", Kind: MethodUnary}, {Name: "A", Kind: MethodServerStream},
		}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewClient(tt.desc, &fakeTransport{})
			assert.ErrorIs(t, err, ErrInvalidServiceDesc)
		})
	}
}

func TestServiceDesc_Procedure(t *testing.T) {
	assert.Equal(t, "/test.v1.ThingService/GetThing", testServiceDesc.Procedure("GetThing"))
}

func TestNewClient_NilTransport(t *testing.T) {
	_, err := NewClient(testServiceDesc, nil)
	assert.Error(t, err)
}

// ── Unary ───────────────────────────────────────────────────────────────────

func TestNewUnary_UnknownMethodAndKind(t *testing.T) {
	c, err := NewClient(testServiceDesc, &fakeTransport{})
	require.NoError(t, err)

	_, err = NewUnary[testRequest, testResponse](c, "DeleteThing")
	assert.ErrorIs(t, err, ErrUnknownMethod)

	_, err = NewUnary[testRequest, testResponse](c, "WatchThings")
	assert.ErrorIs(t, err, ErrMethodKind)

	_, err = NewServerStream[testRequest, testEvent](c, "GetThing")
	assert.ErrorIs(t, err, ErrMethodKind)
}

// TestUnary_OneExchange issues exactly one call on the bound procedure and
// returns the decoded reply.
func TestUnary_OneExchange(t *testing.T) {
	ft := &fakeTransport{unary: func(req, resp any) error {
		resp.(*testResponse).Echo = req.(*testRequest).Filter
		return nil
	}}
	c, err := NewClient(testServiceDesc, ft)
	require.NoError(t, err)
	get, err := NewUnary[testRequest, testResponse](c, "GetThing")
	require.NoError(t, err)

	resp, err := get(context.Background(), &testRequest{Filter: "abc"})

	require.NoError(t, err)
	assert.Equal(t, "abc", resp.Echo)
	assert.Equal(t, []string{"/test.v1.ThingService/GetThing"}, ft.procedures)
}

func TestUnary_NilRequest(t *testing.T) {
	ft := &fakeTransport{unary: func(req, _ any) error {
		assert.NotNil(t, req)
		return nil
	}}
	c, err := NewClient(testServiceDesc, ft)
	require.NoError(t, err)
	get, err := NewUnary[testRequest, testResponse](c, "GetThing")
	require.NoError(t, err)

	resp, err := get(context.Background(), nil)

	require.NoError(t, err)
	assert.NotNil(t, resp)
}

func TestUnary_PropagatesCallError(t *testing.T) {
	want := &transport.CallError{Kind: transport.KindProtocol, Code: transport.CodeNotFound, Message: "no thing"}
	ft := &fakeTransport{unary: func(_, _ any) error { return want }}
	c, err := NewClient(testServiceDesc, ft)
	require.NoError(t, err)
	get, err := NewUnary[testRequest, testResponse](c, "GetThing")
	require.NoError(t, err)

	resp, err := get(context.Background(), &testRequest{})

	assert.Nil(t, resp)
	var ce *transport.CallError
	require.ErrorAs(t, err, &ce)
	assert.Same(t, want, ce)
}
