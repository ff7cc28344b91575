package transport

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/MKhiriev/axle-client/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

type fakeStream struct {
	msgs   []string
	closed bool
}

func (s *fakeStream) Receive(msg any) error {
	if len(s.msgs) == 0 {
		return io.EOF
	}
	*(msg.(*string)) = s.msgs[0]
	s.msgs = s.msgs[1:]
	return nil
}

func (s *fakeStream) Close() error {
	s.closed = true
	return nil
}

func TestRequestIDInterceptor(t *testing.T) {
	var seen []string
	next := func(ctx context.Context, _ string, _, _ any) error {
		seen = append(seen, HeadersFromContext(ctx).Get(HeaderRequestID))
		return nil
	}
	call := RequestIDInterceptor{}.WrapUnary(next)

	require.NoError(t, call(context.Background(), "/s/M", nil, nil))
	require.NoError(t, call(context.Background(), "/s/M", nil, nil))
	require.NoError(t, call(WithHeader(context.Background(), HeaderRequestID, "fixed"), "/s/M", nil, nil))

	require.Len(t, seen, 3)
	assert.NotEmpty(t, seen[0])
	assert.NotEqual(t, seen[0], seen[1])
	assert.Equal(t, "fixed", seen[2])
}

func TestWithHeader_DoesNotMutateParent(t *testing.T) {
	parent := WithHeader(context.Background(), "X-A", "1")
	child := WithHeader(parent, "X-B", "2")

	assert.Empty(t, HeadersFromContext(parent).Get("X-B"))
	assert.Equal(t, "1", HeadersFromContext(child).Get("X-A"))
	assert.Equal(t, "2", HeadersFromContext(child).Get("X-B"))
}

func TestLoggingInterceptor_LogsFailureCode(t *testing.T) {
	var buf bytes.Buffer
	log := &logger.Logger{Logger: zerolog.New(&buf)}
	call := LoggingInterceptor{Logger: log}.WrapUnary(func(context.Context, string, any, any) error {
		return &CallError{Kind: KindProtocol, Code: CodeNotFound, Message: "gone"}
	})

	err := call(context.Background(), "/bff.v1.ProjectService/GetProject", nil, nil)

	require.Error(t, err)
	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.Contains(t, buf.String(), `"code":"not_found"`)
	assert.Contains(t, buf.String(), "/bff.v1.ProjectService/GetProject")
}

func TestTracingInterceptor_RecordsSpans(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	ti := TracingInterceptor{}
	unary := ti.WrapUnary(func(context.Context, string, any, any) error {
		return errors.New("boom")
	})
	_ = unary(context.Background(), "/bff.v1.UserService/GetMe", nil, nil)

	stream := &fakeStream{msgs: []string{"a"}}
	open := ti.WrapStream(func(context.Context, string, any) (Stream, error) { return stream, nil })
	s, err := open(context.Background(), "/gateway.v1.StreamingService/Subscribe", nil)
	require.NoError(t, err)
	var msg string
	require.NoError(t, s.Receive(&msg))
	require.ErrorIs(t, s.Receive(&msg), io.EOF)
	require.NoError(t, s.Close())

	spans := rec.Ended()
	require.Len(t, spans, 2)
	assert.Equal(t, "bff.v1.UserService/GetMe", spans[0].Name())
	assert.Equal(t, otelcodes.Error, spans[0].Status().Code)
	assert.Equal(t, "gateway.v1.StreamingService/Subscribe", spans[1].Name())
	assert.Equal(t, otelcodes.Unset, spans[1].Status().Code)
	assert.True(t, stream.closed)
}

func TestTracingInterceptor_InjectsTraceparent(t *testing.T) {
	tp := sdktrace.NewTracerProvider()
	prevTP, prevProp := otel.GetTracerProvider(), otel.GetTextMapPropagator()
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	t.Cleanup(func() {
		otel.SetTracerProvider(prevTP)
		otel.SetTextMapPropagator(prevProp)
	})

	var traceparent string
	unary := TracingInterceptor{}.WrapUnary(func(ctx context.Context, _ string, _, _ any) error {
		traceparent = HeadersFromContext(ctx).Get("traceparent")
		return nil
	})

	require.NoError(t, unary(context.Background(), "/bff.v1.UserService/GetMe", nil, nil))
	assert.Regexp(t, `^00-[0-9a-f]{32}-[0-9a-f]{16}-01$`, traceparent)
}

// TestChain_OrderAndNormalisation runs interceptors outermost first and
// turns plain errors into CallErrors.
func TestChain_OrderAndNormalisation(t *testing.T) {
	var order []string
	mk := func(name string) Interceptor {
		return orderInterceptor{name: name, order: &order}
	}
	c := newChain(func(context.Context, string, any, any) error {
		order = append(order, "call")
		return errors.New("raw")
	}, nil, 0, []Interceptor{mk("a"), mk("b")})

	err := c.callUnary(context.Background(), "/s/M", nil, nil)

	assert.Equal(t, []string{"a", "b", "call"}, order)
	var ce *CallError
	assert.ErrorAs(t, err, &ce)
}

type orderInterceptor struct {
	name  string
	order *[]string
}

func (o orderInterceptor) WrapUnary(next UnaryFunc) UnaryFunc {
	return func(ctx context.Context, p string, req, resp any) error {
		*o.order = append(*o.order, o.name)
		return next(ctx, p, req, resp)
	}
}

func (o orderInterceptor) WrapStream(next StreamFunc) StreamFunc {
	return next
}

func TestSplitProcedure(t *testing.T) {
	service, method := splitProcedure("/bff.v1.ProjectService/ListProjects")

	assert.Equal(t, "bff.v1.ProjectService", service)
	assert.Equal(t, "ListProjects", method)
}
