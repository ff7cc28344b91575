package transport

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/axle-client/internal/logger"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// HeaderRequestID carries the per-call correlation id.
const HeaderRequestID = "X-Request-Id"

const tracerName = "github.com/MKhiriev/axle-client/internal/transport"

// UnaryFunc performs one unary exchange.
type UnaryFunc func(ctx context.Context, procedure string, req, resp any) error

// StreamFunc opens one server stream.
type StreamFunc func(ctx context.Context, procedure string, req any) (Stream, error)

// Interceptor wraps transport calls.
type Interceptor interface {
	WrapUnary(next UnaryFunc) UnaryFunc
	WrapStream(next StreamFunc) StreamFunc
}

// RequestIDInterceptor stamps every call with an X-Request-Id header unless
// the context already carries one.
type RequestIDInterceptor struct{}

func (RequestIDInterceptor) WrapUnary(next UnaryFunc) UnaryFunc {
	return func(ctx context.Context, procedure string, req, resp any) error {
		return next(ensureRequestID(ctx), procedure, req, resp)
	}
}

func (RequestIDInterceptor) WrapStream(next StreamFunc) StreamFunc {
	return func(ctx context.Context, procedure string, req any) (Stream, error) {
		return next(ensureRequestID(ctx), procedure, req)
	}
}

func ensureRequestID(ctx context.Context) context.Context {
	if HeadersFromContext(ctx).Get(HeaderRequestID) != "" {
		return ctx
	}
	return WithHeader(ctx, HeaderRequestID, uuid.NewString())
}

// LoggingInterceptor writes one log line per completed call.
type LoggingInterceptor struct {
	Logger *logger.Logger
}

func (i LoggingInterceptor) WrapUnary(next UnaryFunc) UnaryFunc {
	return func(ctx context.Context, procedure string, req, resp any) error {
		start := time.Now()
		err := next(ctx, procedure, req, resp)

		ev := i.Logger.Debug()
		if err != nil {
			ev = i.Logger.Warn().Err(err).Str("code", string(CodeOf(err)))
		}
		ev.Str("procedure", procedure).
			Str("request_id", HeadersFromContext(ctx).Get(HeaderRequestID)).
			Dur("duration", time.Since(start)).
			Msg("unary call")
		return err
	}
}

func (i LoggingInterceptor) WrapStream(next StreamFunc) StreamFunc {
	return func(ctx context.Context, procedure string, req any) (Stream, error) {
		s, err := next(ctx, procedure, req)
		if err != nil {
			i.Logger.Warn().Err(err).
				Str("procedure", procedure).
				Str("code", string(CodeOf(err))).
				Msg("stream open failed")
			return nil, err
		}
		i.Logger.Debug().
			Str("procedure", procedure).
			Str("request_id", HeadersFromContext(ctx).Get(HeaderRequestID)).
			Msg("stream opened")
		return s, nil
	}
}

// TracingInterceptor starts an OpenTelemetry client span per call using the
// global tracer provider and injects the span context into the outgoing
// headers with the global propagator. Stream spans end when the stream is
// closed.
type TracingInterceptor struct{}

func (TracingInterceptor) WrapUnary(next UnaryFunc) UnaryFunc {
	return func(ctx context.Context, procedure string, req, resp any) error {
		ctx, span := startSpan(ctx, procedure)
		defer span.End()

		err := next(ctx, procedure, req, resp)
		recordSpanError(span, err)
		return err
	}
}

func (TracingInterceptor) WrapStream(next StreamFunc) StreamFunc {
	return func(ctx context.Context, procedure string, req any) (Stream, error) {
		ctx, span := startSpan(ctx, procedure)
		s, err := next(ctx, procedure, req)
		if err != nil {
			recordSpanError(span, err)
			span.End()
			return nil, err
		}
		return &tracedStream{Stream: s, span: span}, nil
	}
}

func startSpan(ctx context.Context, procedure string) (context.Context, trace.Span) {
	service, method := splitProcedure(procedure)
	ctx, span := otel.Tracer(tracerName).Start(ctx, strings.TrimPrefix(procedure, "/"),
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("rpc.service", service),
			attribute.String("rpc.method", method),
		),
	)
	return injectTraceContext(ctx), span
}

func injectTraceContext(ctx context.Context) context.Context {
	carrier := propagation.MapCarrier{}
	otel.GetTextMapPropagator().Inject(ctx, carrier)
	for k, v := range carrier {
		ctx = WithHeader(ctx, k, v)
	}
	return ctx
}

func recordSpanError(span trace.Span, err error) {
	if err == nil {
		return
	}
	span.RecordError(err)
	span.SetStatus(otelcodes.Error, string(CodeOf(err)))
}

type tracedStream struct {
	Stream
	span trace.Span
}

func (s *tracedStream) Receive(msg any) error {
	err := s.Stream.Receive(msg)
	if err != nil && !isEOF(err) {
		recordSpanError(s.span, err)
	}
	return err
}

func (s *tracedStream) Close() error {
	err := s.Stream.Close()
	s.span.End()
	return err
}

// DefaultInterceptors returns the interceptors installed by the client
// runtime: request id, tracing and logging, outermost first.
func DefaultInterceptors(log *logger.Logger) []Interceptor {
	return []Interceptor{
		RequestIDInterceptor{},
		TracingInterceptor{},
		LoggingInterceptor{Logger: log},
	}
}

func splitProcedure(procedure string) (service, method string) {
	p := strings.TrimPrefix(procedure, "/")
	i := strings.LastIndexByte(p, '/')
	if i < 0 {
		return "", p
	}
	return p[:i], p[i+1:]
}
