package transport

import (
	"context"
	"crypto/tls"
	"errors"
	"io"
	"net/url"
	"strings"
	"sync"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type grpcTransport struct {
	chain

	conn    *grpc.ClientConn
	baseURL string
}

// NewGRPCTransport builds a gRPC transport for baseURL. An https scheme
// selects TLS; anything else dials in plaintext. Messages use opts.Codec,
// which must also be registered on the server side.
func NewGRPCTransport(baseURL string, opts Options) (Transport, error) {
	opts = opts.withDefaults()
	normalized, err := normalizeBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	u, _ := url.Parse(normalized)

	creds := insecure.NewCredentials()
	if u.Scheme == "https" {
		creds = credentials.NewTLS(&tls.Config{MinVersion: tls.VersionTLS12})
	}

	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(creds),
		grpc.WithStatsHandler(otelgrpc.NewClientHandler()),
		grpc.WithDefaultCallOptions(grpc.ForceCodec(opts.Codec)),
	}, opts.DialOptions...)

	conn, err := grpc.NewClient("passthrough:///"+hostPort(u), dialOpts...)
	if err != nil {
		return nil, errors.Join(ErrInvalidEndpoint, err)
	}

	t := &grpcTransport{conn: conn, baseURL: normalized}
	t.chain = newChain(t.unary, t.serverStream, opts.Timeout, opts.Interceptors)
	return t, nil
}

func hostPort(u *url.URL) string {
	if u.Port() != "" {
		return u.Host
	}
	if u.Scheme == "https" {
		return u.Hostname() + ":443"
	}
	return u.Hostname() + ":80"
}

func (t *grpcTransport) Unary(ctx context.Context, procedure string, req, resp any) error {
	return t.callUnary(ctx, procedure, req, resp)
}

func (t *grpcTransport) ServerStream(ctx context.Context, procedure string, req any) (Stream, error) {
	return t.callStream(ctx, procedure, req)
}

func (t *grpcTransport) Endpoint() string {
	return t.baseURL
}

func (t *grpcTransport) Close() error {
	return t.conn.Close()
}

func outgoingMetadata(ctx context.Context) context.Context {
	h := HeadersFromContext(ctx)
	if len(h) == 0 {
		return ctx
	}
	kv := make([]string, 0, len(h)*2)
	for k, vs := range h {
		for _, v := range vs {
			kv = append(kv, strings.ToLower(k), v)
		}
	}
	return metadata.AppendToOutgoingContext(ctx, kv...)
}

func (t *grpcTransport) unary(ctx context.Context, procedure string, req, resp any) error {
	if err := t.conn.Invoke(outgoingMetadata(ctx), procedure, req, resp); err != nil {
		return fromGRPCError(err)
	}
	return nil
}

func (t *grpcTransport) serverStream(ctx context.Context, procedure string, req any) (Stream, error) {
	ctx, cancel := context.WithCancel(outgoingMetadata(ctx))
	desc := &grpc.StreamDesc{StreamName: procedure, ServerStreams: true}

	cs, err := t.conn.NewStream(ctx, desc, procedure)
	if err != nil {
		cancel()
		return nil, fromGRPCError(err)
	}
	if err = cs.SendMsg(req); err != nil {
		cancel()
		return nil, fromGRPCError(err)
	}
	if err = cs.CloseSend(); err != nil {
		cancel()
		return nil, fromGRPCError(err)
	}
	return &grpcStream{cs: cs, cancel: cancel}, nil
}

type grpcStream struct {
	cs        grpc.ClientStream
	cancel    context.CancelFunc
	closeOnce sync.Once
}

func (s *grpcStream) Receive(msg any) error {
	err := s.cs.RecvMsg(msg)
	if err == nil || errors.Is(err, io.EOF) {
		return err
	}
	return fromGRPCError(err)
}

func (s *grpcStream) Close() error {
	s.closeOnce.Do(s.cancel)
	return nil
}

func fromGRPCError(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return transportError(err)
	}

	st, ok := status.FromError(err)
	if !ok {
		return transportError(err)
	}

	ce := &CallError{Kind: KindProtocol, Code: codeFromGRPC(st.Code()), Message: st.Message(), Err: err}
	switch st.Code() {
	case codes.Unavailable, codes.DeadlineExceeded, codes.Canceled:
		ce.Kind = KindTransport
	case codes.Internal:
		if strings.Contains(st.Message(), "unmarshal") {
			ce.Kind = KindDecode
		}
	}
	return ce
}

func codeFromGRPC(c codes.Code) Code {
	switch c {
	case codes.Canceled:
		return CodeCanceled
	case codes.InvalidArgument:
		return CodeInvalidArgument
	case codes.DeadlineExceeded:
		return CodeDeadlineExceeded
	case codes.NotFound:
		return CodeNotFound
	case codes.AlreadyExists:
		return CodeAlreadyExists
	case codes.PermissionDenied:
		return CodePermissionDenied
	case codes.ResourceExhausted:
		return CodeResourceExhausted
	case codes.FailedPrecondition:
		return CodeFailedPrecondition
	case codes.Aborted:
		return CodeAborted
	case codes.OutOfRange:
		return CodeOutOfRange
	case codes.Unimplemented:
		return CodeUnimplemented
	case codes.Internal:
		return CodeInternal
	case codes.Unavailable:
		return CodeUnavailable
	case codes.DataLoss:
		return CodeDataLoss
	case codes.Unauthenticated:
		return CodeUnauthenticated
	default:
		return CodeUnknown
	}
}

// GRPCCode is the inverse of the mapping applied to incoming gRPC statuses.
func GRPCCode(c Code) codes.Code {
	for gc := codes.OK; gc <= codes.Unauthenticated; gc++ {
		if gc != codes.OK && codeFromGRPC(gc) == c {
			return gc
		}
	}
	return codes.Unknown
}
