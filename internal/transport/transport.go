package transport

import (
	"context"
	"net/http"
	"time"

	"github.com/MKhiriev/axle-client/internal/config"
	"github.com/MKhiriev/axle-client/internal/logger"
	"google.golang.org/grpc"
)

// Transport performs RPC exchanges against a single base endpoint.
// Implementations hold no per-call state and are safe for concurrent use by
// any number of clients.
type Transport interface {
	// Unary sends req to procedure (e.g. "/bff.v1.ProjectService/ListProjects")
	// and decodes the reply into resp. It performs exactly one exchange.
	Unary(ctx context.Context, procedure string, req, resp any) error

	// ServerStream sends req to procedure and returns the inbound stream of
	// replies. Cancelling ctx aborts the stream.
	ServerStream(ctx context.Context, procedure string, req any) (Stream, error)

	// Endpoint returns the normalised base URL this transport talks to.
	Endpoint() string

	// Close releases connections held by the transport.
	Close() error
}

// Stream is the inbound side of a server-streaming call.
type Stream interface {
	// Receive decodes the next message into msg. It returns io.EOF when the
	// server completed the stream cleanly and a *CallError otherwise.
	Receive(msg any) error

	// Close releases the underlying connection. It is safe to call more than
	// once.
	Close() error
}

// Options configures transports built directly or through a [Provider].
type Options struct {
	// Protocol is config.ProtocolConnect (default) or config.ProtocolGRPC.
	Protocol string

	// Codec encodes messages. Defaults to [JSONCodec].
	Codec Codec

	// Timeout bounds unary calls whose context has no deadline. Zero means
	// no bound. Streams are never bounded by it.
	Timeout time.Duration

	// Interceptors wrap every call; the first one is the outermost.
	Interceptors []Interceptor

	Logger *logger.Logger

	// HTTPClient replaces the HTTP client used by the Connect transport.
	HTTPClient *http.Client

	// DialOptions are appended to the gRPC transport's defaults.
	DialOptions []grpc.DialOption
}

func (o Options) withDefaults() Options {
	if o.Protocol == "" {
		o.Protocol = config.ProtocolConnect
	}
	if o.Codec == nil {
		o.Codec = JSONCodec{}
	}
	if o.Logger == nil {
		o.Logger = logger.Nop()
	}
	return o
}

// New builds a transport for baseURL using the protocol selected in opts.
// The URL is validated immediately.
func New(baseURL string, opts Options) (Transport, error) {
	opts = opts.withDefaults()
	switch opts.Protocol {
	case config.ProtocolConnect:
		return NewConnectTransport(baseURL, opts)
	case config.ProtocolGRPC:
		return NewGRPCTransport(baseURL, opts)
	default:
		return nil, ErrUnsupportedProtocol
	}
}

// chain holds the intercepted entry points shared by both implementations.
type chain struct {
	unary  UnaryFunc
	stream StreamFunc
}

func newChain(unary UnaryFunc, stream StreamFunc, timeout time.Duration, interceptors []Interceptor) chain {
	unary = withTimeout(unary, timeout)
	for i := len(interceptors) - 1; i >= 0; i-- {
		unary = interceptors[i].WrapUnary(unary)
		stream = interceptors[i].WrapStream(stream)
	}
	return chain{unary: unary, stream: stream}
}

func (c chain) callUnary(ctx context.Context, procedure string, req, resp any) error {
	return asCallError(c.unary(ctx, procedure, req, resp))
}

func (c chain) callStream(ctx context.Context, procedure string, req any) (Stream, error) {
	s, err := c.stream(ctx, procedure, req)
	if err != nil {
		return nil, asCallError(err)
	}
	return s, nil
}

func withTimeout(next UnaryFunc, timeout time.Duration) UnaryFunc {
	if timeout <= 0 {
		return next
	}
	return func(ctx context.Context, procedure string, req, resp any) error {
		if _, ok := ctx.Deadline(); !ok {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		return next(ctx, procedure, req, resp)
	}
}
