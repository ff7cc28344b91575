package transport

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/MKhiriev/axle-client/internal/utils"
	"github.com/go-resty/resty/v2"
)

const (
	connectProtocolVersion = "1"

	headerProtocolVersion = "Connect-Protocol-Version"
	headerTimeout         = "Connect-Timeout-Ms"

	contentTypeUnary  = "application/json"
	contentTypeStream = "application/connect+json"
)

// ContentTypeStream is the media type of Connect JSON streaming bodies.
const ContentTypeStream = contentTypeStream

type wireError struct {
	Code    Code   `json:"code"`
	Message string `json:"message,omitempty"`
}

type endStreamMessage struct {
	Error    *wireError          `json:"error,omitempty"`
	Metadata map[string][]string `json:"metadata,omitempty"`
}

type connectTransport struct {
	chain

	client  *utils.HTTPClient
	baseURL string
	codec   Codec
}

// NewConnectTransport builds a Connect protocol transport posting JSON
// messages to baseURL + procedure.
func NewConnectTransport(baseURL string, opts Options) (Transport, error) {
	opts = opts.withDefaults()
	normalized, err := normalizeBaseURL(baseURL)
	if err != nil {
		return nil, err
	}

	t := &connectTransport{
		client:  utils.NewHTTPClient(opts.HTTPClient),
		baseURL: normalized,
		codec:   opts.Codec,
	}
	t.client.
		SetBaseURL(normalized).
		SetHeader(headerProtocolVersion, connectProtocolVersion)

	t.chain = newChain(t.unary, t.serverStream, opts.Timeout, opts.Interceptors)
	return t, nil
}

func (t *connectTransport) Unary(ctx context.Context, procedure string, req, resp any) error {
	return t.callUnary(ctx, procedure, req, resp)
}

func (t *connectTransport) ServerStream(ctx context.Context, procedure string, req any) (Stream, error) {
	return t.callStream(ctx, procedure, req)
}

func (t *connectTransport) Endpoint() string {
	return t.baseURL
}

func (t *connectTransport) Close() error {
	t.client.GetClient().CloseIdleConnections()
	return nil
}

func (t *connectTransport) request(ctx context.Context, contentType string, body []byte) *resty.Request {
	r := t.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", contentType).
		SetBody(body)
	for k, v := range HeadersFromContext(ctx) {
		r.Header[k] = v
	}
	if deadline, ok := ctx.Deadline(); ok {
		ms := time.Until(deadline).Milliseconds()
		if ms < 1 {
			ms = 1
		}
		r.SetHeader(headerTimeout, strconv.FormatInt(ms, 10))
	}
	return r
}

func (t *connectTransport) unary(ctx context.Context, procedure string, req, resp any) error {
	body, err := t.codec.Marshal(req)
	if err != nil {
		return &CallError{Kind: KindTransport, Code: CodeInternal, Message: fmt.Sprintf("marshal request: %v", err), Err: err}
	}

	res, err := t.request(ctx, contentTypeUnary, body).Post(procedure)
	if err != nil {
		return transportError(err)
	}
	if err = mapConnectError(res.StatusCode(), res.Body(), t.codec); err != nil {
		return err
	}
	if err = t.codec.Unmarshal(res.Body(), resp); err != nil {
		return decodeError(err)
	}
	return nil
}

func (t *connectTransport) serverStream(ctx context.Context, procedure string, req any) (Stream, error) {
	payload, err := t.codec.Marshal(req)
	if err != nil {
		return nil, &CallError{Kind: KindTransport, Code: CodeInternal, Message: fmt.Sprintf("marshal request: %v", err), Err: err}
	}

	ctx, cancel := context.WithCancel(ctx)
	res, err := t.request(ctx, contentTypeStream, marshalEnvelope(0, payload)).
		SetDoNotParseResponse(true).
		Post(procedure)
	if err != nil {
		cancel()
		return nil, transportError(err)
	}

	body := res.RawBody()
	if res.StatusCode() != http.StatusOK {
		defer cancel()
		defer body.Close()
		data, _ := io.ReadAll(io.LimitReader(body, maxEnvelopeSize))
		return nil, mapConnectError(res.StatusCode(), data, t.codec)
	}

	return &connectStream{body: body, cancel: cancel, codec: t.codec}, nil
}

type connectStream struct {
	body   io.ReadCloser
	cancel context.CancelFunc
	codec  Codec

	mu   sync.Mutex
	done error

	closeOnce sync.Once
}

func (s *connectStream) Receive(msg any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.done != nil {
		return s.done
	}

	env, err := readEnvelope(s.body)
	if err != nil {
		switch {
		case isEOF(err):
			// the server must finish with an end-stream frame
			s.done = &CallError{Kind: KindProtocol, Code: CodeInternal, Message: "stream ended without end-stream message", Err: io.ErrUnexpectedEOF}
		case errors.Is(err, errCompressedEnvelope):
			s.done = &CallError{Kind: KindProtocol, Code: CodeInternal, Message: err.Error(), Err: err}
		default:
			s.done = transportError(err)
		}
		return s.done
	}

	if env.endStream() {
		s.done = s.parseEndStream(env.data)
		return s.done
	}

	if err = s.codec.Unmarshal(env.data, msg); err != nil {
		s.done = decodeError(err)
		return s.done
	}
	return nil
}

func (s *connectStream) parseEndStream(data []byte) error {
	var end endStreamMessage
	if err := s.codec.Unmarshal(data, &end); err != nil {
		return decodeError(err)
	}
	if end.Error != nil {
		code := end.Error.Code
		if code == "" {
			code = CodeUnknown
		}
		return &CallError{Kind: KindProtocol, Code: code, Message: end.Error.Message}
	}
	return io.EOF
}

func (s *connectStream) Close() error {
	var err error
	s.closeOnce.Do(func() {
		s.cancel()
		err = s.body.Close()
	})
	return err
}
