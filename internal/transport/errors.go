package transport

import (
	"context"
	"errors"
	"fmt"
)

var (
	ErrUnknownEndpoint     = errors.New("unknown endpoint")
	ErrInvalidEndpoint     = errors.New("invalid endpoint address")
	ErrUnsupportedProtocol = errors.New("unsupported transport protocol")
	ErrClosed              = errors.New("transport closed")
)

// Kind classifies where a call failed.
type Kind int

const (
	// KindTransport means the exchange did not complete: network
	// unreachable, timeout, cancellation.
	KindTransport Kind = iota + 1
	// KindProtocol means the server answered with a structured failure.
	KindProtocol
	// KindDecode means a reply arrived but did not match the expected shape.
	KindDecode
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport"
	case KindProtocol:
		return "protocol"
	case KindDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// Code is an RPC status code using the Connect protocol names.
type Code string

const (
	CodeCanceled           Code = "canceled"
	CodeUnknown            Code = "unknown"
	CodeInvalidArgument    Code = "invalid_argument"
	CodeDeadlineExceeded   Code = "deadline_exceeded"
	CodeNotFound           Code = "not_found"
	CodeAlreadyExists      Code = "already_exists"
	CodePermissionDenied   Code = "permission_denied"
	CodeResourceExhausted  Code = "resource_exhausted"
	CodeFailedPrecondition Code = "failed_precondition"
	CodeAborted            Code = "aborted"
	CodeOutOfRange         Code = "out_of_range"
	CodeUnimplemented      Code = "unimplemented"
	CodeInternal           Code = "internal"
	CodeUnavailable        Code = "unavailable"
	CodeDataLoss           Code = "data_loss"
	CodeUnauthenticated    Code = "unauthenticated"
)

// CallError is the single error shape returned by transports and typed
// clients. Message is empty when the failure carried no human readable text.
type CallError struct {
	Kind    Kind
	Code    Code
	Message string
	Err     error
}

func (e *CallError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("rpc %s error: %s: %s", e.Kind, e.Code, e.Message)
	}
	return fmt.Sprintf("rpc %s error: %s", e.Kind, e.Code)
}

func (e *CallError) Unwrap() error {
	return e.Err
}

// CodeOf returns the code carried by err, CodeUnknown for other non-nil
// errors and "" for nil.
func CodeOf(err error) Code {
	if err == nil {
		return ""
	}
	var ce *CallError
	if errors.As(err, &ce) {
		return ce.Code
	}
	return CodeUnknown
}

// MessageOf returns the human readable message carried by err, or "" when
// there is none.
func MessageOf(err error) string {
	if err == nil {
		return ""
	}
	var ce *CallError
	if errors.As(err, &ce) {
		return ce.Message
	}
	return err.Error()
}

func transportError(err error) *CallError {
	code := CodeUnavailable
	switch {
	case errors.Is(err, context.Canceled):
		code = CodeCanceled
	case errors.Is(err, context.DeadlineExceeded):
		code = CodeDeadlineExceeded
	}
	return &CallError{Kind: KindTransport, Code: code, Message: err.Error(), Err: err}
}

func decodeError(err error) *CallError {
	return &CallError{Kind: KindDecode, Code: CodeInternal, Message: err.Error(), Err: err}
}

// asCallError normalises errors produced by interceptors so that callers
// always see a *CallError.
func asCallError(err error) error {
	if err == nil {
		return nil
	}
	var ce *CallError
	if errors.As(err, &ce) {
		return err
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return transportError(err)
	}
	return &CallError{Kind: KindTransport, Code: CodeUnknown, Message: err.Error(), Err: err}
}
