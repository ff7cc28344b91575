package transport

import (
	"fmt"
	"net/http"
)

// mapConnectError converts a non-200 Connect reply into a *CallError. The
// JSON error body wins; the HTTP status is only consulted when the body does
// not name a code.
func mapConnectError(status int, body []byte, codec Codec) error {
	if status == http.StatusOK {
		return nil
	}

	var we wireError
	if err := codec.Unmarshal(body, &we); err == nil && we.Code != "" {
		return &CallError{Kind: KindProtocol, Code: we.Code, Message: we.Message}
	}

	return &CallError{
		Kind:    KindProtocol,
		Code:    codeFromHTTPStatus(status),
		Message: fmt.Sprintf("unexpected HTTP status %d %s", status, http.StatusText(status)),
	}
}

func codeFromHTTPStatus(status int) Code {
	switch status {
	case http.StatusBadRequest:
		return CodeInternal
	case http.StatusUnauthorized:
		return CodeUnauthenticated
	case http.StatusForbidden:
		return CodePermissionDenied
	case http.StatusNotFound:
		return CodeUnimplemented
	case http.StatusRequestTimeout:
		return CodeDeadlineExceeded
	case http.StatusConflict:
		return CodeAborted
	case http.StatusPreconditionFailed:
		return CodeFailedPrecondition
	case http.StatusTooManyRequests, http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return CodeUnavailable
	default:
		return CodeUnknown
	}
}

// HTTPStatusFromCode is the inverse mapping used by servers writing Connect
// unary errors.
func HTTPStatusFromCode(code Code) int {
	switch code {
	case CodeCanceled:
		return 499
	case CodeInvalidArgument, CodeOutOfRange:
		return http.StatusBadRequest
	case CodeDeadlineExceeded:
		return http.StatusGatewayTimeout
	case CodeNotFound, CodeUnimplemented:
		return http.StatusNotFound
	case CodeAlreadyExists, CodeAborted:
		return http.StatusConflict
	case CodePermissionDenied:
		return http.StatusForbidden
	case CodeResourceExhausted:
		return http.StatusTooManyRequests
	case CodeFailedPrecondition:
		return http.StatusPreconditionFailed
	case CodeUnavailable:
		return http.StatusServiceUnavailable
	case CodeUnauthenticated:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
