package rpc

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidServiceDesc = errors.New("invalid service description")
	ErrUnknownMethod      = errors.New("unknown method")
	ErrMethodKind         = errors.New("method kind mismatch")
)

// MethodKind tells whether a method is unary or server streaming.
type MethodKind int

const (
	MethodUnary MethodKind = iota + 1
	MethodServerStream
)

func (k MethodKind) String() string {
	switch k {
	case MethodUnary:
		return "unary"
	case MethodServerStream:
		return "server_stream"
	default:
		return "unknown"
	}
}

type MethodDesc struct {
	Name string
	Kind MethodKind
}

// ServiceDesc describes a remote service by its fully qualified name, e.g.
// "bff.v1.ProjectService", and its methods.
type ServiceDesc struct {
	Name    string
	Methods []MethodDesc
}

// Procedure returns the wire path of method: "/<service>/<method>".
func (d ServiceDesc) Procedure(method string) string {
	return "/" + d.Name + "/" + method
}

func (d ServiceDesc) validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return fmt.Errorf("%w: empty service name", ErrInvalidServiceDesc)
	}
	if len(d.Methods) == 0 {
		return fmt.Errorf("%w: %s has no methods", ErrInvalidServiceDesc, d.Name)
	}

	seen := make(map[string]struct{}, len(d.Methods))
	for _, m := range d.Methods {
		if m.Name == "" || strings.Contains(m.Name, "/") {
			return fmt.Errorf("%w: %s has a method with invalid name %q", ErrInvalidServiceDesc, d.Name, m.Name)
		}
		if m.Kind != MethodUnary && m.Kind != MethodServerStream {
			return fmt.Errorf("%w: %s/%s has no kind", ErrInvalidServiceDesc, d.Name, m.Name)
		}
		if _, dup := seen[m.Name]; dup {
			return fmt.Errorf("%w: %s/%s declared twice", ErrInvalidServiceDesc, d.Name, m.Name)
		}
		seen[m.Name] = struct{}{}
	}
	return nil
}
