package grpc

import (
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/axle-client/internal/handler/rpcerr"
	"github.com/MKhiriev/axle-client/internal/transport"
)

// toStatus converts a service error into a gRPC status error. Errors that
// already carry a status pass through.
func toStatus(err error) error {
	if _, ok := status.FromError(err); ok {
		return err
	}
	ce := rpcerr.CallError(err)
	return status.Error(transport.GRPCCode(ce.Code), ce.Message)
}
