// Package gateway contains the typed client for gateway.v1.StreamingService,
// the server-push event stream.
package gateway

import (
	"context"

	"github.com/MKhiriev/axle-client/internal/rpc"
	"github.com/MKhiriev/axle-client/internal/transport"
	"github.com/MKhiriev/axle-client/models"
)

//go:generate mockgen -source=streaming_service.go -destination=../../mock/gateway_client_mock.go -package=mock

const StreamingServiceName = "gateway.v1.StreamingService"

const StreamingServiceSubscribeProcedure = "/gateway.v1.StreamingService/Subscribe"

var StreamingServiceDesc = rpc.ServiceDesc{
	Name: StreamingServiceName,
	Methods: []rpc.MethodDesc{
		{Name: "Subscribe", Kind: rpc.MethodServerStream},
	},
}

// StreamingServiceClient is a client for the gateway.v1.StreamingService
// service.
type StreamingServiceClient interface {
	// Subscribe opens the event stream for the projects in req (all projects
	// when empty) and pushes events to h until cancelled or finished.
	Subscribe(ctx context.Context, req *models.SubscribeRequest, h rpc.Handlers[models.Event]) (*rpc.Subscription[models.Event], error)
}

type streamingServiceClient struct {
	subscribe rpc.StreamFunc[models.SubscribeRequest, models.Event]
}

func NewStreamingServiceClient(t transport.Transport) (StreamingServiceClient, error) {
	c, err := rpc.NewClient(StreamingServiceDesc, t)
	if err != nil {
		return nil, err
	}
	subscribe, err := rpc.NewServerStream[models.SubscribeRequest, models.Event](c, "Subscribe")
	if err != nil {
		return nil, err
	}
	return &streamingServiceClient{subscribe: subscribe}, nil
}

func (c *streamingServiceClient) Subscribe(ctx context.Context, req *models.SubscribeRequest, h rpc.Handlers[models.Event]) (*rpc.Subscription[models.Event], error) {
	return c.subscribe(ctx, req, h)
}
