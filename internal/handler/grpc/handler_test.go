package grpc

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/MKhiriev/axle-client/internal/config"
	"github.com/MKhiriev/axle-client/internal/logger"
	"github.com/MKhiriev/axle-client/internal/rpc"
	"github.com/MKhiriev/axle-client/internal/rpc/bff"
	"github.com/MKhiriev/axle-client/internal/rpc/gateway"
	"github.com/MKhiriev/axle-client/internal/service"
	"github.com/MKhiriev/axle-client/internal/storage"
	"github.com/MKhiriev/axle-client/internal/transport"
	"github.com/MKhiriev/axle-client/models"
)

func startServer(t *testing.T) (transport.Transport, *service.Services) {
	t.Helper()

	storages, err := storage.NewStorages(context.Background(), config.DevServerDB{}, logger.Nop())
	require.NoError(t, err)
	services := service.NewServices(storages, logger.Nop())

	h := NewHandler(services, logger.Nop())
	srv := grpc.NewServer(h.ServerOptions()...)
	h.BFF(srv)
	h.Gateway(srv)

	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() { _ = srv.Serve(lis) }()

	tr, err := transport.NewGRPCTransport(lis.Addr().String(), transport.Options{Protocol: config.ProtocolGRPC})
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = tr.Close()
		services.Close()
		srv.Stop()
	})
	return tr, services
}

func TestGRPC_ProjectsRoundTrip(t *testing.T) {
	tr, _ := startServer(t)
	client, err := bff.NewProjectServiceClient(tr)
	require.NoError(t, err)
	ctx := context.Background()

	created, err := client.CreateProject(ctx, &models.CreateProjectRequest{Name: "Alpha"})
	require.NoError(t, err)

	list, err := client.ListProjects(ctx, &models.ListProjectsRequest{Page: 1, PageSize: 5})
	require.NoError(t, err)
	require.Len(t, list.Projects, 1)
	assert.Equal(t, created.Project.ID, list.Projects[0].ID)

	_, err = client.GetProject(ctx, &models.GetProjectRequest{ID: "missing"})
	assert.Equal(t, transport.CodeNotFound, transport.CodeOf(err))

	_, err = client.CreateProject(ctx, &models.CreateProjectRequest{})
	assert.Equal(t, transport.CodeInvalidArgument, transport.CodeOf(err))
}

func TestGRPC_GetMe(t *testing.T) {
	tr, _ := startServer(t)
	users, err := bff.NewUserServiceClient(tr)
	require.NoError(t, err)

	me, err := users.GetMe(context.Background(), &models.GetMeRequest{})

	require.NoError(t, err)
	assert.Equal(t, storage.DemoUser.Email, me.User.Email)
}

func TestGRPC_SubscribeEndsWhenHubCloses(t *testing.T) {
	tr, services := startServer(t)
	streaming, err := gateway.NewStreamingServiceClient(tr)
	require.NoError(t, err)

	received := make(chan models.Event, 1)
	ended := make(chan struct{})
	sub, err := streaming.Subscribe(context.Background(), &models.SubscribeRequest{ProjectIDs: []string{"p1"}}, rpc.Handlers[models.Event]{
		OnEvent: func(e *models.Event) { received <- *e },
		OnEnd:   func() { close(ended) },
	})
	require.NoError(t, err)
	defer sub.Cancel()

	require.Eventually(t, func() bool { return services.Hub.Len() == 1 }, 2*time.Second, 5*time.Millisecond)
	services.Hub.Publish(context.Background(), models.Event{ID: "e-other", ProjectID: "p2"})
	services.Hub.Publish(context.Background(), models.Event{ID: "e1", ProjectID: "p1", Type: service.EventProjectUpdated})

	select {
	case e := <-received:
		assert.Equal(t, "e1", e.ID)
	case <-time.After(2 * time.Second):
		t.Fatal("event not delivered")
	}

	services.Close()
	select {
	case <-ended:
	case <-time.After(2 * time.Second):
		t.Fatal("stream did not end")
	}
}

func TestToStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want codes.Code
		msg  string
	}{
		{"not found", storage.ErrNotFound, codes.NotFound, storage.ErrNotFound.Error()},
		{"internal hides details", errors.New("db exploded"), codes.Internal, "internal server error"},
		{"status passes through", status.Error(codes.Aborted, "busy"), codes.Aborted, "busy"},
		{"canceled", context.Canceled, codes.Canceled, context.Canceled.Error()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			st := status.Convert(toStatus(tt.err))
			assert.Equal(t, tt.want, st.Code())
			assert.Equal(t, tt.msg, st.Message())
		})
	}
}
