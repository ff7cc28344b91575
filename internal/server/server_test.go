package server

import (
	"context"
	"net"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/axle-client/internal/config"
	"github.com/MKhiriev/axle-client/internal/handler"
	"github.com/MKhiriev/axle-client/internal/logger"
	"github.com/MKhiriev/axle-client/internal/rpc/bff"
	"github.com/MKhiriev/axle-client/internal/service"
	"github.com/MKhiriev/axle-client/internal/storage"
	"github.com/MKhiriev/axle-client/internal/transport"
	"github.com/MKhiriev/axle-client/models"
)

func newTestServer(t *testing.T, protocol string, opts ...Option) (Server, *service.Services) {
	t.Helper()

	storages, err := storage.NewStorages(context.Background(), config.DevServerDB{}, logger.Nop())
	require.NoError(t, err)
	services := service.NewServices(storages, logger.Nop())

	handlers, err := handler.NewHandlers(services, protocol, logger.Nop())
	require.NoError(t, err)

	cfg := &config.DevServerConfig{
		Protocol:       protocol,
		BFFAddress:     "127.0.0.1:0",
		GatewayAddress: "127.0.0.1:0",
	}
	srv, err := NewServer(handlers, cfg, logger.Nop(), append(opts, BeforeShutdown(services.Close))...)
	require.NoError(t, err)
	return srv, services
}

func runInBackground(t *testing.T, srv Server) (context.CancelFunc, <-chan error) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()
	return cancel, done
}

func waitStopped(t *testing.T, done <-chan error) error {
	t.Helper()
	select {
	case err := <-done:
		return err
	case <-time.After(2 * ShutdownTimeout):
		t.Fatal("server did not stop")
		return nil
	}
}

func TestServer_ConnectServesBothListeners(t *testing.T) {
	var hookCalls atomic.Int32
	srv, _ := newTestServer(t, config.ProtocolConnect, BeforeShutdown(func() { hookCalls.Add(1) }))

	addrs := srv.Addrs()
	require.Len(t, addrs, 2)
	assert.NotEqual(t, addrs[NameBFF], addrs[NameGateway])

	cancel, done := runInBackground(t, srv)

	for _, addr := range addrs {
		require.Eventually(t, func() bool {
			resp, err := http.Get("http://" + addr + "/healthz")
			if err != nil {
				return false
			}
			resp.Body.Close()
			return resp.StatusCode == http.StatusOK
		}, 2*time.Second, 10*time.Millisecond)
	}

	cancel()
	require.NoError(t, waitStopped(t, done))
	assert.Equal(t, int32(1), hookCalls.Load())
}

func TestServer_GRPC(t *testing.T) {
	srv, _ := newTestServer(t, config.ProtocolGRPC)
	cancel, done := runInBackground(t, srv)

	tr, err := transport.New(srv.Addrs()[NameBFF], transport.Options{Protocol: config.ProtocolGRPC})
	require.NoError(t, err)
	defer tr.Close()
	users, err := bff.NewUserServiceClient(tr)
	require.NoError(t, err)

	ctx, cancelCall := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancelCall()
	me, err := users.GetMe(ctx, &models.GetMeRequest{})
	require.NoError(t, err)
	assert.Equal(t, storage.DemoUser.ID, me.User.ID)

	cancel()
	require.NoError(t, waitStopped(t, done))
}

func TestNewServer_AddressInUse(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	storages, err := storage.NewStorages(context.Background(), config.DevServerDB{}, logger.Nop())
	require.NoError(t, err)
	handlers, err := handler.NewHandlers(service.NewServices(storages, logger.Nop()), config.ProtocolConnect, logger.Nop())
	require.NoError(t, err)

	_, err = NewServer(handlers, &config.DevServerConfig{
		BFFAddress:     "127.0.0.1:0",
		GatewayAddress: busy.Addr().String(),
	}, logger.Nop())

	require.Error(t, err)
	assert.Contains(t, err.Error(), NameGateway)
}

func TestNewServer_NoHandlers(t *testing.T) {
	_, err := NewServer(&handler.Handlers{}, &config.DevServerConfig{}, logger.Nop())

	assert.ErrorIs(t, err, errNoServersAreCreated)
}
