package server

import "context"

// Server defines the lifecycle contract of the development server.
type Server interface {
	// Run serves requests until ctx is done or a termination signal
	// arrives, then shuts every listener down.
	Run(ctx context.Context) error

	// Addrs returns the bound address of every listener by name.
	Addrs() map[string]string
}

// transportServer is one listener managed by Server.
type transportServer interface {
	Name() string
	Addr() string
	RunServer() error
	Shutdown(ctx context.Context) error
	// Close releases the listener of a server that never ran.
	Close() error
}
