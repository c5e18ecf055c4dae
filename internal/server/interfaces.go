package server

import "context"

// Server defines the lifecycle contract of the status API server.
type Server interface {
	// RunServer serves requests until ctx is cancelled or the listener
	// fails, then shuts down gracefully. A clean shutdown returns nil.
	RunServer(ctx context.Context) error
}
