package server

import "context"

// Server defines the lifecycle contract of the bridge process.
//
// Implementations block in [RunServer] until ctx is cancelled or a stop
// signal arrives, and release resources in [Shutdown].
type Server interface {
	// RunServer starts the session, the HTTP server and the workers and
	// blocks until they stop.
	RunServer(ctx context.Context) error

	// Shutdown gracefully stops the HTTP server and the session.
	Shutdown(ctx context.Context) error
}
