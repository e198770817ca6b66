package server

// Server defines the lifecycle contract of the upload server.
//
// RunServer blocks until a stop signal arrives or the listener fails, and
// Shutdown releases in-flight uploads and stops the transport.
type Server interface {
	// RunServer binds the listener and serves requests. A bind failure is
	// returned immediately and is fatal for the process.
	RunServer() error

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown() error
}
