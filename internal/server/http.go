package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/MKhiriev/upload-sink/internal/config"
	"github.com/MKhiriev/upload-sink/internal/logger"
)

type httpServer struct {
	server *http.Server
	logger *logger.Logger
}

// newHTTPServer configures a server that bounds request headers only; it
// has no write timeout.
func newHTTPServer(handler http.Handler, cfg config.Server, logger *logger.Logger) *httpServer {
	return &httpServer{
		server: &http.Server{
			Addr:              cfg.HTTPAddress,
			Handler:           handler,
			ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		},
		logger: logger,
	}
}

func (h *httpServer) Listen() (net.Listener, error) {
	ln, err := net.Listen("tcp", h.server.Addr)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", errListening, h.server.Addr, err)
	}
	return ln, nil
}

// Serve blocks until the server is shut down. A shutdown is not an error.
func (h *httpServer) Serve(ln net.Listener) error {
	if err := h.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("%w: %w", errServing, err)
	}
	return nil
}

// Shutdown waits for in-flight requests up to ctx and then drops the rest.
func (h *httpServer) Shutdown(ctx context.Context) error {
	if err := h.server.Shutdown(ctx); err != nil {
		h.logger.Warn().Err(err).Msg("graceful HTTP shutdown timed out, closing connections")
		return errors.Join(err, h.server.Close())
	}
	return nil
}
