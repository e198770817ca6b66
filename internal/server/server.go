package server

import (
	"context"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/MKhiriev/upload-sink/internal/config"
	"github.com/MKhiriev/upload-sink/internal/handler"
	"github.com/MKhiriev/upload-sink/internal/logger"
	"github.com/MKhiriev/upload-sink/internal/service"
	"github.com/MKhiriev/upload-sink/internal/workers"
)

type server struct {
	httpServer *httpServer
	uploads    service.UploadService
	workers    *workers.Workers

	shutdownTimeout time.Duration
	shutdownOnce    sync.Once
	shutdownErr     error

	logger *logger.Logger
}

func NewServer(handlers *handler.Handlers, services *service.Services, background *workers.Workers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil {
		return nil, errNoServersAreCreated
	}
	if background == nil {
		background = &workers.Workers{}
	}

	return &server{
		httpServer:      newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		uploads:         services.UploadService,
		workers:         background,
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger,
	}, nil
}

func (s *server) RunServer() error {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return s.run(ctx)
}

// Shutdown releases uploads held by the completion delay, logs what is
// still in flight and stops the HTTP server within the shutdown timeout.
// Only the first call has an effect.
func (s *server) Shutdown() error {
	s.shutdownOnce.Do(func() {
		active := s.uploads.ActiveSessions()
		s.logger.Info().Int("active_sessions", len(active)).Msg("shutting down")
		for _, p := range active {
			s.logger.Info().
				Str("session_id", p.SessionID).
				Str("path", p.DestinationPath).
				Int64("received", p.ReceivedBytes).
				Int64("total", p.TotalBytes).
				Msg("upload interrupted by shutdown")
		}

		s.uploads.Close()

		ctx := context.Background()
		if s.shutdownTimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, s.shutdownTimeout)
			defer cancel()
		}
		s.shutdownErr = s.httpServer.Shutdown(ctx)
	})

	return s.shutdownErr
}

func (s *server) run(ctx context.Context) error {
	ln, err := s.httpServer.Listen()
	if err != nil {
		return err
	}
	s.logger.Info().Str("address", ln.Addr().String()).Msg("Launching HTTP server")

	workersCtx, stopWorkers := context.WithCancel(ctx)
	defer stopWorkers()
	s.workers.Run(workersCtx)

	served := make(chan error, 1)
	go func() {
		served <- s.httpServer.Serve(ln)
	}()

	select {
	case err = <-served:
		if err != nil {
			return err
		}
	case <-ctx.Done():
		stopWorkers()
		if err = s.Shutdown(); err != nil {
			return err
		}
		<-served
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}
