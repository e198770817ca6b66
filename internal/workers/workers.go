package workers

import (
	"context"

	"github.com/MKhiriev/upload-sink/internal/config"
	"github.com/MKhiriev/upload-sink/internal/logger"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the background workers enabled by cfg.
func NewWorkers(sessions SessionLister, cfg config.Workers, logger *logger.Logger) *Workers {
	w := &Workers{}
	if cfg.ReportInterval > 0 {
		w.workers = append(w.workers, NewSessionReporter(sessions, cfg.ReportInterval, logger))
	}
	return w
}

func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}

// Len returns the number of configured workers.
func (w *Workers) Len() int {
	return len(w.workers)
}
