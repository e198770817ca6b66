// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way.
package workers

import (
	"context"

	"github.com/MKhiriev/upload-sink/models"
)

// Worker is the interface that must be implemented by any background worker.
// Run must not block: implementations spawn their own goroutines and stop
// them when ctx is done.
//
// Example implementation:
//
//	type MyWorker struct{}
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    go func() {
//	        <-ctx.Done()
//	    }()
//	}
type Worker interface {
	Run(ctx context.Context)
}

// SessionLister is the part of the upload service the reporter needs.
type SessionLister interface {
	ActiveSessions() []models.UploadProgress
}
