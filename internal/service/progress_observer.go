package service

import (
	"github.com/MKhiriev/upload-sink/internal/logger"
	"github.com/MKhiriev/upload-sink/models"
	"github.com/dustin/go-humanize"
)

// ProgressObserverFunc adapts a plain function to [ProgressObserver].
type ProgressObserverFunc func(progress models.UploadProgress)

func (f ProgressObserverFunc) OnProgress(progress models.UploadProgress) {
	f(progress)
}

// nopObserver is used when the caller passes no observer.
var nopObserver = ProgressObserverFunc(func(models.UploadProgress) {})

type logProgressObserver struct {
	logger *logger.Logger
}

// NewLogProgressObserver returns an observer writing one debug line per
// chunk to the given (usually request-scoped) logger.
func NewLogProgressObserver(logger *logger.Logger) ProgressObserver {
	return &logProgressObserver{logger: logger}
}

func (o *logProgressObserver) OnProgress(p models.UploadProgress) {
	event := o.logger.Debug().
		Str("path", p.DestinationPath).
		Int64("received", p.ReceivedBytes).
		Str("received_human", humanize.IBytes(uint64(p.ReceivedBytes))).
		Int64("total", p.TotalBytes)

	if p.TotalBytes > 0 {
		event = event.
			Str("total_human", humanize.IBytes(uint64(p.TotalBytes))).
			Int("percent", p.Percent)
	}

	event.Msg("data received")
}
