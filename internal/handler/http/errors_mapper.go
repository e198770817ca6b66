package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/upload-sink/internal/service"
	"github.com/MKhiriev/upload-sink/internal/store"
)

// errorStatusMap is checked in order: the first matching error wins, so
// more specific errors come first.
var errorStatusMap = []struct {
	err    error
	status int
}{
	{store.ErrStorageFull, http.StatusInsufficientStorage},
	{store.ErrCreatingUploadFile, http.StatusInternalServerError},
	{store.ErrWritingUploadFile, http.StatusInternalServerError},
	{service.ErrStorage, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, entry := range errorStatusMap {
		if errors.Is(err, entry.err) {
			return entry.status
		}
	}
	return http.StatusInternalServerError
}
