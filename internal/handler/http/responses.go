package http

import (
	"bufio"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/upload-sink/models"
)

const (
	contentTypeText = "text/plain"

	// Reason phrases of the terminal responses. net/http always writes the
	// canonical phrase, so these only reach the wire through a hijacked
	// connection.
	doneReason   = "Done!"
	deniedReason = "Die!"
)

// respondCompleted writes "HTTP/1.1 200 Done!" with the upload complete
// body and closes the connection.
func respondCompleted(w http.ResponseWriter) error {
	return respondRaw(w, http.StatusOK, doneReason, models.BodyUploadComplete)
}

func respondStorageError(w http.ResponseWriter, status int) {
	w.Header().Set("Connection", "close")
	writeTextResponse(w, status, models.BodyStorageError)
}

// respondDenied writes "HTTP/1.1 408 Die!" with the denied body and closes
// the connection.
func respondDenied(w http.ResponseWriter) error {
	return respondRaw(w, http.StatusRequestTimeout, deniedReason, models.BodyDenied)
}

// respondRaw writes the status line with reason straight to the hijacked
// connection, followed by the headers already set on w, and closes the
// connection. Writers that cannot be hijacked get a regular response with
// the canonical reason phrase instead.
func respondRaw(w http.ResponseWriter, status int, reason, body string) error {
	header := w.Header()
	header.Set("Content-Type", contentTypeText)
	header.Set("Content-Length", strconv.Itoa(len(body)))
	header.Set("Connection", "close")

	conn, buf, err := http.NewResponseController(w).Hijack()
	if err != nil {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
		return nil
	}
	defer conn.Close()

	return writeRawResponse(buf.Writer, status, reason, header, body)
}

func writeTextResponse(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", contentTypeText)
	w.Header().Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func writeRawResponse(w *bufio.Writer, status int, reason string, header http.Header, body string) error {
	if _, err := fmt.Fprintf(w, "HTTP/1.1 %03d %s\r\n", status, reason); err != nil {
		return fmt.Errorf("error writing status line: %w", err)
	}
	if err := header.Write(w); err != nil {
		return fmt.Errorf("error writing headers: %w", err)
	}
	if _, err := w.WriteString("\r\n" + body); err != nil {
		return fmt.Errorf("error writing body: %w", err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("error flushing response: %w", err)
	}
	return nil
}
