// Package http implements the HTTP transport layer of the upload sink.
//
// Every request, whatever its method and path, is an upload: the body is
// handed to the upload service and the outcome is mapped to a response.
// Request tracing and access logging are handled by middleware before the
// request reaches the upload handler.
package http
