// Package server runs the upload server.
//
// It binds the HTTP listener, starts background workers and handles stop
// signals. Shutdown first releases uploads waiting on the completion delay,
// then drains the HTTP server within the configured timeout.
package server
