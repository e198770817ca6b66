// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface. An empty Host listens on all
// interfaces.
type NetAddress struct {
	Host string
	Port int
	set  bool
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-log-level minimum log level (debug, info, warn, error)
//	-a server address in format [host]:[port]
//	-u uploads directory
//	-file-mode permissions of created upload files (octal)
//	-rate per-session rate limit in bytes per second
//	-delay completion delay (e.g. "10s")
//	-fail-threshold failure injection ratio (e.g. 0.25)
//	-chunk-size body read buffer size in bytes
//	-read-header-timeout request header read timeout (e.g. "5s")
//	-shutdown-timeout graceful shutdown timeout (e.g. "30s")
//	-report-interval in-flight sessions report interval (e.g. "30s")
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var logLevel string
	var serverAddress NetAddress
	var uploadsDir string
	var fileMode FileMode
	var rateLimit int
	var completionDelay time.Duration
	var failThreshold float64
	var chunkSize int
	var readHeaderTimeout time.Duration
	var shutdownTimeout time.Duration
	var reportInterval time.Duration
	var jsonConfigPath string

	flag.StringVar(&logLevel, "log-level", "", "Minimum log level (debug, info, warn, error)")
	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&uploadsDir, "u", "", "Uploads directory")
	flag.Var(&fileMode, "file-mode", "Upload file permissions in octal (e.g., 0644)")
	flag.Func("rate", "Per-session rate limit in bytes per second, negative disables pacing", parseRateLimit(&rateLimit))
	flag.DurationVar(&completionDelay, "delay", 0, "Completion delay (e.g., 10s)")
	flag.Func("fail-threshold", "Failure injection ratio (e.g., 0.25)", parseFailThreshold(&failThreshold))
	flag.IntVar(&chunkSize, "chunk-size", 0, "Body read buffer size in bytes")
	flag.DurationVar(&readHeaderTimeout, "read-header-timeout", 0, "Request header read timeout (e.g., 5s)")
	flag.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown timeout (e.g., 30s)")
	flag.DurationVar(&reportInterval, "report-interval", 0, "In-flight sessions report interval (e.g., 30s)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			LogLevel: logLevel,
		},
		Storage: Storage{
			Files: Files{
				UploadsDir: uploadsDir,
				FileMode:   fileMode,
			},
		},
		Server: Server{
			HTTPAddress:       serverAddress.String(),
			ReadHeaderTimeout: readHeaderTimeout,
			ShutdownTimeout:   shutdownTimeout,
		},
		Upload: Upload{
			RateLimit:       rateLimit,
			CompletionDelay: completionDelay,
			FailThreshold:   failThreshold,
			ChunkSize:       chunkSize,
		},
		Workers: Workers{
			ReportInterval: reportInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// parseRateLimit returns a -rate parser writing into dst. Zero is rejected.
func parseRateLimit(dst *int) func(string) error {
	return func(s string) error {
		n, err := strconv.Atoi(s)
		if err != nil {
			return err
		}
		if n == 0 {
			return explicitZeroError(settingRateLimit)
		}
		*dst = n
		return nil
	}
}

// parseFailThreshold returns a -fail-threshold parser writing into dst.
// Zero is rejected.
func parseFailThreshold(dst *float64) func(string) error {
	return func(s string) error {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return err
		}
		if f == 0 {
			return explicitZeroError(settingFailThreshold)
		}
		*dst = f
		return nil
	}
}

// String returns a canonical host:port string for a NetAddress.
// It returns an empty string when the flag was never set.
func (a *NetAddress) String() string {
	if !a.set && a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses the input string of form [host]:port and populates the
// NetAddress. It validates the port range, checks IP correctness unless
// host is "localhost" or empty, and returns an error if the format or
// values are invalid.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be between 1 and 65535")
	}

	if host != "" && host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	a.set = true
	return nil
}
