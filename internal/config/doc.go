// Package config assembles the upload-sink configuration.
//
// Each setting can come from an environment variable, a command-line flag,
// a JSON file or the built-in defaults. Sources are layered in that order
// and the first one that sets a field wins; the JSON file path itself is
// taken from CONFIG or -c. The merged result is validated before use.
//
// Call [GetStructuredConfig] once at startup.
package config
