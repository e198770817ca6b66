package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	jsonBody := `{
		"app": { "version": "2.0.0", "log_level": "error" },
		"server": {
			"http_address": "127.0.0.1:8083",
			"read_header_timeout": "5s",
			"shutdown_timeout": "45s"
		},
		"storage": {
			"files": { "uploads_dir": "/srv/uploads", "file_mode": "0600" }
		},
		"upload": {
			"rate_limit": 65536,
			"completion_delay": "1s",
			"fail_threshold": 0.3,
			"chunk_size": 1024
		},
		"workers": { "report_interval": "1m" }
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "2.0.0", cfg.App.Version)
	assert.Equal(t, "error", cfg.App.LogLevel)
	assert.Equal(t, "127.0.0.1:8083", cfg.Server.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadHeaderTimeout)
	assert.Equal(t, 45*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "/srv/uploads", cfg.Storage.Files.UploadsDir)
	assert.Equal(t, FileMode(0o600), cfg.Storage.Files.FileMode)
	assert.Equal(t, 65536, cfg.Upload.RateLimit)
	assert.Equal(t, time.Second, cfg.Upload.CompletionDelay)
	assert.InDelta(t, 0.3, cfg.Upload.FailThreshold, 1e-9)
	assert.Equal(t, 1024, cfg.Upload.ChunkSize)
	assert.Equal(t, time.Minute, cfg.Workers.ReportInterval)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	cfg, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(p, []byte("{not json"), 0o600))

	cfg, err := parseJSON(p)
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	p := filepath.Join(t.TempDir(), "bad-duration.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"upload": {"completion_delay": "soon"}}`), 0o600))

	_, err := parseJSON(p)
	require.Error(t, err)
}

func TestParseJSON_NumericDuration(t *testing.T) {
	p := filepath.Join(t.TempDir(), "numeric.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"upload": {"completion_delay": 1000000}}`), 0o600))

	cfg, err := parseJSON(p)
	require.NoError(t, err)
	assert.Equal(t, time.Millisecond, cfg.Upload.CompletionDelay)
}

func TestParseJSON_ExplicitZeroRejected(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "rate limit", body: `{"upload": {"rate_limit": 0}}`},
		{name: "fail threshold", body: `{"upload": {"fail_threshold": 0}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := filepath.Join(t.TempDir(), "zero.json")
			require.NoError(t, os.WriteFile(p, []byte(tt.body), 0o600))

			cfg, err := parseJSON(p)
			require.ErrorIs(t, err, ErrInvalidUploadConfigs)
			assert.Nil(t, cfg)
		})
	}
}

func TestParseJSON_NullUploadNumbersAreUnset(t *testing.T) {
	p := filepath.Join(t.TempDir(), "null.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"upload": {"rate_limit": null, "fail_threshold": null}}`), 0o600))

	cfg, err := parseJSON(p)
	require.NoError(t, err)
	assert.Zero(t, cfg.Upload.RateLimit)
	assert.Zero(t, cfg.Upload.FailThreshold)
}

func TestParseJSON_EmptyObject(t *testing.T) {
	p := filepath.Join(t.TempDir(), "empty.json")
	require.NoError(t, os.WriteFile(p, []byte(`{}`), 0o600))

	cfg, err := parseJSON(p)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestDuration_MarshalJSON(t *testing.T) {
	data, err := Duration(90 * time.Second).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(data))
}
