package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	App struct {
		Version  string `json:"version"`
		LogLevel string `json:"log_level"`
	} `json:"app,omitempty"`

	Storage struct {
		Files struct {
			UploadsDir string   `json:"uploads_dir"`
			FileMode   FileMode `json:"file_mode"`
		} `json:"files,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress       string   `json:"http_address"`
		ReadHeaderTimeout Duration `json:"read_header_timeout"`
		ShutdownTimeout   Duration `json:"shutdown_timeout"`
	} `json:"server,omitempty"`

	Upload struct {
		RateLimit       *int     `json:"rate_limit"`
		CompletionDelay Duration `json:"completion_delay"`
		FailThreshold   *float64 `json:"fail_threshold"`
		ChunkSize       int      `json:"chunk_size"`
	} `json:"upload,omitempty"`

	Workers struct {
		ReportInterval Duration `json:"report_interval"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	rateLimit, err := nonZero(jsonCfg.Upload.RateLimit, settingRateLimit)
	if err != nil {
		return nil, err
	}
	failThreshold, err := nonZero(jsonCfg.Upload.FailThreshold, settingFailThreshold)
	if err != nil {
		return nil, err
	}

	cfg := &StructuredConfig{
		App: App{
			Version:  jsonCfg.App.Version,
			LogLevel: jsonCfg.App.LogLevel,
		},
		Storage: Storage{
			Files: Files{
				UploadsDir: jsonCfg.Storage.Files.UploadsDir,
				FileMode:   jsonCfg.Storage.Files.FileMode,
			},
		},
		Server: Server{
			HTTPAddress:       jsonCfg.Server.HTTPAddress,
			ReadHeaderTimeout: time.Duration(jsonCfg.Server.ReadHeaderTimeout),
			ShutdownTimeout:   time.Duration(jsonCfg.Server.ShutdownTimeout),
		},
		Upload: Upload{
			RateLimit:       rateLimit,
			CompletionDelay: time.Duration(jsonCfg.Upload.CompletionDelay),
			FailThreshold:   failThreshold,
			ChunkSize:       jsonCfg.Upload.ChunkSize,
		},
		Workers: Workers{
			ReportInterval: time.Duration(jsonCfg.Workers.ReportInterval),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// nonZero dereferences an optional JSON number. An absent value yields zero,
// an explicit zero is an error.
func nonZero[T int | float64](v *T, setting string) (T, error) {
	if v == nil {
		return 0, nil
	}
	if *v == 0 {
		return 0, explicitZeroError(setting)
	}
	return *v, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
