package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] as it appears in the JSON
// config file.
type StructuredJSONConfig struct {
	Vault struct {
		FilePath string `json:"file_path"`
	} `json:"vault,omitempty"`

	Generator struct {
		DefaultLength int `json:"default_length"`
	} `json:"generator,omitempty"`

	Log struct {
		FilePath string `json:"file_path"`
		Level    string `json:"level"`
	} `json:"log,omitempty"`

	UI struct {
		ClipboardClearAfter *Duration `json:"clipboard_clear_after"`
	} `json:"ui,omitempty"`
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

	var clipboardClear *time.Duration
	if jsonCfg.UI.ClipboardClearAfter != nil {
		clipboardClear = durationPtr(time.Duration(*jsonCfg.UI.ClipboardClearAfter))
	}

	return &StructuredConfig{
		Vault:     Vault{FilePath: jsonCfg.Vault.FilePath},
		Generator: Generator{DefaultLength: jsonCfg.Generator.DefaultLength},
		Log: Log{
			FilePath: jsonCfg.Log.FilePath,
			Level:    jsonCfg.Log.Level,
		},
		UI: UI{ClipboardClearAfter: clipboardClear},
	}, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
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
		return fmt.Errorf("invalid duration %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
