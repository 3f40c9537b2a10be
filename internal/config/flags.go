package config

import (
	"flag"
	"fmt"
	"os"
	"time"
)

// ParseFlags defines the configuration flags on the global flag set and parses
// os.Args.
//
// Flags:
//
//	-f vault file path
//	-length default generated password length
//	-log log file path
//	-log-level log level (trace, debug, info, warn, error)
//	-clipboard-clear how long copied secrets stay in the clipboard (e.g. "30s")
//	-c/-config json file path with configs
func ParseFlags() (*StructuredConfig, error) {
	var vaultFilePath string
	var defaultLength int
	var logFilePath string
	var logLevel string
	var clipboardClearAfter time.Duration
	var jsonConfigPath string

	flag.StringVar(&vaultFilePath, "f", "", "Vault file path")
	flag.IntVar(&defaultLength, "length", 0, "Default generated password length")
	flag.StringVar(&logFilePath, "log", "", "Log file path")
	flag.StringVar(&logLevel, "log-level", "", "Log level")
	flag.DurationVar(&clipboardClearAfter, "clipboard-clear", 0, "Clipboard clear delay (e.g., 30s, 1m)")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := flag.CommandLine.Parse(os.Args[1:]); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	var clipboardClear *time.Duration
	flag.Visit(func(f *flag.Flag) {
		if f.Name == "clipboard-clear" {
			clipboardClear = durationPtr(clipboardClearAfter)
		}
	})

	return &StructuredConfig{
		Vault:        Vault{FilePath: vaultFilePath},
		Generator:    Generator{DefaultLength: defaultLength},
		Log:          Log{FilePath: logFilePath, Level: logLevel},
		UI:           UI{ClipboardClearAfter: clipboardClear},
		JSONFilePath: jsonConfigPath,
	}, nil
}
