package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	WireframePath    string // .wire file or directory
	InteractionsPath string // optional interaction DSL file
	OptionsPath      string // optional HCL options file

	OutputFormat string // "json" or "summary"
	LogFormat    string
	LogLevel     string
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.WireframePath == "" {
		return nil, errors.New("WireframePath is a required configuration field and cannot be empty")
	}
	if cfg.OutputFormat == "" {
		cfg.OutputFormat = "json"
	}
	return &cfg, nil
}
