package app

import (
	"io"
	"log/slog"

	"github.com/vk/wiregrid/internal/config"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle. Logs go to errW so the parse result on outW stays clean for
// piping.
type App struct {
	outW   io.Writer
	errW   io.Writer
	logger *slog.Logger
	opts   config.Options
}

// New is the constructor for the main application. Parser options come
// from the file named in cfg, or the defaults when none is given.
func New(outW, errW io.Writer, cfg *Config) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, errW)

	opts := config.Default()
	if cfg.OptionsPath != "" {
		loaded, err := config.Load(cfg.OptionsPath)
		if err != nil {
			return nil, err
		}
		opts = loaded
		logger.Debug("Options file loaded.", "path", cfg.OptionsPath)
	}

	return &App{outW: outW, errW: errW, logger: logger, opts: opts}, nil
}

// Options returns the effective parser options. This is primarily for
// testing.
func (a *App) Options() config.Options {
	return a.opts
}
