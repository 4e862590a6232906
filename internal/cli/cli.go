package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/vk/wiregrid/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	flagSet := flag.NewFlagSet("wiregrid", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
wiregrid - ASCII wireframe and interaction DSL parser.

Usage:
  wiregrid [options] [WIREFRAME_PATH]

Arguments:
  WIREFRAME_PATH
    Path to a single .wire file or a directory containing .wire files.

Options:
`)
		flagSet.PrintDefaults()
	}

	wireframeFlag := flagSet.String("wireframe", "", "Path to the wireframe file or directory.")
	wFlag := flagSet.String("w", "", "Path to the wireframe file or directory (shorthand).")
	interactionsFlag := flagSet.String("interactions", "", "Path to the interaction DSL file.")
	optionsFlag := flagSet.String("options", "", "Path to the HCL options file.")
	outputFlag := flagSet.String("output", "json", "Result format. Options: 'json' or 'summary'.")
	logFormatFlag := flagSet.String("log-format", "json", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	path := ""
	if *wireframeFlag != "" {
		path = *wireframeFlag
	} else if *wFlag != "" {
		path = *wFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}

	if path == "" {
		flagSet.Usage()
		return nil, true, nil
	}

	outputFormat := strings.ToLower(*outputFlag)
	if outputFormat != "json" && outputFormat != "summary" {
		return nil, false, &ExitError{Code: 2, Message: "invalid output: must be 'json' or 'summary'"}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	config, err := app.NewConfig(app.Config{
		WireframePath:    path,
		InteractionsPath: *interactionsFlag,
		OptionsPath:      *optionsFlag,
		OutputFormat:     outputFormat,
		LogFormat:        logFormat,
		LogLevel:         logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return config, false, nil
}
