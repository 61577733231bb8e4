package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/autoperm/internal/app"
	"github.com/specialistvlad/autoperm/internal/batch"
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
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("autoperm", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
autoperm - compiles stack effect diagrams into tape machine programs.

Usage:
  autoperm [options] [DIAGRAM...]

Arguments:
  DIAGRAM
    A stack effect diagram such as "a b -- b a". Several arguments are
    joined with spaces. Without a diagram and without -words, diagrams are
    read from standard input, one per line.

Options:
`)
		flagSet.PrintDefaults()
	}

	wordsFlag := flagSet.String("words", "", "Comma separated word library files or directories (.hcl, .yaml, .yml).")
	backendFlag := flagSet.String("backend", app.DefaultBackend, "Output backend. Options: 'tape' or 'listing'.")
	settleFlag := flagSet.Bool("settle", false, "Move the cursor to the new top of the stack at the end of each program.")
	verifyFlag := flagSet.Bool("verify", false, "Run every program on the tape interpreter and fail if it is wrong.")
	workersFlag := flagSet.Int("workers", batch.DefaultWorkers, "Number of concurrent workers for word libraries.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	var wordPaths []string
	for _, p := range strings.Split(*wordsFlag, ",") {
		if p = strings.TrimSpace(p); p != "" {
			wordPaths = append(wordPaths, p)
		}
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

	if *workersFlag < 1 {
		return nil, false, &ExitError{Code: 2, Message: "invalid workers: must be at least 1"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		Diagram:      strings.Join(flagSet.Args(), " "),
		DiagramGiven: flagSet.NArg() > 0,
		WordPaths:    wordPaths,
		Backend:      strings.ToLower(*backendFlag),
		Settle:       *settleFlag,
		Verify:       *verifyFlag,
		WorkerCount:  *workersFlag,
		LogFormat:    logFormat,
		LogLevel:     logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
