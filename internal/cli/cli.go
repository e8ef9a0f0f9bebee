// Package cli holds the plumbing shared by the résumé executables: flags,
// configuration layering, error reporting and interrupt handling.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/jonathan/resume-helper/internal/config"
	"github.com/jonathan/resume-helper/internal/document"
	"github.com/jonathan/resume-helper/internal/logging"
	"github.com/jonathan/resume-helper/internal/prompt"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// ErrReported marks a failure whose details were already printed
var ErrReported = errors.New("failure already reported")

// Options holds the flags common to every executable
type Options struct {
	File       string
	ConfigPath string
	Verbose    bool
	Schema     string
}

// BindFlags registers the common flags on cmd
func (o *Options) BindFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.File, "file", "f", "", "Path to the résumé JSON document (default \"resume.json\")")
	cmd.Flags().StringVarP(&o.ConfigPath, "config", "c", "", "Path to a JSON or YAML config file")
	cmd.Flags().BoolVarP(&o.Verbose, "verbose", "v", false, "Print debug logs to stderr")
}

// BindSchemaFlag registers the schema override flag on cmd
func (o *Options) BindSchemaFlag(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.Schema, "schema", "", "Path to a JSON Schema file overriding the built-in JSON Resume schema")
}

// Resolve layers flags over the config file, the environment and the
// built-in defaults, then validates the result.
func (o *Options) Resolve() (config.Config, error) {
	cfg := config.Config{
		ResumeFile: o.File,
		SchemaFile: o.Schema,
		Verbose:    o.Verbose,
	}

	if o.ConfigPath != "" {
		fileCfg, err := config.LoadConfig(o.ConfigPath)
		if err != nil {
			return config.Config{}, err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}

	cfg = cfg.MergeWithDefaults(config.FromEnv())
	cfg = cfg.MergeWithDefaults(config.Defaults())

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// Logger returns the logger for cfg writing to cmd's error stream
func Logger(cmd *cobra.Command, cfg config.Config) zerolog.Logger {
	return logging.New(cmd.ErrOrStderr(), cfg.Verbose)
}

// LoadDocument loads the résumé at path, logging what was read
func LoadDocument(path string, log zerolog.Logger) (*document.Object, error) {
	log.Debug().Str("path", path).Msg("loading résumé document")
	doc, err := document.Load(path)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("path", path).Strs("sections", doc.Keys()).Msg("loaded résumé document")
	return doc, nil
}

// ExitCode maps an error to the process exit status
func ExitCode(err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, prompt.ErrCancelled):
		return 0
	default:
		return 1
	}
}

// Report prints the user-facing message for err
//
//nolint:errcheck // writing to stderr; errors are not recoverable
func Report(w io.Writer, err error) {
	if err == nil || errors.Is(err, ErrReported) {
		return
	}

	var (
		notFound *document.NotFoundError
		parseErr *document.ParseError
		saveErr  *document.SaveError
	)
	switch {
	case errors.Is(err, prompt.ErrCancelled):
		fmt.Fprintln(w, "\n\nOperation cancelled by user.")
	case errors.As(err, &notFound):
		fmt.Fprintf(w, "Error: %s not found\n", notFound.Path)
	case errors.As(err, &parseErr):
		fmt.Fprintf(w, "Error: Invalid JSON - %s\n", parseErr.Detail())
	case errors.As(err, &saveErr):
		if saveErr.Cause != nil {
			fmt.Fprintf(w, "Error saving resume: %v\n", saveErr.Cause)
		} else {
			fmt.Fprintf(w, "Error saving resume: %s\n", saveErr.Message)
		}
	default:
		fmt.Fprintf(w, "Error: %v\n", err)
	}
}

// HandleInterrupt reports a cancellation and exits when SIGINT arrives.
// The returned function stops listening.
func HandleInterrupt(out io.Writer, exit func(int)) (stop func()) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	done := make(chan struct{})

	go func() {
		select {
		case <-sigCh:
			Report(out, prompt.ErrCancelled)
			exit(ExitCode(prompt.ErrCancelled))
		case <-done:
		}
	}()

	return func() {
		signal.Stop(sigCh)
		close(done)
	}
}

// LoadDotEnv loads .env from the working directory when present.
// Variables already set in the environment win.
func LoadDotEnv() error {
	if _, err := os.Stat(".env"); os.IsNotExist(err) {
		return nil
	}
	return godotenv.Load()
}

// Main loads .env, runs cmd and exits with the mapped status
func Main(cmd *cobra.Command) {
	if err := LoadDotEnv(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: failed to load .env: %v\n", err)
	}

	err := cmd.Execute()
	Report(cmd.ErrOrStderr(), err)
	os.Exit(ExitCode(err))
}
