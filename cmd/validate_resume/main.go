// Package main implements validate_resume, which checks a résumé document against the JSON Resume schema.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jonathan/resume-helper/internal/cli"
	"github.com/jonathan/resume-helper/internal/config"
	"github.com/jonathan/resume-helper/internal/document"
	"github.com/jonathan/resume-helper/internal/observability"
	"github.com/jonathan/resume-helper/internal/schemas"
	resumeschema "github.com/jonathan/resume-helper/schemas"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var opts cli.Options

	cmd := &cobra.Command{
		Use:           "validate_resume",
		Short:         "Validate the résumé against the JSON Resume schema",
		Long:          "Checks the résumé JSON document against the JSON Resume schema and explains each violation, with hints for date and URL formats.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runValidate(cmd, &opts)
		},
	}
	opts.BindFlags(cmd)
	opts.BindSchemaFlag(cmd)
	return cmd
}

func runValidate(cmd *cobra.Command, opts *cli.Options) error {
	cfg, err := opts.Resolve()
	if err != nil {
		return err
	}
	log := cli.Logger(cmd, cfg)
	out := cmd.OutOrStdout()

	_, _ = fmt.Fprintf(out, "Validating %s...\n\n", cfg.ResumeFile)

	doc, err := cli.LoadDocument(cfg.ResumeFile, log)
	if err != nil {
		return fmt.Errorf("failed to load resume: %w", err)
	}

	schema, err := loadSchema(cfg, log)
	if err != nil {
		return err
	}

	content, err := document.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode resume: %w", err)
	}

	printer := observability.NewPrinter(out)
	err = schemas.ValidateJSONBytes(schema, content)
	if err == nil {
		printer.PrintValidationPassed(cfg.ResumeFile)
		return nil
	}

	var validationErr *schemas.ValidationError
	if errors.As(err, &validationErr) {
		log.Debug().Strs("fields", validationErr.Fields()).Msg("schema violations")
		printer.PrintValidationErrors(validationErr, resumeschema.ResumeSchemaURL)
		return fmt.Errorf("resume has %d schema violation(s): %w", len(validationErr.Errors), cli.ErrReported)
	}
	return fmt.Errorf("failed to validate resume: %w", err)
}

// loadSchema returns the configured schema override, or the embedded JSON Resume schema
func loadSchema(cfg config.Config, log zerolog.Logger) ([]byte, error) {
	if cfg.SchemaFile == "" {
		return resumeschema.Resume, nil
	}

	path := schemas.ResolveSchemaPath(cfg.SchemaFile)
	if path == "" {
		return nil, fmt.Errorf("schema file not found: %s", cfg.SchemaFile)
	}
	log.Debug().Str("schema", path).Msg("using schema override")

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file: %w", err)
	}
	return content, nil
}

func main() {
	cli.Main(newRootCmd())
}
